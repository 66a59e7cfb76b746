package engine

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/frankmangone/ruleforge/gamespec"
	"github.com/frankmangone/ruleforge/piece"
	"github.com/frankmangone/ruleforge/position"
)

// Bare-bones two-player fixture (KING, KNIGHT, SLIDER) driving the
// draw-detector and checkmate/stalemate scenarios in isolation from a
// full chess ruleset, the way blueprint_test.go and threat_test.go build
// minimal single-piece boards rather than a whole game.

var miniKnightOffsets = [8][2]int8{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var miniDiagonal = [4][2]int8{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var miniOrthogonal = [4][2]int8{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func miniSingleStepMoves(offsets [][2]int8) []gamespec.MoveSpec {
	moves := make([]gamespec.MoveSpec, len(offsets))
	for i, o := range offsets {
		moves[i] = gamespec.MoveSpec{
			ID:   uint8(i),
			Step: o,
			Actions: []gamespec.ActionSpec{
				{State: "EMPTY", Action: "MOVE"},
				{State: "ENEMY", Action: "CAPTURE"},
			},
		}
	}
	return moves
}

func miniSlidingMoves(offsets [][2]int8) []gamespec.MoveSpec {
	moves := make([]gamespec.MoveSpec, len(offsets))
	for i, o := range offsets {
		moves[i] = gamespec.MoveSpec{
			ID:   uint8(i),
			Step: o,
			Actions: []gamespec.ActionSpec{
				{State: "EMPTY", Action: "MOVE"},
				{State: "ENEMY", Action: "CAPTURE"},
			},
			Repeat: &gamespec.RepeatSpec{Loop: true},
		}
	}
	return moves
}

func miniSpec(drawConditions gamespec.DrawConditionsSpec) gamespec.GameSpec {
	all := append(append([][2]int8{}, miniDiagonal[:]...), miniOrthogonal[:]...)
	return gamespec.GameSpec{
		Name: "Mini Fixture",
		Board: gamespec.BoardSpec{
			Dimensions: []uint8{8, 8},
		},
		Players: []gamespec.PlayerSpec{
			{Name: "WHITE", DirectionMatrix: [][]int16{{1, 0}, {0, 1}}},
			{Name: "BLACK", DirectionMatrix: [][]int16{{1, 0}, {0, 1}}},
		},
		Turns:          gamespec.TurnSpec{Order: []string{"WHITE", "BLACK"}, StartAt: 0},
		Leader:         []string{"KING"},
		DrawConditions: drawConditions,
		Pieces: []gamespec.PieceSpec{
			{Code: "KING", Name: "King", Moves: miniSingleStepMoves(all)},
			{Code: "KNIGHT", Name: "Knight", Moves: miniSingleStepMoves(miniKnightOffsets[:])},
			{Code: "SLIDER", Name: "Slider", Moves: miniSlidingMoves(all)},
		},
	}
}

func place(g *Game, player, code string, x, y uint8) {
	g.State.Pieces[position.Position{x, y}.Key()] = piece.New(code, player)
}

func playMove(g *Game, from, to position.Position) error {
	if err := g.Transition(CalculateMoves{Position: from}); err != nil {
		return err
	}
	return g.Transition(ExecuteMove{Position: to})
}

func u8Ptr(v uint8) *uint8    { return &v }
func u16Ptr(v uint16) *uint16 { return &v }

func TestThreefoldRepetitionDrawsTheGame(t *testing.T) {
	Convey("a knight shuffle repeating the same position three times draws the game", t, func() {
		g, err := FromSpec(miniSpec(gamespec.DrawConditionsSpec{RepetitionCount: u8Ptr(3)}))
		So(err, ShouldBeNil)

		place(g, "WHITE", "KING", 0, 7)
		place(g, "BLACK", "KING", 7, 0)
		place(g, "WHITE", "KNIGHT", 1, 0)
		place(g, "BLACK", "KNIGHT", 6, 7)

		shuffle := []struct{ from, to position.Position }{
			{position.Position{1, 0}, position.Position{2, 2}},
			{position.Position{6, 7}, position.Position{7, 5}},
			{position.Position{2, 2}, position.Position{1, 0}},
			{position.Position{7, 5}, position.Position{6, 7}},
		}

		Convey("after three full shuffle cycles (twelve halfmoves)", func() {
			for cycle := 0; cycle < 3; cycle++ {
				for _, step := range shuffle {
					So(playMove(g, step.from, step.to), ShouldBeNil)
				}
			}

			So(g.State.Phase, ShouldResemble, GameOver{Winner: nil})
		})
	})
}

func TestFiftyMoveRuleDrawsTheGame(t *testing.T) {
	Convey("one hundred halfmoves without a capture or pawn move draws the game", t, func() {
		g, err := FromSpec(miniSpec(gamespec.DrawConditionsSpec{FiftyMoveHalfmoves: u16Ptr(100)}))
		So(err, ShouldBeNil)

		place(g, "WHITE", "KING", 0, 7)
		place(g, "BLACK", "KING", 7, 0)
		place(g, "WHITE", "KNIGHT", 1, 0)
		place(g, "BLACK", "KNIGHT", 6, 7)

		shuffle := []struct{ from, to position.Position }{
			{position.Position{1, 0}, position.Position{2, 2}},
			{position.Position{6, 7}, position.Position{7, 5}},
			{position.Position{2, 2}, position.Position{1, 0}},
			{position.Position{7, 5}, position.Position{6, 7}},
		}

		Convey("after twenty-five shuffle cycles (one hundred halfmoves)", func() {
			for cycle := 0; cycle < 25; cycle++ {
				for _, step := range shuffle {
					So(playMove(g, step.from, step.to), ShouldBeNil)
				}
			}

			So(len(g.State.History), ShouldEqual, 100)
			So(g.State.Phase, ShouldResemble, GameOver{Winner: nil})
		})
	})
}

func TestCheckmateEndsTheGameWithAWinner(t *testing.T) {
	Convey("a cornered king with every escape square covered is checkmated", t, func() {
		g, err := FromSpec(miniSpec(gamespec.DrawConditionsSpec{}))
		So(err, ShouldBeNil)

		place(g, "WHITE", "KING", 0, 0)
		place(g, "BLACK", "SLIDER", 2, 1)
		place(g, "BLACK", "SLIDER", 3, 0)
		g.State.CurrentTurn = 1

		Convey("once the second slider closes the mating net", func() {
			So(playMove(g, position.Position{3, 0}, position.Position{2, 0}), ShouldBeNil)

			winner := "BLACK"
			So(g.State.Phase, ShouldResemble, GameOver{Winner: &winner})
		})
	})
}

func TestStalemateDrawsTheGame(t *testing.T) {
	Convey("a king with no legal move and no check is a drawn stalemate", t, func() {
		g, err := FromSpec(miniSpec(gamespec.DrawConditionsSpec{}))
		So(err, ShouldBeNil)

		place(g, "WHITE", "KING", 0, 0)
		place(g, "BLACK", "SLIDER", 2, 1)
		place(g, "BLACK", "SLIDER", 1, 4)
		g.State.CurrentTurn = 1

		Convey("once the second slider takes up its covering square", func() {
			So(playMove(g, position.Position{1, 4}, position.Position{1, 3}), ShouldBeNil)

			So(g.LeaderInCheck(), ShouldBeFalse)
			So(g.State.Phase, ShouldResemble, GameOver{Winner: nil})
		})
	})
}

func threePlayerSpec() gamespec.GameSpec {
	spec := miniSpec(gamespec.DrawConditionsSpec{})
	spec.Players = append(spec.Players, gamespec.PlayerSpec{
		Name:            "RED",
		DirectionMatrix: [][]int16{{1, 0}, {0, 1}},
	})
	spec.Turns.Order = []string{"WHITE", "BLACK", "RED"}
	return spec
}

func TestCheckmatedPlayerIsEliminatedNotGameOver(t *testing.T) {
	Convey("with three players, mating one removes them and play continues", t, func() {
		g, err := FromSpec(threePlayerSpec())
		So(err, ShouldBeNil)

		place(g, "WHITE", "KING", 7, 7)
		place(g, "WHITE", "SLIDER", 2, 1)
		place(g, "WHITE", "SLIDER", 3, 0)
		place(g, "BLACK", "KING", 0, 0)
		place(g, "RED", "KING", 7, 4)

		Convey("once white mates the cornered black king", func() {
			So(playMove(g, position.Position{3, 0}, position.Position{2, 0}), ShouldBeNil)

			So(g.TurnOrder, ShouldResemble, []string{"WHITE", "RED"})
			So(g.Players, ShouldNotContain, "BLACK")
			for _, pc := range g.State.Pieces {
				So(pc.Player, ShouldNotEqual, "BLACK")
			}

			Convey("the turn passes to the next surviving player", func() {
				So(g.State.Phase, ShouldResemble, Idle{})
				So(g.CurrentPlayer(), ShouldEqual, "RED")
			})
		})
	})
}
