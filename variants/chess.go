// Package variants holds GameSpec builders for concrete games. Every rule
// here is plain gamespec data, compiled and run like any other game.
package variants

import "github.com/frankmangone/ruleforge/gamespec"

// promotionRank gates the pawn's TRANSFORM modifier. No built-in code
// expresses "reached the far rank", so it is a top-level position-set
// condition.
const promotionRank = "PROMOTION_RANK"

const enPassantFlag = "EN_PASSANT"

// NewStandardChess builds two-player standard chess.
func NewStandardChess() gamespec.GameSpec {
	return gamespec.GameSpec{
		Name: "Chess",
		Board: gamespec.BoardSpec{
			Dimensions: []uint8{8, 8},
		},
		Players: []gamespec.PlayerSpec{
			{
				Name:              "WHITE",
				DirectionMatrix:   [][]int16{{1, 0}, {0, 1}},
				StartingPositions: chessBackRank(0, 1, "WHITE"),
			},
			{
				// Only the y axis mirrors, so kingside stays the same
				// board side for both players.
				Name:              "BLACK",
				DirectionMatrix:   [][]int16{{1, 0}, {0, -1}},
				StartingPositions: chessBackRank(7, 6, "BLACK"),
			},
		},
		Turns:  gamespec.TurnSpec{Order: []string{"WHITE", "BLACK"}, StartAt: 0},
		Leader: []string{"KING"},
		Conditions: []gamespec.ConditionDefSpec{
			{
				Code: promotionRank,
				Type: "POSITION",
				PerPlayerPositions: map[string][][]uint8{
					"WHITE": rankSquares(7),
					"BLACK": rankSquares(0),
				},
			},
		},
		DrawConditions: gamespec.DrawConditionsSpec{
			RepetitionCount:      u8(3),
			FiftyMoveHalfmoves:   u16(100),
			FiftyMovePawnCodes:   []string{"PAWN"},
			InsufficientMaterial: [][]string{{"KING"}, {"KING", "KNIGHT"}, {"KING", "BISHOP"}},
		},
		Pieces: []gamespec.PieceSpec{
			chessPawn(),
			chessKnight(),
			chessBishop(),
			chessRook(),
			chessQueen(),
			chessKing(),
		},
	}
}

func chessBackRank(backRank, pawnRank uint8, player string) []gamespec.PiecePositionSpec {
	order := []string{"ROOK", "KNIGHT", "BISHOP", "QUEEN", "KING", "BISHOP", "KNIGHT", "ROOK"}
	positions := make(map[string][][]uint8, 6)
	for x, code := range order {
		positions[code] = append(positions[code], []uint8{uint8(x), backRank})
	}
	pawns := make([][]uint8, 8)
	for x := range pawns {
		pawns[x] = []uint8{uint8(x), pawnRank}
	}
	positions["PAWN"] = pawns

	out := make([]gamespec.PiecePositionSpec, 0, len(positions))
	for _, code := range []string{"KING", "QUEEN", "ROOK", "BISHOP", "KNIGHT", "PAWN"} {
		out = append(out, gamespec.PiecePositionSpec{PieceCode: code, Positions: positions[code]})
	}
	return out
}

func rankSquares(y uint8) [][]uint8 {
	out := make([][]uint8, 8)
	for x := range out {
		out[x] = []uint8{uint8(x), y}
	}
	return out
}

var promotionOptions = []string{"QUEEN", "ROOK", "BISHOP", "KNIGHT"}

func promotionModifier() gamespec.ModifierSpec {
	return gamespec.ModifierSpec{
		Action:     "TRANSFORM",
		Conditions: []gamespec.ConditionSpec{{Condition: promotionRank}},
		Options:    promotionOptions,
	}
}

func chessPawn() gamespec.PieceSpec {
	return gamespec.PieceSpec{
		Code: "PAWN",
		Name: "Pawn",
		Moves: []gamespec.MoveSpec{
			{
				// Single push.
				ID:   0,
				Step: [2]int8{0, 1},
				Actions: []gamespec.ActionSpec{
					{State: "EMPTY", Action: "MOVE"},
				},
				Modifiers: []gamespec.ModifierSpec{promotionModifier()},
			},
			{
				// Double push from the start square; never reaches the
				// promotion rank on an 8-rank board, so no modifier.
				ID:         1,
				Step:       [2]int8{0, 2},
				Conditions: []gamespec.ConditionSpec{{Condition: "FIRST_MOVE"}, {Condition: "PATH_EMPTY"}},
				Actions: []gamespec.ActionSpec{
					{State: "EMPTY", Action: "MOVE"},
				},
				SideEffects: []gamespec.SideEffectSpec{
					{Action: "SET_STATE", State: strPtr(enPassantFlag), Duration: u8(1)},
				},
			},
			{
				// Diagonal capture, left and right.
				ID:   2,
				Step: [2]int8{-1, 1},
				Actions: []gamespec.ActionSpec{
					{State: "ENEMY", Action: "CAPTURE"},
				},
				Modifiers: []gamespec.ModifierSpec{promotionModifier()},
			},
			{
				ID:   3,
				Step: [2]int8{1, 1},
				Actions: []gamespec.ActionSpec{
					{State: "ENEMY", Action: "CAPTURE"},
				},
				Modifiers: []gamespec.ModifierSpec{promotionModifier()},
			},
			{
				// En passant: the target is empty, CHECK_STATE finds the
				// double-pusher's one-turn flag on the adjacent file, and
				// a CAPTURE side effect removes it.
				ID:   4,
				Step: [2]int8{-1, 1},
				Conditions: []gamespec.ConditionSpec{
					{Condition: "CHECK_STATE", State: strPtr(enPassantFlag), Position: posPtr(-1, 0)},
				},
				Actions: []gamespec.ActionSpec{
					{State: "EMPTY", Action: "CAPTURE"},
				},
				SideEffects: []gamespec.SideEffectSpec{
					{Action: "CAPTURE", Target: posPtr(-1, 0)},
				},
			},
			{
				ID:   5,
				Step: [2]int8{1, 1},
				Conditions: []gamespec.ConditionSpec{
					{Condition: "CHECK_STATE", State: strPtr(enPassantFlag), Position: posPtr(1, 0)},
				},
				Actions: []gamespec.ActionSpec{
					{State: "EMPTY", Action: "CAPTURE"},
				},
				SideEffects: []gamespec.SideEffectSpec{
					{Action: "CAPTURE", Target: posPtr(1, 0)},
				},
			},
		},
	}
}

var knightOffsets = [8][2]int8{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func chessKnight() gamespec.PieceSpec {
	moves := make([]gamespec.MoveSpec, len(knightOffsets))
	for i, o := range knightOffsets {
		moves[i] = singleStepMove(uint8(i), o)
	}
	return gamespec.PieceSpec{Code: "KNIGHT", Name: "Knight", Moves: moves}
}

var diagonalOffsets = [4][2]int8{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var orthogonalOffsets = [4][2]int8{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func chessBishop() gamespec.PieceSpec {
	return gamespec.PieceSpec{Code: "BISHOP", Name: "Bishop", Moves: slidingMoves(diagonalOffsets[:])}
}

func chessRook() gamespec.PieceSpec {
	return gamespec.PieceSpec{Code: "ROOK", Name: "Rook", Moves: slidingMoves(orthogonalOffsets[:])}
}

func chessQueen() gamespec.PieceSpec {
	all := append(append([][2]int8{}, diagonalOffsets[:]...), orthogonalOffsets[:]...)
	return gamespec.PieceSpec{Code: "QUEEN", Name: "Queen", Moves: slidingMoves(all)}
}

func chessKing() gamespec.PieceSpec {
	all := append(append([][2]int8{}, diagonalOffsets[:]...), orthogonalOffsets[:]...)
	moves := make([]gamespec.MoveSpec, 0, len(all)+2)
	for i, o := range all {
		moves = append(moves, singleStepMove(uint8(i), o))
	}

	// Queenside: king [e,0] -> [c,0] (step -2,0), rook [a,0] -> [d,0].
	// Kingside:  king [e,0] -> [g,0] (step +2,0), rook [h,0] -> [f,0].
	// Offsets are relative to the king's own source square.
	moves = append(moves,
		gamespec.MoveSpec{
			ID:   8,
			Step: [2]int8{-2, 0},
			Conditions: []gamespec.ConditionSpec{
				{Condition: "FIRST_MOVE"},
				{Condition: "PATH_EMPTY"},
				{Condition: "ROOK_FIRST_MOVE", Position: posPtr(-4, 0)},
				{Condition: "NOT_ATTACKED"},
				{Condition: "PATH_NOT_ATTACKED"},
			},
			Actions: []gamespec.ActionSpec{{State: "EMPTY", Action: "MOVE"}},
			SideEffects: []gamespec.SideEffectSpec{
				{Action: "MOVE", From: posPtr(-4, 0), To: posPtr(-1, 0)},
			},
		},
		gamespec.MoveSpec{
			ID:   9,
			Step: [2]int8{2, 0},
			Conditions: []gamespec.ConditionSpec{
				{Condition: "FIRST_MOVE"},
				{Condition: "PATH_EMPTY"},
				{Condition: "ROOK_FIRST_MOVE", Position: posPtr(3, 0)},
				{Condition: "NOT_ATTACKED"},
				{Condition: "PATH_NOT_ATTACKED"},
			},
			Actions: []gamespec.ActionSpec{{State: "EMPTY", Action: "MOVE"}},
			SideEffects: []gamespec.SideEffectSpec{
				{Action: "MOVE", From: posPtr(3, 0), To: posPtr(1, 0)},
			},
		},
	)

	return gamespec.PieceSpec{Code: "KING", Name: "King", Moves: moves}
}

func singleStepMove(id uint8, step [2]int8) gamespec.MoveSpec {
	return gamespec.MoveSpec{
		ID:   id,
		Step: step,
		Actions: []gamespec.ActionSpec{
			{State: "EMPTY", Action: "MOVE"},
			{State: "ENEMY", Action: "CAPTURE"},
		},
	}
}

func slidingMoves(offsets [][2]int8) []gamespec.MoveSpec {
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

func posPtr(x, y int8) *[2]int8 {
	p := [2]int8{x, y}
	return &p
}

func strPtr(s string) *string { return &s }
func u8(v uint8) *uint8       { return &v }
func u16(v uint16) *uint16    { return &v }
