package variants

import "github.com/frankmangone/ruleforge/gamespec"

// reserveCounterFlag is a Counter flag set on the capturing piece via a
// SET_STATE side effect. It marks a recent capture rather than counting
// captures. The reserve itself is application state; the move generator
// only ever iterates pieces already on the board.
const reserveCounterFlag = "RESERVE_PAWN"

// NewShogiLikeDrop demonstrates the drop/reserve extension point: every
// capture by a GENERAL sets its reserve flag to Counter(255), replacing any
// earlier value rather than adding to it, and like any Counter it ticks down
// once per turn. Actual drop placement
// needs a board-less source square, which no transition supplies; a
// consuming application would add its own transition type for that.
func NewShogiLikeDrop() gamespec.GameSpec {
	return gamespec.GameSpec{
		Name: "Shogi-like Drop Demo",
		Board: gamespec.BoardSpec{
			Dimensions: []uint8{5, 5},
		},
		Players: []gamespec.PlayerSpec{
			{
				Name:            "SENTE",
				DirectionMatrix: [][]int16{{1, 0}, {0, 1}},
				StartingPositions: []gamespec.PiecePositionSpec{
					{PieceCode: "GENERAL", Positions: [][]uint8{{2, 0}}},
					{PieceCode: "PAWN", Positions: [][]uint8{{2, 1}}},
				},
			},
			{
				Name:            "GOTE",
				DirectionMatrix: [][]int16{{1, 0}, {0, -1}},
				StartingPositions: []gamespec.PiecePositionSpec{
					{PieceCode: "GENERAL", Positions: [][]uint8{{2, 4}}},
					{PieceCode: "PAWN", Positions: [][]uint8{{2, 3}}},
				},
			},
		},
		Turns:  gamespec.TurnSpec{Order: []string{"SENTE", "GOTE"}, StartAt: 0},
		Leader: []string{"GENERAL"},
		Pieces: []gamespec.PieceSpec{
			{
				Code: "GENERAL",
				Name: "General",
				Moves: func() []gamespec.MoveSpec {
					all := append(append([][2]int8{}, diagonalOffsets[:]...), orthogonalOffsets[:]...)
					moves := make([]gamespec.MoveSpec, len(all))
					for i, o := range all {
						moves[i] = gamespec.MoveSpec{
							ID:   uint8(i),
							Step: o,
							Actions: []gamespec.ActionSpec{
								{State: "EMPTY", Action: "MOVE"},
								{
									State:  "ENEMY",
									Action: "CAPTURE",
									SideEffects: []gamespec.SideEffectSpec{
										{Action: "SET_STATE", State: strPtr(reserveCounterFlag), Duration: u8(255)},
									},
								},
							},
						}
					}
					return moves
				}(),
			},
			{
				Code: "PAWN",
				Name: "Pawn",
				Moves: []gamespec.MoveSpec{
					{ID: 0, Step: [2]int8{0, 1}, Actions: []gamespec.ActionSpec{{State: "EMPTY", Action: "MOVE"}}},
					{ID: 1, Step: [2]int8{-1, 1}, Actions: []gamespec.ActionSpec{{State: "ENEMY", Action: "CAPTURE"}}},
					{ID: 2, Step: [2]int8{1, 1}, Actions: []gamespec.ActionSpec{{State: "ENEMY", Action: "CAPTURE"}}},
				},
			},
		},
	}
}
