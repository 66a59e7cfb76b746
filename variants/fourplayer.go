package variants

import "github.com/frankmangone/ruleforge/gamespec"

// NewFourPlayerSkirmish is a compact four-player game: direction matrices
// rotated 90 degrees apart, a disabled-corner board, one leader and two
// soldiers per player.
func NewFourPlayerSkirmish() gamespec.GameSpec {
	return gamespec.GameSpec{
		Name: "Four-Player Skirmish",
		Board: gamespec.BoardSpec{
			Dimensions:        []uint8{8, 8},
			DisabledPositions: cornerSquares(2),
		},
		Players: []gamespec.PlayerSpec{
			{Name: "SOUTH", DirectionMatrix: [][]int16{{1, 0}, {0, 1}}, StartingPositions: skirmishSetup(3, 7, "SOUTH")},
			{Name: "EAST", DirectionMatrix: [][]int16{{0, -1}, {1, 0}}, StartingPositions: skirmishSetup(0, 4, "EAST")},
			{Name: "NORTH", DirectionMatrix: [][]int16{{-1, 0}, {0, -1}}, StartingPositions: skirmishSetup(3, 0, "NORTH")},
			{Name: "WEST", DirectionMatrix: [][]int16{{0, 1}, {-1, 0}}, StartingPositions: skirmishSetup(7, 3, "WEST")},
		},
		Turns:  gamespec.TurnSpec{Order: []string{"SOUTH", "EAST", "NORTH", "WEST"}, StartAt: 0},
		Leader: []string{"CHIEF"},
		Pieces: []gamespec.PieceSpec{skirmishSoldier(), skirmishChief()},
	}
}

// cornerSquares disables an n x n block in each corner.
func cornerSquares(n uint8) [][]uint8 {
	var out [][]uint8
	corners := [][2]uint8{{0, 0}, {0, 8 - n}, {8 - n, 0}, {8 - n, 8 - n}}
	for _, c := range corners {
		for x := uint8(0); x < n; x++ {
			for y := uint8(0); y < n; y++ {
				out = append(out, []uint8{c[0] + x, c[1] + y})
			}
		}
	}
	return out
}

// skirmishSetup places one CHIEF and two flanking SOLDIERs. The flank axis
// follows which board edge the chief sits on.
func skirmishSetup(chiefX, chiefY uint8, player string) []gamespec.PiecePositionSpec {
	var soldiers [][]uint8
	if chiefY == 0 || chiefY == 7 {
		soldiers = [][]uint8{{chiefX - 1, chiefY}, {chiefX + 1, chiefY}}
	} else {
		soldiers = [][]uint8{{chiefX, chiefY - 1}, {chiefX, chiefY + 1}}
	}
	return []gamespec.PiecePositionSpec{
		{PieceCode: "CHIEF", Positions: [][]uint8{{chiefX, chiefY}}},
		{PieceCode: "SOLDIER", Positions: soldiers},
	}
}

func skirmishSoldier() gamespec.PieceSpec {
	return gamespec.PieceSpec{
		Code: "SOLDIER",
		Name: "Soldier",
		Moves: []gamespec.MoveSpec{
			{ID: 0, Step: [2]int8{0, 1}, Actions: []gamespec.ActionSpec{{State: "EMPTY", Action: "MOVE"}}},
			{ID: 1, Step: [2]int8{-1, 1}, Actions: []gamespec.ActionSpec{{State: "ENEMY", Action: "CAPTURE"}}},
			{ID: 2, Step: [2]int8{1, 1}, Actions: []gamespec.ActionSpec{{State: "ENEMY", Action: "CAPTURE"}}},
		},
	}
}

func skirmishChief() gamespec.PieceSpec {
	all := append(append([][2]int8{}, diagonalOffsets[:]...), orthogonalOffsets[:]...)
	moves := make([]gamespec.MoveSpec, len(all))
	for i, o := range all {
		moves[i] = singleStepMove(uint8(i), o)
	}
	return gamespec.PieceSpec{Code: "CHIEF", Name: "Chief", Moves: moves}
}
