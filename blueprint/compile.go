package blueprint

import (
	"fmt"

	"github.com/frankmangone/ruleforge/condition"
	"github.com/frankmangone/ruleforge/gamespec"
	"github.com/frankmangone/ruleforge/position"
)

// CompileDirectionMatrices converts every player's direction matrix,
// rejecting any whose determinant isn't +1 or -1.
func CompileDirectionMatrices(players []gamespec.PlayerSpec) (map[string]position.DirectionMatrix, error) {
	matrices := make(map[string]position.DirectionMatrix, len(players))
	for _, p := range players {
		m := position.DirectionMatrix(p.DirectionMatrix)
		if !position.ValidDeterminant(m) {
			return nil, fmt.Errorf("blueprint: player %q has an invalid direction matrix (determinant must be +1 or -1)", p.Name)
		}
		matrices[p.Name] = m
	}
	return matrices, nil
}

// CompilePieces compiles every piece spec into its blueprint, keyed by
// piece code. A condition code found in customConditions with Type
// "POSITION" compiles to a position-set check.
func CompilePieces(pieces []gamespec.PieceSpec, matrices map[string]position.DirectionMatrix, customConditions map[string]gamespec.ConditionDefSpec) map[string]*PieceBlueprint {
	out := make(map[string]*PieceBlueprint, len(pieces))
	for _, p := range pieces {
		out[p.Code] = compilePiece(p, matrices, customConditions)
	}
	return out
}

func compilePiece(p gamespec.PieceSpec, matrices map[string]position.DirectionMatrix, customConditions map[string]gamespec.ConditionDefSpec) *PieceBlueprint {
	pb := &PieceBlueprint{Code: p.Code}
	for _, m := range p.Moves {
		pb.Moves = append(pb.Moves, compileMove(m, matrices, customConditions))
	}
	return pb
}

func compileMove(m gamespec.MoveSpec, matrices map[string]position.DirectionMatrix, customConditions map[string]gamespec.ConditionDefSpec) MoveBlueprint {
	canonicalStep := position.ExtendedPosition{int16(m.Step[0]), int16(m.Step[1])}

	mb := MoveBlueprint{
		ID:            m.ID,
		PerPlayerStep: perPlayerOffset(canonicalStep, matrices),
		Actions:       make(map[string]ActionBlueprint, len(m.Actions)),
		Conditions:    compileConditions(m.Conditions, matrices, customConditions),
		SideEffects:   compileSideEffects(m.SideEffects, matrices),
	}

	for _, a := range m.Actions {
		mb.Actions[a.State] = ActionBlueprint{
			Action:      a.Action,
			Conditions:  compileConditions(a.Conditions, matrices, customConditions),
			SideEffects: compileSideEffects(a.SideEffects, matrices),
		}
	}

	for _, mod := range m.Modifiers {
		mb.Modifiers = append(mb.Modifiers, Modifier{
			Action:     mod.Action,
			Conditions: compileConditions(mod.Conditions, matrices, customConditions),
			Options:    mod.Options,
		})
	}

	if m.Repeat != nil {
		mb.Repeat = &RepeatConfig{Until: m.Repeat.Until, Times: m.Repeat.Times, Loop: m.Repeat.Loop}
	}

	return mb
}

func compileConditions(specs []gamespec.ConditionSpec, matrices map[string]position.DirectionMatrix, customConditions map[string]gamespec.ConditionDefSpec) []condition.Condition {
	if specs == nil {
		return nil
	}
	out := make([]condition.Condition, len(specs))
	for i, c := range specs {
		out[i] = condition.Condition{
			Code:      c.Condition,
			MoveID:    c.MoveID,
			StateName: c.State,
		}
		if c.Position != nil {
			canonical := position.ExtendedPosition{int16(c.Position[0]), int16(c.Position[1])}
			out[i].PerPlayerOffset = perPlayerOffset(canonical, matrices)
		}
		if def, ok := customConditions[c.Condition]; ok && def.Type == "POSITION" {
			out[i].PerPlayerPositionSet = positionSet(def.PerPlayerPositions)
		}
	}
	return out
}

func positionSet(perPlayer map[string][][]uint8) map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{}, len(perPlayer))
	for player, positions := range perPlayer {
		set := make(map[string]struct{}, len(positions))
		for _, p := range positions {
			set[position.Position(p).Key()] = struct{}{}
		}
		out[player] = set
	}
	return out
}

func compileSideEffects(specs []gamespec.SideEffectSpec, matrices map[string]position.DirectionMatrix) []SideEffectBlueprint {
	if specs == nil {
		return nil
	}
	out := make([]SideEffectBlueprint, len(specs))
	for i, se := range specs {
		out[i] = compileSideEffect(se, matrices)
	}
	return out
}

const (
	actionSetState = "SET_STATE"
	actionCapture  = "CAPTURE"
	actionMove     = "MOVE"
)

func compileSideEffect(se gamespec.SideEffectSpec, matrices map[string]position.DirectionMatrix) SideEffectBlueprint {
	switch se.Action {
	case actionSetState:
		flag := ""
		if se.State != nil {
			flag = *se.State
		}
		var duration *uint16
		if se.Duration != nil {
			d := uint16(*se.Duration)
			duration = &d
		}
		return SetStateEffect{Flag: flag, Duration: duration}

	case actionCapture:
		return CaptureEffect{PerPlayerOffset: perPlayerOffsetFromSpec(se.Target, matrices)}

	case actionMove:
		return MoveEffect{
			PerPlayerFrom: perPlayerOffsetFromSpec(se.From, matrices),
			PerPlayerTo:   perPlayerOffsetFromSpec(se.To, matrices),
		}

	default:
		return UnknownEffect{Action: se.Action}
	}
}

func perPlayerOffsetFromSpec(offset *[2]int8, matrices map[string]position.DirectionMatrix) map[string]position.ExtendedPosition {
	if offset == nil {
		return nil
	}
	canonical := position.ExtendedPosition{int16(offset[0]), int16(offset[1])}
	return perPlayerOffset(canonical, matrices)
}

func perPlayerOffset(canonical position.ExtendedPosition, matrices map[string]position.DirectionMatrix) map[string]position.ExtendedPosition {
	out := make(map[string]position.ExtendedPosition, len(matrices))
	for player, m := range matrices {
		out[player] = position.ApplyMatrix(m, canonical)
	}
	return out
}
