package blueprint

import (
	"github.com/frankmangone/ruleforge/condition"
	"github.com/frankmangone/ruleforge/piece"
	"github.com/frankmangone/ruleforge/position"
)

// Generate runs one compiled move blueprint from source, returning every
// (target, Effect) pair it emits.
func Generate(mb *MoveBlueprint, pc *piece.Piece, source position.Position, validMoveIDs map[uint8]struct{}, ctx condition.GameContext) map[string]Effect {
	results := make(map[string]Effect)

	step, ok := mb.PerPlayerStep[ctx.CurrentPlayer()]
	if !ok {
		return results
	}

	// Defaults: a single non-looping step.
	loop := false
	limit := uint8(1)
	hasLimit := true
	untilCode := "NOT_EMPTY"
	if mb.Repeat != nil {
		loop = mb.Repeat.Loop
		if mb.Repeat.Until != nil {
			untilCode = *mb.Repeat.Until
		}
		if mb.Repeat.Times != nil {
			limit = *mb.Repeat.Times
		}
		// Looping with no count (or zero) means unlimited.
		if loop && (mb.Repeat.Times == nil || *mb.Repeat.Times == 0) {
			hasLimit = false
		}
	}

	zeroStep := make(position.ExtendedPosition, len(source))
	until := condition.Condition{Code: untilCode}

	cur := source
	for iter := uint8(0); !hasLimit || iter < limit; iter++ {
		effect, next, advanced := singleStep(mb, pc, cur, step, validMoveIDs, ctx)
		if effect != nil {
			results[next.Key()] = *effect
		}
		if !advanced {
			break
		}
		cur = next

		if condition.Evaluate(until, ctx, condition.Params{Piece: pc, Source: cur, Step: zeroStep}) {
			break
		}
	}

	return results
}

// singleStep returns the emitted effect (nil if none fired), the next
// source for the repeat loop, and whether the loop may continue (false
// only when the step landed off-board).
func singleStep(mb *MoveBlueprint, pc *piece.Piece, source position.Position, step position.ExtendedPosition, validMoveIDs map[uint8]struct{}, ctx condition.GameContext) (*Effect, position.Position, bool) {
	ext := position.Add(source, step)
	if !ctx.Board().IsValid(ext) {
		return nil, position.Position{}, false
	}
	target := position.Narrow(ext)

	moveParams := condition.Params{Piece: pc, Source: source, Step: step, ValidMoveIDs: validMoveIDs}
	for _, c := range mb.Conditions {
		if !condition.Evaluate(c, ctx, moveParams) {
			return nil, target, true
		}
	}

	state := condition.ClassifyPosition(ctx, target)
	action, ok := mb.Actions[state]
	if !ok {
		return nil, target, true
	}

	for _, c := range action.Conditions {
		if !condition.Evaluate(c, ctx, moveParams) {
			return nil, target, true
		}
	}

	moved := pc.Clone()
	moved.TotalMoves++

	extras := applySideEffects(mb.SideEffects, ctx, moved, source)
	extras = append(extras, applySideEffects(action.SideEffects, ctx, moved, source)...)

	changes := make([]BoardChange, 0, 2+len(extras))
	changes = append(changes, BoardChange{Position: source, Piece: nil})
	changes = append(changes, BoardChange{Position: target, Piece: moved})
	changes = append(changes, extras...)

	actionName := action.Action
	var metadata []string
	for _, mod := range mb.Modifiers {
		if modifierMatches(mod, ctx, moved, target, validMoveIDs) {
			actionName = mod.Action
			metadata = mod.Options
			break
		}
	}

	return &Effect{Action: actionName, BoardChanges: changes, Metadata: metadata}, target, true
}

func modifierMatches(mod Modifier, ctx condition.GameContext, moved *piece.Piece, target position.Position, validMoveIDs map[uint8]struct{}) bool {
	params := condition.Params{Piece: moved, Source: target, ValidMoveIDs: validMoveIDs}
	for _, c := range mod.Conditions {
		if !condition.Evaluate(c, ctx, params) {
			return false
		}
	}
	return true
}

func applySideEffects(effects []SideEffectBlueprint, ctx condition.GameContext, moved *piece.Piece, source position.Position) []BoardChange {
	var changes []BoardChange
	player := ctx.CurrentPlayer()

	for _, eff := range effects {
		switch e := eff.(type) {
		case SetStateEffect:
			if e.Duration != nil {
				moved.State[e.Flag] = piece.Counter{N: *e.Duration}
			} else {
				moved.State[e.Flag] = piece.Blank{}
			}

		case CaptureEffect:
			offset, ok := e.PerPlayerOffset[player]
			if !ok {
				continue
			}
			ext := position.Add(source, offset)
			if !ctx.Board().IsValid(ext) {
				continue
			}
			changes = append(changes, BoardChange{Position: position.Narrow(ext), Piece: nil})

		case MoveEffect:
			fromOffset, fromOK := e.PerPlayerFrom[player]
			toOffset, toOK := e.PerPlayerTo[player]
			if !fromOK || !toOK {
				continue
			}
			fromExt := position.Add(source, fromOffset)
			toExt := position.Add(source, toOffset)
			if !ctx.Board().IsValid(fromExt) || !ctx.Board().IsValid(toExt) {
				continue
			}
			fromPos := position.Narrow(fromExt)
			moving, ok := ctx.PieceAt(fromPos)
			if !ok {
				continue
			}
			changes = append(changes,
				BoardChange{Position: fromPos, Piece: nil},
				BoardChange{Position: position.Narrow(toExt), Piece: moving.Clone()},
			)

		case UnknownEffect:
			// Forward compatibility: no-op.
		}
	}

	return changes
}
