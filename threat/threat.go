// Package threat computes the squares a player's pieces attack. Threat is
// pure geometric reach: move-level and action-level conditions are never
// evaluated.
package threat

import (
	"github.com/frankmangone/ruleforge/blueprint"
	"github.com/frankmangone/ruleforge/board"
	"github.com/frankmangone/ruleforge/piece"
	"github.com/frankmangone/ruleforge/position"
)

const (
	stateEnemy    = "ENEMY"
	actionCapture = "CAPTURE"
)

// AttackedBy returns the set of squares, keyed by Position.Key(), that
// player's pieces threaten to capture on.
func AttackedBy(player string, pieces map[string]*piece.Piece, b *board.Board, blueprints map[string]*blueprint.PieceBlueprint) map[string]struct{} {
	threats := make(map[string]struct{})

	for key, pc := range pieces {
		if pc.Player != player {
			continue
		}
		source, ok := position.ParsePosition(key)
		if !ok {
			continue
		}
		pb, ok := blueprints[pc.Code]
		if !ok {
			continue
		}

		for i := range pb.Moves {
			mb := &pb.Moves[i]
			action, ok := mb.Actions[stateEnemy]
			if !ok || action.Action != actionCapture {
				continue
			}
			step, ok := mb.PerPlayerStep[player]
			if !ok {
				continue
			}
			castRay(source, step, player, pieces, b, mb, threats)
		}
	}

	return threats
}

// castRay walks one blueprint's step from source: own pieces block, an
// opponent's piece is added and ends the ray, empty squares are added and
// walked through.
func castRay(source position.Position, step position.ExtendedPosition, player string, pieces map[string]*piece.Piece, b *board.Board, mb *blueprint.MoveBlueprint, threats map[string]struct{}) {
	limit := uint8(1)
	loop := false
	if mb.Repeat != nil {
		loop = mb.Repeat.Loop
		if mb.Repeat.Times != nil {
			limit = *mb.Repeat.Times
		}
	}

	cur := source
	for iter := uint8(0); loop || iter < limit; iter++ {
		ext := position.Add(cur, step)
		if !b.IsValid(ext) {
			return
		}
		target := position.Narrow(ext)

		if occupant, occupied := pieces[target.Key()]; occupied {
			if occupant.Player != player {
				threats[target.Key()] = struct{}{}
			}
			return
		}

		threats[target.Key()] = struct{}{}
		cur = target
	}
}
