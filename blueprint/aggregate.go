package blueprint

import (
	"github.com/frankmangone/ruleforge/condition"
	"github.com/frankmangone/ruleforge/piece"
	"github.com/frankmangone/ruleforge/position"
)

// GenerateAll runs every move blueprint in declaration order, building the
// valid-move-id set as it goes so later blueprints' DEPENDS_ON conditions
// can observe earlier ones. Later writes to the same target win.
func (pb *PieceBlueprint) GenerateAll(pc *piece.Piece, source position.Position, ctx condition.GameContext) map[string]Effect {
	aggregate := make(map[string]Effect)
	validMoveIDs := make(map[uint8]struct{})

	for i := range pb.Moves {
		mb := &pb.Moves[i]
		result := Generate(mb, pc, source, validMoveIDs, ctx)
		if len(result) > 0 {
			validMoveIDs[mb.ID] = struct{}{}
		}
		for target, effect := range result {
			aggregate[target] = effect
		}
	}

	return aggregate
}
