package engine

import (
	"github.com/frankmangone/ruleforge/blueprint"
	"github.com/frankmangone/ruleforge/piece"
	"github.com/frankmangone/ruleforge/position"
	"github.com/frankmangone/ruleforge/threat"
)

// LeaderInCheck reports whether the current player's leader is attacked.
func (g *Game) LeaderInCheck() bool {
	return g.leaderInCheckForPieces(g.State.Pieces)
}

// leaderInCheckForPieces runs the check against a hypothetical pieces map.
func (g *Game) leaderInCheckForPieces(pieces map[string]*piece.Piece) bool {
	if len(g.Leader) == 0 {
		return false
	}
	leaderCodes := make(map[string]struct{}, len(g.Leader))
	for _, code := range g.Leader {
		leaderCodes[code] = struct{}{}
	}

	player := g.CurrentPlayer()
	for key, pc := range pieces {
		if pc.Player != player {
			continue
		}
		if _, isLeader := leaderCodes[pc.Code]; !isLeader {
			continue
		}
		pos, ok := position.ParsePosition(key)
		if !ok {
			continue
		}
		for _, opp := range g.Players {
			if opp == player {
				continue
			}
			if _, attacked := threat.AttackedBy(opp, pieces, g.board, g.Blueprints)[pos.Key()]; attacked {
				return true
			}
		}
	}
	return false
}

// AnyLegalMoves reports whether the current player has at least one move
// that does not leave their own leader in check.
func (g *Game) AnyLegalMoves() bool {
	player := g.CurrentPlayer()
	for key, pc := range g.State.Pieces {
		if pc.Player != player {
			continue
		}
		pb, ok := g.Blueprints[pc.Code]
		if !ok {
			continue
		}
		source, ok := position.ParsePosition(key)
		if !ok {
			continue
		}

		for _, effect := range pb.GenerateAll(pc, source, g) {
			if !g.leaderInCheckForPieces(simulate(g.State.Pieces, effect)) {
				return true
			}
		}
	}
	return false
}

func simulate(live map[string]*piece.Piece, effect blueprint.Effect) map[string]*piece.Piece {
	sim := make(map[string]*piece.Piece, len(live))
	for k, v := range live {
		sim[k] = v
	}
	for _, change := range effect.BoardChanges {
		if change.Piece != nil {
			sim[change.Position.Key()] = change.Piece
		} else {
			delete(sim, change.Position.Key())
		}
	}
	return sim
}
