package engine

import (
	"github.com/frankmangone/ruleforge/blueprint"
	"github.com/frankmangone/ruleforge/position"
)

// executeMove applies the available move keyed by p while in the Moving
// phase.
func (g *Game) executeMove(p position.Position) error {
	moving, ok := g.State.Phase.(Moving)
	if !ok {
		return errInvalidGamePhase()
	}
	if g.State.AvailableMoves == nil {
		return errNoAvailableMoves()
	}

	effect, ok := g.State.AvailableMoves[p.Key()]
	if !ok {
		// An unlisted target abandons the selection entirely.
		g.State.Phase = Idle{}
		return errInvalidMove(p)
	}

	g.applyEffect(effect, moving.Source, p)
	return nil
}

// applyEffect replays the board changes, appends a history record, and
// dispatches by the effect's action tag.
func (g *Game) applyEffect(effect blueprint.Effect, from, to position.Position) {
	var player, pieceCode string
	if pc, ok := g.PieceAt(from); ok {
		player, pieceCode = pc.Player, pc.Code
	}

	for _, change := range effect.BoardChanges {
		if change.Piece != nil {
			g.State.Pieces[change.Position.Key()] = change.Piece
		} else {
			delete(g.State.Pieces, change.Position.Key())
		}
	}

	g.State.History = append(g.State.History, MoveRecord{
		Player:    player,
		PieceCode: pieceCode,
		From:      from.Clone(),
		To:        to.Clone(),
		Action:    effect.Action,
	})

	switch effect.Action {
	case ActionMove, ActionCapture:
		g.nextTurn()
		g.State.AvailableMoves = nil
		g.checkGameOver()
	case ActionTransform:
		g.State.Phase = Transforming{Position: to.Clone(), Options: effect.Metadata}
	default:
		// Reserved for future actions: no state-machine transition.
	}
}
