package engine

import "github.com/frankmangone/ruleforge/position"

// calculateMoves handles a CalculateMoves request from Idle or Moving.
// Re-selecting while in Moving simply replaces the selection.
func (g *Game) calculateMoves(p position.Position) error {
	switch g.State.Phase.(type) {
	case Idle, Moving:
		// allowed
	default:
		return errInvalidGamePhase()
	}

	pc, ok := g.PieceAt(p)
	if !ok {
		return errNoPieceInPosition(p)
	}
	if pc.Player != g.CurrentPlayer() {
		return errInvalidPlayer(p)
	}

	pb, ok := g.Blueprints[pc.Code]
	if !ok {
		return errNoAvailableMoves()
	}

	// Filter out moves that would leave the own leader in check.
	moves := pb.GenerateAll(pc, p, g)
	for target, effect := range moves {
		if g.leaderInCheckForPieces(simulate(g.State.Pieces, effect)) {
			delete(moves, target)
		}
	}
	if len(moves) == 0 {
		return errNoAvailableMoves()
	}

	g.State.AvailableMoves = moves
	g.State.Phase = Moving{Source: p.Clone()}
	return nil
}
