package engine

import "github.com/frankmangone/ruleforge/piece"

// transform resolves a pending Transforming phase with the chosen option.
func (g *Game) transform(target string) error {
	t, ok := g.State.Phase.(Transforming)
	if !ok {
		return errInvalidGamePhase()
	}

	offered := false
	for _, opt := range t.Options {
		if opt == target {
			offered = true
			break
		}
	}
	if !offered {
		return errInvalidTransformationOption(target)
	}

	old, _ := g.PieceAt(t.Position)
	g.State.Pieces[t.Position.Key()] = piece.New(target, old.Player)

	if n := len(g.State.History); n > 0 {
		promotion := target
		g.State.History[n-1].Promotion = &promotion
	}

	g.nextTurn()
	g.State.AvailableMoves = nil
	g.checkGameOver()
	return nil
}
