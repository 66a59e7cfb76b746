package engine

import "github.com/frankmangone/ruleforge/draw"

// checkDraws records the position key, then runs the three draw detectors
// in order, returning true once one has set GameOver.
func (g *Game) checkDraws() bool {
	key := draw.PositionKey(g.CurrentPlayer(), g.State.Pieces)
	g.State.PositionHashes = append(g.State.PositionHashes, key)

	if g.RepetitionCount != nil {
		if draw.IsRepetition(g.State.PositionHashes, key, uint16(*g.RepetitionCount)) {
			g.State.Phase = GameOver{Winner: nil}
			return true
		}
	}

	if g.FiftyMoveHalfmoves != nil {
		entries := make([]draw.HistoryEntry, len(g.State.History))
		for i, r := range g.State.History {
			entries[i] = draw.HistoryEntry{Action: r.Action, PieceCode: r.PieceCode}
		}
		if draw.IsFiftyMove(entries, *g.FiftyMoveHalfmoves, g.FiftyMovePawnCodes) {
			g.State.Phase = GameOver{Winner: nil}
			return true
		}
	}

	if len(g.InsufficientMaterial) > 0 {
		if draw.IsInsufficientMaterial(g.State.Pieces, g.Players, g.InsufficientMaterial) {
			g.State.Phase = GameOver{Winner: nil}
			return true
		}
	}

	return false
}

// checkGameOver runs after every applied MOVE/CAPTURE/TRANSFORM: draws
// first, then checkmate/stalemate/elimination for the now-current player.
func (g *Game) checkGameOver() {
	if g.checkDraws() {
		return
	}

	for {
		if g.AnyLegalMoves() {
			g.State.Phase = Idle{}
			return
		}

		inCheck := g.LeaderInCheck()
		if !inCheck {
			g.State.Phase = GameOver{Winner: nil}
			return
		}

		if len(g.TurnOrder) <= 2 {
			winner := g.PreviousPlayer()
			g.State.Phase = GameOver{Winner: &winner}
			return
		}

		// Three or more players left: eliminate the stuck player and loop,
		// so a cascading elimination resolves within this same call.
		eliminated := g.CurrentPlayer()
		g.eliminatePlayer(eliminated)
		g.Logger.Printf("engine: eliminated %s (checkmated, %d player(s) remain)", eliminated, len(g.TurnOrder))

		if len(g.TurnOrder) == 1 {
			winner := g.TurnOrder[0]
			g.State.Phase = GameOver{Winner: &winner}
			return
		}
	}
}

// eliminatePlayer removes a player from turn rotation and the board. The
// cursor is rewritten against the post-removal order so the next surviving
// player is never skipped.
func (g *Game) eliminatePlayer(player string) {
	idx := -1
	for i, p := range g.TurnOrder {
		if p == player {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	newOrder := make([]string, 0, len(g.TurnOrder)-1)
	newOrder = append(newOrder, g.TurnOrder[:idx]...)
	newOrder = append(newOrder, g.TurnOrder[idx+1:]...)
	g.TurnOrder = newOrder

	for i, p := range g.Players {
		if p == player {
			g.Players = append(g.Players[:i], g.Players[i+1:]...)
			break
		}
	}

	for key, pc := range g.State.Pieces {
		if pc.Player == player {
			delete(g.State.Pieces, key)
		}
	}

	if len(newOrder) == 0 {
		g.State.CurrentTurn = 0
		return
	}
	if int(g.State.CurrentTurn) >= len(newOrder) {
		g.State.CurrentTurn = 0
	}
}
