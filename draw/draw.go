// Package draw implements the position-key hash and the three built-in
// draw detectors: repetition, the fifty-move rule, insufficient material.
package draw

import (
	"fmt"
	"sort"
	"strings"

	"github.com/frankmangone/ruleforge/piece"
	"github.com/frankmangone/ruleforge/position"
)

// HistoryEntry is the slice of a move record the fifty-move detector needs.
type HistoryEntry struct {
	Action    string
	PieceCode string
}

// PositionKey builds the deterministic repetition hash: sorted
// "[x,y:code:player:moved_flag:state_flags]" entries prefixed with the
// current player.
func PositionKey(currentPlayer string, pieces map[string]*piece.Piece) string {
	type entry struct {
		pos position.Position
		pc  *piece.Piece
	}

	entries := make([]entry, 0, len(pieces))
	for key, pc := range pieces {
		pos, ok := position.ParsePosition(key)
		if !ok {
			continue
		}
		entries = append(entries, entry{pos: pos, pc: pc})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].pos.Compare(entries[j].pos) < 0
	})

	var b strings.Builder
	b.WriteString(currentPlayer)
	b.WriteByte('|')
	for _, e := range entries {
		moved := 0
		if e.pc.TotalMoves > 0 {
			moved = 1
		}
		fmt.Fprintf(&b, "[%s:%s:%s:%d:%s]", e.pos.Serialize(), e.pc.Code, e.pc.Player, moved, stateFlagsString(e.pc.State))
	}
	return b.String()
}

// stateFlagsString encodes a state map as sorted "k=v" pairs joined by
// ";", values rendered B / U<n> / S<text>.
func stateFlagsString(state map[string]piece.StateValue) string {
	names := make([]string, 0, len(state))
	for name := range state {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		var encoded string
		switch v := state[name].(type) {
		case piece.Blank:
			encoded = "B"
		case piece.Counter:
			encoded = fmt.Sprintf("U%d", v.N)
		case piece.Labeled:
			encoded = "S" + v.Value
		}
		parts = append(parts, name+"="+encoded)
	}
	return strings.Join(parts, ";")
}

// IsRepetition reports whether key occurs at least threshold times within
// hashes, counting the just-appended occurrence.
func IsRepetition(hashes []string, key string, threshold uint16) bool {
	if threshold == 0 {
		return false
	}
	count := 0
	for _, h := range hashes {
		if h == key {
			count++
		}
	}
	return count >= int(threshold)
}

// IsFiftyMove reports whether the last halfmoves records contain neither a
// CAPTURE nor a move by any of pawnCodes.
func IsFiftyMove(history []HistoryEntry, halfmoves uint16, pawnCodes []string) bool {
	if halfmoves == 0 || len(history) < int(halfmoves) {
		return false
	}
	recent := history[len(history)-int(halfmoves):]
	for _, r := range recent {
		if r.Action == "CAPTURE" {
			return false
		}
		for _, code := range pawnCodes {
			if r.PieceCode == code {
				return false
			}
		}
	}
	return true
}

// IsInsufficientMaterial reports whether every player's sorted piece-code
// multiset matches one of the pre-sorted insufficientSets entries.
func IsInsufficientMaterial(pieces map[string]*piece.Piece, players []string, insufficientSets [][]string) bool {
	if len(insufficientSets) == 0 {
		return false
	}

	byPlayer := make(map[string][]string, len(players))
	for _, pc := range pieces {
		byPlayer[pc.Player] = append(byPlayer[pc.Player], pc.Code)
	}

	for _, player := range players {
		codes := byPlayer[player]
		sort.Strings(codes)

		matched := false
		for _, entry := range insufficientSets {
			if sameCodes(codes, entry) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func sameCodes(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
