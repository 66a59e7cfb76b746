// Package board holds the shape of a game board and its validity check.
package board

import "github.com/frankmangone/ruleforge/position"

// Board is the rectangular extent of play plus any squares carved out of it.
type Board struct {
	Dimensions []uint8
	Disabled   map[string]struct{}
}

// New builds a Board from its dimensions and a list of disabled positions.
func New(dimensions []uint8, disabled []position.Position) *Board {
	b := &Board{
		Dimensions: dimensions,
		Disabled:   make(map[string]struct{}, len(disabled)),
	}
	for _, p := range disabled {
		b.Disabled[p.Key()] = struct{}{}
	}
	return b
}

// IsValid reports whether p lies within bounds on every axis and is not a
// disabled square.
func (b *Board) IsValid(p position.ExtendedPosition) bool {
	for i := range p {
		if int(p[i]) < 0 || i >= len(b.Dimensions) || p[i] > int16(b.Dimensions[i])-1 {
			return false
		}
	}
	if len(b.Disabled) == 0 {
		return true
	}
	_, disabled := b.Disabled[position.Narrow(p).Key()]
	return !disabled
}

// IsValidPosition is a convenience wrapper for already-narrowed positions.
func (b *Board) IsValidPosition(p position.Position) bool {
	return b.IsValid(position.Widen(p))
}
