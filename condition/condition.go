// Package condition implements the built-in condition codes a compiled
// move or action gates on. Unknown codes evaluate to true.
package condition

import (
	"github.com/frankmangone/ruleforge/board"
	"github.com/frankmangone/ruleforge/piece"
	"github.com/frankmangone/ruleforge/position"
)

// Built-in condition codes.
const (
	FirstMove       = "FIRST_MOVE"
	DependsOn       = "DEPENDS_ON"
	CheckState      = "CHECK_STATE"
	PieceFirstMove  = "PIECE_FIRST_MOVE"
	RookFirstMove   = "ROOK_FIRST_MOVE"
	PathEmpty       = "PATH_EMPTY"
	NotAttacked     = "NOT_ATTACKED"
	PathNotAttacked = "PATH_NOT_ATTACKED"
	Empty           = "EMPTY"
	NotEmpty        = "NOT_EMPTY"
)

// Condition is the compiled form of a spec condition. PerPlayerPositionSet
// is set only for custom "POSITION" codes: absolute squares checked against
// the evaluation's Source instead of an offset from it.
type Condition struct {
	Code                 string
	MoveID               *uint8
	StateName            *string
	PerPlayerOffset      map[string]position.ExtendedPosition
	PerPlayerPositionSet map[string]map[string]struct{}
}

// GameContext is the read-only view of a running game a condition needs.
// engine.Game implements it; blueprint and threat thread it through so the
// dependency chain stays one-way.
type GameContext interface {
	PieceAt(p position.Position) (*piece.Piece, bool)
	Board() *board.Board
	CurrentPlayer() string
	// AttackedByOpponents returns the union of attack sets of every other
	// player, keyed by Position.Key().
	AttackedByOpponents(player string) map[string]struct{}
}

// Params carries the per-evaluation inputs that aren't part of the
// compiled condition itself.
type Params struct {
	Piece  *piece.Piece
	Source position.Position
	// Step is the owning move's own per-player step, used by the path and
	// target conditions.
	Step         position.ExtendedPosition
	ValidMoveIDs map[uint8]struct{}
}

// Evaluate dispatches a single compiled condition.
func Evaluate(c Condition, ctx GameContext, p Params) bool {
	if c.PerPlayerPositionSet != nil {
		set := c.PerPlayerPositionSet[ctx.CurrentPlayer()]
		_, ok := set[p.Source.Key()]
		return ok
	}

	switch c.Code {
	case FirstMove:
		return p.Piece.TotalMoves == 0

	case DependsOn:
		if c.MoveID == nil {
			return false
		}
		_, ok := p.ValidMoveIDs[*c.MoveID]
		return ok

	case CheckState:
		target, onBoard := offsetTarget(c, ctx, p)
		if !onBoard {
			return false
		}
		other, ok := ctx.PieceAt(target)
		if !ok || c.StateName == nil {
			return false
		}
		_, present := other.State[*c.StateName]
		return present

	case PieceFirstMove:
		target, onBoard := offsetTarget(c, ctx, p)
		if !onBoard {
			return false
		}
		other, ok := ctx.PieceAt(target)
		return ok && other.TotalMoves == 0

	case RookFirstMove:
		target, onBoard := offsetTarget(c, ctx, p)
		if !onBoard {
			return true
		}
		other, ok := ctx.PieceAt(target)
		if !ok {
			return true
		}
		return other.TotalMoves == 0

	case PathEmpty:
		return pathEmpty(ctx, p)

	case PathNotAttacked:
		return pathNotAttacked(ctx, p)

	case NotAttacked:
		ext := position.Add(p.Source, p.Step)
		if !ctx.Board().IsValid(ext) {
			return false
		}
		target := position.Narrow(ext)
		_, attacked := ctx.AttackedByOpponents(ctx.CurrentPlayer())[target.Key()]
		return !attacked

	case Empty:
		return classifyTarget(ctx, p) == "EMPTY"

	case NotEmpty:
		return classifyTarget(ctx, p) != "EMPTY"

	default:
		// Unknown codes pass, for forward compatibility.
		return true
	}
}

func offsetTarget(c Condition, ctx GameContext, p Params) (position.Position, bool) {
	offset, ok := c.PerPlayerOffset[ctx.CurrentPlayer()]
	if !ok {
		return position.Position{}, false
	}
	ext := position.Add(p.Source, offset)
	if !ctx.Board().IsValid(ext) {
		return position.Position{}, false
	}
	return position.Narrow(ext), true
}

func classifyTarget(ctx GameContext, p Params) string {
	ext := position.Add(p.Source, p.Step)
	if !ctx.Board().IsValid(ext) {
		return "OFF_BOARD"
	}
	return ClassifyPosition(ctx, position.Narrow(ext))
}

// ClassifyPosition reports whether an on-board position is EMPTY, ALLY, or
// ENEMY relative to the current player.
func ClassifyPosition(ctx GameContext, target position.Position) string {
	occupant, ok := ctx.PieceAt(target)
	if !ok {
		return "EMPTY"
	}
	if occupant.Player == ctx.CurrentPlayer() {
		return "ALLY"
	}
	return "ENEMY"
}

// stepUnit reduces a straight-line step to its unit direction and length.
func stepUnit(step position.ExtendedPosition) (position.ExtendedPosition, int16) {
	unit := make(position.ExtendedPosition, len(step))
	distance := int16(0)
	for i, v := range step {
		switch {
		case v > 0:
			unit[i] = 1
		case v < 0:
			unit[i] = -1
		default:
			unit[i] = 0
		}
		if v < 0 {
			v = -v
		}
		if v > distance {
			distance = v
		}
	}
	return unit, distance
}

// pathEmpty requires every square strictly between source and source+step
// to be on-board and unoccupied.
func pathEmpty(ctx GameContext, p Params) bool {
	unit, distance := stepUnit(p.Step)
	cur := position.Widen(p.Source)
	for k := int16(1); k < distance; k++ {
		cur = position.AddExtended(cur, unit)
		if !ctx.Board().IsValid(cur) {
			return false
		}
		if _, occupied := ctx.PieceAt(position.Narrow(cur)); occupied {
			return false
		}
	}
	return true
}

// pathNotAttacked requires the source and every transit square to be
// outside the opponents' attack sets. The target square is NOT_ATTACKED's
// job.
func pathNotAttacked(ctx GameContext, p Params) bool {
	attacked := ctx.AttackedByOpponents(ctx.CurrentPlayer())
	if _, hit := attacked[p.Source.Key()]; hit {
		return false
	}
	unit, distance := stepUnit(p.Step)
	cur := position.Widen(p.Source)
	for k := int16(1); k < distance; k++ {
		cur = position.AddExtended(cur, unit)
		if !ctx.Board().IsValid(cur) {
			return false
		}
		if _, hit := attacked[position.Narrow(cur).Key()]; hit {
			return false
		}
	}
	return true
}
