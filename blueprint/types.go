// Package blueprint compiles piece moves into per-player runtime form and
// implements the move generator.
package blueprint

import (
	"github.com/frankmangone/ruleforge/condition"
	"github.com/frankmangone/ruleforge/piece"
	"github.com/frankmangone/ruleforge/position"
)

// Effect is the result of firing one move: an action tag plus ordered
// board deltas.
type Effect struct {
	Action       string
	BoardChanges []BoardChange
	Metadata     []string
}

// BoardChange is one delta entry. A nil Piece clears the square.
type BoardChange struct {
	Position position.Position
	Piece    *piece.Piece
}

// ActionBlueprint binds a target-square state to the action it fires.
type ActionBlueprint struct {
	Action      string
	Conditions  []condition.Condition
	SideEffects []SideEffectBlueprint
}

// Modifier rewrites a fired action once its conditions hold at the target.
type Modifier struct {
	Action     string
	Conditions []condition.Condition
	Options    []string
}

// RepeatConfig turns a single declared offset into a sliding move.
type RepeatConfig struct {
	Until *string
	Times *uint8
	Loop  bool
}

// SideEffectBlueprint is the closed set of side-effect variants a compiled
// move may carry.
type SideEffectBlueprint interface {
	sideEffectMarker()
}

// SetStateEffect attaches a named flag to the moved piece. A nil Duration
// means a permanent Blank flag, otherwise a Counter seeded to Duration.
type SetStateEffect struct {
	Flag     string
	Duration *uint16
}

func (SetStateEffect) sideEffectMarker() {}

// CaptureEffect removes whatever occupies source+PerPlayerOffset[player],
// if that square is on-board.
type CaptureEffect struct {
	PerPlayerOffset map[string]position.ExtendedPosition
}

func (CaptureEffect) sideEffectMarker() {}

// MoveEffect relocates the piece at source+PerPlayerFrom[player] to
// source+PerPlayerTo[player], silently doing nothing if either square is
// off-board or the from square is empty. One declaration can then cover
// both castling sides.
type MoveEffect struct {
	PerPlayerFrom map[string]position.ExtendedPosition
	PerPlayerTo   map[string]position.ExtendedPosition
}

func (MoveEffect) sideEffectMarker() {}

// UnknownEffect is an unrecognized side-effect action, kept as a no-op.
type UnknownEffect struct {
	Action string
}

func (UnknownEffect) sideEffectMarker() {}

// MoveBlueprint is the compiled form of one gamespec.MoveSpec.
type MoveBlueprint struct {
	ID            uint8
	PerPlayerStep map[string]position.ExtendedPosition
	Actions       map[string]ActionBlueprint // keyed by EMPTY/ALLY/ENEMY
	Conditions    []condition.Condition      // move-level gate
	Modifiers     []Modifier
	SideEffects   []SideEffectBlueprint // move-level, always fire
	Repeat        *RepeatConfig
}

// PieceBlueprint is the ordered set of move blueprints for one piece code.
type PieceBlueprint struct {
	Code  string
	Moves []MoveBlueprint
}
