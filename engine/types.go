package engine

import "github.com/frankmangone/ruleforge/position"

// Action tags a fired Effect carries.
const (
	ActionMove      = "MOVE"
	ActionCapture   = "CAPTURE"
	ActionTransform = "TRANSFORM"
)

// GamePhase is the closed set of states the transition machine moves
// through.
type GamePhase interface {
	gamePhaseMarker()
}

// Idle is the resting phase.
type Idle struct{}

func (Idle) gamePhaseMarker() {}

// Moving records the source square whose moves are on offer.
type Moving struct {
	Source position.Position
}

func (Moving) gamePhaseMarker() {}

// Transforming records the square awaiting a promotion-style choice.
type Transforming struct {
	Position position.Position
	Options  []string
}

func (Transforming) gamePhaseMarker() {}

// GameOver records the winner, or nil for a draw.
type GameOver struct {
	Winner *string
}

func (GameOver) gamePhaseMarker() {}

// MoveRecord is one history entry.
type MoveRecord struct {
	Player    string
	PieceCode string
	From      position.Position
	To        position.Position
	Action    string
	Promotion *string
}

// GameTransition is the tagged sum of requests Game.Transition accepts.
type GameTransition interface {
	gameTransitionMarker()
}

// CalculateMoves requests the move set for the piece at Position.
type CalculateMoves struct {
	Position position.Position
}

func (CalculateMoves) gameTransitionMarker() {}

// ExecuteMove applies the available move keyed by Position.
type ExecuteMove struct {
	Position position.Position
}

func (ExecuteMove) gameTransitionMarker() {}

// Transform resolves a pending Transforming phase with the named option.
type Transform struct {
	Target string
}

func (Transform) gameTransitionMarker() {}
