// Package engine owns the top-level Game aggregate and its transition
// state machine.
package engine

import (
	"fmt"

	"github.com/frankmangone/ruleforge/position"
)

// ErrorKind is the closed taxonomy of failures a transition can return.
type ErrorKind int

const (
	InvalidGamePhase ErrorKind = iota
	NoAvailableMoves
	InvalidPlayer
	NoPieceInPosition
	InvalidMove
	InvalidTransformationOption
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidGamePhase:
		return "InvalidGamePhase"
	case NoAvailableMoves:
		return "NoAvailableMoves"
	case InvalidPlayer:
		return "InvalidPlayer"
	case NoPieceInPosition:
		return "NoPieceInPosition"
	case InvalidMove:
		return "InvalidMove"
	case InvalidTransformationOption:
		return "InvalidTransformationOption"
	default:
		return "UnknownGameError"
	}
}

// GameError is the typed error every transition returns.
type GameError struct {
	Kind     ErrorKind
	Position position.Position // zero-value when the error carries no position
	Option   string            // set only for InvalidTransformationOption
}

func (e *GameError) Error() string {
	switch e.Kind {
	case NoPieceInPosition:
		return fmt.Sprintf("engine: no piece at position %s", e.Position.Serialize())
	case InvalidPlayer:
		return fmt.Sprintf("engine: piece at %s does not belong to the current player", e.Position.Serialize())
	case InvalidMove:
		return fmt.Sprintf("engine: %s is not an available move", e.Position.Serialize())
	case InvalidTransformationOption:
		return fmt.Sprintf("engine: %q is not an offered transformation option", e.Option)
	default:
		return "engine: " + e.Kind.String()
	}
}

func errInvalidGamePhase() *GameError { return &GameError{Kind: InvalidGamePhase} }
func errNoAvailableMoves() *GameError { return &GameError{Kind: NoAvailableMoves} }
func errInvalidPlayer(p position.Position) *GameError {
	return &GameError{Kind: InvalidPlayer, Position: p}
}
func errNoPieceInPosition(p position.Position) *GameError {
	return &GameError{Kind: NoPieceInPosition, Position: p}
}
func errInvalidMove(p position.Position) *GameError {
	return &GameError{Kind: InvalidMove, Position: p}
}
func errInvalidTransformationOption(option string) *GameError {
	return &GameError{Kind: InvalidTransformationOption, Option: option}
}
