package engine

import (
	"encoding/json"
	"fmt"

	"github.com/frankmangone/ruleforge/blueprint"
	"github.com/frankmangone/ruleforge/piece"
	"github.com/frankmangone/ruleforge/position"
)

// GameState is the mutable runtime state, everything a save/restore
// round-trip needs minus the derived AvailableMoves field.
type GameState struct {
	// Pieces is keyed by Position.Key(), since JSON object keys must be
	// strings.
	Pieces         map[string]*piece.Piece
	CurrentTurn    uint8
	AvailableMoves map[string]blueprint.Effect // derived; never serialized
	Phase          GamePhase
	History        []MoveRecord
	PositionHashes []string
}

// newGameState builds an empty GameState with the given starting pieces.
func newGameState(pieces map[string]*piece.Piece, currentTurn uint8) *GameState {
	return &GameState{
		Pieces:      pieces,
		CurrentTurn: currentTurn,
		Phase:       Idle{},
	}
}

// gameStateJSON is the wire shape; GamePhase is an interface and needs a
// discriminated encoding.
type gameStateJSON struct {
	Pieces         map[string]*piece.Piece `json:"pieces"`
	CurrentTurn    uint8                   `json:"current_turn"`
	Phase          json.RawMessage         `json:"phase"`
	History        []moveRecordJSON        `json:"history"`
	PositionHashes []string                `json:"position_hashes,omitempty"`
}

type moveRecordJSON struct {
	Player    string  `json:"player"`
	PieceCode string  `json:"piece_code"`
	From      []uint8 `json:"from"`
	To        []uint8 `json:"to"`
	Action    string  `json:"action"`
	Promotion *string `json:"promotion,omitempty"`
}

type phaseJSON struct {
	Phase    string   `json:"phase"`
	Source   []uint8  `json:"source,omitempty"`
	Position []uint8  `json:"position,omitempty"`
	Options  []string `json:"options,omitempty"`
	Winner   *string  `json:"winner,omitempty"`
}

const (
	phaseIdle         = "idle"
	phaseMoving       = "moving"
	phaseTransforming = "transforming"
	phaseGameOver     = "game_over"
)

func (Idle) MarshalJSON() ([]byte, error) {
	return json.Marshal(phaseJSON{Phase: phaseIdle})
}

func (p Moving) MarshalJSON() ([]byte, error) {
	return json.Marshal(phaseJSON{Phase: phaseMoving, Source: []uint8(p.Source)})
}

func (p Transforming) MarshalJSON() ([]byte, error) {
	return json.Marshal(phaseJSON{Phase: phaseTransforming, Position: []uint8(p.Position), Options: p.Options})
}

func (p GameOver) MarshalJSON() ([]byte, error) {
	return json.Marshal(phaseJSON{Phase: phaseGameOver, Winner: p.Winner})
}

func decodePhase(data json.RawMessage) (GamePhase, error) {
	var raw phaseJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	switch raw.Phase {
	case phaseIdle, "":
		return Idle{}, nil
	case phaseMoving:
		return Moving{Source: position.Position(raw.Source)}, nil
	case phaseTransforming:
		return Transforming{Position: position.Position(raw.Position), Options: raw.Options}, nil
	case phaseGameOver:
		return GameOver{Winner: raw.Winner}, nil
	default:
		return nil, fmt.Errorf("engine: unknown serialized phase %q", raw.Phase)
	}
}

// MarshalJSON implements the state blob. available_moves is omitted.
func (s GameState) MarshalJSON() ([]byte, error) {
	phaseBytes, err := json.Marshal(s.Phase)
	if err != nil {
		return nil, err
	}
	history := make([]moveRecordJSON, len(s.History))
	for i, r := range s.History {
		history[i] = moveRecordJSON{
			Player:    r.Player,
			PieceCode: r.PieceCode,
			From:      []uint8(r.From),
			To:        []uint8(r.To),
			Action:    r.Action,
			Promotion: r.Promotion,
		}
	}
	return json.Marshal(gameStateJSON{
		Pieces:         s.Pieces,
		CurrentTurn:    s.CurrentTurn,
		Phase:          phaseBytes,
		History:        history,
		PositionHashes: s.PositionHashes,
	})
}

// UnmarshalJSON restores a GameState from the blob produced by
// MarshalJSON. AvailableMoves is left nil.
func (s *GameState) UnmarshalJSON(data []byte) error {
	var raw gameStateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	phase, err := decodePhase(raw.Phase)
	if err != nil {
		return err
	}
	history := make([]MoveRecord, len(raw.History))
	for i, r := range raw.History {
		history[i] = MoveRecord{
			Player:    r.Player,
			PieceCode: r.PieceCode,
			From:      position.Position(r.From),
			To:        position.Position(r.To),
			Action:    r.Action,
			Promotion: r.Promotion,
		}
	}
	s.Pieces = raw.Pieces
	s.CurrentTurn = raw.CurrentTurn
	s.Phase = phase
	s.History = history
	s.PositionHashes = raw.PositionHashes
	s.AvailableMoves = nil
	return nil
}
