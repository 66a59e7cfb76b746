// Package gamespec defines the value tree an external loader decodes a
// game description into.
package gamespec

import "encoding/json"

// GameSpec is the complete description of one game, ready for blueprint
// compilation.
type GameSpec struct {
	Name           string
	Pieces         []PieceSpec
	Board          BoardSpec
	Players        []PlayerSpec
	Turns          TurnSpec
	Conditions     []ConditionDefSpec
	Leader         []string
	DrawConditions DrawConditionsSpec
}

// BoardSpec describes the board's extent and any carved-out squares.
type BoardSpec struct {
	Dimensions        []uint8
	DisabledPositions [][]uint8
}

// PlayerSpec describes one player's orientation and starting layout.
type PlayerSpec struct {
	Name              string
	DirectionMatrix   [][]int16
	StartingPositions []PiecePositionSpec
}

// PiecePositionSpec places one piece code at one or more starting squares.
type PiecePositionSpec struct {
	PieceCode string
	Positions [][]uint8
}

// TurnSpec is the order play rotates through and the starting cursor.
type TurnSpec struct {
	Order   []string
	StartAt uint8
}

// PieceSpec names a piece and lists its compiled-from move specs.
type PieceSpec struct {
	Code  string
	Name  string
	Moves []MoveSpec
}

// MoveSpec is one declared move, written with canonical "forward = +y"
// offsets.
type MoveSpec struct {
	ID          uint8
	Step        [2]int8
	Actions     []ActionSpec
	Conditions  []ConditionSpec
	Modifiers   []ModifierSpec
	SideEffects []SideEffectSpec
	Repeat      *RepeatSpec
}

// RepeatSpec configures the single-step repeat loop.
type RepeatSpec struct {
	Until *string
	Times *uint8
	Loop  bool
}

// ActionSpec binds a target-square state (EMPTY/ALLY/ENEMY) to an action.
type ActionSpec struct {
	State       string
	Action      string
	Conditions  []ConditionSpec
	SideEffects []SideEffectSpec
}

// ModifierSpec rewrites a fired action when its conditions hold.
type ModifierSpec struct {
	Action     string
	Conditions []ConditionSpec
	Options    []string
}

// ConditionSpec references a condition code plus its parameters.
type ConditionSpec struct {
	Condition string
	MoveID    *uint8
	State     *string
	Position  *[2]int8
}

// ConditionDefSpec is a custom condition declared at the top level of a
// GameSpec. Type "POSITION" names a per-player set of absolute squares
// (e.g. the rank a pawn promotes on); any other Type is opaque to the
// compiler and falls through to the evaluator's unknown-code default.
type ConditionDefSpec struct {
	Code               string
	Type               string
	PerPlayerPositions map[string][][]uint8
}

// SideEffectSpec is a tagged record discriminated by Action.
type SideEffectSpec struct {
	Action   string
	State    *string
	Duration *uint8
	Options  []string
	From     *[2]int8
	To       *[2]int8
	Target   *[2]int8
}

// DrawConditionsSpec configures the draw detector. Omitted fields disable
// their rule.
type DrawConditionsSpec struct {
	RepetitionCount      *uint8
	FiftyMoveHalfmoves   *uint16
	FiftyMovePawnCodes   []string
	InsufficientMaterial [][]string
}

// --- JSON intermediate layer -------------------------------------------------

type gameSpecJSON struct {
	Name           string             `json:"name"`
	Pieces         []pieceSpecJSON    `json:"pieces,omitempty"`
	Board          boardSpecJSON      `json:"board"`
	Players        []playerSpecJSON   `json:"players"`
	Turns          turnSpecJSON       `json:"turns"`
	Conditions     []conditionDefJSON `json:"conditions,omitempty"`
	Leader         []string           `json:"leader,omitempty"`
	DrawConditions drawConditionsJSON `json:"draw_conditions"`
}

type boardSpecJSON struct {
	Dimensions        []uint8   `json:"dimensions"`
	DisabledPositions [][]uint8 `json:"disabled_positions,omitempty"`
}

type playerSpecJSON struct {
	Name              string                  `json:"name"`
	Direction         [][]int16               `json:"direction"`
	StartingPositions []piecePositionSpecJSON `json:"starting_positions,omitempty"`
}

type piecePositionSpecJSON struct {
	Piece     string    `json:"piece"`
	Positions [][]uint8 `json:"positions"`
}

type turnSpecJSON struct {
	Order   []string `json:"order"`
	StartAt uint8    `json:"start_at"`
}

type pieceSpecJSON struct {
	Code  string         `json:"code"`
	Name  string         `json:"name"`
	Moves []moveSpecJSON `json:"moves"`
}

type moveSpecJSON struct {
	ID          uint8                `json:"id"`
	Step        [2]int8              `json:"step"`
	Actions     []actionSpecJSON     `json:"actions"`
	Conditions  []conditionSpecJSON  `json:"conditions,omitempty"`
	Modifiers   []modifierSpecJSON   `json:"modifiers,omitempty"`
	SideEffects []sideEffectSpecJSON `json:"side_effects,omitempty"`
	Repeat      *repeatSpecJSON      `json:"repeat,omitempty"`
}

type repeatSpecJSON struct {
	Until *string `json:"until,omitempty"`
	Times *uint8  `json:"times,omitempty"`
	Loop  bool    `json:"loop,omitempty"`
}

type actionSpecJSON struct {
	State       string               `json:"state"`
	Action      string               `json:"action"`
	Conditions  []conditionSpecJSON  `json:"conditions,omitempty"`
	SideEffects []sideEffectSpecJSON `json:"side_effects,omitempty"`
}

type modifierSpecJSON struct {
	Action     string              `json:"action"`
	Conditions []conditionSpecJSON `json:"conditions,omitempty"`
	Options    []string            `json:"options,omitempty"`
}

type conditionSpecJSON struct {
	Condition string   `json:"condition"`
	MoveID    *uint8   `json:"move_id,omitempty"`
	State     *string  `json:"state,omitempty"`
	Position  *[2]int8 `json:"position,omitempty"`
}

type conditionDefJSON struct {
	Code               string               `json:"code"`
	Type               string               `json:"type,omitempty"`
	PerPlayerPositions map[string][][]uint8 `json:"per_player_positions,omitempty"`
}

type sideEffectSpecJSON struct {
	Action   string   `json:"action"`
	State    *string  `json:"state,omitempty"`
	Duration *uint8   `json:"duration,omitempty"`
	Options  []string `json:"options,omitempty"`
	From     *[2]int8 `json:"from,omitempty"`
	To       *[2]int8 `json:"to,omitempty"`
	Target   *[2]int8 `json:"target,omitempty"`
}

type drawConditionsJSON struct {
	RepetitionCount      *uint8     `json:"repetition_count,omitempty"`
	FiftyMoveHalfmoves   *uint16    `json:"fifty_move_halfmoves,omitempty"`
	FiftyMovePawnCodes   []string   `json:"fifty_move_pawn_codes,omitempty"`
	InsufficientMaterial [][]string `json:"insufficient_material,omitempty"`
}

// Decode parses a JSON-encoded GameSpec.
func Decode(data []byte) (GameSpec, error) {
	var raw gameSpecJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return GameSpec{}, err
	}
	return translate(raw), nil
}

func translate(raw gameSpecJSON) GameSpec {
	spec := GameSpec{
		Name:   raw.Name,
		Board:  BoardSpec{Dimensions: raw.Board.Dimensions, DisabledPositions: raw.Board.DisabledPositions},
		Turns:  TurnSpec{Order: raw.Turns.Order, StartAt: raw.Turns.StartAt},
		Leader: raw.Leader,
		DrawConditions: DrawConditionsSpec{
			RepetitionCount:      raw.DrawConditions.RepetitionCount,
			FiftyMoveHalfmoves:   raw.DrawConditions.FiftyMoveHalfmoves,
			FiftyMovePawnCodes:   raw.DrawConditions.FiftyMovePawnCodes,
			InsufficientMaterial: raw.DrawConditions.InsufficientMaterial,
		},
	}

	for _, p := range raw.Pieces {
		spec.Pieces = append(spec.Pieces, translatePiece(p))
	}
	for _, p := range raw.Players {
		spec.Players = append(spec.Players, translatePlayer(p))
	}
	for _, c := range raw.Conditions {
		spec.Conditions = append(spec.Conditions, ConditionDefSpec{
			Code:               c.Code,
			Type:               c.Type,
			PerPlayerPositions: c.PerPlayerPositions,
		})
	}

	return spec
}

func translatePlayer(p playerSpecJSON) PlayerSpec {
	out := PlayerSpec{Name: p.Name, DirectionMatrix: p.Direction}
	for _, sp := range p.StartingPositions {
		out.StartingPositions = append(out.StartingPositions, PiecePositionSpec{
			PieceCode: sp.Piece,
			Positions: sp.Positions,
		})
	}
	return out
}

func translatePiece(p pieceSpecJSON) PieceSpec {
	out := PieceSpec{Code: p.Code, Name: p.Name}
	for _, m := range p.Moves {
		out.Moves = append(out.Moves, translateMove(m))
	}
	return out
}

func translateMove(m moveSpecJSON) MoveSpec {
	out := MoveSpec{
		ID:   m.ID,
		Step: m.Step,
	}
	for _, a := range m.Actions {
		out.Actions = append(out.Actions, ActionSpec{
			State:       a.State,
			Action:      a.Action,
			Conditions:  translateConditions(a.Conditions),
			SideEffects: translateSideEffects(a.SideEffects),
		})
	}
	out.Conditions = translateConditions(m.Conditions)
	out.SideEffects = translateSideEffects(m.SideEffects)
	for _, mod := range m.Modifiers {
		out.Modifiers = append(out.Modifiers, ModifierSpec{
			Action:     mod.Action,
			Conditions: translateConditions(mod.Conditions),
			Options:    mod.Options,
		})
	}
	if m.Repeat != nil {
		out.Repeat = &RepeatSpec{Until: m.Repeat.Until, Times: m.Repeat.Times, Loop: m.Repeat.Loop}
	}
	return out
}

func translateConditions(in []conditionSpecJSON) []ConditionSpec {
	if in == nil {
		return nil
	}
	out := make([]ConditionSpec, len(in))
	for i, c := range in {
		out[i] = ConditionSpec{Condition: c.Condition, MoveID: c.MoveID, State: c.State, Position: c.Position}
	}
	return out
}

func translateSideEffects(in []sideEffectSpecJSON) []SideEffectSpec {
	if in == nil {
		return nil
	}
	out := make([]SideEffectSpec, len(in))
	for i, s := range in {
		out[i] = SideEffectSpec{
			Action:   s.Action,
			State:    s.State,
			Duration: s.Duration,
			Options:  s.Options,
			From:     s.From,
			To:       s.To,
			Target:   s.Target,
		}
	}
	return out
}
