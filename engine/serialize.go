package engine

import "encoding/json"

// SaveState renders the mutable runtime state as a text blob. Spec-derived
// structures are not included; restoring needs a Game built from the same
// GameSpec.
func (g *Game) SaveState() (string, error) {
	data, err := json.Marshal(g.State)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// RestoreState replaces the current GameState with one produced by
// SaveState. AvailableMoves is left nil.
func (g *Game) RestoreState(blob string) error {
	var s GameState
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return err
	}
	g.State = &s
	return nil
}
