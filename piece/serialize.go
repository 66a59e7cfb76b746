package piece

import "encoding/json"

// pieceJSON is the tagged wire shape for Piece, needed because StateValue
// is an interface.
type pieceJSON struct {
	Code       string                    `json:"code"`
	Player     string                    `json:"player"`
	TotalMoves uint16                    `json:"total_moves"`
	State      map[string]stateValueJSON `json:"state,omitempty"`
}

type stateValueJSON struct {
	Kind  string  `json:"kind"`
	N     *uint16 `json:"n,omitempty"`
	Value *string `json:"value,omitempty"`
}

const (
	stateKindBlank   = "blank"
	stateKindCounter = "counter"
	stateKindLabeled = "labeled"
)

// MarshalJSON implements the external representation of a Piece.
func (p Piece) MarshalJSON() ([]byte, error) {
	out := pieceJSON{Code: p.Code, Player: p.Player, TotalMoves: p.TotalMoves}
	if len(p.State) > 0 {
		out.State = make(map[string]stateValueJSON, len(p.State))
		for name, v := range p.State {
			switch sv := v.(type) {
			case Blank:
				out.State[name] = stateValueJSON{Kind: stateKindBlank}
			case Counter:
				n := sv.N
				out.State[name] = stateValueJSON{Kind: stateKindCounter, N: &n}
			case Labeled:
				val := sv.Value
				out.State[name] = stateValueJSON{Kind: stateKindLabeled, Value: &val}
			}
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (p *Piece) UnmarshalJSON(data []byte) error {
	var raw pieceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Code = raw.Code
	p.Player = raw.Player
	p.TotalMoves = raw.TotalMoves
	if len(raw.State) == 0 {
		p.State = make(map[string]StateValue)
		return nil
	}
	p.State = make(map[string]StateValue, len(raw.State))
	for name, v := range raw.State {
		switch v.Kind {
		case stateKindBlank:
			p.State[name] = Blank{}
		case stateKindCounter:
			if v.N != nil {
				p.State[name] = Counter{N: *v.N}
			}
		case stateKindLabeled:
			if v.Value != nil {
				p.State[name] = Labeled{Value: *v.Value}
			}
		}
	}
	return nil
}
