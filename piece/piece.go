// Package piece holds per-piece runtime state: identity, move count, and
// named state flags.
package piece

// Piece is a single piece on the board. Position is not a field; pieces
// live in a position-keyed map owned by the game state.
type Piece struct {
	Code       string
	Player     string
	TotalMoves uint16
	State      map[string]StateValue
}

// New creates a fresh, unmoved piece with no state flags set.
func New(code, player string) *Piece {
	return &Piece{
		Code:   code,
		Player: player,
		State:  make(map[string]StateValue),
	}
}

// Clone returns a deep copy.
func (p *Piece) Clone() *Piece {
	cp := &Piece{
		Code:       p.Code,
		Player:     p.Player,
		TotalMoves: p.TotalMoves,
		State:      make(map[string]StateValue, len(p.State)),
	}
	for k, v := range p.State {
		cp.State[k] = v
	}
	return cp
}

// TickStateFlags decrements every Counter flag by one, dropping any that
// were already at zero. Called once per completed turn.
func (p *Piece) TickStateFlags() {
	for name, v := range p.State {
		counter, ok := v.(Counter)
		if !ok {
			continue
		}
		if counter.N == 0 {
			delete(p.State, name)
			continue
		}
		p.State[name] = Counter{N: counter.N - 1}
	}
}

// StateValue is the closed set of values a state flag can carry.
type StateValue interface {
	stateValueMarker()
}

// Blank marks a flag as simply present, with no payload.
type Blank struct{}

func (Blank) stateValueMarker() {}

// Counter is a countdown value decremented once per turn by TickStateFlags.
type Counter struct {
	N uint16
}

func (Counter) stateValueMarker() {}

// Labeled carries an arbitrary string payload.
type Labeled struct {
	Value string
}

func (Labeled) stateValueMarker() {}
