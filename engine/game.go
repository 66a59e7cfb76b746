package engine

import (
	"fmt"
	"log"
	"sort"

	"github.com/frankmangone/ruleforge/blueprint"
	"github.com/frankmangone/ruleforge/board"
	"github.com/frankmangone/ruleforge/gamespec"
	"github.com/frankmangone/ruleforge/piece"
	"github.com/frankmangone/ruleforge/position"
	"github.com/frankmangone/ruleforge/threat"
)

// Game is the top-level aggregate. Spec-derived structures are built once
// by FromSpec and read-only afterward, except that eliminating a player
// removes it from Players and TurnOrder; everything else mutates in State.
type Game struct {
	Name       string
	Conditions map[string]gamespec.ConditionDefSpec
	Players    []string
	Blueprints map[string]*blueprint.PieceBlueprint
	TurnOrder  []string
	Leader     []string

	RepetitionCount      *uint8
	FiftyMoveHalfmoves   *uint16
	FiftyMovePawnCodes   []string
	InsufficientMaterial [][]string

	State *GameState

	// Logger defaults to log.Default(); an embedding application may swap it.
	Logger *log.Logger

	board *board.Board
}

// FromSpec builds a Game from a decoded gamespec.GameSpec.
func FromSpec(spec gamespec.GameSpec) (*Game, error) {
	matrices, err := blueprint.CompileDirectionMatrices(spec.Players)
	if err != nil {
		return nil, err
	}

	disabled := make([]position.Position, len(spec.Board.DisabledPositions))
	for i, p := range spec.Board.DisabledPositions {
		disabled[i] = position.Position(p)
	}
	b := board.New(spec.Board.Dimensions, disabled)

	conditions := make(map[string]gamespec.ConditionDefSpec, len(spec.Conditions))
	for _, c := range spec.Conditions {
		conditions[c.Code] = c
	}

	blueprints := blueprint.CompilePieces(spec.Pieces, matrices, conditions)

	players := make([]string, 0, len(spec.Players))
	pieces := make(map[string]*piece.Piece)
	for _, p := range spec.Players {
		players = append(players, p.Name)
		for _, sp := range p.StartingPositions {
			for _, pos := range sp.Positions {
				pc := piece.New(sp.PieceCode, p.Name)
				pieces[position.Position(pos).Key()] = pc
			}
		}
	}

	insufficient := make([][]string, len(spec.DrawConditions.InsufficientMaterial))
	for i, entry := range spec.DrawConditions.InsufficientMaterial {
		sorted := make([]string, len(entry))
		copy(sorted, entry)
		sort.Strings(sorted)
		insufficient[i] = sorted
	}

	g := &Game{
		Name:                 spec.Name,
		Conditions:           conditions,
		Players:              players,
		Blueprints:           blueprints,
		TurnOrder:            append([]string{}, spec.Turns.Order...),
		Leader:               spec.Leader,
		RepetitionCount:      spec.DrawConditions.RepetitionCount,
		FiftyMoveHalfmoves:   spec.DrawConditions.FiftyMoveHalfmoves,
		FiftyMovePawnCodes:   spec.DrawConditions.FiftyMovePawnCodes,
		InsufficientMaterial: insufficient,
		State:                newGameState(pieces, spec.Turns.StartAt),
		Logger:               log.Default(),
		board:                b,
	}

	if int(spec.Turns.StartAt) >= len(g.TurnOrder) {
		return nil, fmt.Errorf("engine: start_at %d is out of range for turn order of length %d", spec.Turns.StartAt, len(g.TurnOrder))
	}

	return g, nil
}

// Board satisfies condition.GameContext.
func (g *Game) Board() *board.Board { return g.board }

// PieceAt satisfies condition.GameContext.
func (g *Game) PieceAt(p position.Position) (*piece.Piece, bool) {
	pc, ok := g.State.Pieces[p.Key()]
	return pc, ok
}

// CurrentPlayer returns the player whose turn it currently is.
func (g *Game) CurrentPlayer() string {
	return g.TurnOrder[g.State.CurrentTurn]
}

// PreviousPlayer returns the player who acted just before the current turn.
func (g *Game) PreviousPlayer() string {
	n := uint8(len(g.TurnOrder))
	idx := (g.State.CurrentTurn + n - 1) % n
	return g.TurnOrder[idx]
}

// AttackedByOpponents satisfies condition.GameContext.
func (g *Game) AttackedByOpponents(player string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, opp := range g.Players {
		if opp == player {
			continue
		}
		for key := range threat.AttackedBy(opp, g.State.Pieces, g.board, g.Blueprints) {
			out[key] = struct{}{}
		}
	}
	return out
}

// AttackedBy returns the raw attack set of a single player.
func (g *Game) AttackedBy(player string) map[string]struct{} {
	return threat.AttackedBy(player, g.State.Pieces, g.board, g.Blueprints)
}

// History returns the full move history.
func (g *Game) History() []MoveRecord {
	return g.State.History
}

// Transition is the single entry point for mutating a game.
func (g *Game) Transition(t GameTransition) error {
	switch tr := t.(type) {
	case CalculateMoves:
		return g.calculateMoves(tr.Position)
	case ExecuteMove:
		return g.executeMove(tr.Position)
	case Transform:
		return g.transform(tr.Target)
	default:
		return errInvalidGamePhase()
	}
}

// nextTurn advances the turn cursor and ticks every piece's state flags.
func (g *Game) nextTurn() {
	n := uint8(len(g.TurnOrder))
	if n == 0 {
		g.Logger.Panicf("engine: nextTurn called with an empty turn order")
	}
	next := g.State.CurrentTurn + 1
	if next >= n {
		next = 0
	}
	g.State.CurrentTurn = next

	for _, pc := range g.State.Pieces {
		pc.TickStateFlags()
	}
}
