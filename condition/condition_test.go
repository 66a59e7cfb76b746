package condition

import (
	"testing"

	"github.com/frankmangone/ruleforge/board"
	"github.com/frankmangone/ruleforge/piece"
	"github.com/frankmangone/ruleforge/position"
)

type fakeGame struct {
	b        *board.Board
	pieces   map[string]*piece.Piece
	current  string
	attacked map[string]map[string]struct{}
}

func newFakeGame() *fakeGame {
	return &fakeGame{
		b:        board.New([]uint8{8, 8}, nil),
		pieces:   make(map[string]*piece.Piece),
		current:  "WHITE",
		attacked: make(map[string]map[string]struct{}),
	}
}

func (g *fakeGame) put(p position.Position, pc *piece.Piece) { g.pieces[p.Key()] = pc }

func (g *fakeGame) PieceAt(p position.Position) (*piece.Piece, bool) {
	pc, ok := g.pieces[p.Key()]
	return pc, ok
}
func (g *fakeGame) Board() *board.Board   { return g.b }
func (g *fakeGame) CurrentPlayer() string { return g.current }
func (g *fakeGame) AttackedByOpponents(player string) map[string]struct{} {
	out := make(map[string]struct{})
	for p, set := range g.attacked {
		if p == player {
			continue
		}
		for k := range set {
			out[k] = struct{}{}
		}
	}
	return out
}

func TestFirstMove(t *testing.T) {
	g := newFakeGame()
	pc := piece.New("PAWN", "WHITE")
	if !Evaluate(Condition{Code: FirstMove}, g, Params{Piece: pc}) {
		t.Fatal("expected FIRST_MOVE true for a fresh piece")
	}
	pc.TotalMoves = 1
	if Evaluate(Condition{Code: FirstMove}, g, Params{Piece: pc}) {
		t.Fatal("expected FIRST_MOVE false once moved")
	}
}

func TestDependsOn(t *testing.T) {
	g := newFakeGame()
	id := uint8(3)
	c := Condition{Code: DependsOn, MoveID: &id}
	ids := map[uint8]struct{}{3: {}}
	if !Evaluate(c, g, Params{ValidMoveIDs: ids}) {
		t.Fatal("expected DEPENDS_ON(3) true when 3 is a valid move id")
	}
	if Evaluate(c, g, Params{ValidMoveIDs: map[uint8]struct{}{}}) {
		t.Fatal("expected DEPENDS_ON(3) false when 3 is absent")
	}
}

func TestRookFirstMoveLenientOffBoard(t *testing.T) {
	g := newFakeGame()
	c := Condition{
		Code:            RookFirstMove,
		PerPlayerOffset: map[string]position.ExtendedPosition{"WHITE": {-10, 0}},
	}
	if !Evaluate(c, g, Params{Piece: piece.New("KING", "WHITE"), Source: position.Position{0, 0}}) {
		t.Fatal("expected ROOK_FIRST_MOVE to pass vacuously off-board")
	}
}

func TestPieceFirstMoveStrictOffBoard(t *testing.T) {
	g := newFakeGame()
	c := Condition{
		Code:            PieceFirstMove,
		PerPlayerOffset: map[string]position.ExtendedPosition{"WHITE": {-10, 0}},
	}
	if Evaluate(c, g, Params{Piece: piece.New("KING", "WHITE"), Source: position.Position{0, 0}}) {
		t.Fatal("expected PIECE_FIRST_MOVE to fail off-board, not pass vacuously")
	}
}

func TestCheckState(t *testing.T) {
	g := newFakeGame()
	neighbor := piece.New("PAWN", "BLACK")
	neighbor.State["EN_PASSANT"] = piece.Counter{N: 1}
	g.put(position.Position{5, 4}, neighbor)

	name := "EN_PASSANT"
	c := Condition{
		Code:            CheckState,
		StateName:       &name,
		PerPlayerOffset: map[string]position.ExtendedPosition{"WHITE": {1, 0}},
	}
	if !Evaluate(c, g, Params{Piece: piece.New("PAWN", "WHITE"), Source: position.Position{4, 4}}) {
		t.Fatal("expected CHECK_STATE true when neighbor carries the flag")
	}
}

func TestPathEmptyBlockedAndOpen(t *testing.T) {
	g := newFakeGame()
	c := Condition{Code: PathEmpty}

	open := Evaluate(c, g, Params{Source: position.Position{0, 0}, Step: position.ExtendedPosition{0, 3}})
	if !open {
		t.Fatal("expected PATH_EMPTY true on an empty path")
	}

	g.put(position.Position{0, 1}, piece.New("PAWN", "WHITE"))
	blocked := Evaluate(c, g, Params{Source: position.Position{0, 0}, Step: position.ExtendedPosition{0, 3}})
	if blocked {
		t.Fatal("expected PATH_EMPTY false when a square in between is occupied")
	}
}

func TestEmptyAndNotEmpty(t *testing.T) {
	g := newFakeGame()
	p := Params{Source: position.Position{4, 4}, Step: position.ExtendedPosition{0, 1}}
	if !Evaluate(Condition{Code: Empty}, g, p) {
		t.Fatal("expected EMPTY true on an unoccupied target")
	}
	g.put(position.Position{4, 5}, piece.New("PAWN", "BLACK"))
	if Evaluate(Condition{Code: Empty}, g, p) {
		t.Fatal("expected EMPTY false once occupied")
	}
	if !Evaluate(Condition{Code: NotEmpty}, g, p) {
		t.Fatal("expected NOT_EMPTY true once occupied")
	}
}

func TestUnknownCodeDefaultsTrue(t *testing.T) {
	g := newFakeGame()
	if !Evaluate(Condition{Code: "SOME_FUTURE_CODE"}, g, Params{}) {
		t.Fatal("expected an unrecognized code to evaluate to true (forward compatibility)")
	}
}

func TestNotAttacked(t *testing.T) {
	g := newFakeGame()
	g.attacked["BLACK"] = map[string]struct{}{position.Position{4, 5}.Key(): {}}
	c := Condition{Code: NotAttacked}
	p := Params{Source: position.Position{4, 4}, Step: position.ExtendedPosition{0, 1}}
	if Evaluate(c, g, p) {
		t.Fatal("expected NOT_ATTACKED false when the target is threatened")
	}
	g.attacked["BLACK"] = map[string]struct{}{}
	if !Evaluate(c, g, p) {
		t.Fatal("expected NOT_ATTACKED true when the target is not threatened")
	}
}

func TestPathNotAttacked(t *testing.T) {
	g := newFakeGame()
	c := Condition{Code: PathNotAttacked}
	p := Params{Source: position.Position{4, 0}, Step: position.ExtendedPosition{2, 0}}

	if !Evaluate(c, g, p) {
		t.Fatal("expected PATH_NOT_ATTACKED true with no threats anywhere")
	}

	// Transit square under attack.
	g.attacked["BLACK"] = map[string]struct{}{position.Position{5, 0}.Key(): {}}
	if Evaluate(c, g, p) {
		t.Fatal("expected PATH_NOT_ATTACKED false when a transit square is threatened")
	}

	// Source square under attack (sliding out of check).
	g.attacked["BLACK"] = map[string]struct{}{position.Position{4, 0}.Key(): {}}
	if Evaluate(c, g, p) {
		t.Fatal("expected PATH_NOT_ATTACKED false when the source itself is threatened")
	}

	// The target square is deliberately not this condition's concern.
	g.attacked["BLACK"] = map[string]struct{}{position.Position{6, 0}.Key(): {}}
	if !Evaluate(c, g, p) {
		t.Fatal("expected PATH_NOT_ATTACKED to ignore the target square")
	}
}
