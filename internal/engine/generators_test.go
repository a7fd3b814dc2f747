package engine

import (
	"testing"

	"github.com/lgbarn/chessplus-go/internal/catalog"
	"github.com/lgbarn/chessplus-go/internal/chess"
	"github.com/lgbarn/chessplus-go/internal/errors"
	"github.com/lgbarn/chessplus-go/internal/testutil"
)

func TestPseudoLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		pos  string
		sq   string
		want []string
	}{
		{
			name: "rook stops before own piece and on enemy piece",
			pos:  "8/8/8/8/3R1p2/8/3P4/8 y",
			sq:   "d4",
			want: []string{"d5", "d6", "d7", "d8", "d3", "c4", "b4", "a4", "e4", "f4"},
		},
		{
			name: "bishop in corner",
			pos:  "8/8/8/8/8/8/8/B7 y",
			sq:   "a1",
			want: []string{"b2", "c3", "d4", "e5", "f6", "g7", "h8"},
		},
		{
			name: "queen boxed in by own pieces",
			pos:  "8/8/8/2PPP3/2PQP3/2PPP3/8/8 y",
			sq:   "d4",
			want: nil,
		},
		{
			name: "leaper jumps over pieces",
			pos:  "8/8/3p4/3P4/2PLP3/3P4/8/8 y",
			sq:   "d4",
			want: []string{"d6", "b4", "f4", "d2"},
		},
		{
			name: "leaper skips own pieces",
			pos:  "8/8/3P4/8/1P1L1P2/8/8/8 y",
			sq:   "d4",
			want: []string{"d2"},
		},
		{
			name: "knight in corner",
			pos:  "n7/8/8/8/8/8/8/8 b",
			sq:   "a8",
			want: []string{"b6", "c7"},
		},
		{
			name: "knight in center",
			pos:  "8/8/8/8/3N4/8/8/8 y",
			sq:   "d4",
			want: []string{"c6", "e6", "b5", "f5", "b3", "f3", "c2", "e2"},
		},
		{
			name: "hero in center",
			pos:  "8/8/8/3p4/3H4/3P4/8/8 y",
			sq:   "d4",
			want: []string{"c5", "d5", "e5", "c4", "e4", "c3", "e3"},
		},
		{
			name: "hero in corner",
			pos:  "7h/8/8/8/8/8/8/8 b",
			sq:   "h8",
			want: []string{"g8", "g7", "h7"},
		},
		{
			name: "wizard combines bishop and knight",
			pos:  "8/8/8/8/8/8/8/1W6 y",
			sq:   "b1",
			want: []string{"a2", "c2", "d3", "e4", "f5", "g6", "h7", "a3", "c3", "d2"},
		},
	}

	e := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := testutil.MustParsePosition(t, tt.pos)
			got, err := e.PseudoLegalMoves(board, testutil.Sq(t, tt.sq))
			testutil.AssertNoError(t, err)
			testutil.AssertSquares(t, got, tt.want)
		})
	}
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name string
		pos  string
		sq   string
		want []string
	}{
		{"yellow from start row", "8/8/8/8/8/8/4P3/8 y", "e2", []string{"e3", "e4"}},
		{"blue from start row", "8/4p3/8/8/8/8/8/8 b", "e7", []string{"e6", "e5"}},
		{"single step off start row", "8/8/8/8/8/4P3/8/8 y", "e3", []string{"e4"}},
		{"blocked directly ahead", "8/8/8/8/8/4p3/4P3/8 y", "e2", nil},
		{"double step blocked on destination", "8/8/8/8/4p3/8/4P3/8 y", "e2", []string{"e3"}},
		{"diagonal captures", "8/8/8/8/8/3p1p2/4P3/8 y", "e2", []string{"e3", "e4", "d3", "f3"}},
		{"no capture of own piece", "8/8/8/8/8/3P1P2/4P3/8 y", "e2", []string{"e3", "e4"}},
		{"no diagonal move to empty square", "8/8/8/3P4/8/8/8/8 y", "d5", []string{"d6"}},
		{"blue captures downward", "8/8/8/3p4/2P1P3/8/8/8 b", "d5", []string{"d4", "c4", "e4"}},
		{"on last row", "4P3/8/8/8/8/8/8/8 y", "e8", nil},
		{"edge column capture", "8/8/8/8/8/1p6/P7/8 y", "a2", []string{"a3", "a4", "b3"}},
	}

	e := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := testutil.MustParsePosition(t, tt.pos)
			got, err := e.PseudoLegalMoves(board, testutil.Sq(t, tt.sq))
			testutil.AssertNoError(t, err)
			testutil.AssertSquares(t, got, tt.want)
		})
	}
}

func TestPawnDoubleStepIsRowBased(t *testing.T) {
	e := New(nil)
	board := chess.NewBoard()
	e2 := testutil.Sq(t, "e2")
	board.Set(e2, chess.Piece{Kind: chess.Pawn, Side: chess.Yellow, HasMoved: true})

	got, err := e.PseudoLegalMoves(board, e2)
	testutil.AssertNoError(t, err)
	testutil.AssertSquares(t, got, []string{"e3", "e4"}, "moved pawn back on its start row")

	// Once it leaves the start row the double step is gone.
	next, err := e.ApplyMove(board, e2, testutil.Sq(t, "e3"))
	testutil.AssertNoError(t, err)
	got, err = e.PseudoLegalMoves(next, testutil.Sq(t, "e3"))
	testutil.AssertNoError(t, err)
	testutil.AssertSquares(t, got, []string{"e4"})
}

func TestCompoundDeduplicates(t *testing.T) {
	// Rook slider plus two-square orthogonal leaper overlap on every
	// square two cells away.
	desc := catalog.NewCompound(catalog.NewSlider(catalog.Orthogonal()...), catalog.NewLeaper(catalog.OrthogonalTwo()...))
	cat, err := catalog.Standard().With("X", desc)
	testutil.AssertNoError(t, err)
	e := New(cat)

	board := chess.NewBoard()
	from := testutil.Sq(t, "d4")
	board.Set(from, chess.Y("X"))

	got, err := e.PseudoLegalMoves(board, from)
	testutil.AssertNoError(t, err)

	seen := make(map[chess.Square]bool)
	for _, sq := range got {
		if seen[sq] {
			t.Errorf("destination %v listed twice", sq)
		}
		seen[sq] = true
	}
	if len(got) != 14 {
		t.Errorf("len(moves) = %d, want 14", len(got))
	}
}

func TestPseudoLegalMovesErrors(t *testing.T) {
	e := New(nil)
	board, _ := testutil.MustParsePosition(t, "8/8/8/8/3Z4/8/8/8 y")

	tests := []struct {
		name string
		sq   chess.Square
		want error
	}{
		{"out of bounds column", chess.Sq(8, 0), errors.ErrOutOfBounds},
		{"out of bounds row", chess.Sq(0, -1), errors.ErrOutOfBounds},
		{"empty square", testutil.Sq(t, "a1"), errors.ErrEmptySquare},
		{"unknown kind", testutil.Sq(t, "d4"), errors.ErrUnknownPieceKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.PseudoLegalMoves(board, tt.sq)
			testutil.AssertErrorIs(t, err, tt.want)
			if len(got) != 0 {
				t.Errorf("PseudoLegalMoves() = %v, want no moves", got)
			}
		})
	}
}

func TestGeneratorsNeverLandOnSourceOrOwnPiece(t *testing.T) {
	e := New(nil)
	positions := []string{
		"rlbqhblr/pppppppp/8/8/8/8/PPPPPPPP/RWBQHBWR y",
		"r2qh2r/pp3ppp/2n5/3W4/8/2L5/PPP2PPP/R3H2R y",
		"8/8/3pPp2/2PnNpP1/2pWwLl1/2Pp1P2/8/8 y",
	}

	for _, pos := range positions {
		board, _ := testutil.MustParsePosition(t, pos)
		for _, side := range []chess.Side{chess.Yellow, chess.Blue} {
			for _, from := range board.Occupied(side) {
				got, err := e.PseudoLegalMoves(board, from)
				testutil.AssertNoError(t, err)
				for _, to := range got {
					if to == from {
						t.Errorf("%s: %v lists its own square", pos, from)
					}
					if !to.InBounds() {
						t.Errorf("%s: %v lists off-board %v", pos, from, to)
						continue
					}
					if p := board.Get(to); !p.IsEmpty() && p.Side == side {
						t.Errorf("%s: %v lands on own piece at %v", pos, from, to)
					}
				}
			}
		}
	}
}
