package testutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessplus-go/internal/chess"
	"github.com/lgbarn/chessplus-go/internal/position"
)

// MustParsePosition parses position notation and calls t.Fatal on error.
func MustParsePosition(t testing.TB, s string) (*chess.Board, chess.Side) {
	t.Helper()
	board, side, err := position.Parse(s)
	if err != nil {
		t.Fatalf("failed to parse position %q: %v", s, err)
	}
	return board, side
}

// Sq parses an algebraic square name and calls t.Fatal on error.
func Sq(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return sq
}

// Squares parses algebraic square names.
func Squares(t testing.TB, names ...string) []chess.Square {
	t.Helper()
	out := make([]chess.Square, len(names))
	for i, name := range names {
		out[i] = Sq(t, name)
	}
	return out
}

// SquareNames returns the algebraic names of squares, sorted.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	sort.Strings(names)
	return names
}

// SquareSetOpts compares square slices as sets.
var SquareSetOpts = cmp.Options{
	cmpopts.SortSlices(func(a, b chess.Square) bool { return a.Index() < b.Index() }),
	cmpopts.EquateEmpty(),
}

// AssertSquares fails unless got and want hold the same squares in any
// order. want is given as algebraic names.
func AssertSquares(t *testing.T, got []chess.Square, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(Squares(t, want...), got, SquareSetOpts); diff != "" {
		fail(t, "squares mismatch (-want +got):\n"+diff+"got: "+strings.Join(SquareNames(got), " "), msgAndArgs...)
	}
}
