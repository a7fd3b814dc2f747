package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chessplus-go/internal/chess"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.Y(chess.Hero), chess.Y(chess.Hero), "piece")
}

func TestAssertErrors_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertNoError(t, nil)
	AssertError(t, sentinel, "expected error from %s", "operation")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestAssertConditions_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
	AssertTrue(t, true)
	AssertFalse(t, false, "should be false")
}

func TestAssertSquares(t *testing.T) {
	got := []chess.Square{chess.Sq(4, 4), chess.Sq(4, 5)}
	AssertSquares(t, got, []string{"e3", "e4"})
	AssertSquares(t, got, []string{"e4", "e3"})
	AssertSquares(t, nil, nil)
	AssertSquares(t, []chess.Square{}, nil)
}

func TestSquareNames(t *testing.T) {
	got := SquareNames([]chess.Square{chess.Sq(7, 0), chess.Sq(0, 7)})
	AssertEqual(t, got, []string{"a1", "h8"})
}

func TestMustParsePosition(t *testing.T) {
	board, side := MustParsePosition(t, "4h3/8/8/8/8/8/8/4H3 b")
	AssertEqual(t, side, chess.Blue)
	AssertEqual(t, board.Get(Sq(t, "e1")), chess.Y(chess.Hero))
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []interface{}{}, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
