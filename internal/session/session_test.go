package session

import (
	stderrors "errors"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/google/uuid"

	"github.com/lgbarn/chessplus-go/internal/chess"
	"github.com/lgbarn/chessplus-go/internal/engine"
	"github.com/lgbarn/chessplus-go/internal/errors"
	"github.com/lgbarn/chessplus-go/internal/testutil"
)

func newTestSession(t *testing.T, pos string) (*Session, *memory.Handler) {
	t.Helper()
	handler := memory.New()
	opts := []Option{WithLogger(&log.Logger{Handler: handler, Level: log.DebugLevel})}
	if pos != "" {
		board, side := testutil.MustParsePosition(t, pos)
		opts = append(opts, WithPosition(board, side))
	}
	return New(engine.New(nil), opts...), handler
}

func press(t *testing.T, s *Session, name string) Result {
	t.Helper()
	r, err := s.Press(testutil.Sq(t, name))
	if err != nil {
		t.Fatalf("Press(%s): %v", name, err)
	}
	return r
}

func TestNewSession(t *testing.T) {
	s, _ := newTestSession(t, "")

	testutil.AssertTrue(t, s.ID != uuid.Nil, "session has an id")
	testutil.AssertEqual(t, s.Turn(), chess.Yellow, "yellow starts")
	testutil.AssertTrue(t, s.Board().Equal(chess.NewStartBoard()), "initial board")
	_, selected := s.Selection()
	testutil.AssertFalse(t, selected, "nothing selected")
	testutil.AssertEqual(t, len(s.Highlights()), 0, "nothing highlighted")
	testutil.AssertFalse(t, s.InCheck(), "not in check")

	other, _ := newTestSession(t, "")
	testutil.AssertTrue(t, s.ID != other.ID, "ids are unique")
}

func TestPressFlow(t *testing.T) {
	s, _ := newTestSession(t, "")

	r := press(t, s, "e2")
	testutil.AssertEqual(t, r.Action, Selected, "own pawn selected")
	sel, ok := s.Selection()
	testutil.AssertTrue(t, ok, "selection set")
	testutil.AssertEqual(t, sel, testutil.Sq(t, "e2"), "selection square")
	testutil.AssertSquares(t, s.Highlights(), []string{"e3", "e4"}, "pawn destinations")

	r = press(t, s, "e4")
	testutil.AssertEqual(t, r.Action, Moved, "pawn moved")
	testutil.AssertEqual(t, r.Move.String(), "e2e4", "move")
	testutil.AssertFalse(t, r.Promoted, "no promotion")
	testutil.AssertEqual(t, s.Turn(), chess.Blue, "turn passes")
	_, ok = s.Selection()
	testutil.AssertFalse(t, ok, "selection cleared after move")

	board := s.Board()
	testutil.AssertTrue(t, board.IsEmpty(testutil.Sq(t, "e2")), "source emptied")
	moved := board.Get(testutil.Sq(t, "e4"))
	testutil.AssertEqual(t, moved.Kind, chess.Pawn, "pawn on e4")
	testutil.AssertTrue(t, moved.HasMoved, "pawn marked moved")

	r = press(t, s, "e4")
	testutil.AssertEqual(t, r.Action, Cleared, "opponent piece is not selectable")

	r = press(t, s, "d7")
	testutil.AssertEqual(t, r.Action, Selected, "blue pawn selected")
	r = press(t, s, "c7")
	testutil.AssertEqual(t, r.Action, Selected, "another own piece reselects")
	sel, _ = s.Selection()
	testutil.AssertEqual(t, sel, testutil.Sq(t, "c7"), "selection moved")

	r = press(t, s, "c3")
	testutil.AssertEqual(t, r.Action, Cleared, "non-destination clears")
	testutil.AssertEqual(t, len(s.Highlights()), 0, "highlights cleared")

	testutil.AssertEqual(t, len(s.Moves()), 1, "one move played")
}

func TestPressHighlightsOnlyLegalMoves(t *testing.T) {
	// The rook on e2 is pinned against the leader by the blue rook.
	s, _ := newTestSession(t, "4r3/8/8/8/8/8/4R3/4H3 y")

	press(t, s, "e2")
	testutil.AssertSquares(t, s.Highlights(), []string{"e3", "e4", "e5", "e6", "e7", "e8"}, "pinned rook stays on the file")

	r := press(t, s, "d2")
	testutil.AssertEqual(t, r.Action, Cleared, "pseudo-legal but illegal square clears")
}

func TestPressPromotion(t *testing.T) {
	s, _ := newTestSession(t, "8/P7/8/8/8/8/8/4H3 y")

	press(t, s, "a7")
	r := press(t, s, "a8")
	testutil.AssertEqual(t, r.Action, Moved, "pawn moved")
	testutil.AssertTrue(t, r.Promoted, "pawn promoted")

	got := s.Board().Get(testutil.Sq(t, "a8"))
	testutil.AssertEqual(t, got.Kind, chess.Queen, "promoted to the strongest slider")
	testutil.AssertEqual(t, got.Side, chess.Yellow, "side kept")
}

func TestPressInCheck(t *testing.T) {
	s, _ := newTestSession(t, "4r3/8/8/8/8/8/8/4H3 y")
	testutil.AssertTrue(t, s.InCheck(), "rook attacks the leader")

	press(t, s, "e1")
	press(t, s, "d1")
	testutil.AssertFalse(t, s.InCheck(), "blue is not attacked")
	testutil.AssertEqual(t, s.Turn(), chess.Blue, "blue to move")
}

func TestPressErrors(t *testing.T) {
	s, _ := newTestSession(t, "8/8/8/8/8/8/8/4Z3 y")

	_, err := s.Press(chess.Sq(8, 0))
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrOutOfBounds), "off-board press")

	r, err := s.Press(testutil.Sq(t, "e1"))
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrUnknownPieceKind), "unknown kind")
	testutil.AssertEqual(t, r.Action, Cleared, "unknown piece not selected")
	_, ok := s.Selection()
	testutil.AssertFalse(t, ok, "nothing selected")
}

func TestReset(t *testing.T) {
	s, _ := newTestSession(t, "")
	press(t, s, "g1")
	press(t, s, "f3")
	press(t, s, "b7")

	s.Reset()
	testutil.AssertTrue(t, s.Board().Equal(chess.NewStartBoard()), "board restored")
	testutil.AssertEqual(t, s.Turn(), chess.Yellow, "turn restored")
	testutil.AssertEqual(t, len(s.Moves()), 0, "history cleared")
	_, ok := s.Selection()
	testutil.AssertFalse(t, ok, "selection cleared")
}

func TestBoardIsCopy(t *testing.T) {
	s, _ := newTestSession(t, "")
	b := s.Board()
	b.Clear(testutil.Sq(t, "e1"))
	testutil.AssertFalse(t, s.Board().IsEmpty(testutil.Sq(t, "e1")), "session board untouched")
}

func TestPressLogs(t *testing.T) {
	s, handler := newTestSession(t, "")
	handler.Entries = nil

	press(t, s, "e2")
	press(t, s, "e4")

	if len(handler.Entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(handler.Entries))
	}
	sel := handler.Entries[0]
	testutil.AssertEqual(t, sel.Message, "piece selected")
	testutil.AssertEqual(t, sel.Fields.Get("square"), "e2")
	testutil.AssertEqual(t, sel.Fields.Get("session"), s.ID.String())

	moved := handler.Entries[1]
	testutil.AssertEqual(t, moved.Message, "piece moved")
	testutil.AssertEqual(t, moved.Fields.Get("move"), "e2e4")
	testutil.AssertEqual(t, moved.Level, log.DebugLevel)
}

func TestActionString(t *testing.T) {
	testutil.AssertEqual(t, Cleared.String(), "cleared")
	testutil.AssertEqual(t, Selected.String(), "selected")
	testutil.AssertEqual(t, Moved.String(), "moved")
}
