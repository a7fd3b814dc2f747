// Package session drives a game the way a board UI does: squares are
// pressed one at a time to select pieces and move them.
package session

import (
	"github.com/apex/log"
	"github.com/google/uuid"

	"github.com/lgbarn/chessplus-go/internal/chess"
	"github.com/lgbarn/chessplus-go/internal/engine"
	"github.com/lgbarn/chessplus-go/internal/errors"
)

// Action is what a press did.
type Action int

const (
	Cleared  Action = iota // Selection dropped
	Selected               // An own piece was selected
	Moved                  // The selected piece moved
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Selected:
		return "selected"
	case Moved:
		return "moved"
	}
	return "cleared"
}

// Result describes the effect of a press.
type Result struct {
	Action Action
	// Move is set when Action is Moved.
	Move chess.Move
	// Promoted reports whether the moved pawn was promoted.
	Promoted bool
}

// Session holds a board, the side to move and the current selection.
// A Session is not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	eng    *engine.Engine
	logger log.Interface

	start     *chess.Board
	startTurn chess.Side

	board      *chess.Board
	turn       chess.Side
	selection  chess.Square
	selected   bool
	highlights []chess.Square
	moves      []chess.Move
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Defaults to the apex/log package logger.
func WithLogger(l log.Interface) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithPosition starts the session from board with side to move instead of
// the initial position.
func WithPosition(board *chess.Board, side chess.Side) Option {
	return func(s *Session) {
		s.start = board.Copy()
		s.startTurn = side
	}
}

// New creates a session. A nil engine uses the standard catalog.
func New(eng *engine.Engine, opts ...Option) *Session {
	if eng == nil {
		eng = engine.New(nil)
	}
	s := &Session{
		ID:        uuid.New(),
		eng:       eng,
		logger:    log.Log,
		start:     chess.NewStartBoard(),
		startTurn: chess.Yellow,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset restores the starting position with nothing selected.
func (s *Session) Reset() {
	s.board = s.start.Copy()
	s.turn = s.startTurn
	s.clear()
	s.moves = nil
	s.log().Debug("session reset")
}

// Press handles a press on sq.
//
// A highlighted destination moves the selected piece, promoting a pawn that
// reaches its promotion row, and passes the turn. A piece of the side to
// move becomes the selection with its legal destinations highlighted.
// Anything else clears the selection.
func (s *Session) Press(sq chess.Square) (Result, error) {
	if !sq.InBounds() {
		return Result{}, &errors.SquareError{Err: errors.ErrOutOfBounds, Square: sq.String()}
	}

	if s.selected && s.isHighlighted(sq) {
		return s.move(sq)
	}

	piece := s.board.Get(sq)
	if piece.IsEmpty() || piece.Side != s.turn {
		s.clear()
		return Result{Action: Cleared}, nil
	}

	dests, err := s.eng.GetLegalMoves(s.board, sq, s.turn)
	if err != nil {
		s.clear()
		s.log().WithField("square", sq.String()).WithError(err).Warn("selection failed")
		return Result{Action: Cleared}, err
	}

	s.selection = sq
	s.selected = true
	s.highlights = dests
	s.log().WithFields(log.Fields{
		"square": sq.String(),
		"piece":  string(piece.Kind),
		"moves":  len(dests),
	}).Debug("piece selected")
	return Result{Action: Selected}, nil
}

func (s *Session) move(to chess.Square) (Result, error) {
	from := s.selection
	promoted := s.eng.IsPromotion(s.board, from, to)

	next, err := s.eng.ApplyMove(s.board, from, to)
	if err != nil {
		return Result{}, err
	}

	m := chess.Move{From: from, To: to}
	s.board = next
	s.moves = append(s.moves, m)
	s.turn = s.turn.Opposite()
	s.clear()

	s.log().WithFields(log.Fields{
		"move":     m.String(),
		"promoted": promoted,
		"turn":     s.turn.String(),
	}).Debug("piece moved")
	return Result{Action: Moved, Move: m, Promoted: promoted}, nil
}

func (s *Session) isHighlighted(sq chess.Square) bool {
	for _, h := range s.highlights {
		if h == sq {
			return true
		}
	}
	return false
}

func (s *Session) clear() {
	s.selected = false
	s.selection = chess.Square{}
	s.highlights = nil
}

func (s *Session) log() *log.Entry {
	return s.logger.WithField("session", s.ID.String())
}

// Board returns a copy of the current board.
func (s *Session) Board() *chess.Board {
	return s.board.Copy()
}

// Turn returns the side to move.
func (s *Session) Turn() chess.Side {
	return s.turn
}

// Selection returns the selected square, if any.
func (s *Session) Selection() (chess.Square, bool) {
	return s.selection, s.selected
}

// Highlights returns the legal destinations of the selected piece.
func (s *Session) Highlights() []chess.Square {
	out := make([]chess.Square, len(s.highlights))
	copy(out, s.highlights)
	return out
}

// Moves returns the moves played since the last reset.
func (s *Session) Moves() []chess.Move {
	out := make([]chess.Move, len(s.moves))
	copy(out, s.moves)
	return out
}

// InCheck reports whether the leader of the side to move is attacked.
func (s *Session) InCheck() bool {
	return s.eng.IsLeaderAttacked(s.board, s.turn)
}
