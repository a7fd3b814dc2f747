package engine

import (
	"fmt"

	"github.com/lgbarn/chessplus-go/internal/chess"
	"github.com/lgbarn/chessplus-go/internal/errors"
)

// ApplyMove returns a new board with the piece on from moved to to. The
// moved piece is marked as moved, and a pawn reaching its promotion row
// becomes the catalog's promotion kind. Legality is the caller's concern;
// see ApplyLegalMove. The input board is not modified.
func (e *Engine) ApplyMove(board *chess.Board, from, to chess.Square) (*chess.Board, error) {
	piece, err := pieceAt(board, from)
	if err != nil {
		return nil, err
	}
	if !to.InBounds() {
		return nil, &errors.SquareError{Err: errors.ErrOutOfBounds, Square: to.String()}
	}
	if from == to {
		return nil, fmt.Errorf("move %s to itself: %w", from, errors.ErrIllegalMove)
	}

	next := board.Copy()
	piece.HasMoved = true
	if e.promotes(piece, to) {
		piece.Kind = e.cat.PromotionKind()
	}
	next.Clear(from)
	next.Set(to, piece)
	return next, nil
}

// ApplyLegalMove is like ApplyMove but fails with ErrIllegalMove unless
// to is among the legal destinations of the piece on from.
func (e *Engine) ApplyLegalMove(board *chess.Board, from, to chess.Square) (*chess.Board, error) {
	dests, err := e.LegalMoves(board, from)
	if err != nil {
		return nil, err
	}
	for _, d := range dests {
		if d == to {
			return e.ApplyMove(board, from, to)
		}
	}
	return nil, &errors.SquareError{
		Err:    fmt.Errorf("%s%s: %w", from, to, errors.ErrIllegalMove),
		Square: from.String(),
		Kind:   string(board.Get(from).Kind),
	}
}

// promotes reports whether piece landing on to is promoted.
func (e *Engine) promotes(piece chess.Piece, to chess.Square) bool {
	return e.cat.IsPawn(piece.Kind) &&
		to.Row == piece.Side.PromotionRow() &&
		e.cat.PromotionKind() != chess.NoKind
}

// IsPromotion reports whether moving the piece on from to to promotes it.
func (e *Engine) IsPromotion(board *chess.Board, from, to chess.Square) bool {
	if !from.InBounds() || !to.InBounds() {
		return false
	}
	piece := board.Get(from)
	return !piece.IsEmpty() && e.promotes(piece, to)
}
