package engine

import (
	"github.com/lgbarn/chessplus-go/internal/chess"
	"github.com/lgbarn/chessplus-go/internal/errors"
)

// LegalMoves returns the pseudo-legal destinations of the piece on sq that
// do not leave its own leader attacked. Errors are those of
// PseudoLegalMoves.
func (e *Engine) LegalMoves(board *chess.Board, sq chess.Square) ([]chess.Square, error) {
	candidates, err := e.PseudoLegalMoves(board, sq)
	if err != nil {
		return nil, err
	}
	side := board.Get(sq).Side

	legal := make([]chess.Square, 0, len(candidates))
	for _, to := range candidates {
		if e.tryMove(board, sq, to, side) {
			legal = append(legal, to)
		}
	}
	return legal, nil
}

// GetLegalMoves returns the legal destinations of the piece on sq when
// sideToMove is to play. A piece of the other side has no moves and
// fails with ErrNotSideToMove.
func (e *Engine) GetLegalMoves(board *chess.Board, sq chess.Square, sideToMove chess.Side) ([]chess.Square, error) {
	piece, err := pieceAt(board, sq)
	if err != nil {
		return nil, err
	}
	if piece.Side != sideToMove {
		return nil, &errors.SquareError{Err: errors.ErrNotSideToMove, Square: sq.String(), Kind: string(piece.Kind)}
	}
	return e.LegalMoves(board, sq)
}

// IsMoveLegal reports whether moving the piece on from to to leaves the
// leader of side unattacked. Only occupancy after the move is considered;
// the move is not checked against the piece's movement pattern.
func (e *Engine) IsMoveLegal(board *chess.Board, from, to chess.Square, side chess.Side) bool {
	if !from.InBounds() || !to.InBounds() || from == to {
		return false
	}
	return e.tryMove(board, from, to, side)
}

// tryMove makes a move on a copied board and checks that it does not
// leave side's leader attacked.
func (e *Engine) tryMove(board *chess.Board, from, to chess.Square, side chess.Side) bool {
	testBoard := board.Copy()

	piece := testBoard.Get(from)
	testBoard.Clear(from)
	testBoard.Set(to, piece)

	return !e.IsLeaderAttacked(testBoard, side)
}

// AllLegalMoves returns every legal move of side, ordered by source square
// in row-major order. Pieces of unknown kind contribute nothing.
func (e *Engine) AllLegalMoves(board *chess.Board, side chess.Side) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Occupied(side) {
		dests, err := e.LegalMoves(board, from)
		if err != nil {
			continue
		}
		for _, to := range dests {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// HasLegalMoves reports whether side has at least one legal move.
func (e *Engine) HasLegalMoves(board *chess.Board, side chess.Side) bool {
	for _, from := range board.Occupied(side) {
		dests, err := e.LegalMoves(board, from)
		if err == nil && len(dests) > 0 {
			return true
		}
	}
	return false
}
