package engine

import "github.com/lgbarn/chessplus-go/internal/chess"

// IsLeaderAttacked reports whether the leader piece of side can be reached
// by any opposing piece. A side without a leader is never attacked.
func (e *Engine) IsLeaderAttacked(board *chess.Board, side chess.Side) bool {
	leader, ok := e.findLeader(board, side)
	if !ok {
		return false
	}
	return e.isSquareAttacked(board, leader, side.Opposite())
}

// findLeader returns the first square, in row-major order, holding a
// leader piece of side.
func (e *Engine) findLeader(board *chess.Board, side chess.Side) (chess.Square, bool) {
	return board.Find(func(p chess.Piece) bool {
		return p.Side == side && e.cat.IsLeader(p.Kind)
	})
}

// Leader returns the square of side's leader, if it has one.
func (e *Engine) Leader(board *chess.Board, side chess.Side) (chess.Square, bool) {
	return e.findLeader(board, side)
}

// isSquareAttacked reports whether any piece of bySide has sq among its
// pseudo-legal destinations. Pieces of unknown kind attack nothing.
func (e *Engine) isSquareAttacked(board *chess.Board, sq chess.Square, bySide chess.Side) bool {
	for _, from := range board.Occupied(bySide) {
		piece := board.Get(from)
		gen, ok := e.gens[piece.Kind]
		if !ok {
			continue
		}
		for _, to := range gen.moves(board, from, piece.Side) {
			if to == sq {
				return true
			}
		}
	}
	return false
}

// Attackers returns the squares of bySide's pieces that reach sq, in
// row-major order.
func (e *Engine) Attackers(board *chess.Board, sq chess.Square, bySide chess.Side) []chess.Square {
	var out []chess.Square
	for _, from := range board.Occupied(bySide) {
		piece := board.Get(from)
		gen, ok := e.gens[piece.Kind]
		if !ok {
			continue
		}
		for _, to := range gen.moves(board, from, piece.Side) {
			if to == sq {
				out = append(out, from)
				break
			}
		}
	}
	return out
}
