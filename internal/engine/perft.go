package engine

import "github.com/lgbarn/chessplus-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree of the given depth,
// with side to play first.
func (e *Engine) Perft(board *chess.Board, side chess.Side, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := e.AllLegalMoves(board, side)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		next, err := e.ApplyMove(board, m.From, m.To)
		if err != nil {
			continue
		}
		nodes += e.Perft(next, side.Opposite(), depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each legal move of side.
func (e *Engine) PerftDivide(board *chess.Board, side chess.Side, depth int) map[chess.Move]uint64 {
	out := make(map[chess.Move]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range e.AllLegalMoves(board, side) {
		next, err := e.ApplyMove(board, m.From, m.To)
		if err != nil {
			continue
		}
		out[m] = e.Perft(next, side.Opposite(), depth-1)
	}
	return out
}
