// Package engine generates moves for catalog-described pieces, detects
// attacks on leader pieces, filters moves that expose the mover's leader
// and applies moves to boards.
//
// Every function treats boards passed in as read-only. Simulations run on
// copies that are discarded after the check.
package engine

import (
	"github.com/lgbarn/chessplus-go/internal/catalog"
	"github.com/lgbarn/chessplus-go/internal/chess"
	"github.com/lgbarn/chessplus-go/internal/errors"
)

// Engine applies the rules of a piece catalog. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	cat  *catalog.Catalog
	gens map[chess.Kind]generator
}

// New creates an engine for cat. A nil catalog selects catalog.Standard().
func New(cat *catalog.Catalog) *Engine {
	if cat == nil {
		cat = catalog.Standard()
	}
	e := &Engine{
		cat:  cat,
		gens: make(map[chess.Kind]generator, cat.Len()),
	}
	for _, kind := range cat.Kinds() {
		desc, _ := cat.Lookup(kind)
		e.gens[kind] = generatorFor(desc)
	}
	return e
}

// Catalog returns the catalog the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// PseudoLegalMoves returns the destinations the piece on sq can reach by
// its movement pattern, ignoring exposure of its own leader.
//
// Out-of-bounds coordinates fail with ErrOutOfBounds. An empty square or a
// kind missing from the catalog yields no moves together with
// ErrEmptySquare or ErrUnknownPieceKind.
func (e *Engine) PseudoLegalMoves(board *chess.Board, sq chess.Square) ([]chess.Square, error) {
	piece, err := pieceAt(board, sq)
	if err != nil {
		return nil, err
	}
	gen, ok := e.gens[piece.Kind]
	if !ok {
		return nil, &errors.SquareError{Err: errors.ErrUnknownPieceKind, Square: sq.String(), Kind: string(piece.Kind)}
	}
	return gen.moves(board, sq, piece.Side), nil
}

// pieceAt returns the piece on sq, failing for off-board or empty squares.
func pieceAt(board *chess.Board, sq chess.Square) (chess.Piece, error) {
	if !sq.InBounds() {
		return chess.Piece{}, &errors.SquareError{Err: errors.ErrOutOfBounds, Square: sq.String()}
	}
	piece := board.Get(sq)
	if piece.IsEmpty() {
		return chess.Piece{}, &errors.SquareError{Err: errors.ErrEmptySquare, Square: sq.String()}
	}
	return piece, nil
}
