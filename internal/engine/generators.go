package engine

import (
	"github.com/lgbarn/chessplus-go/internal/catalog"
	"github.com/lgbarn/chessplus-go/internal/chess"
)

// generator produces pseudo-legal destinations for a piece of side
// standing on from.
type generator interface {
	moves(board *chess.Board, from chess.Square, side chess.Side) []chess.Square
}

// generatorFor resolves a descriptor to its generator.
func generatorFor(desc catalog.Descriptor) generator {
	switch desc.Shape {
	case catalog.Slider:
		return slider{dirs: desc.Offsets}
	case catalog.Leaper:
		return leaper{steps: desc.Offsets}
	case catalog.Compound:
		parts := make([]generator, len(desc.Parts))
		for i, part := range desc.Parts {
			parts[i] = generatorFor(part)
		}
		return compound{parts: parts}
	}

	switch desc.Special {
	case catalog.PawnTag:
		return pawn{}
	case catalog.LeaderStepTag:
		return leaper{steps: catalog.AllEight()}
	case catalog.KnightJumpTag:
		return leaper{steps: catalog.KnightJump()}
	}
	return none{}
}

// canLand reports whether a piece of side may finish on sq.
func canLand(board *chess.Board, sq chess.Square, side chess.Side) bool {
	if !sq.InBounds() {
		return false
	}
	target := board.Get(sq)
	return target.IsEmpty() || target.Side != side
}

// slider repeats each direction until it leaves the board or meets a
// piece. An opposing piece is included and stops the ray.
type slider struct {
	dirs []chess.Offset
}

func (g slider) moves(board *chess.Board, from chess.Square, side chess.Side) []chess.Square {
	var out []chess.Square
	for _, dir := range g.dirs {
		for to := from.Add(dir); to.InBounds(); to = to.Add(dir) {
			target := board.Get(to)
			if target.IsEmpty() {
				out = append(out, to)
				continue
			}
			if target.Side != side {
				out = append(out, to)
			}
			break // Blocked
		}
	}
	return out
}

// leaper makes one fixed jump per offset.
type leaper struct {
	steps []chess.Offset
}

func (g leaper) moves(board *chess.Board, from chess.Square, side chess.Side) []chess.Square {
	var out []chess.Square
	for _, step := range g.steps {
		if to := from.Add(step); canLand(board, to, side) {
			out = append(out, to)
		}
	}
	return out
}

// compound is the union of its parts, each destination listed once.
type compound struct {
	parts []generator
}

func (g compound) moves(board *chess.Board, from chess.Square, side chess.Side) []chess.Square {
	var seen [chess.NumCells]bool
	var out []chess.Square
	for _, part := range g.parts {
		for _, to := range part.moves(board, from, side) {
			if seen[to.Index()] {
				continue
			}
			seen[to.Index()] = true
			out = append(out, to)
		}
	}
	return out
}

// pawn pushes forward onto empty cells, two cells from its side's pawn
// row, and captures one cell diagonally forward.
type pawn struct{}

func (pawn) moves(board *chess.Board, from chess.Square, side chess.Side) []chess.Square {
	var out []chess.Square
	dir := side.Forward()

	one := from.Add(chess.Offset{DY: dir})
	if one.InBounds() && board.IsEmpty(one) {
		out = append(out, one)
		// Double step depends on the row only, not on HasMoved.
		if from.Row == side.PawnRow() {
			two := one.Add(chess.Offset{DY: dir})
			if two.InBounds() && board.IsEmpty(two) {
				out = append(out, two)
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		to := from.Add(chess.Offset{DX: dc, DY: dir})
		if !to.InBounds() {
			continue
		}
		if target := board.Get(to); !target.IsEmpty() && target.Side != side {
			out = append(out, to)
		}
	}
	return out
}

// none never moves. Validated catalogs never resolve to it.
type none struct{}

func (none) moves(*chess.Board, chess.Square, chess.Side) []chess.Square {
	return nil
}
