// Package output formats engine results as text or JSON.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chessplus-go/internal/analysis"
	"github.com/lgbarn/chessplus-go/internal/chess"
	"github.com/lgbarn/chessplus-go/internal/position"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteDiagram writes the board with rank numbers on the left and file
// letters below. Empty cells are dots.
func WriteDiagram(w io.Writer, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d ", chess.BoardSize-row)
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			p := board.Get(chess.Sq(col, row))
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(position.Letter(p))
			}
		}
		fmt.Fprintln(w, sb.String())
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}

// WriteDestinations writes "from: to to ..." wrapped at maxLineLength.
func WriteDestinations(w io.Writer, from string, dests []string, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	ow.WriteNoSpace(from + ":")
	if len(dests) == 0 {
		ow.Write("-")
	}
	for _, d := range dests {
		ow.Write(d)
	}
	ow.NewLine()
}

// WriteReport writes a report as text. Moves are listed by source square.
func WriteReport(w io.Writer, r analysis.Report, maxLineLength int) {
	fmt.Fprintf(w, "[%d] %s\n", r.Index, r.Position)
	switch {
	case r.Error != "":
		fmt.Fprintf(w, "  error: %s\n", r.Error)
		return
	case r.Duplicate:
		fmt.Fprintln(w, "  duplicate")
		return
	}

	fmt.Fprintf(w, "  to move: %s\n", r.SideToMove)
	if r.InCheck {
		fmt.Fprintln(w, "  leader attacked")
	}
	fmt.Fprintf(w, "  legal moves: %d\n", r.LegalMoveCount)
	for _, from := range sortedKeys(r.Moves) {
		fmt.Fprint(w, "  ")
		WriteDestinations(w, from, r.Moves[from], maxLineLength-2)
	}
}

// WriteDivide writes one "move: count" line per move, sorted by move, and
// a total.
func WriteDivide(w io.Writer, divide map[chess.Move]uint64) {
	var total uint64
	for _, m := range sortedMoves(divide) {
		fmt.Fprintf(w, "%s: %d\n", m, divide[m])
		total += divide[m]
	}
	fmt.Fprintf(w, "\nmoves: %d\nnodes: %d\n", len(divide), total)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedMoves(m map[chess.Move]uint64) []chess.Move {
	moves := make([]chess.Move, 0, len(m))
	for mv := range m {
		moves = append(moves, mv)
	}
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].String() < moves[j].String()
	})
	return moves
}
