package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessplus-go/internal/analysis"
	"github.com/lgbarn/chessplus-go/internal/chess"
)

// JSONReports holds multiple reports for array output.
type JSONReports struct {
	Reports []analysis.Report `json:"reports"`
}

// JSONMoves lists the destinations of one piece.
type JSONMoves struct {
	Position string   `json:"position"`
	From     string   `json:"from"`
	Piece    string   `json:"piece,omitempty"`
	Moves    []string `json:"moves"`
}

// JSONDivide is a perft divide result.
type JSONDivide struct {
	Position string            `json:"position"`
	Depth    int               `json:"depth"`
	Moves    map[string]uint64 `json:"moves"`
	Nodes    uint64            `json:"nodes"`
}

// JSONPerft is a perft count.
type JSONPerft struct {
	Position string `json:"position"`
	Depth    int    `json:"depth"`
	Nodes    uint64 `json:"nodes"`
}

// JSONCheck reports whether a side's leader is attacked.
type JSONCheck struct {
	Position  string   `json:"position"`
	Side      string   `json:"side"`
	Attacked  bool     `json:"attacked"`
	Attackers []string `json:"attackers,omitempty"`
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// DivideToJSON converts a perft divide map to its JSON form.
func DivideToJSON(pos string, depth int, divide map[chess.Move]uint64) *JSONDivide {
	jd := &JSONDivide{
		Position: pos,
		Depth:    depth,
		Moves:    make(map[string]uint64, len(divide)),
	}
	for m, n := range divide {
		jd.Moves[m.String()] = n
		jd.Nodes += n
	}
	return jd
}

// SquaresToStrings converts squares to their algebraic names.
func SquaresToStrings(squares []chess.Square) []string {
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.String()
	}
	return out
}
