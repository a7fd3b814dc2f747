// Package chess provides core board types and geometry for the variant engine.
package chess

import (
	"fmt"
	"strings"
)

// Side represents one of the two players.
type Side int

const (
	Yellow Side = iota // Moves toward row 0
	Blue               // Moves toward the last row
	NumSides
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case Yellow:
		return "Yellow"
	case Blue:
		return "Blue"
	}
	return "Unknown"
}

// Letter returns the single letter used for the side in position strings.
func (s Side) Letter() byte {
	if s == Blue {
		return 'b'
	}
	return 'y'
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == Yellow {
		return Blue
	}
	return Yellow
}

// Forward returns the row delta of a forward step: -1 for Yellow, +1 for Blue.
func (s Side) Forward() int {
	if s == Yellow {
		return -1
	}
	return 1
}

// BackRow returns the row the side sets up its back pieces on.
func (s Side) BackRow() int {
	if s == Yellow {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the starting row of the side's pawns.
func (s Side) PawnRow() int {
	return s.BackRow() + s.Forward()
}

// PromotionRow returns the opposing back row.
func (s Side) PromotionRow() int {
	return s.Opposite().BackRow()
}

// ParseSide converts "y", "b", "yellow" or "blue" (any case) to a Side.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "y", "yellow":
		return Yellow, nil
	case "b", "blue":
		return Blue, nil
	}
	return Yellow, fmt.Errorf("unknown side %q", s)
}

// Kind identifies a piece kind. The set is open: any kind registered in a
// catalog is valid.
type Kind string

// Standard kinds.
const (
	NoKind Kind = ""
	Pawn   Kind = "P"
	Rook   Kind = "R"
	Bishop Kind = "B"
	Queen  Kind = "Q"
	Knight Kind = "N"
	Hero   Kind = "H" // Leader piece
	Wizard Kind = "W" // Bishop + knight compound
	Leaper Kind = "L" // Two-square orthogonal jump
)

var kindNames = map[Kind]string{
	Pawn:   "Pawn",
	Rook:   "Rook",
	Bishop: "Bishop",
	Queen:  "Queen",
	Knight: "Knight",
	Hero:   "Hero",
	Wizard: "Wizard",
	Leaper: "Leaper",
}

// String returns the string representation of a kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if k == NoKind {
		return "None"
	}
	return string(k)
}

// Piece is the content of a cell. The zero value is an empty cell.
type Piece struct {
	Kind     Kind
	Side     Side
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(side Side, kind Kind) Piece {
	return Piece{Kind: kind, Side: side}
}

// Y creates a yellow piece.
func Y(kind Kind) Piece {
	return NewPiece(Yellow, kind)
}

// B creates a blue piece.
func B(kind Kind) Piece {
	return NewPiece(Blue, kind)
}

// IsEmpty reports whether the cell holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// String returns e.g. "yP" or "." for an empty cell.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	return string(p.Side.Letter()) + string(p.Kind)
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	NumCells  = BoardSize * BoardSize

	ColBase = 'a'
	RowBase = '1'
)

// Offset is a (column, row) displacement.
type Offset struct {
	DX int
	DY int
}

// IsZero reports whether the offset does not move.
func (o Offset) IsZero() bool {
	return o.DX == 0 && o.DY == 0
}

// Square addresses a cell. Origin is the top-left corner; Col grows
// rightward and Row grows downward.
type Square struct {
	Col int
	Row int
}

// Sq is shorthand for Square{Col: col, Row: row}.
func Sq(col, row int) Square {
	return Square{Col: col, Row: row}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Col >= 0 && s.Col < BoardSize && s.Row >= 0 && s.Row < BoardSize
}

// Add returns the square displaced by o. The result may be off the board.
func (s Square) Add(o Offset) Square {
	return Square{Col: s.Col + o.DX, Row: s.Row + o.DY}
}

// Index returns the row-major index of the square, a canonical key for sets.
func (s Square) Index() int {
	return s.Row*BoardSize + s.Col
}

// SquareFromIndex converts a row-major index back to a square.
func SquareFromIndex(i int) Square {
	return Square{Col: i % BoardSize, Row: i / BoardSize}
}

// String returns the algebraic name; row 0 is rank 8.
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Col, s.Row)
	}
	return string([]byte{byte(ColBase + s.Col), byte(RowBase + BoardSize - 1 - s.Row)})
}

// ParseSquare parses an algebraic square name such as "e2".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("invalid square %q", name)
	}
	col := int(strings.ToLower(name)[0]) - ColBase
	rank := int(name[1]) - RowBase
	sq := Square{Col: col, Row: BoardSize - 1 - rank}
	if !sq.InBounds() {
		return Square{}, fmt.Errorf("invalid square %q", name)
	}
	return sq, nil
}

// Move is a source-destination pair.
type Move struct {
	From Square
	To   Square
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses a long algebraic move such as "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("invalid move %q", s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}
