package chess

// Board is an 8x8 grid of cells indexed [row][col]. It is a plain value:
// assigning or copying a Board yields an independent board.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Back rows of the standard setup, from column 0 to column 7.
var (
	YellowBackRow = [BoardSize]Kind{Rook, Wizard, Bishop, Queen, Hero, Bishop, Wizard, Rook}
	BlueBackRow   = [BoardSize]Kind{Rook, Leaper, Bishop, Queen, Hero, Bishop, Leaper, Rook}
)

// NewStartBoard creates a board holding the standard two-side setup.
func NewStartBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places the standard setup.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	for col := 0; col < BoardSize; col++ {
		b.Squares[Yellow.BackRow()][col] = Y(YellowBackRow[col])
		b.Squares[Yellow.PawnRow()][col] = Y(Pawn)
		b.Squares[Blue.PawnRow()][col] = B(Pawn)
		b.Squares[Blue.BackRow()][col] = B(BlueBackRow[col])
	}
}

// Get returns the piece at sq. The square must be on the board.
func (b *Board) Get(sq Square) Piece {
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece at sq. The square must be on the board.
func (b *Board) Set(sq Square, p Piece) {
	b.Squares[sq.Row][sq.Col] = p
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Squares[sq.Row][sq.Col] = Piece{}
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether both boards hold the same pieces.
func (b *Board) Equal(other *Board) bool {
	return b.Squares == other.Squares
}

// Find returns the first square, in row-major order, holding a piece
// for which match returns true.
func (b *Board) Find(match func(Piece) bool) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && match(p) {
				return Square{Col: col, Row: row}, true
			}
		}
	}
	return Square{}, false
}

// Occupied returns the squares holding pieces of side, in row-major order.
func (b *Board) Occupied(side Side) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Side == side {
				squares = append(squares, Square{Col: col, Row: row})
			}
		}
	}
	return squares
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !b.Squares[row][col].IsEmpty() {
				n++
			}
		}
	}
	return n
}
