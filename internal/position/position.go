// Package position reads and writes the text notation for boards.
//
// The notation lists rows from row 0 (top) to row 7 separated by '/'.
// Uppercase letters are Yellow pieces, lowercase letters Blue pieces and
// digits runs of empty cells. An optional second field gives the side to
// move ("y" or "b").
package position

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessplus-go/internal/chess"
	"github.com/lgbarn/chessplus-go/internal/errors"
)

// InitialPosition is the notation of the standard starting board.
const InitialPosition = "rlbqhblr/pppppppp/8/8/8/8/PPPPPPPP/RWBQHBWR y"

// Parse converts notation to a board and side to move. The side defaults
// to Yellow when the field is absent. Kind letters are not checked against
// a catalog.
func Parse(s string) (*chess.Board, chess.Side, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return nil, chess.Yellow, fmt.Errorf("empty position string: %w", errors.ErrInvalidPosition)
	}
	if len(parts) > 2 {
		return nil, chess.Yellow, &errors.ParseError{
			Err: errors.ErrInvalidPosition, Expected: "at most 2 fields", Got: fmt.Sprintf("%d", len(parts)),
		}
	}

	board := chess.NewBoard()
	if err := parsePlacement(board, parts[0]); err != nil {
		return nil, chess.Yellow, err
	}

	side, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.Yellow, err
	}
	return board, side, nil
}

// MustParse is like Parse but panics on error. Intended for fixed
// positions in tests and tables.
func MustParse(s string) (*chess.Board, chess.Side) {
	board, side, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return board, side
}

// parsePlacement parses the piece placement field.
func parsePlacement(board *chess.Board, placement string) error {
	row, col := 0, 0

	for i, c := range placement {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return placementError(i, fmt.Sprintf("row %d has %d cells", row, col))
			}
			row++
			col = 0
			if row >= chess.BoardSize {
				return placementError(i, "too many rows")
			}
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > chess.BoardSize {
				return placementError(i, fmt.Sprintf("row %d overflows", row))
			}
		case unicode.IsLetter(c) && c < unicode.MaxASCII:
			if col >= chess.BoardSize {
				return placementError(i, fmt.Sprintf("row %d overflows", row))
			}
			side := chess.Yellow
			if unicode.IsLower(c) {
				side = chess.Blue
			}
			kind := chess.Kind(string(unicode.ToUpper(c)))
			board.Set(chess.Sq(col, row), chess.NewPiece(side, kind))
			col++
		default:
			return placementError(i, fmt.Sprintf("character %q", c))
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidPosition,
			Expected: "8 rows of 8 cells",
			Got:      fmt.Sprintf("%d rows", row+1),
		}
	}
	return nil
}

func placementError(i int, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidPosition, Column: i + 1, Got: got}
}

// parseSideToMove parses the optional side to move field.
func parseSideToMove(parts []string) (chess.Side, error) {
	if len(parts) < 2 {
		return chess.Yellow, nil
	}
	switch parts[1] {
	case "y":
		return chess.Yellow, nil
	case "b":
		return chess.Blue, nil
	}
	return chess.Yellow, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidPosition)
}

// Format converts a board and side to move to notation.
func Format(board *chess.Board, side chess.Side) string {
	var sb strings.Builder
	writePlacement(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(side.Letter())
	return sb.String()
}

// FormatBoard converts a board to the placement field only.
func FormatBoard(board *chess.Board) string {
	var sb strings.Builder
	writePlacement(&sb, board)
	return sb.String()
}

// writePlacement writes the piece placement to the builder.
func writePlacement(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Sq(col, row))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(Letter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// Letter returns the notation letter of a piece: the kind's first letter,
// uppercase for Yellow and lowercase for Blue.
func Letter(p chess.Piece) byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := byte(unicode.ToUpper(rune(string(p.Kind)[0])))
	if p.Side == chess.Blue {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}
