// Package errors provides sentinel errors and error types for the chessplus engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrUnknownPieceKind indicates a board cell references a kind absent from the catalog.
	ErrUnknownPieceKind = errors.New("unknown piece kind")

	// ErrEmptySquare indicates a move query against an empty square.
	ErrEmptySquare = errors.New("empty square queried")

	// ErrOutOfBounds indicates coordinates outside the board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrNotSideToMove indicates a query for a piece that does not belong to the side to move.
	ErrNotSideToMove = errors.New("piece does not belong to side to move")

	// ErrIllegalMove indicates a move that is not in the legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPosition indicates a malformed position string.
	ErrInvalidPosition = errors.New("invalid position string")

	// ErrInvalidCatalog indicates a malformed piece catalog or descriptor.
	ErrInvalidCatalog = errors.New("invalid piece catalog")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SquareError wraps errors with the square (and piece kind, when known)
// the failing query was issued against. It supports unwrapping via
// errors.Is() and errors.As().
type SquareError struct {
	Err    error  // The underlying error
	Square string // Algebraic square name (e.g. "e2")
	Kind   string // Piece kind on the square, if any
}

// Error returns a formatted error message including all available context.
func (e *SquareError) Error() string {
	var parts []string

	if e.Square != "" {
		parts = append(parts, "square "+e.Square)
	}
	if e.Kind != "" {
		parts = append(parts, fmt.Sprintf("kind %q", e.Kind))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "square error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with location context.
// It's used for position strings and catalog files.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name, if any
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	loc := e.File
	if e.Line > 0 {
		if loc != "" {
			loc += ":"
		}
		loc += fmt.Sprintf("%d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
	}
	if loc != "" {
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
