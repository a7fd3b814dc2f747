// Package catalog maps piece kinds to declarative movement descriptors.
package catalog

import (
	"fmt"

	"github.com/lgbarn/chessplus-go/internal/chess"
	"github.com/lgbarn/chessplus-go/internal/errors"
)

// Shape is the tag of a movement descriptor.
type Shape int

const (
	Slider   Shape = iota // Repeats each direction until blocked
	Leaper                // Single fixed jump per offset
	Compound              // Union of slider and leaper parts
	Special               // Dedicated generator selected by SpecialTag
)

// String returns the string representation of a shape.
func (s Shape) String() string {
	names := []string{"slider", "leaper", "compound", "special"}
	if int(s) >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// SpecialTag selects a dedicated generator for Special descriptors.
type SpecialTag int

const (
	NoSpecial SpecialTag = iota
	PawnTag
	LeaderStepTag
	KnightJumpTag
)

// String returns the tag name used in catalog files.
func (t SpecialTag) String() string {
	switch t {
	case PawnTag:
		return "pawn"
	case LeaderStepTag:
		return "hero"
	case KnightJumpTag:
		return "knight"
	}
	return "none"
}

// ParseSpecialTag converts a catalog file tag to a SpecialTag.
// "leader" is accepted as an alias of "hero".
func ParseSpecialTag(s string) (SpecialTag, error) {
	switch s {
	case "pawn":
		return PawnTag, nil
	case "hero", "leader":
		return LeaderStepTag, nil
	case "knight":
		return KnightJumpTag, nil
	}
	return NoSpecial, fmt.Errorf("unknown special %q: %w", s, errors.ErrInvalidCatalog)
}

// Descriptor describes how a piece kind moves.
type Descriptor struct {
	Shape   Shape
	Offsets []chess.Offset // Directions for sliders, jumps for leapers
	Parts   []Descriptor   // Compound parts, each a slider or leaper
	Special SpecialTag
}

// NewSlider creates a slider descriptor.
func NewSlider(dirs ...chess.Offset) Descriptor {
	return Descriptor{Shape: Slider, Offsets: dirs}
}

// NewLeaper creates a leaper descriptor.
func NewLeaper(steps ...chess.Offset) Descriptor {
	return Descriptor{Shape: Leaper, Offsets: steps}
}

// NewCompound creates a compound descriptor from slider and leaper parts.
func NewCompound(parts ...Descriptor) Descriptor {
	return Descriptor{Shape: Compound, Parts: parts}
}

// NewSpecial creates a descriptor handled by a dedicated generator.
func NewSpecial(tag SpecialTag) Descriptor {
	return Descriptor{Shape: Special, Special: tag}
}

// Validate checks the structural rules of a descriptor.
func (d Descriptor) Validate() error {
	switch d.Shape {
	case Slider, Leaper:
		if len(d.Offsets) == 0 {
			return fmt.Errorf("%s without offsets: %w", d.Shape, errors.ErrInvalidCatalog)
		}
		for _, o := range d.Offsets {
			if o.IsZero() {
				return fmt.Errorf("%s with zero offset: %w", d.Shape, errors.ErrInvalidCatalog)
			}
		}
	case Compound:
		if len(d.Parts) == 0 {
			return fmt.Errorf("compound without parts: %w", errors.ErrInvalidCatalog)
		}
		for i, part := range d.Parts {
			if part.Shape != Slider && part.Shape != Leaper {
				return fmt.Errorf("compound part %d is a %s: %w", i, part.Shape, errors.ErrInvalidCatalog)
			}
			if err := part.Validate(); err != nil {
				return errors.Wrapf(err, "compound part %d", i)
			}
		}
	case Special:
		if d.Special == NoSpecial {
			return fmt.Errorf("special without tag: %w", errors.ErrInvalidCatalog)
		}
	default:
		return fmt.Errorf("unknown shape %d: %w", d.Shape, errors.ErrInvalidCatalog)
	}
	return nil
}

// clone returns a deep copy sharing no slices with d.
func (d Descriptor) clone() Descriptor {
	out := Descriptor{Shape: d.Shape, Special: d.Special}
	if d.Offsets != nil {
		out.Offsets = append([]chess.Offset(nil), d.Offsets...)
	}
	if d.Parts != nil {
		out.Parts = make([]Descriptor, len(d.Parts))
		for i, part := range d.Parts {
			out.Parts[i] = part.clone()
		}
	}
	return out
}

// SliderDirections returns the number of slider directions the descriptor
// carries, counting compound parts.
func (d Descriptor) SliderDirections() int {
	switch d.Shape {
	case Slider:
		return len(d.Offsets)
	case Compound:
		n := 0
		for _, part := range d.Parts {
			n += part.SliderDirections()
		}
		return n
	}
	return 0
}

// Orthogonal returns the four rook directions.
func Orthogonal() []chess.Offset {
	return []chess.Offset{{DX: 1, DY: 0}, {DX: -1, DY: 0}, {DX: 0, DY: 1}, {DX: 0, DY: -1}}
}

// Diagonal returns the four bishop directions.
func Diagonal() []chess.Offset {
	return []chess.Offset{{DX: 1, DY: 1}, {DX: 1, DY: -1}, {DX: -1, DY: 1}, {DX: -1, DY: -1}}
}

// AllEight returns the orthogonal directions followed by the diagonal ones.
func AllEight() []chess.Offset {
	return append(Orthogonal(), Diagonal()...)
}

// KnightJump returns the eight 1-by-2 jumps.
func KnightJump() []chess.Offset {
	return []chess.Offset{
		{DX: 1, DY: 2}, {DX: 2, DY: 1}, {DX: -1, DY: 2}, {DX: -2, DY: 1},
		{DX: 1, DY: -2}, {DX: 2, DY: -1}, {DX: -1, DY: -2}, {DX: -2, DY: -1},
	}
}

// OrthogonalTwo returns the four two-cell orthogonal jumps.
func OrthogonalTwo() []chess.Offset {
	return []chess.Offset{{DX: 2, DY: 0}, {DX: -2, DY: 0}, {DX: 0, DY: 2}, {DX: 0, DY: -2}}
}
