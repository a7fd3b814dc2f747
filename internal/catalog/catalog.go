package catalog

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/chessplus-go/internal/chess"
	"github.com/lgbarn/chessplus-go/internal/errors"
)

// Catalog maps piece kinds to movement descriptors. It is read-only once
// constructed and safe for concurrent use.
type Catalog struct {
	entries   map[chess.Kind]Descriptor
	promotion chess.Kind
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithPromotion sets the kind pawns promote to.
func WithPromotion(kind chess.Kind) Option {
	return func(c *Catalog) {
		c.promotion = kind
	}
}

// New creates a catalog from the given entries. Kinds must be a single
// uppercase ASCII letter, the form the position notation can carry, and
// every descriptor is validated. Descriptors are copied. When no promotion
// kind is given, the kind with the most slider directions is used.
func New(entries map[chess.Kind]Descriptor, opts ...Option) (*Catalog, error) {
	c := &Catalog{entries: make(map[chess.Kind]Descriptor, len(entries))}
	for kind, desc := range entries {
		if !ValidKind(kind) {
			return nil, fmt.Errorf("kind %q is not a single uppercase letter: %w", string(kind), errors.ErrInvalidCatalog)
		}
		if err := desc.Validate(); err != nil {
			return nil, errors.Wrapf(err, "kind %q", string(kind))
		}
		c.entries[kind] = desc.clone()
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.promotion == chess.NoKind {
		c.promotion = strongestSlider(c.entries)
	} else if _, ok := c.entries[c.promotion]; !ok {
		return nil, fmt.Errorf("promotion kind %q not in catalog: %w", string(c.promotion), errors.ErrInvalidCatalog)
	}
	return c, nil
}

// ValidKind reports whether kind is a single uppercase ASCII letter.
func ValidKind(kind chess.Kind) bool {
	return len(kind) == 1 && kind[0] >= 'A' && kind[0] <= 'Z'
}

// strongestSlider returns the kind with the most slider directions, ties
// broken by kind name. NoKind when no entry slides.
func strongestSlider(entries map[chess.Kind]Descriptor) chess.Kind {
	best := chess.NoKind
	bestDirs := 0
	for _, kind := range sortedKinds(entries) {
		if n := entries[kind].SliderDirections(); n > bestDirs {
			best, bestDirs = kind, n
		}
	}
	return best
}

func sortedKinds(entries map[chess.Kind]Descriptor) []chess.Kind {
	kinds := maps.Keys(entries)
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Standard returns the catalog of the standard setup.
func Standard() *Catalog {
	return standard
}

var standard = mustNew(map[chess.Kind]Descriptor{
	chess.Pawn:   NewSpecial(PawnTag),
	chess.Rook:   NewSlider(Orthogonal()...),
	chess.Bishop: NewSlider(Diagonal()...),
	chess.Queen:  NewSlider(AllEight()...),
	chess.Knight: NewSpecial(KnightJumpTag),
	chess.Hero:   NewSpecial(LeaderStepTag),
	chess.Wizard: NewCompound(NewSlider(Diagonal()...), NewLeaper(KnightJump()...)),
	chess.Leaper: NewLeaper(OrthogonalTwo()...),
}, WithPromotion(chess.Queen))

func mustNew(entries map[chess.Kind]Descriptor, opts ...Option) *Catalog {
	c, err := New(entries, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns a copy of the descriptor for kind, or ErrUnknownPieceKind.
func (c *Catalog) Lookup(kind chess.Kind) (Descriptor, error) {
	desc, ok := c.entries[kind]
	if !ok {
		return Descriptor{}, fmt.Errorf("kind %q: %w", string(kind), errors.ErrUnknownPieceKind)
	}
	return desc.clone(), nil
}

// Has reports whether kind is registered.
func (c *Catalog) Has(kind chess.Kind) bool {
	_, ok := c.entries[kind]
	return ok
}

// IsLeader reports whether kind is a leader piece, i.e. its descriptor
// carries the leader-step tag.
func (c *Catalog) IsLeader(kind chess.Kind) bool {
	desc, ok := c.entries[kind]
	return ok && desc.Shape == Special && desc.Special == LeaderStepTag
}

// IsPawn reports whether kind uses the pawn generator.
func (c *Catalog) IsPawn(kind chess.Kind) bool {
	desc, ok := c.entries[kind]
	return ok && desc.Shape == Special && desc.Special == PawnTag
}

// PromotionKind returns the kind pawns promote to.
func (c *Catalog) PromotionKind() chess.Kind {
	return c.promotion
}

// Kinds returns the registered kinds in sorted order.
func (c *Catalog) Kinds() []chess.Kind {
	return sortedKinds(c.entries)
}

// Len returns the number of registered kinds.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// With returns a copy of the catalog with kind registered (or replaced).
// The receiver is not modified.
func (c *Catalog) With(kind chess.Kind, desc Descriptor) (*Catalog, error) {
	entries := maps.Clone(c.entries)
	entries[kind] = desc
	return New(entries, WithPromotion(c.promotion))
}
