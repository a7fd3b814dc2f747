package config

import (
	"fmt"

	"github.com/lgbarn/chessplus-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress skips positions already seen in the batch
	Suppress bool

	// MaxPositions caps the number of remembered positions; 0 is unlimited
	MaxPositions int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.MaxPositions < 0 {
		return fmt.Errorf("max positions %d is negative: %w", d.MaxPositions, errors.ErrInvalidConfig)
	}
	return nil
}
