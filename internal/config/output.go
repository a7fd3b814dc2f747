package config

import (
	"fmt"

	"github.com/lgbarn/chessplus-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON output
	Format OutputFormat

	// MaxLineLength wraps move lists in text output
	MaxLineLength uint

	// ShowBoard prints a board diagram before text results
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        Text,
		MaxLineLength: 80,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < 8 {
		return fmt.Errorf("line length %d too short: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
