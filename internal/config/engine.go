package config

import (
	"fmt"

	"github.com/lgbarn/chessplus-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from users.
const MaxPerftDepth = 8

// EngineConfig holds settings for the rules engine and batch analysis.
type EngineConfig struct {
	// CatalogPath is a YAML piece catalog; empty means the standard catalog.
	CatalogPath string

	// Workers is the number of goroutines used for batch analysis.
	Workers int

	// PerftDepth is the depth for perft counting; 0 disables it.
	PerftDepth int
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		Workers: 1,
	}
}

// Validate checks that the engine configuration is valid.
func (e *EngineConfig) Validate() error {
	if e.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", e.Workers, errors.ErrInvalidConfig)
	}
	if e.PerftDepth < 0 || e.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", e.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	return nil
}
