// Package config provides configuration for chessplus.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/lgbarn/chessplus-go/internal/errors"
)

// OutputFormat selects how results are printed.
type OutputFormat int

const (
	Text OutputFormat = iota // Plain text
	JSON                     // Indented JSON
)

// String returns the format name.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// Config holds all program configuration.
type Config struct {
	// LogLevel is an apex/log level name (debug, info, warn, error, fatal).
	LogLevel string

	Engine    *EngineConfig
	Output    *OutputConfig
	Duplicate *DuplicateConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		LogLevel:   "info",
		Engine:     NewEngineConfig(),
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Level returns the parsed log level.
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	return level, nil
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Duplicate.Validate()
}
