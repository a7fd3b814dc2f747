package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lgbarn/chessplus-go/internal/errors"
)

// Environment variables read by LoadEnv.
const (
	EnvCatalog  = "CHESSPLUS_CATALOG"
	EnvLogLevel = "CHESSPLUS_LOG_LEVEL"
	EnvWorkers  = "CHESSPLUS_WORKERS"
	EnvJSON     = "CHESSPLUS_JSON"
)

// LoadEnv applies settings from the given dotenv files and the process
// environment. Process variables take precedence over file values. Missing
// files are ignored.
func (c *Config) LoadEnv(files ...string) error {
	vars := map[string]string{}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		fileVars, err := godotenv.Read(f)
		if err != nil {
			return fmt.Errorf("reading %s: %w", f, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}

	return c.ApplyEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	})
}

// ApplyEnv applies settings from lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvCatalog); ok && v != "" {
		c.Engine.CatalogPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, errors.ErrInvalidConfig)
		}
		c.Engine.Workers = n
	}
	if v, ok := lookup(EnvJSON); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvJSON, v, errors.ErrInvalidConfig)
		}
		if on {
			c.Output.Format = JSON
		} else {
			c.Output.Format = Text
		}
	}
	return nil
}
