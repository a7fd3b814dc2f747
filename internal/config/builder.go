package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
// The first error from a step is kept and returned by Build.
type ConfigBuilder struct {
	cfg *Config
	err error
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithEnv applies dotenv files and the process environment. Later steps
// override what it sets.
func (b *ConfigBuilder) WithEnv(files ...string) *ConfigBuilder {
	if err := b.cfg.LoadEnv(files...); err != nil && b.err == nil {
		b.err = err
	}
	return b
}

// WithCatalog sets the piece catalog file.
func (b *ConfigBuilder) WithCatalog(path string) *ConfigBuilder {
	b.cfg.Engine.CatalogPath = path
	return b
}

// WithWorkers sets the number of analysis workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Engine.Workers = n
	return b
}

// WithPerftDepth sets the perft depth.
func (b *ConfigBuilder) WithPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Engine.PerftDepth = depth
	return b
}

// WithJSONOutput selects JSON output, or text when disabled.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSON
	} else {
		b.cfg.Output.Format = Text
	}
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithBoard enables board diagrams in text output.
func (b *ConfigBuilder) WithBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithMaxPositions caps the positions remembered for duplicate suppression.
func (b *ConfigBuilder) WithMaxPositions(n int) *ConfigBuilder {
	b.cfg.Duplicate.MaxPositions = n
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.SetOutput(w)
	return b
}
