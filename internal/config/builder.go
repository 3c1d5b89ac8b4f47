package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithRenderFormat sets the output format.
func (b *ConfigBuilder) WithRenderFormat(format RenderFormat) *ConfigBuilder {
	b.cfg.Render.Format = format
	return b
}

// WithSquareSize sets the SVG square size.
func (b *ConfigBuilder) WithSquareSize(size int) *ConfigBuilder {
	b.cfg.Render.SquareSize = size
	return b
}

// WithCoordinates controls file and rank labels.
func (b *ConfigBuilder) WithCoordinates(show bool) *ConfigBuilder {
	b.cfg.Render.ShowCoordinates = show
	return b
}

// WithFlip draws boards from Black's side.
func (b *ConfigBuilder) WithFlip(flip bool) *ConfigBuilder {
	b.cfg.Render.Flip = flip
	return b
}

// WithLastMoveHighlight marks the squares of the last move in SVG output.
func (b *ConfigBuilder) WithLastMoveHighlight(show bool) *ConfigBuilder {
	b.cfg.Render.HighlightLastMove = show
	return b
}

// WithPerftDepth sets the perft depth for analysis.
func (b *ConfigBuilder) WithPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Analysis.PerftDepth = depth
	return b
}

// WithWorkers sets the number of analysis workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Analysis.Workers = n
	return b
}

// WithMoveList includes legal moves in analysis reports.
func (b *ConfigBuilder) WithMoveList(enabled bool) *ConfigBuilder {
	b.cfg.Analysis.ListMoves = enabled
	return b
}

// WithStopOnError ends analysis at the first unreadable position.
func (b *ConfigBuilder) WithStopOnError(stop bool) *ConfigBuilder {
	b.cfg.Analysis.StopOnError = stop
	return b
}

// WithDuplicateSuppression reports each position once.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Analysis.SkipDuplicates = enabled
	return b
}

// WithDuplicateMatching sets how repeats are recognised: exact also compares
// the turn counter, and capacity bounds the positions remembered.
func (b *ConfigBuilder) WithDuplicateMatching(exact bool, capacity int) *ConfigBuilder {
	b.cfg.Analysis.ExactDuplicates = exact
	b.cfg.Analysis.DuplicateCapacity = capacity
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
