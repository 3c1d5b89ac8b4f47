// Package config provides configuration for the chess-rules command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels for the log stream.
const (
	Silent     = 0 // Nothing but errors
	Summary    = 1 // One line per game or position
	Commentary = 2 // Every piece event as it happens
)

// Config holds the settings of one chess-rules run.
type Config struct {
	// Verbosity controls how much is written to LogFile
	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// Grouped settings
	Render   *RenderConfig
	Analysis *AnalysisConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Render:     NewRenderConfig(),
		Analysis:   NewAnalysisConfig(),
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a log line if the configured verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...any) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
	if len(format) == 0 || format[len(format)-1] != '\n' {
		fmt.Fprintln(c.LogFile)
	}
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range %d..%d: %w",
			c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output stream: %w", errors.ErrInvalidConfig)
	}
	if err := c.Render.Validate(); err != nil {
		return err
	}
	return c.Analysis.Validate()
}
