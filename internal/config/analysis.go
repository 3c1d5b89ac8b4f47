package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 6

// AnalysisConfig holds settings for batch position analysis.
type AnalysisConfig struct {
	// PerftDepth counts leaf nodes to this depth; 0 disables perft
	PerftDepth int

	// Workers is the number of analysis goroutines; 0 means one per CPU
	Workers int

	// ListMoves includes every legal move in the report
	ListMoves bool

	// StopOnError ends the run at the first unreadable position
	StopOnError bool

	// SkipDuplicates reports a position only the first time it is seen
	SkipDuplicates bool

	// ExactDuplicates also requires the same turn counter for a repeat
	ExactDuplicates bool

	// DuplicateCapacity bounds the positions remembered; 0 is unlimited
	DuplicateCapacity int
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
// All fields use Go zero values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.PerftDepth < 0 || a.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d out of range 0..%d: %w",
			a.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if a.Workers < 0 {
		return fmt.Errorf("negative worker count %d: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if a.DuplicateCapacity < 0 {
		return fmt.Errorf("negative duplicate capacity %d: %w",
			a.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
