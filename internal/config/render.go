package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RenderFormat selects how positions are written to the output stream.
type RenderFormat int

const (
	TextBoard  RenderFormat = iota // Eight rows of piece letters
	JSONReport                     // One JSON object per position
	SVGBoard                       // An SVG drawing of the board
)

// String returns the flag name of the format.
func (f RenderFormat) String() string {
	switch f {
	case TextBoard:
		return "text"
	case JSONReport:
		return "json"
	case SVGBoard:
		return "svg"
	default:
		return "unknown"
	}
}

// ParseRenderFormat maps a flag value onto a RenderFormat.
func ParseRenderFormat(s string) (RenderFormat, error) {
	switch s {
	case "text":
		return TextBoard, nil
	case "json":
		return JSONReport, nil
	case "svg":
		return SVGBoard, nil
	}
	return TextBoard, fmt.Errorf("unknown format %q: %w", s, errors.ErrInvalidConfig)
}

// Square size limits for SVG output, in pixels.
const (
	MinSquareSize     = 16
	MaxSquareSize     = 256
	DefaultSquareSize = 48
)

// RenderConfig holds settings related to drawing boards.
type RenderConfig struct {
	// Format selects the board or report writer
	Format RenderFormat

	// SquareSize is the side of one square in SVG output
	SquareSize int

	// ShowCoordinates labels files and ranks
	ShowCoordinates bool

	// Flip draws the board from Black's side
	Flip bool

	// HighlightLastMove shades the origin and destination of the last move
	HighlightLastMove bool
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		Format:            TextBoard,
		SquareSize:        DefaultSquareSize,
		ShowCoordinates:   true,
		HighlightLastMove: true,
	}
}

// Validate checks that the render configuration is valid.
func (r *RenderConfig) Validate() error {
	if r.SquareSize < MinSquareSize || r.SquareSize > MaxSquareSize {
		return fmt.Errorf("square size %d out of range %d..%d: %w",
			r.SquareSize, MinSquareSize, MaxSquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
