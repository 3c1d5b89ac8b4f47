// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Mode options
	analyzeMode = flag.Bool("analyze", false, "Read FEN lines and report on each position")
	startFEN    = flag.String("fen", "", "Play from this FEN instead of the initial position")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	logFile      = flag.String("l", "", "Log file (default: stderr)")
	outputFormat = flag.String("format", "text", "Output format: text, json, svg")
	svgFile      = flag.String("svg", "", "Also write the final board of a played game as SVG")

	// Board drawing
	squareSize = flag.Int("square", config.DefaultSquareSize, "SVG square size in pixels")
	noCoords   = flag.Bool("nocoords", false, "Don't label files and ranks")
	flipBoard  = flag.Bool("flip", false, "Draw boards from Black's side")
	noLastMove = flag.Bool("nolastmove", false, "Don't highlight the last move in SVG output")

	// Analysis options
	perftDepth  = flag.Int("perft", 0, "Count move tree leaves to this depth (analyze mode)")
	workers     = flag.Int("workers", 0, "Analysis goroutines (0 = one per CPU)")
	listMoves   = flag.Bool("moves", false, "List every legal move (analyze mode)")
	stopOnError = flag.Bool("stoponerror", false, "Stop at the first unreadable position")
	dedup       = flag.Bool("D", false, "Report each distinct position only once")
	dedupExact  = flag.Bool("Dexact", false, "With -D, also require the same move number")
	dedupMax    = flag.Int("Dmax", 0, "With -D, remember at most this many positions (0 = unlimited)")

	// Verbosity
	quiet   = flag.Bool("s", false, "Silent mode: no log output")
	verbose = flag.Bool("v", false, "Log every piece placed, moved and removed")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig builds the configuration from the command-line flags.
func buildConfig() (*config.Config, error) {
	b := config.NewConfigBuilder()
	if err := applyRenderFlags(b); err != nil {
		return nil, err
	}
	applyAnalysisFlags(b)
	applyVerbosityFlags(b)
	return b.Build(), nil
}

// applyRenderFlags configures board and report output.
func applyRenderFlags(b *config.ConfigBuilder) error {
	format, err := config.ParseRenderFormat(*outputFormat)
	if err != nil {
		return err
	}
	b.WithRenderFormat(format).
		WithSquareSize(*squareSize).
		WithCoordinates(!*noCoords).
		WithFlip(*flipBoard).
		WithLastMoveHighlight(!*noLastMove)
	return nil
}

// applyAnalysisFlags configures batch analysis.
func applyAnalysisFlags(b *config.ConfigBuilder) {
	b.WithPerftDepth(*perftDepth).
		WithWorkers(*workers).
		WithMoveList(*listMoves).
		WithStopOnError(*stopOnError).
		WithDuplicateSuppression(*dedup).
		WithDuplicateMatching(*dedupExact, *dedupMax)
}

// applyVerbosityFlags sets the verbosity level. Silent wins over verbose.
func applyVerbosityFlags(b *config.ConfigBuilder) {
	switch {
	case *quiet:
		b.WithVerbosity(config.Silent)
	case *verbose:
		b.WithVerbosity(config.Commentary)
	}
}
