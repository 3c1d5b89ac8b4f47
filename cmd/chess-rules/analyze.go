package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// readFENLines returns the non-blank lines of r that are not '#' comments.
func readFENLines(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

// runAnalyze analyzes every FEN line of r on the worker pool and writes one
// report per position, in input order.
func runAnalyze(cfg *config.Config, r io.Reader) error {
	fens, err := readFENLines(r)
	if err != nil {
		return err
	}

	numWorkers := cfg.Analysis.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}
	cfg.Logf(config.Commentary, "analyzing %d positions on %d workers", len(fens), numWorkers)

	analyzer := worker.Analyzer{
		PerftDepth: cfg.Analysis.PerftDepth,
		ListMoves:  cfg.Analysis.ListMoves,
	}
	results := worker.AnalyzeAll(fens, analyzer,
		worker.WithWorkers(numWorkers), worker.WithBufferSize(2*numWorkers),
		worker.WithStopOnError(cfg.Analysis.StopOnError))

	var detector *hashing.DuplicateDetector
	if cfg.Analysis.SkipDuplicates {
		detector = hashing.NewDuplicateDetector(cfg.Analysis.ExactDuplicates, cfg.Analysis.DuplicateCapacity)
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	failed, duplicates := 0, 0
	for _, res := range results {
		if detector != nil && detector.CheckAndAdd(res.Board) {
			duplicates++
			cfg.Logf(config.Commentary, "position %d repeats an earlier position", res.Index+1)
			continue
		}
		if res.Error != nil {
			failed++
			if cfg.Analysis.StopOnError {
				err := errors.Wrapf(res.Error, "position %d", res.Index+1)
				if cerr := w.Close(); cerr != nil {
					return stderrors.Join(err, cerr)
				}
				return err
			}
			cfg.Logf(config.Summary, "%s", describe(res))
		} else {
			cfg.Logf(config.Commentary, "%s", describe(res))
		}
		if err := w.WritePosition(positionFromResult(res)); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	cfg.Logf(config.Summary, "%d positions analyzed, %d unreadable, %d duplicates",
		len(results), failed, duplicates)
	return nil
}

// positionFromResult converts a worker result for the writers.
func positionFromResult(res worker.ProcessResult) output.Position {
	return output.Position{
		Index:     res.Index,
		FEN:       res.FEN,
		Board:     res.Board,
		Status:    res.Status,
		MoveCount: res.MoveCount,
		Moves:     res.Moves,
		Nodes:     res.Nodes,
		Err:       res.Error,
	}
}

// describe returns a one-line summary of a result for the log.
func describe(res worker.ProcessResult) string {
	if res.Error != nil {
		return fmt.Sprintf("position %d: %v", res.Index+1, res.Error)
	}
	return fmt.Sprintf("%d: %s", res.Index+1, output.Summary(positionFromResult(res)))
}
