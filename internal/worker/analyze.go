package worker

import "github.com/lgbarn/chess-rules-go/internal/engine"

// Analyzer computes the status, the legal moves and optionally the perft
// count of a position.
type Analyzer struct {
	PerftDepth int
	ListMoves  bool
}

// Process analyzes one work item. A FEN that does not parse yields a result
// with only Index, FEN and Error set.
func (a Analyzer) Process(item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index, FEN: item.FEN}

	g, err := engine.NewGameFromFEN(item.FEN)
	if err != nil {
		result.Error = err
		return result
	}

	result.Board = g.Board()
	result.Status = g.Status()
	moves := engine.AllLegalMoves(result.Board, g.SideToMove())
	result.MoveCount = len(moves)
	if a.ListMoves {
		result.Moves = moves
	}
	if a.PerftDepth > 0 {
		result.Nodes = g.Perft(a.PerftDepth)
	}
	return result
}

// AnalyzeAll analyzes fens on a pool of workers and returns the results in
// input order. A pool stopped early returns every result before the first
// error and may omit later ones.
func AnalyzeAll(fens []string, a Analyzer, opts ...PoolOption) []ProcessResult {
	pool := NewPool(a.Process, opts...)
	pool.Start()

	go func() {
		for i, fen := range fens {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{FEN: fen, Index: i})
		}
		pool.Close()
	}()

	return pool.Collect()
}
