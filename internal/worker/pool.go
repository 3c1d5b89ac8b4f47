// Package worker provides a worker pool for parallel position analysis.
package worker

import (
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// WorkItem is one position to analyze.
type WorkItem struct {
	FEN   string
	Index int // Input line, for restoring order
}

// ProcessResult is the analysis of one position.
type ProcessResult struct {
	Index     int
	FEN       string
	Board     *chess.Board // Nil if the FEN did not parse
	Status    engine.Status
	MoveCount int           // Legal moves, promotions counted per choice
	Moves     []engine.Move // Listed only when requested
	Nodes     uint64        // Perft count, when requested
	Error     error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel position analysis.
type Pool struct {
	numWorkers  int
	bufferSize  int
	stopOnError bool
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithStopOnError stops the pool at the first result carrying an error.
// Items queued behind it are drained unprocessed; items already taken by
// other workers still complete.
func WithStopOnError(stop bool) PoolOption {
	return func(p *Pool) {
		p.stopOnError = stop
	}
}

// NewPool creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		res := p.processFunc(item)
		if res.Error != nil && p.stopOnError {
			p.Stop()
		}
		p.resultChan <- res
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Collect drains the result channel and returns the results in input order.
func (p *Pool) Collect() []ProcessResult {
	var results []ProcessResult
	for r := range p.resultChan {
		results = append(results, r)
	}
	slices.SortFunc(results, func(a, b ProcessResult) int {
		return a.Index - b.Index
	})
	return results
}
