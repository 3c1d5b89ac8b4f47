package engine

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// SafeGame wraps Game with mutex protection for concurrent access.
//
// Legality checks make and unmake tentative moves on the board, so every
// query that computes legal moves or the status takes the write lock.
type SafeGame struct {
	game *Game
	mu   sync.RWMutex
}

// NewSafeGame creates a thread-safe game in the starting position.
func NewSafeGame(opts ...Option) *SafeGame {
	return &SafeGame{game: NewGame(opts...)}
}

// NewSafeGameFromFEN creates a thread-safe game from a FEN string.
func NewSafeGameFromFEN(fen string, opts ...Option) (*SafeGame, error) {
	g, err := NewGameFromFEN(fen, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeGame{game: g}, nil
}

// LegalDestinations returns the legal destinations of the piece on sq.
func (s *SafeGame) LegalDestinations(sq chess.Square) []chess.Square {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.LegalDestinations(sq)
}

// Select picks the piece on sq and returns its legal destinations.
func (s *SafeGame) Select(sq chess.Square) ([]chess.Square, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Select(sq)
}

// MoveSelected moves the selected piece to to.
func (s *SafeGame) MoveSelected(to chess.Square) (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.MoveSelected(to)
}

// AttemptMove atomically validates and commits a move.
func (s *SafeGame) AttemptMove(from, to chess.Square) (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.AttemptMove(from, to)
}

// SupplyPromotionChoice completes a pending promotion.
func (s *SafeGame) SupplyPromotionChoice(kind chess.Kind) (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.SupplyPromotionChoice(kind)
}

// Status returns the game status for the side to move.
func (s *SafeGame) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Status()
}

// Reset starts the game again from the initial position.
func (s *SafeGame) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Reset()
}

// Board returns a copy of the current board.
func (s *SafeGame) Board() *chess.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Board()
}

// Turn returns the turn counter.
func (s *SafeGame) Turn() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Turn()
}

// Phase returns the state of the turn machine.
func (s *SafeGame) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Phase()
}

// FEN returns the current position as a FEN string.
func (s *SafeGame) FEN() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.FEN()
}
