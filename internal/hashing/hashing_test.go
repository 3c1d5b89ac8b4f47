package hashing

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error = %v", fen, err)
	}
	return board
}

func TestZobristHashConsistency(t *testing.T) {
	// Identical positions built different ways hash the same
	board1 := chess.NewInitialBoard()
	board2 := mustBoard(t, engine.InitialFEN)

	hash1 := GenerateZobristHash(board1)
	hash2 := GenerateZobristHash(board2)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashIgnoresTurnNumber(t *testing.T) {
	a := mustBoard(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	b := mustBoard(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 40")

	if GenerateZobristHash(a) != GenerateZobristHash(b) {
		t.Error("turn number changed the hash")
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	base := "4k3/8/8/8/8/8/8/4K2R w K - 0 1"
	tests := []struct {
		name string
		fen  string
	}{
		{"piece moved", "4k3/8/8/8/8/8/8/4K1R1 w - - 0 1"},
		{"side to move", "4k3/8/8/8/8/8/8/4K2R b K - 0 1"},
		{"castling right lost", "4k3/8/8/8/8/8/8/4K2R w - - 0 1"},
	}

	baseHash := GenerateZobristHash(mustBoard(t, base))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if GenerateZobristHash(mustBoard(t, tt.fen)) == baseHash {
				t.Errorf("%s produced the same hash as the base position", tt.fen)
			}
		})
	}
}

func TestZobristHashEnPassant(t *testing.T) {
	// Black pawn d4 can take e3 en passant
	withEP := mustBoard(t, "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1")
	without := mustBoard(t, "4k3/8/8/8/3pP3/8/8/4K3 b - - 0 1")

	if GenerateZobristHash(withEP) == GenerateZobristHash(without) {
		t.Error("en passant target did not change the hash")
	}
}

func TestWeakHashConsistency(t *testing.T) {
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()

	if WeakHash(board1) != WeakHash(board2) {
		t.Errorf("Identical boards produced different weak hashes")
	}

	moved := mustBoard(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	if WeakHash(board1) == WeakHash(moved) {
		t.Error("Different placements produced the same weak hash")
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	board := chess.NewInitialBoard()

	// First position should not be a duplicate
	if detector.CheckAndAdd(board) {
		t.Error("First position was marked as duplicate")
	}

	// Same position should be a duplicate
	if !detector.CheckAndAdd(board.Copy()) {
		t.Error("Duplicate position was not detected")
	}

	// Nil board is never a duplicate
	if detector.CheckAndAdd(nil) {
		t.Error("nil board was marked as duplicate")
	}

	if detector.DuplicateCount() != 1 {
		t.Errorf("DuplicateCount() = %d, want 1", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("UniqueCount() = %d, want 1", detector.UniqueCount())
	}

	detector.Reset()
	if detector.DuplicateCount() != 0 || detector.UniqueCount() != 0 {
		t.Error("Reset did not clear the detector")
	}
}

func TestDuplicateDetector_ExactMatch(t *testing.T) {
	early := mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 10")
	late := mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 20")

	loose := NewDuplicateDetector(false, 0)
	loose.CheckAndAdd(early)
	if !loose.CheckAndAdd(late) {
		t.Error("loose matching should ignore the turn counter")
	}

	exact := NewDuplicateDetector(true, 0)
	exact.CheckAndAdd(early)
	if exact.CheckAndAdd(late) {
		t.Error("exact matching should compare the turn counter")
	}
}

func TestDuplicateDetector_Capacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 1)
	first := chess.NewInitialBoard()
	second := mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")

	detector.CheckAndAdd(first)
	if !detector.IsFull() {
		t.Fatal("detector should be full after one position")
	}

	if detector.CheckAndAdd(second) {
		t.Error("new position marked as duplicate")
	}
	if detector.CheckAndAdd(second) {
		t.Error("position seen after the detector filled up should not be recorded")
	}
	if !detector.CheckAndAdd(first) {
		t.Error("recorded position should still be detected")
	}
}
