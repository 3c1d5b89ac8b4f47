// Package hashing provides position hashing and duplicate detection.
package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// DuplicateDetector tracks seen positions for duplicate position detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]PositionSignature
	// useExactMatch also requires the same turn counter
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity bounds the number of stored signatures; 0 is unlimited
	maxCapacity int
	stored      int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// Turn is the turn counter of the position
	Turn int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint64
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]PositionSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks if a position was seen before and records it.
// Returns true if the position is a duplicate. Once the detector is full,
// new positions are checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board) bool {
	if board == nil {
		return false
	}

	sig := PositionSignature{
		Hash:     GenerateZobristHash(board),
		Turn:     board.Turn,
		WeakHash: WeakHash(board),
	}

	// Check for duplicates
	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.stored++
	return false
}

// signaturesMatch checks if two position signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	return !d.useExactMatch || a.Turn == b.Turn
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
	d.stored = 0
}
