package hashing

import (
	"math/rand/v2"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const numSquares = chess.BoardSize * chess.BoardSize

// Zobrist keys. They are fixed for the life of the process; hashes are not
// meant to be stored.
var (
	pieceKeys    [2][chess.NumKinds][numSquares]uint64
	blackToMove  uint64
	castlingKeys [4]uint64 // K, Q, k, q
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewPCG(0x9e3779b97f4a7c15, 0xc2b2ae3d27d4eb4f))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = rng.Uint64()
			}
		}
	}
	blackToMove = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = rng.Uint64()
	}
}

func squareIndex(sq chess.Square) int {
	return sq.Rank*chess.BoardSize + sq.File
}

// GenerateZobristHash hashes everything that makes two positions the same
// for the rules: piece placement, the side to move, castling availability
// and a capturable en passant target. Piece ids and the turn number are
// ignored.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for _, p := range board.AllPieces() {
		hash ^= pieceKeys[p.Colour.Index()][p.Kind][squareIndex(p.Square)]
	}
	if board.SideToMove() == chess.Black {
		hash ^= blackToMove
	}
	for _, c := range engine.CastlingAvailability(board) {
		if i := strings.IndexRune("KQkq", c); i >= 0 {
			hash ^= castlingKeys[i]
		}
	}
	if board.EnPassantValid() {
		hash ^= epFileKeys[board.EPTarget.File]
	}
	return hash
}

// WeakHash is a cheap order-independent hash of the piece placement alone.
func WeakHash(board *chess.Board) uint64 {
	var hash uint64
	for _, p := range board.AllPieces() {
		v := uint64(p.Kind)*numSquares + uint64(squareIndex(p.Square))
		if p.Colour == chess.Black {
			v *= 31
		}
		hash += v * v
	}
	return hash
}
