package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, p := range board.AllPieces() {
		// Kings don't count for material
		if p.Kind == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if p.Kind == chess.Pawn || p.Kind == chess.Rook || p.Kind == chess.Queen {
			return false
		}

		if p.Colour == chess.White {
			whitePieces = append(whitePieces, p.Kind)
			if p.Kind == chess.Bishop {
				whiteBishopOnLight = p.Square.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, p.Kind)
			if p.Kind == chess.Bishop {
				blackBishopOnLight = p.Square.IsLight()
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return isMinorPiece(blackPieces[0])
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return isMinorPiece(whitePieces[0])
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}

func isMinorPiece(kind chess.Kind) bool {
	return kind == chess.Bishop || kind == chess.Knight
}

// MaterialCount returns the number of pieces of each kind colour has on the
// board, indexed by Kind.
func MaterialCount(board *chess.Board, colour chess.Colour) [chess.NumKinds]int {
	var counts [chess.NumKinds]int
	for _, p := range board.Pieces(colour) {
		counts[p.Kind]++
	}
	return counts
}

// OnlyKings reports whether the two kings are the only pieces left.
func OnlyKings(board *chess.Board) bool {
	all := board.AllPieces()
	return len(all) == 2 && all[0].Kind == chess.King && all[1].Kind == chess.King
}
