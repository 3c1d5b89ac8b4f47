package testutil

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Squares converts square names to squares. It panics on a bad name, which
// is a mistake in the test itself.
func Squares(names ...string) []chess.Square {
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		squares = append(squares, chess.MustParseSquare(name))
	}
	return squares
}

// BoardWith builds a board holding the given pieces, White to move on turn
// 1. Each spec is a FEN piece letter followed by a square: "Ke1" is the
// White king on e1, "pd7" a Black pawn on d7.
func BoardWith(specs ...string) *chess.Board {
	board := chess.NewBoard()
	PlacePieces(board, specs...)
	return board
}

// PlacePieces places pieces described as in BoardWith and returns their ids
// in the same order.
func PlacePieces(board *chess.Board, specs ...string) []chess.PieceID {
	ids := make([]chess.PieceID, 0, len(specs))
	for _, spec := range specs {
		if len(spec) != 3 {
			panic(fmt.Sprintf("bad piece spec %q", spec))
		}
		kind := chess.KindFromLetter(spec[0])
		if kind == chess.Empty {
			panic(fmt.Sprintf("bad piece letter in %q", spec))
		}
		colour := chess.White
		if unicode.IsLower(rune(spec[0])) {
			colour = chess.Black
		}
		ids = append(ids, board.Place(kind, colour, chess.MustParseSquare(spec[1:])))
	}
	return ids
}
