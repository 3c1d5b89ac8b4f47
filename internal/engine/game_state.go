package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate returns true if colour is in check and has no legal moves.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check but has no legal moves.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
