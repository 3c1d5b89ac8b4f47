package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A position without a king of that colour is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.King(colour)
	if king.IsEmpty() {
		return false
	}
	return UnderAttack(board, king.Square, colour)
}

// UnderAttack returns true if any piece of colour's opponent can attack sq.
func UnderAttack(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	for _, attacker := range board.Pieces(colour.Opposite()) {
		if CanAttack(board, attacker, sq) {
			return true
		}
	}
	return false
}

// CanAttack reports whether p attacks target.
//
// This differs from "can move to" for pawns, which attack their forward
// diagonals whatever stands there, and for kings, which attack their
// neighbours without asking whether those squares are themselves attacked.
// Squares held by p's own side count as attacked, so a defended piece is
// attacked.
func CanAttack(board *chess.Board, p chess.Piece, target chess.Square) bool {
	if p.IsEmpty() || p.Captured || p.Square == target {
		return false
	}

	rankDiff := abs(target.Rank - p.Square.Rank)
	fileDiff := abs(target.File - p.Square.File)

	switch p.Kind {
	case chess.Pawn:
		return pawnAttacks(p, target)

	case chess.Knight:
		return (rankDiff == 1 && fileDiff == 2) || (rankDiff == 2 && fileDiff == 1)

	case chess.King:
		return rankDiff <= 1 && fileDiff <= 1

	case chess.Rook, chess.Bishop, chess.Queen:
		return isAligned(p.Kind, p.Square, target) && isPathClear(board, p.Square, target)
	}

	return false
}

// Attackers returns the pieces of colour's opponent attacking sq.
func Attackers(board *chess.Board, sq chess.Square, colour chess.Colour) []chess.Piece {
	var attackers []chess.Piece
	for _, attacker := range board.Pieces(colour.Opposite()) {
		if CanAttack(board, attacker, sq) {
			attackers = append(attackers, attacker)
		}
	}
	return attackers
}
