package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnDestinations returns the pawn's pushes and captures.
func pawnDestinations(board *chess.Board, p chess.Piece) []chess.Square {
	var dests []chess.Square
	dir := chess.PawnDirection(p.Colour)

	// One square ahead, then two on the first move
	one := p.Square.Offset(dir, 0)
	if !board.IsOccupied(one) {
		dests = append(dests, one)
		two := one.Offset(dir, 0)
		if !p.Moved && !board.IsOccupied(two) {
			dests = append(dests, two)
		}
	}

	// Diagonal captures and en passant
	for _, df := range []int{-1, 1} {
		sq := p.Square.Offset(dir, df)
		if !sq.InBounds() {
			continue
		}
		if board.Occupant(sq).IsEnemyOf(p.Colour) || isEnPassantCapture(board, p, sq) {
			dests = append(dests, sq)
		}
	}
	return dests
}

// pawnAttacks reports whether the pawn attacks target: one step forward
// diagonally, whatever stands there.
func pawnAttacks(p chess.Piece, target chess.Square) bool {
	return target.Rank == p.Square.Rank+chess.PawnDirection(p.Colour) &&
		abs(target.File-p.Square.File) == 1
}

// isEnPassantCapture reports whether moving pawn p to to is an en passant
// capture: to is the recorded target, this is the turn right after the
// double step, and an enemy pawn stands behind the target.
func isEnPassantCapture(board *chess.Board, p chess.Piece, to chess.Square) bool {
	if p.Kind != chess.Pawn || !board.EnPassantValid() || to != board.EPTarget {
		return false
	}
	if !pawnAttacks(p, to) || board.IsOccupied(to) {
		return false
	}
	victim := board.Occupant(enPassantVictim(p.Square, to))
	return victim.Kind == chess.Pawn && victim.IsEnemyOf(p.Colour)
}

// enPassantVictim returns the square of the pawn captured en passant by a
// pawn moving from from to to.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.Sq(from.Rank, to.File)
}

// recordDoubleStep records the skipped square as the en passant target when
// a pawn's two-square advance lands beside an enemy pawn.
func recordDoubleStep(board *chess.Board, p chess.Piece, from, to chess.Square) {
	for _, df := range []int{-1, 1} {
		side := to.Offset(0, df)
		if !side.InBounds() {
			continue
		}
		neighbour := board.Occupant(side)
		if neighbour.Kind == chess.Pawn && neighbour.IsEnemyOf(p.Colour) {
			board.SetEnPassant(from.Offset(chess.PawnDirection(p.Colour), 0), board.Turn)
			return
		}
	}
}

// isPromotionMove reports whether pawn p arriving on to must promote.
func isPromotionMove(p chess.Piece, to chess.Square) bool {
	return p.Kind == chess.Pawn && to.Rank == chess.PromotionRank(p.Colour)
}
