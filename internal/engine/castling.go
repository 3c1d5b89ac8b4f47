package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Rook file offsets from the king: kingside, queenside.
var castlingRookOffsets = []int{3, -4}

// kingDestinations returns the king's adjacent squares that are on the
// board, not held by its own side and not attacked, plus castling squares.
func kingDestinations(board *chess.Board, king chess.Piece) []chess.Square {
	var dests []chess.Square
	for _, off := range kingOffsets {
		sq := king.Square.Offset(off[0], off[1])
		if !sq.InBounds() || isOwnPiece(board, sq, king.Colour) {
			continue
		}
		if UnderAttack(board, sq, king.Colour) {
			continue
		}
		dests = append(dests, sq)
	}
	return append(dests, castlingDestinations(board, king)...)
}

// castlingDestinations returns the king's castling squares. Castling
// requires an unmoved king that is not attacked, and an unmoved rook of the
// same side on the corner that is not attacked, with every square strictly
// between them empty and not attacked.
func castlingDestinations(board *chess.Board, king chess.Piece) []chess.Square {
	if king.Moved || UnderAttack(board, king.Square, king.Colour) {
		return nil
	}

	var dests []chess.Square
	for _, offset := range castlingRookOffsets {
		rookSq := king.Square.Offset(0, offset)
		if !rookSq.InBounds() {
			continue
		}
		rook := board.Occupant(rookSq)
		if rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.Moved {
			continue
		}
		if UnderAttack(board, rookSq, king.Colour) {
			continue
		}
		if !isCastlingPathSafe(board, king, rookSq) {
			continue
		}
		dests = append(dests, king.Square.Offset(0, 2*sign(offset)))
	}
	return dests
}

// isCastlingPathSafe checks the squares strictly between king and rook.
func isCastlingPathSafe(board *chess.Board, king chess.Piece, rookSq chess.Square) bool {
	step := sign(rookSq.File - king.Square.File)
	for sq := king.Square.Offset(0, step); sq != rookSq; sq = sq.Offset(0, step) {
		if board.IsOccupied(sq) || UnderAttack(board, sq, king.Colour) {
			return false
		}
	}
	return true
}

// isCastlingMove reports whether a king move spans two files.
func isCastlingMove(p chess.Piece, from, to chess.Square) bool {
	return p.Kind == chess.King && from.Rank == to.Rank && abs(to.File-from.File) == 2
}

// castlingRookSquares returns where the rook starts and lands for a king
// castling from from to to. The rook lands next to the king on the inner
// side.
func castlingRookSquares(from, to chess.Square) (rookFrom, rookTo chess.Square) {
	step := sign(to.File - from.File)
	if step > 0 {
		rookFrom = from.Offset(0, castlingRookOffsets[0])
	} else {
		rookFrom = from.Offset(0, castlingRookOffsets[1])
	}
	return rookFrom, to.Offset(0, -step)
}
