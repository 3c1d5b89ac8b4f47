package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CandidateDestinations returns the squares the piece could reach by its
// movement geometry alone, before any check or pin filtering. The board is
// not modified. Kings already exclude attacked squares and include castling.
func CandidateDestinations(board *chess.Board, p chess.Piece) []chess.Square {
	if p.IsEmpty() || p.Captured {
		return nil
	}

	switch p.Kind {
	case chess.Rook, chess.Bishop, chess.Queen:
		return slidingDestinations(board, p, slideDirections(p.Kind))
	case chess.Knight:
		return stepDestinations(board, p, knightOffsets)
	case chess.Pawn:
		return pawnDestinations(board, p)
	case chess.King:
		return kingDestinations(board, p)
	}
	return nil
}

// slidingDestinations walks each ray one square at a time, collecting empty
// squares, and stops at the first occupied square, which is included only
// if it holds an enemy. Off-board squares count as occupied.
func slidingDestinations(board *chess.Board, p chess.Piece, dirs [][2]int) []chess.Square {
	var dests []chess.Square
	for _, dir := range dirs {
		sq := p.Square.Offset(dir[0], dir[1])
		for !board.IsOccupied(sq) {
			dests = append(dests, sq)
			sq = sq.Offset(dir[0], dir[1])
		}
		if sq.InBounds() && board.Occupant(sq).IsEnemyOf(p.Colour) {
			dests = append(dests, sq)
		}
	}
	return dests
}

// stepDestinations applies fixed offsets, keeping on-board squares not
// holding a piece of the mover's side.
func stepDestinations(board *chess.Board, p chess.Piece, offsets [][2]int) []chess.Square {
	var dests []chess.Square
	for _, off := range offsets {
		sq := p.Square.Offset(off[0], off[1])
		if sq.InBounds() && !isOwnPiece(board, sq, p.Colour) {
			dests = append(dests, sq)
		}
	}
	return dests
}
