package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// MoveEffects describes what a committed move did besides relocating the
// moving piece.
type MoveEffects struct {
	Piece     chess.Piece   // The moving piece before the move
	To        chess.Square  // Destination of the moving piece
	Captured  chess.PieceID // The captured piece, or NoPiece
	Castled   bool
	EnPassant bool
	Promotion bool // The pawn reached the last rank and awaits a choice

	// PromotedTo is the kind chosen for a promoted pawn, once supplied.
	PromotedTo chess.Kind
}

// ApplyMove commits a legal move permanently, with every side effect: the
// captured piece, the castling rook, the pawn taken en passant, the en
// passant record for a double step and the moved flags. Legality is the
// caller's concern. The turn is not advanced, and a promoting pawn is left
// on the last rank for Promote.
func ApplyMove(board *chess.Board, from, to chess.Square) MoveEffects {
	p := board.Occupant(from)
	fx := MoveEffects{Piece: p, To: to}

	if isEnPassantCapture(board, p, to) {
		victim := board.Occupant(enPassantVictim(from, to))
		board.RemovePiece(victim.ID)
		fx.Captured = victim.ID
		fx.EnPassant = true
	}

	if captured := board.CommitMove(from, to, true); captured != chess.NoPiece {
		fx.Captured = captured
	}
	board.MarkMoved(p.ID)

	if isCastlingMove(p, from, to) {
		rookFrom, rookTo := castlingRookSquares(from, to)
		rook := board.Occupant(rookFrom)
		board.CommitMove(rookFrom, rookTo, true)
		board.MarkMoved(rook.ID)
		fx.Castled = true
	}

	if p.Kind == chess.Pawn && abs(to.Rank-from.Rank) == 2 {
		recordDoubleStep(board, p, from, to)
	}

	fx.Promotion = isPromotionMove(p, to)
	return fx
}

// Promote replaces the pawn on sq with a new piece of the chosen kind and
// returns the new piece's id. The pawn's display artifact is removed and one
// for the new piece created.
func Promote(board *chess.Board, sq chess.Square, kind chess.Kind) chess.PieceID {
	pawn := board.Occupant(sq)
	board.RemovePiece(pawn.ID)
	id := board.Place(kind, pawn.Colour, sq)
	board.MarkMoved(id)
	return id
}
