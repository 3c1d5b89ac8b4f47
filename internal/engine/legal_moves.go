package engine

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// LegalMoves returns the legal destinations of the piece with the given id,
// sorted by rank then file. A captured or unknown piece has none.
//
// Candidates are filtered for king safety only when it can matter: the side
// is in check, the piece is pinned, or an en passant capture is among the
// candidates (it empties two squares of one rank, which the pin test cannot
// see).
func LegalMoves(board *chess.Board, id chess.PieceID) []chess.Square {
	p := board.Piece(id)
	if p.IsEmpty() || p.Captured {
		return nil
	}

	candidates := CandidateDestinations(board, p)
	if len(candidates) == 0 {
		return nil
	}

	if needsSafetyFilter(board, p, candidates) {
		candidates = FilterForKingSafety(board, p, candidates)
	}
	slices.SortFunc(candidates, chess.Square.Compare)
	return candidates
}

func needsSafetyFilter(board *chess.Board, p chess.Piece, candidates []chess.Square) bool {
	if IsInCheck(board, p.Colour) || IsPinned(board, p) {
		return true
	}
	return slices.ContainsFunc(candidates, func(sq chess.Square) bool {
		return isEnPassantCapture(board, p, sq)
	})
}

// FilterForKingSafety keeps the candidates after which p's own king is not
// attacked. Each candidate is tried as a tentative move: the board is saved,
// the move committed without notifying the observer, the king tested, and
// the board restored. The board is unchanged on return.
func FilterForKingSafety(board *chess.Board, p chess.Piece, candidates []chess.Square) []chess.Square {
	safe := make([]chess.Square, 0, len(candidates))
	for _, to := range candidates {
		if !leavesKingAttacked(board, p, to) {
			safe = append(safe, to)
		}
	}
	return safe
}

// leavesKingAttacked plays p to to tentatively and reports whether p's king
// is then attacked.
func leavesKingAttacked(board *chess.Board, p chess.Piece, to chess.Square) bool {
	state := board.SaveState()
	defer board.RestoreState(state)

	enPassant := isEnPassantCapture(board, p, to)
	board.CommitMove(p.Square, to, false)
	if enPassant {
		victim := board.Occupant(enPassantVictim(p.Square, to))
		board.RemoveFromRosters(victim.ID)
	}
	return IsInCheck(board, p.Colour)
}

// IsPinned reports whether removing p from the board would expose its own
// king to attack. Kings are never pinned.
func IsPinned(board *chess.Board, p chess.Piece) bool {
	if p.Kind == chess.King || p.IsEmpty() || p.Captured {
		return false
	}

	state := board.SaveState()
	defer board.RestoreState(state)

	board.RemoveFromRosters(p.ID)
	return IsInCheck(board, p.Colour)
}

// HasLegalMoves checks if the given colour has any legal moves.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, p := range board.Pieces(colour) {
		if len(LegalMoves(board, p.ID)) > 0 {
			return true
		}
	}
	return false
}

// Move is a from-to pair. Promotion is set for moves that require a
// promotion choice.
type Move struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.Kind
}

// String returns the move in coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.Empty {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// AllLegalMoves returns every legal move of colour, promotions expanded to
// one move per choice, sorted by source then destination.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []Move {
	var moves []Move
	for _, p := range board.Pieces(colour) {
		for _, to := range LegalMoves(board, p.ID) {
			if !isPromotionMove(p, to) {
				moves = append(moves, Move{From: p.Square, To: to})
				continue
			}
			for _, kind := range chess.PromotionChoices {
				moves = append(moves, Move{From: p.Square, To: to, Promotion: kind})
			}
		}
	}
	slices.SortFunc(moves, func(a, b Move) int {
		if c := a.From.Compare(b.From); c != 0 {
			return c
		}
		if c := a.To.Compare(b.To); c != 0 {
			return c
		}
		return int(a.Promotion) - int(b.Promotion)
	})
	return moves
}
