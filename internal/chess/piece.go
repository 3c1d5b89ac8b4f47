package chess

import "unicode"

// PieceID is the stable identifier of a piece in the board's arena. It is
// also the token the presentation layer keys its display artifacts on.
// The zero value means "no piece".
type PieceID int

// NoPiece is the id stored in empty grid slots.
const NoPiece PieceID = 0

// Piece is the record of one piece. Empty squares are reported as a Piece
// with Kind Empty, Colour NoColour and ID NoPiece.
type Piece struct {
	ID       PieceID
	Kind     Kind
	Colour   Colour
	Square   Square
	Moved    bool // Used by castling and the pawn double step
	Captured bool // Detached from the rosters
}

// IsEmpty reports whether the record stands for an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// IsEnemyOf reports whether p is a piece of the side opposing colour.
func (p Piece) IsEnemyOf(colour Colour) bool {
	return !p.IsEmpty() && p.Colour != colour && colour != NoColour
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// String returns e.g. "White Knight" or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Observer receives piece lifecycle events from permanent board mutations,
// so a presentation layer can create, move and delete display artifacts.
// Tentative moves made while checking legality are never reported.
type Observer interface {
	PiecePlaced(p Piece)
	PieceMoved(p Piece, from Square)
	PieceRemoved(p Piece)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) PiecePlaced(Piece)        {}
func (NopObserver) PieceMoved(Piece, Square) {}
func (NopObserver) PieceRemoved(Piece)       {}
