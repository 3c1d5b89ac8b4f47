// Package chess provides core chess types and the board state.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	NoColour Colour = iota // Empty squares belong to no side
	White
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// Index returns 0 for White and 1 for Black, for per-side arrays.
func (c Colour) Index() int {
	if c == Black {
		return 1
	}
	return 0
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter in either case to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return Empty
	}
}

// IsSlider reports whether the kind moves along rays.
func (k Kind) IsSlider() bool {
	return k == Bishop || k == Rook || k == Queen
}

// IsPromotionChoice reports whether a pawn may promote to the kind.
func (k Kind) IsPromotionChoice() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

// PromotionChoices lists the kinds a pawn may promote to.
var PromotionChoices = []Kind{Queen, Rook, Bishop, Knight}

// Constants for board dimensions.
const (
	BoardSize = 8
	LastIndex = BoardSize - 1
)

// PawnDirection returns +1 for White, -1 for Black (rank delta of a pawn step).
func PawnDirection(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of the colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return LastIndex
}

// PromotionRank returns the rank a pawn of the colour promotes on.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// PawnRank returns the rank the colour's pawns start on.
func PawnRank(colour Colour) int {
	return HomeRank(colour) + PawnDirection(colour)
}

// SideToMove derives the side to move from the turn counter: odd turns
// belong to White, even turns to Black.
func SideToMove(turn int) Colour {
	if turn%2 == 1 {
		return White
	}
	return Black
}
