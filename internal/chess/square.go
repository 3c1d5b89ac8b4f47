package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square is a board coordinate. Rank 0 is White's back rank and file 0 is
// the a-file, so Square{0, 0} is a1 and Square{7, 7} is h8.
type Square struct {
	Rank int
	File int
}

// Sq builds a square from rank and file indices.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// InBounds reports whether both indices lie in 0..7.
func (s Square) InBounds() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Offset returns the square dr ranks and df files away. The result may be
// off the board.
func (s Square) Offset(dr, df int) Square {
	return Square{Rank: s.Rank + dr, File: s.File + df}
}

// IsLight reports whether the square is a light square (h1 is light).
func (s Square) IsLight() bool {
	return (s.Rank+s.File)%2 == 1
}

// String returns the algebraic name of the square ("e4"), or the raw
// indices for an off-board square.
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Rank, s.File)
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare converts an algebraic square name such as "e4" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, &errors.ParseError{
			Err: errors.ErrInvalidSquare, Input: name, Expected: "two characters", Got: fmt.Sprintf("%q", name),
		}
	}
	col, row := name[0], name[1]
	if col >= 'A' && col <= 'H' {
		col += 'a' - 'A'
	}
	if col < 'a' || col > 'h' {
		return Square{}, &errors.ParseError{
			Err: errors.ErrInvalidSquare, Input: name, Column: 1, Expected: "file a-h", Got: string(col),
		}
	}
	if row < '1' || row > '8' {
		return Square{}, &errors.ParseError{
			Err: errors.ErrInvalidSquare, Input: name, Column: 2, Expected: "rank 1-8", Got: string(row),
		}
	}
	return Square{Rank: int(row - '1'), File: int(col - 'a')}, nil
}

// MustParseSquare is ParseSquare for constant names; it panics on error.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// Less orders squares by rank, then file.
func (s Square) Less(o Square) bool {
	if s.Rank != o.Rank {
		return s.Rank < o.Rank
	}
	return s.File < o.File
}

// Compare returns -1, 0 or +1 ordering squares by rank, then file.
func (s Square) Compare(o Square) int {
	switch {
	case s.Less(o):
		return -1
	case o.Less(s):
		return 1
	}
	return 0
}
