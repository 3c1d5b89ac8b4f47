package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

const (
	lightSquareFill     = "fill:#f0d9b5"
	darkSquareFill      = "fill:#b58863"
	highlightSquareFill = "fill:#cdd26a"
)

// glyphs holds the Unicode chess symbols, indexed by colour then kind.
var glyphs = [2][chess.NumKinds]string{
	{"", "♙", "♘", "♗", "♖", "♕", "♔"},
	{"", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// WriteSVG draws the board as an SVG document. Squares in highlight are
// shaded, for example the two squares of the last move or the legal
// destinations of a selected piece.
func WriteSVG(w io.Writer, board *chess.Board, rc *config.RenderConfig, highlight []chess.Square) error {
	size := rc.SquareSize
	margin := 0
	if rc.ShowCoordinates {
		margin = size / 2
	}
	side := chess.BoardSize*size + 2*margin

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(side, side)
	canvas.Title(fmt.Sprintf("%s to move", board.SideToMove()))

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := squareAt(row, col, rc.Flip)
			x, y := margin+col*size, margin+row*size

			fill := darkSquareFill
			if sq.IsLight() {
				fill = lightSquareFill
			}
			if slices.Contains(highlight, sq) {
				fill = highlightSquareFill
			}
			canvas.Rect(x, y, size, size, fill)

			if p := board.Occupant(sq); !p.IsEmpty() {
				canvas.Text(x+size/2, y+size*4/5, glyphs[p.Colour.Index()][p.Kind],
					fmt.Sprintf("text-anchor:middle;font-size:%dpx", size*4/5))
			}
		}
	}

	if rc.ShowCoordinates {
		writeCoordinates(canvas, size, margin, rc.Flip)
	}

	canvas.End()
	return ew.err
}

// writeCoordinates labels the files below the board and the ranks to its
// left.
func writeCoordinates(canvas *svg.SVG, size, margin int, flip bool) {
	style := fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:#555", margin*2/3)
	bottom := margin + chess.BoardSize*size + margin*2/3
	for i := 0; i < chess.BoardSize; i++ {
		sq := squareAt(i, i, flip)
		canvas.Text(margin+i*size+size/2, bottom, string(rune('a'+sq.File)), style)
		canvas.Text(margin/2, margin+i*size+size/2+margin/4, string(rune('1'+sq.Rank)), style)
	}
}

// squareAt returns the square drawn at row and col, row 0 being the top.
func squareAt(row, col int, flip bool) chess.Square {
	if flip {
		return chess.Sq(row, chess.LastIndex-col)
	}
	return chess.Sq(chess.LastIndex-row, col)
}

// errWriter remembers the first write error, since the canvas drops
// them.
type errWriter struct {
	w   io.Writer
	err error
}

func (c *errWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.err = err
	return n, err
}
