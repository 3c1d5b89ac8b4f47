package output

import (
	"bufio"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// WriteBoard writes the board as eight rows of FEN letters, with '.' for
// empty squares. Rank 8 comes first unless rc.Flip is set.
func WriteBoard(w io.Writer, board *chess.Board, rc *config.RenderConfig) error {
	bw := bufio.NewWriter(w)

	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.LastIndex - row
		if rc.Flip {
			rank = row
		}
		if rc.ShowCoordinates {
			bw.WriteByte(byte('1' + rank))
			bw.WriteByte(' ')
		}
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteByte(board.Occupant(chess.Sq(rank, fileAt(col, rc.Flip))).Letter())
		}
		bw.WriteByte('\n')
	}

	if rc.ShowCoordinates {
		bw.WriteString("  ")
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteByte(byte('a' + fileAt(col, rc.Flip)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// fileAt returns the file drawn in column col.
func fileAt(col int, flip bool) int {
	if flip {
		return chess.LastIndex - col
	}
	return col
}
