package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction tables, as {rank delta, file delta}.
var (
	rookDirections   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirections  = append(append([][2]int{}, rookDirections...), bishopDirections...)

	knightOffsets = [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = [][2]int{{1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}}
)

// slideDirections returns the ray directions of a sliding kind.
func slideDirections(kind chess.Kind) [][2]int {
	switch kind {
	case chess.Rook:
		return rookDirections
	case chess.Bishop:
		return bishopDirections
	case chess.Queen:
		return queenDirections
	}
	return nil
}

// isOwnPiece reports whether sq holds a piece of the given colour.
func isOwnPiece(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	if !sq.InBounds() {
		return false
	}
	p := board.Occupant(sq)
	return !p.IsEmpty() && p.Colour == colour
}

// isPathClear checks that every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rankDir := sign(to.Rank - from.Rank)
	fileDir := sign(to.File - from.File)

	for sq := from.Offset(rankDir, fileDir); sq != to; sq = sq.Offset(rankDir, fileDir) {
		if board.IsOccupied(sq) {
			return false
		}
	}
	return true
}

// isAligned reports whether a slider of the given kind shares a line with
// the target: a rank or file for rooks, a diagonal for bishops, either for
// queens.
func isAligned(kind chess.Kind, from, to chess.Square) bool {
	rankDiff := abs(to.Rank - from.Rank)
	fileDiff := abs(to.File - from.File)
	if rankDiff == 0 && fileDiff == 0 {
		return false
	}

	straight := rankDiff == 0 || fileDiff == 0
	diagonal := rankDiff == fileDiff

	switch kind {
	case chess.Rook:
		return straight
	case chess.Bishop:
		return diagonal
	case chess.Queen:
		return straight || diagonal
	}
	return false
}
