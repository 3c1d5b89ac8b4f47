// Package engine implements the chess rules: movement geometry, attack
// detection, the king-safety filter, special moves, game status and the
// turn-by-turn game state machine.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	board := chess.NewBoard()
	if err := SetupFromFEN(board, fen); err != nil {
		return nil, err
	}
	return board, nil
}

// SetupFromFEN clears the board and sets up the position described by fen.
// The observer, if any, sees every piece placed.
//
// Castling availability becomes has-moved flags on kings and rooks, and a
// pawn off its starting rank counts as moved. An en passant square is
// recorded as a double step made on the previous turn. The halfmove clock
// is accepted but not kept.
func SetupFromFEN(board *chess.Board, fen string) error {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board.Clear()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return err
	}

	if err := parseClocks(board, parts); err != nil {
		return err
	}

	if err := parseSideToMove(board, parts); err != nil {
		return err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return err
	}

	return parseEnPassant(board, parts)
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.LastIndex
	file := 0

	fieldError := func(column int, expected, got string) error {
		return &errors.ParseError{
			Err: errors.ErrInvalidFEN, Input: positions, Field: "placement",
			Column: column, Expected: expected, Got: got,
		}
	}

	for i, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fieldError(i+1, "8 files per rank", strconv.Itoa(file))
			}
			rank--
			file = 0
			if rank < 0 {
				return fieldError(i+1, "8 ranks", "more")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return fieldError(i+1, "8 files per rank", strconv.Itoa(file))
			}
		default:
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.Empty {
				return fieldError(i+1, "piece letter", string(c))
			}
			if file >= chess.BoardSize {
				return fieldError(i+1, "8 files per rank", "more")
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Place(kind, colour, chess.Sq(rank, file))
			file++
		}
	}

	if rank != 0 || file != chess.BoardSize {
		return fieldError(len(positions), "8 ranks of 8 files", "short placement")
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if got := MaterialCount(board, colour)[chess.King]; got != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, got, errors.ErrInvalidFEN)
		}
	}

	// Pawns off their starting rank can no longer double step
	for _, p := range board.AllPieces() {
		if p.Kind == chess.Pawn && p.Square.Rank != chess.PawnRank(p.Colour) {
			board.MarkMoved(p.ID)
		}
	}
	return nil
}

// parseClocks parses the fullmove number into the turn counter. The
// halfmove clock must be numeric when present but is otherwise ignored.
func parseClocks(board *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		if _, err := strconv.Atoi(parts[4]); err != nil {
			return &errors.ParseError{
				Err: errors.ErrInvalidFEN, Input: parts[4], Field: "halfmove clock",
				Expected: "number", Got: parts[4],
			}
		}
	}

	fullMove := 1
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return &errors.ParseError{
				Err: errors.ErrInvalidFEN, Input: parts[5], Field: "fullmove number",
				Expected: "positive number", Got: parts[5],
			}
		}
		fullMove = n
	}
	board.Turn = 2*fullMove - 1
	return nil
}

// parseSideToMove parses the side to move field. Black to move is the even
// turn of the full move.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
	case "b":
		board.Turn++
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Every king
// and rook starts as moved; each right clears the flags of the king on its
// home square and the rook on the matching corner.
func parseCastlingRights(board *chess.Board, parts []string) error {
	for _, p := range board.AllPieces() {
		if p.Kind == chess.King || p.Kind == chess.Rook {
			board.MarkMoved(p.ID)
		}
	}

	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for i, c := range parts[2] {
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}

		var rookFile int
		switch unicode.ToLower(c) {
		case 'k':
			rookFile = chess.LastIndex
		case 'q':
			rookFile = 0
		default:
			return &errors.ParseError{
				Err: errors.ErrInvalidFEN, Input: parts[2], Field: "castling",
				Column: i + 1, Expected: "one of KQkq", Got: string(c),
			}
		}
		grantCastling(board, colour, rookFile)
	}
	return nil
}

// grantCastling marks the king and the rook on rookFile unmoved if both
// stand on their home squares. Otherwise the right is silently dropped.
func grantCastling(board *chess.Board, colour chess.Colour, rookFile int) {
	home := chess.HomeRank(colour)
	king := board.Occupant(chess.Sq(home, 4))
	rook := board.Occupant(chess.Sq(home, rookFile))
	if king.Kind != chess.King || king.Colour != colour {
		return
	}
	if rook.Kind != chess.Rook || rook.Colour != colour {
		return
	}
	board.SetMoved(king.ID, false)
	board.SetMoved(rook.ID, false)
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return errors.Wrap(err, "en passant")
	}

	// The target lies behind a pawn of the side that just moved
	wantRank := 5
	if board.SideToMove() == chess.Black {
		wantRank = 2
	}
	if target.Rank != wantRank {
		return &errors.ParseError{
			Err: errors.ErrInvalidFEN, Input: parts[3], Field: "en passant",
			Expected: fmt.Sprintf("rank %d", wantRank+1), Got: parts[3],
		}
	}

	board.SetEnPassant(target, board.Turn-1)
	return nil
}

// BoardToFEN converts a board to a FEN string. The halfmove clock is always
// written as 0.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "0 %d", (board.Turn+1)/2)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.LastIndex; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			p := board.Occupant(chess.Sq(rank, file))
			if p.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.SideToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	sb.WriteString(CastlingAvailability(board))
}

// CastlingAvailability returns the castling field of the FEN for board:
// some of "KQkq" in that order, or "-". A right is listed while the king
// and the rook are both unmoved on their home squares.
func CastlingAvailability(board *chess.Board) string {
	var rights []byte
	for _, right := range []struct {
		colour   chess.Colour
		rookFile int
		letter   byte
	}{
		{chess.White, chess.LastIndex, 'K'},
		{chess.White, 0, 'Q'},
		{chess.Black, chess.LastIndex, 'k'},
		{chess.Black, 0, 'q'},
	} {
		if canStillCastle(board, right.colour, right.rookFile) {
			rights = append(rights, right.letter)
		}
	}
	if len(rights) == 0 {
		return "-"
	}
	return string(rights)
}

// canStillCastle reports whether the king and the rook on rookFile are both
// unmoved on their home squares.
func canStillCastle(board *chess.Board, colour chess.Colour, rookFile int) bool {
	home := chess.HomeRank(colour)
	king := board.Occupant(chess.Sq(home, 4))
	rook := board.Occupant(chess.Sq(home, rookFile))
	return king.Kind == chess.King && king.Colour == colour && !king.Moved &&
		rook.Kind == chess.Rook && rook.Colour == colour && !rook.Moved
}

// writeEnPassant writes the en passant target square to the builder. Only a
// target capturable on the current turn is written.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassantValid() {
		sb.WriteString(board.EPTarget.String())
	} else {
		sb.WriteByte('-')
	}
}
