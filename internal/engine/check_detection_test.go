package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestUnderAttack(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		square string
		colour chess.Colour // side whose safety is asked about
		want   bool
	}{
		{"pawn attacks empty diagonal", []string{"Pe4"}, "d5", chess.Black, true},
		{"pawn attacks other diagonal", []string{"Pe4"}, "f5", chess.Black, true},
		{"pawn does not attack ahead", []string{"Pe4"}, "e5", chess.Black, false},
		{"pawn does not attack backwards", []string{"Pe4"}, "d3", chess.Black, false},
		{"black pawn attacks downwards", []string{"pe5"}, "d4", chess.White, true},
		{"knight attack", []string{"Ng1"}, "f3", chess.Black, true},
		{"king attacks neighbour", []string{"Ke1"}, "d2", chess.Black, true},
		{"king does not attack two away", []string{"Ke1"}, "e3", chess.Black, false},
		{"rook along file", []string{"Ra1"}, "a8", chess.Black, true},
		{"rook blocked", []string{"Ra1", "pa4"}, "a8", chess.Black, false},
		{"bishop along diagonal", []string{"Bc1"}, "h6", chess.Black, true},
		{"bishop not along file", []string{"Bc1"}, "c5", chess.Black, false},
		{"queen diagonal blocked", []string{"Qd1", "Pe2"}, "g4", chess.Black, false},
		{"own pieces do not attack", []string{"Ra1"}, "a8", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardWith(tt.pieces...)
			got := UnderAttack(board, chess.MustParseSquare(tt.square), tt.colour)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestCanAttack_DefendedPiece(t *testing.T) {
	// A square held by the attacker's own side still counts as attacked
	board := testutil.BoardWith("Ra1", "Na4")
	rook := board.Occupant(chess.MustParseSquare("a1"))

	testutil.AssertTrue(t, CanAttack(board, rook, chess.MustParseSquare("a4")))
	testutil.AssertFalse(t, CanAttack(board, rook, chess.MustParseSquare("a5")))
	testutil.AssertFalse(t, CanAttack(board, rook, rook.Square), "a piece does not attack its own square")
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial position", InitialFEN, chess.White, false},
		{"queen check on the diagonal", "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3", chess.White, true},
		{"knight check", "4k3/8/3N4/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"blocked check", "4k3/4p3/8/8/8/8/8/4R1K1 b - - 0 1", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, IsInCheck(board, tt.colour), tt.want)
		})
	}
}

func TestIsInCheck_NoKing(t *testing.T) {
	board := testutil.BoardWith("Ra1", "qa8")
	testutil.AssertFalse(t, IsInCheck(board, chess.White))
}

func TestAttackers(t *testing.T) {
	board := testutil.BoardWith("Ke1", "re8", "nd3", "bh4", "ka8")
	got := Attackers(board, chess.MustParseSquare("e1"), chess.White)

	var squares []chess.Square
	for _, p := range got {
		squares = append(squares, p.Square)
	}
	testutil.AssertSameSquares(t, squares, testutil.Squares("e8", "d3", "h4"))
}
