package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				king := b.Occupant(chess.MustParseSquare("e1"))
				rook := b.Occupant(chess.MustParseSquare("h8"))
				return king.Kind == chess.King && king.Colour == chess.White && !king.Moved &&
					rook.Kind == chess.Rook && rook.Colour == chess.Black && !rook.Moved &&
					b.Occupant(chess.MustParseSquare("e7")).Kind == chess.Pawn &&
					b.Turn == 1 &&
					len(b.AllPieces()) == 32
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				pawn := b.Occupant(chess.MustParseSquare("e4"))
				return pawn.Kind == chess.Pawn && pawn.Moved &&
					b.Occupant(chess.MustParseSquare("e2")).IsEmpty() &&
					b.SideToMove() == chess.Black &&
					b.Turn == 2 &&
					b.EnPassantValid() &&
					b.EPTarget == chess.MustParseSquare("e3")
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.King(chess.White).Moved &&
					b.King(chess.Black).Moved &&
					b.Occupant(chess.MustParseSquare("a1")).Moved &&
					b.Occupant(chess.MustParseSquare("h8")).Moved
			},
		},
		{
			name: "single castling right",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w q - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.King(chess.White).Moved &&
					!b.King(chess.Black).Moved &&
					!b.Occupant(chess.MustParseSquare("a8")).Moved &&
					b.Occupant(chess.MustParseSquare("h8")).Moved
			},
		},
		{
			name: "fullmove number sets the turn",
			fen:  "4k3/8/8/8/8/8/8/4K3 b - - 7 20",
			checkFn: func(b *chess.Board) bool {
				return b.Turn == 40 && b.SideToMove() == chess.Black
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(b *chess.Board) bool {
				return b.Turn == 1 && !b.EnPassant
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error = %v", tt.fen, err)
			}
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN(%q) board check failed", tt.fen)
			}
		})
	}
}

func TestNewBoardFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want error
	}{
		{"empty string", "", chesserrors.ErrInvalidFEN},
		{"too few ranks", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1", chesserrors.ErrInvalidFEN},
		{"too many ranks", "rnbqkbnr/pppppppp/8/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", chesserrors.ErrInvalidFEN},
		{"rank too long", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", chesserrors.ErrInvalidFEN},
		{"rank too short", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", chesserrors.ErrInvalidFEN},
		{"bad piece letter", "rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", chesserrors.ErrInvalidFEN},
		{"nine empty squares", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", chesserrors.ErrInvalidFEN},
		{"missing king", "rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQ - 0 1", chesserrors.ErrInvalidFEN},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3 x - - 0 1", chesserrors.ErrInvalidFEN},
		{"bad castling letter", "4k3/8/8/8/8/8/8/4K3 w X - 0 1", chesserrors.ErrInvalidFEN},
		{"bad en passant square", "4k3/8/8/8/8/8/8/4K3 w - e9 0 1", chesserrors.ErrInvalidSquare},
		{"en passant on wrong rank", "4k3/8/8/8/8/8/8/4K3 w - e3 0 1", chesserrors.ErrInvalidFEN},
		{"bad halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - x 1", chesserrors.ErrInvalidFEN},
		{"zero fullmove number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0", chesserrors.ErrInvalidFEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			testutil.AssertNil(t, board)
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestNewBoardFromFEN_ParseErrorContext(t *testing.T) {
	_, err := NewBoardFromFEN("rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	var parseErr *chesserrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error %v is not a ParseError", err)
	}
	testutil.AssertEqual(t, parseErr.Field, "placement")
	testutil.AssertEqual(t, parseErr.Column, 8)
	testutil.AssertEqual(t, parseErr.Got, "x")
}

func TestBoardToFEN_RoundTrip(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"r3k2r/p6p/8/8/8/8/P6P/R3K2R w Kq - 0 12",
		"4k3/8/8/8/8/8/8/4K3 b - - 0 40",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, BoardToFEN(board), fen)
		})
	}
}

func TestBoardToFEN_HalfmoveClockNotKept(t *testing.T) {
	board, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 17 30")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, BoardToFEN(board), "4k3/8/8/8/8/8/8/4K3 w - - 0 30")
}

func TestBoardToFEN_AfterMoves(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		from    string
		to      string
		wantFEN string
	}{
		{
			// The double step lands beside no enemy pawn, so no target is recorded
			name:    "1.e4",
			fen:     InitialFEN,
			from:    "e2",
			to:      "e4",
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		},
		{
			name:    "1.Nf3",
			fen:     InitialFEN,
			from:    "g1",
			to:      "f3",
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 0 1",
		},
		{
			name:    "double step beside an enemy pawn",
			fen:     "rnbqkbnr/ppp1pppp/8/8/3p4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 3",
			from:    "e2",
			to:      "e4",
			wantFEN: "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3",
		},
		{
			name:    "rook move drops one right",
			fen:     "r3k2r/p6p/8/8/8/8/P6P/R3K2R b KQkq - 0 1",
			from:    "h8",
			to:      "g8",
			wantFEN: "r3k1r1/p6p/8/8/8/8/P6P/R3K2R w KQq - 0 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			testutil.AssertNoError(t, err)

			ApplyMove(board, chess.MustParseSquare(tt.from), chess.MustParseSquare(tt.to))
			board.AdvanceTurn()
			testutil.AssertEqual(t, BoardToFEN(board), tt.wantFEN)
		})
	}
}

func TestSetupFromFEN_ReplacesPosition(t *testing.T) {
	board := chess.NewInitialBoard()
	err := SetupFromFEN(board, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(board.AllPieces()), 2)
}

func TestCastlingAvailability(t *testing.T) {
	tests := []struct {
		fen  string
		want string
	}{
		{InitialFEN, "KQkq"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1", "Kq"},
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", "-"},
		// A right without its rook is dropped
		{"4k3/8/8/8/8/8/8/4K3 w K - 0 1", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, CastlingAvailability(board), tt.want)
		})
	}

	t.Run("king move loses both rights", func(t *testing.T) {
		board, err := NewBoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		testutil.AssertNoError(t, err)
		ApplyMove(board, chess.MustParseSquare("e1"), chess.MustParseSquare("f1"))
		testutil.AssertEqual(t, CastlingAvailability(board), "kq")
	})
}
