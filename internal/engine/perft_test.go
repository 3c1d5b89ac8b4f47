package engine

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial depth 1", InitialFEN, 1, 20},
		{"initial depth 2", InitialFEN, 2, 400},
		{"initial depth 3", InitialFEN, 3, 8902},
		{"rook endgame depth 1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"rook endgame depth 2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
		{"rook endgame depth 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
		{"promotion depth 1", "7k/P7/8/8/8/8/8/7K w - - 0 1", 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, Perft(board, tt.depth), tt.want)
			testutil.AssertEqual(t, BoardToFEN(board), tt.fen, "perft must not modify the board")
		})
	}
}

func TestDivide(t *testing.T) {
	board, err := NewBoardFromFEN(InitialFEN)
	testutil.AssertNoError(t, err)

	divide := Divide(board, 2)
	testutil.AssertEqual(t, len(divide), 20)
	testutil.AssertEqual(t, divide["e2e4"], uint64(20))
	testutil.AssertEqual(t, divide["g1f3"], uint64(20))

	var total uint64
	for _, n := range divide {
		total += n
	}
	testutil.AssertEqual(t, total, uint64(400))
}

// Positions without castling rights, where this engine's stricter castling
// rule cannot differ from standard move generation.
var differentialFENs = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w - f6 0 3",
	"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w - - 4 4",
	"7k/2p5/8/KP5r/8/8/8/8 w - - 0 1",
	"4k3/1P6/8/8/8/8/6p1/4K3 w - - 0 1",
	"4k3/1P6/8/8/8/8/6p1/4K3 b - - 0 1",
	"r3k3/8/8/8/3Q4/8/8/4K2R b - - 0 1",
	"8/8/8/4k3/8/8/8/R3K2R b - - 0 1",
	"6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1",
	"k7/8/1Q6/8/8/8/8/7K b - - 0 1",
}

// TestLegalMovesMatchReferenceGenerator compares the legal move list with an
// independent bitboard move generator. Promotion suffixes are dropped since
// the two generators may spell them differently.
func TestLegalMovesMatchReferenceGenerator(t *testing.T) {
	for _, fen := range differentialFENs {
		t.Run(fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(fen)
			testutil.AssertNoError(t, err)

			got := uniqueSorted(func(add func(string)) {
				for _, m := range AllLegalMoves(board, board.SideToMove()) {
					add(m.From.String() + m.To.String())
				}
			})

			ref := dragontoothmg.ParseFen(fen)
			want := uniqueSorted(func(add func(string)) {
				for _, m := range ref.GenerateLegalMoves() {
					add(m.String()[:4])
				}
			})

			testutil.AssertEqual(t, got, want)
		})
	}
}

func uniqueSorted(collect func(add func(string))) []string {
	seen := make(map[string]bool)
	var out []string
	collect(func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	})
	sort.Strings(out)
	return out
}
