package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// positionAfter plays moves from fen and returns the resulting position.
func positionAfter(t *testing.T, fen string, moves ...[2]string) Position {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	require.NoError(t, err)
	for _, m := range moves {
		res, err := g.AttemptMove(chess.MustParseSquare(m[0]), chess.MustParseSquare(m[1]))
		require.NoError(t, err)
		require.Equal(t, engine.Moved, res)
	}

	p := Position{
		FEN:    g.FEN(),
		Board:  g.Board(),
		Status: g.Status(),
	}
	p.Moves = engine.AllLegalMoves(p.Board, p.Board.SideToMove())
	p.MoveCount = len(p.Moves)
	if fx, ok := g.LastMove(); ok {
		p.LastMove = &fx
	}
	return p
}

func TestWriteBoard(t *testing.T) {
	board := chess.NewInitialBoard()

	t.Run("with coordinates", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteBoard(&buf, board, config.NewRenderConfig()))

		want := strings.Join([]string{
			"8 r n b q k b n r",
			"7 p p p p p p p p",
			"6 . . . . . . . .",
			"5 . . . . . . . .",
			"4 . . . . . . . .",
			"3 . . . . . . . .",
			"2 P P P P P P P P",
			"1 R N B Q K B N R",
			"  a b c d e f g h",
		}, "\n") + "\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("flipped without coordinates", func(t *testing.T) {
		rc := config.NewRenderConfig()
		rc.ShowCoordinates = false
		rc.Flip = true

		var buf bytes.Buffer
		require.NoError(t, WriteBoard(&buf, board, rc))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 8)
		assert.Equal(t, "R N B K Q B N R", lines[0])
		assert.Equal(t, "r n b k q b n r", lines[7])
	})
}

func TestWriteSVG(t *testing.T) {
	board := testutil.BoardWith("Ke1", "ke8", "Pe2", "pd7")
	rc := config.NewRenderConfig()

	var buf bytes.Buffer
	err := WriteSVG(&buf, board, rc, testutil.Squares("e2", "e4"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "White to move")
	assert.Equal(t, 64, strings.Count(out, "<rect"))
	assert.Equal(t, 2, strings.Count(out, highlightSquareFill))
	assert.Equal(t, 1, strings.Count(out, "♔"))
	assert.Equal(t, 1, strings.Count(out, "♚"))
	assert.Equal(t, 1, strings.Count(out, "♙"))
	assert.Equal(t, 1, strings.Count(out, "♟"))
}

func TestWriteSVG_Size(t *testing.T) {
	rc := config.NewRenderConfig()
	rc.SquareSize = 20
	rc.ShowCoordinates = false

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, chess.NewInitialBoard(), rc, nil))
	assert.Contains(t, buf.String(), `width="160"`)
	assert.NotContains(t, buf.String(), highlightSquareFill)
}

func TestWriteSVG_WriteError(t *testing.T) {
	err := WriteSVG(failingWriter{}, chess.NewInitialBoard(), config.NewRenderConfig(), nil)
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestNewPositionReport(t *testing.T) {
	t.Run("after a pawn move", func(t *testing.T) {
		p := positionAfter(t, engine.InitialFEN, [2]string{"e2", "e4"})
		r := NewPositionReport(p)

		assert.Equal(t, "black", r.SideToMove)
		assert.Equal(t, 2, r.Turn)
		assert.Equal(t, "InProgress", r.Status)
		assert.Empty(t, r.Winner)
		assert.Equal(t, 20, r.MoveCount)
		assert.Len(t, r.Moves, 20)
		assert.Len(t, r.Pieces, 32)
		require.NotNil(t, r.LastMove)
		assert.Equal(t, JSONMove{From: "e2", To: "e4", Piece: "pawn"}, *r.LastMove)
	})

	t.Run("capture", func(t *testing.T) {
		p := positionAfter(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", [2]string{"e4", "d5"})
		r := NewPositionReport(p)

		require.NotNil(t, r.LastMove)
		assert.Equal(t, "pawn", r.LastMove.Captured)
		assert.Len(t, r.Pieces, 3)
	})

	t.Run("checkmate", func(t *testing.T) {
		p := positionAfter(t, engine.InitialFEN,
			[2]string{"f2", "f3"}, [2]string{"e7", "e5"},
			[2]string{"g2", "g4"}, [2]string{"d8", "h4"})
		r := NewPositionReport(p)

		assert.Equal(t, "Checkmate", r.Status)
		assert.Equal(t, "black", r.Winner)
		assert.True(t, r.InCheck)
		assert.Zero(t, r.MoveCount)
	})

	t.Run("insufficient material", func(t *testing.T) {
		p := positionAfter(t, "4k3/8/8/8/8/8/8/3NK3 w - - 0 1")
		r := NewPositionReport(p)

		assert.Equal(t, "InProgress", r.Status)
		assert.True(t, r.DeadDraw)
	})

	t.Run("error", func(t *testing.T) {
		r := NewPositionReport(Position{Index: 4, FEN: "bad", Err: errors.New("invalid FEN")})

		assert.Equal(t, "invalid FEN", r.Error)
		assert.Empty(t, r.Status)
		assert.Nil(t, r.Pieces)
	})
}

func TestJSONWriter(t *testing.T) {
	cfg := config.NewConfig()
	p := positionAfter(t, engine.InitialFEN)

	t.Run("batch", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewJSONWriter(&buf, cfg)
		require.NoError(t, w.WritePosition(p))
		p2 := p
		p2.Index = 1
		require.NoError(t, w.WritePosition(p2))
		assert.Zero(t, buf.Len(), "batch writer should wait for Close")

		require.NoError(t, w.Close())

		var out JSONOutput
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		require.Len(t, out.Positions, 2)
		assert.Equal(t, 1, out.Positions[1].Index)
		assert.Equal(t, engine.InitialFEN, out.Positions[0].FEN)
	})

	t.Run("single", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewJSONWriterSingle(&buf, cfg)
		require.NoError(t, w.WritePosition(p))

		var r PositionReport
		require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
		assert.Equal(t, "white", r.SideToMove)
		assert.Equal(t, 20, r.MoveCount)
	})
}

func TestTextWriter(t *testing.T) {
	cfg := config.NewConfig()
	p := positionAfter(t, engine.InitialFEN)
	p.Nodes = 400

	var buf bytes.Buffer
	w := NewTextWriter(&buf, cfg)
	require.NoError(t, w.WritePosition(p))
	require.NoError(t, w.WritePosition(Position{Index: 2, Err: errors.New("invalid FEN")}))

	out := buf.String()
	assert.Contains(t, out, "1 R N B Q K B N R\n")
	assert.Contains(t, out, "White to move, InProgress, 20 legal moves, perft 400\n")
	assert.Contains(t, out, "position 3: invalid FEN\n")
}

func TestSummary_Check(t *testing.T) {
	p := positionAfter(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", [2]string{"a1", "a8"})
	assert.Equal(t, "Black to move, InProgress, 3 legal moves, check", Summary(p))
}

func TestNewWriter(t *testing.T) {
	tests := []struct {
		format config.RenderFormat
		want   PositionWriter
	}{
		{config.TextBoard, &TextWriter{}},
		{config.JSONReport, &JSONWriter{}},
		{config.SVGBoard, &SVGWriter{}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			cfg := config.NewConfigBuilder().WithRenderFormat(tt.format).Build()
			assert.IsType(t, tt.want, NewWriter(&bytes.Buffer{}, cfg))
		})
	}
}

func TestSVGWriter_HighlightsLastMove(t *testing.T) {
	cfg := config.NewConfig()
	p := positionAfter(t, engine.InitialFEN, [2]string{"g1", "f3"})

	var buf bytes.Buffer
	require.NoError(t, NewSVGWriter(&buf, cfg).WritePosition(p))
	assert.Equal(t, 2, strings.Count(buf.String(), highlightSquareFill))

	buf.Reset()
	require.NoError(t, NewSVGWriter(&buf, cfg).WritePosition(Position{Err: errors.New("x")}))
	assert.Zero(t, buf.Len())
}
