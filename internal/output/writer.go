// Package output writes positions as text boards, SVG drawings or JSON
// reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Position is everything the writers know about one position.
type Position struct {
	Index     int
	FEN       string
	Board     *chess.Board // Nil if the position could not be read
	Status    engine.Status
	MoveCount int
	Moves     []engine.Move
	Nodes     uint64
	LastMove  *engine.MoveEffects // Highlighted when set
	Err       error
}

// PositionWriter is the interface for writing positions to output.
type PositionWriter interface {
	// WritePosition writes a single position to the output.
	WritePosition(p Position) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers write pending output here.
	Close() error
}

// NewWriter returns the writer selected by cfg.Render.Format.
func NewWriter(w io.Writer, cfg *config.Config) PositionWriter {
	switch cfg.Render.Format {
	case config.JSONReport:
		return NewJSONWriter(w, cfg)
	case config.SVGBoard:
		return NewSVGWriter(w, cfg)
	default:
		return NewTextWriter(w, cfg)
	}
}

// TextWriter writes a board diagram followed by a summary line.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WritePosition writes a position as a text board.
func (tw *TextWriter) WritePosition(p Position) error {
	if p.Err != nil {
		_, err := fmt.Fprintf(tw.w, "position %d: %v\n", p.Index+1, p.Err)
		return err
	}
	if err := WriteBoard(tw.w, p.Board, tw.cfg.Render); err != nil {
		return err
	}
	_, err := fmt.Fprintln(tw.w, Summary(p))
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// Summary returns a one-line description of a position, e.g.
// "White to move, InProgress, 20 legal moves".
func Summary(p Position) string {
	s := fmt.Sprintf("%s to move, %s, %d legal moves",
		p.Board.SideToMove(), p.Status, p.MoveCount)
	if p.Status.InCheck && p.Status.Kind != engine.Checkmate {
		s += ", check"
	}
	if p.Nodes > 0 {
		s += fmt.Sprintf(", perft %d", p.Nodes)
	}
	return s
}

// JSONWriter writes positions as JSON reports.
// It buffers reports and writes them as one array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	reports []*PositionReport
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new batching JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		reports: make([]*PositionReport, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WritePosition buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WritePosition(p Position) error {
	report := NewPositionReport(p)
	if jw.single {
		return encode(jw.w, report)
	}
	jw.reports = append(jw.reports, report)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}
	err := encode(jw.w, &JSONOutput{Positions: jw.reports})
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// SVGWriter writes each position as a standalone SVG document.
type SVGWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewSVGWriter creates a new SVG writer.
func NewSVGWriter(w io.Writer, cfg *config.Config) *SVGWriter {
	return &SVGWriter{w: w, cfg: cfg}
}

// WritePosition draws the board of a position. Unreadable positions are
// skipped.
func (sw *SVGWriter) WritePosition(p Position) error {
	if p.Err != nil || p.Board == nil {
		return nil
	}
	var highlight []chess.Square
	if p.LastMove != nil && sw.cfg.Render.HighlightLastMove {
		highlight = []chess.Square{p.LastMove.Piece.Square, p.LastMove.To}
	}
	return WriteSVG(sw.w, p.Board, sw.cfg.Render, highlight)
}

// Flush is a no-op for SVG.
func (sw *SVGWriter) Flush() error {
	return nil
}

// Close closes the SVG writer.
func (sw *SVGWriter) Close() error {
	return nil
}
