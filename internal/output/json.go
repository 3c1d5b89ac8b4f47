package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// PositionReport is a position in JSON format.
type PositionReport struct {
	Index      int         `json:"index"`
	FEN        string      `json:"fen"`
	SideToMove string      `json:"sideToMove,omitempty"`
	Turn       int         `json:"turn,omitempty"`
	Status     string      `json:"status,omitempty"`
	Winner     string      `json:"winner,omitempty"`
	InCheck    bool        `json:"inCheck,omitempty"`
	DeadDraw   bool        `json:"insufficientMaterial,omitempty"`
	MoveCount  int         `json:"moveCount"`
	Moves      []string    `json:"moves,omitempty"`
	Perft      uint64      `json:"perft,omitempty"`
	Pieces     []JSONPiece `json:"pieces,omitempty"`
	LastMove   *JSONMove   `json:"lastMove,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// JSONPiece is one piece on the board. ID is the stable piece id a display
// layer keys its artifacts on.
type JSONPiece struct {
	ID     int    `json:"id"`
	Color  string `json:"color"` // "white" or "black"
	Piece  string `json:"piece"`
	Square string `json:"square"`
}

// JSONMove describes the last committed move.
type JSONMove struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Castled   bool   `json:"castled,omitempty"`
	EnPassant bool   `json:"enPassant,omitempty"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Positions []*PositionReport `json:"positions"`
}

// NewPositionReport converts a position to its JSON report.
func NewPositionReport(p Position) *PositionReport {
	r := &PositionReport{
		Index:     p.Index,
		FEN:       p.FEN,
		MoveCount: p.MoveCount,
		Perft:     p.Nodes,
	}
	if p.Err != nil {
		r.Error = p.Err.Error()
		return r
	}
	if p.Board == nil {
		return r
	}

	r.SideToMove = colorName(p.Board.SideToMove())
	r.Turn = p.Board.Turn
	r.Status = p.Status.Kind.String()
	r.InCheck = p.Status.InCheck
	r.DeadDraw = p.Status.InsufficientMaterial
	if p.Status.Kind == engine.Checkmate {
		r.Winner = colorName(p.Status.Winner)
	}

	for _, m := range p.Moves {
		r.Moves = append(r.Moves, m.String())
	}
	r.Pieces = convertPieces(p.Board)
	if p.LastMove != nil {
		r.LastMove = convertMove(p.Board, p.LastMove)
	}
	return r
}

// convertPieces lists the pieces in arena order.
func convertPieces(board *chess.Board) []JSONPiece {
	all := board.AllPieces()
	pieces := make([]JSONPiece, 0, len(all))
	for _, p := range all {
		pieces = append(pieces, JSONPiece{
			ID:     int(p.ID),
			Color:  colorName(p.Colour),
			Piece:  pieceTypeName(p.Kind),
			Square: p.Square.String(),
		})
	}
	return pieces
}

// convertMove converts the effects of a move. The captured piece is looked
// up in the arena, which keeps captured records.
func convertMove(board *chess.Board, fx *engine.MoveEffects) *JSONMove {
	jm := &JSONMove{
		From:      fx.Piece.Square.String(),
		To:        fx.To.String(),
		Piece:     pieceTypeName(fx.Piece.Kind),
		Castled:   fx.Castled,
		EnPassant: fx.EnPassant,
	}
	if fx.Captured != chess.NoPiece {
		jm.Captured = pieceTypeName(board.Piece(fx.Captured).Kind)
	}
	if fx.PromotedTo != chess.Empty {
		jm.Promotion = pieceTypeName(fx.PromotedTo)
	}
	return jm
}

func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func pieceTypeName(k chess.Kind) string {
	return strings.ToLower(k.String())
}
