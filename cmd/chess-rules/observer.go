package main

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// logObserver writes every permanent piece event to the log at
// commentary verbosity.
type logObserver struct {
	cfg *config.Config
}

func (o logObserver) PiecePlaced(p chess.Piece) {
	o.cfg.Logf(config.Commentary, "placed %s #%d on %s", p, p.ID, p.Square)
}

func (o logObserver) PieceMoved(p chess.Piece, from chess.Square) {
	o.cfg.Logf(config.Commentary, "moved %s #%d %s-%s", p, p.ID, from, p.Square)
}

func (o logObserver) PieceRemoved(p chess.Piece) {
	o.cfg.Logf(config.Commentary, "removed %s #%d from %s", p, p.ID, p.Square)
}
