package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// playSession drives one game from a stream of coordinate moves.
type playSession struct {
	cfg      *config.Config
	game     *engine.Game
	played   int
	rejected int
}

// newPlaySession starts a game from fen, or from the initial position when
// fen is empty. At commentary verbosity every piece event is logged.
func newPlaySession(cfg *config.Config, fen string) (*playSession, error) {
	var opts []engine.Option
	if cfg.Verbosity >= config.Commentary {
		opts = append(opts, engine.WithObserver(logObserver{cfg: cfg}))
	}

	s := &playSession{cfg: cfg}
	if fen == "" {
		s.game = engine.NewGame(opts...)
		return s, nil
	}

	g, err := engine.NewGameFromFEN(fen, opts...)
	if err != nil {
		return nil, err
	}
	s.game = g
	return s, nil
}

// runPlay plays the moves read from r, then writes the final position to
// the output and, if svgPath is set, an SVG drawing of it.
func runPlay(cfg *config.Config, r io.Reader, fen, svgPath string) error {
	s, err := newPlaySession(cfg, fen)
	if err != nil {
		return err
	}
	if err := s.play(r); err != nil {
		return err
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	if err := w.WritePosition(s.position()); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	if svgPath != "" {
		if err := s.writeSVGFile(svgPath); err != nil {
			return err
		}
	}

	cfg.Logf(config.Summary, "%d moves played, %d rejected, %s",
		s.played, s.rejected, s.game.Status())
	return nil
}

// play reads whitespace-separated tokens line by line. Text after '#' is a
// comment. Reading stops when the game is over.
func (s *playSession) play(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		for _, tok := range strings.Fields(line) {
			err := s.handle(strings.ToLower(tok))
			if errors.Is(err, chesserrors.ErrGameOver) {
				s.cfg.Logf(config.Summary, "game over, ignoring %s and the rest", tok)
				return nil
			}
			if err != nil {
				s.rejected++
				s.cfg.Logf(config.Summary, "rejected %s: %v", tok, err)
			}
		}
	}
	return scanner.Err()
}

// handle applies one token: a move such as "e2e4", a move with its
// promotion choice such as "e7e8q", or a lone promotion letter answering a
// pending promotion.
func (s *playSession) handle(tok string) error {
	if _, pending := s.game.PendingPromotion(); pending && len(tok) == 1 {
		return s.promote(tok[0])
	}
	if len(tok) != 4 && len(tok) != 5 {
		return fmt.Errorf("not a coordinate move: %w", chesserrors.ErrIllegalMove)
	}

	from, err := chess.ParseSquare(tok[:2])
	if err != nil {
		return err
	}
	to, err := chess.ParseSquare(tok[2:4])
	if err != nil {
		return err
	}

	res, err := s.game.AttemptMove(from, to)
	if err != nil {
		return err
	}
	if res == engine.MovedPendingPromotion {
		if len(tok) == 5 {
			if err := s.promote(tok[4]); err == nil {
				return nil
			}
			s.cfg.Logf(config.Summary, "%c is not a promotion choice, pawn on %s awaits one", tok[4], to)
			return nil
		}
		s.cfg.Logf(config.Commentary, "pawn on %s awaits a promotion choice", to)
		return nil
	}
	if len(tok) == 5 {
		s.cfg.Logf(config.Summary, "%s is not a promotion, ignoring %c", tok[:4], tok[4])
	}
	s.moved(tok[:4])
	return nil
}

// promote supplies the promotion choice given as a piece letter.
func (s *playSession) promote(letter byte) error {
	sq, _ := s.game.PendingPromotion()
	if _, err := s.game.SupplyPromotionChoice(chess.KindFromLetter(letter)); err != nil {
		return err
	}
	fx, _ := s.game.LastMove()
	s.moved(fmt.Sprintf("%s%s%c", fx.Piece.Square, sq, letter))
	return nil
}

// moved records a completed move and logs the status it leads to.
func (s *playSession) moved(move string) {
	s.played++
	status := s.game.Status()
	switch {
	case status.IsOver():
		s.cfg.Logf(config.Summary, "%d. %s %s", s.played, move, status)
	case status.InCheck:
		s.cfg.Logf(config.Summary, "%d. %s check", s.played, move)
	default:
		s.cfg.Logf(config.Commentary, "%d. %s", s.played, move)
	}
}

// position describes the current state of the game for the writers.
func (s *playSession) position() output.Position {
	board := s.game.Board()
	p := output.Position{
		FEN:    s.game.FEN(),
		Board:  board,
		Status: s.game.Status(),
	}
	if _, pending := s.game.PendingPromotion(); !pending {
		moves := engine.AllLegalMoves(board, board.SideToMove())
		p.MoveCount = len(moves)
		if s.cfg.Analysis.ListMoves {
			p.Moves = moves
		}
	}
	if fx, ok := s.game.LastMove(); ok {
		p.LastMove = &fx
	}
	return p
}

// writeSVGFile draws the current board to path.
func (s *playSession) writeSVGFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := output.NewSVGWriter(file, s.cfg).WritePosition(s.position()); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
