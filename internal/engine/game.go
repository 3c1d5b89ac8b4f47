package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Phase is the state of the turn machine.
type Phase int

const (
	// AwaitingSelection waits for the side to move to pick a piece.
	AwaitingSelection Phase = iota
	// AwaitingDestination has a piece selected and waits for a destination.
	AwaitingDestination
	// AwaitingPromotionChoice has a pawn parked on the last rank. No move
	// is accepted until the choice is supplied.
	AwaitingPromotionChoice
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case AwaitingSelection:
		return "AwaitingSelection"
	case AwaitingDestination:
		return "AwaitingDestination"
	case AwaitingPromotionChoice:
		return "AwaitingPromotionChoice"
	default:
		return "Unknown"
	}
}

// MoveResult is the outcome of a move attempt.
type MoveResult int

const (
	Illegal MoveResult = iota
	Moved
	MovedPendingPromotion
)

// String returns the string representation of a move result.
func (r MoveResult) String() string {
	switch r {
	case Illegal:
		return "Illegal"
	case Moved:
		return "Moved"
	case MovedPendingPromotion:
		return "MovedPendingPromotion"
	default:
		return "Unknown"
	}
}

// StatusKind classifies the position for the side to move.
type StatusKind int

const (
	InProgress StatusKind = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status kind.
func (k StatusKind) String() string {
	switch k {
	case InProgress:
		return "InProgress"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Unknown"
	}
}

// Status is the game status for the side to move.
type Status struct {
	Kind    StatusKind
	Winner  chess.Colour // Set for Checkmate only
	InCheck bool         // The side to move is in check

	// InsufficientMaterial reports that neither side can force mate. It does
	// not end the game; only bare kings do, as a Stalemate.
	InsufficientMaterial bool
}

// IsOver reports whether the game has ended.
func (s Status) IsOver() bool {
	return s.Kind != InProgress
}

// String returns e.g. "Checkmate(Black)" or "InProgress".
func (s Status) String() string {
	if s.Kind == Checkmate {
		return fmt.Sprintf("Checkmate(%s)", s.Winner)
	}
	return s.Kind.String()
}

// Option configures a Game.
type Option func(*Game)

// WithObserver installs an observer that sees every permanent piece event,
// including the initial placement.
func WithObserver(o chess.Observer) Option {
	return func(g *Game) {
		g.observer = o
	}
}

// Game drives one game of chess: it owns the board, enforces turn order,
// and parks a promoting pawn until its replacement kind is chosen.
type Game struct {
	board    *chess.Board
	observer chess.Observer
	phase    Phase
	selected chess.Square // Valid in AwaitingDestination
	pending  chess.Square // Valid in AwaitingPromotionChoice
	parked   MoveEffects  // The move that parked the pawn
	last     *MoveEffects
}

// NewGame creates a game in the standard starting position, White to move.
func NewGame(opts ...Option) *Game {
	g := newGame(opts)
	g.board.SetupInitialPosition()
	return g
}

// NewGameFromFEN creates a game in the position described by fen.
func NewGameFromFEN(fen string, opts ...Option) (*Game, error) {
	g := newGame(opts)
	if err := SetupFromFEN(g.board, fen); err != nil {
		return nil, err
	}
	return g, nil
}

func newGame(opts []Option) *Game {
	g := &Game{board: chess.NewBoard()}
	for _, opt := range opts {
		opt(g)
	}
	g.board.SetObserver(g.observer)
	return g
}

// Reset discards the game and starts again from the initial position. The
// observer sees every piece of the old position removed first.
func (g *Game) Reset() {
	for _, p := range g.board.AllPieces() {
		g.board.RemovePiece(p.ID)
	}
	g.board.SetupInitialPosition()
	g.phase = AwaitingSelection
	g.parked = MoveEffects{}
	g.last = nil
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Turn returns the turn counter: odd turns are White's.
func (g *Game) Turn() int {
	return g.board.Turn
}

// SideToMove returns the colour whose turn it is.
func (g *Game) SideToMove() chess.Colour {
	return g.board.SideToMove()
}

// Phase returns the state of the turn machine.
func (g *Game) Phase() Phase {
	return g.phase
}

// Selected returns the selected square while awaiting a destination.
func (g *Game) Selected() (chess.Square, bool) {
	return g.selected, g.phase == AwaitingDestination
}

// PendingPromotion returns the square of the pawn awaiting promotion.
func (g *Game) PendingPromotion() (chess.Square, bool) {
	return g.pending, g.phase == AwaitingPromotionChoice
}

// LastMove returns the effects of the last completed move, if any.
func (g *Game) LastMove() (MoveEffects, bool) {
	if g.last == nil {
		return MoveEffects{}, false
	}
	return *g.last, true
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return BoardToFEN(g.board)
}

// LegalDestinations returns the legal destinations of the piece on sq,
// sorted by rank then file. The list is empty if the square is empty, holds
// a piece of the side not to move, or a promotion choice is pending. An
// off-board square panics with ErrOutOfBounds.
func (g *Game) LegalDestinations(sq chess.Square) []chess.Square {
	p := g.board.Occupant(sq)
	if p.IsEmpty() || p.Colour != g.board.SideToMove() || g.phase == AwaitingPromotionChoice {
		return nil
	}
	return LegalMoves(g.board, p.ID)
}

// Select picks the piece on sq as the one to move and returns its legal
// destinations. Selecting again replaces the selection.
func (g *Game) Select(sq chess.Square) ([]chess.Square, error) {
	if err := g.acceptingMoves(); err != nil {
		return nil, err
	}

	p := g.board.Occupant(sq)
	if p.IsEmpty() || p.Colour != g.board.SideToMove() {
		g.phase = AwaitingSelection
		return nil, &errors.MoveError{
			Err:  fmt.Errorf("no %s piece on square: %w", g.board.SideToMove(), errors.ErrIllegalMove),
			From: sq.String(),
			Turn: g.board.Turn,
		}
	}

	g.selected = sq
	g.phase = AwaitingDestination
	return LegalMoves(g.board, p.ID), nil
}

// MoveSelected moves the selected piece to to.
func (g *Game) MoveSelected(to chess.Square) (MoveResult, error) {
	if g.phase != AwaitingDestination {
		if err := g.acceptingMoves(); err != nil {
			return Illegal, err
		}
		return Illegal, &errors.MoveError{
			Err:  fmt.Errorf("no piece selected: %w", errors.ErrIllegalMove),
			To:   to.String(),
			Turn: g.board.Turn,
		}
	}
	return g.AttemptMove(g.selected, to)
}

// AttemptMove moves the piece on from to to if that is legal for the side
// to move.
//
// An illegal request returns Illegal with an error wrapping ErrIllegalMove
// and leaves the game unchanged. A legal move is committed with all its side
// effects; the turn then passes to the opponent, unless a pawn reached the
// last rank, in which case the result is MovedPendingPromotion and the turn
// stays open until SupplyPromotionChoice. Off-board squares panic with
// ErrOutOfBounds.
func (g *Game) AttemptMove(from, to chess.Square) (MoveResult, error) {
	mustInBounds(from)
	mustInBounds(to)

	if err := g.acceptingMoves(); err != nil {
		return Illegal, err
	}

	p := g.board.Occupant(from)
	if p.IsEmpty() || p.Colour != g.board.SideToMove() ||
		!slices.Contains(LegalMoves(g.board, p.ID), to) {
		return Illegal, g.illegal(p, from, to)
	}

	fx := ApplyMove(g.board, from, to)
	if fx.Promotion {
		g.phase = AwaitingPromotionChoice
		g.pending = to
		g.parked = fx
		return MovedPendingPromotion, nil
	}

	g.endTurn(fx)
	return Moved, nil
}

// SupplyPromotionChoice replaces the parked pawn with a piece of the chosen
// kind and ends the turn. Only Queen, Rook, Bishop and Knight are accepted;
// any other kind leaves the pawn parked.
func (g *Game) SupplyPromotionChoice(kind chess.Kind) (MoveResult, error) {
	if g.phase != AwaitingPromotionChoice {
		return Illegal, errors.ErrNoPromotionPending
	}
	if !kind.IsPromotionChoice() {
		return Illegal, &errors.MoveError{
			Err:   errors.ErrInvalidPromotionChoice,
			To:    g.pending.String(),
			Turn:  g.board.Turn,
			Piece: kind.String(),
		}
	}

	Promote(g.board, g.pending, kind)
	fx := g.parked
	fx.PromotedTo = kind
	g.endTurn(fx)
	return Moved, nil
}

// Status classifies the position for the side to move. While a promotion
// choice is pending the game is in progress. Two bare kings are a
// Stalemate.
func (g *Game) Status() Status {
	side := g.board.SideToMove()
	if g.phase == AwaitingPromotionChoice {
		return Status{Kind: InProgress}
	}

	inCheck := IsInCheck(g.board, side)
	if !HasLegalMoves(g.board, side) {
		if inCheck {
			return Status{Kind: Checkmate, Winner: side.Opposite(), InCheck: true}
		}
		return Status{Kind: Stalemate}
	}
	if OnlyKings(g.board) {
		return Status{Kind: Stalemate, InsufficientMaterial: true}
	}
	return Status{
		Kind:                 InProgress,
		InCheck:              inCheck,
		InsufficientMaterial: HasInsufficientMaterial(g.board),
	}
}

// Perft counts the leaf nodes of the legal move tree from the current
// position.
func (g *Game) Perft(depth int) uint64 {
	return Perft(g.board, depth)
}

// mustInBounds panics with ErrOutOfBounds for an off-board square.
func mustInBounds(sq chess.Square) {
	if !sq.InBounds() {
		panic(fmt.Errorf("square %v: %w", sq, errors.ErrOutOfBounds))
	}
}

func (g *Game) acceptingMoves() error {
	if g.phase == AwaitingPromotionChoice {
		return &errors.MoveError{
			Err:  errors.ErrPromotionPending,
			To:   g.pending.String(),
			Turn: g.board.Turn,
		}
	}
	if g.Status().IsOver() {
		return errors.ErrGameOver
	}
	return nil
}

func (g *Game) illegal(p chess.Piece, from, to chess.Square) error {
	e := &errors.MoveError{
		Err:  errors.ErrIllegalMove,
		From: from.String(),
		To:   to.String(),
		Turn: g.board.Turn,
	}
	if !p.IsEmpty() {
		e.Piece = p.Kind.String()
	}
	return e
}

func (g *Game) endTurn(fx MoveEffects) {
	g.board.AdvanceTurn()
	g.phase = AwaitingSelection
	g.last = &fx
}
