package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board represents a chess board with all state needed for the game.
//
// Pieces live in a single arena indexed by PieceID; the grid holds ids and
// the per-colour rosters are derived from the arena on demand, so a piece's
// square, its grid slot and its roster membership cannot drift apart.
type Board struct {
	// Arena of every piece ever placed; pieces[id-1] is the piece with that id.
	pieces []Piece

	// grid[rank][file] holds the id of the occupant, or NoPiece.
	grid [BoardSize][BoardSize]PieceID

	// Handles to the kings, indexed by Colour.Index().
	kings [2]PieceID

	// Is en passant capture possible? If so EPTarget is the square a pawn
	// skipped over and EPTurn the turn on which it did so. The capture is
	// valid on turn EPTurn+1 only.
	EnPassant bool
	EPTarget  Square
	EPTurn    int

	// The turn counter: 1 for White's first move, 2 for Black's reply, ...
	Turn int

	observer Observer
}

// NewBoard creates a new empty board with White to move on turn 1.
func NewBoard() *Board {
	return &Board{
		Turn:     1,
		observer: NopObserver{},
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, colour := range []Colour{White, Black} {
		for file, kind := range backRank {
			b.Place(kind, colour, Sq(HomeRank(colour), file))
		}
		for file := 0; file < BoardSize; file++ {
			b.Place(Pawn, colour, Sq(PawnRank(colour), file))
		}
	}
}

// Clear removes every piece and resets the counters.
func (b *Board) Clear() {
	b.clear()
}

func (b *Board) clear() {
	b.pieces = b.pieces[:0]
	b.grid = [BoardSize][BoardSize]PieceID{}
	b.kings = [2]PieceID{}
	b.EnPassant = false
	b.EPTarget = Square{}
	b.EPTurn = 0
	b.Turn = 1
}

// SetObserver installs the presentation observer. A nil observer disables
// notifications.
func (b *Board) SetObserver(o Observer) {
	if o == nil {
		o = NopObserver{}
	}
	b.observer = o
}

// mustInBounds panics with ErrOutOfBounds: callers validate coordinates
// before reaching the board.
func mustInBounds(sq Square, op string) {
	if !sq.InBounds() {
		panic(fmt.Errorf("%s %v: %w", op, sq, errors.ErrOutOfBounds))
	}
}

// Place creates a piece of the given kind and colour on sq and returns its
// id. Any previous occupant is detached. The piece starts unmoved.
func (b *Board) Place(kind Kind, colour Colour, sq Square) PieceID {
	mustInBounds(sq, "place")
	if prev := b.grid[sq.Rank][sq.File]; prev != NoPiece {
		b.detach(prev)
	}

	id := PieceID(len(b.pieces) + 1)
	b.pieces = append(b.pieces, Piece{ID: id, Kind: kind, Colour: colour, Square: sq})
	b.grid[sq.Rank][sq.File] = id
	if kind == King {
		b.kings[colour.Index()] = id
	}
	b.observer.PiecePlaced(b.pieces[id-1])
	return id
}

// Piece returns the record for id. NoPiece and unknown ids yield an empty
// record.
func (b *Board) Piece(id PieceID) Piece {
	if id <= NoPiece || int(id) > len(b.pieces) {
		return Piece{}
	}
	return b.pieces[id-1]
}

// Occupant returns the piece on sq, or an empty record for an empty square.
// An off-board square is a caller error and panics with ErrOutOfBounds.
func (b *Board) Occupant(sq Square) Piece {
	mustInBounds(sq, "occupant")
	id := b.grid[sq.Rank][sq.File]
	if id == NoPiece {
		return Piece{Square: sq}
	}
	return b.pieces[id-1]
}

// IsOccupied reports whether a piece stands on sq.
//
// Off-board squares report true. Geometry loops rely on this to use one
// "stop here" predicate for both blockers and the board edge.
func (b *Board) IsOccupied(sq Square) bool {
	if !sq.InBounds() {
		return true
	}
	return b.grid[sq.Rank][sq.File] != NoPiece
}

// CommitMove relocates the piece on from to to. A piece standing on to is
// removed permanently when removeCaptured is set; otherwise it is only
// detached from the rosters and stays addressable by id, which the
// tentative-move cycle needs to restore it. No legality checking happens
// here. It returns the id of the captured piece, or NoPiece.
func (b *Board) CommitMove(from, to Square, removeCaptured bool) PieceID {
	mustInBounds(from, "commit from")
	mustInBounds(to, "commit to")

	id := b.grid[from.Rank][from.File]
	if id == NoPiece {
		panic(fmt.Errorf("commit %v-%v: no piece on source square", from, to))
	}

	captured := b.grid[to.Rank][to.File]
	if captured != NoPiece {
		if removeCaptured {
			b.RemovePiece(captured)
		} else {
			b.RemoveFromRosters(captured)
		}
	}

	b.grid[from.Rank][from.File] = NoPiece
	b.grid[to.Rank][to.File] = id
	b.pieces[id-1].Square = to

	if removeCaptured {
		b.observer.PieceMoved(b.pieces[id-1], from)
	}
	return captured
}

// MarkMoved sets the piece's has-moved flag.
func (b *Board) MarkMoved(id PieceID) {
	if id > NoPiece && int(id) <= len(b.pieces) {
		b.pieces[id-1].Moved = true
	}
}

// SetMoved sets or clears the piece's has-moved flag (position setup).
func (b *Board) SetMoved(id PieceID, moved bool) {
	if id > NoPiece && int(id) <= len(b.pieces) {
		b.pieces[id-1].Moved = moved
	}
}

// SetEnPassant records target as capturable en passant on the turn after
// turn.
func (b *Board) SetEnPassant(target Square, turn int) {
	mustInBounds(target, "en passant")
	b.EnPassant = true
	b.EPTarget = target
	b.EPTurn = turn
}

// ClearEnPassant forgets the en passant record.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPTarget = Square{}
	b.EPTurn = 0
}

// EnPassantValid reports whether the recorded target may be captured on the
// current turn.
func (b *Board) EnPassantValid() bool {
	return b.EnPassant && b.Turn == b.EPTurn+1
}

// RemovePiece takes the piece out of play and tells the observer to delete
// its display artifact.
func (b *Board) RemovePiece(id PieceID) {
	if !b.detach(id) {
		return
	}
	b.observer.PieceRemoved(b.pieces[id-1])
}

// RemoveFromRosters detaches the piece from the rosters and the grid without
// notifying the observer. The record stays in the arena.
func (b *Board) RemoveFromRosters(id PieceID) {
	b.detach(id)
}

func (b *Board) detach(id PieceID) bool {
	if id <= NoPiece || int(id) > len(b.pieces) {
		return false
	}
	p := &b.pieces[id-1]
	if p.Captured {
		return false
	}
	p.Captured = true
	if b.grid[p.Square.Rank][p.Square.File] == id {
		b.grid[p.Square.Rank][p.Square.File] = NoPiece
	}
	return true
}

// King returns the king of the given colour, or an empty record if the
// position has none.
func (b *Board) King(colour Colour) Piece {
	if colour == NoColour {
		return Piece{}
	}
	king := b.Piece(b.kings[colour.Index()])
	if king.Captured {
		return Piece{}
	}
	return king
}

// Pieces returns the roster of the colour: every piece of that colour still
// on the board, in arena order.
func (b *Board) Pieces(colour Colour) []Piece {
	roster := make([]Piece, 0, 16)
	for _, p := range b.pieces {
		if !p.Captured && p.Colour == colour {
			roster = append(roster, p)
		}
	}
	return roster
}

// AllPieces returns every piece still on the board.
func (b *Board) AllPieces() []Piece {
	all := make([]Piece, 0, len(b.pieces))
	for _, p := range b.pieces {
		if !p.Captured {
			all = append(all, p)
		}
	}
	return all
}

// SideToMove returns the colour whose turn it is.
func (b *Board) SideToMove() Colour {
	return SideToMove(b.Turn)
}

// AdvanceTurn ends the current turn.
func (b *Board) AdvanceTurn() {
	b.Turn++
}

// Copy creates a deep copy of the board. The copy has no observer.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.pieces = append([]Piece(nil), b.pieces...)
	newBoard.observer = NopObserver{}
	return newBoard
}

// BoardState captures all mutable board state for save/restore operations.
// Restoring is a single assignment of the arena, grid and counters, so a
// tentative move is undone without touching individual pieces.
type BoardState struct {
	pieces    []Piece
	grid      [BoardSize][BoardSize]PieceID
	kings     [2]PieceID
	EnPassant bool
	EPTarget  Square
	EPTurn    int
	Turn      int
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{
		pieces:    append([]Piece(nil), b.pieces...),
		grid:      b.grid,
		kings:     b.kings,
		EnPassant: b.EnPassant,
		EPTarget:  b.EPTarget,
		EPTurn:    b.EPTurn,
		Turn:      b.Turn,
	}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.pieces = append(b.pieces[:0], s.pieces...)
	b.grid = s.grid
	b.kings = s.kings
	b.EnPassant = s.EnPassant
	b.EPTarget = s.EPTarget
	b.EPTurn = s.EPTurn
	b.Turn = s.Turn
}
