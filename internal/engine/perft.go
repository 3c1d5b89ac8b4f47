package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Each promotion choice counts as a separate move. The board is not
// modified and its observer sees nothing.
func Perft(board *chess.Board, depth int) uint64 {
	return perft(board.Copy(), depth)
}

func perft(board *chess.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, p := range board.Pieces(board.SideToMove()) {
		for _, to := range LegalMoves(board, p.ID) {
			state := board.SaveState()
			fx := ApplyMove(board, p.Square, to)

			if !fx.Promotion {
				board.AdvanceTurn()
				nodes += perft(board, depth-1)
				board.RestoreState(state)
				continue
			}

			for _, kind := range chess.PromotionChoices {
				promoted := board.SaveState()
				Promote(board, to, kind)
				board.AdvanceTurn()
				nodes += perft(board, depth-1)
				board.RestoreState(promoted)
			}
			board.RestoreState(state)
		}
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by the move in
// coordinate form.
func Divide(board *chess.Board, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth < 1 {
		return result
	}

	b := board.Copy()
	for _, m := range AllLegalMoves(b, b.SideToMove()) {
		state := b.SaveState()
		ApplyMove(b, m.From, m.To)
		if m.Promotion != chess.Empty {
			Promote(b, m.To, m.Promotion)
		}
		b.AdvanceTurn()
		result[m.String()] = perft(b, depth-1)
		b.RestoreState(state)
	}
	return result
}
