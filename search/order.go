package search

import (
	"github.com/notnil/chess"
	"github.com/samber/lo"

	"github.com/chessmixer/game"
)

// SortedMoves returns every legal move of s exactly once, forcing moves
// first so that alpha-beta finds good bounds early. The tiers are:
//  1. captures of a piece giving check,
//  2. promotions,
//  3. other captures, en passant included,
//  4. quiet moves.
//
// Within a tier moves keep their generation order.
func SortedMoves(s game.State) []game.Move {
	moves := s.ValidMoves()
	checkers := s.Checkers()

	retVal := make([]game.Move, 0, len(moves))
	promotions := make([]game.Move, 0, 4)
	captures := make([]game.Move, 0, 8)
	quiet := make([]game.Move, 0, len(moves))

	for _, m := range moves {
		switch {
		case lo.Contains(checkers, m.To):
			retVal = append(retVal, m)
		case m.Promo != chess.NoPieceType:
			promotions = append(promotions, m)
		case s.IsCapture(m):
			captures = append(captures, m)
		default:
			quiet = append(quiet, m)
		}
	}

	retVal = append(retVal, promotions...)
	retVal = append(retVal, captures...)
	return append(retVal, quiet...)
}
