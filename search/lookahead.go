package search

import (
	"github.com/chessmixer/game"
	"github.com/chessmixer/score"
)

// Lookahead scores each move by the static score of the position it leads
// to. It never recurses.
type Lookahead struct{}

func (Lookahead) EvalMoves(s game.State, scorer score.Scorer) []ScoredMove {
	sign := perspective(s.Turn())
	moves := SortedMoves(s)

	retVal := make([]ScoredMove, 0, len(moves))
	for _, m := range moves {
		retVal = append(retVal, ScoredMove{Move: m, Score: sign * scorer.Score(s.Apply(m))})
	}
	return retVal
}
