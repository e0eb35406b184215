package search

import (
	"github.com/chessmixer/game"
	"github.com/chessmixer/score"
)

// Negamax is a full-width fixed-depth search. It visits every node, so its
// cost is the branching factor to the power of Depth.
type Negamax struct {
	Depth int
	// DecisiveScore is the value of a lost position. Zero means DefaultDecisiveScore.
	DecisiveScore float64
	Tracer        Tracer
}

func NewNegamax(depth int) Negamax {
	return Negamax{Depth: depth, DecisiveScore: DefaultDecisiveScore}
}

func (n Negamax) EvalMoves(s game.State, scorer score.Scorer) []ScoredMove {
	w := newWalker(scorer, n.DecisiveScore, n.Tracer)
	depth := childDepth(n.Depth)
	moves := SortedMoves(s)

	retVal := make([]ScoredMove, 0, len(moves))
	for _, m := range moves {
		w.push(m)
		retVal = append(retVal, ScoredMove{Move: m, Score: -w.negamax(s.Apply(m), depth)})
		w.pop()
	}
	if len(retVal) > 0 {
		w.visit(retVal[argmax(retVal)].Score, false)
	}
	return retVal
}

// Value returns the value of s for its side to move, searched to Depth.
func (n Negamax) Value(s game.State, scorer score.Scorer) float64 {
	return newWalker(scorer, n.DecisiveScore, n.Tracer).negamax(s, n.Depth)
}

func (w *walker) negamax(s game.State, depth int) float64 {
	if v, ok := w.terminal(s); ok {
		w.visit(v, false)
		return v
	}
	if depth <= 0 {
		v := w.leaf(s)
		w.visit(v, false)
		return v
	}

	best := negInf
	for _, m := range SortedMoves(s) {
		w.push(m)
		v := -w.negamax(s.Apply(m), depth-1)
		w.pop()
		// NaN never compares greater, so a malformed score cannot win
		if v > best {
			best = v
		}
	}
	w.visit(best, false)
	return best
}
