package search

import (
	"math"

	"github.com/chessmixer/game"
	"github.com/chessmixer/score"
)

// AlphaBeta is Negamax with alpha-beta pruning. For every root move it
// returns exactly the score Negamax would; only the number of visited nodes
// differs.
type AlphaBeta struct {
	Depth int
	// DecisiveScore is the value of a lost position. Zero means DefaultDecisiveScore.
	DecisiveScore float64
	Tracer        Tracer
}

func NewAlphaBeta(depth int) AlphaBeta {
	return AlphaBeta{Depth: depth, DecisiveScore: DefaultDecisiveScore}
}

// EvalMoves searches each root move with a full window, so that every score
// is exact rather than a bound.
func (a AlphaBeta) EvalMoves(s game.State, scorer score.Scorer) []ScoredMove {
	w := newWalker(scorer, a.DecisiveScore, a.Tracer)
	depth := childDepth(a.Depth)
	moves := SortedMoves(s)

	retVal := make([]ScoredMove, 0, len(moves))
	for _, m := range moves {
		w.push(m)
		retVal = append(retVal, ScoredMove{Move: m, Score: -w.alphabeta(s.Apply(m), depth, negInf, math.Inf(1))})
		w.pop()
	}
	if len(retVal) > 0 {
		w.visit(retVal[argmax(retVal)].Score, false)
	}
	return retVal
}

// Value returns the value of s for its side to move, searched to Depth.
func (a AlphaBeta) Value(s game.State, scorer score.Scorer) float64 {
	return newWalker(scorer, a.DecisiveScore, a.Tracer).alphabeta(s, a.Depth, negInf, math.Inf(1))
}

// alphabeta is fail-soft: when it cuts off, the returned value is a bound
// that the caller will not accept anyway.
func (w *walker) alphabeta(s game.State, depth int, alpha, beta float64) float64 {
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
	moves := SortedMoves(s)
	var pruned bool
	for i, m := range moves {
		w.push(m)
		v := -w.alphabeta(s.Apply(m), depth-1, -beta, -alpha)
		w.pop()
		if v > best {
			best = v
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			pruned = i < len(moves)-1
			break
		}
	}
	w.visit(best, pruned)
	return best
}
