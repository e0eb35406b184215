package search

import (
	"sort"
)

// byScore is a sortable list of scored moves. It sorts the list with best score first.
type byScore []ScoredMove

func (l byScore) Len() int           { return len(l) }
func (l byScore) Less(i, j int) bool { return l[i].Score > l[j].Score }
func (l byScore) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }

// SortByScore returns a copy of scored ordered from best to worst. Equal
// scores keep their search order.
func SortByScore(scored []ScoredMove) []ScoredMove {
	retVal := append([]ScoredMove(nil), scored...)
	sort.Stable(byScore(retVal))
	return retVal
}

// argmax returns the index of the first maximal score, skipping NaN.
func argmax(a []ScoredMove) int {
	var retVal int
	var max = negInf
	for i := range a {
		if a[i].Score > max {
			max = a[i].Score
			retVal = i
		}
	}
	return retVal
}

// Traced returns e reporting its nodes to t. Lookahead does not recurse and is
// returned unchanged.
func Traced(e Evaluator, t Tracer) Evaluator {
	switch e := e.(type) {
	case Negamax:
		e.Tracer = t
		return e
	case AlphaBeta:
		e.Tracer = t
		return e
	}
	return e
}
