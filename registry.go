package mixer

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/chessmixer/choose"
	"github.com/chessmixer/score"
	"github.com/chessmixer/search"
)

// Evaluators builds search strategies by name.
var Evaluators = map[string]func(search.Config) search.Evaluator{
	"lookahead": func(search.Config) search.Evaluator { return search.Lookahead{} },
	"negamax": func(c search.Config) search.Evaluator {
		return search.Negamax{Depth: c.Depth, DecisiveScore: c.DecisiveScore}
	},
	"alphabeta": func(c search.Config) search.Evaluator {
		return search.AlphaBeta{Depth: c.Depth, DecisiveScore: c.DecisiveScore}
	},
}

// Scorers builds position scorers by name.
var Scorers = map[string]func(score.Config) score.Scorer{
	"material": func(c score.Config) score.Scorer { return score.Material{Values: c.PieceValues} },
}

// Choosers builds move selectors by name.
var Choosers = map[string]func(choose.Config) choose.Chooser{
	"greedy": func(choose.Config) choose.Chooser { return choose.Greedy{} },
	"stochastic": func(c choose.Config) choose.Chooser {
		if c.Seed == 0 {
			return choose.NewStochastic()
		}
		return choose.NewStochastic(choose.WithSeed(c.Seed))
	},
}

// Titles are the human-readable names of the registered strategies.
var Titles = map[string]string{
	"lookahead":  "1 Move Lookahead",
	"negamax":    "Negamax",
	"alphabeta":  "Negamax with Alpha-Beta Pruning",
	"material":   "Pawn Difference Score",
	"greedy":     "Greedy",
	"stochastic": "Stochastic",
}

func NewEvaluator(c search.Config) (search.Evaluator, error) {
	f, ok := Evaluators[c.Algorithm]
	if !ok {
		return nil, errors.Errorf("unknown search algorithm %q, want one of %v", c.Algorithm, names(Evaluators))
	}
	return f(c), nil
}

func NewScorer(c score.Config) (score.Scorer, error) {
	f, ok := Scorers[c.Function]
	if !ok {
		return nil, errors.Errorf("unknown score function %q, want one of %v", c.Function, names(Scorers))
	}
	return f(c), nil
}

func NewChooser(c choose.Config) (choose.Chooser, error) {
	f, ok := Choosers[c.Policy]
	if !ok {
		return nil, errors.Errorf("unknown chooser policy %q, want one of %v", c.Policy, names(Choosers))
	}
	return f(c), nil
}

func names[T any](m map[string]T) []string {
	retVal := make([]string, 0, len(m))
	for k := range m {
		retVal = append(retVal, k)
	}
	sort.Strings(retVal)
	return retVal
}
