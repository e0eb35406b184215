package mixer

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/chessmixer/choose"
	"github.com/chessmixer/game"
	"github.com/chessmixer/score"
	"github.com/chessmixer/search"
)

// An Agent picks moves by composing a search strategy, a position scorer and
// a move selector. Any of the three may be replaced between calls.
type Agent struct {
	name string

	mu        sync.RWMutex
	evaluator search.Evaluator
	scorer    score.Scorer
	chooser   choose.Chooser

	// Statistics
	stats sync.Mutex
	Wins  int
	Loss  int
	Draw  int
}

func NewAgent(name string, e search.Evaluator, s score.Scorer, c choose.Chooser) *Agent {
	return &Agent{
		name:      name,
		evaluator: e,
		scorer:    s,
		chooser:   c,
	}
}

// NewAgentFromConfig builds the strategies named in conf.
func NewAgentFromConfig(conf Config) (*Agent, error) {
	if err := conf.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid agent config")
	}
	e, err := NewEvaluator(conf.SearchConf)
	if err != nil {
		return nil, err
	}
	s, err := NewScorer(conf.ScoreConf)
	if err != nil {
		return nil, err
	}
	c, err := NewChooser(conf.ChooserConf)
	if err != nil {
		return nil, err
	}
	return NewAgent(conf.Name, e, s, c), nil
}

func (a *Agent) Name() string { return a.name }

func (a *Agent) strategies() (search.Evaluator, score.Scorer, choose.Chooser) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.evaluator, a.scorer, a.chooser
}

// Evaluate scores every legal move of s with the current search strategy.
func (a *Agent) Evaluate(s game.State) []search.ScoredMove {
	e, sc, _ := a.strategies()
	return e.EvalMoves(s, sc)
}

// Search returns the move the agent would play in s. It returns false when
// there is no legal move, i.e. the game is over.
func (a *Agent) Search(s game.State) (game.Move, bool) {
	e, sc, c := a.strategies()
	scored := e.EvalMoves(s, sc)
	best, ok := pick(c, scored)
	if ok {
		log.Debug().
			Str("agent", a.name).
			Str("fen", s.FEN()).
			Int("candidates", len(scored)).
			Stringer("move", best).
			Msg("picked move")
	}
	return best, ok
}

// Choose applies the agent's move selector to moves already scored, such as
// the output of Evaluate.
func (a *Agent) Choose(scored []search.ScoredMove) (game.Move, bool) {
	_, _, c := a.strategies()
	return pick(c, scored)
}

func pick(c choose.Chooser, scored []search.ScoredMove) (game.Move, bool) {
	if len(scored) == 0 {
		return game.NoMove, false
	}
	moves := lo.Map(scored, func(m search.ScoredMove, _ int) game.Move { return m.Move })
	weights := lo.Map(scored, func(m search.ScoredMove, _ int) float64 { return m.Score })
	best, ok := choose.Pick(c, moves, weights)
	if !ok {
		return game.NoMove, false
	}
	return best, true
}

// SetEvaluator replaces the search strategy. Calls already in progress keep
// the strategy they started with.
func (a *Agent) SetEvaluator(e search.Evaluator) {
	a.mu.Lock()
	a.evaluator = e
	a.mu.Unlock()
}

func (a *Agent) SetScorer(s score.Scorer) {
	a.mu.Lock()
	a.scorer = s
	a.mu.Unlock()
}

func (a *Agent) SetChooser(c choose.Chooser) {
	a.mu.Lock()
	a.chooser = c
	a.mu.Unlock()
}

// Stats returns the agent's win, loss and draw counts.
func (a *Agent) Stats() (wins, loss, draw int) {
	a.stats.Lock()
	defer a.stats.Unlock()
	return a.Wins, a.Loss, a.Draw
}

func (a *Agent) record(r Outcome) {
	a.stats.Lock()
	switch r {
	case Win:
		a.Wins++
	case Loss:
		a.Loss++
	default:
		a.Draw++
	}
	a.stats.Unlock()
}

func (a *Agent) resetStats() {
	a.stats.Lock()
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
	a.stats.Unlock()
}
