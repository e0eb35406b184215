package mixer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessmixer/choose"
	"github.com/chessmixer/game"
	"github.com/chessmixer/score"
	"github.com/chessmixer/search"
)

const backRankMate = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"

// countingEvaluator scores every move 0 and counts its calls.
type countingEvaluator struct {
	mu    sync.Mutex
	calls int
}

func (e *countingEvaluator) EvalMoves(s game.State, _ score.Scorer) []search.ScoredMove {
	e.mu.Lock()
	e.calls++
	e.mu.Unlock()
	var retVal []search.ScoredMove
	for _, m := range s.ValidMoves() {
		retVal = append(retVal, search.ScoredMove{Move: m})
	}
	return retVal
}

func newTestAgent(name string) *Agent {
	return NewAgent(name, search.NewAlphaBeta(2), score.NewMaterial(), choose.Greedy{})
}

func TestAgentFindsMate(t *testing.T) {
	a := newTestAgent("A")
	s := game.MustFEN(backRankMate)

	for i := 0; i < 3; i++ {
		m, ok := a.Search(s)
		require.True(t, ok)
		assert.Equal(t, "a1a8", m.String())
	}
}

func TestAgentNoMoves(t *testing.T) {
	a := newTestAgent("A")
	mated, err := game.Play(game.NewChess(), "f2f3", "e7e5", "g2g4", "d8h4")
	require.NoError(t, err)

	m, ok := a.Search(mated)
	assert.False(t, ok)
	assert.Equal(t, game.NoMove, m)
	assert.Empty(t, a.Evaluate(mated))
}

func TestAgentStochastic(t *testing.T) {
	// every alternative is worth a thousand less than the mate, so its
	// probability underflows to zero
	a := NewAgent("S", search.NewNegamax(2), score.NewMaterial(), choose.NewStochastic(choose.WithSeed(7)))
	s := game.MustFEN(backRankMate)
	for i := 0; i < 20; i++ {
		m, ok := a.Search(s)
		require.True(t, ok)
		assert.Equal(t, "a1a8", m.String())
	}
}

func TestAgentSwapStrategies(t *testing.T) {
	a := newTestAgent("A")
	s := game.NewChess()

	e := new(countingEvaluator)
	a.SetEvaluator(e)
	m, ok := a.Search(s)
	require.True(t, ok)
	assert.Equal(t, 1, e.calls)
	// all ties: greedy takes the first candidate
	assert.Equal(t, s.ValidMoves()[0], m)

	a.SetEvaluator(search.Lookahead{})
	a.SetScorer(score.Material{Values: score.PieceValues{Pawn: 2, Knight: 6, Bishop: 7, Rook: 10, Queen: 18}})
	a.SetChooser(choose.NewStochastic(choose.WithSeed(1)))
	s2, err := game.Play(s, "e2e4", "d7d5")
	require.NoError(t, err)
	eval := a.Evaluate(s2)
	assert.Len(t, eval, len(s2.ValidMoves()))
	assert.Equal(t, 1, e.calls, "replaced evaluator is no longer used")
	for _, sm := range eval {
		if sm.Move.String() == "e4d5" {
			assert.Equal(t, 2.0, sm.Score)
		}
	}
}

func TestNewAgentFromConfig(t *testing.T) {
	conf := DefaultConfig()
	a, err := NewAgentFromConfig(conf)
	require.NoError(t, err)
	assert.Equal(t, conf.Name, a.Name())

	m, ok := a.Search(game.MustFEN(backRankMate))
	require.True(t, ok)
	assert.Equal(t, "a1a8", m.String())

	conf.SearchConf.Algorithm = "mcts"
	_, err = NewAgentFromConfig(conf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mcts")
}

func TestRegistry(t *testing.T) {
	for name := range Evaluators {
		conf := search.DefaultConfig()
		conf.Algorithm = name
		e, err := NewEvaluator(conf)
		require.NoError(t, err, name)
		assert.NotNil(t, e)
		assert.NotEmpty(t, Titles[name], name)
	}
	for name := range Scorers {
		assert.NotEmpty(t, Titles[name], name)
	}
	for name := range Choosers {
		c, err := NewChooser(choose.Config{Policy: name, Seed: 3})
		require.NoError(t, err, name)
		assert.NotNil(t, c)
		assert.NotEmpty(t, Titles[name], name)
	}

	// each pruning preset gets its own strategy
	e, err := NewEvaluator(search.Config{Algorithm: "alphabeta", Depth: 3})
	require.NoError(t, err)
	assert.IsType(t, search.AlphaBeta{}, e)

	_, err = NewScorer(score.Config{Function: "mobility"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "material")
	_, err = NewChooser(choose.Config{Policy: "random"})
	assert.Error(t, err)
}

func TestAgentChoose(t *testing.T) {
	a := newTestAgent("A")
	_, ok := a.Choose(nil)
	assert.False(t, ok)

	s := game.NewChess()
	moves := s.ValidMoves()
	m, ok := a.Choose([]search.ScoredMove{{Move: moves[0], Score: 1}, {Move: moves[1], Score: 3}, {Move: moves[2], Score: -2}})
	require.True(t, ok)
	assert.Equal(t, moves[1], m)
}
