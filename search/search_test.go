package search

import (
	"math"
	"sort"
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessmixer/game"
	"github.com/chessmixer/score"
)

type scorerFunc func(game.State) float64

func (f scorerFunc) Score(s game.State) float64 { return f(s) }

func play(t *testing.T, ucis ...string) game.State {
	t.Helper()
	s, err := game.Play(game.NewChess(), ucis...)
	require.NoError(t, err)
	return s
}

var testFENs = []string{
	game.StartFEN,
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"4k3/1P6/8/8/8/8/3q4/4K2R w K - 0 1",
	"r3k3/1P6/8/7n/8/8/8/4K2R w K - 0 1",
	"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

func TestSortedMovesCoverage(t *testing.T) {
	var s game.State = game.NewChess()
	for _, uci := range []string{"d2d4", "e7e5", "d4e5", "d8g5", "e5e6", "g5c1"} {
		var err error
		s, err = game.Play(s, uci)
		require.NoError(t, err)

		sorted := SortedMoves(s)
		assert.ElementsMatch(t, s.ValidMoves(), sorted, "after %v", uci)
	}
	for _, fen := range testFENs {
		s := game.MustFEN(fen)
		assert.ElementsMatch(t, s.ValidMoves(), SortedMoves(s), fen)
	}
}

func TestSortedMovesCheckTierFirst(t *testing.T) {
	s := game.MustFEN("4k3/1P6/8/8/8/8/3q4/4K2R w K - 0 1")
	moves := SortedMoves(s)
	require.Len(t, moves, 2)
	assert.Equal(t, game.Move{From: chess.E1, To: chess.D2}, moves[0])
	assert.Equal(t, game.Move{From: chess.E1, To: chess.F1}, moves[1])
}

func TestSortedMovesTiers(t *testing.T) {
	s := game.MustFEN("r3k3/1P6/8/7n/8/8/8/4K2R w K - 0 1")
	moves := SortedMoves(s)
	require.True(t, len(moves) > 9)

	for _, m := range moves[:8] {
		assert.NotEqual(t, chess.NoPieceType, m.Promo, m.String())
	}
	assert.Equal(t, game.Move{From: chess.H1, To: chess.H5}, moves[8])
	for _, m := range moves[9:] {
		assert.Equal(t, chess.NoPieceType, m.Promo, m.String())
		assert.False(t, s.IsCapture(m), m.String())
	}
}

func TestLookaheadCapture(t *testing.T) {
	s := play(t, "e2e4", "d7d5")
	eval := Lookahead{}.EvalMoves(s, score.NewMaterial())

	require.Len(t, eval, len(s.ValidMoves()))
	exd5 := game.Move{From: chess.E4, To: chess.D5}
	assert.Equal(t, exd5, eval[0].Move)
	assert.Equal(t, 1.0, eval[0].Score)
	for _, sm := range eval[1:] {
		assert.Equal(t, 0.0, sm.Score, sm.Move.String())
	}
}

func TestLookaheadIsFromMoverPerspective(t *testing.T) {
	s := play(t, "e2e4", "d7d5", "b1c3")
	eval := Lookahead{}.EvalMoves(s, score.NewMaterial())
	dxe4 := game.Move{From: chess.D5, To: chess.E4}
	assert.Equal(t, dxe4, eval[0].Move)
	assert.Equal(t, 1.0, eval[0].Score)
}

func TestStartposNegamaxSumsToZero(t *testing.T) {
	eval := NewNegamax(2).EvalMoves(game.NewChess(), score.NewMaterial())
	require.Len(t, eval, 20)

	var total float64
	for _, sm := range eval {
		total += sm.Score
	}
	assert.Equal(t, 0.0, total)
}

func TestNegamaxPawnMove(t *testing.T) {
	s := play(t, "d2d4")
	eval := NewNegamax(2).EvalMoves(s, score.NewMaterial())

	var nonzero []float64
	for _, sm := range eval {
		if sm.Score != 0 {
			nonzero = append(nonzero, sm.Score)
		}
	}
	sort.Float64s(nonzero)

	// c7c5, e7e5, g7g5 and h7h6 each hang a pawn; g8h6 hangs the knight
	assert.Equal(t, []float64{-3, -1, -1, -1, -1}, nonzero)
}

func TestTerminalScoring(t *testing.T) {
	mated := play(t, "f2f3", "e7e5", "g2g4", "d8h4")
	stalemate := game.MustFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	m := score.NewMaterial()

	for depth := 0; depth <= 3; depth++ {
		assert.Equal(t, -DefaultDecisiveScore, NewNegamax(depth).Value(mated, m), "depth %d", depth)
		assert.Equal(t, -DefaultDecisiveScore, NewAlphaBeta(depth).Value(mated, m), "depth %d", depth)
		assert.Equal(t, 0.0, NewNegamax(depth).Value(stalemate, m), "depth %d", depth)
		assert.Equal(t, 0.0, NewAlphaBeta(depth).Value(stalemate, m), "depth %d", depth)
	}

	custom := Negamax{Depth: 2, DecisiveScore: 5000}
	assert.Equal(t, -5000.0, custom.Value(mated, m))
}

func TestMateInOne(t *testing.T) {
	s := game.MustFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	mate := game.Move{From: chess.A1, To: chess.A8}

	for _, e := range []Evaluator{NewNegamax(1), NewAlphaBeta(1), NewNegamax(2), NewAlphaBeta(3)} {
		eval := e.EvalMoves(s, score.NewMaterial())
		best := SortByScore(eval)[0]
		assert.Equal(t, mate, best.Move)
		assert.Equal(t, DefaultDecisiveScore, best.Score)
	}
}

func TestNoLegalMoves(t *testing.T) {
	mated := play(t, "f2f3", "e7e5", "g2g4", "d8h4")
	for _, e := range []Evaluator{Lookahead{}, NewNegamax(2), NewAlphaBeta(2)} {
		assert.Empty(t, e.EvalMoves(mated, score.NewMaterial()))
	}
}

func TestMoveCoverage(t *testing.T) {
	evaluators := map[string]Evaluator{
		"lookahead": Lookahead{},
		"negamax":   NewNegamax(2),
		"alphabeta": NewAlphaBeta(2),
	}
	for name, e := range evaluators {
		for _, fen := range testFENs {
			s := game.MustFEN(fen)
			eval := e.EvalMoves(s, score.NewMaterial())

			moves := make([]game.Move, len(eval))
			for i, sm := range eval {
				moves[i] = sm.Move
			}
			assert.ElementsMatch(t, s.ValidMoves(), moves, "%s %s", name, fen)
		}
	}
}

func TestPruningEquivalence(t *testing.T) {
	m := score.NewMaterial()
	positions := []game.State{play(t, "d2d4")}
	for _, fen := range testFENs[1:] {
		positions = append(positions, game.MustFEN(fen))
	}

	for depth := 1; depth <= 3; depth++ {
		for _, s := range positions {
			want := NewNegamax(depth).EvalMoves(s, m)
			got := NewAlphaBeta(depth).EvalMoves(s, m)
			assert.Equal(t, want, got, "depth %d %v", depth, s.FEN())
		}
	}
}

func TestPruningEquivalenceDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 4 search")
	}
	s := play(t, "d2d4")
	m := score.NewMaterial()
	assert.Equal(t, NewNegamax(4).EvalMoves(s, m), NewAlphaBeta(4).EvalMoves(s, m))
}

func TestNaNScoresNeverWin(t *testing.T) {
	material := score.NewMaterial()
	flaky := scorerFunc(func(s game.State) float64 {
		if s.Board().Piece(chess.E4) != chess.NoPiece {
			return math.NaN()
		}
		return material.Score(s)
	})
	s := play(t, "e2e3", "d7d5")

	for depth := 2; depth <= 3; depth++ {
		want := NewNegamax(depth).EvalMoves(s, flaky)
		got := NewAlphaBeta(depth).EvalMoves(s, flaky)
		assert.Equal(t, want, got, "depth %d", depth)
		for _, sm := range got {
			assert.False(t, math.IsNaN(sm.Score), sm.Move.String())
		}
	}
}

type recorder struct {
	visits int
	pruned int
	lines  [][]game.Move
}

func (r *recorder) Visit(line []game.Move, value float64, pruned bool) {
	r.visits++
	if pruned {
		r.pruned++
	}
	r.lines = append(r.lines, append([]game.Move(nil), line...))
}

func TestTracer(t *testing.T) {
	s := game.MustFEN(testFENs[1])
	full, cut := &recorder{}, &recorder{}

	Negamax{Depth: 3, Tracer: full}.EvalMoves(s, score.NewMaterial())
	AlphaBeta{Depth: 3, Tracer: cut}.EvalMoves(s, score.NewMaterial())

	assert.Zero(t, full.pruned)
	assert.True(t, cut.pruned > 0)
	assert.True(t, cut.visits < full.visits)

	// the root is reported last, with an empty line
	assert.Empty(t, full.lines[len(full.lines)-1])
	for _, line := range full.lines[:len(full.lines)-1] {
		assert.True(t, len(line) >= 1 && len(line) <= 3)
	}
}

func TestSortByScore(t *testing.T) {
	a := game.Move{From: chess.A2, To: chess.A3}
	b := game.Move{From: chess.B2, To: chess.B3}
	c := game.Move{From: chess.C2, To: chess.C3}
	in := []ScoredMove{{a, 1}, {b, 2}, {c, 1}}

	out := SortByScore(in)
	assert.Equal(t, []ScoredMove{{b, 2}, {a, 1}, {c, 1}}, out)
	assert.Equal(t, a, in[0].Move, "input is not reordered")
}

func TestConfigValidate(t *testing.T) {
	values := score.DefaultPieceValues()
	assert.NoError(t, DefaultConfig().Validate(values))

	c := DefaultConfig()
	c.Depth = 0
	c.DecisiveScore = 100
	err := c.Validate(values)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depth")
	assert.Contains(t, err.Error(), "decisive")
}

func TestTraced(t *testing.T) {
	s := game.MustFEN(testFENs[4])
	for _, e := range []Evaluator{NewNegamax(2), NewAlphaBeta(2)} {
		r := &recorder{}
		Traced(e, r).EvalMoves(s, score.NewMaterial())
		assert.NotZero(t, r.visits)
	}
	assert.Equal(t, Lookahead{}, Traced(Lookahead{}, &recorder{}))
}
