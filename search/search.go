package search

import (
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"github.com/chessmixer/game"
	"github.com/chessmixer/score"
)

/*
Here lies the fixed-depth tree search. Every strategy returns one ScoredMove per
legal move of the root, scored from the point of view of the side to move at the
root. The recursion is plain negamax over immutable states:

	value(s) = 0                       if s is drawn
	value(s) = -DecisiveScore          if the side to move is mated
	value(s) = ±Score(s)               at depth 0, signed for the side to move
	value(s) = max(-value(reply))      otherwise
*/

// DefaultDecisiveScore dominates any material difference reachable on a
// chess board with the default piece values.
const DefaultDecisiveScore = 1000.0

// Evaluator scores every legal move of a position.
type Evaluator interface {
	EvalMoves(s game.State, scorer score.Scorer) []ScoredMove
}

// ScoredMove pairs a move with its score. Positive favours the side that
// plays the move.
type ScoredMove struct {
	Move  game.Move
	Score float64
}

// Tracer is notified once per searched node, after its value is known.
// line is the sequence of moves from the root and is only valid for the
// duration of the call. pruned is true when replies were skipped.
type Tracer interface {
	Visit(line []game.Move, value float64, pruned bool)
}

// Config configures a search.
type Config struct {
	Algorithm     string  `json:"algorithm" mapstructure:"algorithm"`
	Depth         int     `json:"depth" mapstructure:"depth"`                   // plies
	DecisiveScore float64 `json:"decisive_score" mapstructure:"decisive_score"` // value of a lost position
}

func DefaultConfig() Config {
	return Config{
		Algorithm:     "alphabeta",
		Depth:         2,
		DecisiveScore: DefaultDecisiveScore,
	}
}

// Validate checks the search settings. The decisive score must exceed the
// largest material swing the scorer can report, which for material scoring
// is fifteen of the most valuable piece.
func (c Config) Validate(values score.PieceValues) error {
	var errs error
	if c.Depth < 1 {
		errs = multierror.Append(errs, errors.Errorf("search depth must be at least 1, got %d", c.Depth))
	}
	if bound := 15 * values.Max(); c.DecisiveScore <= bound {
		errs = multierror.Append(errs, errors.Errorf("decisive score %v must exceed %v", c.DecisiveScore, bound))
	}
	return errs
}

// walker holds the per-call state of a recursive search.
type walker struct {
	scorer   score.Scorer
	decisive float64
	tracer   Tracer
	line     []game.Move
}

func newWalker(scorer score.Scorer, decisive float64, tracer Tracer) *walker {
	if decisive == 0 {
		decisive = DefaultDecisiveScore
	}
	return &walker{scorer: scorer, decisive: decisive, tracer: tracer}
}

func (w *walker) push(m game.Move) { w.line = append(w.line, m) }
func (w *walker) pop()             { w.line = w.line[:len(w.line)-1] }

func (w *walker) visit(value float64, pruned bool) {
	if w.tracer != nil {
		w.tracer.Visit(w.line, value, pruned)
	}
}

// terminal returns the value of a finished game for the side to move.
func (w *walker) terminal(s game.State) (float64, bool) {
	switch s.Status() {
	case game.Drawn:
		return 0, true
	case game.Decisive:
		return -w.decisive, true
	}
	return 0, false
}

// leaf returns the static score from the point of view of the side to move.
func (w *walker) leaf(s game.State) float64 {
	return perspective(s.Turn()) * w.scorer.Score(s)
}

func perspective(c chess.Color) float64 {
	if c == chess.Black {
		return -1
	}
	return 1
}

// childDepth is the depth left below the root. A zero depth evaluates each
// child statically.
func childDepth(depth int) int {
	if depth < 1 {
		return 0
	}
	return depth - 1
}

var negInf = math.Inf(-1)
