// Package choose turns weighted candidates into a single choice.
package choose

import (
	"math"

	"github.com/pkg/errors"
)

// Chooser picks an index into weights. ok is false only when weights is empty.
type Chooser interface {
	Choose(weights []float64) (idx int, ok bool)
}

// Pick applies c to parallel slices of candidates and weights.
func Pick[T any](c Chooser, candidates []T, weights []float64) (T, bool) {
	var zero T
	if len(candidates) != len(weights) {
		panic(errors.Errorf("choose: %d candidates but %d weights", len(candidates), len(weights)))
	}
	idx, ok := c.Choose(weights)
	if !ok {
		return zero, false
	}
	return candidates[idx], true
}

// Config selects a chooser.
type Config struct {
	Policy string `json:"policy" mapstructure:"policy"` // greedy or stochastic
	Seed   uint64 `json:"seed" mapstructure:"seed"`     // 0 uses the process-wide source
}

func DefaultConfig() Config {
	return Config{Policy: "greedy"}
}

// Greedy picks the highest weight. Ties go to the earliest candidate and NaN
// weights are never picked unless every weight is NaN.
type Greedy struct{}

func (Greedy) Choose(weights []float64) (int, bool) {
	if len(weights) == 0 {
		return 0, false
	}
	best := -1
	for i, w := range weights {
		if math.IsNaN(w) {
			continue
		}
		if best < 0 || w > weights[best] {
			best = i
		}
	}
	if best < 0 {
		best = 0
	}
	return best, true
}
