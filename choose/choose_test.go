package choose

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var candidates = []string{"a2a4", "b2b4", "c2c4", "d2d4", "e2e4", "f2f4", "g2g4", "h2h4"}

func TestGreedyUniqueMaximum(t *testing.T) {
	c := Greedy{}
	for i := range candidates {
		weights := make([]float64, len(candidates))
		weights[i] = 1.0
		for n := 0; n < 100; n++ {
			got, ok := Pick[string](c, candidates, weights)
			require.True(t, ok)
			assert.Equal(t, candidates[i], got)
		}
	}
}

func TestGreedyTiesGoFirst(t *testing.T) {
	idx, ok := Greedy{}.Choose([]float64{1, 3, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestGreedyNaN(t *testing.T) {
	nan := math.NaN()

	idx, ok := Greedy{}.Choose([]float64{nan, -5, nan, -2})
	assert.True(t, ok)
	assert.Equal(t, 3, idx)

	idx, ok = Greedy{}.Choose([]float64{nan, nan})
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestEmpty(t *testing.T) {
	for _, c := range []Chooser{Greedy{}, NewStochastic()} {
		got, ok := Pick[string](c, nil, nil)
		assert.False(t, ok)
		assert.Equal(t, "", got)
	}
}

func TestPickLengthMismatch(t *testing.T) {
	assert.Panics(t, func() { Pick[string](Greedy{}, candidates, []float64{1}) })
}

func TestDistribution(t *testing.T) {
	p := Distribution([]float64{1, 0, math.Inf(-1)})
	assert.InDelta(t, 10.0/11, p[0], 1e-12)
	assert.InDelta(t, 1.0/11, p[1], 1e-12)
	assert.Equal(t, 0.0, p[2])

	// large weights do not overflow
	p = Distribution([]float64{1000, 999})
	assert.InDelta(t, 10.0/11, p[0], 1e-12)

	inf := math.Inf(-1)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, Distribution([]float64{inf, inf, inf, inf}))
	assert.Equal(t, []float64{0.5, 0.5}, Distribution([]float64{math.NaN(), inf}))
	assert.Equal(t, []float64{0.5, 0, 0.5}, Distribution([]float64{math.Inf(1), 3, math.Inf(1)}))
	assert.Equal(t, []float64{1, 0}, Distribution([]float64{2, math.NaN()}))
}
