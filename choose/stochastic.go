package choose

import (
	"math"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
	"lukechampine.com/frand"
)

// Stochastic samples a candidate with probability proportional to 10^weight,
// so a weight one higher is ten times as likely and -Inf is never picked.
type Stochastic struct {
	mu  sync.Mutex
	src rand.Source
}

// Option configures a Stochastic chooser.
type Option func(*Stochastic)

// WithSource uses src instead of the process-wide generator.
func WithSource(src rand.Source) Option {
	return func(s *Stochastic) { s.src = src }
}

// WithSeed makes the chooser reproducible.
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed))
}

func NewStochastic(opts ...Option) *Stochastic {
	s := &Stochastic{src: frandSource{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Stochastic) Choose(weights []float64) (int, bool) {
	if len(weights) == 0 {
		return 0, false
	}
	p := Distribution(weights)

	s.mu.Lock()
	defer s.mu.Unlock()
	dist := distuv.NewCategorical(p, s.src)
	for {
		// a zero draw can land on a leading zero-probability entry
		if idx := int(dist.Rand()); p[idx] > 0 {
			return idx, true
		}
	}
}

// Distribution converts weights into probabilities p_i = 10^w_i / Σ 10^w_j.
// Weights are shifted by their maximum first, which leaves p unchanged but
// keeps 10^w finite. NaN weights get probability zero. When every weight is
// -Inf or NaN the distribution is uniform over all candidates; when some
// weights are +Inf it is uniform over those.
func Distribution(weights []float64) []float64 {
	p := make([]float64, len(weights))
	max := math.Inf(-1)
	for _, w := range weights {
		if w > max {
			max = w
		}
	}

	switch {
	case math.IsInf(max, -1):
		for i := range p {
			p[i] = 1
		}
	case math.IsInf(max, 1):
		for i, w := range weights {
			if math.IsInf(w, 1) {
				p[i] = 1
			}
		}
	default:
		for i, w := range weights {
			if !math.IsNaN(w) {
				p[i] = math.Pow(10, w-max)
			}
		}
	}
	floats.Scale(1/floats.Sum(p), p)
	return p
}

// frandSource adapts the process-wide frand generator to rand.Source. It is
// safe for concurrent use.
type frandSource struct{}

func (frandSource) Uint64() uint64 { return frand.Uint64n(math.MaxUint64) }
