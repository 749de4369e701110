package degseq

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sample draws a graphical degree sequence of length n from the degree
// distribution described by weights (weights[d] = relative mass of degree d).
// Whole samples are drawn i.i.d. and rejected until one passes IsGraphical;
// the first graphical sequence is returned in draw order.
//
// Returns ErrBadNodeCount, ErrNegativeWeight, ErrNoWeights on invalid input,
// ErrOptionViolation for bad options, and ErrNoGraphicalSequence when the
// attempt budget is exhausted.
func Sample(n int, weights []float64, opts ...Option) ([]int, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadNodeCount, n)
	}
	total := 0.0
	for d, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: weights[%d] = %v", ErrNegativeWeight, d, w)
		}
		total += w
	}
	if total == 0 {
		return nil, ErrNoWeights
	}

	// *rand.Rand satisfies rand.Source, so the sampler shares our stream.
	dist := distuv.NewCategorical(weights, o.rng)

	seq := make([]int, n)
	for attempt := 0; attempt < o.maxAttempts; attempt++ {
		for i := range seq {
			seq[i] = int(dist.Rand())
		}
		if IsGraphical(seq) {
			return seq, nil
		}
	}
	return nil, fmt.Errorf("%w: gave up after %d attempts", ErrNoGraphicalSequence, o.maxAttempts)
}
