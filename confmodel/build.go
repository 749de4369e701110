package confmodel

import (
	"fmt"

	"github.com/kervalen/clustnet/core"
	"github.com/kervalen/clustnet/degseq"
)

// Build realizes seq as a simple undirected graph on len(seq) nodes via stub
// matching. Node i receives at most seq[i] edges; every node is present even
// when it ends up isolated. See the package documentation for why realized
// degrees can undershoot.
//
// Returns ErrNegativeDegree on a bad sequence and ErrOptionViolation for bad
// options. seq itself does not have to be graphical — an infeasible sequence
// simply realizes fewer edges.
func Build(seq []int, opts ...Option) (*core.Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	stubTotal := 0
	for i, d := range seq {
		if d < 0 {
			return nil, fmt.Errorf("%w: seq[%d] = %d", ErrNegativeDegree, i, d)
		}
		stubTotal += d
	}

	g := core.NewGraph(len(seq))

	// Stub multiset: node i appears seq[i] times.
	stubs := make([]int, 0, stubTotal)
	for i, d := range seq {
		for k := 0; k < d; k++ {
			stubs = append(stubs, i)
		}
	}

	for len(stubs) >= 2 {
		if singleOwner(stubs) {
			break // only same-node draws remain; demand goes unrealized
		}

		// Two distinct positions, uniform without replacement.
		i := o.rng.IntN(len(stubs))
		j := o.rng.IntN(len(stubs) - 1)
		if j >= i {
			j++
		}

		u, v := stubs[i], stubs[j]
		if u == v {
			continue // discarded draw; stubs stay in play
		}

		// Both stubs are consumed whether or not the edge is new; a repeat
		// pair deduplicates silently.
		if _, err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("confmodel: AddEdge(%d,%d): %w", u, v, err)
		}
		if i < j {
			i, j = j, i
		}
		stubs = dropStub(stubs, i) // higher index first keeps j valid
		stubs = dropStub(stubs, j)
	}

	return g, nil
}

// FromDistribution samples a graphical degree sequence of length n from the
// weighted degree distribution (weights[d] = mass of degree d) and realizes
// it with Build. Sampling and matching share one RNG stream, so a single
// seed pins down the whole construction.
func FromDistribution(n int, weights []float64, opts ...Option) (*core.Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	sampleOpts := []degseq.Option{degseq.WithRand(o.rng)}
	if o.maxAttempts > 0 {
		sampleOpts = append(sampleOpts, degseq.WithMaxAttempts(o.maxAttempts))
	}
	seq, err := degseq.Sample(n, weights, sampleOpts...)
	if err != nil {
		return nil, fmt.Errorf("confmodel: sampling degree sequence: %w", err)
	}

	return Build(seq, WithRand(o.rng))
}

// singleOwner reports whether every stub references the same node.
func singleOwner(stubs []int) bool {
	for _, s := range stubs[1:] {
		if s != stubs[0] {
			return false
		}
	}
	return true
}

// dropStub removes index i by swapping in the last element (order is
// irrelevant: draws are uniform over positions).
func dropStub(stubs []int, i int) []int {
	last := len(stubs) - 1
	stubs[i] = stubs[last]
	return stubs[:last]
}
