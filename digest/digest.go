package digest

import (
	"fmt"

	"github.com/kervalen/clustnet/analyze"
	"github.com/kervalen/clustnet/confmodel"
	"github.com/kervalen/clustnet/core"
)

// BuildEmpirical assembles the observed graph from records. Raw endpoint
// labels are remapped to contiguous 0-based IDs in first-appearance order;
// self-referencing rows are dropped (the model has no self-loops) and
// repeated pairs collapse to one edge, with the later row's attributes
// winning.
func BuildEmpirical(records []Record) (*core.Graph, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	index := make(map[int]int)
	id := func(label int) int {
		if i, ok := index[label]; ok {
			return i
		}
		i := len(index)
		index[label] = i
		return i
	}
	for _, rec := range records {
		if rec.Init == rec.Term {
			continue
		}
		id(rec.Init)
		id(rec.Term)
	}

	g := core.NewGraph(len(index))
	for _, rec := range records {
		if rec.Init == rec.Term {
			continue
		}
		u, v := index[rec.Init], index[rec.Term]
		if _, err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("digest: edge %d→%d: %w", rec.Init, rec.Term, err)
		}
		if rec.Attrs != nil {
			if err := g.SetEdgeAttrs(u, v, rec.Attrs); err != nil {
				return nil, fmt.Errorf("digest: attrs %d→%d: %w", rec.Init, rec.Term, err)
			}
		}
	}
	return g, nil
}

// Digest runs the full pipeline: build the empirical graph from records,
// bincount its degrees, and draw a configuration-model graph on n nodes
// whose degree distribution is that histogram. It returns the random
// reference graph together with its average clustering coefficient.
//
// Returns ErrNoRecords, ErrBadNodeCount, or any sampler/builder error.
func Digest(records []Record, n int, opts ...Option) (*core.Graph, float64, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}
	if n < 1 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrBadNodeCount, n)
	}

	empirical, err := BuildEmpirical(records)
	if err != nil {
		return nil, 0, err
	}

	hist := analyze.DegreeHistogram(empirical)
	weights := make([]float64, len(hist))
	for d, count := range hist {
		weights[d] = float64(count)
	}

	cmOpts := []confmodel.Option{confmodel.WithRand(o.rng)}
	if o.maxAttempts > 0 {
		cmOpts = append(cmOpts, confmodel.WithMaxAttempts(o.maxAttempts))
	}
	g, err := confmodel.FromDistribution(n, weights, cmOpts...)
	if err != nil {
		return nil, 0, fmt.Errorf("digest: building reference graph: %w", err)
	}

	return g, analyze.AverageClustering(g), nil
}
