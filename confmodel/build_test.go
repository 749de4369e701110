package confmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kervalen/clustnet/confmodel"
	"github.com/kervalen/clustnet/core"
	"github.com/kervalen/clustnet/degseq"
)

// checkRealization asserts the structural guarantees every built graph must
// honor: node count, simplicity, and realized ≤ requested degrees.
func checkRealization(t *testing.T, g *core.Graph, seq []int) {
	t.Helper()
	require.Equal(t, len(seq), g.N(), "one node per sequence entry")
	for v := 0; v < g.N(); v++ {
		assert.False(t, g.HasEdge(v, v), "no self-loops")
		assert.LessOrEqual(t, g.Degree(v), seq[v], "node %d over-realized", v)
	}
	// Simplicity (no duplicate edges) is implied by the edge listing being
	// strictly increasing in canonical order.
	edges := g.Edges()
	for i := 1; i < len(edges); i++ {
		assert.NotEqual(t, edges[i-1], edges[i], "duplicate edge in listing")
	}
}

// TestBuild_FourCycleSequence is the [2,2,2,2] construction scenario.
func TestBuild_FourCycleSequence(t *testing.T) {
	seq := []int{2, 2, 2, 2}
	g, err := confmodel.Build(seq, confmodel.WithSeed(1))
	require.NoError(t, err)
	checkRealization(t, g, seq)
	assert.Equal(t, 4, g.N())
}

// TestBuild_ManySeeds fuzzes the invariants across seeds and sequences,
// including infeasible ones that must under-realize rather than fail.
func TestBuild_ManySeeds(t *testing.T) {
	sequences := [][]int{
		{2, 2, 2, 2},
		{3, 3, 3, 3},
		{1, 1},
		{0, 0, 0},
		{5, 1, 1, 1}, // infeasible: node 0 cannot reach degree 5
		{4, 3, 2, 2, 1, 2},
	}
	for _, seq := range sequences {
		for seed := uint64(0); seed < 10; seed++ {
			g, err := confmodel.Build(seq, confmodel.WithSeed(seed))
			require.NoError(t, err)
			checkRealization(t, g, seq)
		}
	}
}

// TestBuild_SingleOwnerStops covers the stall guard: all remaining stubs on
// one node must terminate, not spin.
func TestBuild_SingleOwnerStops(t *testing.T) {
	g, err := confmodel.Build([]int{2}, confmodel.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 1, g.N())
	assert.Equal(t, 0, g.M(), "a lone node can realize nothing")
}

// TestBuild_NegativeDegree checks input validation.
func TestBuild_NegativeDegree(t *testing.T) {
	_, err := confmodel.Build([]int{1, -1})
	assert.ErrorIs(t, err, confmodel.ErrNegativeDegree)
}

// TestBuild_Deterministic checks seed reproducibility of the edge set.
func TestBuild_Deterministic(t *testing.T) {
	seq := []int{3, 2, 2, 2, 1, 2}
	a, err := confmodel.Build(seq, confmodel.WithSeed(11))
	require.NoError(t, err)
	b, err := confmodel.Build(seq, confmodel.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
}

// TestFromDistribution wires sampling and matching together. The [0,0,3,1]
// weight vector (mass on degrees 2 and 3) need not itself be a realizable
// histogram — the sampler resamples until a graphical sequence appears.
func TestFromDistribution(t *testing.T) {
	for _, n := range []int{4, 8} {
		g, err := confmodel.FromDistribution(n, []float64{0, 0, 3, 1}, confmodel.WithSeed(5))
		require.NoError(t, err)
		assert.Equal(t, n, g.N())
		for v := 0; v < g.N(); v++ {
			assert.LessOrEqual(t, g.Degree(v), 3, "no sampled degree exceeds 3")
		}
	}
}

// TestFromDistribution_Errors propagates sampler failures.
func TestFromDistribution_Errors(t *testing.T) {
	_, err := confmodel.FromDistribution(4, nil, confmodel.WithSeed(1))
	assert.ErrorIs(t, err, degseq.ErrNoWeights)

	_, err = confmodel.FromDistribution(4, []float64{0, 0, 0, 0, 1},
		confmodel.WithSeed(1), confmodel.WithMaxAttempts(25))
	assert.ErrorIs(t, err, degseq.ErrNoGraphicalSequence)

	_, err = confmodel.FromDistribution(4, []float64{1}, confmodel.WithMaxAttempts(-1))
	assert.ErrorIs(t, err, confmodel.ErrOptionViolation)
}
