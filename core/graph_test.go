package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kervalen/clustnet/core"
)

// TestNewGraph_NodeSet verifies the fixed 0..n-1 node set and empty edge set.
func TestNewGraph_NodeSet(t *testing.T) {
	g := core.NewGraph(4)
	assert.Equal(t, 4, g.N())
	assert.Equal(t, 0, g.M())
	assert.Equal(t, []int{0, 1, 2, 3}, g.Nodes())

	// Non-positive n degrades to an empty graph.
	assert.Equal(t, 0, core.NewGraph(-3).N())
}

// TestAddEdge_Validation covers range checks, self-loops, and duplicate
// insertion reporting.
func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph(3)

	_, err := g.AddEdge(0, 3)
	assert.ErrorIs(t, err, core.ErrNodeRange, "out-of-range endpoint must error")
	_, err = g.AddEdge(-1, 0)
	assert.ErrorIs(t, err, core.ErrNodeRange)
	_, err = g.AddEdge(1, 1)
	assert.ErrorIs(t, err, core.ErrSelfLoop, "self-loop must error")

	added, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	assert.True(t, added, "first insertion is new")

	added, err = g.AddEdge(1, 0)
	require.NoError(t, err)
	assert.False(t, added, "reversed duplicate is a reported no-op")
	assert.Equal(t, 1, g.M())
}

// TestRemoveEdge verifies removal reporting and that absent pairs are no-ops.
func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph(3)
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	assert.True(t, g.RemoveEdge(1, 0), "existing edge removed via either orientation")
	assert.False(t, g.HasEdge(0, 1))
	assert.Equal(t, 0, g.M())

	assert.False(t, g.RemoveEdge(0, 1), "second removal is a no-op")
	assert.False(t, g.RemoveEdge(0, 5), "invalid endpoint is a no-op")
}

// TestNeighbors_SortedCopy checks ordering and isolation of the returned slice.
func TestNeighbors_SortedCopy(t *testing.T) {
	g := core.NewGraph(5)
	for _, w := range []int{4, 1, 3} {
		_, err := g.AddEdge(0, w)
		require.NoError(t, err)
	}

	nbrs := g.Neighbors(0)
	assert.Equal(t, []int{1, 3, 4}, nbrs, "neighbors ascend")
	assert.Equal(t, 3, g.Degree(0))

	nbrs[0] = 99
	assert.Equal(t, []int{1, 3, 4}, g.Neighbors(0), "caller mutation must not leak")
}

// TestEdges_CanonicalOrder checks the u<v lexicographic edge listing.
func TestEdges_CanonicalOrder(t *testing.T) {
	g := core.NewGraph(4)
	for _, e := range [][2]int{{2, 3}, {0, 2}, {1, 0}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {2, 3}}, g.Edges())
}

// TestEdgeAttrs covers attach, lookup, orientation-insensitivity, and
// disposal on edge removal.
func TestEdgeAttrs(t *testing.T) {
	g := core.NewGraph(3)

	err := g.SetEdgeAttrs(0, 1, map[string]string{"capacity": "9000"})
	assert.ErrorIs(t, err, core.ErrEdgeNotFound, "attrs need an existing edge")

	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetEdgeAttrs(0, 1, map[string]string{"capacity": "9000"}))

	assert.Equal(t, "9000", g.EdgeAttrs(1, 0)["capacity"], "attrs visible from either orientation")

	g.RemoveEdge(0, 1)
	assert.Nil(t, g.EdgeAttrs(0, 1), "attrs die with the edge")
}

// TestClone verifies deep copies: edges, attrs, and independence.
func TestClone(t *testing.T) {
	g := core.NewGraph(4)
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetEdgeAttrs(0, 1, map[string]string{"kind": "rail"}))

	c := g.Clone()
	assert.Equal(t, g.Edges(), c.Edges())
	assert.Equal(t, "rail", c.EdgeAttrs(0, 1)["kind"])

	c.RemoveEdge(0, 1)
	assert.True(t, g.HasEdge(0, 1), "clone mutation must not touch the original")
	assert.Equal(t, "rail", g.EdgeAttrs(0, 1)["kind"])
}
