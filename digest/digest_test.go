package digest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kervalen/clustnet/analyze"
	"github.com/kervalen/clustnet/digest"
)

const sampleCSV = `init_node,term_node,capacity,length
1,2,4900,6
2,3,4900,4
3,4,2500,4
4,1,2500,6
1,3,800,10
`

// TestReadCSV parses endpoints and carries extra columns as attributes.
func TestReadCSV(t *testing.T) {
	records, err := digest.ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 5)

	assert.Equal(t, 1, records[0].Init)
	assert.Equal(t, 2, records[0].Term)
	assert.Equal(t, map[string]string{"capacity": "4900", "length": "6"}, records[0].Attrs)
	assert.Equal(t, "10", records[4].Attrs["length"])
}

// TestReadCSV_Errors covers header and endpoint validation.
func TestReadCSV_Errors(t *testing.T) {
	_, err := digest.ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, digest.ErrNoHeader)

	_, err = digest.ReadCSV(strings.NewReader("origin,term_node\n1,2\n"))
	assert.ErrorIs(t, err, digest.ErrMissingColumn)

	_, err = digest.ReadCSV(strings.NewReader("init_node,term_node\nA,2\n"))
	assert.ErrorIs(t, err, digest.ErrBadEndpoint)
}

// TestBuildEmpirical verifies remapping, deduplication, and attribute attachment.
func TestBuildEmpirical(t *testing.T) {
	records, err := digest.ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	g, err := digest.BuildEmpirical(records)
	require.NoError(t, err)

	// Labels 1..4 → IDs 0..3 in first-appearance order.
	assert.Equal(t, 4, g.N())
	assert.Equal(t, 5, g.M())
	assert.True(t, g.HasEdge(0, 1), "1-2")
	assert.True(t, g.HasEdge(0, 2), "1-3 chord")
	assert.Equal(t, "4900", g.EdgeAttrs(0, 1)["capacity"])

	// Duplicate rows collapse; the later attributes win. Self-loops drop.
	dup := []digest.Record{
		{Init: 7, Term: 9, Attrs: map[string]string{"capacity": "1"}},
		{Init: 9, Term: 7, Attrs: map[string]string{"capacity": "2"}},
		{Init: 7, Term: 7},
	}
	g2, err := digest.BuildEmpirical(dup)
	require.NoError(t, err)
	assert.Equal(t, 2, g2.N())
	assert.Equal(t, 1, g2.M())
	assert.Equal(t, "2", g2.EdgeAttrs(0, 1)["capacity"])

	_, err = digest.BuildEmpirical(nil)
	assert.ErrorIs(t, err, digest.ErrNoRecords)
}

// TestDigest_ReferenceGraph is the digestor scenario: a 4-node edge list of
// degree-2 and degree-3 nodes must yield a 4-node reference graph whose
// clustering coefficient is a float in [0,1].
func TestDigest_ReferenceGraph(t *testing.T) {
	records, err := digest.ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	empirical, err := digest.BuildEmpirical(records)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 2, 2}, analyze.DegreeHistogram(empirical))

	g, c, err := digest.Digest(records, 4, digest.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, 4, g.N())
	assert.GreaterOrEqual(t, c, 0.0)
	assert.LessOrEqual(t, c, 1.0)
}

// TestDigest_Validation covers the argument checks.
func TestDigest_Validation(t *testing.T) {
	_, _, err := digest.Digest(nil, 4)
	assert.ErrorIs(t, err, digest.ErrNoRecords)

	_, _, err = digest.Digest([]digest.Record{{Init: 1, Term: 2}}, 0)
	assert.ErrorIs(t, err, digest.ErrBadNodeCount)

	_, _, err = digest.Digest([]digest.Record{{Init: 1, Term: 2}}, 4, digest.WithMaxAttempts(0))
	assert.ErrorIs(t, err, digest.ErrOptionViolation)
}

// TestDigest_Deterministic: one seed, one reference graph.
func TestDigest_Deterministic(t *testing.T) {
	records, err := digest.ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	g1, c1, err := digest.Digest(records, 6, digest.WithSeed(21))
	require.NoError(t, err)
	g2, c2, err := digest.Digest(records, 6, digest.WithSeed(21))
	require.NoError(t, err)

	assert.Equal(t, g1.Edges(), g2.Edges())
	assert.Equal(t, c1, c2)
}
