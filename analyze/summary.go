package analyze

import "github.com/kervalen/clustnet/core"

// Summary is the reporting view of a graph, sized for human-readable output
// or chart rendering by external consumers.
type Summary struct {
	// Nodes and Edges are the graph's order and size.
	Nodes int
	Edges int

	// Diameter is the longest shortest path; when DiameterGiantOnly is true
	// the graph was disconnected and the value covers only the largest
	// component.
	Diameter          int
	DiameterGiantOnly bool

	// AvgClustering is the mean local clustering coefficient.
	AvgClustering float64

	// Assortativity is the degree-assortativity coefficient (may be NaN).
	Assortativity float64

	// DegreeHistogram maps degree value → node count, gaps zero-filled.
	DegreeHistogram []int
}

// Summarize computes a Summary for g.
func Summarize(g *core.Graph) Summary {
	diam, whole := Diameter(g)
	return Summary{
		Nodes:             g.N(),
		Edges:             g.M(),
		Diameter:          diam,
		DiameterGiantOnly: !whole,
		AvgClustering:     AverageClustering(g),
		Assortativity:     Assortativity(g),
		DegreeHistogram:   DegreeHistogram(g),
	}
}
