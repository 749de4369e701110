package analyze

import "github.com/kervalen/clustnet/core"

// LocalClustering returns the local clustering coefficient of v: the
// fraction of v's neighbor pairs that are themselves connected. Nodes with
// degree < 2 (and invalid nodes) have coefficient 0.
func LocalClustering(g *core.Graph, v int) float64 {
	nbrs := g.Neighbors(v)
	k := len(nbrs)
	if k < 2 {
		return 0
	}
	links := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if g.HasEdge(nbrs[i], nbrs[j]) {
				links++
			}
		}
	}
	return float64(2*links) / float64(k*(k-1))
}

// AverageClustering returns the mean of LocalClustering over all nodes,
// or 0 for an empty graph.
func AverageClustering(g *core.Graph) float64 {
	n := g.N()
	if n == 0 {
		return 0
	}
	sum := 0.0
	for v := 0; v < n; v++ {
		sum += LocalClustering(g, v)
	}
	return sum / float64(n)
}
