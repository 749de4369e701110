package analyze

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/kervalen/clustnet/core"
)

// Assortativity returns the degree-assortativity coefficient of g: the
// Pearson correlation of degrees across edge endpoints, with every
// undirected edge contributing both orientations. Positive values mean
// high-degree nodes attach to high-degree nodes.
//
// Returns NaN when the correlation is undefined: fewer than two edges, or
// no degree variance at the endpoints (regular graphs).
func Assortativity(g *core.Graph) float64 {
	edges := g.Edges()
	if len(edges) < 2 {
		return math.NaN()
	}
	xs := make([]float64, 0, 2*len(edges))
	ys := make([]float64, 0, 2*len(edges))
	for _, e := range edges {
		du, dv := float64(g.Degree(e[0])), float64(g.Degree(e[1]))
		xs = append(xs, du, dv)
		ys = append(ys, dv, du)
	}
	return stat.Correlation(xs, ys, nil)
}

// DegreeHistogram returns counts indexed by degree value, with zero-filled
// gaps: hist[d] = number of nodes of degree d. An empty graph yields an
// empty histogram.
func DegreeHistogram(g *core.Graph) []int {
	n := g.N()
	if n == 0 {
		return nil
	}
	maxDeg := 0
	for v := 0; v < n; v++ {
		if d := g.Degree(v); d > maxDeg {
			maxDeg = d
		}
	}
	hist := make([]int, maxDeg+1)
	for v := 0; v < n; v++ {
		hist[g.Degree(v)]++
	}
	return hist
}
