package analyze

import "github.com/kervalen/clustnet/core"

// Components returns the connected components of g, each as an ascending
// slice of node IDs, ordered by their smallest member. An empty graph has
// no components.
func Components(g *core.Graph) [][]int {
	n := g.N()
	seen := make([]bool, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		// BFS to collect the component of s. Neighbor order is ascending and
		// s is the smallest unseen node, so each component comes out sorted.
		queue := []int{s}
		seen[s] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, w := range g.Neighbors(u) {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// LargestComponent returns the giant component's node IDs (ascending).
// Ties go to the component with the smallest member; nil for an empty graph.
func LargestComponent(g *core.Graph) []int {
	var giant []int
	for _, comp := range Components(g) {
		if len(comp) > len(giant) {
			giant = comp
		}
	}
	return giant
}

// IsConnected reports whether g has at most one connected component.
func IsConnected(g *core.Graph) bool {
	return len(Components(g)) <= 1
}

// bfsDepths returns hop distances from src (-1 = unreachable) and the
// maximum depth reached.
func bfsDepths(g *core.Graph, src int) (depth []int, ecc int) {
	depth = make([]int, g.N())
	for i := range depth {
		depth[i] = -1
	}
	depth[src] = 0
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, w := range g.Neighbors(u) {
			if depth[w] < 0 {
				depth[w] = depth[u] + 1
				if depth[w] > ecc {
					ecc = depth[w]
				}
				queue = append(queue, w)
			}
		}
	}
	return depth, ecc
}

// Diameter returns the longest shortest-path length in g. When g is
// disconnected the diameter of the largest component is returned and
// wholeGraph is false — the full-graph diameter is not defined.
// Empty and single-node graphs have diameter 0.
func Diameter(g *core.Graph) (diameter int, wholeGraph bool) {
	if g.N() == 0 {
		return 0, true
	}
	comps := Components(g)
	giant := comps[0]
	for _, comp := range comps[1:] {
		if len(comp) > len(giant) {
			giant = comp
		}
	}
	for _, v := range giant {
		if _, ecc := bfsDepths(g, v); ecc > diameter {
			diameter = ecc
		}
	}
	return diameter, len(comps) == 1
}
