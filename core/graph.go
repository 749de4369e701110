package core

import (
	"errors"
	"sort"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeRange indicates an endpoint outside 0..n-1.
	ErrNodeRange = errors.New("core: node out of range")

	// ErrSelfLoop indicates an attempted edge from a node to itself.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Graph is an undirected, unweighted simple graph on the fixed node set
// 0..n-1. The zero value is not usable; construct with NewGraph.
type Graph struct {
	adj   []map[int]struct{}           // adjacency sets, one per node
	m     int                          // edge count
	attrs map[[2]int]map[string]string // opaque per-edge side data, keyed (min,max)
}

// NewGraph creates a graph with nodes 0..n-1 and no edges.
// A non-positive n yields an empty graph.
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	return &Graph{adj: adj}
}

// N returns the number of nodes.
func (g *Graph) N() int { return len(g.adj) }

// M returns the number of edges.
func (g *Graph) M() int { return g.m }

// has reports whether v is a valid node identifier.
func (g *Graph) has(v int) bool { return v >= 0 && v < len(g.adj) }

// edgeKey normalizes an unordered pair to (min,max).
func edgeKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}

// AddEdge inserts the undirected edge u—v.
// It reports added=true when the edge is new, added=false when it already
// existed (the graph is unchanged). Returns ErrNodeRange or ErrSelfLoop on
// invalid endpoints.
func (g *Graph) AddEdge(u, v int) (added bool, err error) {
	if !g.has(u) || !g.has(v) {
		return false, ErrNodeRange
	}
	if u == v {
		return false, ErrSelfLoop
	}
	if _, ok := g.adj[u][v]; ok {
		return false, nil
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.m++
	return true, nil
}

// RemoveEdge deletes the undirected edge u—v together with any attached
// attributes. It reports whether an edge was actually removed; invalid or
// absent pairs are a no-op.
func (g *Graph) RemoveEdge(u, v int) bool {
	if !g.has(u) || !g.has(v) || u == v {
		return false
	}
	if _, ok := g.adj[u][v]; !ok {
		return false
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.m--
	if g.attrs != nil {
		delete(g.attrs, edgeKey(u, v))
	}
	return true
}

// HasEdge reports whether the edge u—v exists.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.has(u) || !g.has(v) {
		return false
	}
	_, ok := g.adj[u][v]
	return ok
}

// Degree returns the number of edges incident to v, or 0 for an invalid node.
func (g *Graph) Degree(v int) int {
	if !g.has(v) {
		return 0
	}
	return len(g.adj[v])
}

// Neighbors returns v's adjacent nodes in ascending order.
// The slice is a copy; mutating it does not affect the graph.
func (g *Graph) Neighbors(v int) []int {
	if !g.has(v) {
		return nil
	}
	out := make([]int, 0, len(g.adj[v]))
	for w := range g.adj[v] {
		out = append(out, w)
	}
	sort.Ints(out)
	return out
}

// Nodes returns all node identifiers in ascending order.
func (g *Graph) Nodes() []int {
	out := make([]int, len(g.adj))
	for i := range out {
		out[i] = i
	}
	return out
}

// Edges returns every edge exactly once as (u,v) pairs with u < v,
// sorted lexicographically.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.m)
	for u := range g.adj {
		for v := range g.adj[u] {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// Clone returns a deep copy of the graph, including edge attributes.
func (g *Graph) Clone() *Graph {
	c := NewGraph(len(g.adj))
	for u := range g.adj {
		for v := range g.adj[u] {
			c.adj[u][v] = struct{}{}
		}
	}
	c.m = g.m
	if g.attrs != nil {
		c.attrs = make(map[[2]int]map[string]string, len(g.attrs))
		for k, kv := range g.attrs {
			cp := make(map[string]string, len(kv))
			for a, b := range kv {
				cp[a] = b
			}
			c.attrs[k] = cp
		}
	}
	return c
}
