package core

// SetEdgeAttrs attaches opaque key-value data to an existing edge, replacing
// any previous attributes. The data is side information only: no clustnet
// algorithm reads it, and RemoveEdge discards it with the edge.
// Returns ErrEdgeNotFound if u—v is not present.
func (g *Graph) SetEdgeAttrs(u, v int, attrs map[string]string) error {
	if !g.HasEdge(u, v) {
		return ErrEdgeNotFound
	}
	if g.attrs == nil {
		g.attrs = make(map[[2]int]map[string]string)
	}
	g.attrs[edgeKey(u, v)] = attrs
	return nil
}

// EdgeAttrs returns the attributes attached to edge u—v, or nil if the edge
// is absent or carries none. The returned map is the stored one; treat it as
// read-only.
func (g *Graph) EdgeAttrs(u, v int) map[string]string {
	if g.attrs == nil {
		return nil
	}
	return g.attrs[edgeKey(u, v)]
}
