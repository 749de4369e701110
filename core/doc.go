// Package core provides the fundamental in-memory graph type used throughout
// clustnet: an undirected, unweighted simple graph over a fixed set of
// integer node identifiers.
//
// What
//
//   - Nodes are the integers 0..n-1, chosen once at construction. The node
//     set never changes for the lifetime of a Graph; only edges come and go.
//   - Edges are unordered pairs of distinct nodes. Self-loops are rejected
//     with ErrSelfLoop; inserting an edge that already exists is a reported
//     no-op (AddEdge returns added=false), which is what makes tentative
//     add/score/remove probing safe for callers.
//   - Optional opaque string attributes may be attached to an edge (empirical
//     ingestion keeps its extra CSV columns there). No algorithm in this
//     module ever reads them, and they vanish with the edge.
//
// Determinism
//
//	Neighbors, Nodes, and Edges return their results in ascending order, so
//	any seeded random choice made over them is reproducible run to run.
//
// Concurrency
//
//	A Graph is NOT safe for concurrent use. A rewiring run owns its graph
//	exclusively for the run's duration; nothing here needs locks, and the
//	per-candidate scoring loop mutates and rolls back edges far too often
//	for lock traffic to be anything but overhead.
//
// Complexity (n = nodes, m = edges, k = a node's degree)
//
//   - AddEdge / RemoveEdge / HasEdge / Degree: O(1) expected
//   - Neighbors: O(k log k) (sorted copy)
//   - Edges: O(m log m); Clone: O(n + m)
package core
