// Package digest turns empirical edge lists into random reference graphs
// with matching degree statistics.
//
// What
//
//   - ReadCSV parses a tabular edge list whose header names at least an
//     init_node and a term_node column; every other column is carried along
//     as opaque per-edge attributes (transportation datasets bring capacity,
//     length, free-flow time, ... — none of it is read by any algorithm).
//   - BuildEmpirical assembles the observed graph, remapping raw node labels
//     to the contiguous 0-based identifiers core.Graph requires.
//   - Digest is the full pipeline: empirical graph → degree histogram →
//     configuration-model graph on n nodes with that histogram as its degree
//     distribution → (reference graph, its average clustering coefficient).
//     The reference graph is what the rewiring strategies start from.
//
// The expected node count n is prior knowledge about the network under
// study, not something inferred from the records: the reference graph is
// built on n nodes even when the edge list mentions fewer or more labels.
package digest
