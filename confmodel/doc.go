// Package confmodel constructs random simple graphs realizing a prescribed
// degree sequence — the classic configuration model via stub matching.
//
// What
//
//   - Build takes a degree sequence and materializes a graph on
//     len(seq) nodes: a stub multiset lists node i once per unit of its
//     requested degree; two distinct stub positions are drawn uniformly per
//     step. A draw whose stubs belong to the same node is discarded (the
//     stubs stay in play); a draw across two nodes consumes both stubs and
//     inserts the edge.
//   - FromDistribution composes degseq.Sample with Build: sample a graphical
//     sequence from a weighted degree distribution, then realize it.
//
// Approximation, on purpose
//
//	Realized degrees may fall short of requested ones: simple-graph insertion
//	silently deduplicates repeated pairs (both stubs are still consumed), and
//	same-node draws burn time without producing edges. Matching degree
//	statistics only approximately is an accepted property of this sampling
//	procedure, not something Build tries to repair.
//
// Termination
//
//	Matching stops when fewer than two stubs remain, or when every remaining
//	stub belongs to a single node (no further draw could ever succeed; the
//	leftover degree demand goes unrealized).
//
// Complexity: expected O(Σdeg) draws, O(Σdeg) space for the stub multiset.
package confmodel
