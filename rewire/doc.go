// Package rewire mutates a graph's edge set, round by round, until its
// average clustering coefficient lands inside a target band — or a
// wall-clock budget runs out.
//
// The loop
//
//	Each round snapshots the node list, then gives every node one greedy
//	move: drop a uniformly-random incident edge, gather replacement
//	candidates under the strategy's policy, cap them at nodesPerRound by
//	uniform sampling without replacement, score each candidate by
//	tentatively adding the edge / recomputing the global average clustering
//	coefficient / removing it again, and keep the candidate with the highest
//	score (first wins ties, in pool order). A node with no candidates simply
//	ends the round one edge poorer. After all nodes move, the coefficient is
//	recorded in the trace and the band test decides whether another round
//	runs.
//
// Strategies
//
//   - Model1 — candidates are everyone except the node and its remaining
//     neighbors. No connectivity repair: the graph may fragment and stay
//     fragmented. The asymmetry with the other models is deliberate.
//   - Model2 — the exclusion widens to the whole 2-hop neighborhood, forcing
//     long-range rewires. Rounds begin with connectivity repair.
//   - Model3 — candidates are exactly the nodes whose degree equals the
//     pre-removal degree of the dropped edge's far endpoint (degree-matched
//     rewiring); a node that had nothing to drop sits the round out. Rounds
//     begin with connectivity repair.
//
// Connectivity repair, where a strategy uses it, runs before the per-node
// moves: every node outside the largest connected component gains one edge
// to a uniformly-random member of it, so rewiring starts from a connected
// graph.
//
// This is a greedy local search, not a solver: accepted moves are never
// undone within a round, the trace need not be monotonic, and the only
// stopping guarantees are "entered the band" or "budget exhausted".
//
// Timeouts
//
//	The deadline is an explicit value captured at start (WithBudget, default
//	DefaultBudget) and checked between rounds and between per-node moves —
//	never inside an add/score/remove triple, so the returned graph is never
//	in a tentatively-mutated state. Running out of budget is not an error:
//	the partial Result comes back with a nil error, identical in shape to a
//	converged one, and the only trace of the event is a diagnostic log line.
//	Callers who care should compare Result.Rounds and the final trace entry
//	against their expectations. WithContext cancellation is handled the same
//	graceful way.
//
// Determinism
//
//	All randomness flows from one engine-owned RNG (WithSeed, default
//	DefaultSeed, matching the reference experiments) — never from process
//	globals — and candidate pools are built in ascending node order, so a
//	seed fully reproduces a run.
package rewire
