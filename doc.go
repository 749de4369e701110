// Package clustnet is an in-memory toolkit for studying how edge-rewiring
// heuristics drive a network's clustering coefficient toward a target value.
//
// What it does
//
//	Given an empirical network's degree statistics, clustnet draws a random
//	graph with the same degree distribution (the configuration model), then
//	iteratively rewires its edges — round by round, one greedy swap per node —
//	until the graph's average clustering coefficient enters a target band, or
//	a wall-clock budget runs out.
//
// Everything is organized in flat subpackages:
//
//	core/      — the undirected simple-graph primitive (fixed integer node set)
//	degseq/    — graphical degree-sequence sampling (Erdős–Gallai rejection)
//	confmodel/ — configuration-model construction via stub matching
//	digest/    — empirical edge lists → matched random reference graphs
//	analyze/   — clustering, components, diameter, assortativity, histograms
//	rewire/    — the three rewiring strategies and their convergence loop
//
// Quick sketch:
//
//	records, _ := digest.ReadCSV(f)
//	ref, c0, _ := digest.Digest(records, 74, digest.WithSeed(42))
//	res, _ := rewire.Run(ref, c0, 0.2869, 0.0287, 5, rewire.Model3)
//	fmt.Println(res.Rounds, res.Trace[len(res.Trace)-1])
//
// All stochastic steps take an explicit seed or RNG, so runs are reproducible
// and independent invocations never share random state.
package clustnet
