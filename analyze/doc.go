// Package analyze computes the summary statistics clustnet cares about:
// clustering coefficients, connected components, diameter, degree
// assortativity, and degree histograms.
//
// What
//
//   - LocalClustering / AverageClustering — the fraction of a node's
//     neighbor pairs that are themselves adjacent, and its mean over all
//     nodes (degree-<2 nodes contribute 0). AverageClustering is the
//     objective the rewiring engine re-evaluates for every candidate edge.
//   - Components / LargestComponent / IsConnected — BFS decomposition.
//   - Diameter — longest shortest path. Disconnected graphs fall back to the
//     largest component, and the returned flag says so explicitly.
//   - Assortativity — Pearson correlation of degrees across edge endpoints
//     (each undirected edge contributes both orientations). NaN when the
//     correlation is undefined (fewer than two edges, or zero degree
//     variance such as a cycle or complete graph).
//   - DegreeHistogram — zero-gap-filled bincount, ready for bar rendering.
//   - Summarize — bundles the above for reporting consumers.
//
// Complexity (n = nodes, m = edges, k = degree)
//
//   - AverageClustering: O(Σ k²) adjacency probes.
//   - Components: O(n + m). Diameter: O(n·(n + m)) eccentricity sweep.
package analyze
