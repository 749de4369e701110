// Package degseq samples graphical degree sequences from a weighted degree
// distribution.
//
// What
//
//   - IsGraphical implements the Erdős–Gallai test: a non-negative integer
//     sequence is realizable as a simple graph iff its sum is even and, with
//     the sequence sorted descending, every prefix satisfies
//     Σ_{i≤k} d_i ≤ k(k−1) + Σ_{i>k} min(d_i, k).
//   - Sample draws n i.i.d. degree values from the distribution described by
//     a weight-per-degree slice (index = degree value, weight = relative
//     mass) and rejects whole samples until one is graphical.
//
// The rejection loop is bounded: after WithMaxAttempts draws (default
// DefaultMaxAttempts) Sample gives up with ErrNoGraphicalSequence rather
// than spinning forever on a pathological distribution.
//
// Determinism
//
//	Drawing goes through a caller-supplied RNG (WithSeed / WithRand), never
//	a process-global source, so independent runs cannot interfere and equal
//	seeds reproduce equal sequences.
//
// Complexity
//
//   - IsGraphical: O(n log n) per call (sort of a copy).
//   - Sample: O(attempts · n log n) worst case.
package degseq
