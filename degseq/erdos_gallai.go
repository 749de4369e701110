package degseq

import "sort"

// IsGraphical reports whether seq is realizable as a simple undirected graph,
// per the Erdős–Gallai conditions. The input is not modified; an empty
// sequence is graphical (the empty graph), any negative entry is not.
//
// Complexity: O(n log n) time, O(n) space.
func IsGraphical(seq []int) bool {
	n := len(seq)
	if n == 0 {
		return true
	}

	d := make([]int, n)
	copy(d, seq)
	sort.Sort(sort.Reverse(sort.IntSlice(d)))

	// Degrees must be within [0, n-1]; parity of the sum must be even.
	if d[0] > n-1 || d[n-1] < 0 {
		return false
	}
	sum := 0
	for _, v := range d {
		sum += v
	}
	if sum%2 != 0 {
		return false
	}

	// Prefix conditions: for every k in 1..n,
	//   Σ_{i≤k} d_i ≤ k(k−1) + Σ_{i>k} min(d_i, k).
	prefix := 0
	for k := 1; k <= n; k++ {
		prefix += d[k-1]
		rhs := k * (k - 1)
		for i := k; i < n; i++ {
			if d[i] < k {
				rhs += d[i]
			} else {
				rhs += k
			}
		}
		if prefix > rhs {
			return false
		}
	}
	return true
}
