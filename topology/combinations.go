// SPDX-License-Identifier: MIT
// Package: lvmesh/topology
//
// combinations.go — lexicographic r-subsets of {0..n-1}.

package topology

import "gonum.org/v1/gonum/stat/combin"

// combinations returns every r-subset of {0, …, n−1} as an ascending index
// slice, in lexicographic order. combinations(3, 2) = [0 1] [0 2] [1 2].
// Returns nil when r < 0 or r > n, where combin.Combinations would panic.
// Complexity: O(C(n,r)·r).
func combinations(n, r int) [][]int {
	if r < 0 || r > n {
		return nil
	}
	return combin.Combinations(n, r)
}
