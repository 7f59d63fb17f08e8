// SPDX-License-Identifier: MIT
// Package: lvmesh/topology
//
// orientation.go — relative orientation of a face inside a cell.
//
// Definition: let cell have arity n and face arity n−1. If face is not a
// subset of cell the result is 0. Otherwise let i (1-based) be the position
// in cell of the single vertex missing from face, and p the permutation
// taking face onto cell-with-position-i-removed. The result is
//
//	(−1)^(i−1) · sgn(p) · i
//
// so |result| is the local face index and its sign is the orientation
// induced on face by cell.

package topology

import "github.com/katalvlaran/lvmesh/mesh"

// RelativeOrientation returns the signed local index of face in cell, or 0
// when face is not a codimension-one face of cell.
// Complexity: O(n²) for arity n ≤ 4.
func RelativeOrientation(face, cell mesh.Cell) int {
	if len(cell) != len(face)+1 {
		return 0
	}

	// Locate every face vertex in cell; mark covered positions.
	pos := make([]int, len(face))
	used := make([]bool, len(cell))
	for j, v := range face {
		pos[j] = -1
		for i, w := range cell {
			if w == v && !used[i] {
				pos[j] = i
				used[i] = true
				break
			}
		}
		if pos[j] < 0 {
			return 0 // absent (or over-used) vertex: not a face
		}
	}

	// The one uncovered position is the opposite vertex.
	missing := 0
	for i, u := range used {
		if !u {
			missing = i
			break
		}
	}

	// Positions within cell minus the missing slot.
	perm := make([]int, len(pos))
	for j, p := range pos {
		if p > missing {
			p--
		}
		perm[j] = p
	}

	sign := 1
	if missing%2 == 1 {
		sign = -1 // (−1)^(i−1) with i = missing+1
	}
	return sign * parity(perm) * (missing + 1)
}

// parity returns the sign of a permutation of {0..n-1} by counting
// inversions.
func parity(p []int) int {
	inv := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				inv++
			}
		}
	}
	if inv%2 == 0 {
		return 1
	}
	return -1
}
