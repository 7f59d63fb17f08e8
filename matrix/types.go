// SPDX-License-Identifier: MIT
// Package: lvmesh/matrix
//
// types.go — domain types shared by the sparse storage.

package matrix

// pairKey is an ordered (row, col) pair used as the sparse storage key.
// Using ints keeps the key compact and hash-friendly.
// Complexity: O(1) to build and hash.
type pairKey struct {
	u int // row index
	v int // column index
}

// Entry is one stored non-zero element of a Sparse matrix.
type Entry struct {
	Row, Col int // position
	Value    int // non-zero value
}
