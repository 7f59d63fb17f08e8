// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// types.go — Point, Cell and the comparable Key used for cell lookups.

package mesh

import (
	"fmt"
	"sort"
	"strings"
)

// MaxDim is the largest intrinsic cell dimension supported (tetrahedra).
const MaxDim = 3

// noVertex pads unused Key slots.
const noVertex = -1

// Point is a vertex position; its length is the embedding dimension.
type Point []float64

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	out := make(Point, len(p))
	copy(out, p)
	return out
}

// Cell is an ordered tuple of vertex indices. Its length is Dim()+1.
type Cell []int

// Dim returns the intrinsic dimension of the cell (arity − 1).
func (c Cell) Dim() int {
	return len(c) - 1
}

// Clone returns an independent copy of c.
func (c Cell) Clone() Cell {
	out := make(Cell, len(c))
	copy(out, c)
	return out
}

// Sorted returns a copy of c with indices in ascending order.
// Complexity: O(k log k) for arity k.
func (c Cell) Sorted() Cell {
	out := c.Clone()
	sort.Ints(out)
	return out
}

// Key returns the comparable exact-tuple key of c. Cells longer than
// MaxDim+1 are truncated; New rejects such cells before keys are built.
func (c Cell) Key() Key {
	var k Key
	for i := range k {
		if i < len(c) {
			k[i] = c[i]
		} else {
			k[i] = noVertex
		}
	}
	return k
}

// String renders the cell as "(i j k)".
func (c Cell) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = fmt.Sprint(v)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Key is a fixed-size, comparable encoding of a Cell. Slots past the cell
// arity hold -1, so cells of different arity never collide.
type Key [MaxDim + 1]int

// Cell decodes the key back into a Cell.
func (k Key) Cell() Cell {
	out := make(Cell, 0, len(k))
	for _, v := range k {
		if v == noVertex {
			break
		}
		out = append(out, v)
	}
	return out
}
