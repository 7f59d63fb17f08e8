// SPDX-License-Identifier: MIT
// Package: lvmesh/topology
//
// skeleton.go — k-skeleton extraction.
//
// Contract:
//   • 0 ≤ k ≤ D, else ErrInvalidArgument.
//   • k == D (no predicate): the input mesh itself is returned (aliasing).
//   • k < D: every cell contributes its C(D+1, k+1) vertex combinations in
//     lexicographic order; each combination is sorted ascending and the
//     candidates are deduplicated keeping first occurrences.
//   • The result shares the source vertex buffer.
//
// Complexity:
//   • Time: O(C·C(D+1,k+1)·k) for enumeration plus O(candidates) dedup.
//   • Space: O(candidates).

package topology

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Skeleton returns the k-skeleton of m: all distinct k-dimensional
// sub-simplices of its cells, as sorted vertex tuples.
//
// At the top dimension m itself is returned. Mutating the result in place
// (Translate, FlipOrientation, ...) then mutates m; clone first when that
// is not wanted. Lower skeletons share m's vertex buffer, so in-place
// vertex transforms are visible through both meshes as well.
func Skeleton(m *mesh.Mesh, k int) (*mesh.Mesh, error) {
	return skeleton("Skeleton", m, k, nil)
}

// SkeletonFunc is Skeleton restricted to the combinations accepted by pred.
// pred sees each (k+1)-tuple as enumerated from its parent cell, before
// sorting. At the top dimension pred filters the cells themselves, which
// keep their stored order and multiplicity.
func SkeletonFunc(m *mesh.Mesh, k int, pred func(mesh.Cell) bool) (*mesh.Mesh, error) {
	if pred == nil {
		return nil, fmt.Errorf("SkeletonFunc: nil predicate: %w", ErrInvalidArgument)
	}
	return skeleton("SkeletonFunc", m, k, pred)
}

func skeleton(op string, m *mesh.Mesh, k int, pred func(mesh.Cell) bool) (*mesh.Mesh, error) {
	// 1) Validate eagerly.
	if m == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilMesh)
	}
	d := m.Dim()
	if k < 0 || k > d {
		return nil, fmt.Errorf("%s: k=%d outside [0,%d]: %w", op, k, d, ErrInvalidArgument)
	}

	// 2) Top dimension: identity (or plain filtering when predicated).
	if k == d {
		if pred == nil {
			return m, nil
		}
		kept := lo.Filter(m.Cells(), func(c mesh.Cell, _ int) bool { return pred(c) })
		return mesh.New(m.Vertices(), lo.Map(kept, func(c mesh.Cell, _ int) mesh.Cell { return c.Clone() }),
			mesh.WithDim(k))
	}

	// 3) Enumerate candidate k-cells in cell order, combination order.
	combos := combinations(d+1, k+1)
	cands := make([]mesh.Cell, 0, m.NumCells()*len(combos))
	for _, c := range m.Cells() {
		for _, combo := range combos {
			t := make(mesh.Cell, k+1)
			for j, pos := range combo {
				t[j] = c[pos]
			}
			if pred != nil && !pred(t) {
				continue
			}
			sort.Ints(t)
			cands = append(cands, t)
		}
	}

	// 4) Stable dedup on the canonical key, then wrap over the shared buffer.
	cells := lo.UniqBy(cands, func(c mesh.Cell) mesh.Key { return c.Key() })
	sk, err := mesh.New(m.Vertices(), cells, mesh.WithDim(k))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sk, nil
}
