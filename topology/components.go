// SPDX-License-Identifier: MIT
// Package: lvmesh/topology
//
// components.go — face-connected components of a mesh.
//
// Two cells are adjacent when they share a (D−1)-face. Components are found
// by breadth-first search over that dual graph, seeded at the lowest
// unvisited cell index, so component order and in-component order are
// deterministic.
//
// Complexity: O(C·(D+1)·W) where W is the vertex-to-cell width.

package topology

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Components returns the face-connected components of m. Each component
// lists cell indices in BFS visit order; components are ordered by their
// lowest cell index. Cells of a point mesh are singletons.
func Components(m *mesh.Mesh) ([][]int, error) {
	if m == nil {
		return nil, fmt.Errorf("Components: %w", ErrNilMesh)
	}
	n := m.NumCells()
	if n == 0 {
		return nil, nil
	}

	// 1) Local faces: every D-subset of the D+1 cell slots.
	var local [][]int
	if m.Dim() > 0 {
		local = combinations(m.Dim()+1, m.Dim())
	}
	v2c := NewVertexCells(m)
	face := make(mesh.Cell, m.Dim())

	// 2) BFS from each unvisited cell.
	seen := make([]bool, n)
	var comps [][]int
	for c0 := 0; c0 < n; c0++ {
		if seen[c0] {
			continue
		}
		queue := []int{c0}
		seen[c0] = true
		for qi := 0; qi < len(queue); qi++ {
			cell := m.Cell(queue[qi])
			for _, slots := range local {
				for k, s := range slots {
					face[k] = cell[s]
				}
				for _, nb := range v2c.common(face) {
					if !seen[nb] {
						seen[nb] = true
						queue = append(queue, nb)
					}
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps, nil
}
