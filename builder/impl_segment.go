// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_segment.go — implementation of Segment(length, n) constructor.
//
// Contract:
//   • length > 0 (else ErrBadSize), n ≥ MinCells (else ErrTooFewCells).
//   • Vertices x_i = i·length/n for i ∈ [0, n], natural embedding U = 1.
//   • Cells (i, i+1) in ascending order.
//
// Complexity: O(n) time and space.

package builder

import "github.com/katalvlaran/lvmesh/mesh"

// Segment returns a Constructor for a uniform chain of n segments.
func Segment(length float64, n int) Constructor {
	return func(cfg builderConfig) (*mesh.Mesh, error) {
		// 1) Validate parameters early (fail fast; no partial work).
		if err := validateExtent(MethodSegment, length); err != nil {
			return nil, err
		}
		if err := validateMin(MethodSegment, n, MinCells); err != nil {
			return nil, err
		}

		// 2) Vertices then cells, both in ascending index order.
		vertices := make([]mesh.Point, n+1)
		for i := range vertices {
			vertices[i] = mesh.Point{length * float64(i) / float64(n)}
		}
		cells := make([]mesh.Cell, n)
		for i := range cells {
			cells[i] = mesh.Cell{i, i + 1}
		}
		return mesh.New(vertices, cells)
	}
}
