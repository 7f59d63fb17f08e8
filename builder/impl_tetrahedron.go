// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_tetrahedron.go — the reference 3-simplex as a one-cell volume mesh.

package builder

import "github.com/katalvlaran/lvmesh/mesh"

// ReferenceTetrahedron returns a Constructor for the single cell (0, 1, 2, 3) on
// the origin and the three unit points.
func ReferenceTetrahedron() Constructor {
	return func(cfg builderConfig) (*mesh.Mesh, error) {
		return mesh.New(
			[]mesh.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			[]mesh.Cell{{0, 1, 2, 3}},
		)
	}
}
