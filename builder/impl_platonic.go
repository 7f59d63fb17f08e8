// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_platonic.go — implementation of Platonic(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Icosahedron}; Dodecahedron
//     and unknown names → ErrUnknownSolid.
//   • Vertices in table order; faces oriented outward (normal · centroid > 0).
//   • Cube is the 2×2×2 cuboid surface centred on the origin.
//
// Complexity: O(V³) face derivation on tables with V ≤ 12.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Platonic returns a Constructor for the triangulated surface of name.
func Platonic(name PlatonicName) Constructor {
	return func(cfg builderConfig) (*mesh.Mesh, error) {
		if name == Cube {
			return cuboid(MethodPlatonic, mesh.Point{-1, -1, -1}, 2, 2, 2, 1, cfg)
		}

		// 1) Lookup the shell (O(1) map lookup).
		table, ok := platonicVertices[name]
		if !ok {
			return nil, fmt.Errorf("%s: %v: %w", MethodPlatonic, name, ErrUnknownSolid)
		}

		// 2) Vertices in table order.
		vertices := make([]mesh.Point, len(table))
		for i, v := range table {
			vertices[i] = mesh.Point{v[0], v[1], v[2]}
		}

		// 3) Lexicographic faces, then outward orientation about the origin.
		faces := edgeFaces(table)
		cells := make([]mesh.Cell, len(faces))
		for i, f := range faces {
			cells[i] = mesh.Cell{f[0], f[1], f[2]}
		}
		orientOutward(vertices, cells, r3.Vec{})
		return mesh.New(vertices, cells)
	}
}
