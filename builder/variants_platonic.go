// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// variants_platonic.go — canonical data for Platonic surfaces.
//
// Design:
//   • Vertex tables are centred on the origin.
//   • Triangle faces are derived, not tabulated: a face is every
//     lexicographic triple (i<j<k) whose three sides all have the minimum
//     inter-vertex distance. This yields 4, 8 and 20 faces for the
//     tetrahedron, octahedron and icosahedron.
//   • The cube has square faces and is built from cuboid patches; the
//     dodecahedron has pentagonal faces and has no surface here.
//
// Determinism:
//   • Vertex order is the table order; face order is lexicographic before
//     outward orientation is applied.

package builder

import (
	"fmt"
	"math"
	"strings"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// ParsePlatonicName maps a case-insensitive solid name to its enum value.
// Unknown names → ErrUnknownSolid.
func ParsePlatonicName(s string) (PlatonicName, error) {
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("ParsePlatonicName: %q: %w", s, ErrUnknownSolid)
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  F=4
	Cube                             // V=8,  F=12 triangles
	Octahedron                       // V=6,  F=8
	Dodecahedron                     // no triangle surface
	Icosahedron                      // V=12, F=20
)

// phi is the golden ratio.
var phi = (1 + math.Sqrt(5)) / 2

// platonicVertices holds the triangle-faced shells.
var platonicVertices = map[PlatonicName][][3]float64{
	Tetrahedron: {
		{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
	},
	Octahedron: {
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
	},
	Icosahedron: {
		{0, 1, phi}, {0, 1, -phi}, {0, -1, phi}, {0, -1, -phi},
		{1, phi, 0}, {1, -phi, 0}, {-1, phi, 0}, {-1, -phi, 0},
		{phi, 0, 1}, {phi, 0, -1}, {-phi, 0, 1}, {-phi, 0, -1},
	},
}

// edgeFaces returns every lexicographic triple of mutually nearest vertices.
func edgeFaces(vs [][3]float64) [][3]int {
	dist2 := func(a, b [3]float64) float64 {
		dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
		return dx*dx + dy*dy + dz*dz
	}
	edge := math.Inf(1)
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			edge = math.Min(edge, dist2(vs[i], vs[j]))
		}
	}
	near := func(a, b int) bool {
		return math.Abs(dist2(vs[a], vs[b])-edge) <= 1e-9*edge
	}

	var faces [][3]int
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			if !near(i, j) {
				continue
			}
			for k := j + 1; k < len(vs); k++ {
				if near(i, k) && near(j, k) {
					faces = append(faces, [3]int{i, j, k})
				}
			}
		}
	}
	return faces
}
