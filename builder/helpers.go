// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// helpers.go — shared grid and orientation routines.

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// gridIndex maps grid node (i, j) of an (nu+1)-wide lattice to its
// row-major vertex index.
func gridIndex(nu, i, j int) int {
	return j*(nu+1) + i
}

// patch emits an nu×nv lattice spanned by eu and ev from origin, two
// triangles per quad, oriented counter-clockwise in (eu, ev).
//
// Node order: row-major (j asc, then i asc). Cell order: per quad (i, j)
// in the same order, lower triangle (a, b, c) then upper (a, c, d).
func patch(origin, eu, ev mesh.Point, nu, nv int) ([]mesh.Point, []mesh.Cell) {
	vertices := make([]mesh.Point, 0, (nu+1)*(nv+1))
	for j := 0; j <= nv; j++ {
		for i := 0; i <= nu; i++ {
			s, t := float64(i)/float64(nu), float64(j)/float64(nv)
			p := origin.Clone()
			for k := range p {
				p[k] += s*eu[k] + t*ev[k]
			}
			vertices = append(vertices, p)
		}
	}

	cells := make([]mesh.Cell, 0, 2*nu*nv)
	for j := 0; j < nv; j++ {
		for i := 0; i < nu; i++ {
			a := gridIndex(nu, i, j)
			b := gridIndex(nu, i+1, j)
			c := gridIndex(nu, i+1, j+1)
			d := gridIndex(nu, i, j+1)
			cells = append(cells, mesh.Cell{a, b, c}, mesh.Cell{a, c, d})
		}
	}
	return vertices, cells
}

// orientOutward flips every triangle whose normal points towards center.
func orientOutward(vertices []mesh.Point, cells []mesh.Cell, center r3.Vec) {
	for _, c := range cells {
		a, b, d := vec3(vertices[c[0]]), vec3(vertices[c[1]]), vec3(vertices[c[2]])
		n := r3.Cross(r3.Sub(b, a), r3.Sub(d, a))
		centroid := r3.Scale(1.0/3, r3.Add(a, r3.Add(b, d)))
		if r3.Dot(n, r3.Sub(centroid, center)) < 0 {
			c[1], c[2] = c[2], c[1]
		}
	}
}

func vec3(p mesh.Point) r3.Vec {
	return r3.Vec{X: p[0], Y: p[1], Z: p[2]}
}
