// SPDX-License-Identifier: MIT
// Package: lvmesh/chart
//
// simplex.go — affine map shared by every chart variant.

package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmesh/mesh"
)

// simplex holds d+1 image vertices and the cached Jacobian.
type simplex struct {
	verts []mesh.Point
	jac   float64
}

func newSimplex(points []mesh.Point, d int) (simplex, error) {
	if len(points) != d+1 {
		return simplex{}, fmt.Errorf("%d vertices for dimension %d: %w", len(points), d, ErrArity)
	}
	u := len(points[0])
	if u < d {
		return simplex{}, fmt.Errorf("embedding %d below dimension %d: %w", u, d, ErrEmbedding)
	}
	verts := make([]mesh.Point, len(points))
	for i, p := range points {
		if len(p) != u {
			return simplex{}, fmt.Errorf("vertex %d has %d coordinates, want %d: %w", i, len(p), u, ErrEmbedding)
		}
		verts[i] = p.Clone()
	}

	// T has one column per edge v_j − v_last; J = √det(TᵀT).
	last := verts[d]
	t := mat.NewDense(u, d, nil)
	for j := 0; j < d; j++ {
		for r := 0; r < u; r++ {
			t.Set(r, j, verts[j][r]-last[r])
		}
	}
	var gram mat.Dense
	gram.Mul(t.T(), t)
	det := mat.Det(&gram)
	if det < 0 {
		det = 0 // round-off on degenerate cells
	}

	return simplex{verts: verts, jac: math.Sqrt(det)}, nil
}

func (s *simplex) dim() int {
	return len(s.verts) - 1
}

func (s *simplex) vertices() []mesh.Point {
	out := make([]mesh.Point, len(s.verts))
	for i, v := range s.verts {
		out[i] = v.Clone()
	}
	return out
}

func (s *simplex) point(u []float64) (mesh.Point, error) {
	d := s.dim()
	if len(u) != d {
		return nil, fmt.Errorf("Point: %d parameters, want %d: %w", len(u), d, ErrParam)
	}
	return s.affine(u), nil
}

// affine evaluates v_last + Σ u_i (v_i − v_last); u holds at least dim()
// parameters.
func (s *simplex) affine(u []float64) mesh.Point {
	d := s.dim()
	last := s.verts[d]
	p := last.Clone()
	for i := 0; i < d; i++ {
		for r := range p {
			p[r] += u[i] * (s.verts[i][r] - last[r])
		}
	}
	return p
}

func (s *simplex) center() mesh.Point {
	c := make(mesh.Point, len(s.verts[0]))
	for _, v := range s.verts {
		floats.Add(c, v)
	}
	floats.Scale(1/float64(len(s.verts)), c)
	return c
}

// rule maps reference nodes and weights onto the image.
func (s *simplex) rule(nodes [][]float64, weights []float64) Rule {
	r := Rule{
		Points:  make([]mesh.Point, len(nodes)),
		Weights: make([]float64, len(weights)),
	}
	for k, u := range nodes {
		r.Points[k] = s.affine(u)
		r.Weights[k] = weights[k] * s.jac
	}
	return r
}
