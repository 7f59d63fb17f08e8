// SPDX-License-Identifier: MIT
// Package: lvmesh/chart
//
// subdivision.go — barycentric refinement of triangle charts.
//
// Refine splits a triangle (v0, v1, v2) with centroid c and edge
// midpoints m01, m12, m20 into six children of equal area, ordered per
// parent edge (i, i+1):
//
//	(v_i, m_i(i+1), c), (v_(i+1), c, m_i(i+1))
//
// All children keep the orientation of the parent.

package chart

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Subdivision is one child of a barycentric refinement.
type Subdivision struct {
	Triangle
	parent Chart
	index  int
}

func (*Subdivision) sealed() {}

// Kind returns KindSubdivision.
func (*Subdivision) Kind() Kind { return KindSubdivision }

// Parent returns the refined chart.
func (s *Subdivision) Parent() Chart { return s.parent }

// Index returns the position of s among its siblings, in [0, 6).
func (s *Subdivision) Index() int { return s.index }

// Refine returns the six barycentric children of a triangle or of a
// subdivision child.
func Refine(c Chart) ([]*Subdivision, error) {
	if c == nil || c.Dim() != 2 {
		return nil, fmt.Errorf("Refine: %w", ErrUnsupported)
	}
	v := c.Vertices()
	center := c.Center()

	children := make([]*Subdivision, 0, 6)
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		mid := make(mesh.Point, len(v[i]))
		floats.AddTo(mid, v[i], v[j])
		floats.Scale(0.5, mid)

		for _, tri := range [2][3]mesh.Point{
			{v[i], mid, center},
			{v[j], center, mid},
		} {
			t, err := NewTriangle(tri[0], tri[1], tri[2])
			if err != nil {
				return nil, fmt.Errorf("Refine: %w", err)
			}
			children = append(children, &Subdivision{Triangle: *t, parent: c, index: len(children)})
		}
	}
	return children, nil
}
