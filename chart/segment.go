// SPDX-License-Identifier: MIT
// Package: lvmesh/chart
//
// segment.go — 1-simplex chart with Gauss–Legendre quadrature.

package chart

import (
	"fmt"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Segment charts the interval [0,1] onto the segment (a, b); u = 0 maps
// to b and u = 1 to a.
type Segment struct {
	simplex
}

// NewSegment returns the chart of the segment (a, b).
func NewSegment(a, b mesh.Point) (*Segment, error) {
	s, err := newSimplex([]mesh.Point{a, b}, 1)
	if err != nil {
		return nil, fmt.Errorf("NewSegment: %w", err)
	}
	return &Segment{simplex: s}, nil
}

func (*Segment) sealed() {}

// Kind returns KindSegment.
func (*Segment) Kind() Kind { return KindSegment }

// Dim returns 1.
func (*Segment) Dim() int { return 1 }

// Vertices returns a copy of (a, b).
func (s *Segment) Vertices() []mesh.Point { return s.vertices() }

// Point maps u = [t] to b + t(a − b).
func (s *Segment) Point(u []float64) (mesh.Point, error) { return s.point(u) }

// Jacobian returns the segment length.
func (s *Segment) Jacobian() float64 { return s.jac }

// Volume returns the segment length.
func (s *Segment) Volume() float64 { return s.jac }

// Center returns the midpoint.
func (s *Segment) Center() mesh.Point { return s.center() }

// Quadrature returns the ⌊degree/2⌋+1 point Gauss–Legendre rule.
func (s *Segment) Quadrature(degree int) (Rule, error) {
	if degree < 0 {
		return Rule{}, fmt.Errorf("Quadrature: degree %d: %w", degree, ErrNoRule)
	}
	n := degree/2 + 1
	x := make([]float64, n)
	w := make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, 0, 1)

	nodes := make([][]float64, n)
	for k := range x {
		nodes[k] = []float64{x[k]}
	}
	return s.rule(nodes, w), nil
}
