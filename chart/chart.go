// SPDX-License-Identifier: MIT
// Package: lvmesh/chart
//
// chart.go — the Chart variant, its constructors and quadrature rules.
//
// Contract:
//   • New picks the variant by vertex count: 2 → *Segment, 3 → *Triangle.
//   • Charts copy their vertices; later mutation of the source mesh does
//     not move an existing chart.
//   • Chart is sealed; only this package provides implementations.

package chart

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Kind tags the concrete chart variant.
type Kind int

const (
	KindSegment Kind = iota + 1
	KindTriangle
	KindSubdivision
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindSegment:
		return "segment"
	case KindTriangle:
		return "triangle"
	case KindSubdivision:
		return "subdivision"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Chart is an affine parametrization of one simplex.
type Chart interface {
	// Kind reports the concrete variant.
	Kind() Kind
	// Dim is the dimension of the reference domain.
	Dim() int
	// Vertices returns a copy of the image vertices.
	Vertices() []mesh.Point
	// Point maps a reference parameter of length Dim() to physical space.
	Point(u []float64) (mesh.Point, error)
	// Jacobian is √det(TᵀT) of the affine map.
	Jacobian() float64
	// Volume is the physical measure of the image.
	Volume() float64
	// Center is the vertex centroid of the image.
	Center() mesh.Point
	// Quadrature returns a physical rule exact for polynomials of the
	// given total degree.
	Quadrature(degree int) (Rule, error)

	sealed()
}

// Rule is a quadrature rule in physical coordinates.
type Rule struct {
	Points  []mesh.Point
	Weights []float64
}

// Len returns the number of nodes.
func (r Rule) Len() int {
	return len(r.Weights)
}

// Integrate evaluates Σ w_k f(x_k).
func (r Rule) Integrate(f func(mesh.Point) float64) float64 {
	var sum float64
	for k, p := range r.Points {
		sum += r.Weights[k] * f(p)
	}
	return sum
}

// New returns the chart spanned by points.
func New(points []mesh.Point) (Chart, error) {
	switch len(points) {
	case 2:
		return NewSegment(points[0], points[1])
	case 3:
		return NewTriangle(points[0], points[1], points[2])
	default:
		return nil, fmt.Errorf("New: %d vertices: %w", len(points), ErrArity)
	}
}

// FromCell returns the chart of cell i of m.
func FromCell(m *mesh.Mesh, i int) (Chart, error) {
	if m == nil {
		return nil, fmt.Errorf("FromCell: nil mesh: %w", ErrArity)
	}
	if i < 0 || i >= m.NumCells() {
		return nil, fmt.Errorf("FromCell: cell %d of %d: %w", i, m.NumCells(), mesh.ErrIndexOutOfRange)
	}
	points, err := m.VerticesOf(m.Cell(i))
	if err != nil {
		return nil, fmt.Errorf("FromCell: %w", err)
	}
	c, err := New(points)
	if err != nil {
		return nil, fmt.Errorf("FromCell: cell %d: %w", i, err)
	}
	return c, nil
}

// Integrate integrates f over c with a rule of the given degree.
func Integrate(c Chart, degree int, f func(mesh.Point) float64) (float64, error) {
	rule, err := c.Quadrature(degree)
	if err != nil {
		return 0, err
	}
	return rule.Integrate(f), nil
}
