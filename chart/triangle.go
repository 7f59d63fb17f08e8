// SPDX-License-Identifier: MIT
// Package: lvmesh/chart
//
// triangle.go — 2-simplex chart with symmetric quadrature rules.
//
// Rules (reference weights sum to 1/2, the reference area):
//   degree 0–1: centroid;
//   degree 2:   three interior points;
//   degree 3–4: six points (Dunavant);
//   degree 5:   seven points (Dunavant).

package chart

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Triangle charts the reference right triangle onto (a, b, c); the
// reference origin maps to c.
type Triangle struct {
	simplex
}

// NewTriangle returns the chart of the triangle (a, b, c).
func NewTriangle(a, b, c mesh.Point) (*Triangle, error) {
	s, err := newSimplex([]mesh.Point{a, b, c}, 2)
	if err != nil {
		return nil, fmt.Errorf("NewTriangle: %w", err)
	}
	return &Triangle{simplex: s}, nil
}

func (*Triangle) sealed() {}

// Kind returns KindTriangle.
func (*Triangle) Kind() Kind { return KindTriangle }

// Dim returns 2.
func (*Triangle) Dim() int { return 2 }

// Vertices returns a copy of (a, b, c).
func (t *Triangle) Vertices() []mesh.Point { return t.vertices() }

// Point maps u = [s, r] to c + s(a − c) + r(b − c).
func (t *Triangle) Point(u []float64) (mesh.Point, error) { return t.point(u) }

// Jacobian returns twice the triangle area.
func (t *Triangle) Jacobian() float64 { return t.jac }

// Volume returns the triangle area.
func (t *Triangle) Volume() float64 { return t.jac / 2 }

// Center returns the centroid.
func (t *Triangle) Center() mesh.Point { return t.center() }

// Quadrature returns the smallest tabulated rule exact for degree.
func (t *Triangle) Quadrature(degree int) (Rule, error) {
	nodes, weights, err := triangleRule(degree)
	if err != nil {
		return Rule{}, err
	}
	return t.rule(nodes, weights), nil
}

// orbit3 expands the symmetric orbit (a, a, 1−2a) into its three
// reference points.
func orbit3(a float64) [][]float64 {
	b := 1 - 2*a
	return [][]float64{{a, a}, {b, a}, {a, b}}
}

func triangleRule(degree int) ([][]float64, []float64, error) {
	switch {
	case degree < 0 || degree > 5:
		return nil, nil, fmt.Errorf("Quadrature: degree %d: %w", degree, ErrNoRule)
	case degree <= 1:
		return [][]float64{{1.0 / 3, 1.0 / 3}}, []float64{0.5}, nil
	case degree == 2:
		return orbit3(1.0 / 6), []float64{1.0 / 6, 1.0 / 6, 1.0 / 6}, nil
	case degree <= 4:
		const (
			a, wa = 0.445948490915965, 0.223381589678011
			b, wb = 0.091576213509771, 0.109951743655322
		)
		nodes := append(orbit3(a), orbit3(b)...)
		return nodes, halves(wa, wa, wa, wb, wb, wb), nil
	default:
		const (
			w0    = 0.225
			a, wa = 0.470142064105115, 0.132394152788506
			b, wb = 0.101286507323456, 0.125939180544827
		)
		nodes := append([][]float64{{1.0 / 3, 1.0 / 3}}, orbit3(a)...)
		nodes = append(nodes, orbit3(b)...)
		return nodes, halves(w0, wa, wa, wa, wb, wb, wb), nil
	}
}

// halves scales unit-sum weights to the reference area 1/2.
func halves(w ...float64) []float64 {
	for i := range w {
		w[i] /= 2
	}
	return w
}
