// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// transform.go — geometric and orientation transforms.
//
// Naming contract:
//   • Package functions (Translate, Mirror, FlipOrientation, ...) return a
//     fresh copy and leave the input untouched.
//   • Methods of the same name mutate the receiver in place and return it.
//   • Validation happens before any write; a failing call mutates nothing.

package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Translate returns a copy of m with t added to every vertex.
func Translate(m *Mesh, t Point) (*Mesh, error) {
	if err := m.checkVector("Translate", t); err != nil {
		return nil, err
	}
	return m.Clone().Translate(t)
}

// Translate adds t to every vertex of m in place.
// Complexity: O(V·U).
func (m *Mesh) Translate(t Point) (*Mesh, error) {
	if err := m.checkVector("Translate", t); err != nil {
		return nil, err
	}
	for _, v := range m.vertices {
		floats.Add(v, t) // v += t
	}
	return m, nil
}

// Flip returns a copy of c with its first two indices swapped, inverting
// its orientation. Cells of arity < 2 are returned unchanged.
func Flip(c Cell) Cell {
	out := c.Clone()
	if len(out) >= 2 {
		out[0], out[1] = out[1], out[0]
	}
	return out
}

// FlipOrientation returns a copy of m with every cell flipped.
func FlipOrientation(m *Mesh) *Mesh {
	return m.Clone().FlipOrientation()
}

// FlipOrientation flips every cell of m in place and rebuilds the lookup.
func (m *Mesh) FlipOrientation() *Mesh {
	for _, c := range m.cells {
		if len(c) >= 2 {
			c[0], c[1] = c[1], c[0]
		}
	}
	m.reindex()
	return m
}

// Negate returns the oppositely oriented copy of m. The vertex buffer is
// copied as well, so the result is fully independent of m.
func Negate(m *Mesh) *Mesh {
	return FlipOrientation(m)
}

// Mirror returns a copy of m reflected across the plane through anchor
// with normal n.
func Mirror(m *Mesh, n, anchor Point) (*Mesh, error) {
	if _, err := m.unitNormal("Mirror", n, anchor); err != nil {
		return nil, err
	}
	return m.Clone().Mirror(n, anchor)
}

// Mirror reflects every vertex of m in place across the plane through
// anchor with normal n: v' = v − 2((v−anchor)·n̂) n̂, n̂ = n/|n|.
// Reflection reverses orientation; cells are left as they are.
func (m *Mesh) Mirror(n, anchor Point) (*Mesh, error) {
	unit, err := m.unitNormal("Mirror", n, anchor)
	if err != nil {
		return nil, err
	}
	rel := make([]float64, m.udim) // scratch for v − anchor
	for _, v := range m.vertices {
		floats.SubTo(rel, v, anchor)
		d := floats.Dot(rel, unit)
		floats.AddScaled(v, -2*d, unit)
	}
	return m, nil
}

// checkVector validates that t matches the embedding dimension.
func (m *Mesh) checkVector(op string, t Point) error {
	if len(t) != m.udim {
		return fmt.Errorf("%s: vector of length %d for U=%d: %w", op, len(t), m.udim, ErrEmbedding)
	}
	return nil
}

// unitNormal validates plane data and returns the normalized normal.
func (m *Mesh) unitNormal(op string, n, anchor Point) ([]float64, error) {
	if err := m.checkVector(op, n); err != nil {
		return nil, err
	}
	if err := m.checkVector(op, anchor); err != nil {
		return nil, err
	}
	norm := floats.Norm(n, 2)
	if norm == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrZeroNormal)
	}
	unit := make([]float64, len(n))
	floats.ScaleTo(unit, 1/norm, n)
	return unit, nil
}
