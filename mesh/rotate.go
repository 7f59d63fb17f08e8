// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// rotate.go — rigid rotations built on sdfx transformation matrices.
//
// Convention: angles are Euler angles in radians applied about X, then Y,
// then Z (R = Rz·Ry·Rx). A 3D mesh takes three angles; a 2D mesh takes a
// single angle about the implicit Z axis.

package mesh

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Rotate returns a rotated copy of m.
func Rotate(m *Mesh, angles []float64) (*Mesh, error) {
	if _, err := m.rotation(angles); err != nil {
		return nil, err
	}
	return m.Clone().Rotate(angles)
}

// Rotate rotates every vertex of m in place about the origin.
// Complexity: O(V).
func (m *Mesh) Rotate(angles []float64) (*Mesh, error) {
	r, err := m.rotation(angles)
	if err != nil {
		return nil, err
	}
	for _, v := range m.vertices {
		p := v3.Vec{X: v[0], Y: v[1]}
		if m.udim == 3 {
			p.Z = v[2]
		}
		q := r.MulPosition(p)
		v[0], v[1] = q.X, q.Y
		if m.udim == 3 {
			v[2] = q.Z
		}
	}
	return m, nil
}

// rotation validates angles against the embedding and composes the matrix.
func (m *Mesh) rotation(angles []float64) (sdf.M44, error) {
	switch {
	case m.udim == 3 && len(angles) == 3:
		return sdf.RotateZ(angles[2]).Mul(sdf.RotateY(angles[1])).Mul(sdf.RotateX(angles[0])), nil
	case m.udim == 2 && len(angles) == 1:
		return sdf.RotateZ(angles[0]), nil
	default:
		return sdf.M44{}, fmt.Errorf("Rotate: %d angles for U=%d: %w", len(angles), m.udim, ErrEmbedding)
	}
}
