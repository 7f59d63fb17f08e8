// SPDX-License-Identifier: MIT
// Package: lvmesh/topology
//
// queries.go — whole-mesh queries composed from skeleton and connectivity.

package topology

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// IsOriented reports whether every (D−1)-face of m has a signed incidence
// sum of absolute value at most 1 across its cells: each interior face is
// seen once positively and once negatively. Point meshes are oriented.
func IsOriented(m *mesh.Mesh) (bool, error) {
	if m == nil {
		return false, fmt.Errorf("IsOriented: %w", ErrNilMesh)
	}
	if m.Dim() == 0 {
		return true, nil
	}
	faces, err := Skeleton(m, m.Dim()-1)
	if err != nil {
		return false, fmt.Errorf("IsOriented: %w", err)
	}
	d, err := Connectivity(faces, m)
	if err != nil {
		return false, fmt.Errorf("IsOriented: %w", err)
	}
	for _, s := range d.ColSums() {
		if s > 1 || s < -1 {
			return false, nil
		}
	}
	return true, nil
}

// Boundary returns the (D−1)-faces of m that belong to exactly one cell,
// in skeleton order and oriented as induced by that cell (the face is
// flipped where its relative orientation is negative). The result shares
// m's vertex buffer. Point meshes have an empty boundary.
func Boundary(m *mesh.Mesh) (*mesh.Mesh, error) {
	if m == nil {
		return nil, fmt.Errorf("Boundary: %w", ErrNilMesh)
	}
	if m.Dim() == 0 {
		return mesh.New(m.Vertices(), nil, mesh.WithDim(0))
	}
	faces, err := Skeleton(m, m.Dim()-1)
	if err != nil {
		return nil, fmt.Errorf("Boundary: %w", err)
	}

	v2c := NewVertexCells(m)
	var cells []mesh.Cell
	for _, f := range faces.Cells() {
		nbd := v2c.common(f)
		if len(nbd) != 1 {
			continue
		}
		c := f.Clone()
		if RelativeOrientation(f, m.Cell(nbd[0])) < 0 {
			c = mesh.Flip(c)
		}
		cells = append(cells, c)
	}
	return mesh.New(m.Vertices(), cells, mesh.WithDim(m.Dim()-1))
}

// EulerCharacteristic returns Σ_k (−1)^k · #k-cells over all skeletons of
// m, counting only referenced vertices. A closed triangulated sphere gives 2.
func EulerCharacteristic(m *mesh.Mesh) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("EulerCharacteristic: %w", ErrNilMesh)
	}
	chi := 0
	sign := 1
	for k := 0; k <= m.Dim(); k++ {
		sk, err := Skeleton(m, k)
		if err != nil {
			return 0, fmt.Errorf("EulerCharacteristic: %w", err)
		}
		chi += sign * sk.NumCells()
		sign = -sign
	}
	return chi, nil
}
