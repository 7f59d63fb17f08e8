// SPDX-License-Identifier: MIT
// Package: lvmesh/topology
//
// connectivity.go — oriented incidence matrix between two skeletons.
//
// Contract:
//   • Rows index the cells of mcells, columns the cells of kcells.
//   • Entry (j, i) = op(RelativeOrientation(kcells[i], mcells[j])), stored
//     only for incident pairs (non-zero orientation).
//   • Both meshes must index the same vertex buffer (equal NumVertices)
//     and Dim(mcells) == Dim(kcells)+1.
//
// Complexity: O(V · deg_k · deg_m) candidate pairs, each O(D²).

package topology

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/matrix"
	"github.com/katalvlaran/lvmesh/mesh"
)

// Connectivity builds the numcells(mcells) × numcells(kcells) oriented
// incidence matrix. The default entry op is Sign, giving the ±1/0 matrix of
// the discrete exterior derivative; WithEntryOp(Identity) keeps the local
// face indices.
func Connectivity(kcells, mcells *mesh.Mesh, opts ...Option) (*matrix.Sparse, error) {
	o := gatherOptions(opts...)

	// 1) Validate.
	if kcells == nil || mcells == nil {
		return nil, fmt.Errorf("Connectivity: %w", ErrNilMesh)
	}
	if kcells.NumVertices() != mcells.NumVertices() {
		return nil, fmt.Errorf("Connectivity: %d vs %d vertices: %w",
			kcells.NumVertices(), mcells.NumVertices(), ErrVertexMismatch)
	}
	if mcells.Dim() != kcells.Dim()+1 {
		return nil, fmt.Errorf("Connectivity: dimensions %d and %d: %w",
			kcells.Dim(), mcells.Dim(), ErrInvalidArgument)
	}

	// 2) Prepare adjacency of both sides and the empty result.
	vtok := NewVertexCells(kcells)
	vtom := NewVertexCells(mcells)
	out, err := matrix.NewSparse(mcells.NumCells(), kcells.NumCells())
	if err != nil {
		return nil, fmt.Errorf("Connectivity: %w", err)
	}

	// 3) Every incident (k, m) pair shares at least one vertex.
	for v := 0; v < vtok.NumVertices(); v++ {
		for _, i := range vtok.Row(v) {
			kc := kcells.Cell(i)
			for _, j := range vtom.Row(v) {
				r := RelativeOrientation(kc, mcells.Cell(j))
				if r == 0 {
					continue
				}
				if err := out.Set(j, i, o.op(r)); err != nil {
					return nil, fmt.Errorf("Connectivity: %w", err)
				}
			}
		}
	}
	return out, nil
}
