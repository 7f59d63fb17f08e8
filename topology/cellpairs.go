// SPDX-License-Identifier: MIT
// Package: lvmesh/topology
//
// cellpairs.go — pairs of cells sharing a codimension-one face.
//
// Policy per face f with neighbour set N (cells containing every vertex of
// f, ascending index):
//   • |N| = 0: ErrInconsistent.
//   • |N| = 1: boundary pair (N[0], −|RelativeOrientation(f, N[0])|).
//   • |N| = 2: one pair, orientation-resolved (see resolvePair).
//   • |N| ≥ 3: junction; all C(|N|,2) pairs in lexicographic order,
//     each orientation-resolved. WithDropJunctionPair omits the last one.
//
// Determinism: pairs are emitted face by face in face order.

package topology

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// CellPair is an ordered pair of cells sharing a face. For a boundary face
// Second is not a cell index but the negated local index of the face
// inside First.
type CellPair struct {
	First  int // cell index
	Second int // cell index, or −(local face index) for boundary faces
}

// IsBoundary reports whether the pair encodes a boundary face.
func (p CellPair) IsBoundary() bool {
	return p.Second < 0
}

// LocalFace returns the 1-based local face index of a boundary pair, 0 for
// an interior pair.
func (p CellPair) LocalFace() int {
	if p.Second < 0 {
		return -p.Second
	}
	return 0
}

// CellPairs returns, for every face of faces, the pairs of cells of m that
// share it. faces must have dimension m.Dim()−1 and index m's vertex
// buffer (typically faces = Skeleton(m, m.Dim()−1)).
func CellPairs(m, faces *mesh.Mesh, opts ...Option) ([]CellPair, error) {
	o := gatherOptions(opts...)

	// 1) Validate.
	if m == nil || faces == nil {
		return nil, fmt.Errorf("CellPairs: %w", ErrNilMesh)
	}
	if faces.Dim()+1 != m.Dim() {
		return nil, fmt.Errorf("CellPairs: face dimension %d for mesh dimension %d: %w",
			faces.Dim(), m.Dim(), ErrInvalidArgument)
	}
	if faces.NumVertices() != m.NumVertices() {
		return nil, fmt.Errorf("CellPairs: %d vs %d vertices: %w",
			faces.NumVertices(), m.NumVertices(), ErrVertexMismatch)
	}

	// 2) Walk faces in order.
	v2c := NewVertexCells(m)
	out := make([]CellPair, 0, faces.NumCells())
	for fi, f := range faces.Cells() {
		nbd := v2c.common(f)
		switch len(nbd) {
		case 0:
			return nil, fmt.Errorf("CellPairs: face %d %v: %w", fi, f, ErrInconsistent)
		case 1:
			r := RelativeOrientation(f, m.Cell(nbd[0]))
			out = append(out, CellPair{First: nbd[0], Second: -abs(r)})
		case 2:
			out = append(out, resolvePair(m, f, nbd[0], nbd[1]))
		default:
			combos := combinations(len(nbd), 2)
			if o.dropJunction {
				combos = combos[:len(combos)-1]
			}
			for _, c := range combos {
				out = append(out, resolvePair(m, f, nbd[c[0]], nbd[c[1]]))
			}
		}
	}
	return out, nil
}

// resolvePair orders two cells sharing f: (b, a) when a sees f positively
// and b negatively, (a, b) otherwise.
func resolvePair(m *mesh.Mesh, f mesh.Cell, a, b int) CellPair {
	ra := RelativeOrientation(f, m.Cell(a))
	rb := RelativeOrientation(f, m.Cell(b))
	if ra > 0 && rb < 0 {
		return CellPair{First: b, Second: a}
	}
	return CellPair{First: a, Second: b}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
