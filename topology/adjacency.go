// SPDX-License-Identifier: MIT
// Package: lvmesh/topology
//
// adjacency.go — dense vertex → incident-cell table.
//
// Layout:
//   • table is NumVertices × Width, row-major, Width = max vertex degree.
//   • Row v holds the indices of cells referencing v in cell order,
//     followed by NoCell padding; counts[v] is the true row length.
//
// Complexity: two passes over the cells, O(C·(D+1)) time, O(V·Width) space.

package topology

import "github.com/katalvlaran/lvmesh/mesh"

// NoCell marks an unused slot of a VertexCells row.
const NoCell = -1

// VertexCells maps every vertex to the cells that reference it.
type VertexCells struct {
	table  []int // flattened NumVertices × width table
	counts []int // true row lengths
	width  int   // max degree over all vertices
}

// NewVertexCells builds the vertex → cell table of m.
func NewVertexCells(m *mesh.Mesh) *VertexCells {
	n := m.NumVertices()
	counts := make([]int, n)

	// Pass 1: per-vertex degree, to size the table.
	for _, c := range m.Cells() {
		for _, v := range c {
			counts[v]++
		}
	}
	width := 0
	for _, k := range counts {
		if k > width {
			width = k
		}
	}

	// Pass 2: fill rows in cell enumeration order.
	table := make([]int, n*width)
	for i := range table {
		table[i] = NoCell
	}
	fill := make([]int, n)
	for ci, c := range m.Cells() {
		for _, v := range c {
			table[v*width+fill[v]] = ci
			fill[v]++
		}
	}

	return &VertexCells{table: table, counts: counts, width: width}
}

// Width returns the maximum vertex degree (the table row width).
func (vc *VertexCells) Width() int {
	return vc.width
}

// NumVertices returns the number of table rows.
func (vc *VertexCells) NumVertices() int {
	return len(vc.counts)
}

// Count returns the number of cells referencing v.
func (vc *VertexCells) Count(v int) int {
	return vc.counts[v]
}

// At returns slot k of row v, NoCell past the row's true length.
func (vc *VertexCells) At(v, k int) int {
	return vc.table[v*vc.width+k]
}

// Row returns the incident cells of v (no padding). The slice aliases the
// table and must not be modified.
func (vc *VertexCells) Row(v int) []int {
	start := v * vc.width
	return vc.table[start : start+vc.counts[v]]
}

// common returns the cells incident to every vertex of c, ascending.
// Rows are ascending by construction, so a merge-style intersection works.
func (vc *VertexCells) common(c mesh.Cell) []int {
	if len(c) == 0 {
		return nil
	}
	acc := append([]int(nil), vc.Row(c[0])...)
	for _, v := range c[1:] {
		acc = intersectSorted(acc, vc.Row(v))
		if len(acc) == 0 {
			break
		}
	}
	return acc
}

// intersectSorted returns the ascending intersection of two ascending
// slices, reusing a's storage.
func intersectSorted(a, b []int) []int {
	out := a[:0]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			if len(out) == 0 || out[len(out)-1] != a[i] {
				out = append(out, a[i])
			}
			i++
			j++
		}
	}
	return out
}
