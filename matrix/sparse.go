// SPDX-License-Identifier: MIT
// Package: lvmesh/matrix
//
// sparse.go — Sparse: coordinate-keyed signed-integer matrix.
//
// Contract:
//   1) Shape r×c with r ≥ 0, c ≥ 0 (empty meshes yield empty matrices).
//   2) Only non-zero values are stored; Set(i, j, 0) erases the entry.
//   3) Entries() iterates row-major (row asc, then col asc) for determinism.
//   4) At/Set never panic; they return ErrOutOfRange wrapped with context.
//
// Complexity:
//   - At/Set: O(1) expected (hash map).
//   - Entries/Transpose/sums: O(nnz log nnz) for the ordering, O(nnz) space.

package matrix

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// sparseErrorf wraps an underlying error with Sparse method context.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is an r×c matrix of int values storing only non-zero entries.
type Sparse struct {
	r, c int             // number of rows and columns
	data map[pairKey]int // non-zero entries
}

// NewSparse creates an empty r×c Sparse matrix.
// Returns ErrBadShape if r < 0 or c < 0.
// Complexity: O(1).
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewSparse(%d,%d): %w", rows, cols, ErrBadShape)
	}
	return &Sparse{r: rows, c: cols, data: make(map[pairKey]int)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Sparse) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
func (m *Sparse) Cols() int {
	return m.c
}

// NNZ returns the number of stored (non-zero) entries.
func (m *Sparse) NNZ() int {
	return len(m.data)
}

// At retrieves the element at (row, col); absent entries read as 0.
// Complexity: O(1).
func (m *Sparse) At(row, col int) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, sparseErrorf("At", row, col, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, sparseErrorf("At", row, col, err)
	}
	return m.data[pairKey{u: row, v: col}], nil
}

// Set assigns v at (row, col). Assigning 0 removes the entry.
// Complexity: O(1).
func (m *Sparse) Set(row, col, v int) error {
	if err := ValidateNotNil(m); err != nil {
		return sparseErrorf("Set", row, col, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return sparseErrorf("Set", row, col, err)
	}
	k := pairKey{u: row, v: col}
	if v == 0 {
		delete(m.data, k) // keep storage free of explicit zeros
		return nil
	}
	m.data[k] = v
	return nil
}

// Entries returns all stored entries in row-major order.
func (m *Sparse) Entries() []Entry {
	out := make([]Entry, 0, len(m.data))
	for k, v := range m.data {
		out = append(out, Entry{Row: k.u, Col: k.v, Value: v})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Row != out[b].Row {
			return out[a].Row < out[b].Row
		}
		return out[a].Col < out[b].Col
	})
	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(nnz).
func (m *Sparse) Clone() *Sparse {
	data := make(map[pairKey]int, len(m.data))
	for k, v := range m.data {
		data[k] = v
	}
	return &Sparse{r: m.r, c: m.c, data: data}
}

// Dense exports the matrix into a gonum *mat.Dense of float64 values.
// gonum cannot represent empty matrices, so a shape with a zero extent
// yields ErrBadShape.
// Complexity: O(r·c) memory.
func (m *Sparse) Dense() (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Sparse.Dense: %w", err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("Sparse.Dense: %dx%d: %w", m.r, m.c, ErrBadShape)
	}
	d := mat.NewDense(m.r, m.c, nil)
	for k, v := range m.data {
		d.Set(k.u, k.v, float64(v))
	}
	return d, nil
}

// String renders the matrix densely, one bracketed row per line.
// Intended for debugging small matrices.
func (m *Sparse) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[pairKey{u: i, v: j}])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
