// SPDX-License-Identifier: MIT
// Package: lvmesh/matrix
//
// sparse_ops.go — algebra on Sparse used by topology checks.
//
// Deliverables:
//   1) Transpose and Mul (sparse·sparse) with exact integer arithmetic.
//   2) Column/row reductions (signed and absolute) over stored entries.
//   3) IsZero for boundary-of-boundary style assertions.

package matrix

import "fmt"

// Transpose returns mᵀ as a new matrix.
// Complexity: O(nnz).
func (m *Sparse) Transpose() *Sparse {
	t := &Sparse{r: m.c, c: m.r, data: make(map[pairKey]int, len(m.data))}
	for k, v := range m.data {
		t.data[pairKey{u: k.v, v: k.u}] = v
	}
	return t
}

// Mul returns the product a·b.
// Returns ErrNilMatrix for nil operands and ErrDimensionMismatch when
// a.Cols() != b.Rows().
// Complexity: O(nnz(a) · avg row fill of b).
func Mul(a, b *Sparse) (*Sparse, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}

	// Bucket b by row so each a(i,k) visits only row k of b.
	rowsB := make(map[int][]Entry, b.r)
	for k, v := range b.data {
		rowsB[k.u] = append(rowsB[k.u], Entry{Row: k.u, Col: k.v, Value: v})
	}

	out := &Sparse{r: a.r, c: b.c, data: make(map[pairKey]int)}
	for ka, va := range a.data {
		for _, eb := range rowsB[ka.v] {
			key := pairKey{u: ka.u, v: eb.Col}
			s := out.data[key] + va*eb.Value
			if s == 0 {
				delete(out.data, key) // cancellation: keep zero-elision invariant
			} else {
				out.data[key] = s
			}
		}
	}
	return out, nil
}

// IsZero reports whether no entry is stored.
func (m *Sparse) IsZero() bool {
	return len(m.data) == 0
}

// ColSums returns Σ_i m(i,j) for every column j.
func (m *Sparse) ColSums() []int {
	out := make([]int, m.c)
	for k, v := range m.data {
		out[k.v] += v
	}
	return out
}

// ColAbsSums returns Σ_i |m(i,j)| for every column j.
func (m *Sparse) ColAbsSums() []int {
	out := make([]int, m.c)
	for k, v := range m.data {
		out[k.v] += abs(v)
	}
	return out
}

// RowAbsSums returns Σ_j |m(i,j)| for every row i.
func (m *Sparse) RowAbsSums() []int {
	out := make([]int, m.r)
	for k, v := range m.data {
		out[k.u] += abs(v)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
