// SPDX-License-Identifier: MIT
// Package: lvmesh/matrix
//
// validators.go — nil, shape and index checks.
//
// Purpose:
//  - Single source of truth for nil/shape/index checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Sparse) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateIndex ensures (i, j) addresses a cell of m. Assumes m != nil.
// Complexity: O(1).
func ValidateIndex(m *Sparse, i, j int) error {
	if i < 0 || i >= m.r {
		return validatorErrorf(fmt.Sprintf("ValidateIndex: row %d of %d", i, m.r), ErrOutOfRange)
	}
	if j < 0 || j >= m.c {
		return validatorErrorf(fmt.Sprintf("ValidateIndex: col %d of %d", j, m.c), ErrOutOfRange)
	}
	return nil
}

// ValidateMulCompatible ensures a·b is defined (a.Cols == b.Rows).
// Assumes both are non-nil.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Sparse) error {
	if a.c != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d · %dx%d", a.r, a.c, b.r, b.c),
			ErrDimensionMismatch)
	}
	return nil
}
