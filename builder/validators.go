// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// validators.go — parameter checks shared by Constructor factories.

package builder

import (
	"fmt"
	"math"
)

// validateMin ensures that got ≥ min, else ErrTooFewCells.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: count must be ≥ %d, got %d: %w", method, min, got, ErrTooFewCells)
	}
	return nil
}

// validateExtent ensures that every extent is finite and positive, else
// ErrBadSize.
func validateExtent(method string, extents ...float64) error {
	for _, e := range extents {
		if !(e > 0) || math.IsInf(e, 1) {
			return fmt.Errorf("%s: extent must be > 0, got %v: %w", method, e, ErrBadSize)
		}
	}
	return nil
}
