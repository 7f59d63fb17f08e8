// SPDX-License-Identifier: MIT
// Package: lvmesh/intersect
//
// errors.go — sentinel errors for simplex intersection.

package intersect

import "errors"

var (
	// ErrUnsupported indicates a simplex arity or embedding without an
	// intersection routine (points, tetrahedra, mixed arities, U > 3).
	ErrUnsupported = errors.New("intersect: unsupported simplex pair")

	// ErrDimensionMismatch indicates vertices of different coordinate arity.
	ErrDimensionMismatch = errors.New("intersect: embedding dimension mismatch")

	// ErrDegenerate indicates a clipper without a plane (collinear
	// vertices) or a segment of zero length.
	ErrDegenerate = errors.New("intersect: degenerate clipper")
)
