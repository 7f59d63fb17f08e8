// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("<Method>: ...: %w").
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewCells indicates a subdivision count below the constructor's minimum.
var ErrTooFewCells = errors.New("builder: subdivision count too small")

// ErrBadSize indicates a non-positive extent, or a placement (origin,
// embedding, shift) whose arity does not fit the mesh.
var ErrBadSize = errors.New("builder: invalid size")

// ErrUnknownSolid indicates a PlatonicName without a triangulated surface.
var ErrUnknownSolid = errors.New("builder: unknown solid")

// ErrNeedRandSource indicates jitter was requested without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor, an empty constructor
// list, or a failure of the underlying mesh assembly.
var ErrConstructFailed = errors.New("builder: construction failed")
