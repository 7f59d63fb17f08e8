// SPDX-License-Identifier: MIT
// Package: lvmesh/chart
//
// errors.go — sentinel errors for chart construction and evaluation.

package chart

import "errors"

var (
	// ErrArity indicates a vertex count that matches no chart kind.
	ErrArity = errors.New("chart: unsupported number of vertices")

	// ErrEmbedding indicates ragged coordinates or an embedding dimension
	// lower than the chart dimension.
	ErrEmbedding = errors.New("chart: bad embedding dimension")

	// ErrParam indicates a reference parameter of the wrong length.
	ErrParam = errors.New("chart: parameter length mismatch")

	// ErrNoRule indicates a quadrature degree without a tabulated rule.
	ErrNoRule = errors.New("chart: no quadrature rule for degree")

	// ErrUnsupported indicates an operation the chart kind cannot perform.
	ErrUnsupported = errors.New("chart: unsupported for this chart kind")
)
