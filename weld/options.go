// SPDX-License-Identifier: MIT
// Package: lvmesh/weld
//
// options.go — functional options for Welder.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Defaults: tolerance = DefaultTolerance, R-tree fan-out 25..50.

package weld

import (
	"fmt"
	"math"
)

// DefaultTolerance is sqrt(machine epsilon) for float64.
var DefaultTolerance = math.Sqrt(0x1p-52)

// R-tree node fill bounds.
const (
	defaultMinChildren = 25
	defaultMaxChildren = 50
)

// Option customizes a Welder.
type Option func(*options)

type options struct {
	tol         float64 // strict match distance
	minChildren int     // R-tree node minimum fill
	maxChildren int     // R-tree node maximum fill
}

// WithTolerance overrides the match distance. Panics unless tol is finite
// and positive.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("weld: WithTolerance(%v)", tol))
	}
	return func(o *options) {
		o.tol = tol
	}
}

// WithNodeSize sets the R-tree node fill bounds. Panics unless
// 1 ≤ min ≤ max/2.
func WithNodeSize(min, max int) Option {
	if min < 1 || 2*min > max {
		panic(fmt.Sprintf("weld: WithNodeSize(%d,%d)", min, max))
	}
	return func(o *options) {
		o.minChildren, o.maxChildren = min, max
	}
}

func gatherOptions(opts ...Option) options {
	o := options{
		tol:         DefaultTolerance,
		minChildren: defaultMinChildren,
		maxChildren: defaultMaxChildren,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
