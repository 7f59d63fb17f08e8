// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • New itself never panics; it returns sentinel errors.

package mesh

import "fmt"

// undefinedDim marks "derive the dimension from the cells".
const undefinedDim = -1

// Option customizes mesh construction.
type Option func(*options)

type options struct {
	dim int // forced intrinsic dimension, undefinedDim if derived
}

// WithDim fixes the intrinsic dimension of the mesh. It is required to give
// a dimension to meshes built without cells (empty skeletons, empty welds)
// and is checked against the cell arity otherwise.
// Panics if d is outside [0, MaxDim].
func WithDim(d int) Option {
	if d < 0 || d > MaxDim {
		panic(fmt.Sprintf("mesh: WithDim(%d) outside [0,%d]", d, MaxDim))
	}
	return func(o *options) {
		o.dim = d
	}
}

func gatherOptions(opts ...Option) options {
	o := options{dim: undefinedDim}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
