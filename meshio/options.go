// SPDX-License-Identifier: MIT
// Package: lvmesh/meshio
//
// options.go — functional options for the Gmsh reader and writer.

package meshio

// Option customizes ReadGmsh and WriteGmsh.
type Option func(*options)

type options struct {
	physical string // physical group name; "" keeps every triangle
}

// WithPhysical selects one named physical group. On read, only triangles
// whose first tag is that group's tag are kept; on write, every element is
// tagged with the group and a $PhysicalNames block is emitted. Panics on an
// empty name.
func WithPhysical(name string) Option {
	if name == "" {
		panic("meshio: WithPhysical(\"\")")
	}
	return func(o *options) {
		o.physical = name
	}
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
