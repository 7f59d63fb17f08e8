// SPDX-License-Identifier: MIT
// Package: lvmesh/topology
//
// options.go — functional options for Connectivity and CellPairs.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs (nil op).
//   • Defaults: entry op = Sign, junction pairs kept.

package topology

// EntryOp maps a relative orientation (signed local index) to the value
// stored in a connectivity matrix.
type EntryOp func(int) int

// Sign maps a relative orientation to −1, 0 or +1.
func Sign(r int) int {
	switch {
	case r > 0:
		return 1
	case r < 0:
		return -1
	default:
		return 0
	}
}

// Identity keeps the signed local index.
func Identity(r int) int {
	return r
}

// Option customizes Connectivity and CellPairs.
type Option func(*options)

type options struct {
	op           EntryOp // connectivity entry map
	dropJunction bool    // drop one pair per junction face
}

// WithEntryOp sets the connectivity entry map. Panics on nil.
func WithEntryOp(op EntryOp) Option {
	if op == nil {
		panic("topology: WithEntryOp(nil)")
	}
	return func(o *options) {
		o.op = op
	}
}

// WithDropJunctionPair makes CellPairs omit exactly one pair per junction
// face (a face shared by three or more cells), the last one in
// lexicographic enumeration order.
func WithDropJunctionPair() Option {
	return func(o *options) {
		o.dropJunction = true
	}
}

func gatherOptions(opts ...Option) options {
	o := options{op: Sign}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
