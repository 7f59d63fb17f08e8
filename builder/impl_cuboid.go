// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_cuboid.go — implementation of Cuboid(w, h, d, n) constructor.
//
// Canonical model:
//   • Six n×n face patches of [0,w]×[0,h]×[0,d], each spanned so that
//     eu × ev points outward: −z, +z, −y, +y, −x, +x.
//   • Patches are welded in that order with cfg.weldTol into one closed
//     surface (V = 6(n+1)² − 12(n+1) + 8, C = 12n²).
//
// Contract:
//   • w, h, d > 0 (else ErrBadSize); n ≥ MinCells (else ErrTooFewCells).
//
// Complexity: O(n² log n) dominated by the seam welds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Cuboid returns a Constructor for the closed surface of a w×h×d box.
func Cuboid(w, h, d float64, n int) Constructor {
	return func(cfg builderConfig) (*mesh.Mesh, error) {
		if err := validateExtent(MethodCuboid, w, h, d); err != nil {
			return nil, err
		}
		if err := validateMin(MethodCuboid, n, MinCells); err != nil {
			return nil, err
		}
		return cuboid(MethodCuboid, mesh.Point{0, 0, 0}, w, h, d, n, cfg)
	}
}

// cuboid builds the welded box surface with its minimum corner at lo.
func cuboid(method string, lo mesh.Point, w, h, d float64, n int, cfg builderConfig) (*mesh.Mesh, error) {
	x, y, z := mesh.Point{w, 0, 0}, mesh.Point{0, h, 0}, mesh.Point{0, 0, d}
	at := func(offs ...mesh.Point) mesh.Point {
		p := lo.Clone()
		for _, o := range offs {
			for k := range p {
				p[k] += o[k]
			}
		}
		return p
	}
	faces := []struct{ origin, eu, ev mesh.Point }{
		{at(), y, x},  // −z
		{at(z), x, y}, // +z
		{at(), x, z},  // −y
		{at(y), z, x}, // +y
		{at(), z, y},  // −x
		{at(x), y, z}, // +x
	}

	parts := make([]*mesh.Mesh, len(faces))
	for i, f := range faces {
		vertices, cells := patch(f.origin, f.eu, f.ev, n, n)
		m, err := mesh.New(vertices, cells)
		if err != nil {
			return nil, fmt.Errorf("%s: face %d: %v: %w", method, i, err, ErrConstructFailed)
		}
		parts[i] = m
	}
	out, err := cfg.welder().Weld(parts[0], parts[1], parts[2:]...)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", method, err, ErrConstructFailed)
	}
	return out, nil
}
