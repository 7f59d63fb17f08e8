// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_rectangle.go — implementation of Rectangle(w, h, nx, ny) constructor.
//
// Canonical model:
//   • (nx+1)×(ny+1) lattice on [0,w]×[0,h], row-major node order.
//   • Each quad (a, b, c, d) counter-clockwise splits into (a, b, c), (a, c, d).
//   • With WithJitter(f) interior nodes move by up to f·(w/nx, h/ny),
//     drawn from cfg.rng; boundary nodes never move.
//
// Contract:
//   • w, h > 0 (else ErrBadSize); nx, ny ≥ MinCells (else ErrTooFewCells).
//   • Jitter without an RNG → ErrNeedRandSource.
//
// Complexity: O(nx·ny) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Rectangle returns a Constructor for a triangulated w×h rectangle.
func Rectangle(w, h float64, nx, ny int) Constructor {
	return func(cfg builderConfig) (*mesh.Mesh, error) {
		// 1) Validate parameters early.
		if err := validateExtent(MethodRectangle, w, h); err != nil {
			return nil, err
		}
		if err := validateMin(MethodRectangle, nx, MinCells); err != nil {
			return nil, err
		}
		if err := validateMin(MethodRectangle, ny, MinCells); err != nil {
			return nil, err
		}
		if cfg.jitter > 0 && cfg.rng == nil {
			return nil, fmt.Errorf("%s: jitter %v: %w", MethodRectangle, cfg.jitter, ErrNeedRandSource)
		}

		// 2) Lattice and triangles.
		vertices, cells := patch(mesh.Point{0, 0}, mesh.Point{w, 0}, mesh.Point{0, h}, nx, ny)

		// 3) Optional jitter of interior nodes, row-major draw order.
		if cfg.jitter > 0 {
			dx, dy := w/float64(nx), h/float64(ny)
			for j := 1; j < ny; j++ {
				for i := 1; i < nx; i++ {
					p := vertices[gridIndex(nx, i, j)]
					p[0] += cfg.jitter * dx * (2*cfg.rng.Float64() - 1)
					p[1] += cfg.jitter * dy * (2*cfg.rng.Float64() - 1)
				}
			}
		}
		return mesh.New(vertices, cells)
	}
}
