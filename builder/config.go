// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • origin    = nil  (no shift)
//   • udim      = 0    (natural embedding of each constructor)
//   • rng       = nil  (pure/deterministic unless seeded)
//   • jitter    = 0
//   • weldTol   = weld.DefaultTolerance

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/weld"
)

// builderConfig is the single source of truth for all builder knobs.
type builderConfig struct {
	origin  mesh.Point // added to every vertex after padding
	udim    int        // target embedding; 0 keeps the natural one
	rng     *rand.Rand // shared stream for jitter
	jitter  float64    // interior displacement as a fraction of the cell size
	weldTol float64    // tolerance for BuildMesh and Cuboid seams
}

// newBuilderConfig applies options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weldTol: weld.DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// welder returns the weld engine configured for cfg.
func (cfg builderConfig) welder() *weld.Welder {
	return weld.New(weld.WithTolerance(cfg.weldTol))
}
