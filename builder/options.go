// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvmesh/mesh"
)

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithOrigin shifts every built mesh by origin. The arity must match the
// final embedding, checked at build time. Panics on an empty origin.
func WithOrigin(origin ...float64) BuilderOption {
	if len(origin) == 0 {
		panic("builder: WithOrigin() needs coordinates")
	}
	p := mesh.Point(origin).Clone()
	return func(cfg *builderConfig) {
		cfg.origin = p
	}
}

// WithEmbedding pads coordinates with zeros up to u. Panics unless
// 1 ≤ u ≤ MaxEmbedding.
func WithEmbedding(u int) BuilderOption {
	if u < 1 || u > MaxEmbedding {
		panic(fmt.Sprintf("builder: WithEmbedding(%d) outside [1,%d]", u, MaxEmbedding))
	}
	return func(cfg *builderConfig) {
		cfg.udim = u
	}
}

// WithRand shares an explicit RNG stream. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.rng = r
	}
}

// WithSeed installs a fresh deterministic RNG stream.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithJitter displaces interior grid vertices by up to f cell sizes per
// axis. Panics unless 0 ≤ f < MaxJitter.
func WithJitter(f float64) BuilderOption {
	if !(f >= 0 && f < MaxJitter) {
		panic(fmt.Sprintf("builder: WithJitter(%v) outside [0,%v)", f, MaxJitter))
	}
	return func(cfg *builderConfig) {
		cfg.jitter = f
	}
}

// WithWeldTolerance overrides the seam tolerance. Panics unless tol is
// finite and positive.
func WithWeldTolerance(tol float64) BuilderOption {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("builder: WithWeldTolerance(%v)", tol))
	}
	return func(cfg *builderConfig) {
		cfg.weldTol = tol
	}
}
