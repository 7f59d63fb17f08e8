// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - Two orchestrators: Build(con, opts...) and BuildMesh(opts, cons...).
//   - Constructors emit natural coordinates; placement (WithEmbedding, then
//     WithOrigin) happens once, here.
//   - BuildMesh welds the placed meshes left to right with cfg.weldTol.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Constructor builds a mesh in natural coordinates using the resolved
// builderConfig. Constructors MUST validate parameters early, return
// sentinel errors and never panic.
type Constructor func(cfg builderConfig) (*mesh.Mesh, error)

// Build resolves opts and runs con.
func Build(con Constructor, opts ...BuilderOption) (*mesh.Mesh, error) {
	cfg := newBuilderConfig(opts...)
	m, err := build(con, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	return m, nil
}

// BuildMesh resolves opts, runs every constructor in order and welds the
// results into one mesh. Any constructor error aborts the build.
func BuildMesh(opts []BuilderOption, cons ...Constructor) (*mesh.Mesh, error) {
	if len(cons) == 0 {
		return nil, fmt.Errorf("%s: no constructors: %w", MethodBuildMesh, ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	parts := make([]*mesh.Mesh, len(cons))
	for i, con := range cons {
		m, err := build(con, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: constructor %d: %w", MethodBuildMesh, i, err)
		}
		parts[i] = m
	}
	if len(parts) == 1 {
		return parts[0], nil
	}

	out, err := cfg.welder().Weld(parts[0], parts[1], parts[2:]...)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", MethodBuildMesh, err, ErrConstructFailed)
	}
	return out, nil
}

// build runs con and applies placement.
func build(con Constructor, cfg builderConfig) (*mesh.Mesh, error) {
	if con == nil {
		return nil, fmt.Errorf("nil constructor: %w", ErrConstructFailed)
	}
	m, err := con(cfg)
	if err != nil {
		return nil, err
	}
	return place(m, cfg)
}

// place pads m to cfg.udim and shifts it by cfg.origin.
func place(m *mesh.Mesh, cfg builderConfig) (*mesh.Mesh, error) {
	if cfg.udim > 0 && cfg.udim != m.EmbeddingDim() {
		if cfg.udim < m.EmbeddingDim() {
			return nil, fmt.Errorf("embedding %d below natural %d: %w", cfg.udim, m.EmbeddingDim(), ErrBadSize)
		}
		vertices := make([]mesh.Point, m.NumVertices())
		for i, v := range m.Vertices() {
			p := make(mesh.Point, cfg.udim)
			copy(p, v)
			vertices[i] = p
		}
		padded, err := mesh.New(vertices, m.Cells(), mesh.WithDim(m.Dim()))
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrConstructFailed)
		}
		m = padded
	}
	if cfg.origin != nil {
		if _, err := m.Translate(cfg.origin); err != nil {
			return nil, fmt.Errorf("origin %v: %w", cfg.origin, ErrBadSize)
		}
	}
	return m, nil
}

// Shifted wraps con so that its natural coordinates are translated by
// offset before placement; offset must match the natural embedding.
func Shifted(offset mesh.Point, con Constructor) Constructor {
	t := offset.Clone()
	return func(cfg builderConfig) (*mesh.Mesh, error) {
		if con == nil {
			return nil, fmt.Errorf("%s: nil constructor: %w", MethodShifted, ErrConstructFailed)
		}
		m, err := con(cfg)
		if err != nil {
			return nil, err
		}
		if _, err := m.Translate(t); err != nil {
			return nil, fmt.Errorf("%s: offset %v: %w", MethodShifted, t, ErrBadSize)
		}
		return m, nil
	}
}
