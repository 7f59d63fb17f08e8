// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// errors.go — sentinel errors for the mesh package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Constructors and mutators validate eagerly and never partially mutate.
//   • Context is attached with fmt.Errorf("Op: ...: %w", ErrX).

package mesh

import "errors"

var (
	// ErrArity indicates a cell whose length is outside [1, MaxDim+1] or
	// differs from the other cells of the same mesh.
	ErrArity = errors.New("mesh: invalid cell arity")

	// ErrEmbedding indicates vertices with differing coordinate arity, or a
	// vector argument whose length does not match the embedding dimension.
	ErrEmbedding = errors.New("mesh: embedding dimension mismatch")

	// ErrIndexOutOfRange indicates a cell referencing a vertex index outside
	// [0, NumVertices), or an accessor called with an invalid position.
	ErrIndexOutOfRange = errors.New("mesh: index out of range")

	// ErrZeroNormal indicates a mirror plane with a zero-length normal.
	ErrZeroNormal = errors.New("mesh: zero plane normal")
)
