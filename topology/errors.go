// SPDX-License-Identifier: MIT
// Package: lvmesh/topology
//
// errors.go — sentinel errors for the topology package.
//
// Error policy:
//   • Arguments are validated eagerly at entry; nothing is computed on error.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • ErrInconsistent signals a defect in the inputs (a face that cannot have
//     come from a skeleton of the mesh), not a recoverable condition.

package topology

import "errors"

var (
	// ErrNilMesh indicates a nil *mesh.Mesh argument.
	ErrNilMesh = errors.New("topology: nil mesh")

	// ErrInvalidArgument indicates a skeleton dimension outside [0, D] or a
	// dimension mismatch between the meshes of a connectivity/pairing query.
	ErrInvalidArgument = errors.New("topology: invalid argument")

	// ErrVertexMismatch indicates two meshes whose vertex buffers differ in
	// length, i.e. they cannot index the same vertices.
	ErrVertexMismatch = errors.New("topology: meshes do not share vertices")

	// ErrInconsistent indicates a face with no incident cell in the mesh.
	ErrInconsistent = errors.New("topology: face has no incident cell")
)
