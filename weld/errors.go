// SPDX-License-Identifier: MIT
// Package: lvmesh/weld
//
// errors.go — sentinel errors for the weld package.

package weld

import "errors"

var (
	// ErrNilMesh indicates a nil *mesh.Mesh argument.
	ErrNilMesh = errors.New("weld: nil mesh")

	// ErrInvalidArgument indicates meshes of different intrinsic or
	// embedding dimension.
	ErrInvalidArgument = errors.New("weld: incompatible meshes")
)
