// SPDX-License-Identifier: MIT
// Package: lvmesh/meshio
//
// errors.go — sentinel errors for mesh I/O.

package meshio

import "errors"

var (
	// ErrFormat indicates malformed input; the wrapping error carries the
	// line number.
	ErrFormat = errors.New("meshio: malformed input")

	// ErrPhysical indicates a requested physical group that the file does
	// not declare.
	ErrPhysical = errors.New("meshio: unknown physical group")

	// ErrUnsupported indicates a mesh the writer cannot encode, or a file
	// extension no reader handles.
	ErrUnsupported = errors.New("meshio: unsupported mesh or format")
)
