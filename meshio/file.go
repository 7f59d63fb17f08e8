// SPDX-License-Identifier: MIT
// Package: lvmesh/meshio
//
// file.go — path-based helpers.

package meshio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvmesh/mesh"
)

// ReadGiDFile opens path and parses it with ReadGiD.
func ReadGiDFile(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGiD(f)
}

// ReadGmshFile opens path and parses it with ReadGmsh.
func ReadGmshFile(path string, opts ...Option) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGmsh(f, opts...)
}

// WriteGmshFile creates path and encodes m with WriteGmsh.
func WriteGmshFile(path string, m *mesh.Mesh, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGmsh(f, m, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile dispatches on the extension: ".msh" is Gmsh, ".gid" is GiD.
// Options apply to Gmsh only.
func ReadFile(path string, opts ...Option) (*mesh.Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".msh":
		return ReadGmshFile(path, opts...)
	case ".gid":
		return ReadGiDFile(path)
	default:
		return nil, fmt.Errorf("ReadFile: extension %q: %w", ext, ErrUnsupported)
	}
}
