// SPDX-License-Identifier: MIT
// Package: lvmesh/meshio
//
// gid.go — GiD ASCII triangle mesh reader.
//
// Contract:
//   • Coordinate ids must run 1, 2, ... in file order.
//   • Blocks end at the first line whose field count is not 4; end of
//     input inside a block is an error.
//   • Element indices are 1-based and must reference a coordinate.

package meshio

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvmesh/mesh"
)

const gidFields = 4

// ReadGiD parses a GiD triangle mesh.
func ReadGiD(r io.Reader) (*mesh.Mesh, error) {
	const op = "ReadGiD"
	l := newLines(op, r)

	// 1) Header, then the coordinate block.
	if err := l.skipTo("Coordinates"); err != nil {
		return nil, err
	}
	var vertices []mesh.Point
	for {
		s, err := l.must("End Coordinates")
		if err != nil {
			return nil, err
		}
		f := strings.Fields(s)
		if len(f) != gidFields {
			break
		}
		id, err := l.atoi(f[0])
		if err != nil {
			return nil, err
		}
		if id != len(vertices)+1 {
			return nil, l.errorf("coordinate id %d, want %d", id, len(vertices)+1)
		}
		p := make(mesh.Point, 3)
		for k := range p {
			if p[k], err = l.atof(f[k+1]); err != nil {
				return nil, err
			}
		}
		vertices = append(vertices, p)
	}

	// 2) Element block.
	if err := l.skipTo("Elements"); err != nil {
		return nil, err
	}
	var cells []mesh.Cell
	for {
		s, err := l.must("End Elements")
		if err != nil {
			return nil, err
		}
		f := strings.Fields(s)
		if len(f) != gidFields {
			break
		}
		c := make(mesh.Cell, 3)
		for k := range c {
			v, err := l.atoi(f[k+1])
			if err != nil {
				return nil, err
			}
			if v < 1 || v > len(vertices) {
				return nil, l.errorf("vertex %d of %d", v, len(vertices))
			}
			c[k] = v - 1
		}
		cells = append(cells, c)
	}

	m, err := mesh.New(vertices, cells, mesh.WithDim(2))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}
