// SPDX-License-Identifier: MIT
// Package: lvmesh/meshio
//
// gmsh.go — Gmsh 2.2 ASCII reader and writer.
//
// Contract (read):
//   • Unknown sections are skipped up to their $End tag.
//   • $Nodes: count line, then exactly count lines "id x y z", then $EndNodes.
//     Node ids may be sparse; vertices keep file order.
//   • $Elements: count line, then exactly count lines
//     "id type ntags tag... node...", then $EndElements. Types 15, 1, 2
//     and 4 are recognised; the cells are the recognised elements of the
//     highest dimension present, other types are skipped. Without any
//     recognised element the mesh is an empty triangle mesh.
//   • WithPhysical(name) resolves name through $PhysicalNames and keeps
//     elements whose first tag matches, before the dimension is chosen.
//
// Contract (write):
//   • Coordinates are zero-padded to 3; U > 3 → ErrUnsupported.
//   • Element type by dimension: point 15, line 1, triangle 2, tetrahedron 4.
//   • Two tags per element (physical, elementary), both 1.

package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmesh/mesh"
)

const (
	gmshVersion  = "2.2 0 8"
	gmshGroupTag = 1

	// maxPrealloc caps capacities taken from count lines.
	maxPrealloc = 1 << 16
)

// gmshTypes maps mesh dimension to the Gmsh element type code.
var gmshTypes = [mesh.MaxDim + 1]int{15, 1, 2, 4}

// gmshDims is the inverse of gmshTypes.
var gmshDims = map[int]int{15: 0, 1: 1, 2: 2, 4: 3}

type gmshRecord struct {
	dim   int
	tag   int // first tag, or 0 without tags
	nodes []int
	line  int
}

// ReadGmsh parses a Gmsh 2.2 ASCII file into a simplicial mesh.
func ReadGmsh(r io.Reader, opts ...Option) (*mesh.Mesh, error) {
	const op = "ReadGmsh"
	o := gatherOptions(opts...)
	l := newLines(op, r)

	var (
		vertices []mesh.Point
		nodeIdx  = map[int]int{} // file node id → vertex index
		groups   = map[string]int{}
		elems    []gmshRecord
	)

	for {
		s, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		switch s {
		case "":
			continue
		case "$PhysicalNames":
			if err := readPhysicalNames(l, groups); err != nil {
				return nil, err
			}
		case "$Nodes":
			if vertices, err = readNodes(l, nodeIdx); err != nil {
				return nil, err
			}
		case "$Elements":
			if elems, err = readElements(l); err != nil {
				return nil, err
			}
		default:
			if !strings.HasPrefix(s, "$") {
				return nil, l.errorf("unexpected %q outside a section", s)
			}
			if err := l.skipTo("$End" + s[1:]); err != nil {
				return nil, err
			}
		}
	}

	// Resolve the physical filter once every section is known.
	want, filter := 0, o.physical != ""
	if filter {
		tag, ok := groups[o.physical]
		if !ok {
			return nil, fmt.Errorf("%s: %q: %w", op, o.physical, ErrPhysical)
		}
		want = tag
	}

	kept := elems[:0]
	dim := -1
	for _, e := range elems {
		if filter && e.tag != want {
			continue
		}
		kept = append(kept, e)
		dim = max(dim, e.dim)
	}
	if dim < 0 {
		dim = 2
	}

	cells := make([]mesh.Cell, 0, len(kept))
	for _, t := range kept {
		if t.dim != dim {
			continue
		}
		c := make(mesh.Cell, len(t.nodes))
		for k, id := range t.nodes {
			v, ok := nodeIdx[id]
			if !ok {
				return nil, fmt.Errorf("%s: line %d: unknown node %d: %w", op, t.line, id, ErrFormat)
			}
			c[k] = v
		}
		cells = append(cells, c)
	}

	m, err := mesh.New(vertices, cells, mesh.WithDim(dim))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

// readPhysicalNames parses `dim tag "name"` lines into groups.
func readPhysicalNames(l *lines, groups map[string]int) error {
	n, err := l.count("$PhysicalNames")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		s, err := l.must("physical name")
		if err != nil {
			return err
		}
		f := strings.SplitN(s, " ", 3)
		if len(f) != 3 {
			return l.errorf("physical name %q", s)
		}
		tag, err := l.atoi(f[1])
		if err != nil {
			return err
		}
		name, err := strconv.Unquote(strings.TrimSpace(f[2]))
		if err != nil {
			return l.errorf("physical name %q", f[2])
		}
		groups[name] = tag
	}
	return l.expect("$EndPhysicalNames")
}

func readNodes(l *lines, nodeIdx map[int]int) ([]mesh.Point, error) {
	n, err := l.count("$Nodes")
	if err != nil {
		return nil, err
	}
	vertices := make([]mesh.Point, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		s, err := l.must("node")
		if err != nil {
			return nil, err
		}
		f := strings.Fields(s)
		if len(f) != 4 {
			return nil, l.errorf("node has %d fields, want 4", len(f))
		}
		id, err := l.atoi(f[0])
		if err != nil {
			return nil, err
		}
		if _, dup := nodeIdx[id]; dup {
			return nil, l.errorf("duplicate node %d", id)
		}
		p := make(mesh.Point, 3)
		for k := range p {
			if p[k], err = l.atof(f[k+1]); err != nil {
				return nil, err
			}
		}
		nodeIdx[id] = len(vertices)
		vertices = append(vertices, p)
	}
	return vertices, l.expect("$EndNodes")
}

func readElements(l *lines) ([]gmshRecord, error) {
	n, err := l.count("$Elements")
	if err != nil {
		return nil, err
	}
	elems := make([]gmshRecord, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		s, err := l.must("element")
		if err != nil {
			return nil, err
		}
		f := strings.Fields(s)
		if len(f) < 3 {
			return nil, l.errorf("element has %d fields", len(f))
		}
		typ, err := l.atoi(f[1])
		if err != nil {
			return nil, err
		}
		ntags, err := l.atoi(f[2])
		if err != nil {
			return nil, err
		}
		if ntags < 0 || len(f) < 3+ntags {
			return nil, l.errorf("element declares %d tags in %d fields", ntags, len(f))
		}
		dim, ok := gmshDims[typ]
		if !ok {
			continue
		}
		if len(f) != 3+ntags+dim+1 {
			return nil, l.errorf("type %d element has %d fields, want %d", typ, len(f), 3+ntags+dim+1)
		}

		rec := gmshRecord{dim: dim, nodes: make([]int, dim+1), line: l.line}
		if ntags > 0 {
			if rec.tag, err = l.atoi(f[3]); err != nil {
				return nil, err
			}
		}
		for k := range rec.nodes {
			if rec.nodes[k], err = l.atoi(f[3+ntags+k]); err != nil {
				return nil, err
			}
		}
		elems = append(elems, rec)
	}
	return elems, l.expect("$EndElements")
}

// WriteGmsh encodes m as Gmsh 2.2 ASCII. Node and element ids are 1-based
// positions.
func WriteGmsh(w io.Writer, m *mesh.Mesh, opts ...Option) error {
	const op = "WriteGmsh"
	if m == nil {
		return fmt.Errorf("%s: nil mesh: %w", op, ErrUnsupported)
	}
	if m.EmbeddingDim() > 3 {
		return fmt.Errorf("%s: embedding %d: %w", op, m.EmbeddingDim(), ErrUnsupported)
	}
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "$MeshFormat\n%s\n$EndMeshFormat\n", gmshVersion)
	if o.physical != "" {
		fmt.Fprintf(bw, "$PhysicalNames\n1\n%d %d %s\n$EndPhysicalNames\n",
			m.Dim(), gmshGroupTag, strconv.Quote(o.physical))
	}

	fmt.Fprintf(bw, "$Nodes\n%d\n", m.NumVertices())
	for i, v := range m.Vertices() {
		var xyz [3]float64
		copy(xyz[:], v)
		fmt.Fprintf(bw, "%d %s %s %s\n", i+1, ftoa(xyz[0]), ftoa(xyz[1]), ftoa(xyz[2]))
	}
	fmt.Fprint(bw, "$EndNodes\n")

	fmt.Fprintf(bw, "$Elements\n%d\n", m.NumCells())
	typ := gmshTypes[m.Dim()]
	for i, c := range m.Cells() {
		fmt.Fprintf(bw, "%d %d 2 %d %d", i+1, typ, gmshGroupTag, gmshGroupTag)
		for _, v := range c {
			fmt.Fprintf(bw, " %d", v+1)
		}
		fmt.Fprint(bw, "\n")
	}
	fmt.Fprint(bw, "$EndElements\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ftoa formats x with the shortest representation that round-trips.
func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
