// SPDX-License-Identifier: MIT
// Package: lvmesh/weld
//
// weld.go — pairwise and folded welding.
//
// Contract:
//   • Result vertices = a.vertices ++ unmatched b.vertices (b order).
//   • Result cells    = a.cells ++ remap(b.cells) (relative order kept).
//   • Only vertices referenced by a's cells are match candidates.
//   • More than two meshes fold left to right: ((a ⊕ b) ⊕ c) ⊕ ...
//   • The result owns fresh buffers; inputs are never mutated.
//
// Complexity: O((Va + Vb) log Va) expected for R-tree build and queries.

package weld

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/topology"
)

// Welder welds meshes with a fixed configuration.
type Welder struct {
	opts options
}

// New returns a Welder configured by opts.
func New(opts ...Option) *Welder {
	return &Welder{opts: gatherOptions(opts...)}
}

// Weld welds the meshes with the default configuration.
func Weld(a, b *mesh.Mesh, more ...*mesh.Mesh) (*mesh.Mesh, error) {
	return New().Weld(a, b, more...)
}

// Weld welds b onto a, then every further mesh onto the running result.
func (w *Welder) Weld(a, b *mesh.Mesh, more ...*mesh.Mesh) (*mesh.Mesh, error) {
	acc, err := w.pair(a, b)
	if err != nil {
		return nil, err
	}
	for i, m := range more {
		if acc, err = w.pair(acc, m); err != nil {
			return nil, fmt.Errorf("Weld: mesh %d: %w", i+2, err)
		}
	}
	return acc, nil
}

// spot is an R-tree entry for one referenced vertex of a.
type spot struct {
	index int           // vertex index in a
	pos   rtreego.Point // vertex position
	box   rtreego.Rect  // tolerance box around pos
}

// Bounds implements rtreego.Spatial.
func (s *spot) Bounds() rtreego.Rect {
	return s.box
}

// pair welds b onto a.
func (w *Welder) pair(a, b *mesh.Mesh) (*mesh.Mesh, error) {
	// 1) Validate.
	if a == nil || b == nil {
		return nil, fmt.Errorf("Weld: %w", ErrNilMesh)
	}
	dim, err := resultDim(a, b)
	if err != nil {
		return nil, err
	}

	// 2) Index a's referenced vertices.
	tree, err := w.index(a)
	if err != nil {
		return nil, err
	}

	// 3) Combined vertex buffer: a first, then unmatched b vertices.
	vertices := make([]mesh.Point, 0, a.NumVertices()+b.NumVertices())
	for _, v := range a.Vertices() {
		vertices = append(vertices, v.Clone())
	}
	remap := make([]int, b.NumVertices())
	for j, v := range b.Vertices() {
		if hit, ok := w.match(tree, v); ok {
			remap[j] = hit
			continue
		}
		remap[j] = len(vertices) // next slot in the appended tail
		vertices = append(vertices, v.Clone())
	}

	// 4) Combined cell buffer: a's cells, then b's cells remapped.
	cells := make([]mesh.Cell, 0, a.NumCells()+b.NumCells())
	for _, c := range a.Cells() {
		cells = append(cells, c.Clone())
	}
	for _, c := range b.Cells() {
		rc := make(mesh.Cell, len(c))
		for k, v := range c {
			rc[k] = remap[v]
		}
		cells = append(cells, rc)
	}

	out, err := mesh.New(vertices, cells, mesh.WithDim(dim))
	if err != nil {
		return nil, fmt.Errorf("Weld: %w", err)
	}
	return out, nil
}

// index builds the R-tree over a's referenced vertices; nil when there are
// none.
func (w *Welder) index(a *mesh.Mesh) (*rtreego.Rtree, error) {
	if a.NumCells() == 0 || a.EmbeddingDim() == 0 {
		return nil, nil
	}
	used, err := topology.Skeleton(a, 0)
	if err != nil {
		return nil, fmt.Errorf("Weld: %w", err)
	}
	tree := rtreego.NewTree(a.EmbeddingDim(), w.opts.minChildren, w.opts.maxChildren)
	for _, c := range used.Cells() {
		p := rtreego.Point(a.Vertex(c[0]))
		tree.Insert(&spot{index: c[0], pos: p, box: p.ToRect(w.opts.tol)})
	}
	return tree, nil
}

// match returns the first indexed vertex strictly within tolerance of v.
func (w *Welder) match(tree *rtreego.Rtree, v mesh.Point) (int, bool) {
	if tree == nil {
		return 0, false
	}
	for _, obj := range tree.SearchIntersect(rtreego.Point(v).ToRect(w.opts.tol)) {
		s := obj.(*spot)
		if floats.Distance(v, s.pos, 2) < w.opts.tol {
			return s.index, true
		}
	}
	return 0, false
}

// resultDim checks compatibility and returns the dimension of the weld.
// A side without cells adopts the other side's dimension; a side without
// vertices adopts the other side's embedding.
func resultDim(a, b *mesh.Mesh) (int, error) {
	if a.NumVertices() > 0 && b.NumVertices() > 0 && a.EmbeddingDim() != b.EmbeddingDim() {
		return 0, fmt.Errorf("Weld: embedding %d vs %d: %w", a.EmbeddingDim(), b.EmbeddingDim(), ErrInvalidArgument)
	}
	switch {
	case a.NumCells() > 0 && b.NumCells() > 0:
		if a.Dim() != b.Dim() {
			return 0, fmt.Errorf("Weld: dimension %d vs %d: %w", a.Dim(), b.Dim(), ErrInvalidArgument)
		}
		return a.Dim(), nil
	case b.NumCells() > 0:
		return b.Dim(), nil
	default:
		return a.Dim(), nil
	}
}
