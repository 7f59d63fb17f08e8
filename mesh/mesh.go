// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// mesh.go — the Mesh container: construction, lookup and accessors.
//
// Invariants (enforced by New):
//   • every cell has arity Dim()+1 ∈ [1, MaxDim+1];
//   • every vertex has arity EmbeddingDim();
//   • every index referenced by a cell lies in [0, NumVertices).
//
// Complexity:
//   • New: O(V + C) time and O(C) extra space for the lookup map.
//   • Accessors: O(1), except VerticesOf (O(arity)).

package mesh

import "fmt"

// Mesh is a simplicial mesh: an ordered vertex buffer plus an ordered cell
// buffer and an exact-tuple → position lookup.
type Mesh struct {
	vertices []Point     // vertex buffer, insertion order preserved
	cells    []Cell      // cell buffer, insertion order preserved
	index    map[Key]int // exact cell tuple → last position in cells
	dim      int         // intrinsic dimension D
	udim     int         // embedding dimension U
}

// New validates vertices and cells and builds the lookup index eagerly.
// When the same tuple occurs more than once, IndexOf reports the last
// position while Cells keeps every occurrence.
//
// New takes ownership of both slices; callers must not mutate them
// afterwards except through Mesh methods.
func New(vertices []Point, cells []Cell, opts ...Option) (*Mesh, error) {
	o := gatherOptions(opts...)

	// 1) Embedding dimension from the first vertex; all others must agree.
	udim := 0
	if len(vertices) > 0 {
		udim = len(vertices[0])
	}
	for i, v := range vertices {
		if len(v) != udim {
			return nil, fmt.Errorf("New: vertex %d has %d coordinates, want %d: %w",
				i, len(v), udim, ErrEmbedding)
		}
	}

	// 2) Intrinsic dimension from the first cell unless forced.
	dim := o.dim
	if len(cells) > 0 {
		arity := len(cells[0])
		if arity < 1 || arity > MaxDim+1 {
			return nil, fmt.Errorf("New: cell 0 has arity %d: %w", arity, ErrArity)
		}
		if dim != undefinedDim && dim != arity-1 {
			return nil, fmt.Errorf("New: WithDim(%d) but cells have dimension %d: %w",
				dim, arity-1, ErrArity)
		}
		dim = arity - 1
	}
	if dim == undefinedDim {
		dim = 0 // no cells and no hint: a point cloud
	}

	// 3) Validate every cell and fill the lookup (last occurrence wins).
	n := len(vertices)
	index := make(map[Key]int, len(cells))
	for i, c := range cells {
		if len(c) != dim+1 {
			return nil, fmt.Errorf("New: cell %d has arity %d, want %d: %w",
				i, len(c), dim+1, ErrArity)
		}
		for _, v := range c {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("New: cell %d references vertex %d of %d: %w",
					i, v, n, ErrIndexOutOfRange)
			}
		}
		index[c.Key()] = i
	}

	return &Mesh{
		vertices: vertices,
		cells:    cells,
		index:    index,
		dim:      dim,
		udim:     udim,
	}, nil
}

// MustNew is New for fixtures and examples; it panics on error.
func MustNew(vertices []Point, cells []Cell, opts ...Option) *Mesh {
	m, err := New(vertices, cells, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// NumVertices returns the length of the vertex buffer.
func (m *Mesh) NumVertices() int {
	return len(m.vertices)
}

// NumCells returns the length of the cell buffer.
func (m *Mesh) NumCells() int {
	return len(m.cells)
}

// Dim returns the intrinsic dimension D (cell arity − 1).
func (m *Mesh) Dim() int {
	return m.dim
}

// EmbeddingDim returns the coordinate arity U of the vertices.
func (m *Mesh) EmbeddingDim() int {
	return m.udim
}

// Vertex returns the i-th vertex. The returned Point aliases the buffer.
// Panics if i is out of range, like slice indexing.
func (m *Mesh) Vertex(i int) Point {
	return m.vertices[i]
}

// Vertices returns the vertex buffer. Callers must treat it as read-only.
func (m *Mesh) Vertices() []Point {
	return m.vertices
}

// VerticesOf returns the vertices referenced by c, in the order of c.
// Returns ErrIndexOutOfRange if c references an unknown vertex.
func (m *Mesh) VerticesOf(c Cell) ([]Point, error) {
	out := make([]Point, len(c))
	for i, v := range c {
		if v < 0 || v >= len(m.vertices) {
			return nil, fmt.Errorf("VerticesOf: vertex %d of %d: %w", v, len(m.vertices), ErrIndexOutOfRange)
		}
		out[i] = m.vertices[v]
	}
	return out, nil
}

// Cell returns the i-th cell. The returned Cell aliases the buffer.
func (m *Mesh) Cell(i int) Cell {
	return m.cells[i]
}

// Cells returns the cell buffer. Callers must treat it as read-only.
func (m *Mesh) Cells() []Cell {
	return m.cells
}

// IndexOf reports the position of the exact tuple c in the cell buffer.
// For duplicated tuples the last position is returned.
func (m *Mesh) IndexOf(c Cell) (int, bool) {
	if len(c) != m.dim+1 {
		return 0, false
	}
	i, ok := m.index[c.Key()]
	return i, ok
}

// Clone returns a deep copy of m: fresh vertex, cell and index buffers.
// Complexity: O(V·U + C·D).
func (m *Mesh) Clone() *Mesh {
	vs := make([]Point, len(m.vertices))
	for i, v := range m.vertices {
		vs[i] = v.Clone()
	}
	cs := make([]Cell, len(m.cells))
	for i, c := range m.cells {
		cs[i] = c.Clone()
	}
	index := make(map[Key]int, len(m.index))
	for k, v := range m.index {
		index[k] = v
	}
	return &Mesh{vertices: vs, cells: cs, index: index, dim: m.dim, udim: m.udim}
}

// String summarizes the mesh shape, e.g. "Mesh(D=2, U=3, V=4, C=2)".
func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh(D=%d, U=%d, V=%d, C=%d)", m.dim, m.udim, len(m.vertices), len(m.cells))
}

// reindex rebuilds the lookup after in-place cell mutation.
func (m *Mesh) reindex() {
	index := make(map[Key]int, len(m.cells))
	for i, c := range m.cells {
		index[c.Key()] = i
	}
	m.index = index
}
