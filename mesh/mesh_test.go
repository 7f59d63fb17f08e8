// Package mesh_test covers construction, lookup and accessor contracts of
// mesh.Mesh with table-driven, parallel tests.
package mesh_test

import (
	"testing"

	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/stretchr/testify/require"
)

// square returns two triangles sharing the diagonal (1,2).
func square() ([]mesh.Point, []mesh.Cell) {
	vs := []mesh.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	cs := []mesh.Cell{{0, 1, 2}, {2, 1, 3}}
	return vs, cs
}

func TestNew_Accessors(t *testing.T) {
	t.Parallel()

	vs, cs := square()
	m, err := mesh.New(vs, cs)
	require.NoError(t, err)

	require.Equal(t, 4, m.NumVertices())
	require.Equal(t, 2, m.NumCells())
	require.Equal(t, 2, m.Dim())
	require.Equal(t, 3, m.EmbeddingDim())
	require.Equal(t, mesh.Point{1, 1, 0}, m.Vertex(3))
	require.Equal(t, mesh.Cell{2, 1, 3}, m.Cell(1))

	pts, err := m.VerticesOf(mesh.Cell{3, 0})
	require.NoError(t, err)
	require.Equal(t, []mesh.Point{{1, 1, 0}, {0, 0, 0}}, pts)

	_, err = m.VerticesOf(mesh.Cell{4})
	require.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
	require.Equal(t, "Mesh(D=2, U=3, V=4, C=2)", m.String())
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verts   []mesh.Point
		cells   []mesh.Cell
		opts    []mesh.Option
		wantErr error
	}{
		{"RaggedVertices", []mesh.Point{{0, 0}, {1, 0, 0}}, nil, nil, mesh.ErrEmbedding},
		{"RaggedCells", []mesh.Point{{0}, {1}, {2}}, []mesh.Cell{{0, 1}, {0, 1, 2}}, nil, mesh.ErrArity},
		{"EmptyCell", []mesh.Point{{0}}, []mesh.Cell{{}}, nil, mesh.ErrArity},
		{"TooWide", []mesh.Point{{0}}, []mesh.Cell{{0, 0, 0, 0, 0}}, nil, mesh.ErrArity},
		{"OutOfRange", []mesh.Point{{0}, {1}}, []mesh.Cell{{0, 2}}, nil, mesh.ErrIndexOutOfRange},
		{"Negative", []mesh.Point{{0}, {1}}, []mesh.Cell{{-1, 1}}, nil, mesh.ErrIndexOutOfRange},
		{"DimConflict", []mesh.Point{{0}, {1}}, []mesh.Cell{{0, 1}}, []mesh.Option{mesh.WithDim(2)}, mesh.ErrArity},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := mesh.New(tc.verts, tc.cells, tc.opts...)
			require.Nil(t, m)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNew_EmptyWithDim(t *testing.T) {
	t.Parallel()

	m, err := mesh.New([]mesh.Point{{0, 0}}, nil, mesh.WithDim(1))
	require.NoError(t, err)
	require.Equal(t, 1, m.Dim())
	require.Equal(t, 0, m.NumCells())

	cloud, err := mesh.New(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, cloud.Dim())
	require.Equal(t, 0, cloud.EmbeddingDim())

	require.Panics(t, func() { mesh.WithDim(4) })
}

func TestIndexOf_DuplicatesKeepLast(t *testing.T) {
	t.Parallel()

	vs := []mesh.Point{{0}, {1}, {2}}
	cs := []mesh.Cell{{0, 1}, {1, 2}, {0, 1}}
	m, err := mesh.New(vs, cs)
	require.NoError(t, err)

	i, ok := m.IndexOf(mesh.Cell{0, 1})
	require.True(t, ok)
	require.Equal(t, 2, i, "lookup exposes the last duplicate")
	require.Equal(t, 3, m.NumCells(), "the list keeps duplicates")

	// Exact tuples: the reversed edge is a different key.
	_, ok = m.IndexOf(mesh.Cell{1, 0})
	require.False(t, ok)
	_, ok = m.IndexOf(mesh.Cell{0})
	require.False(t, ok)
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	vs, cs := square()
	m := mesh.MustNew(vs, cs)
	c := m.Clone()
	c.Vertex(0)[0] = 42
	c.Cell(0)[0] = 3

	require.Equal(t, 0.0, m.Vertex(0)[0])
	require.Equal(t, 0, m.Cell(0)[0])
}

func TestCellHelpers(t *testing.T) {
	t.Parallel()

	c := mesh.Cell{3, 1, 2}
	require.Equal(t, 2, c.Dim())
	require.Equal(t, mesh.Cell{1, 2, 3}, c.Sorted())
	require.Equal(t, mesh.Cell{3, 1, 2}, c, "Sorted must not mutate")
	require.Equal(t, c, c.Key().Cell())
	require.NotEqual(t, mesh.Cell{1, 2}.Key(), mesh.Cell{1, 2, 0}.Key())
	require.Equal(t, "(3 1 2)", c.String())
}
