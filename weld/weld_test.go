// SPDX-License-Identifier: MIT
// Package: lvmesh/weld_test

package weld_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/weld"
)

func triangleA() *mesh.Mesh {
	return mesh.MustNew(
		[]mesh.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[]mesh.Cell{{0, 1, 2}},
	)
}

func triangleB() *mesh.Mesh {
	return mesh.MustNew(
		[]mesh.Point{{1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		[]mesh.Cell{{0, 2, 1}},
	)
}

func TestWeld_SharedEdge(t *testing.T) {
	t.Parallel()
	out, err := weld.Weld(triangleA(), triangleB())
	require.NoError(t, err)
	require.Equal(t, 4, out.NumVertices())
	require.Equal(t, []mesh.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}, out.Vertices())
	require.Equal(t, []mesh.Cell{{0, 1, 2}, {1, 3, 2}}, out.Cells())
	require.Equal(t, 2, out.Dim())
	require.Equal(t, 3, out.EmbeddingDim())
}

func TestWeld_SelfIsIdempotentOnVertices(t *testing.T) {
	t.Parallel()
	a := triangleA()
	out, err := weld.Weld(a, a.Clone())
	require.NoError(t, err)
	require.Equal(t, a.NumVertices(), out.NumVertices())
	require.Equal(t, []mesh.Cell{{0, 1, 2}, {0, 1, 2}}, out.Cells())
}

func TestWeld_Tolerance(t *testing.T) {
	t.Parallel()
	a := triangleA()
	cases := []struct {
		name  string
		shift float64
		opts  []weld.Option
		want  int
	}{
		{"within default", 1e-9, nil, 3},
		{"outside default", 1e-6, nil, 6},
		{"widened", 1e-6, []weld.Option{weld.WithTolerance(1e-3)}, 3},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b, err := mesh.Translate(a, mesh.Point{tc.shift, 0, 0})
			require.NoError(t, err)
			out, err := weld.New(tc.opts...).Weld(a, b)
			require.NoError(t, err)
			require.Equal(t, tc.want, out.NumVertices())
		})
	}
}

func TestWeld_UnreferencedVerticesAreNotCandidates(t *testing.T) {
	t.Parallel()
	a := mesh.MustNew(
		[]mesh.Point{{0, 0}, {1, 0}, {5, 5}},
		[]mesh.Cell{{0, 1}},
	)
	b := mesh.MustNew(
		[]mesh.Point{{1, 0}, {5, 5}},
		[]mesh.Cell{{0, 1}},
	)
	out, err := weld.Weld(a, b)
	require.NoError(t, err)
	require.Equal(t, 4, out.NumVertices())
	require.Equal(t, []mesh.Cell{{0, 1}, {1, 3}}, out.Cells())
}

func TestWeld_EmptyAndDisjoint(t *testing.T) {
	t.Parallel()
	empty := mesh.MustNew(nil, nil, mesh.WithDim(2))

	out, err := weld.Weld(empty, triangleA())
	require.NoError(t, err)
	require.Equal(t, triangleA().Vertices(), out.Vertices())
	require.Equal(t, triangleA().Cells(), out.Cells())

	out, err = weld.Weld(triangleA(), empty)
	require.NoError(t, err)
	require.Equal(t, 3, out.NumVertices())
	require.Equal(t, 1, out.NumCells())

	far, err := mesh.Translate(triangleA(), mesh.Point{10, 0, 0})
	require.NoError(t, err)
	out, err = weld.Weld(triangleA(), far)
	require.NoError(t, err)
	require.Equal(t, 6, out.NumVertices())
	require.Equal(t, []mesh.Cell{{0, 1, 2}, {3, 4, 5}}, out.Cells())
}

func TestWeld_Fold(t *testing.T) {
	t.Parallel()
	c := mesh.MustNew(
		[]mesh.Point{{1, 1, 0}, {1, 0, 0}, {2, 0, 0}},
		[]mesh.Cell{{1, 2, 0}},
	)
	folded, err := weld.Weld(triangleA(), triangleB(), c)
	require.NoError(t, err)

	ab, err := weld.Weld(triangleA(), triangleB())
	require.NoError(t, err)
	stepwise, err := weld.Weld(ab, c)
	require.NoError(t, err)
	require.Equal(t, stepwise.Vertices(), folded.Vertices())
	require.Equal(t, stepwise.Cells(), folded.Cells())

	bc, err := weld.Weld(triangleB(), c)
	require.NoError(t, err)
	right, err := weld.Weld(triangleA(), bc)
	require.NoError(t, err)
	require.Equal(t, folded.NumVertices(), right.NumVertices())
	require.Equal(t, folded.NumCells(), right.NumCells())
	require.Equal(t, 5, folded.NumVertices())
}

func TestWeld_InputsUntouched(t *testing.T) {
	t.Parallel()
	a, b := triangleA(), triangleB()
	out, err := weld.Weld(a, b)
	require.NoError(t, err)
	_, err = out.Translate(mesh.Point{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, triangleA().Vertices(), a.Vertices())
	require.Equal(t, triangleB().Vertices(), b.Vertices())
}

func TestWeld_Errors(t *testing.T) {
	t.Parallel()
	seg := mesh.MustNew([]mesh.Point{{0, 0, 0}, {1, 0, 0}}, []mesh.Cell{{0, 1}})
	flat := mesh.MustNew([]mesh.Point{{0, 0}, {1, 0}, {0, 1}}, []mesh.Cell{{0, 1, 2}})

	_, err := weld.Weld(nil, triangleA())
	require.ErrorIs(t, err, weld.ErrNilMesh)
	_, err = weld.Weld(triangleA(), seg)
	require.ErrorIs(t, err, weld.ErrInvalidArgument)
	_, err = weld.Weld(triangleA(), flat)
	require.ErrorIs(t, err, weld.ErrInvalidArgument)
	_, err = weld.Weld(triangleA(), triangleB(), nil)
	require.ErrorIs(t, err, weld.ErrNilMesh)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { weld.WithTolerance(0) })
	require.Panics(t, func() { weld.WithTolerance(-1) })
	require.Panics(t, func() { weld.WithNodeSize(3, 4) })
	require.NotPanics(t, func() { weld.WithNodeSize(2, 4) })
}
