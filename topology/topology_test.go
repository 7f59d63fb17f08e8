// Package topology_test verifies skeleton extraction, adjacency, relative
// orientation, connectivity and cell pairing on small hand-checked meshes.
package topology_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/topology"
	"github.com/stretchr/testify/require"
)

// strip returns two triangles sharing edge (1,2), consistently oriented.
func strip() *mesh.Mesh {
	return mesh.MustNew(
		[]mesh.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		[]mesh.Cell{{0, 1, 2}, {2, 1, 3}},
	)
}

// triangle returns a single triangle.
func triangle() *mesh.Mesh {
	return mesh.MustNew(
		[]mesh.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[]mesh.Cell{{0, 1, 2}},
	)
}

// tetPair returns two tetrahedra sharing face (1,2,3).
func tetPair() *mesh.Mesh {
	return mesh.MustNew(
		[]mesh.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}},
		[]mesh.Cell{{0, 1, 2, 3}, {1, 2, 3, 4}},
	)
}

func TestSkeleton_TopDimensionAliases(t *testing.T) {
	t.Parallel()

	m := strip()
	sk, err := topology.Skeleton(m, m.Dim())
	require.NoError(t, err)
	require.Same(t, m, sk)
}

func TestSkeleton_Strip(t *testing.T) {
	t.Parallel()

	m := strip()
	edges, err := topology.Skeleton(m, 1)
	require.NoError(t, err)
	require.Equal(t, []mesh.Cell{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {1, 3}}, edges.Cells())
	require.Equal(t, 1, edges.Dim())
	require.Equal(t, m.NumVertices(), edges.NumVertices())
	require.Same(t, &m.Vertices()[0], &edges.Vertices()[0], "skeleton shares the vertex buffer")

	verts, err := topology.Skeleton(m, 0)
	require.NoError(t, err)
	require.Equal(t, []mesh.Cell{{0}, {1}, {2}, {3}}, verts.Cells())
}

func TestSkeleton_InvalidK(t *testing.T) {
	t.Parallel()

	m := strip()
	for _, k := range []int{-1, 3} {
		_, err := topology.Skeleton(m, k)
		require.ErrorIs(t, err, topology.ErrInvalidArgument, "k=%d", k)
	}
	_, err := topology.Skeleton(nil, 0)
	require.ErrorIs(t, err, topology.ErrNilMesh)
	_, err = topology.SkeletonFunc(m, 1, nil)
	require.ErrorIs(t, err, topology.ErrInvalidArgument)
}

func TestSkeleton_Properties(t *testing.T) {
	t.Parallel()

	m := tetPair()
	wantCounts := []int{5, 9, 7}
	for k := 0; k < m.Dim(); k++ {
		sk, err := topology.Skeleton(m, k)
		require.NoError(t, err)
		require.Equal(t, wantCounts[k], sk.NumCells(), "k=%d", k)

		seen := make(map[mesh.Key]bool)
		for _, c := range sk.Cells() {
			require.Len(t, c, k+1)
			require.True(t, sort.IntsAreSorted(c), "cell %v not sorted", c)
			require.False(t, seen[c.Key()], "duplicate %v", c)
			seen[c.Key()] = true
			require.True(t, subsetOfSome(c, m.Cells()), "cell %v has no parent", c)
		}
	}
}

func subsetOfSome(c mesh.Cell, parents []mesh.Cell) bool {
	for _, p := range parents {
		all := true
		for _, v := range c {
			found := false
			for _, w := range p {
				if v == w {
					found = true
					break
				}
			}
			if !found {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

func TestSkeletonFunc(t *testing.T) {
	t.Parallel()

	m := strip()

	// The predicate sees tuples before sorting: only (2,1) from the second
	// cell is descending.
	desc, err := topology.SkeletonFunc(m, 1, func(c mesh.Cell) bool { return c[0] > c[1] })
	require.NoError(t, err)
	require.Equal(t, []mesh.Cell{{1, 2}}, desc.Cells())

	touching, err := topology.SkeletonFunc(m, 1, func(c mesh.Cell) bool { return c[0] == 3 || c[1] == 3 })
	require.NoError(t, err)
	require.Equal(t, []mesh.Cell{{2, 3}, {1, 3}}, touching.Cells())

	// Top dimension: cells are filtered, not re-sorted.
	top, err := topology.SkeletonFunc(m, 2, func(c mesh.Cell) bool { return c[2] == 3 })
	require.NoError(t, err)
	require.Equal(t, []mesh.Cell{{2, 1, 3}}, top.Cells())

	none, err := topology.SkeletonFunc(m, 0, func(mesh.Cell) bool { return false })
	require.NoError(t, err)
	require.Equal(t, 0, none.NumCells())
	require.Equal(t, 0, none.Dim())
}

func TestVertexCells(t *testing.T) {
	t.Parallel()

	vc := topology.NewVertexCells(strip())
	require.Equal(t, 2, vc.Width())
	require.Equal(t, 4, vc.NumVertices())
	require.Equal(t, []int{0}, vc.Row(0))
	require.Equal(t, []int{0, 1}, vc.Row(1))
	require.Equal(t, []int{0, 1}, vc.Row(2))
	require.Equal(t, []int{1}, vc.Row(3))
	require.Equal(t, 1, vc.Count(3))
	require.Equal(t, topology.NoCell, vc.At(0, 1))
	require.Equal(t, 1, vc.At(3, 0))
}

func TestRelativeOrientation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		face, cell mesh.Cell
		want       int
	}{
		{"Edge01", mesh.Cell{0, 1}, mesh.Cell{0, 1, 2}, 3},
		{"Edge02", mesh.Cell{0, 2}, mesh.Cell{0, 1, 2}, -2},
		{"Edge12", mesh.Cell{1, 2}, mesh.Cell{0, 1, 2}, 1},
		{"Edge10Reversed", mesh.Cell{1, 0}, mesh.Cell{0, 1, 2}, -3},
		{"SharedInSecond", mesh.Cell{1, 2}, mesh.Cell{2, 1, 3}, -3},
		{"NotAFace", mesh.Cell{2, 3}, mesh.Cell{0, 1, 2}, 0},
		{"SameArity", mesh.Cell{0, 1, 2}, mesh.Cell{0, 1, 2}, 0},
		{"RepeatedVertex", mesh.Cell{1, 1}, mesh.Cell{0, 1, 2}, 0},
		{"VertexTail", mesh.Cell{0}, mesh.Cell{0, 1}, -2},
		{"VertexHead", mesh.Cell{1}, mesh.Cell{0, 1}, 1},
		{"Tet123", mesh.Cell{1, 2, 3}, mesh.Cell{0, 1, 2, 3}, 1},
		{"Tet023", mesh.Cell{0, 2, 3}, mesh.Cell{0, 1, 2, 3}, -2},
		{"Tet013", mesh.Cell{0, 1, 3}, mesh.Cell{0, 1, 2, 3}, 3},
		{"Tet012", mesh.Cell{0, 1, 2}, mesh.Cell{0, 1, 2, 3}, -4},
		{"Tet021", mesh.Cell{0, 2, 1}, mesh.Cell{0, 1, 2, 3}, 4},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, topology.RelativeOrientation(tc.face, tc.cell))
		})
	}
}

func TestConnectivity_Triangle(t *testing.T) {
	t.Parallel()

	m := triangle()
	edges, err := topology.Skeleton(m, 1)
	require.NoError(t, err)
	verts, err := topology.Skeleton(m, 0)
	require.NoError(t, err)

	d1, err := topology.Connectivity(edges, m)
	require.NoError(t, err)
	require.Equal(t, "[1, -1, 1]\n", d1.String())

	d1id, err := topology.Connectivity(edges, m, topology.WithEntryOp(topology.Identity))
	require.NoError(t, err)
	require.Equal(t, "[3, -2, 1]\n", d1id.String())

	d0, err := topology.Connectivity(verts, edges)
	require.NoError(t, err)
	require.Equal(t, "[-1, 1, 0]\n[-1, 0, 1]\n[0, -1, 1]\n", d0.String())

	d0id, err := topology.Connectivity(verts, edges, topology.WithEntryOp(topology.Identity))
	require.NoError(t, err)
	require.Equal(t, "[-2, 1, 0]\n[-2, 0, 1]\n[0, -2, 1]\n", d0id.String())
}

func TestConnectivity_BoundaryOfBoundary(t *testing.T) {
	t.Parallel()

	for name, m := range map[string]*mesh.Mesh{"strip": strip(), "tetPair": tetPair()} {
		m := m
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for k := 0; k+2 <= m.Dim(); k++ {
				lo, err := topology.Skeleton(m, k)
				require.NoError(t, err)
				mid, err := topology.Skeleton(m, k+1)
				require.NoError(t, err)
				hi, err := topology.Skeleton(m, k+2)
				require.NoError(t, err)

				dLo, err := topology.Connectivity(lo, mid)
				require.NoError(t, err)
				dHi, err := topology.Connectivity(mid, hi)
				require.NoError(t, err)

				prod, err := mulSparse(dHi, dLo)
				require.NoError(t, err)
				require.True(t, prod, "d∘d must vanish at k=%d", k)
			}
		})
	}
}

func TestConnectivity_ManifoldColumnBound(t *testing.T) {
	t.Parallel()

	m := strip()
	edges, err := topology.Skeleton(m, 1)
	require.NoError(t, err)
	d, err := topology.Connectivity(edges, m)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 2, 1, 1}, d.ColAbsSums())
	require.Equal(t, []int{1, -1, 0, -1, 1}, d.ColSums())
}

func TestConnectivity_Errors(t *testing.T) {
	t.Parallel()

	m := strip()
	edges, err := topology.Skeleton(m, 1)
	require.NoError(t, err)

	_, err = topology.Connectivity(m, edges)
	require.ErrorIs(t, err, topology.ErrInvalidArgument)

	other := mesh.MustNew([]mesh.Point{{0, 0, 0}, {1, 0, 0}}, []mesh.Cell{{0, 1}})
	_, err = topology.Connectivity(other, m)
	require.ErrorIs(t, err, topology.ErrVertexMismatch)

	_, err = topology.Connectivity(nil, m)
	require.ErrorIs(t, err, topology.ErrNilMesh)

	require.Panics(t, func() { topology.WithEntryOp(nil) })
}

func TestCellPairs_SingleTriangle(t *testing.T) {
	t.Parallel()

	m := triangle()
	edges, err := topology.Skeleton(m, 1)
	require.NoError(t, err)
	pairs, err := topology.CellPairs(m, edges)
	require.NoError(t, err)
	require.Equal(t, []topology.CellPair{{0, -3}, {0, -2}, {0, -1}}, pairs)
	for _, p := range pairs {
		require.True(t, p.IsBoundary())
		require.Contains(t, []int{1, 2, 3}, p.LocalFace())
	}
}

func TestCellPairs_Strip(t *testing.T) {
	t.Parallel()

	m := strip()
	edges, err := topology.Skeleton(m, 1)
	require.NoError(t, err)
	pairs, err := topology.CellPairs(m, edges)
	require.NoError(t, err)

	require.Equal(t, []topology.CellPair{{0, -3}, {0, -2}, {1, 0}, {1, -2}, {1, -1}}, pairs)

	interior, boundary := 0, 0
	for _, p := range pairs {
		if p.IsBoundary() {
			boundary++
		} else {
			interior++
			require.Equal(t, 0, p.LocalFace())
		}
	}
	require.Equal(t, 1, interior)
	require.Equal(t, 4, boundary)
}

func TestCellPairs_Junction(t *testing.T) {
	t.Parallel()

	// Three triangles hinged on edge (0,1); the third sees it reversed.
	m := mesh.MustNew(
		[]mesh.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}},
		[]mesh.Cell{{0, 1, 2}, {0, 1, 3}, {1, 0, 4}},
	)
	edges, err := topology.Skeleton(m, 1)
	require.NoError(t, err)
	require.Equal(t, mesh.Cell{0, 1}, edges.Cell(0))

	all, err := topology.CellPairs(m, edges)
	require.NoError(t, err)
	require.Len(t, all, 9)
	require.Equal(t, []topology.CellPair{{0, 1}, {2, 0}, {2, 1}}, all[:3])
	for _, p := range all[3:] {
		require.True(t, p.IsBoundary())
	}

	dropped, err := topology.CellPairs(m, edges, topology.WithDropJunctionPair())
	require.NoError(t, err)
	require.Len(t, dropped, 8)
	require.Equal(t, []topology.CellPair{{0, 1}, {2, 0}}, dropped[:2])
	require.Equal(t, all[3:], dropped[2:])
}

func TestCellPairs_Errors(t *testing.T) {
	t.Parallel()

	m := strip()
	_, err := topology.CellPairs(m, m)
	require.ErrorIs(t, err, topology.ErrInvalidArgument)

	// Vertex 3 is unused by the single triangle: edge (2,3) has no cell.
	lonely := mesh.MustNew(
		[]mesh.Point{{0, 0}, {1, 0}, {0, 1}, {5, 5}},
		[]mesh.Cell{{0, 1, 2}},
	)
	faces := mesh.MustNew(lonely.Vertices(), []mesh.Cell{{0, 1}, {2, 3}})
	_, err = topology.CellPairs(lonely, faces)
	require.ErrorIs(t, err, topology.ErrInconsistent)

	short := mesh.MustNew([]mesh.Point{{0, 0}, {1, 0}}, []mesh.Cell{{0, 1}})
	_, err = topology.CellPairs(m, short)
	require.ErrorIs(t, err, topology.ErrVertexMismatch)
}

func TestIsOriented(t *testing.T) {
	t.Parallel()

	ok, err := topology.IsOriented(strip())
	require.NoError(t, err)
	require.True(t, ok)

	bad := mesh.MustNew(strip().Vertices(), []mesh.Cell{{0, 1, 2}, {1, 2, 3}})
	ok, err = topology.IsOriented(bad)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = topology.IsOriented(tetPair())
	require.NoError(t, err)
	require.True(t, ok)

	cloud := mesh.MustNew([]mesh.Point{{0}}, []mesh.Cell{{0}})
	ok, err = topology.IsOriented(cloud)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBoundary(t *testing.T) {
	t.Parallel()

	b, err := topology.Boundary(strip())
	require.NoError(t, err)
	require.Equal(t, 1, b.Dim())
	require.Equal(t, []mesh.Cell{{0, 1}, {2, 0}, {3, 2}, {1, 3}}, b.Cells())

	// A closed loop has no boundary.
	bb, err := topology.Boundary(b)
	require.NoError(t, err)
	require.Equal(t, 0, bb.NumCells())
	require.Equal(t, 0, bb.Dim())

	tb, err := topology.Boundary(tetPair())
	require.NoError(t, err)
	require.Equal(t, 6, tb.NumCells(), "7 faces minus the shared one")
	ok, err := topology.IsOriented(tb)
	require.NoError(t, err)
	require.True(t, ok, "induced boundary orientation is consistent")
}

func TestEulerCharacteristic(t *testing.T) {
	t.Parallel()

	chi, err := topology.EulerCharacteristic(strip())
	require.NoError(t, err)
	require.Equal(t, 1, chi)

	chi, err = topology.EulerCharacteristic(tetPair())
	require.NoError(t, err)
	require.Equal(t, 1, chi)

	b, err := topology.Boundary(tetPair())
	require.NoError(t, err)
	chi, err = topology.EulerCharacteristic(b)
	require.NoError(t, err)
	require.Equal(t, 2, chi, "closed surface of a ball is a sphere")
}

func TestComponents(t *testing.T) {
	t.Parallel()

	comps, err := topology.Components(strip())
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}}, comps)

	comps, err = topology.Components(tetPair())
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}}, comps)

	// Cell 2 touches cells 0 and 1 only at vertices; cell 3 bridges 0 and 2
	// through edges (1,2) and (3,2).
	m := mesh.MustNew(
		[]mesh.Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}, {3, 2}, {3, 3}},
		[]mesh.Cell{{0, 1, 2}, {4, 5, 6}, {2, 3, 4}, {1, 3, 2}},
	)
	comps, err = topology.Components(m)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 3, 2}, {1}}, comps)

	points := mesh.MustNew([]mesh.Point{{0}, {1}}, []mesh.Cell{{0}, {1}})
	comps, err = topology.Components(points)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {1}}, comps)

	comps, err = topology.Components(mesh.MustNew(nil, nil))
	require.NoError(t, err)
	require.Empty(t, comps)

	_, err = topology.Components(nil)
	require.ErrorIs(t, err, topology.ErrNilMesh)
}
