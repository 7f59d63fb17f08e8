// Package matrix_test exercises Sparse storage and algebra with
// table-driven, parallel tests.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmesh/matrix"
	"github.com/stretchr/testify/require"
)

// newFilled builds a rows×cols matrix from row-major values (0 = absent).
func newFilled(t *testing.T, rows, cols int, vals ...int) *matrix.Sparse {
	t.Helper()
	m, err := matrix.NewSparse(rows, cols)
	require.NoError(t, err)
	for i, v := range vals {
		require.NoError(t, m.Set(i/cols, i%cols, v))
	}
	return m
}

func TestNewSparse_Shape(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewSparse(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewSparse(0, 3)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.True(t, m.IsZero())
}

func TestSparse_AtSet(t *testing.T) {
	t.Parallel()

	m := newFilled(t, 2, 3, 0, 1, 0, -2, 0, 3)
	require.Equal(t, 3, m.NNZ())

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, -2, v)

	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, v)

	// Storing zero erases.
	require.NoError(t, m.Set(1, 2, 0))
	require.Equal(t, 2, m.NNZ())

	tests := []struct {
		name     string
		row, col int
	}{
		{"NegRow", -1, 0}, {"BigRow", 2, 0}, {"NegCol", 0, -1}, {"BigCol", 0, 3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := m.At(tc.row, tc.col)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
		})
	}
	require.ErrorIs(t, m.Set(5, 5, 1), matrix.ErrOutOfRange)

	var nilM *matrix.Sparse
	_, err = nilM.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSparse_EntriesOrdered(t *testing.T) {
	t.Parallel()

	m := newFilled(t, 3, 3, 0, 0, 5, 1, 0, 0, 0, 7, 2)
	require.Equal(t, []matrix.Entry{
		{Row: 0, Col: 2, Value: 5},
		{Row: 1, Col: 0, Value: 1},
		{Row: 2, Col: 1, Value: 7},
		{Row: 2, Col: 2, Value: 2},
	}, m.Entries())
}

func TestSparse_TransposeMul(t *testing.T) {
	t.Parallel()

	a := newFilled(t, 2, 3, 1, -1, 0, 0, 1, -1)
	at := a.Transpose()
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())
	v, err := at.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, -1, v)

	// a·aᵀ = [[2,-1],[-1,2]]
	p, err := matrix.Mul(a, at)
	require.NoError(t, err)
	require.Equal(t, "[2, -1]\n[-1, 2]\n", p.String())

	// Full cancellation leaves no stored zeros.
	b := newFilled(t, 3, 1, 1, 1, 1)
	z, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, z.IsZero())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSparse_Sums(t *testing.T) {
	t.Parallel()

	m := newFilled(t, 2, 3, 1, -1, 0, -1, -1, 2)
	require.Equal(t, []int{0, -2, 2}, m.ColSums())
	require.Equal(t, []int{2, 2, 2}, m.ColAbsSums())
	require.Equal(t, []int{2, 4}, m.RowAbsSums())
}

func TestSparse_DenseAndClone(t *testing.T) {
	t.Parallel()

	m := newFilled(t, 2, 2, 3, 0, 0, -4)
	d, err := m.Dense()
	require.NoError(t, err)
	require.Equal(t, -4.0, d.At(1, 1))
	require.Equal(t, 0.0, d.At(0, 1))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 0))
	v, _ := m.At(0, 0)
	require.Equal(t, 3, v, "clone is independent")

	empty, err := matrix.NewSparse(0, 2)
	require.NoError(t, err)
	_, err = empty.Dense()
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
