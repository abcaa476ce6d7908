// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtmath/matrix"
	"github.com/katalvlaran/mtmath/scalar"
)

func TestNewVector_ShapeAndOrientation(t *testing.T) {
	t.Parallel()

	col, err := matrix.NewVector(3, scalar.Int(7))
	require.NoError(t, err)
	require.True(t, col.IsColumn(), "column is the default orientation")
	require.Equal(t, matrix.Dims(3, 1), col.Dims())
	require.Equal(t, []scalar.Int{7, 7, 7}, vectorOf(t, col))

	row, err := matrix.NewVector(3, scalar.Int(0), matrix.WithRowVector())
	require.NoError(t, err)
	require.False(t, row.IsColumn())
	require.Equal(t, 1, row.Rows())
	require.Equal(t, 3, row.Cols())

	for _, n := range []int{0, -1} {
		_, err = matrix.NewVector(n, scalar.Int(0))
		require.ErrorIs(t, err, matrix.ErrIllegalInitialization, "n=%d", n)
	}
}

func TestVector_AtSet_Bounds(t *testing.T) {
	t.Parallel()

	v := mustVector(t, true, 1, 2, 3)
	for _, pos := range []int{-1, 3} {
		_, err := v.At(pos)
		require.ErrorIs(t, err, matrix.ErrAccessIllegalElement, "At(%d)", pos)
		require.ErrorIs(t, v.Set(pos, 9), matrix.ErrAccessIllegalElement, "Set(%d)", pos)
	}
	require.NoError(t, v.Set(2, 9))
	require.Equal(t, []scalar.Int{1, 2, 9}, vectorOf(t, v))
}

func TestVector_Locks(t *testing.T) {
	t.Parallel()

	v := mustVector(t, false, 1, 2, 3)
	require.NoError(t, v.LockCell(1))
	require.True(t, v.IsLocked(1))
	require.False(t, v.IsLocked(7), "out of range reports false")

	require.ErrorIs(t, v.Set(1, 5), matrix.ErrAccessIllegalElement)
	x, err := v.At(1)
	require.NoError(t, err, "locked cells stay readable")
	require.Equal(t, scalar.Int(2), x)

	c := v.Clone()
	require.True(t, c.IsLocked(1), "Clone keeps the mask")

	require.NoError(t, v.UnlockCell(1))
	require.NoError(t, v.Set(1, 5))
	require.True(t, c.IsLocked(1), "clone mask is independent")

	c.Unlock()
	require.False(t, c.IsLocked(1))
	require.ErrorIs(t, v.LockCell(3), matrix.ErrAccessIllegalElement)
	require.ErrorIs(t, v.UnlockCell(-1), matrix.ErrAccessIllegalElement)
}

func TestVector_AddSubInPlace(t *testing.T) {
	t.Parallel()

	a := mustVector(t, true, 1, 2, 3)
	b := mustVector(t, true, 10, 20, 30)
	require.NoError(t, a.LockCell(0))
	require.NoError(t, a.AddInPlace(b), "arithmetic ignores locks")
	require.Equal(t, []scalar.Int{11, 22, 33}, vectorOf(t, a))
	require.NoError(t, a.SubInPlace(b))
	require.Equal(t, []scalar.Int{1, 2, 3}, vectorOf(t, a))

	a.ScaleInPlace(3)
	require.Equal(t, []scalar.Int{3, 6, 9}, vectorOf(t, a))
	require.Equal(t, []scalar.Int{-3, -6, -9}, vectorOf(t, a.Neg()))
}

func TestVector_AddInPlace_Mismatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b *matrix.Vector[scalar.Int]
	}{
		{"length", mustVector(t, true, 1, 2), mustVector(t, true, 1, 2, 3)},
		{"orientation", mustVector(t, true, 1, 2), mustVector(t, false, 1, 2)},
		{"single element orientation", mustVector(t, true, 1), mustVector(t, false, 1)},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tc.a.AddInPlace(tc.b), matrix.ErrDimensionMismatch)
			require.ErrorIs(t, tc.a.SubInPlace(tc.b), matrix.ErrDimensionMismatch)
		})
	}

	v := mustVector(t, true, 1)
	require.ErrorIs(t, v.AddInPlace(nil), matrix.ErrIllegalInitialization)
}

func TestVector_Resize(t *testing.T) {
	t.Parallel()

	v := mustVector(t, true, 1, 2, 3)
	require.NoError(t, v.LockCell(0))
	require.NoError(t, v.Resize(matrix.Dims(5, 1), 9))
	require.Equal(t, []scalar.Int{1, 2, 3, 9, 9}, vectorOf(t, v))
	require.True(t, v.IsLocked(0), "retained cells keep their lock")
	require.False(t, v.IsLocked(4), "new cells are writable")

	require.NoError(t, v.Resize(matrix.Dims(2, 1), 0))
	require.Equal(t, []scalar.Int{1, 2}, vectorOf(t, v))

	for _, d := range []matrix.Dimensions{matrix.Dims(1, 3), matrix.Dims(0, 1), matrix.Dims(2, 2)} {
		require.ErrorIs(t, v.Resize(d, 0), matrix.ErrChangeMatFail, "%v", d)
	}

	row := mustVector(t, false, 1, 2)
	require.NoError(t, row.Resize(matrix.Dims(1, 4), 0))
	require.Equal(t, matrix.Dims(1, 4), row.Dims())
	require.ErrorIs(t, row.Resize(matrix.Dims(4, 1), 0), matrix.ErrChangeMatFail)
}

func TestVector_Transpose(t *testing.T) {
	t.Parallel()

	v := mustVector(t, true, 1, 2, 3)
	require.NoError(t, v.Transpose())
	require.Equal(t, matrix.Dims(1, 3), v.Dims())
	require.Equal(t, []scalar.Int{1, 2, 3}, vectorOf(t, v), "data does not move")
	require.NoError(t, v.Transpose())
	require.Equal(t, matrix.Dims(3, 1), v.Dims())
}

func TestVector_Traversal(t *testing.T) {
	t.Parallel()

	v := mustVector(t, true, 0, 4, 0, 5)
	require.NoError(t, v.LockCell(1))

	var dense []int
	for e := range v.All() {
		dense = append(dense, e.Index())
	}
	require.Equal(t, []int{0, 1, 2, 3}, dense)

	// Vector nonzero traversal filters on the value only.
	var nz []scalar.Int
	for e := range v.NonZero() {
		nz = append(nz, e.Value())
	}
	require.Equal(t, []scalar.Int{4, 5}, nz)

	// Writes through cursors honor locks.
	for e := range v.All() {
		err := e.Set(e.Value() + 1)
		if e.Locked() {
			require.ErrorIs(t, err, matrix.ErrAccessIllegalElement)
		} else {
			require.NoError(t, err)
		}
	}
	require.Equal(t, []scalar.Int{1, 4, 1, 6}, vectorOf(t, v))

	// Restartable: a second pass sees the updated values.
	count := 0
	for range v.NonZero() {
		count++
	}
	require.Equal(t, 4, count)

	_, err := matrix.TraverseVector[scalar.Int](nil, matrix.Every[scalar.Int])
	require.ErrorIs(t, err, matrix.ErrIllegalInitialization)
	_, err = matrix.TraverseVector(v, nil)
	require.ErrorIs(t, err, matrix.ErrIllegalInitialization)
}

func TestVector_TraversalEarlyStop(t *testing.T) {
	t.Parallel()

	v := mustVector(t, false, 1, 2, 3, 4)
	seen := 0
	for e := range v.All() {
		seen++
		if e.Index() == 1 {
			break
		}
	}
	require.Equal(t, 2, seen)
}

func TestVector_Fold(t *testing.T) {
	t.Parallel()

	v := mustVector(t, true, 1, 2, 3, 4)
	require.Equal(t, scalar.Int(10), v.Reduce(0, scalar.Sum[scalar.Int]))
	require.Equal(t, scalar.Int(24), v.Reduce(1, scalar.Product[scalar.Int]))

	count := matrix.Fold(v, 0, func(acc int, x scalar.Int) int {
		if x%2 == 0 {
			acc++
		}
		return acc
	})
	require.Equal(t, 2, count)
}

func TestVector_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[1]\n[2]\n", mustVector(t, true, 1, 2).String())
	require.Equal(t, "[1, 2, 3]\n", mustVector(t, false, 1, 2, 3).String())
}

func TestVector_Equal(t *testing.T) {
	t.Parallel()

	a := mustVector(t, true, 1, 2)
	require.True(t, a.Equal(mustVector(t, true, 1, 2)))
	require.False(t, a.Equal(mustVector(t, false, 1, 2)))
	require.False(t, a.Equal(mustVector(t, true, 1, 3)))
	require.False(t, a.Equal(nil))
}
