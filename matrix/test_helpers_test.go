// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for vectors and matrices.
//   • Keep tables literal so expected values can be read off the test.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtmath/matrix"
	"github.com/katalvlaran/mtmath/scalar"
)

// mustMatrix builds a matrix from row-major literals or fails the test.
func mustMatrix(tb testing.TB, rows [][]scalar.Int) *matrix.Matrix[scalar.Int] {
	tb.Helper()
	m, err := matrix.NewMatrix(matrix.Dims(len(rows), len(rows[0])), scalar.Int(0))
	require.NoError(tb, err)
	for i, r := range rows {
		for j, x := range r {
			require.NoError(tb, m.Set(i, j, x))
		}
	}

	return m
}

// mustSquare builds a square from row-major literals or fails the test.
func mustSquare(tb testing.TB, rows [][]scalar.Int) *matrix.Square[scalar.Int] {
	tb.Helper()
	s, err := matrix.SquareFrom[scalar.Int](mustMatrix(tb, rows))
	require.NoError(tb, err)

	return s
}

// mustVector builds a vector from literals; column selects the orientation.
func mustVector(tb testing.TB, column bool, xs ...scalar.Int) *matrix.Vector[scalar.Int] {
	tb.Helper()
	orient := matrix.WithColumnVector()
	if !column {
		orient = matrix.WithRowVector()
	}
	v, err := matrix.NewVector(len(xs), scalar.Int(0), orient)
	require.NoError(tb, err)
	for i, x := range xs {
		require.NoError(tb, v.Set(i, x))
	}

	return v
}

// rowsOf reads any container back into row-major literals.
func rowsOf(tb testing.TB, c matrix.Container[scalar.Int]) [][]scalar.Int {
	tb.Helper()
	d := c.Dims()
	out := make([][]scalar.Int, d.Rows)
	for i := range out {
		out[i] = make([]scalar.Int, d.Cols)
		for j := range out[i] {
			x, err := c.At(i, j)
			require.NoError(tb, err)
			out[i][j] = x
		}
	}

	return out
}

// vectorOf reads a vector back into literals.
func vectorOf(tb testing.TB, v *matrix.Vector[scalar.Int]) []scalar.Int {
	tb.Helper()
	out := make([]scalar.Int, v.Len())
	for i := range out {
		x, err := v.At(i)
		require.NoError(tb, err)
		out[i] = x
	}

	return out
}

// lockMask reads the lock state of every cell of c.
func lockMask(c matrix.Container[scalar.Int]) [][]bool {
	d := c.Dims()
	out := make([][]bool, d.Rows)
	for i := range out {
		out[i] = make([]bool, d.Cols)
		for j := range out[i] {
			out[i][j] = c.IsLocked(i, j)
		}
	}

	return out
}
