// SPDX-License-Identifier: MIT

// Package matrix: shared capability interfaces.
// Operand is the closed set of values the arithmetic layer accepts
// (*Vector, *Matrix, *Square, *Triangular); Container is the shape-changing
// surface shared by the three matrix kinds.
package matrix

import "github.com/katalvlaran/mtmath/scalar"

// Operand is anything the arithmetic layer can read as a matrix.
// Vectors are promoted by orientation: a column vector of length N reads as
// N×1, a row vector as 1×N. The unexported methods close the set to this
// package.
type Operand[T scalar.Element[T]] interface {
	// Dims returns the (promoted) shape.
	Dims() Dimensions

	cell(i, j int) T // unchecked read of (i,j)
	limit() int      // cell cap for results derived from this operand
	isNil() bool     // typed-nil guard
}

// Container is the capability set shared by Matrix, Square and Triangular:
// protected element access plus the shape operations each kind redefines.
type Container[T scalar.Element[T]] interface {
	Operand[T]

	// At reads (i,j); locked cells are readable.
	At(i, j int) (T, error)
	// Set writes (i,j); fails on locked or out-of-range cells.
	Set(i, j int, v T) error
	// IsLocked reports the write protection of (i,j).
	IsLocked(i, j int) bool
	// Resize changes the shape, filling new cells with fill.
	Resize(d Dimensions, fill T) error
	// Reshape re-lays the cells column-major into d.
	Reshape(d Dimensions) error
	// Transpose swaps the axes in place.
	Transpose()
}

// Compile-time assertions.
var (
	_ Operand[scalar.Int]   = (*Vector[scalar.Int])(nil)
	_ Container[scalar.Int] = (*Matrix[scalar.Int])(nil)
	_ Container[scalar.Int] = (*Square[scalar.Int])(nil)
	_ Container[scalar.Int] = (*Triangular[scalar.Int])(nil)
)
