// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change loop orders or lock policy of the underlying code.
//   - Validation happens in the delegates; facades only compose or forward.

package matrix

import "github.com/katalvlaran/mtmath/scalar"

// ---------- Constructors & Utilities ----------

// NewZeros returns a fresh zero matrix of shape d.
// Thin alias of NewMatrix with fill = zero.
func NewZeros[T scalar.Element[T]](d Dimensions, opts ...Option) (*Matrix[T], error) {
	return NewMatrix(d, scalar.Zero[T](), opts...)
}

// ZerosLike returns a fresh zero matrix with the shape of a.
func ZerosLike[T scalar.Element[T]](a Operand[T]) (*Matrix[T], error) {
	if err := ValidateOperand(a); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewMatrix(a.Dims(), scalar.Zero[T](), WithMaxCells(a.limit()))
}

// IdentityLike returns I with the size of a; a must be square.
func IdentityLike[T scalar.Element[T]](a Operand[T], one T) (*Square[T], error) {
	if err := ValidateOperand(a); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare("IdentityLike", a); err != nil {
		return nil, err
	}

	return NewIdentity(a.Dims().Rows, one, WithMaxCells(a.limit()))
}

// Copy returns a fresh, fully writable Matrix holding the values of a.
// Vectors are promoted by orientation.
func Copy[T scalar.Element[T]](a Operand[T]) (*Matrix[T], error) {
	if err := ValidateOperand(a); err != nil {
		return nil, matrixErrorf("Copy", err)
	}

	return materialize(a), nil
}

// ---------- Algebra aliases ----------

// Sum is an alias for Add.
func Sum[T scalar.Element[T]](a, b Operand[T]) (*Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff[T scalar.Element[T]](a, b Operand[T]) (*Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product[T scalar.Element[T]](a, b Operand[T]) (*Matrix[T], error) { return Mul(a, b) }

// TransposeOf returns aᵀ as a fresh matrix; a is not modified.
// Implementation: Copy → Transpose.
func TransposeOf[T scalar.Element[T]](a Operand[T]) (*Matrix[T], error) {
	m, err := Copy(a)
	if err != nil {
		return nil, matrixErrorf("TransposeOf", err)
	}
	m.Transpose()

	return m, nil
}

// RowSums returns a column vector with the sum of every row of a.
// Implementation: ColumnSums of aᵀ, reoriented.
func RowSums[T scalar.Element[T]](a Operand[T]) (*Vector[T], error) {
	at, err := TransposeOf(a)
	if err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	sums, err := ColumnSums[T](at)
	if err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	if err = sums.Transpose(); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}

	return sums, nil
}
