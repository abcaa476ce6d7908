// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Free arithmetic operators built only on the Operand contract:
//     matrix±matrix, matrix±vector, vector±matrix (vectors are promoted),
//     matrix±scalar, scalar±matrix, the algebraic product, scaling, and the
//     vector-only counterparts.
//   - Shape compatibility is re-validated on every call.
//
// Behavior highlights:
//   - Operands are never mutated; results are fresh and fully writable.
//   - Element order of non-commutative products is preserved (a·b, never b·a).
//
// Determinism:
//   - Fixed i→j (→k) loop orders.

package matrix

import (
	"github.com/katalvlaran/mtmath/scalar"
)

const (
	ctxAdd       = "Add"
	ctxSub       = "Sub"
	ctxMul       = "Mul"
	ctxAddScalar = "AddScalar"
	ctxSubScalar = "SubScalar"
	ctxScalarSub = "ScalarSub"
	ctxScale     = "Scale"
	ctxVecAddFn  = "VecAdd"
	ctxVecSubFn  = "VecSub"
)

// elementwise builds out[i,j] = f(a[i,j], b[i,j]) for same-shape operands.
func elementwise[T scalar.Element[T]](op string, a, b Operand[T], f func(x, y T) T) (*Matrix[T], error) {
	if err := ValidateBinary(op, a, b); err != nil {
		return nil, err
	}
	d := a.Dims()
	out := newMatrix(d, scalar.Zero[T](), max(a.limit(), b.limit()))
	for i := 0; i < d.Rows; i++ {
		row := out.rows[i].data
		for j := range row {
			row[j] = f(a.cell(i, j), b.cell(i, j))
		}
	}

	return out, nil
}

// mapCells builds out[i,j] = f(a[i,j]).
func mapCells[T scalar.Element[T]](op string, a Operand[T], f func(x T) T) (*Matrix[T], error) {
	if err := ValidateOperand(a); err != nil {
		return nil, matrixErrorf(op, err)
	}
	d := a.Dims()
	out := newMatrix(d, scalar.Zero[T](), a.limit())
	for i := 0; i < d.Rows; i++ {
		row := out.rows[i].data
		for j := range row {
			row[j] = f(a.cell(i, j))
		}
	}

	return out, nil
}

// Add returns a + b. Either side may be a vector of the same promoted shape.
// Errors: ErrDimensionMismatch, ErrIllegalInitialization (nil operand).
// Complexity: O(r*c).
func Add[T scalar.Element[T]](a, b Operand[T]) (*Matrix[T], error) {
	return elementwise(ctxAdd, a, b, func(x, y T) T { return x.Add(y) })
}

// Sub returns a - b. Either side may be a vector of the same promoted shape.
// Errors: ErrDimensionMismatch, ErrIllegalInitialization (nil operand).
func Sub[T scalar.Element[T]](a, b Operand[T]) (*Matrix[T], error) {
	return elementwise(ctxSub, a, b, func(x, y T) T { return x.Sub(y) })
}

// AddScalar returns a + s applied to every cell (also scalar + matrix).
func AddScalar[T scalar.Element[T]](a Operand[T], s T) (*Matrix[T], error) {
	return mapCells(ctxAddScalar, a, func(x T) T { return x.Add(s) })
}

// SubScalar returns a - s applied to every cell.
func SubScalar[T scalar.Element[T]](a Operand[T], s T) (*Matrix[T], error) {
	return mapCells(ctxSubScalar, a, func(x T) T { return x.Sub(s) })
}

// ScalarSub returns s - a applied to every cell.
func ScalarSub[T scalar.Element[T]](s T, a Operand[T]) (*Matrix[T], error) {
	return mapCells(ctxScalarSub, a, func(x T) T { return s.Sub(x) })
}

// Scale returns a * s applied to every cell (also scalar × matrix).
func Scale[T scalar.Element[T]](a Operand[T], s T) (*Matrix[T], error) {
	return mapCells(ctxScale, a, func(x T) T { return x.Mul(s) })
}

// Mul returns the algebraic product a × b.
// MAIN DESCRIPTION:
//   - Standard product over the shared dimension; vectors are promoted first,
//     so matrix×vector, vector×matrix and vector×vector are all covered.
//
// Implementation:
//   - Stage 1: nil checks; a.Cols must equal b.Rows (ErrDimensionMismatch).
//   - Stage 2: allocate (a.Rows × b.Cols) under the larger operand cap.
//   - Stage 3: out[i,j] = Σ_k a[i,k]·b[k,j], accumulated from zero.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T scalar.Element[T]](a, b Operand[T]) (*Matrix[T], error) {
	if err := ValidateOperand(a); err != nil {
		return nil, matrixErrorf(ctxMul, err)
	}
	if err := ValidateOperand(b); err != nil {
		return nil, matrixErrorf(ctxMul, err)
	}
	da, db := a.Dims(), b.Dims()
	if da.Cols != db.Rows {
		return nil, shapeErr(ctxMul, da, db, ErrDimensionMismatch)
	}

	d := Dims(da.Rows, db.Cols)
	limit := max(a.limit(), b.limit())
	if err := checkCells(d, limit); err != nil {
		return nil, shapeErr(ctxMul, da, db, err)
	}
	out := newMatrix(d, scalar.Zero[T](), limit)
	for i := 0; i < d.Rows; i++ {
		row := out.rows[i].data
		for j := range row {
			acc := scalar.Zero[T]()
			for k := 0; k < da.Cols; k++ {
				acc = acc.Add(a.cell(i, k).Mul(b.cell(k, j)))
			}
			row[j] = acc
		}
	}

	return out, nil
}

// ColumnSums returns a row vector with the sum of every column of a.
// Implementation: ReduceColumns with scalar.Sum seeded at zero.
func ColumnSums[T scalar.Element[T]](a Operand[T]) (*Vector[T], error) {
	if err := ValidateOperand(a); err != nil {
		return nil, matrixErrorf("ColumnSums", err)
	}

	return materialize(a).ReduceColumns(scalar.Zero[T](), scalar.Sum[T]), nil
}

// ---------- Vector-only operators ----------

// VecAdd returns a + b as a fresh vector.
// Errors: ErrDimensionMismatch unless Dimensions and orientation match.
func VecAdd[T scalar.Element[T]](a, b *Vector[T]) (*Vector[T], error) {
	if a == nil {
		return nil, matrixErrorf(ctxVecAddFn, ErrIllegalInitialization)
	}
	out := a.fresh()
	if err := out.AddInPlace(b); err != nil {
		return nil, matrixErrorf(ctxVecAddFn, err)
	}

	return out, nil
}

// VecSub returns a - b as a fresh vector.
// Errors: ErrDimensionMismatch unless Dimensions and orientation match.
func VecSub[T scalar.Element[T]](a, b *Vector[T]) (*Vector[T], error) {
	if a == nil {
		return nil, matrixErrorf(ctxVecSubFn, ErrIllegalInitialization)
	}
	out := a.fresh()
	if err := out.SubInPlace(b); err != nil {
		return nil, matrixErrorf(ctxVecSubFn, err)
	}

	return out, nil
}

// mapVector returns a fresh vector with f applied to every element.
func mapVector[T scalar.Element[T]](op string, v *Vector[T], f func(x T) T) (*Vector[T], error) {
	if v == nil {
		return nil, matrixErrorf(op, ErrIllegalInitialization)
	}
	out := v.fresh()
	for i, x := range out.data {
		out.data[i] = f(x)
	}

	return out, nil
}

// VecAddScalar returns v + s element-wise (also s + v).
func VecAddScalar[T scalar.Element[T]](v *Vector[T], s T) (*Vector[T], error) {
	return mapVector("VecAddScalar", v, func(x T) T { return x.Add(s) })
}

// VecSubScalar returns v - s element-wise.
func VecSubScalar[T scalar.Element[T]](v *Vector[T], s T) (*Vector[T], error) {
	return mapVector("VecSubScalar", v, func(x T) T { return x.Sub(s) })
}

// VecScalarSub returns s - v element-wise.
func VecScalarSub[T scalar.Element[T]](s T, v *Vector[T]) (*Vector[T], error) {
	return mapVector("VecScalarSub", v, func(x T) T { return s.Sub(x) })
}

// VecScale returns v * s element-wise (also s * v).
func VecScale[T scalar.Element[T]](v *Vector[T], s T) (*Vector[T], error) {
	return mapVector("VecScale", v, func(x T) T { return x.Mul(s) })
}
