// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep containers and the arithmetic layer minimal by delegating
//     nil/shape/capacity checks here.
//   - Return plain sentinel errors (or *ShapeError) so call sites wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"math"

	"github.com/katalvlaran/mtmath/scalar"
)

// checkCells verifies that d can be allocated under the cell cap.
// Returns ErrOutOfMemory when Rows*Cols overflows int or exceeds maxCells.
// Assumes d.Valid() was checked by the caller.
// Complexity: O(1).
func checkCells(d Dimensions, maxCells int) error {
	// Overflow guard first: Rows*Cols must be representable.
	if d.Rows > math.MaxInt/d.Cols {
		return ErrOutOfMemory
	}
	if d.Size() > maxCells {
		return ErrOutOfMemory
	}

	return nil
}

// ValidateOperand ensures the operand reference is non-nil.
// Typed nil pointers are caught as well.
// Returns ErrIllegalInitialization on nil.
// Complexity: O(1).
func ValidateOperand[T scalar.Element[T]](a Operand[T]) error {
	if a == nil || a.isNil() {
		return ErrIllegalInitialization
	}

	return nil
}

// ValidateSameShape ensures a and b have identical Dimensions.
// Implementation: assumes non-nil operands (caller must ensure).
// Returns *ShapeError wrapping ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T scalar.Element[T]](op string, a, b Operand[T]) error {
	if !a.Dims().Equal(b.Dims()) {
		return shapeErr(op, a.Dims(), b.Dims(), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinary – Composite: Operand(a) → Operand(b) → SameShape.
func ValidateBinary[T scalar.Element[T]](op string, a, b Operand[T]) error {
	if err := ValidateOperand(a); err != nil {
		return matrixErrorf(op, err)
	}
	if err := ValidateOperand(b); err != nil {
		return matrixErrorf(op, err)
	}

	return ValidateSameShape(op, a, b)
}

// ValidateSquare ensures the operand is square.
// Returns ErrIllegalInitialization: squareness is only demanded at construction.
func ValidateSquare[T scalar.Element[T]](op string, a Operand[T]) error {
	if !a.Dims().IsSquare() {
		return shapeErr(op, a.Dims(), a.Dims().Transposed(), ErrIllegalInitialization)
	}

	return nil
}
