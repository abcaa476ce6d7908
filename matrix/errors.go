// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and the ShapeError
// carrier used across the matrix package. Every operation returns these
// sentinels (possibly wrapped) and tests check them via errors.Is.
// No operation panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grepping.
// Call sites wrap with fmt.Errorf("<Type>.<Method>(...): %w", ErrX) or with
// *ShapeError when both shapes matter; errors.Is keeps matching the sentinel.

var (
	// ErrIllegalInitialization is returned when a container cannot be built:
	// zero-sized dimension, non-square input to a square-only constructor,
	// triangular conversion with nonzero entries on both triangles, or a nil
	// traversal target/predicate.
	ErrIllegalInitialization = errors.New("matrix: illegal initialization")

	// ErrAccessIllegalElement indicates an out-of-range index on read or write,
	// or a write attempt on a write-protected (locked) cell.
	ErrAccessIllegalElement = errors.New("matrix: access to illegal element")

	// ErrDimensionMismatch indicates incompatible operand shapes or orientations
	// in +, - or the matrix product.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrChangeMatFail indicates an invalid Resize or Reshape request,
	// including any Reshape on square and triangular matrices.
	ErrChangeMatFail = errors.New("matrix: change of matrix shape failed")

	// ErrOutOfMemory indicates a storage request that cannot be satisfied:
	// the cell count overflows int or exceeds the configured cell cap.
	ErrOutOfMemory = errors.New("matrix: out of memory")
)

// ShapeError carries both shapes involved in a failed shape-sensitive call.
// It unwraps to one of the sentinels above.
type ShapeError struct {
	Op   string     // operation tag, e.g. "Add", "Matrix.Resize"
	Have Dimensions // receiver / left operand shape
	Want Dimensions // requested / right operand shape
	Err  error      // sentinel
}

// Error renders "Op (RxC) vs (RxC): sentinel".
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s %s vs %s: %v", e.Op, e.Have, e.Want, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ShapeError) Unwrap() error { return e.Err }

// shapeErr builds a *ShapeError.
func shapeErr(op string, have, want Dimensions, err error) error {
	return &ShapeError{Op: op, Have: have, Want: want, Err: err}
}

// matrixErrorf wraps an error with a call-site tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps an error with a method tag and cell coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}
