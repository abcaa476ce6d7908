// SPDX-License-Identifier: MIT

// Package matrix - Square: a Matrix refined with rows == cols.
//
// Invariants:
//   - Squareness holds after construction and after every Resize.
//   - Reshape is disabled: an arbitrary reshape cannot keep the shape square.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mtmath/scalar"
)

const (
	ctxSqResize  = "Square.Resize"
	ctxSqReshape = "Square.Reshape"
)

// Square is an n×n Matrix. All Matrix methods are promoted except Resize and
// Reshape, which are redefined.
type Square[T scalar.Element[T]] struct {
	*Matrix[T]
}

// NewSquare creates an n×n matrix filled with fill.
// Errors: ErrIllegalInitialization when n < 1, ErrOutOfMemory over the cap.
func NewSquare[T scalar.Element[T]](n int, fill T, opts ...Option) (*Square[T], error) {
	m, err := NewMatrix(Dims(n, n), fill, opts...)
	if err != nil {
		return nil, matrixErrorf("NewSquare", err)
	}

	return &Square[T]{Matrix: m}, nil
}

// SquareFrom copies the values of a square operand into a new Square.
// The result is fully writable.
// Errors: ErrIllegalInitialization when a is nil or not square.
func SquareFrom[T scalar.Element[T]](a Operand[T]) (*Square[T], error) {
	if err := ValidateOperand(a); err != nil {
		return nil, matrixErrorf("SquareFrom", err)
	}
	if err := ValidateSquare("SquareFrom", a); err != nil {
		return nil, err
	}

	return &Square[T]{Matrix: materialize(a)}, nil
}

// NewIdentity returns I_n: one on the diagonal, zero elsewhere.
// Complexity: O(n^2).
func NewIdentity[T scalar.Element[T]](n int, one T, opts ...Option) (*Square[T], error) {
	s, err := NewSquare(n, scalar.Zero[T](), opts...)
	if err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	for i := 0; i < n; i++ {
		s.rows[i].data[i] = one
	}

	return s, nil
}

// Clone returns a deep copy including the lock mask.
func (s *Square[T]) Clone() *Square[T] { return &Square[T]{Matrix: s.Matrix.Clone()} }

// Resize changes the size to d, which must stay square.
// Errors: ErrChangeMatFail for non-square or empty targets.
func (s *Square[T]) Resize(d Dimensions, fill T) error {
	if !d.IsSquare() {
		return shapeErr(ctxSqResize, s.dim, d, ErrChangeMatFail)
	}
	if err := s.Matrix.Resize(d, fill); err != nil {
		return fmt.Errorf("%s: %w", ctxSqResize, err)
	}

	return nil
}

// Reshape always fails with ErrChangeMatFail.
func (s *Square[T]) Reshape(d Dimensions) error {
	return shapeErr(ctxSqReshape, s.dim, d, ErrChangeMatFail)
}

func (s *Square[T]) isNil() bool { return s == nil || s.Matrix == nil }
