// SPDX-License-Identifier: MIT

// Package matrix - Triangular: a Square with one write-protected triangle.
//
// Purpose:
//   - Keep exactly one off-diagonal triangle logically zero by storing zero
//     there and locking it (upper ⇒ cells i>j locked, lower ⇒ cells i<j locked).
//   - Re-establish the mask after every storage rebuild (Resize, Transpose),
//     since the base Matrix rebuilds storage with every cell writable.
//
// Invariants:
//   - Protected side: value == zero, locked.
//   - Free side (diagonal included): writable.
//
// Behavior highlights:
//   - Transpose flips the orientation: upper ⇄ lower.
//   - Reshape stays disabled (inherited from Square).
//   - Lock editing is refused at matrix level and through Row(i); the mask
//     is structural.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mtmath/scalar"
)

const (
	ctxTriNew    = "NewTriangular"
	ctxTriFrom   = "TriangularFrom"
	ctxTriResize = "Triangular.Resize"
	ctxTriLock   = "Triangular.LockCell"
	ctxTriUnlock = "Triangular.UnlockCell"
	ctxTriAdd    = "Triangular.AddInPlace"
	ctxTriSub    = "Triangular.SubInPlace"
)

// Triangular is an upper- or lower-triangular Square.
type Triangular[T scalar.Element[T]] struct {
	*Square[T]
	upper bool // true ⇒ strictly-lower cells are protected
}

// NewTriangular creates an n×n triangular matrix. The free triangle,
// diagonal included, is set to fill; the other triangle is zero and locked.
// Orientation defaults to upper; pass WithLower() for lower.
// MAIN DESCRIPTION:
//   - Delegates shape checks to NewSquare, then applies the structural mask.
//
// Errors:
//   - ErrIllegalInitialization when n < 1, ErrOutOfMemory over the cap.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func NewTriangular[T scalar.Element[T]](n int, fill T, opts ...Option) (*Triangular[T], error) {
	o := gatherOptions(opts...)
	s, err := NewSquare(n, fill, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxTriNew, err)
	}
	t := &Triangular[T]{Square: s, upper: o.upper}
	t.enforce()

	return t, nil
}

// TriangularFrom converts a square operand into a Triangular.
// MAIN DESCRIPTION:
//   - Detect which triangles carry nonzero values and adopt the implied orientation.
//
// Implementation:
//   - Stage 1: nil and square checks (ErrIllegalInitialization).
//   - Stage 2: scan both strict triangles for nonzero values.
//   - Stage 3: both nonzero ⇒ ErrIllegalInitialization; only the lower one
//     nonzero ⇒ lower; otherwise (upper only, or all zero) ⇒ upper.
//   - Stage 4: copy values and lock the opposite triangle.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func TriangularFrom[T scalar.Element[T]](a Operand[T]) (*Triangular[T], error) {
	if err := ValidateOperand(a); err != nil {
		return nil, matrixErrorf(ctxTriFrom, err)
	}
	if err := ValidateSquare(ctxTriFrom, a); err != nil {
		return nil, err
	}

	n := a.Dims().Rows
	nonzeroBelow, nonzeroAbove := false, false
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if scalar.IsZero(a.cell(i, j)) {
				continue
			}
			if i > j {
				nonzeroBelow = true
			} else if i < j {
				nonzeroAbove = true
			}
		}
	}
	if nonzeroBelow && nonzeroAbove {
		return nil, fmt.Errorf("%s: nonzero entries on both triangles: %w", ctxTriFrom, ErrIllegalInitialization)
	}

	t := &Triangular[T]{Square: &Square[T]{Matrix: materialize(a)}, upper: !nonzeroBelow}
	if t.upper {
		t.LockLower()
	} else {
		t.LockUpper()
	}
	t.seal()

	return t, nil
}

// IsUpper reports the orientation.
func (t *Triangular[T]) IsUpper() bool { return t.upper }

// protected reports whether (i,j) lies on the locked side.
func (t *Triangular[T]) protected(i, j int) bool {
	if t.upper {
		return i > j
	}

	return i < j
}

// seal marks every row as carrying the structural mask, so lock edits and
// in-place arithmetic through Row(i) cannot reach the protected side.
func (t *Triangular[T]) seal() {
	for _, r := range t.rows {
		r.role = maskedRow
	}
}

// enforce zeroes and locks the protected triangle and unlocks the free side
// over the whole current footprint, then seals the rows.
func (t *Triangular[T]) enforce() {
	var zero T
	for i, r := range t.rows {
		for j := range r.data {
			if t.protected(i, j) {
				r.data[j] = zero
				r.locked[j] = true
			} else {
				r.locked[j] = false
			}
		}
	}
	t.seal()
}

// Clone copies the storage, then re-derives the lock mask from the orientation.
func (t *Triangular[T]) Clone() *Triangular[T] {
	c := &Triangular[T]{Square: t.Square.Clone(), upper: t.upper}
	if c.upper {
		c.LockLower()
	} else {
		c.LockUpper()
	}
	c.seal()

	return c
}

// LockUpper locks every cell strictly above the diagonal. Idempotent; other
// cells are untouched.
func (t *Triangular[T]) LockUpper() {
	for i, r := range t.rows {
		for j := i + 1; j < len(r.locked); j++ {
			r.locked[j] = true
		}
	}
}

// LockLower locks every cell strictly below the diagonal. Idempotent.
func (t *Triangular[T]) LockLower() {
	for i, r := range t.rows {
		for j := 0; j < i && j < len(r.locked); j++ {
			r.locked[j] = true
		}
	}
}

// Resize changes the size to d (square, ≥1).
// MAIN DESCRIPTION:
//   - Base resize, then zero and lock the protected triangle over the new
//     footprint. On growth this covers the new row/column; on shrink the
//     retained footprint already satisfies the pattern, so only the locks
//     dropped by the storage rebuild are restored.
//
// Errors:
//   - ErrChangeMatFail for non-square or empty targets, ErrOutOfMemory over the cap.
//
// Complexity:
//   - Time O(n'^2), Space O(n'^2).
func (t *Triangular[T]) Resize(d Dimensions, fill T) error {
	if err := t.Square.Resize(d, fill); err != nil {
		return fmt.Errorf("%s: %w", ctxTriResize, err)
	}
	t.enforce()

	return nil
}

// Transpose transposes the storage, flips the orientation and re-locks.
func (t *Triangular[T]) Transpose() {
	t.Matrix.Transpose()
	t.upper = !t.upper
	t.enforce()
}

// LockCell is refused: the mask of a triangular matrix is structural.
func (t *Triangular[T]) LockCell(i, j int) error {
	return cellErrorf(ctxTriLock, i, j, ErrAccessIllegalElement)
}

// UnlockCell is refused: the mask of a triangular matrix is structural.
func (t *Triangular[T]) UnlockCell(i, j int) error {
	return cellErrorf(ctxTriUnlock, i, j, ErrAccessIllegalElement)
}

// Unlock resets the mask to its canonical state: free side writable,
// protected side locked.
func (t *Triangular[T]) Unlock() { t.enforce() }

// checkProtectedZero fails when o is nonzero on t's protected triangle.
func (t *Triangular[T]) checkProtectedZero(op string, o Operand[T]) error {
	for i := 0; i < t.dim.Rows; i++ {
		for j := 0; j < t.dim.Cols; j++ {
			if t.protected(i, j) && !scalar.IsZero(o.cell(i, j)) {
				return cellErrorf(op, i, j, ErrAccessIllegalElement)
			}
		}
	}

	return nil
}

// AddInPlace performs t += o.
// Errors: ErrDimensionMismatch on shape mismatch; ErrAccessIllegalElement
// when o is nonzero on the protected triangle (t is left unchanged).
func (t *Triangular[T]) AddInPlace(o Operand[T]) error {
	if err := ValidateBinary[T](ctxTriAdd, t, o); err != nil {
		return err
	}
	if err := t.checkProtectedZero(ctxTriAdd, o); err != nil {
		return err
	}

	return t.Matrix.AddInPlace(o)
}

// SubInPlace performs t -= o with the same guards as AddInPlace.
func (t *Triangular[T]) SubInPlace(o Operand[T]) error {
	if err := ValidateBinary[T](ctxTriSub, t, o); err != nil {
		return err
	}
	if err := t.checkProtectedZero(ctxTriSub, o); err != nil {
		return err
	}

	return t.Matrix.SubInPlace(o)
}

func (t *Triangular[T]) isNil() bool {
	return t == nil || t.Square == nil || t.Square.Matrix == nil
}
