// SPDX-License-Identifier: MIT

// Package matrix - Vector: dense storage with orientation and a write-lock mask.
//
// Purpose:
//   - Own a dense sequence of elements plus a parallel lock mask (true = write-protected).
//   - Derive Dimensions from length and orientation: column → (L,1), row → (1,L).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// Lock semantics:
//   - Locks gate external writes only (Set, Entry.Set). Internal arithmetic
//     (AddInPlace, SubInPlace, ScaleInPlace) bypasses them.
//   - Clone preserves the mask; Unlock is the explicit reset.
//
// Row ownership:
//   - Rows handed out by Matrix.Row keep the owner's shape: Resize and
//     Transpose fail with ErrChangeMatFail.
//   - Rows of a Triangular also keep the owner's mask: LockCell and
//     UnlockCell fail, Unlock is a no-op, and in-place arithmetic refuses
//     nonzero values on locked cells.
//
// Complexity quicksheet:
//   - NewVector: O(L); At/Set: O(1); Clone/Neg/AddInPlace: O(L); Transpose: O(1).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mtmath/scalar"
)

// ---------- error context tags ----------

const (
	ctxVecAt     = "Vector.At"
	ctxVecSet    = "Vector.Set"
	ctxVecLock   = "Vector.LockCell"
	ctxVecUnlock = "Vector.UnlockCell"
	ctxVecAdd    = "Vector.AddInPlace"
	ctxVecSub    = "Vector.SubInPlace"
	ctxVecResize = "Vector.Resize"
	ctxVecFlip   = "Vector.Transpose"
)

// rowRole records which invariants of an owning matrix a vector carries.
type rowRole uint8

const (
	standalone rowRole = iota
	ownedRow           // shape fixed by the owning matrix
	maskedRow          // ownedRow whose lock mask is structural
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Vector is a dense sequence of elements with an orientation flag and a
// per-element write-lock mask.
//   - data and locked always have the same length L ≥ 1.
//   - column selects the shape: (L,1) when true, (1,L) otherwise.
type Vector[T scalar.Element[T]] struct {
	data     []T    // elements in index order
	locked   []bool // locked[i] == true ⇒ external writes to data[i] fail
	column   bool   // orientation
	maxCells int    // cell cap inherited by Resize/Clone
	role     rowRole
}

// NewVector creates a vector of n elements, each set to fill, all writable.
// MAIN DESCRIPTION:
//   - Public constructor with strict length validation and the cell cap.
//
// Implementation:
//   - Stage 1: resolve options (orientation, cap).
//   - Stage 2: validate n ≥ 1; else ErrIllegalInitialization.
//   - Stage 3: validate the cap; else ErrOutOfMemory.
//   - Stage 4: allocate and fill.
//
// Inputs:
//   - n: element count (≥1).
//   - fill: initial value of every element.
//   - opts: WithRowVector / WithColumnVector / WithMaxCells.
//
// Errors:
//   - ErrIllegalInitialization, ErrOutOfMemory.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewVector[T scalar.Element[T]](n int, fill T, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)
	if n < 1 {
		return nil, fmt.Errorf("NewVector(%d): %w", n, ErrIllegalInitialization)
	}
	if err := checkCells(Dims(n, 1), o.maxCells); err != nil {
		return nil, fmt.Errorf("NewVector(%d): %w", n, err)
	}

	return newVector(n, fill, o.column, o.maxCells), nil
}

// newVector allocates without validation. Callers guarantee n ≥ 1 and the cap.
func newVector[T scalar.Element[T]](n int, fill T, column bool, maxCells int) *Vector[T] {
	data := make([]T, n)
	var zero T
	if fill != zero { // make() already zero-filled
		for i := range data {
			data[i] = fill
		}
	}

	return &Vector[T]{
		data:     data,
		locked:   make([]bool, n),
		column:   column,
		maxCells: maxCells,
	}
}

// Len returns the element count L.
func (v *Vector[T]) Len() int { return len(v.data) }

// Dims returns (L,1) for a column vector and (1,L) for a row vector.
func (v *Vector[T]) Dims() Dimensions {
	if v.column {
		return Dims(len(v.data), 1)
	}

	return Dims(1, len(v.data))
}

// Rows returns Dims().Rows.
func (v *Vector[T]) Rows() int { return v.Dims().Rows }

// Cols returns Dims().Cols.
func (v *Vector[T]) Cols() int { return v.Dims().Cols }

// IsColumn reports the orientation.
func (v *Vector[T]) IsColumn() bool { return v.column }

// inRange reports 0 ≤ pos < L.
func (v *Vector[T]) inRange(pos int) bool { return pos >= 0 && pos < len(v.data) }

// At returns the element at pos.
// Errors: ErrAccessIllegalElement when pos is out of range.
// Complexity: O(1).
func (v *Vector[T]) At(pos int) (T, error) {
	if !v.inRange(pos) {
		var zero T
		return zero, fmt.Errorf("%s(%d): %w", ctxVecAt, pos, ErrAccessIllegalElement)
	}

	return v.data[pos], nil
}

// Set stores x at pos.
// MAIN DESCRIPTION:
//   - Safe element write honoring the lock mask.
//
// Errors:
//   - ErrAccessIllegalElement when pos is out of range or the cell is locked.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *Vector[T]) Set(pos int, x T) error {
	if !v.inRange(pos) || v.locked[pos] {
		return fmt.Errorf("%s(%d): %w", ctxVecSet, pos, ErrAccessIllegalElement)
	}
	v.data[pos] = x

	return nil
}

// IsLocked reports whether pos is write-protected. Out-of-range positions
// report false.
func (v *Vector[T]) IsLocked(pos int) bool { return v.inRange(pos) && v.locked[pos] }

// LockCell write-protects pos. Reads keep working.
// Errors: ErrAccessIllegalElement when pos is out of range or the vector is
// a row of a Triangular.
func (v *Vector[T]) LockCell(pos int) error {
	if !v.inRange(pos) || v.role == maskedRow {
		return fmt.Errorf("%s(%d): %w", ctxVecLock, pos, ErrAccessIllegalElement)
	}
	v.locked[pos] = true

	return nil
}

// UnlockCell clears the write protection of pos. Same errors as LockCell.
func (v *Vector[T]) UnlockCell(pos int) error {
	if !v.inRange(pos) || v.role == maskedRow {
		return fmt.Errorf("%s(%d): %w", ctxVecUnlock, pos, ErrAccessIllegalElement)
	}
	v.locked[pos] = false

	return nil
}

// Unlock makes every element writable. Rows of a Triangular are left as is.
func (v *Vector[T]) Unlock() {
	if v.role != maskedRow {
		clear(v.locked)
	}
}

// Clone returns a deep copy: same data, orientation, cap and lock mask.
// The copy is standalone even when v is a matrix row.
// Complexity: O(L).
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{
		data:     append([]T(nil), v.data...),
		locked:   append([]bool(nil), v.locked...),
		column:   v.column,
		maxCells: v.maxCells,
	}
}

// fresh returns a value copy with every element writable.
func (v *Vector[T]) fresh() *Vector[T] {
	return &Vector[T]{
		data:     append([]T(nil), v.data...),
		locked:   make([]bool, len(v.data)),
		column:   v.column,
		maxCells: v.maxCells,
	}
}

// Equal reports same orientation, length and element values.
// Lock state is not compared.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if o == nil || v.column != o.column || len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// sameShape reports identical Dimensions and orientation. For L == 1 the
// Dimensions agree while the orientation may not.
func (v *Vector[T]) sameShape(o *Vector[T]) bool {
	return v.column == o.column && len(v.data) == len(o.data)
}

// checkMasked fails when v is a Triangular row and o is nonzero on one of
// v's locked cells.
func (v *Vector[T]) checkMasked(op string, o *Vector[T]) error {
	if v.role != maskedRow {
		return nil
	}
	for i, l := range v.locked {
		if l && !scalar.IsZero(o.data[i]) {
			return fmt.Errorf("%s(%d): %w", op, i, ErrAccessIllegalElement)
		}
	}

	return nil
}

// AddInPlace performs v += o element-wise, ignoring locks.
// Errors: ErrDimensionMismatch unless Dimensions and orientation match;
// ErrAccessIllegalElement when v is a Triangular row and o is nonzero on
// its locked side (v is left unchanged).
// Complexity: O(L).
func (v *Vector[T]) AddInPlace(o *Vector[T]) error {
	if o == nil {
		return matrixErrorf(ctxVecAdd, ErrIllegalInitialization)
	}
	if !v.sameShape(o) {
		return shapeErr(ctxVecAdd, v.Dims(), o.Dims(), ErrDimensionMismatch)
	}
	if err := v.checkMasked(ctxVecAdd, o); err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] = v.data[i].Add(o.data[i])
	}

	return nil
}

// SubInPlace performs v -= o element-wise with the same guards as AddInPlace.
func (v *Vector[T]) SubInPlace(o *Vector[T]) error {
	if o == nil {
		return matrixErrorf(ctxVecSub, ErrIllegalInitialization)
	}
	if !v.sameShape(o) {
		return shapeErr(ctxVecSub, v.Dims(), o.Dims(), ErrDimensionMismatch)
	}
	if err := v.checkMasked(ctxVecSub, o); err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] = v.data[i].Sub(o.data[i])
	}

	return nil
}

// ScaleInPlace performs v *= s element-wise. No shape check.
func (v *Vector[T]) ScaleInPlace(s T) {
	for i := range v.data {
		v.data[i] = v.data[i].Mul(s)
	}
}

// Neg returns -v as a fresh, fully writable vector of the same shape.
func (v *Vector[T]) Neg() *Vector[T] {
	out := newVector(len(v.data), scalar.Zero[T](), v.column, v.maxCells)
	for i, x := range v.data {
		out.data[i] = x.Neg()
	}

	return out
}

// Resize grows or shrinks the vector along its own axis.
// MAIN DESCRIPTION:
//   - Column vectors accept (n,1), row vectors accept (1,n); orientation never changes here.
//
// Implementation:
//   - Stage 1: validate both axes ≥ 1 and the orientation axis == 1.
//   - Stage 2: validate the cell cap.
//   - Stage 3: truncate, or append fill values (writable).
//
// Behavior highlights:
//   - Existing elements keep their value and lock state.
//
// Errors:
//   - ErrChangeMatFail (invalid target, or v is a matrix row), ErrOutOfMemory (cap).
//
// Complexity:
//   - Time O(n), Space O(n).
func (v *Vector[T]) Resize(d Dimensions, fill T) error {
	if v.role != standalone || !d.Valid() || (v.column && d.Cols != 1) || (!v.column && d.Rows != 1) {
		return shapeErr(ctxVecResize, v.Dims(), d, ErrChangeMatFail)
	}
	if err := checkCells(d, v.maxCells); err != nil {
		return shapeErr(ctxVecResize, v.Dims(), d, err)
	}

	n := d.Size() // the non-unit axis
	if n <= len(v.data) {
		v.data = append([]T(nil), v.data[:n]...)
		v.locked = append([]bool(nil), v.locked[:n]...)
		return nil
	}
	for len(v.data) < n {
		v.data = append(v.data, fill)
		v.locked = append(v.locked, false)
	}

	return nil
}

// Transpose flips the orientation in place; data does not move.
// Errors: ErrChangeMatFail when v is a matrix row.
func (v *Vector[T]) Transpose() error {
	if v.role != standalone {
		return shapeErr(ctxVecFlip, v.Dims(), v.Dims().Transposed(), ErrChangeMatFail)
	}
	v.column = !v.column

	return nil
}

// Reduce folds every element, in index order, through f starting at seed.
// Complexity: O(L).
func (v *Vector[T]) Reduce(seed T, f func(acc, x T) T) T {
	return Fold(v, seed, f)
}

// Fold folds the elements of v, in index order, into an accumulator of any type.
func Fold[T scalar.Element[T], A any](v *Vector[T], seed A, f func(acc A, x T) A) A {
	acc := seed
	for _, x := range v.data {
		acc = f(acc, x)
	}

	return acc
}

// String renders the vector in its matrix shape: one "[x]" line per element
// for column vectors, a single "[a, b, c]" line for row vectors.
func (v *Vector[T]) String() string {
	var b strings.Builder
	if v.column {
		for _, x := range v.data {
			b.WriteString(_fmtRowOpen)
			b.WriteString(fmt.Sprint(x))
			b.WriteString(_fmtRowClose)
		}
		return b.String()
	}
	b.WriteString(_fmtRowOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprint(x))
	}
	b.WriteString(_fmtRowClose)

	return b.String()
}

// ---------- Operand plumbing ----------

// cell reads the promoted-matrix element (i,j).
func (v *Vector[T]) cell(i, j int) T {
	if v.column {
		return v.data[i]
	}

	return v.data[j]
}

func (v *Vector[T]) limit() int { return v.maxCells }

func (v *Vector[T]) isNil() bool { return v == nil }
