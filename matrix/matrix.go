// SPDX-License-Identifier: MIT

// Package matrix - Matrix: an ordered sequence of equal-length row vectors.
//
// Purpose:
//   - Own row storage and Dimensions; all shape logic lives here
//     (resize, column-major reshape, transpose, column-wise folds).
//   - Provide bounds-checked row and cell access that honors per-cell locks.
//
// Invariants:
//   - dim.Rows == len(rows) and every row is a row vector of length dim.Cols.
//   - A base Matrix has no lock semantics of its own: Resize, Reshape and
//     Transpose rebuild storage with every cell writable. Derived kinds
//     (Triangular) re-establish their own mask afterwards.
//
// Complexity quicksheet:
//   - NewMatrix/Clone/Resize/Reshape/Transpose: O(r*c); Row/At/Set: O(1).

package matrix

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/mtmath/scalar"
)

// ---------- error context tags ----------

const (
	ctxRow       = "Matrix.Row"
	ctxAt        = "Matrix.At"
	ctxSet       = "Matrix.Set"
	ctxLockCell  = "Matrix.LockCell"
	ctxUnlock    = "Matrix.UnlockCell"
	ctxAddInto   = "Matrix.AddInPlace"
	ctxSubInto   = "Matrix.SubInPlace"
	ctxResize    = "Matrix.Resize"
	ctxReshape   = "Matrix.Reshape"
	ctxNewMatrix = "NewMatrix"
)

// Matrix is a dense rows×cols container built from row vectors.
type Matrix[T scalar.Element[T]] struct {
	dim      Dimensions   // shape; Rows == len(rows)
	rows     []*Vector[T] // row-oriented vectors of length dim.Cols
	maxCells int          // cell cap reused by Resize/Reshape/Clone
}

// NewMatrix creates a d.Rows×d.Cols matrix with every cell set to fill.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and the cell cap.
//
// Implementation:
//   - Stage 1: validate both axes ≥ 1; else ErrIllegalInitialization.
//   - Stage 2: validate the cap; else ErrOutOfMemory.
//   - Stage 3: allocate one row vector per row.
//
// Errors:
//   - ErrIllegalInitialization, ErrOutOfMemory (wrapped in *ShapeError).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewMatrix[T scalar.Element[T]](d Dimensions, fill T, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	if !d.Valid() {
		return nil, shapeErr(ctxNewMatrix, d, d, ErrIllegalInitialization)
	}
	if err := checkCells(d, o.maxCells); err != nil {
		return nil, shapeErr(ctxNewMatrix, d, d, err)
	}

	return newMatrix(d, fill, o.maxCells), nil
}

// newMatrix allocates without validation. Every row is marked as owned.
func newMatrix[T scalar.Element[T]](d Dimensions, fill T, maxCells int) *Matrix[T] {
	rows := make([]*Vector[T], d.Rows)
	for i := range rows {
		rows[i] = newVector(d.Cols, fill, false, maxCells)
		rows[i].role = ownedRow
	}

	return &Matrix[T]{dim: d, rows: rows, maxCells: maxCells}
}

// FromVector converts v into a matrix of v's Dimensions: a column vector of
// length N becomes N×1, a row vector 1×N. Element order follows the vector.
// The result is fully writable.
// Errors: ErrIllegalInitialization when v is nil.
func FromVector[T scalar.Element[T]](v *Vector[T]) (*Matrix[T], error) {
	if v == nil {
		return nil, matrixErrorf("FromVector", ErrIllegalInitialization)
	}
	m := newMatrix(v.Dims(), scalar.Zero[T](), v.maxCells)
	pos := 0
	for c := range m.All() { // column-major matches index order for N×1 and 1×N
		m.rows[c.row].data[c.col] = v.data[pos]
		pos++
	}

	return m, nil
}

// materialize copies any operand into a fresh, fully writable Matrix.
func materialize[T scalar.Element[T]](a Operand[T]) *Matrix[T] {
	d := a.Dims()
	m := newMatrix(d, scalar.Zero[T](), a.limit())
	for i := 0; i < d.Rows; i++ {
		row := m.rows[i].data
		for j := range row {
			row[j] = a.cell(i, j)
		}
	}

	return m
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.dim.Rows }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.dim.Cols }

// Dims returns the shape.
func (m *Matrix[T]) Dims() Dimensions { return m.dim }

// Row returns the live row vector i. Writes through it honor the row's locks.
// The row cannot change shape (Resize, Transpose fail with ErrChangeMatFail);
// Clone it for a standalone copy.
// Errors: ErrAccessIllegalElement when i is out of range.
func (m *Matrix[T]) Row(i int) (*Vector[T], error) {
	if i < 0 || i >= m.dim.Rows {
		return nil, fmt.Errorf("%s(%d): %w", ctxRow, i, ErrAccessIllegalElement)
	}

	return m.rows[i], nil
}

// inRange reports whether (i,j) lies inside the matrix.
func (m *Matrix[T]) inRange(i, j int) bool {
	return i >= 0 && i < m.dim.Rows && j >= 0 && j < m.dim.Cols
}

// At returns the value at (i,j). Locked cells are readable.
// Errors: ErrAccessIllegalElement when out of range.
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) (T, error) {
	if !m.inRange(i, j) {
		var zero T
		return zero, cellErrorf(ctxAt, i, j, ErrAccessIllegalElement)
	}

	return m.rows[i].data[j], nil
}

// Set stores x at (i,j).
// Errors: ErrAccessIllegalElement when out of range or locked.
// Complexity: O(1).
func (m *Matrix[T]) Set(i, j int, x T) error {
	if !m.inRange(i, j) || m.rows[i].locked[j] {
		return cellErrorf(ctxSet, i, j, ErrAccessIllegalElement)
	}
	m.rows[i].data[j] = x

	return nil
}

// IsLocked reports whether (i,j) is write-protected; false when out of range.
func (m *Matrix[T]) IsLocked(i, j int) bool {
	return m.inRange(i, j) && m.rows[i].locked[j]
}

// LockCell write-protects (i,j).
func (m *Matrix[T]) LockCell(i, j int) error {
	if !m.inRange(i, j) {
		return cellErrorf(ctxLockCell, i, j, ErrAccessIllegalElement)
	}
	m.rows[i].locked[j] = true

	return nil
}

// UnlockCell clears the write protection of (i,j).
func (m *Matrix[T]) UnlockCell(i, j int) error {
	if !m.inRange(i, j) {
		return cellErrorf(ctxUnlock, i, j, ErrAccessIllegalElement)
	}
	m.rows[i].locked[j] = false

	return nil
}

// Unlock makes every cell writable.
func (m *Matrix[T]) Unlock() {
	for _, r := range m.rows {
		r.Unlock()
	}
}

// Clone returns a deep copy including the lock mask.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	rows := make([]*Vector[T], len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.Clone()
		rows[i].role = ownedRow
	}

	return &Matrix[T]{dim: m.dim, rows: rows, maxCells: m.maxCells}
}

// Equal reports identical Dimensions and cell values. Locks are ignored.
func (m *Matrix[T]) Equal(o Operand[T]) bool {
	if ValidateOperand(o) != nil || !m.dim.Equal(o.Dims()) {
		return false
	}
	for i, r := range m.rows {
		for j, x := range r.data {
			if x != o.cell(i, j) {
				return false
			}
		}
	}

	return true
}

// AddInPlace performs m += o element-wise. o may be any operand of the same
// shape (vectors are promoted). Locks are not consulted.
// Errors: ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Matrix[T]) AddInPlace(o Operand[T]) error {
	if err := ValidateBinary[T](ctxAddInto, m, o); err != nil {
		return err
	}
	for i, r := range m.rows {
		for j := range r.data {
			r.data[j] = r.data[j].Add(o.cell(i, j))
		}
	}

	return nil
}

// SubInPlace performs m -= o element-wise. Locks are not consulted.
// Errors: ErrDimensionMismatch.
func (m *Matrix[T]) SubInPlace(o Operand[T]) error {
	if err := ValidateBinary[T](ctxSubInto, m, o); err != nil {
		return err
	}
	for i, r := range m.rows {
		for j := range r.data {
			r.data[j] = r.data[j].Sub(o.cell(i, j))
		}
	}

	return nil
}

// Neg returns -m as a fresh, fully writable matrix.
func (m *Matrix[T]) Neg() *Matrix[T] {
	out := newMatrix(m.dim, scalar.Zero[T](), m.maxCells)
	for i, r := range m.rows {
		for j, x := range r.data {
			out.rows[i].data[j] = x.Neg()
		}
	}

	return out
}

// Resize changes the shape to d.
// MAIN DESCRIPTION:
//   - Keep the overlapping top-left rectangle; new cells get fill.
//
// Implementation:
//   - Stage 1: validate both axes ≥ 1 (ErrChangeMatFail) and the cap (ErrOutOfMemory).
//   - Stage 2: allocate fresh storage of shape d filled with fill (all writable).
//   - Stage 3: copy the overlap row by row; swap storage and dim.
//
// Behavior highlights:
//   - Every lock is cleared: a base Matrix has no lock pattern of its own.
//
// Complexity:
//   - Time O(r'*c'), Space O(r'*c').
func (m *Matrix[T]) Resize(d Dimensions, fill T) error {
	if !d.Valid() {
		return shapeErr(ctxResize, m.dim, d, ErrChangeMatFail)
	}
	if err := checkCells(d, m.maxCells); err != nil {
		return shapeErr(ctxResize, m.dim, d, err)
	}

	next := newMatrix(d, fill, m.maxCells)
	rows := min(d.Rows, m.dim.Rows)
	cols := min(d.Cols, m.dim.Cols)
	for i := 0; i < rows; i++ {
		copy(next.rows[i].data[:cols], m.rows[i].data[:cols])
	}
	m.rows, m.dim = next.rows, d

	return nil
}

// Reshape re-lays the existing elements into shape d in column-major order.
// MAIN DESCRIPTION:
//   - Source and destination are walked in parallel with the dense
//     (column-major) traversal; the k-th visited source cell lands on the
//     k-th visited destination cell.
//
// Errors:
//   - ErrChangeMatFail unless d.Rows*d.Cols equals the current cell count.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Reshape(d Dimensions) error {
	if !d.Valid() || d.Rows > m.dim.Size()/d.Cols || d.Size() != m.dim.Size() {
		return shapeErr(ctxReshape, m.dim, d, ErrChangeMatFail)
	}

	out := newMatrix(d, scalar.Zero[T](), m.maxCells)
	nextSrc, stop := iter.Pull(m.All())
	defer stop()
	for c := range out.All() {
		src, _ := nextSrc() // same cell count on both sides
		out.rows[c.row].data[c.col] = src.Value()
	}
	m.rows, m.dim = out.rows, d

	return nil
}

// Transpose swaps the axes: old[i][j] moves to new[j][i]. Locks are cleared.
// Complexity: O(r*c).
func (m *Matrix[T]) Transpose() {
	d := m.dim.Transposed()
	next := newMatrix(d, scalar.Zero[T](), m.maxCells)
	for i, r := range m.rows {
		for j, x := range r.data {
			next.rows[j].data[i] = x
		}
	}
	m.rows, m.dim = next.rows, d
}

// ReduceColumns folds every column independently through f (seeded with
// seed) and returns the results as a row vector of length Cols.
// Implementation:
//   - Stage 1: transpose a working copy so each of its rows is a column of m.
//   - Stage 2: fold each row with Vector.Reduce into the output slot.
//
// Complexity: O(r*c).
func (m *Matrix[T]) ReduceColumns(seed T, f func(acc, x T) T) *Vector[T] {
	work := m.Clone()
	work.Transpose()
	out := newVector(m.dim.Cols, scalar.Zero[T](), false, m.maxCells)
	for j, col := range work.rows {
		out.data[j] = col.Reduce(seed, f)
	}

	return out
}

// String renders one "[a, b, c]" line per row.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for _, r := range m.rows {
		b.WriteString(r.String()) // rows are row vectors: "[...]\n"
	}

	return b.String()
}

// ---------- Operand plumbing ----------

func (m *Matrix[T]) cell(i, j int) T { return m.rows[i].data[j] }

func (m *Matrix[T]) limit() int { return m.maxCells }

func (m *Matrix[T]) isNil() bool { return m == nil }
