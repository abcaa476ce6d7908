// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - One lazy, finite, restartable traversal abstraction for vectors and
//     matrices, parameterized by a Predicate over (value, locked).
//   - Dense traversal = Every; nonzero traversal = NonZeroValue (vectors) or
//     FreeNonZero (matrices).
//
// Order:
//   - Vectors: index order 0..L-1.
//   - Matrices: column-major (all rows of column 0, then column 1, ...).
//
// Behavior highlights:
//   - Sequences are iter.Seq values: ranging again restarts from the start.
//   - Values and locks are read when a position is reached, so writes made
//     through earlier cursors are observed by the filter.
//   - Cursor writes (Entry.Set, Cell.Set) go through the same lock check as
//     indexed writes.

package matrix

import (
	"iter"

	"github.com/katalvlaran/mtmath/scalar"
)

// Predicate decides whether a position is visited.
type Predicate[T scalar.Element[T]] func(value T, locked bool) bool

// Every accepts every position (dense traversal).
func Every[T scalar.Element[T]](T, bool) bool { return true }

// NonZeroValue accepts positions whose value differs from zero.
func NonZeroValue[T scalar.Element[T]](value T, _ bool) bool { return !scalar.IsZero(value) }

// FreeNonZero accepts unlocked positions whose value differs from zero.
func FreeNonZero[T scalar.Element[T]](value T, locked bool) bool {
	return !locked && !scalar.IsZero(value)
}

// ---------- Vector cursor ----------

// Entry is a cursor on one vector position.
type Entry[T scalar.Element[T]] struct {
	v   *Vector[T]
	pos int
}

// Index returns the position.
func (e Entry[T]) Index() int { return e.pos }

// Value returns the current element.
func (e Entry[T]) Value() T { return e.v.data[e.pos] }

// Locked reports the lock state of the position.
func (e Entry[T]) Locked() bool { return e.v.locked[e.pos] }

// Set writes through the vector's lock check.
func (e Entry[T]) Set(x T) error { return e.v.Set(e.pos, x) }

// TraverseVector returns the positions of v accepted by pred, in index order.
// Errors: ErrIllegalInitialization when v or pred is nil.
// Complexity: O(L) per full traversal, O(1) extra space.
func TraverseVector[T scalar.Element[T]](v *Vector[T], pred Predicate[T]) (iter.Seq[Entry[T]], error) {
	if v == nil || pred == nil {
		return nil, matrixErrorf("TraverseVector", ErrIllegalInitialization)
	}

	return func(yield func(Entry[T]) bool) {
		for pos := 0; pos < len(v.data); pos++ {
			if !pred(v.data[pos], v.locked[pos]) {
				continue
			}
			if !yield(Entry[T]{v: v, pos: pos}) {
				return
			}
		}
	}, nil
}

// All visits every position of v in index order.
func (v *Vector[T]) All() iter.Seq[Entry[T]] {
	seq, _ := TraverseVector(v, Every[T]) // receiver and predicate are non-nil

	return seq
}

// NonZero visits the positions of v whose value is not zero.
func (v *Vector[T]) NonZero() iter.Seq[Entry[T]] {
	seq, _ := TraverseVector(v, NonZeroValue[T])

	return seq
}

// ---------- Matrix cursor ----------

// Cell is a cursor on one matrix position.
type Cell[T scalar.Element[T]] struct {
	m        *Matrix[T]
	row, col int
}

// Row returns the row index.
func (c Cell[T]) Row() int { return c.row }

// Col returns the column index.
func (c Cell[T]) Col() int { return c.col }

// Value returns the current element.
func (c Cell[T]) Value() T { return c.m.rows[c.row].data[c.col] }

// Locked reports the lock state of the cell.
func (c Cell[T]) Locked() bool { return c.m.rows[c.row].locked[c.col] }

// Set writes through the matrix lock check.
func (c Cell[T]) Set(x T) error { return c.m.Set(c.row, c.col, x) }

// Traverse returns the cells of m accepted by pred in column-major order.
// MAIN DESCRIPTION:
//   - For a fixed column walk every row, then advance the column.
//
// Errors:
//   - ErrIllegalInitialization when m or pred is nil.
//
// Complexity:
//   - Time O(r*c) per full traversal, O(1) extra space.
func Traverse[T scalar.Element[T]](m *Matrix[T], pred Predicate[T]) (iter.Seq[Cell[T]], error) {
	if m == nil || pred == nil {
		return nil, matrixErrorf("Traverse", ErrIllegalInitialization)
	}

	return func(yield func(Cell[T]) bool) {
		for j := 0; j < m.dim.Cols; j++ {
			for i := 0; i < m.dim.Rows; i++ {
				r := m.rows[i]
				if !pred(r.data[j], r.locked[j]) {
					continue
				}
				if !yield(Cell[T]{m: m, row: i, col: j}) {
					return
				}
			}
		}
	}, nil
}

// All visits every cell of m in column-major order.
func (m *Matrix[T]) All() iter.Seq[Cell[T]] {
	seq, _ := Traverse(m, Every[T])

	return seq
}

// NonZero visits the unlocked, nonzero cells of m in column-major order.
func (m *Matrix[T]) NonZero() iter.Seq[Cell[T]] {
	seq, _ := Traverse(m, FreeNonZero[T])

	return seq
}
