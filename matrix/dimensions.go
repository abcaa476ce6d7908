// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Dimensions is a (rows, cols) pair. Containers require both axes ≥ 1.
type Dimensions struct {
	Rows int
	Cols int
}

// Dims is shorthand for Dimensions{Rows: rows, Cols: cols}.
func Dims(rows, cols int) Dimensions { return Dimensions{Rows: rows, Cols: cols} }

// Equal reports component-wise equality.
func (d Dimensions) Equal(o Dimensions) bool { return d.Rows == o.Rows && d.Cols == o.Cols }

// Transpose swaps the two axes in place.
func (d *Dimensions) Transpose() { d.Rows, d.Cols = d.Cols, d.Rows }

// Transposed returns a swapped copy.
func (d Dimensions) Transposed() Dimensions { return Dimensions{Rows: d.Cols, Cols: d.Rows} }

// Size returns Rows*Cols.
func (d Dimensions) Size() int { return d.Rows * d.Cols }

// IsSquare reports Rows == Cols.
func (d Dimensions) IsSquare() bool { return d.Rows == d.Cols }

// Valid reports whether both axes are ≥ 1.
func (d Dimensions) Valid() bool { return d.Rows >= 1 && d.Cols >= 1 }

// String renders "(RxC)".
func (d Dimensions) String() string { return fmt.Sprintf("(%dx%d)", d.Rows, d.Cols) }
