// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge Float containers to gonum.org/v1/gonum/mat so callers can hand
//     them to gonum kernels (factorizations, solvers, formatting) and bring
//     gonum results back.
//
// Behavior highlights:
//   - GonumView is a read-only, no-copy mat.Matrix over any Float operand.
//   - ToGonum copies into a *mat.Dense; FromGonum copies into a fresh,
//     fully writable Matrix.
//   - Out-of-range At on the view panics with mat.ErrRowAccess / ErrColAccess,
//     matching gonum's own types.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mtmath/scalar"
)

// GonumView exposes a Float operand as a gonum mat.Matrix without copying.
type GonumView struct {
	src Operand[scalar.Float]
}

var _ mat.Matrix = (*GonumView)(nil)

// NewGonumView wraps a. Errors: ErrIllegalInitialization when a is nil.
func NewGonumView(a Operand[scalar.Float]) (*GonumView, error) {
	if err := ValidateOperand(a); err != nil {
		return nil, matrixErrorf("NewGonumView", err)
	}

	return &GonumView{src: a}, nil
}

// Dims implements mat.Matrix.
func (g *GonumView) Dims() (r, c int) {
	d := g.src.Dims()

	return d.Rows, d.Cols
}

// At implements mat.Matrix.
func (g *GonumView) At(i, j int) float64 {
	d := g.src.Dims()
	if i < 0 || i >= d.Rows {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= d.Cols {
		panic(mat.ErrColAccess)
	}

	return float64(g.src.cell(i, j))
}

// T implements mat.Matrix with an implicit transpose.
func (g *GonumView) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// ToGonum copies a into a new *mat.Dense.
// Complexity: O(r*c).
func ToGonum(a Operand[scalar.Float]) (*mat.Dense, error) {
	view, err := NewGonumView(a)
	if err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}

	return mat.DenseCopyOf(view), nil
}

// FromGonum copies any gonum matrix into a fresh Matrix.
// Errors: ErrIllegalInitialization for nil or empty sources, ErrOutOfMemory
// over the cap.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Matrix[scalar.Float], error) {
	if src == nil {
		return nil, matrixErrorf("FromGonum", ErrIllegalInitialization)
	}
	r, c := src.Dims()
	m, err := NewMatrix(Dims(r, c), scalar.Float(0), opts...)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	for i, row := range m.rows {
		for j := range row.data {
			row.data[j] = scalar.Float(src.At(i, j))
		}
	}

	return m, nil
}
