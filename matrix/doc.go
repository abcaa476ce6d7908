// Package matrix offers generic dense vectors and matrices with per-cell
// write protection.
//
// The matrix package provides:
//
//   - Vector with an orientation (column L×1 or row 1×L) and a lock mask.
//   - Matrix built from row vectors, with resize, column-major reshape and
//     transpose.
//   - Square (rows == cols, reshape disabled) and Triangular (one triangle
//     held at zero and locked).
//   - Lazy dense and nonzero traversals (iter.Seq) in index or column-major
//     order.
//   - Free arithmetic over any Operand: +, -, scalar ops and the algebraic
//     product, with vectors promoted by orientation.
//   - A bridge to gonum.org/v1/gonum/mat for Float containers.
//
// Element types implement scalar.Element; see package scalar for Int, Float
// and Complex. All failures are reported through the sentinel errors in
// errors.go and can be matched with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
