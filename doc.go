// Package mtmath is a small generic library of numeric containers: vectors
// and matrices over any element type that can add, subtract, multiply and
// negate.
//
// What is in the box?
//
//	• Vectors with an orientation (column or row) and per-cell write locks
//	• Matrices built from row vectors: resize, column-major reshape, transpose
//	• Square and triangular refinements with structural guarantees
//	• Lazy dense and nonzero traversals as iter.Seq
//	• Free arithmetic: +, -, scalar ops and the algebraic product
//	• Int, Float and Complex element types, plus a gonum bridge for Float
//
// Layout:
//
//	scalar/   the Element contract and the Int, Float, Complex elements
//	matrix/   Vector, Matrix, Square, Triangular, traversal and arithmetic
//	examples/ runnable scenarios (power iteration, back substitution, complex I/O)
//
// Quick example:
//
//	t, _ := matrix.NewTriangular(3, scalar.Int(1))
//	_ = t.Set(2, 0, 9) // ErrAccessIllegalElement: lower triangle is locked
//	fmt.Print(t)
//	// [1, 1, 1]
//	// [0, 1, 1]
//	// [0, 0, 1]
//
//	go get github.com/katalvlaran/mtmath
package mtmath
