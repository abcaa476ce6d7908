// SPDX-License-Identifier: MIT

package scalar

// Element is the arithmetic contract every container element satisfies.
// Methods never mutate the receiver; they return the result.
//
// Complexity: implementation-defined, expected O(1).
type Element[T any] interface {
	comparable

	// Add returns receiver + o.
	Add(o T) T

	// Sub returns receiver - o.
	Sub(o T) T

	// Mul returns receiver * o.
	Mul(o T) T

	// Neg returns -receiver.
	Neg() T
}

// isElement instantiates only for types satisfying Element; used for
// compile-time contract checks.
func isElement[T Element[T]]() {}

// Zero returns the additive identity of T (its Go zero value).
func Zero[T Element[T]]() T {
	var z T

	return z
}

// IsZero reports whether v equals the zero value of T.
func IsZero[T Element[T]](v T) bool {
	var z T

	return v == z
}

// Sum is a fold step that adds x to acc. Handy as the combiner for
// Vector.Reduce and Matrix.ReduceColumns.
func Sum[T Element[T]](acc, x T) T { return acc.Add(x) }

// Product is a fold step that multiplies acc by x.
func Product[T Element[T]](acc, x T) T { return acc.Mul(x) }
