// SPDX-License-Identifier: MIT

// Package scalar defines the element contract consumed by the matrix package
// and ships three concrete elements: Float, Int and Complex.
//
// An element type must:
//   - be comparable (== decides "is this the zero value");
//   - treat its Go zero value as the additive identity;
//   - provide Add, Sub, Mul and Neg returning fresh values.
//
// Complex additionally implements the symmetric text contract used for I/O:
// it writes as "<re><sign><|im|>i" and reads two whitespace-separated fields.
package scalar
