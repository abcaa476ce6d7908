// SPDX-License-Identifier: MIT

package scalar

import "strconv"

// Float is a float64 element.
type Float float64

// Int is an int64 element. Exact arithmetic makes it the natural choice for
// tests and integer-valued containers.
type Int int64

// Compile-time contract checks.
var (
	_ = isElement[Float]
	_ = isElement[Int]
)

func (f Float) Add(o Float) Float { return f + o }
func (f Float) Sub(o Float) Float { return f - o }
func (f Float) Mul(o Float) Float { return f * o }
func (f Float) Neg() Float        { return -f }

// String formats f with the shortest representation that round-trips.
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

func (n Int) Add(o Int) Int { return n + o }
func (n Int) Sub(o Int) Int { return n - o }
func (n Int) Mul(o Int) Int { return n * o }
func (n Int) Neg() Int      { return -n }

// String formats n in base 10.
func (n Int) String() string { return strconv.FormatInt(int64(n), 10) }
