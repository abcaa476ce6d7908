// SPDX-License-Identifier: MIT
// Package scalar_test covers the element contract and the Complex text format.
package scalar_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/katalvlaran/mtmath/scalar"
	"github.com/stretchr/testify/require"
)

// TestComplexArithmetic checks Add/Sub/Mul/Neg against hand-computed values.
func TestComplexArithmetic(t *testing.T) {
	t.Parallel()

	a := scalar.Complex{Re: 1, Im: 2}
	b := scalar.Complex{Re: 3, Im: -1}

	require.Equal(t, scalar.Complex{Re: 4, Im: 1}, a.Add(b))
	require.Equal(t, scalar.Complex{Re: -2, Im: 3}, a.Sub(b))
	require.Equal(t, scalar.Complex{Re: 5, Im: 5}, a.Mul(b)) // (1+2i)(3-i) = 3 - i + 6i + 2 = 5+5i
	require.Equal(t, scalar.Complex{Re: -1, Im: -2}, a.Neg())
	require.Equal(t, scalar.Complex{Re: 1, Im: -2}, a.Conj())
	require.InDelta(t, 5.0, scalar.Complex{Re: 3, Im: 4}.Abs(), 1e-12)
}

// TestComplexString verifies the "<re><sign><|im|>i" layout.
func TestComplexString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   scalar.Complex
		want string
	}{
		{"zero", scalar.Complex{}, "0+0i"},
		{"positive", scalar.Complex{Re: 1, Im: 2}, "1+2i"},
		{"negative imag", scalar.Complex{Re: 1.5, Im: -0.25}, "1.5-0.25i"},
		{"negative real", scalar.Complex{Re: -3, Im: 4}, "-3+4i"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.String())
			require.Equal(t, tc.want, fmt.Sprint(tc.in))
		})
	}
}

// TestComplexScan reads two whitespace-separated fields per value.
func TestComplexScan(t *testing.T) {
	t.Parallel()

	var a, b scalar.Complex
	n, err := fmt.Fscan(strings.NewReader("1 2\n-3.5   0.5"), &a, &b)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, scalar.Complex{Re: 1, Im: 2}, a)
	require.Equal(t, scalar.Complex{Re: -3.5, Im: 0.5}, b)

	_, err = fmt.Sscan("1 x", &a)
	require.ErrorIs(t, err, scalar.ErrParseComplex)
}

// TestComplexScan_EndOfInput separates exhausted input from malformed text.
func TestComplexScan_EndOfInput(t *testing.T) {
	t.Parallel()

	r := strings.NewReader("1 2\n")
	var c scalar.Complex
	_, err := fmt.Fscan(r, &c)
	require.NoError(t, err)
	require.Equal(t, scalar.Complex{Re: 1, Im: 2}, c)

	_, err = fmt.Fscan(r, &c)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.NotErrorIs(t, err, scalar.ErrParseComplex)
	require.Equal(t, scalar.Complex{Re: 1, Im: 2}, c, "value is untouched")

	_, err = fmt.Sscan("7", &c)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF, "imaginary part missing")
	require.NotErrorIs(t, err, scalar.ErrParseComplex)
}

// TestParseComplex covers the strict two-field parser.
func TestParseComplex(t *testing.T) {
	t.Parallel()

	c, err := scalar.ParseComplex("  2  -7 ")
	require.NoError(t, err)
	require.Equal(t, scalar.Complex{Re: 2, Im: -7}, c)
	require.Equal(t, "2-7i", c.String())

	for _, bad := range []string{"", "1", "1 2 3", "a 1", "1 b"} {
		_, err = scalar.ParseComplex(bad)
		require.ErrorIs(t, err, scalar.ErrParseComplex, bad)
	}
}
