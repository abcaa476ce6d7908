// SPDX-License-Identifier: MIT

// Complex element with the stream-style text contract:
//   - write: "<re><sign><|im|>i", sign is '-' when im < 0, '+' otherwise;
//   - read : two whitespace-separated numeric fields "re im".

package scalar

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrParseComplex is returned when text does not hold two numeric fields.
var ErrParseComplex = errors.New("scalar: cannot parse complex")

// Complex is a complex number with float64 parts. The zero value is 0+0i.
type Complex struct {
	Re float64 // real part
	Im float64 // imaginary part
}

var (
	_ = isElement[Complex]

	_ fmt.Stringer = Complex{}
	_ fmt.Scanner  = (*Complex)(nil)
)

// Add returns c + o.
func (c Complex) Add(o Complex) Complex { return Complex{Re: c.Re + o.Re, Im: c.Im + o.Im} }

// Sub returns c - o.
func (c Complex) Sub(o Complex) Complex { return Complex{Re: c.Re - o.Re, Im: c.Im - o.Im} }

// Mul returns c * o using (a+bi)(x+yi) = (ax-by) + (ay+bx)i.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

// Neg returns -c.
func (c Complex) Neg() Complex { return Complex{Re: -c.Re, Im: -c.Im} }

// Conj returns the complex conjugate re - im·i.
func (c Complex) Conj() Complex { return Complex{Re: c.Re, Im: -c.Im} }

// Abs returns the modulus |c|.
func (c Complex) Abs() float64 { return math.Hypot(c.Re, c.Im) }

// String writes c as "<re><sign><|im|>i", e.g. "1+2i", "1.5-0.25i".
func (c Complex) String() string {
	var b strings.Builder
	b.WriteString(formatPart(c.Re))
	if c.Im < 0 {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	b.WriteString(formatPart(math.Abs(c.Im)))
	b.WriteByte('i')

	return b.String()
}

// Scan implements fmt.Scanner: it consumes two whitespace-separated numeric
// fields (real, then imaginary). Works with fmt.Fscan / fmt.Sscan.
// End of input before the real part returns io.EOF (fmt reports it as
// io.ErrUnexpectedEOF); end of input between the parts is
// io.ErrUnexpectedEOF; malformed text is ErrParseComplex.
func (c *Complex) Scan(state fmt.ScanState, _ rune) error {
	var parts [2]float64
	for i := range parts {
		tok, err := state.Token(true, notSpace)
		if err != nil {
			return fmt.Errorf("Complex.Scan: field %d: %w", i, err)
		}
		if len(tok) == 0 {
			if i == 0 {
				return io.EOF // returned bare: fmt compares with ==
			}
			return fmt.Errorf("Complex.Scan: field %d: %w", i, io.ErrUnexpectedEOF)
		}
		if parts[i], err = strconv.ParseFloat(string(tok), 64); err != nil {
			return fmt.Errorf("Complex.Scan: field %d %q: %w", i, tok, ErrParseComplex)
		}
	}
	c.Re, c.Im = parts[0], parts[1]

	return nil
}

// ParseComplex reads "re im" (exactly two whitespace-separated fields).
func ParseComplex(s string) (Complex, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Complex{}, fmt.Errorf("ParseComplex(%q): want 2 fields, got %d: %w", s, len(fields), ErrParseComplex)
	}
	re, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Complex{}, fmt.Errorf("ParseComplex(%q): real part: %w", s, ErrParseComplex)
	}
	im, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Complex{}, fmt.Errorf("ParseComplex(%q): imaginary part: %w", s, ErrParseComplex)
	}

	return Complex{Re: re, Im: im}, nil
}

func formatPart(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func notSpace(r rune) bool { return !unicode.IsSpace(r) }
