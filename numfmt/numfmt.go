// Package numfmt provides explicit, locale-invariant numeric formatting for
// the ASCII sections of a VTK legacy file.
//
// The formatter is a value that is threaded into every numeric-to-text
// conversion. There is deliberately no ambient or process-wide formatting
// state: output always uses '.' as the decimal separator and no digit
// grouping, regardless of the host locale.
package numfmt

import (
	"strconv"
	"strings"
)

// DefaultPrecision is the number of fractional digits the VTK legacy sections
// are written with.
const DefaultPrecision = 10

// Formatter renders float64 values with a fixed number of fractional digits.
// The zero value is not useful; use Fixed10 or New.
type Formatter struct {
	precision int
}

// Fixed10 is the formatter used for all VTK section payloads.
var Fixed10 = New(DefaultPrecision)

// New creates a Formatter with the given number of fractional digits.
// Negative precision is clamped to zero.
func New(precision int) Formatter {
	if precision < 0 {
		precision = 0
	}
	return Formatter{precision: precision}
}

// Precision returns the number of fractional digits.
func (f Formatter) Precision() int {
	return f.precision
}

// Float renders a single value, e.g. "1.0000000000" for 1.0 at precision 10.
func (f Formatter) Float(v float64) string {
	return strconv.FormatFloat(v, 'f', f.precision, 64)
}

// AppendFloat appends the rendered value to dst and returns the extended slice.
func (f Formatter) AppendFloat(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'f', f.precision, 64)
}

// Triple renders three components separated by single spaces, the layout of
// point coordinates and vector field values.
func (f Formatter) Triple(x, y, z float64) string {
	var sb strings.Builder
	sb.Grow(3 * (f.precision + 8))
	b := make([]byte, 0, f.precision+8)
	sb.Write(f.AppendFloat(b, x))
	sb.WriteByte(' ')
	sb.Write(f.AppendFloat(b[:0], y))
	sb.WriteByte(' ')
	sb.Write(f.AppendFloat(b[:0], z))
	return sb.String()
}
