// Package alphanum4 formats digits, characters and floats for a 4-character
// 14-segment alphanumeric LED display backed by a bit-addressable buffer.
//
// See the examples for how to use this package with the ht16k33 driver.
package alphanum4

import (
	"errors"
	"fmt"
	"math"
)

// Positions is the number of character cells on the display.
const Positions = 4

// Index selects one of the display's character cells, left to right.
type Index int

const (
	// One is the leftmost cell.
	One Index = iota
	Two
	Three
	// Four is the rightmost cell.
	Four
)

// Possible errors returned by this package. All of them are reported before
// any buffer mutation; a failed call leaves the display buffer untouched.
var (
	// ErrDigitRange is returned by SetDigit for values above 15.
	ErrDigitRange = errors.New("alphanum4: digit out of range")
	// ErrPrecisionRange is returned by SetFloat for a fractional digit
	// count outside 0 to 3.
	ErrPrecisionRange = errors.New("alphanum4: precision out of range")
	// ErrBaseRange is returned by SetFloat for a base outside 2 to 16.
	ErrBaseRange = errors.New("alphanum4: base out of range")
	// ErrDoesNotFit is returned by SetFloat when the formatted value needs
	// more cells than remain from the start position.
	ErrDoesNotFit = errors.New("alphanum4: formatted value does not fit on the display")
)

// Frame is the display buffer owned by the LED controller: one 16-bit word
// per cell, mutated one bit at a time. Implemented by *ht16k33.Dev.
//
// The buffer's write granularity is a property of the controller driver, so
// this package only ever performs single-bit read-modify-writes and never
// assumes the state of bits it is not setting. Flushing the buffer to the
// hardware stays with the caller.
type Frame interface {
	// Bit reports the state of one bit of a buffer word.
	Bit(word, bit int) bool
	// SetBit sets one bit of a buffer word, leaving the others untouched.
	SetBit(word, bit int, on bool)
}

// Dev formats values onto the character cells of a Frame.
type Dev struct {
	f Frame
}

// New returns a Dev writing into the given frame. The frame must have at
// least Positions words; words beyond that are never touched.
func New(f Frame) *Dev {
	return &Dev{f: f}
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("alphanum4.Dev{%d}", Positions)
}

// writeSegments writes the 14 segment bits of one cell. The dot bit and any
// spare bits of the word keep their previous state.
func (d *Dev) writeSegments(i Index, p Pattern) {
	for bit := 0; bit < segCount; bit++ {
		d.f.SetBit(int(i), bit, p&(1<<bit) != 0)
	}
}

// SetDigit displays a hexadecimal digit (0-9 then A-F) at the given cell.
// The cell's dot keeps its previous state. Values above 15 fail with
// ErrDigitRange and no buffer mutation.
func (d *Dev) SetDigit(i Index, v uint8) error {
	if int(v) >= len(digitFont) {
		return ErrDigitRange
	}
	d.writeSegments(i, digitFont[v])
	return nil
}

// SetChar displays a character at the given cell. Codes without a glyph,
// including everything above 0x7F, render blank. The cell's dot keeps its
// previous state; to light the decimal point use SetDot.
func (d *Dev) SetChar(i Index, c byte) {
	d.writeSegments(i, lookup(c)&segMask)
}

// SetDot turns the decimal point of the given cell on or off. The segment
// bits are untouched.
func (d *Dev) SetDot(i Index, on bool) {
	d.f.SetBit(int(i), dotBit, on)
}

// SetFloat displays a float starting at the given cell: an optional minus
// sign, then the integer digits, then exactly precision fractional digits in
// the given base, with the decimal point on the last integer digit's cell.
//
// The value is rounded half away from zero to precision fractional digits
// before digit extraction. precision must be 0 to 3 and base 2 to 16; digits
// 10-15 render as A-F.
//
// The layout is checked against the cells remaining from start through Four
// before anything is written: on ErrDoesNotFit (or a parameter error) the
// buffer is left exactly as it was, and on success any trailing cells the
// value does not reach are left as they were. Cells left of start are never
// considered nor touched, so a caller can keep a character in front of the
// number.
func (d *Dev) SetFloat(start Index, value float32, precision, base int) error {
	if precision < 0 || precision > 3 {
		return ErrPrecisionRange
	}
	if base < 2 || base > 16 {
		return ErrBaseRange
	}

	// Scale so the wanted fractional digits land in the integer part,
	// rounding once in the value's domain. math.Round is half away from
	// zero, the standard fixed-point rounding.
	scale := 1
	for i := 0; i < precision; i++ {
		scale *= base
	}
	scaled := math.Round(float64(value) * float64(scale))

	negative := scaled < 0
	magnitude := math.Abs(scaled)

	// Four cells in base 16 top out at 65535, so anything this large can
	// never fit. The inverted comparison also rejects NaN and infinities
	// before the integer conversion below.
	if !(magnitude < 1<<32) {
		return ErrDoesNotFit
	}
	m := uint64(magnitude)

	// Count the digits of the rounded magnitude. Deriving the integer
	// digit count from the rounded value keeps a carry into a new leading
	// digit (9.99 -> "10.0") from truncating the layout.
	digits := 1
	for n := m; n >= uint64(base); n /= uint64(base) {
		digits++
	}
	intDigits := digits - precision
	if intDigits < 1 {
		intDigits = 1
	}
	total := intDigits + precision

	cells := total
	if negative {
		cells++
	}
	if cells > Positions-int(start) {
		return ErrDoesNotFit
	}

	// Extract digits most significant first, zero padded on the left so a
	// value below one still shows its leading integer zero.
	var out [Positions]uint8
	for i := total - 1; i >= 0; i-- {
		out[i] = uint8(m % uint64(base))
		m /= uint64(base)
	}

	pos := int(start)
	if negative {
		d.SetChar(Index(pos), '-')
		pos++
	}
	for i := 0; i < total; i++ {
		cell := Index(pos)
		d.writeSegments(cell, digitFont[out[i]])
		if precision > 0 && i == intDigits-1 {
			d.SetDot(cell, true)
		}
		pos++
	}
	return nil
}
