// Package alphanum4 formats digits, characters and floats for a 4-character
// 14-segment alphanumeric LED display, such as Adafruit's 0.54" alphanumeric
// backpack driven by an HT16K33 controller.
//
// The package is a pure logic layer: it resolves values to 14-segment
// patterns and writes them, one bit at a time, into a bit-addressable buffer
// of 16-bit words (the Frame interface). It never talks to the bus itself;
// committing the buffer to the hardware stays with the buffer's owner.
//
// # Display model
//
// The display has 4 character cells, addressed left to right by One, Two,
// Three and Four. Each cell is one 16-bit buffer word:
//
//   - bits 0-13: the 14 LED segments
//   - bit 14: the decimal point, independent of the segments
//
// Segment writes never disturb the dot bit and dot writes never disturb the
// segments, so both can be composed freely.
//
// # Basic usage
//
// Wire the formatter to an HT16K33 driver (the ht16k33 subpackage):
//
//	bus, _ := i2creg.Open("")
//	defer bus.Close()
//
//	disp, err := ht16k33.NewI2C(bus, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer disp.Halt()
//
//	dev := alphanum4.New(disp)
//
//	// Individual digits
//	dev.SetDigit(alphanum4.One, 1)
//	dev.SetDigit(alphanum4.Two, 2)
//	dev.SetDigit(alphanum4.Three, 3)
//	dev.SetDigit(alphanum4.Four, 4)
//
//	// Characters
//	dev.SetChar(alphanum4.One, 'A')
//	dev.SetChar(alphanum4.Two, 'B')
//
//	// Decimal point
//	dev.SetDot(alphanum4.Two, true)
//
//	// A float across the whole display: reads "-3.14"
//	if err := dev.SetFloat(alphanum4.One, -3.14, 2, 10); err != nil {
//		log.Fatal(err)
//	}
//
//	// None of the above touches the hardware; commit the buffer:
//	if err := disp.WriteDisplay(); err != nil {
//		log.Fatal(err)
//	}
//
// # Float layout
//
// SetFloat rounds the value (half away from zero) to the requested number of
// fractional digits, then lays out sign, integer digits and fractional
// digits left to right from the start cell. The decimal point does not use a
// cell of its own: it is the dot bit of the last integer digit's cell.
//
// The layout is checked against the cells remaining from the start position
// before anything is written. A value that does not fit fails with
// ErrDoesNotFit and leaves the buffer untouched, so a caller can retry with
// a lower precision:
//
//	// A character in front of a float: reads "X-3.1"
//	dev.SetChar(alphanum4.One, 'X')
//	if err := dev.SetFloat(alphanum4.Two, -3.14, 1, 10); err != nil {
//		log.Fatal(err)
//	}
//
// Bases 2 to 16 are supported; digits 10-15 render as A-F.
//
// # Performance
//
// The Frame contract only offers single-bit mutation, so writing one cell
// costs 14 buffer updates. All of them are in-memory; the single I²C
// transfer happens when the buffer's owner flushes.
package alphanum4
