// Package ht16k33 controls a Holtek HT16K33 LED controller via I²C.
//
// The HT16K33 drives up to 128 LEDs from a 16x8 bit display RAM.
// Adafruit's 14-segment alphanumeric backpacks wire one 16-bit RAM word per
// character cell.
//
// See the examples for how to use this package.
package ht16k33

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// DefaultAddr is the I²C address with all address jumpers open.
const DefaultAddr uint16 = 0x70

// Words is the number of 16-bit words in the controller's display RAM.
// The 4-character alphanumeric backpack uses words 0 to 3.
const Words = 8

const (
	cmdSystemSetup  byte = 0x20 // bit 0: oscillator on
	cmdDisplaySetup byte = 0x80 // bit 0: display on, bits 1-2: blink rate
	cmdBrightness   byte = 0xE0 // bits 0-3: dimming pulse width
	cmdRAMAddr      byte = 0x00

	oscillatorOn byte = 0x01
	displayOn    byte = 0x01
)

// BlinkRate selects the hardware blink frequency of the whole display.
type BlinkRate byte

const (
	BlinkOff BlinkRate = iota
	Blink2Hz
	Blink1Hz
	BlinkHalfHz
)

// Opts is the configuration for the HT16K33 controller.
type Opts struct {
	// Addr is the 7-bit I²C address, 0x70 to 0x77 depending on the A0-A2
	// address jumpers. Zero selects DefaultAddr.
	Addr uint16
}

// Dev is the device handle for the HT16K33 controller.
//
// It holds a local copy of the controller's display RAM. Mutations only
// touch the local copy; WriteDisplay commits it to the hardware.
type Dev struct {
	c *i2c.Dev

	// Local display RAM, one uint16 per RAM row pair.
	buffer [Words]uint16

	brightness uint8
	blink      BlinkRate
	halted     bool
}

// NewI2C creates a new HT16K33 device on the given I²C bus.
//
// opts can be nil to use defaults (address 0x70). The controller is powered
// on, set to full brightness with blinking off, and its display RAM is
// cleared.
func NewI2C(bus i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}
	if addr < 0x70 || addr > 0x77 {
		return nil, errors.New("ht16k33: address must be between 0x70 and 0x77")
	}

	d := &Dev{
		c:          &i2c.Dev{Bus: bus, Addr: addr},
		brightness: 15,
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the power-on sequence to the controller.
func (d *Dev) init() error {
	if err := d.command(cmdSystemSetup | oscillatorOn); err != nil {
		return fmt.Errorf("ht16k33: failed to start oscillator: %w", err)
	}
	if err := d.command(cmdDisplaySetup | displayOn); err != nil {
		return fmt.Errorf("ht16k33: failed to turn display on: %w", err)
	}
	if err := d.command(cmdBrightness | d.brightness); err != nil {
		return fmt.Errorf("ht16k33: failed to set brightness: %w", err)
	}
	d.Clear()
	if err := d.WriteDisplay(); err != nil {
		return fmt.Errorf("ht16k33: failed to clear display RAM: %w", err)
	}
	return nil
}

// command sends a single command byte.
func (d *Dev) command(cmd byte) error {
	return d.c.Tx([]byte{cmd}, nil)
}

// Bit reports the state of one bit of a buffer word. Out of range
// coordinates report false.
func (d *Dev) Bit(word, bit int) bool {
	if word < 0 || word >= Words || bit < 0 || bit > 15 {
		return false
	}
	return d.buffer[word]&(1<<bit) != 0
}

// SetBit sets one bit of a buffer word, leaving the other bits untouched.
// Out of range coordinates are a no-op. The change is local until
// WriteDisplay is called.
func (d *Dev) SetBit(word, bit int, on bool) {
	if word < 0 || word >= Words || bit < 0 || bit > 15 {
		return
	}
	if on {
		d.buffer[word] |= 1 << bit
	} else {
		d.buffer[word] &^= 1 << bit
	}
}

// Word returns the current value of one buffer word. Out of range words
// report zero.
func (d *Dev) Word(word int) uint16 {
	if word < 0 || word >= Words {
		return 0
	}
	return d.buffer[word]
}

// Clear zeroes the local display RAM. Call WriteDisplay to blank the LEDs.
func (d *Dev) Clear() {
	d.buffer = [Words]uint16{}
}

// WriteDisplay commits the local display RAM to the controller.
func (d *Dev) WriteDisplay() error {
	if d.halted {
		return errors.New("ht16k33: halted")
	}
	w := make([]byte, 1+2*Words)
	w[0] = cmdRAMAddr
	for i, v := range d.buffer {
		w[1+2*i] = byte(v)
		w[2+2*i] = byte(v >> 8)
	}
	return d.c.Tx(w, nil)
}

// SetBrightness sets the display dimming level (0-15). Level 0 is dim, not
// off. The effect is immediate.
func (d *Dev) SetBrightness(brightness uint8) error {
	if d.halted {
		return errors.New("ht16k33: halted")
	}
	if brightness > 15 {
		return errors.New("ht16k33: brightness out of range")
	}
	if err := d.command(cmdBrightness | brightness); err != nil {
		return err
	}
	d.brightness = brightness
	return nil
}

// SetBlink sets the hardware blink rate of the whole display. The effect is
// immediate.
func (d *Dev) SetBlink(rate BlinkRate) error {
	if d.halted {
		return errors.New("ht16k33: halted")
	}
	if rate > BlinkHalfHz {
		return errors.New("ht16k33: invalid blink rate")
	}
	if err := d.command(cmdDisplaySetup | displayOn | byte(rate)<<1); err != nil {
		return err
	}
	d.blink = rate
	return nil
}

// Halt turns the display off and puts the controller oscillator in standby.
// After calling Halt, the device will not respond to further commands until
// it is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	if err := d.command(cmdDisplaySetup); err != nil {
		return err
	}
	return d.command(cmdSystemSetup)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ht16k33.Dev{%s}", d.c)
}

var _ conn.Resource = &Dev{}
