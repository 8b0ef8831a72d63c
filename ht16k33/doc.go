// Package ht16k33 controls a Holtek HT16K33 LED controller via I²C.
//
// The HT16K33 is a memory-mapped LED driver: it continuously multiplexes a
// 16x8 bit display RAM onto up to 128 LEDs. Adafruit's 0.54" 14-segment
// alphanumeric backpacks wire one 16-bit RAM word per character cell, so a
// 4-character backpack occupies words 0 to 3.
//
// # Buffer model
//
// The driver keeps a local copy of the display RAM and exposes it one bit at
// a time:
//
//	dev.SetBit(0, 3, true)  // word 0, bit 3 on
//	on := dev.Bit(0, 3)     // read it back
//	word := dev.Word(0)     // whole-word read access
//
// Mutations are purely local until committed:
//
//	if err := dev.WriteDisplay(); err != nil {
//		log.Fatal(err)
//	}
//
// This split lets a formatter (such as the alphanum4 package) compose a full
// frame bit by bit and pay for the I²C transfer once.
//
// # Basic usage
//
//	bus, _ := i2creg.Open("")
//	defer bus.Close()
//
//	dev, err := ht16k33.NewI2C(bus, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dev.Halt()
//
//	dev.SetBit(0, 6, true)
//	dev.SetBit(0, 7, true) // a '-' on the first cell
//	if err := dev.WriteDisplay(); err != nil {
//		log.Fatal(err)
//	}
//
// # Controller features
//
// Brightness is a 16-step dimming duty cycle (0 is dim, not off):
//
//	dev.SetBrightness(8)
//
// The whole display can blink in hardware:
//
//	dev.SetBlink(ht16k33.Blink1Hz)
//	dev.SetBlink(ht16k33.BlinkOff)
//
// Halt turns the LEDs off and puts the oscillator in standby; the device
// must be re-created to be used again.
//
// # Datasheet
//
// https://www.holtek.com/webapi/116711/HT16K33Av102.pdf
package ht16k33
