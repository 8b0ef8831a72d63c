package alphanum4

// Pattern is the illumination state of one display cell. Bits 0-13 map to
// the 14 LED segments, bit 14 to the decimal point.
type Pattern uint16

// Segment bit assignments for the 0.54" 14-segment cell:
//
//	 ---A---
//	|\  |  /|
//	F H J K B
//	|  \|/  |
//	-G1- -G2-
//	|  /|\  |
//	E L M N C
//	|/  |  \|
//	 ---D---   DP
const (
	segA Pattern = 1 << iota // top
	segB                     // top right
	segC                     // bottom right
	segD                     // bottom
	segE                     // bottom left
	segF                     // top left
	segG1                    // middle left
	segG2                    // middle right
	segH                     // diagonal top left
	segJ                     // vertical top
	segK                     // diagonal top right
	segL                     // diagonal bottom left
	segM                     // vertical bottom
	segN                     // diagonal bottom right
	segDP                    // decimal point
)

const (
	// segCount is the number of segment bits in a cell, excluding the dot.
	segCount = 14
	// dotBit is the bit position of the decimal point within a buffer word.
	dotBit = 14
	// segMask selects the segment bits of a Pattern.
	segMask = segDP - 1
)

// asciiFont maps a 7-bit character code to its segment pattern. The table is
// total: codes with no visual representation (the control range) are all-off.
// The printable glyphs are the stock glyph set of the 14-segment backpack.
// The '.' entry carries the decimal-point bit rather than any segment;
// rendering a dot goes through SetDot.
var asciiFont = [128]Pattern{
	0x20: 0b0000000000000000, // space
	0x21: 0b0000000000000110, // !
	0x22: 0b0000001000100000, // "
	0x23: 0b0001001011001110, // #
	0x24: 0b0001001011101101, // $
	0x25: 0b0000110000100100, // %
	0x26: 0b0010001101011101, // &
	0x27: 0b0000010000000000, // '
	0x28: 0b0010010000000000, // (
	0x29: 0b0000100100000000, // )
	0x2A: 0b0011111111000000, // *
	0x2B: 0b0001001011000000, // +
	0x2C: 0b0000100000000000, // ,
	0x2D: 0b0000000011000000, // -
	0x2E: 0b0100000000000000, // .
	0x2F: 0b0000110000000000, // /
	0x30: 0b0000110000111111, // 0
	0x31: 0b0000000000000110, // 1
	0x32: 0b0000000011011011, // 2
	0x33: 0b0000000010001111, // 3
	0x34: 0b0000000011100110, // 4
	0x35: 0b0010000001101001, // 5
	0x36: 0b0000000011111101, // 6
	0x37: 0b0000000000000111, // 7
	0x38: 0b0000000011111111, // 8
	0x39: 0b0000000011101111, // 9
	0x3A: 0b0001001000000000, // :
	0x3B: 0b0000101000000000, // ;
	0x3C: 0b0010010000000000, // <
	0x3D: 0b0000000011001000, // =
	0x3E: 0b0000100100000000, // >
	0x3F: 0b0001000010000011, // ?
	0x40: 0b0000001010111011, // @
	0x41: 0b0000000011110111, // A
	0x42: 0b0001001010001111, // B
	0x43: 0b0000000000111001, // C
	0x44: 0b0001001000001111, // D
	0x45: 0b0000000011111001, // E
	0x46: 0b0000000001110001, // F
	0x47: 0b0000000010111101, // G
	0x48: 0b0000000011110110, // H
	0x49: 0b0001001000001001, // I
	0x4A: 0b0000000000011110, // J
	0x4B: 0b0010010001110000, // K
	0x4C: 0b0000000000111000, // L
	0x4D: 0b0000010100110110, // M
	0x4E: 0b0010000100110110, // N
	0x4F: 0b0000000000111111, // O
	0x50: 0b0000000011110011, // P
	0x51: 0b0010000000111111, // Q
	0x52: 0b0010000011110011, // R
	0x53: 0b0000000011101101, // S
	0x54: 0b0001001000000001, // T
	0x55: 0b0000000000111110, // U
	0x56: 0b0000110000110000, // V
	0x57: 0b0010100000110110, // W
	0x58: 0b0010110100000000, // X
	0x59: 0b0001010100000000, // Y
	0x5A: 0b0000110000001001, // Z
	0x5B: 0b0000000000111001, // [
	0x5C: 0b0010000100000000, // backslash
	0x5D: 0b0000000000001111, // ]
	0x5E: 0b0000110000000011, // ^
	0x5F: 0b0000000000001000, // _
	0x60: 0b0000000100000000, // `
	0x61: 0b0001000001011000, // a
	0x62: 0b0010000001111000, // b
	0x63: 0b0000000011011000, // c
	0x64: 0b0000100010001110, // d
	0x65: 0b0000100001011000, // e
	0x66: 0b0000000001110001, // f
	0x67: 0b0000010010001110, // g
	0x68: 0b0001000001110000, // h
	0x69: 0b0001000000000000, // i
	0x6A: 0b0000000000001110, // j
	0x6B: 0b0011011000000000, // k
	0x6C: 0b0000000000110000, // l
	0x6D: 0b0001000011010100, // m
	0x6E: 0b0001000001010000, // n
	0x6F: 0b0000000011011100, // o
	0x70: 0b0000000101110000, // p
	0x71: 0b0000010010000110, // q
	0x72: 0b0000000001010000, // r
	0x73: 0b0010000010001000, // s
	0x74: 0b0000000001111000, // t
	0x75: 0b0000000000011100, // u
	0x76: 0b0010000000000100, // v
	0x77: 0b0010100000010100, // w
	0x78: 0b0010100011000000, // x
	0x79: 0b0010000000001100, // y
	0x7A: 0b0000100001001000, // z
	0x7B: 0b0000100101001001, // {
	0x7C: 0b0001001000000000, // |
	0x7D: 0b0010010010001001, // }
	0x7E: 0b0000010100100000, // ~
	0x7F: 0b0011111111111111, // all segments on
}

// digitFont maps a hexadecimal digit value 0-15 to its glyph. It is built
// from asciiFont so the digit and character paths cannot disagree.
var digitFont = [16]Pattern{
	asciiFont['0'], asciiFont['1'], asciiFont['2'], asciiFont['3'],
	asciiFont['4'], asciiFont['5'], asciiFont['6'], asciiFont['7'],
	asciiFont['8'], asciiFont['9'], asciiFont['A'], asciiFont['B'],
	asciiFont['C'], asciiFont['D'], asciiFont['E'], asciiFont['F'],
}

// lookup resolves a character code to its segment pattern. Codes outside the
// 7-bit range render blank.
func lookup(c byte) Pattern {
	if c > 0x7F {
		return 0
	}
	return asciiFont[c]
}
