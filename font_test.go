package alphanum4

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFontTotality verifies every 7-bit code resolves to a defined pattern
// and that nothing spills outside the cell's 15 used bits.
func TestFontTotality(t *testing.T) {
	for c := 0; c < 128; c++ {
		p := lookup(byte(c))
		require.Zero(t, p&^(segMask|segDP), "code %#x sets bits outside the cell", c)
		if c < 0x20 {
			require.Equal(t, Pattern(0), p, "control code %#x must be blank", c)
		}
	}
}

// TestFontHighCodesBlank verifies codes above the 7-bit range render blank.
func TestFontHighCodesBlank(t *testing.T) {
	require.Equal(t, Pattern(0), lookup(0x80))
	require.Equal(t, Pattern(0), lookup(0xFF))
}

// TestDigitTableMatchesFont verifies the digit and character lookup paths
// agree on every hexadecimal glyph.
func TestDigitTableMatchesFont(t *testing.T) {
	const hex = "0123456789ABCDEF"
	for v := 0; v < 16; v++ {
		require.Equal(t, asciiFont[hex[v]], digitFont[v], "digit %d", v)
	}
}

// TestDigitGlyphsDistinct verifies all 16 hexadecimal glyphs are lit and
// pairwise distinguishable.
func TestDigitGlyphsDistinct(t *testing.T) {
	seen := map[Pattern]int{}
	for v, p := range digitFont {
		require.NotZero(t, p, "digit %d is blank", v)
		prev, dup := seen[p]
		require.False(t, dup, "digits %d and %d share a glyph", prev, v)
		seen[p] = v
	}
}

func TestMinusGlyph(t *testing.T) {
	require.Equal(t, segG1|segG2, asciiFont['-'])
}

// TestDotEntry verifies the '.' entry carries only the decimal-point bit, so
// masking it to the segment bits renders blank.
func TestDotEntry(t *testing.T) {
	require.Equal(t, segDP, asciiFont['.'])
	require.Zero(t, asciiFont['.']&segMask)
}
