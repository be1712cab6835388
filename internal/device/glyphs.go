package device

// 7-segment glyph encoding for the HT16K33 digit drivers. Bit 0 is
// segment A, bit 6 segment G.

// Glyph characters with special meaning on the segment board.
const (
	GlyphBlank    byte = ' '
	GlyphSelected byte = ' ' // blanked field while editing
)

var segmentGlyphs = map[byte]byte{
	' ': 0b00000000,
	'-': 0b01000000,
	'_': 0b00001000,
	'=': 0b01001000,
	'0': 0b00111111,
	'1': 0b00000110,
	'2': 0b01011011,
	'3': 0b01001111,
	'4': 0b01100110,
	'5': 0b01101101,
	'6': 0b01111101,
	'7': 0b00000111,
	'8': 0b01111111,
	'9': 0b01101111,
	'A': 0b01110111,
	'b': 0b01111100,
	'C': 0b00111001,
	'd': 0b01011110,
	'E': 0b01111001,
	'F': 0b01110001,
	'G': 0b00111101,
	'h': 0b01110100,
	'H': 0b01110110,
	'i': 0b00000110,
	'I': 0b00000110,
	'J': 0b00011110,
	'L': 0b00111000,
	'n': 0b01010100,
	'o': 0b01011100,
	'O': 0b00111111,
	'P': 0b01110011,
	'Q': 0b01100111,
	'r': 0b01010000,
	's': 0b01101101,
	'S': 0b01101101,
	't': 0b01111000,
	'U': 0b00111110,
}

// fallback glyph for characters outside the table ("?" shape).
const segmentGlyphUnknown = 0b01010011

// EncodeGlyph translates one text glyph to its 7-segment bit pattern.
func EncodeGlyph(c byte) byte {
	if g, ok := segmentGlyphs[c]; ok {
		return g
	}
	return segmentGlyphUnknown
}

// HexGlyph returns the glyph character for a 4-bit value (0-9, a-f).
func HexGlyph(v byte) byte {
	switch {
	case v < 10:
		return '0' + v
	case v < 16:
		return 'a' + (v - 10)
	default:
		return '?'
	}
}
