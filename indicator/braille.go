package indicator

// brailleBase is the first code point of the Unicode braille patterns block.
const brailleBase = 0x2800

// Braille returns the braille pattern for an 8-bit dot bitmap.
//
// Bit 0 lights dot 1, bit 1 dot 2 and so on through bit 7 and dot 8, with
// dots numbered top to bottom, left column before right. Unicode orders the
// dots differently within the code point (dots 1-3 and 7 in the low nibble
// positions, 4-6 and 8 above them), so the bits are permuted before the
// block base is added. Defined for all 256 inputs.
func Braille(value uint8) rune {
	value = value&0x87 |
		value&0x08<<3 |
		value&0x70>>1
	return rune(brailleBase + uint32(value))
}
