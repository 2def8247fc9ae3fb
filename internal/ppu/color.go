package ppu

// SNESColor is a 15-bit BGR color: three 5-bit channels packed little-endian
// into two bytes as 0bbbbbgg gggrrrrr.
type SNESColor struct {
	R, G, B uint8 // each 0-31
}

// RGBA is the 24-bit-plus-alpha color the renderer writes to the output
// buffer.
type RGBA struct {
	R, G, B, A uint8
}

// stretch5to8 expands a 5-bit channel into 8 bits by repeating its top 3
// bits into the bottom 3 (c5<<3 | c5>>2), the documented SNES convention.
func stretch5to8(c5 uint8) uint8 {
	c5 &= 0x1F
	return (c5 << 3) | (c5 >> 2)
}

// ToRGBA8 converts a 15-bit SNES color to 24-bit RGB plus opaque alpha.
func (c SNESColor) ToRGBA8() RGBA {
	return RGBA{
		R: stretch5to8(c.R),
		G: stretch5to8(c.G),
		B: stretch5to8(c.B),
		A: 255,
	}
}

// FromRGBA8 discards the low 3 bits of each 8-bit channel to recover the
// 5-bit SNES color. Round-trips exactly for every value produced by
// ToRGBA8 on a 5-bit input.
func FromRGBA8(c RGBA) SNESColor {
	return SNESColor{
		R: c.R >> 3,
		G: c.G >> 3,
		B: c.B >> 3,
	}
}

// decodeSNESColor unpacks a little-endian 2-byte 0bbbbbgg gggrrrrr word.
func decodeSNESColor(lo, hi uint8) SNESColor {
	word := uint16(lo) | uint16(hi)<<8
	return SNESColor{
		R: uint8(word & 0x1F),
		G: uint8((word >> 5) & 0x1F),
		B: uint8((word >> 10) & 0x1F),
	}
}

// encodeSNESColor packs a color back into its little-endian 2-byte form.
func encodeSNESColor(c SNESColor) (lo, hi uint8) {
	word := uint16(c.R&0x1F) | uint16(c.G&0x1F)<<5 | uint16(c.B&0x1F)<<10
	return uint8(word & 0xFF), uint8(word >> 8)
}
