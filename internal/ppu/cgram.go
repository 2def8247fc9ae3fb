package ppu

// CGRAM is 512 bytes (256 SNESColor entries) aliased by several logical
// views depending on the active video mode. The backing store is a single
// byte array; every accessor below reinterprets the same bytes rather than
// keeping separate copies, matching the union in the original libsnes
// snes.h CGRAM struct.
type CGRAM [512]byte

// Color returns CGRAM entry i (0-255) as a flat 256-color view. This is the
// view used by Mode 7's 256-color BG1 and by DCM bypasses.
func (c *CGRAM) Color(i uint8) SNESColor {
	addr := int(i) * 2
	return decodeSNESColor(c[addr], c[addr+1])
}

// SetColor writes CGRAM entry i in the flat 256-color view.
func (c *CGRAM) SetColor(i uint8, col SNESColor) {
	addr := int(i) * 2
	lo, hi := encodeSNESColor(col)
	c[addr], c[addr+1] = lo, hi
}

// BGPalette16 returns color idx (0-15) of one of the eight 16-color BG
// palettes occupying the first 128 CGRAM entries.
func (c *CGRAM) BGPalette16(palette, idx uint8) SNESColor {
	return c.Color((palette&7)*16 + (idx & 0xF))
}

// BGPalette4 returns color idx (0-3) of one of the eight 4-color BG
// palettes carved out of the first 32 CGRAM entries. Used by 4-color BGs
// outside Mode 0.
func (c *CGRAM) BGPalette4(palette, idx uint8) SNESColor {
	return c.Color((palette&7)*4 + (idx & 0x3))
}

// Mode0Palette returns color idx (0-3) of the 4-color palette `palette`
// (0-7) belonging to BG `bg` (0-3), matching the Mode 0 carve-up of the
// first 128 CGRAM entries into four sets of eight 4-color palettes.
func (c *CGRAM) Mode0Palette(bg, palette, idx uint8) SNESColor {
	base := uint8(bg&3) * 32
	return c.Color(base + (palette&7)*4 + (idx & 0x3))
}

// OBJPalette16 returns color idx (0-15) of one of the eight 16-color OBJ
// palettes fixed in the second half of CGRAM (entries 128-255).
func (c *CGRAM) OBJPalette16(palette, idx uint8) SNESColor {
	return c.Color(128 + (palette&7)*16 + (idx & 0xF))
}

// Backdrop is the color used to fill every transparent output position:
// CGRAM entry 0.
func (c *CGRAM) Backdrop() SNESColor {
	return c.Color(0)
}
