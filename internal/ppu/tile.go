package ppu

// Tile is a 2-byte tilemap entry, interpreted three different ways
// depending on context (standard BG tile, BG3 Offset-Per-Tile entry, or
// Direct Color Mode tile), mirroring the union in libsnes's snes.h.
type Tile uint16

// Standard decodes the usual tile fields: character:10, palette:3,
// priority:1, flipX:1, flipY:1.
func (t Tile) Standard() (character uint16, palette uint8, priority, flipX, flipY bool) {
	character = uint16(t) & 0x3FF
	palette = uint8((t >> 10) & 0x7)
	priority = (t>>13)&1 != 0
	flipX = (t>>14)&1 != 0
	flipY = (t>>15)&1 != 0
	return
}

// OPT decodes the Offset-Per-Tile fields used by BG3 in modes 2, 4 and 6:
// offset:10, applyToBG1:1, applyToBG2:1, applyToVertical:1.
func (t Tile) OPT() (offset uint16, applyToBG1, applyToBG2, applyToVertical bool) {
	offset = uint16(t) & 0x3FF
	applyToBG1 = (t>>13)&1 != 0
	applyToBG2 = (t>>14)&1 != 0
	applyToVertical = (t>>15)&1 != 0
	return
}

// DCM decodes a Direct Color Mode tile. Character (bits 0-9) still
// addresses the 256-color character graphic as usual; the palette field's
// three bits are repurposed as individual low-order r/g/b color bits, and
// priority/flipX/flipY keep their Standard-interpretation positions.
func (t Tile) DCM() (character uint16, r, g, b, priority, flipX, flipY bool) {
	character = uint16(t) & 0x3FF
	r = (t>>10)&1 != 0
	g = (t>>11)&1 != 0
	b = (t>>12)&1 != 0
	priority = (t>>13)&1 != 0
	flipX = (t>>14)&1 != 0
	flipY = (t>>15)&1 != 0
	return
}

// DCMColor reconstructs a 15-bit SNESColor from a fetched 256-color
// character pixel value and a tile's r/g/b low-order bits, per libsnes's
// documented layout: the pixel byte is organized BBGGGRRR, and
// R = (RRR<<2)|(r<<1), G = (GGG<<2)|(g<<1), B = (BB<<3)|(b<<2).
func DCMColor(pixelValue uint8, r, g, b bool) SNESColor {
	rrr := pixelValue & 0x7
	ggg := (pixelValue >> 3) & 0x7
	bb := (pixelValue >> 6) & 0x3

	var rLSB, gLSB, bLSB uint8
	if r {
		rLSB = 1
	}
	if g {
		gLSB = 1
	}
	if b {
		bLSB = 1
	}

	return SNESColor{
		R: (rrr << 2) | (rLSB << 1),
		G: (ggg << 2) | (gLSB << 1),
		B: (bb << 3) | (bLSB << 2),
	}
}

// bytesPerChar returns the storage size in bytes of one 8x8 character at
// the given color depth (2, 4 or 8 bits per pixel).
func bytesPerChar(depth int) int {
	switch depth {
	case 2:
		return 16
	case 4:
		return 32
	case 8:
		return 64
	default:
		return 0
	}
}
