package ppu

// renderOBJScanline produces 256 resolved pixels for the sprite layer at
// screen line y. It walks all 128 sprites in index order (lower index
// wins ties), testing each for Y-coverage with the same 8-bit wraparound
// hardware uses for sprites straddling line 255/0, resolving size from
// ObjSizeAndBase's small/large table, and writing the first opaque pixel
// encountered at each column (later, lower-priority sprites never
// overwrite an already-opaque column).
func renderOBJScanline(state *State, y int) [256]Pixel {
	var out [256]Pixel
	var filled [256]bool

	reg := &state.Registers
	smallW, smallH := reg.ObjSizeAndBase.SmallSize()
	largeW, largeH := reg.ObjSizeAndBase.LargeSize()

	for i := 0; i < 128; i++ {
		s := state.OAM.Sprite(i)

		w, h := smallW, smallH
		if s.Large {
			w, h = largeW, largeH
		}

		// Sprite Y wraps mod 256, so a sprite near line 255 can cover
		// line 0 of the next frame's worth of scanlines.
		rowInSprite := (y - int(s.Y) + 256) % 256
		if rowInSprite >= h {
			continue
		}

		tileRow := rowInSprite / 8
		pixelRow := rowInSprite % 8
		numTilesX := w / 8
		numTilesY := h / 8

		charBase := reg.ObjSizeAndBase.NameTableAddrBytes(s.NameTable)

		for col := 0; col < w; col++ {
			screenX := int(s.X) + col
			if screenX < 0 || screenX >= 256 {
				continue
			}
			if filled[screenX] {
				continue
			}

			tileCol := col / 8
			pixelCol := col % 8

			// Flip selects which 8x8 character within the sprite's grid to
			// sample; FetchPixel itself handles the within-character flip.
			subTileX, subTileY := tileCol, tileRow
			if s.FlipX {
				subTileX = numTilesX - 1 - tileCol
			}
			if s.FlipY {
				subTileY = numTilesY - 1 - tileRow
			}

			// A name table holds 256 characters; multi-tile/flipped
			// sprite math wraps mod 256 within the table s.NameTable
			// already selected.
			charIndex := uint16(s.Character) + uint16(subTileY)*16 + uint16(subTileX)
			charIndex &= 0xFF

			idx := state.VRAM.FetchPixel(charBase, charIndex, 4, pixelRow, pixelCol, s.FlipX, s.FlipY)
			if idx == 0 {
				continue
			}

			out[screenX] = Pixel{
				Color:       state.CGRAM.OBJPalette16(s.Palette, idx),
				Opaque:      true,
				ObjPriority: s.Priority,
				Palette:     s.Palette,
			}
			filled[screenX] = true
		}
	}

	return out
}
