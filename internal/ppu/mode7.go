package ppu

// mode7Fixed converts a Mode 7 matrix register's raw 16-bit two's
// complement value (1.7.8 fixed point) to a float64.
func mode7Fixed(v int16) float64 {
	return float64(v) / 256.0
}

// renderMode7Scanline produces Mode 7's 256-pixel BG1 (and, when extBG is
// true, a second EXTBG plane folded from the high bit of the same 256-color
// character data) for screen line y, applying the affine transform:
//
//	[x']   [A B]   [screenX - centerX]   [originX]
//	[y'] = [C D] * [screenY - centerY] + [originY]
//
// then sampling the 128x128 tile plane (wrapping, clamping to transparent,
// or forcing tile 0, per ScreenOver) and the 256-character linear plane.
func renderMode7Scanline(state *State, y int) (bg1 [256]Pixel, extbg [256]Pixel) {
	reg := &state.Registers
	m := reg.Mode7Matrix
	origin := reg.Mode7Origin
	scroll := reg.BGScroll[0] // BG1 doubles as Mode 7 scroll in Mode 7

	a := mode7Fixed(m.A)
	b := mode7Fixed(m.B)
	c := mode7Fixed(m.C)
	d := mode7Fixed(m.D)

	centerX := float64(signExtend13(origin.X))
	centerY := float64(signExtend13(origin.Y))
	scrollX := float64(signExtend13(scroll.HorzOffset))
	scrollY := float64(signExtend13(scroll.VertOffset))

	screenY := y
	if reg.Mode7Settings.YFlip {
		screenY = 255 - screenY
	}

	for x := 0; x < 256; x++ {
		screenX := x
		if reg.Mode7Settings.XFlip {
			screenX = 255 - screenX
		}

		dx := float64(screenX) - centerX
		dy := float64(screenY) - centerY

		worldX := a*dx + b*dy + centerX + scrollX
		worldY := c*dx + d*dy + centerY + scrollY

		tx := int(floorDiv(worldX, 8))
		ty := int(floorDiv(worldY, 8))
		pixX := int(worldX - float64(tx)*8)
		pixY := int(worldY - float64(ty)*8)

		outOfBounds := tx < 0 || tx >= 128 || ty < 0 || ty >= 128

		var charIndex uint8
		transparent := false
		if outOfBounds {
			switch reg.Mode7Settings.ScreenOver {
			case 2: // transparent
				transparent = true
			case 3: // tile 0
				charIndex = 0
			default: // wrap
				tx = ((tx % 128) + 128) % 128
				ty = ((ty % 128) + 128) % 128
				charIndex = state.VRAM.FetchMode7Tile(0, tx, ty)
			}
		} else {
			charIndex = state.VRAM.FetchMode7Tile(0, tx, ty)
		}

		if transparent {
			continue
		}

		pixel := state.VRAM.FetchMode7Pixel(0, charIndex, pixY, pixX)
		if pixel == 0 {
			continue
		}

		if extBGEligible(reg) {
			// EXTBG repurposes bit 7 of the fetched byte: set, the pixel
			// belongs to BG2 at fixed high priority with a 7bpp color
			// index; clear, it belongs to BG1 as usual.
			if pixel&0x80 != 0 {
				extbg[x] = Pixel{Color: state.CGRAM.Color(pixel & 0x7F), Opaque: true, PriorityHigh: true}
			} else {
				bg1[x] = Pixel{Color: state.CGRAM.Color(pixel), Opaque: true}
			}
			continue
		}

		bg1[x] = Pixel{Color: state.CGRAM.Color(pixel), Opaque: true}
	}

	return
}

func extBGEligible(reg *Registers) bool {
	return reg.ScreenSettings.Mode7EXTBG
}

func signExtend13(v int16) int16 {
	v &= 0x1FFF
	if v&0x1000 != 0 {
		v |= ^int16(0x1FFF)
	}
	return v
}

func floorDiv(v float64, n float64) float64 {
	q := v / n
	if q < 0 {
		qi := float64(int(q))
		if qi != q {
			return qi - 1
		}
		return qi
	}
	return float64(int(q))
}
