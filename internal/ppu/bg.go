package ppu

// bgCharBaseBytes converts a BG Character Base register value (4 bits, 8KiB
// steps) to a VRAM byte address.
func bgCharBaseBytes(v uint8) uint32 {
	return uint32(v&0xF) << 13
}

// quadrantIndex resolves which of a BG's up-to-4 32x32-tile quadrants tile
// coordinate (tileX, tileY) falls in, given the BG's size bits. Quadrants
// are stored contiguously in VRAM in row-major order: top-left, top-right,
// bottom-left, bottom-right, each 1024 tiles (2048 bytes) apart.
func quadrantIndex(sizeX, sizeY bool, tileX, tileY int) (quadrant, localX, localY int) {
	qx, qy := 0, 0
	if sizeX {
		qx = (tileX / 32) & 1
	}
	if sizeY {
		qy = (tileY / 32) & 1
	}
	localX = tileX % 32
	localY = tileY % 32
	switch {
	case sizeX && sizeY:
		quadrant = qy*2 + qx
	case sizeX:
		quadrant = qx
	case sizeY:
		quadrant = qy
	default:
		quadrant = 0
	}
	return
}

// renderBGScanline produces 256 resolved pixels for background `bg` (0-3)
// at screen line y, applying mosaic, scrolling with wraparound, 4-quadrant
// tilemap addressing, 8x8/16x16 character fetch with flip, Offset-Per-Tile
// (via the opt argument, precomputed once per scanline from BG3) and
// palette resolution including Mode 0's split palette ranges and Direct
// Color Mode.
func renderBGScanline(state *State, bg int, y int, opt [32]optColumn) [256]Pixel {
	var out [256]Pixel

	reg := &state.Registers
	depth := reg.BGMode.Depth(bg)
	if depth == 0 {
		return out
	}

	tileSize := 8
	if reg.BGMode.SizeBG[bg] {
		tileSize = 16
	}
	sizeX, sizeY := reg.BGSizeAndTileBase[bg].SizeX, reg.BGSizeAndTileBase[bg].SizeY
	mapBase := reg.BGSizeAndTileBase[bg].BaseAddrBytes()
	charBase := bgCharBaseBytes(reg.BGCharBase[bg])

	mapTilesX, mapTilesY := 32, 32
	if sizeX {
		mapTilesX = 64
	}
	if sizeY {
		mapTilesY = 64
	}
	totalWidth := mapTilesX * tileSize
	totalHeight := mapTilesY * tileSize

	blockSize := 1
	if reg.Mosaic.Enable[bg] {
		blockSize = int(reg.Mosaic.Size) + 1
	}
	sampleY := y
	if blockSize > 1 {
		sampleY = y - y%blockSize
	}

	scroll := reg.BGScroll[bg]
	directColor := reg.ColorMathControl.DirectColorMode && depth == 8

	for x := 0; x < 256; x++ {
		sampleX := x
		if blockSize > 1 {
			sampleX = x - x%blockSize
		}

		worldX := sampleX + int(scroll.HorzOffset)
		worldY := sampleY + int(scroll.VertOffset)

		if reg.BGMode.UsesOPT() && bg < 2 {
			col := opt[(sampleX/8)&0x1F]
			if bg == 0 {
				if col.applyHorzBG1 {
					worldX += int(col.horz)
				}
				if col.applyVertBG1 {
					worldY += int(col.vert)
				}
			} else {
				if col.applyHorzBG2 {
					worldX += int(col.horz)
				}
				if col.applyVertBG2 {
					worldY += int(col.vert)
				}
			}
		}

		worldX = ((worldX % totalWidth) + totalWidth) % totalWidth
		worldY = ((worldY % totalHeight) + totalHeight) % totalHeight

		tileX := worldX / tileSize
		tileY := worldY / tileSize
		subX := worldX % tileSize
		subY := worldY % tileSize

		quadrant, localX, localY := quadrantIndex(sizeX, sizeY, tileX, tileY)
		addr := mapBase + uint32(quadrant*1024+localY*32+localX)*2
		tile := state.VRAM.ReadTile(addr)

		var character uint16
		var palette uint8
		var priority, flipX, flipY bool
		var dcmR, dcmG, dcmB bool

		if directColor {
			character, dcmR, dcmG, dcmB, priority, flipX, flipY = tile.DCM()
		} else {
			character, palette, priority, flipX, flipY = tile.Standard()
		}

		subTileX, subTileY := 0, 0
		if tileSize == 16 {
			subTileX, subTileY = subX/8, subY/8
			if flipX {
				subTileX = 1 - subTileX
			}
			if flipY {
				subTileY = 1 - subTileY
			}
		}
		effChar := character + uint16(subTileY)*16 + uint16(subTileX)
		pixelRow, pixelCol := subY%8, subX%8

		idx := state.VRAM.FetchPixel(charBase, effChar, depth, pixelRow, pixelCol, flipX, flipY)
		opaque := idx != 0

		var color SNESColor
		switch {
		case directColor:
			color = DCMColor(idx, dcmR, dcmG, dcmB)
		case depth == 8:
			color = state.CGRAM.Color(idx)
		case depth == 4:
			color = state.CGRAM.BGPalette16(palette, idx)
		default: // depth == 2
			if reg.BGMode.Mode == 0 {
				color = state.CGRAM.Mode0Palette(uint8(bg), palette, idx)
			} else {
				color = state.CGRAM.BGPalette4(palette, idx)
			}
		}

		out[x] = Pixel{Color: color, Opaque: opaque, PriorityHigh: priority}
	}

	return out
}
