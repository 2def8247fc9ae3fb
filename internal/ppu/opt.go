package ppu

// optColumn is the resolved Offset-Per-Tile delta for one BG3 tile column,
// applied to BG1/BG2 when the active mode uses OPT (modes 2, 4 and 6).
type optColumn struct {
	horz         int16
	vert         int16
	applyHorzBG1 bool
	applyHorzBG2 bool
	applyVertBG1 bool
	applyVertBG2 bool
}

// computeOPT reads BG3's tilemap rows 0 and 16 to resolve, for each of the
// 32 tile columns, the horizontal/vertical scroll delta OPT contributes to
// BG1/BG2. Column 0 is never affected (spec §4.3.8); every other column c
// reads BG3 tile c-1. Mode 4 only has bandwidth to read row 0, using its
// applyToVertical bit to decide whether that single offset acts
// horizontally or vertically.
func computeOPT(v *VRAM, reg *Registers) [32]optColumn {
	var cols [32]optColumn
	if !reg.BGMode.UsesOPT() {
		return cols
	}

	base := reg.BGSizeAndTileBase[2].BaseAddrBytes() // BG3
	readTile := func(tileX, tileY int) Tile {
		addr := base + uint32(tileY*32+tileX)*2
		return v.ReadTile(addr)
	}

	for c := 1; c < 32; c++ {
		bg3Col := c - 1
		row0 := readTile(bg3Col, 0)
		offset0, applyBG1_0, applyBG2_0, applyVert0 := row0.OPT()
		horz := int16(offset0 &^ 0x7) // low 3 bits ignored for horizontal steps

		if reg.BGMode.Mode == 4 {
			if applyVert0 {
				cols[c].vert = int16(offset0)
				cols[c].applyVertBG1 = applyBG1_0
				cols[c].applyVertBG2 = applyBG2_0
			} else {
				cols[c].horz = horz
				cols[c].applyHorzBG1 = applyBG1_0
				cols[c].applyHorzBG2 = applyBG2_0
			}
			continue
		}

		cols[c].horz = horz
		cols[c].applyHorzBG1 = applyBG1_0
		cols[c].applyHorzBG2 = applyBG2_0

		row16 := readTile(bg3Col, 16)
		offset16, applyBG1_16, applyBG2_16, _ := row16.OPT()
		cols[c].vert = int16(offset16)
		cols[c].applyVertBG1 = applyBG1_16
		cols[c].applyVertBG2 = applyBG2_16
	}
	return cols
}
