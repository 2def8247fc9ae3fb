package ppu

// layers bundles one scanline's worth of decoded BG/OBJ/Mode7 pixel rows,
// the input the compositor selects front-to-back across.
type layers struct {
	bg    [4][256]Pixel
	obj   [256]Pixel
	mode7 bool
	extBG bool
}

// colorMathEligible reports whether a selected main-screen pixel
// participates in color math, honoring the OBJ palette 0-3 exclusion
// hardware enforces (only OBJ palettes 4-7 blend).
func colorMathEligible(reg *Registers, slot priSlot, p Pixel, backdrop bool) bool {
	if backdrop {
		return reg.ColorMathControl.BackDrop
	}
	if slot.isOBJ {
		return reg.ColorMathControl.OBJ && p.Palette >= 4
	}
	return reg.ColorMathControl.BG[slot.bg]
}

// findSlot returns the priSlot a selected pixel came from by re-deriving
// which slot matched, so color-math eligibility can consult BG/OBJ index.
func findSlot(slots []priSlot, l *layers, reg *Registers, designation LayerSet, x int) (priSlot, Pixel, bool) {
	for _, slot := range slots {
		if slot.isOBJ {
			if !designation.OBJ {
				continue
			}
			p := l.obj[x]
			if !p.Opaque || p.ObjPriority != slot.objPriority || objWindowMasked(reg, x) {
				continue
			}
			return slot, p, true
		}
		if !designation.BG[slot.bg] {
			continue
		}
		p := l.bg[slot.bg][x]
		if !p.Opaque || p.PriorityHigh != slot.priorityHigh || layerWindowMasked(reg, slot.bg, x) {
			continue
		}
		return slot, p, true
	}
	return priSlot{}, Pixel{}, false
}

func clamp5(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 31 {
		return 31
	}
	return uint8(v)
}

// blendColor applies additive or subtractive color math between a main and
// sub color, optionally halving the result (hardware halves unless the
// subscreen contributor is the fixed color register).
func blendColor(main, sub SNESColor, subtract, halve bool) SNESColor {
	var r, g, b int
	if subtract {
		r = int(main.R) - int(sub.R)
		g = int(main.G) - int(sub.G)
		b = int(main.B) - int(sub.B)
	} else {
		r = int(main.R) + int(sub.R)
		g = int(main.G) + int(sub.G)
		b = int(main.B) + int(sub.B)
	}
	if halve {
		r /= 2
		g /= 2
		b /= 2
	}
	return SNESColor{R: clamp5(r), G: clamp5(g), B: clamp5(b)}
}

// compositeScanline resolves one 256-wide output row given the decoded
// layer rows for this line, implementing main/sub screen selection, window
// masking, color math (add/subtract/halve, force-black) and the backdrop
// fallback. It returns both the final main-screen color (post color math)
// and the raw sub-screen color, since hi-res output writes both as
// separate dots (spec §4.6).
func compositeScanline(state *State, l *layers) (main [256]SNESColor, sub [256]SNESColor) {
	reg := &state.Registers
	slots := priorityOrder(reg.BGMode, l.extBG)

	for x := 0; x < 256; x++ {
		mainSlot, mainPixel, mainOK := findSlot(slots, l, reg, reg.MainScreenDesignation, x)

		var mainColor SNESColor
		isBackdrop := !mainOK
		if mainOK {
			mainColor = mainPixel.Color
		} else {
			mainColor = state.CGRAM.Backdrop()
		}

		_, subPixel, subOK := findSlot(slots, l, reg, reg.SubScreenDesignation, x)
		var subColor SNESColor
		useFixed := !subOK
		if subOK {
			subColor = subPixel.Color
		} else {
			subColor = reg.FixedColorData
		}
		sub[x] = subColor

		if windowGateEnabled(reg.ColorMathControl.ForceScreenBlack, reg, x) {
			mainColor = SNESColor{}
		}

		mathEnabled := reg.ColorMathControl.EnableBGOBJ &&
			windowGateEnabled(reg.ColorMathControl.ColorMathEnable, reg, x) &&
			colorMathEligible(reg, mainSlot, mainPixel, isBackdrop)

		if mathEnabled {
			halve := reg.ColorMathControl.Halve && !useFixed
			mainColor = blendColor(mainColor, subColor, reg.ColorMathControl.AddSubtract, halve)
		}

		main[x] = mainColor
	}

	return
}
