package ppu

// inWindow reports whether screen column x falls inside window w's
// inclusive [Left, Right] range. Left > Right is the hardware convention
// for "this window covers nothing".
func inWindow(w WindowPosition, x int) bool {
	if w.Left > w.Right {
		return false
	}
	return x >= int(w.Left) && x <= int(w.Right)
}

// combine applies a LayerMask's enable/invert bits for both windows against
// logic to decide whether column x is masked (excluded) for one layer.
func windowMasked(mask LayerMask, logic WindowMaskLogic, win [2]WindowPosition, x int) bool {
	in1 := mask.Win1Enable && inWindow(win[0], x)
	if mask.Win1Enable && mask.Win1Invert {
		in1 = !in1
	}
	in2 := mask.Win2Enable && inWindow(win[1], x)
	if mask.Win2Enable && mask.Win2Invert {
		in2 = !in2
	}

	if !mask.Win1Enable && !mask.Win2Enable {
		return false
	}
	if mask.Win1Enable && !mask.Win2Enable {
		return in1
	}
	if !mask.Win1Enable && mask.Win2Enable {
		return in2
	}

	switch logic {
	case WindowLogicAND:
		return in1 && in2
	case WindowLogicXOR:
		return in1 != in2
	case WindowLogicXNOR:
		return in1 == in2
	default: // WindowLogicOR
		return in1 || in2
	}
}

// layerWindowMasked returns whether column x is masked for the named BG
// (0-3) by the combined window state.
func layerWindowMasked(reg *Registers, bg int, x int) bool {
	return windowMasked(reg.WindowMaskSettings.BG[bg], reg.WindowMaskLogic, reg.WindowPosition, x)
}

// objWindowMasked returns whether column x is masked for the OBJ layer.
func objWindowMasked(reg *Registers, x int) bool {
	return windowMasked(reg.WindowMaskSettings.OBJ, reg.WindowMaskLogic, reg.WindowPosition, x)
}

// colorWindowMasked returns whether column x is masked for the color-math
// gating window (used by ColorMathEnable/ForceScreenBlack's "inside"/
// "outside window" settings).
func colorWindowMasked(reg *Registers, x int) bool {
	return windowMasked(reg.WindowMaskSettings.Color, reg.WindowMaskLogic, reg.WindowPosition, x)
}

// windowGateEnabled resolves a 2-bit ColorMathEnable/ForceScreenBlack
// encoding (0=always, 1=inside color window, 2=outside color window,
// 3=never) against column x.
func windowGateEnabled(setting uint8, reg *Registers, x int) bool {
	switch setting & 0x3 {
	case 0:
		return true
	case 1:
		return colorWindowMasked(reg, x)
	case 2:
		return !colorWindowMasked(reg, x)
	default:
		return false
	}
}
