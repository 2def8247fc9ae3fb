package ppu

// Debug flag bits accepted by Render's flags argument.
const (
	// DebugWhite replaces every output pixel with opaque white, bypassing
	// all layer decoding. Useful for verifying the output buffer's
	// stride/format independent of PPU state.
	DebugWhite uint8 = 1 << iota
)

// OutputWidth and OutputHeight are the fixed dimensions of Render's output
// buffer: every source scanline's 256 pixels are written as 512 output
// dots, and every mode produces 168 visible lines.
const (
	OutputWidth  = 512
	OutputHeight = 168
)

// State bundles the PPU memories and register bank one Render call reads.
// It carries no hidden state between frames: every field is sampled
// fresh, matching the "PPU state is captured once per frame" rule
// scanline rendering depends on.
type State struct {
	CGRAM     CGRAM
	VRAM      VRAM
	OAM       OAM
	Registers Registers
}

// Render rasterizes a full frame into out as tightly packed RGBA8888,
// row-major, stride OutputWidth*4 bytes. flags bit DebugWhite forces every
// pixel to opaque white, bypassing all decoding - a fast way to verify the
// renderer is even being invoked.
func Render(state *State, flags uint8, out []byte) {
	for y := 0; y < OutputHeight; y++ {
		main, sub := renderScanline(state, y, flags)
		writeRow(out, y, main, sub, state.Registers.HiRes())
	}
}

// renderScanline produces one source line's main and sub screen colors
// (256 wide each) by running the BG/OBJ/Mode7 units and compositing them.
// With DebugWhite set, decoding is skipped entirely and both rows are
// solid white.
func renderScanline(state *State, y int, flags uint8) (main, sub [256]SNESColor) {
	if flags&DebugWhite != 0 {
		white := SNESColor{R: 31, G: 31, B: 31}
		for i := range main {
			main[i] = white
			sub[i] = white
		}
		return
	}

	reg := &state.Registers
	var l layers
	l.obj = renderOBJScanline(state, y)

	if reg.BGMode.Mode == 7 {
		l.mode7 = true
		l.extBG = extBGEligible(reg)
		bg1, extbg := renderMode7Scanline(state, y)
		l.bg[0] = bg1
		if l.extBG {
			l.bg[1] = extbg
		}
	} else {
		opt := computeOPT(&state.VRAM, reg)
		for bg := 0; bg < 4; bg++ {
			l.bg[bg] = renderBGScanline(state, bg, y, opt)
		}
	}

	return compositeScanline(state, &l)
}

// writeRow encodes one composited scanline as RGBA8888 into out at row y.
// Non-hi-res modes write the same (post color math) main color to both
// dots of each doubled column; hi-res modes write the raw sub-screen
// color to the even dot and the main-screen color to the odd dot, per
// hardware's true 512-dot output.
func writeRow(out []byte, y int, main, sub [256]SNESColor, hiRes bool) {
	stride := OutputWidth * 4
	base := y * stride
	if base+stride > len(out) {
		return
	}

	for x := 0; x < 256; x++ {
		mc := main[x].ToRGBA8()
		o := base + x*8
		if hiRes {
			sc := sub[x].ToRGBA8()
			out[o], out[o+1], out[o+2], out[o+3] = sc.R, sc.G, sc.B, sc.A
			out[o+4], out[o+5], out[o+6], out[o+7] = mc.R, mc.G, mc.B, mc.A
		} else {
			out[o], out[o+1], out[o+2], out[o+3] = mc.R, mc.G, mc.B, mc.A
			out[o+4], out[o+5], out[o+6], out[o+7] = mc.R, mc.G, mc.B, mc.A
		}
	}
}
