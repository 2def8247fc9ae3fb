package ppu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestState() *State {
	var s State
	// Never force black and never run color math by default; individual
	// scenarios opt back in explicitly.
	s.Registers.ColorMathControl.ForceScreenBlack = 3
	s.Registers.ColorMathControl.ColorMathEnable = 3
	return &s
}

func pixelAt(buf []byte, x, y int) (r, g, b, a uint8) {
	o := y*OutputWidth*4 + x*4
	return buf[o], buf[o+1], buf[o+2], buf[o+3]
}

func TestDebugWhiteFillsEveryPixel(t *testing.T) {
	state := newTestState()
	buf := make([]byte, OutputWidth*OutputHeight*4)
	Render(state, DebugWhite, buf)

	for i := 0; i < len(buf); i += 4 {
		require.Equal(t, []byte{255, 255, 255, 255}, buf[i:i+4], "offset %d", i)
	}
}

func TestBackdropFillsFrameWhenNoLayerEnabled(t *testing.T) {
	state := newTestState()
	state.CGRAM.SetColor(0, SNESColor{R: 31, G: 0, B: 0})

	buf := make([]byte, OutputWidth*OutputHeight*4)
	Render(state, 0, buf)

	for y := 0; y < OutputHeight; y++ {
		for x := 0; x < OutputWidth; x++ {
			r, g, b, a := pixelAt(buf, x, y)
			require.Equal(t, [4]uint8{255, 0, 0, 255}, [4]uint8{r, g, b, a}, "pixel (%d,%d)", x, y)
		}
	}
}

func TestSingleOpaqueOBJWrites16DoubledColumns(t *testing.T) {
	state := newTestState()
	state.CGRAM.SetColor(129, SNESColor{R: 0, G: 31, B: 0}) // objPalette16(0,1)

	// Primary entry 0: x=10, y=20, char=0, palette=0, priority=3, nameTable=0.
	state.OAM[0] = 10
	state.OAM[1] = 20
	state.OAM[2] = 0
	state.OAM[3] = 0x30 // priority bits 4-5 = 11

	// Character 0, plane 0 row 0 fully opaque; every other plane/row zero.
	state.VRAM[0] = 0xFF

	state.Registers.ObjSizeAndBase.ObjSize = 0
	state.Registers.MainScreenDesignation.OBJ = true

	buf := make([]byte, OutputWidth*OutputHeight*4)
	Render(state, 0, buf)

	for x := 20; x < 36; x++ {
		r, g, b, a := pixelAt(buf, x, 20)
		require.Equal(t, [4]uint8{0, 255, 0, 255}, [4]uint8{r, g, b, a}, "column %d", x)
	}
	r, g, b, a := pixelAt(buf, 18, 20)
	require.Equal(t, [4]uint8{0, 0, 0, 255}, [4]uint8{r, g, b, a}, "pixel left of sprite should be backdrop")
}

func TestOBJFlipYMovesOpaqueRow(t *testing.T) {
	state := newTestState()
	state.CGRAM.SetColor(129, SNESColor{R: 0, G: 31, B: 0})

	state.OAM[0] = 10
	state.OAM[1] = 20
	state.OAM[2] = 0
	state.OAM[3] = 0x30 | 0x80 // priority 3, flipY

	// Plane 0 row 7 carries the opaque bits this time.
	state.VRAM[0+7*2] = 0xFF

	state.Registers.ObjSizeAndBase.ObjSize = 0
	state.Registers.MainScreenDesignation.OBJ = true

	buf := make([]byte, OutputWidth*OutputHeight*4)
	Render(state, 0, buf)

	r, g, b, a := pixelAt(buf, 20, 20)
	require.Equal(t, [4]uint8{0, 255, 0, 255}, [4]uint8{r, g, b, a}, "flipped sprite should show its line at y=20")
	r, g, b, a = pixelAt(buf, 20, 27)
	require.Equal(t, [4]uint8{0, 0, 0, 255}, [4]uint8{r, g, b, a}, "y=27 should be backdrop once flipped")
}

func TestBG1FourBppTile(t *testing.T) {
	state := newTestState()
	state.Registers.BGMode.Mode = 1
	state.Registers.BGCharBase[0] = 4
	state.Registers.MainScreenDesignation.BG[0] = true
	state.CGRAM.SetColor(3, SNESColor{R: 31, G: 31, B: 31})

	// Character 0 at 0x8000 (charBase 4 << 13): plane0/plane1 row 0 both
	// 0x80, giving column 0 a palette index of 3 and every other column 0.
	state.VRAM[0x8000] = 0x80
	state.VRAM[0x8001] = 0x80

	buf := make([]byte, OutputWidth*OutputHeight*4)
	Render(state, 0, buf)

	r, g, b, a := pixelAt(buf, 0, 0)
	require.Equal(t, [4]uint8{255, 255, 255, 255}, [4]uint8{r, g, b, a}, "(0,0) should be white")
	r, g, b, a = pixelAt(buf, 2, 0)
	require.Equal(t, [4]uint8{0, 0, 0, 255}, [4]uint8{r, g, b, a}, "source column 1 should be backdrop")
}

func TestBG1MosaicSpreadsSourcePixel(t *testing.T) {
	state := newTestState()
	state.Registers.BGMode.Mode = 1
	state.Registers.BGCharBase[0] = 4
	state.Registers.MainScreenDesignation.BG[0] = true
	state.Registers.Mosaic.Enable[0] = true
	state.Registers.Mosaic.Size = 1 // 2x2 blocks
	state.CGRAM.SetColor(3, SNESColor{R: 31, G: 31, B: 31})

	state.VRAM[0x8000] = 0x80
	state.VRAM[0x8001] = 0x80

	buf := make([]byte, OutputWidth*OutputHeight*4)
	Render(state, 0, buf)

	for _, y := range []int{0, 1} {
		for x := 0; x < 4; x++ {
			r, g, b, a := pixelAt(buf, x, y)
			require.Equal(t, [4]uint8{255, 255, 255, 255}, [4]uint8{r, g, b, a}, "mosaic block pixel (%d,%d)", x, y)
		}
	}
}
