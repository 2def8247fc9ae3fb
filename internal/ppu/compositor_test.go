package ppu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlendColorAddClampsAt31(t *testing.T) {
	main := SNESColor{R: 20, G: 31, B: 0}
	sub := SNESColor{R: 20, G: 1, B: 31}
	got := blendColor(main, sub, false, false)
	require.Equal(t, SNESColor{R: 31, G: 31, B: 31}, got)
}

func TestBlendColorSubtractClampsAtZero(t *testing.T) {
	main := SNESColor{R: 5, G: 31, B: 10}
	sub := SNESColor{R: 10, G: 1, B: 10}
	got := blendColor(main, sub, true, false)
	require.Equal(t, SNESColor{R: 0, G: 30, B: 0}, got)
}

func TestBlendColorHalve(t *testing.T) {
	main := SNESColor{R: 10, G: 10, B: 10}
	sub := SNESColor{R: 10, G: 10, B: 10}
	got := blendColor(main, sub, false, true)
	require.Equal(t, SNESColor{R: 10, G: 10, B: 10}, got)
}

func TestColorMathEligibleBackdropGatedByBackDropFlag(t *testing.T) {
	var reg Registers
	reg.ColorMathControl.BackDrop = true
	require.True(t, colorMathEligible(&reg, priSlot{}, Pixel{}, true))

	reg.ColorMathControl.BackDrop = false
	require.False(t, colorMathEligible(&reg, priSlot{}, Pixel{}, true))
}

func TestColorMathEligibleExcludesOBJPalettes0To3(t *testing.T) {
	var reg Registers
	reg.ColorMathControl.OBJ = true
	slot := priSlot{isOBJ: true}

	require.False(t, colorMathEligible(&reg, slot, Pixel{Palette: 3}, false), "palettes 0-3 never participate")
	require.True(t, colorMathEligible(&reg, slot, Pixel{Palette: 4}, false), "palettes 4-7 participate when enabled")

	reg.ColorMathControl.OBJ = false
	require.False(t, colorMathEligible(&reg, slot, Pixel{Palette: 4}, false))
}

func TestColorMathEligibleBGGatedPerLayer(t *testing.T) {
	var reg Registers
	reg.ColorMathControl.BG[2] = true
	require.True(t, colorMathEligible(&reg, priSlot{bg: 2}, Pixel{}, false))
	require.False(t, colorMathEligible(&reg, priSlot{bg: 1}, Pixel{}, false))
}
