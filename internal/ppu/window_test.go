package ppu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInWindowInclusiveRange(t *testing.T) {
	w := WindowPosition{Left: 10, Right: 20}
	require.True(t, inWindow(w, 10))
	require.True(t, inWindow(w, 20))
	require.True(t, inWindow(w, 15))
	require.False(t, inWindow(w, 9))
	require.False(t, inWindow(w, 21))
}

func TestInWindowEmptyWhenLeftGreaterThanRight(t *testing.T) {
	w := WindowPosition{Left: 20, Right: 10}
	for x := 0; x < 256; x++ {
		require.False(t, inWindow(w, x), "column %d", x)
	}
}

func TestWindowMaskedSingleWindowShortcuts(t *testing.T) {
	win := [2]WindowPosition{{Left: 0, Right: 9}, {Left: 100, Right: 110}}

	mask := LayerMask{Win1Enable: true}
	require.True(t, windowMasked(mask, WindowLogicAND, win, 5))
	require.False(t, windowMasked(mask, WindowLogicAND, win, 50))

	mask = LayerMask{Win2Enable: true}
	require.False(t, windowMasked(mask, WindowLogicOR, win, 5))
	require.True(t, windowMasked(mask, WindowLogicOR, win, 105))

	require.False(t, windowMasked(LayerMask{}, WindowLogicOR, win, 5))
}

func TestWindowMaskedCombineLogic(t *testing.T) {
	// win1 covers [0,9], win2 covers [5,14].
	win := [2]WindowPosition{{Left: 0, Right: 9}, {Left: 5, Right: 14}}
	mask := LayerMask{Win1Enable: true, Win2Enable: true}

	cases := []struct {
		x                  int
		or, and, xor, xnor bool
	}{
		{x: 3, or: true, and: false, xor: true, xnor: false},   // in1 only
		{x: 7, or: true, and: true, xor: false, xnor: true},    // in1 && in2
		{x: 12, or: true, and: false, xor: true, xnor: false},  // in2 only
		{x: 20, or: false, and: false, xor: false, xnor: true}, // neither
	}

	for _, c := range cases {
		require.Equal(t, c.or, windowMasked(mask, WindowLogicOR, win, c.x), "OR at %d", c.x)
		require.Equal(t, c.and, windowMasked(mask, WindowLogicAND, win, c.x), "AND at %d", c.x)
		require.Equal(t, c.xor, windowMasked(mask, WindowLogicXOR, win, c.x), "XOR at %d", c.x)
		require.Equal(t, c.xnor, windowMasked(mask, WindowLogicXNOR, win, c.x), "XNOR at %d", c.x)
	}
}

func TestWindowMaskedInvert(t *testing.T) {
	win := [2]WindowPosition{{Left: 0, Right: 9}, {}}
	mask := LayerMask{Win1Enable: true, Win1Invert: true}

	require.False(t, windowMasked(mask, WindowLogicOR, win, 5), "inverted window should exclude its own range")
	require.True(t, windowMasked(mask, WindowLogicOR, win, 50), "inverted window should include everything outside its range")
}

func TestLayerAndObjWindowMaskedWrapRegisters(t *testing.T) {
	var reg Registers
	reg.WindowPosition[0] = WindowPosition{Left: 0, Right: 9}
	reg.WindowMaskSettings.BG[1] = LayerMask{Win1Enable: true}
	reg.WindowMaskSettings.OBJ = LayerMask{Win1Enable: true}
	reg.WindowMaskSettings.Color = LayerMask{Win1Enable: true}

	require.True(t, layerWindowMasked(&reg, 1, 5))
	require.False(t, layerWindowMasked(&reg, 0, 5), "BG0 has no window mask configured")
	require.True(t, objWindowMasked(&reg, 5))
	require.True(t, colorWindowMasked(&reg, 5))
	require.False(t, colorWindowMasked(&reg, 50))
}

func TestWindowGateEnabledEncoding(t *testing.T) {
	var reg Registers
	reg.WindowMaskSettings.Color = LayerMask{Win1Enable: true}
	reg.WindowPosition[0] = WindowPosition{Left: 0, Right: 9}

	require.True(t, windowGateEnabled(0, &reg, 100), "0 = always")
	require.True(t, windowGateEnabled(1, &reg, 5), "1 = inside window")
	require.False(t, windowGateEnabled(1, &reg, 50), "1 = inside window, outside range")
	require.False(t, windowGateEnabled(2, &reg, 5), "2 = outside window, inside range")
	require.True(t, windowGateEnabled(2, &reg, 50), "2 = outside window, outside range")
	require.False(t, windowGateEnabled(3, &reg, 5), "3 = never")
}
