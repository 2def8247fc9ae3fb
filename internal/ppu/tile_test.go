package ppu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDCMColorReconstructsChannels(t *testing.T) {
	// pixelValue 0xAB = 0b10_101_011: rrr=011=3, ggg=101=5, bb=10=2.
	got := DCMColor(0xAB, true, false, true)
	want := SNESColor{
		R: (3 << 2) | (1 << 1), // 14
		G: (5 << 2) | 0,        // 20
		B: (2 << 3) | (1 << 2), // 20
	}
	require.Equal(t, want, got)
}

func TestDCMColorLowBitsClear(t *testing.T) {
	got := DCMColor(0, false, false, false)
	require.Equal(t, SNESColor{}, got)
}

func TestTileStandardDecodesFields(t *testing.T) {
	// character=0x123, palette=5, priority+flipX+flipY set.
	tile := Tile(0x123 | (5 << 10) | (1 << 13) | (1 << 14) | (1 << 15))
	character, palette, priority, flipX, flipY := tile.Standard()
	require.Equal(t, uint16(0x123), character)
	require.Equal(t, uint8(5), palette)
	require.True(t, priority)
	require.True(t, flipX)
	require.True(t, flipY)
}

func TestBytesPerCharInvalidDepth(t *testing.T) {
	require.Equal(t, 0, bytesPerChar(3))
}
