// Command framedump renders a single PPU frame from a saved state snapshot
// and writes it to disk as a BMP, alongside a half-size thumbnail.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/jsummers/gobmp"
	"github.com/nfnt/resize"

	"github.com/p4r4digm/snesquest/internal/debug"
	"github.com/p4r4digm/snesquest/internal/ppu"
)

func main() {
	statePath := flag.String("state", "", "Path to a raw PPU state snapshot (CGRAM+VRAM+OAM+Registers, gob-encoded)")
	outPath := flag.String("out", "frame.bmp", "Output BMP path")
	thumbPath := flag.String("thumb", "", "Optional thumbnail BMP path (half size)")
	debugWhite := flag.Bool("debug-white", false, "Force DEBUG_WHITE output")
	flag.Parse()

	logger := debug.NewLogger(2000)
	logger.SetComponentEnabled(debug.ComponentSystem, true)
	logger.SetMinLevel(debug.LogLevelInfo)

	state := &ppu.State{}
	if *statePath != "" {
		if err := loadState(*statePath, state); err != nil {
			fmt.Fprintf(os.Stderr, "framedump: error loading state: %v\n", err)
			os.Exit(1)
		}
		logger.LogSystemf(debug.LogLevelInfo, "loaded state snapshot from %s", *statePath)
	} else {
		logger.LogSystemf(debug.LogLevelInfo, "no state given, rendering backdrop-only frame")
	}

	var flags uint8
	if *debugWhite {
		flags |= ppu.DebugWhite
	}

	buf := make([]byte, ppu.OutputWidth*ppu.OutputHeight*4)
	ppu.Render(state, flags, buf)

	img := bufferToImage(buf)

	if err := writeBMP(*outPath, img); err != nil {
		fmt.Fprintf(os.Stderr, "framedump: error writing %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	logger.LogSystemf(debug.LogLevelInfo, "wrote %s (%dx%d)", *outPath, ppu.OutputWidth, ppu.OutputHeight)

	if *thumbPath != "" {
		thumb := resize.Resize(ppu.OutputWidth/2, ppu.OutputHeight/2, img, resize.Lanczos3)
		if err := writeBMP(*thumbPath, thumb); err != nil {
			fmt.Fprintf(os.Stderr, "framedump: error writing %s: %v\n", *thumbPath, err)
			os.Exit(1)
		}
		logger.LogSystemf(debug.LogLevelInfo, "wrote thumbnail %s", *thumbPath)
	}

	for _, entry := range logger.GetEntries() {
		fmt.Println(entry.Format())
	}
}

// bufferToImage wraps a tightly-packed RGBA8888 Render output in an
// image.RGBA without copying.
func bufferToImage(buf []byte) *image.RGBA {
	return &image.RGBA{
		Pix:    buf,
		Stride: ppu.OutputWidth * 4,
		Rect:   image.Rect(0, 0, ppu.OutputWidth, ppu.OutputHeight),
	}
}

func writeBMP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gobmp.Encode(f, img); err != nil {
		return fmt.Errorf("encoding bmp: %w", err)
	}
	return nil
}
