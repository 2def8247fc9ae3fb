package main

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/p4r4digm/snesquest/internal/ppu"
)

// loadState decodes a gob-encoded ppu.State snapshot from path into state.
// Snapshots are produced out of band (e.g. by a debugger dumping live PPU
// memories); framedump only consumes them.
func loadState(path string, state *ppu.State) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(state); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}
	return nil
}
