// Package cmap implements the sub-allocator that carves rectangular
// blocks of tiles out of a region of VRAM character memory, tracking free
// space, defragmenting on demand, and committing caller-supplied pixel
// data into bit-planed VRAM bytes.
package cmap

import (
	"github.com/p4r4digm/snesquest/internal/debug"
	"github.com/p4r4digm/snesquest/internal/ppu"
)

// charsPerRow is the fixed width of a character-table row: 32 four-color
// (16-byte) character slots.
const charsPerRow = 32

// CMap owns a half-open region of rows [RowOffset, RowOffset+RowCount) in
// a VRAM character table, addressed in units of 4-color (16-byte)
// character slots.
type CMap struct {
	vram      *ppu.VRAM
	baseAddr  uint32
	rowOffset int
	rowCount  int

	free   []freeInterval
	blocks []*CMapBlock // live blocks, in allocation order
	logger *debug.Logger
}

type freeInterval struct {
	start, length int
}

// subRect is one physical placement within a block: tiles
// [srcTileOffset, srcTileOffset+tileCount) in the block's row-major tile
// order are stored contiguously starting at baseFlatIndex, slotsPerTile
// character slots apart.
type subRect struct {
	baseFlatIndex int
	srcTileOffset int
	tileCount     int
}

// CMapBlock is one logical rectangular reservation returned by Alloc. It
// remains valid until Free is called, after which any further use is a
// programming error (detected via the freed flag).
type CMapBlock struct {
	cmap          *CMap
	depth         int
	width, height int // in tiles
	tileW, tileH  int // pixels per tile
	slotsPerTile  int
	placement     []subRect
	data          []byte // caller-owned pixel data, one palette index byte per pixel
	freed         bool
}

// New creates a CMap over rows [rowOffset, rowOffset+rowCount) of the
// character table based at baseAddr within vram. It fails with OutOfBounds
// if the region would escape VRAM's 64KiB.
func New(vram *ppu.VRAM, logger *debug.Logger, baseAddr uint32, rowOffset, rowCount int) (*CMap, error) {
	regionBytes := uint32(rowCount) * charsPerRow * 16
	if baseAddr+uint32(rowOffset)*charsPerRow*16+regionBytes > 0x10000 {
		return nil, newError(OutOfBounds, "region [%d,%d) at base 0x%04x escapes VRAM", rowOffset, rowOffset+rowCount, baseAddr)
	}

	total := rowCount * charsPerRow
	c := &CMap{
		vram:      vram,
		baseAddr:  baseAddr,
		rowOffset: rowOffset,
		rowCount:  rowCount,
		free:      []freeInterval{{start: 0, length: total}},
		logger:    logger,
	}
	if logger != nil {
		logger.LogCMapf(debug.LogLevelInfo, "created region rows [%d,%d) base=0x%04x (%d slots)", rowOffset, rowOffset+rowCount, baseAddr, total)
	}
	return c, nil
}

// slotsPerTile returns how many contiguous 4-color character slots one
// tw x th tile occupies at color depth d: (tw/8)*(th/8)*(d/2).
func slotsPerTile(depth, tileW, tileH int) (int, error) {
	if depth != 2 && depth != 4 && depth != 8 {
		return 0, newError(InvalidDepth, "depth %d not in {2,4,8}", depth)
	}
	if tileW%8 != 0 || tileH%8 != 0 || tileW <= 0 || tileH <= 0 {
		return 0, newError(InvalidDepth, "tile size %dx%d not a positive multiple of 8", tileW, tileH)
	}
	return (tileW / 8) * (tileH / 8) * (depth / 2), nil
}

// Alloc reserves a w x h (in tiles, each tileW x tileH pixels) block at
// color depth. It first-fits the existing free list in row-major order;
// failing that, it defragments (repacking all live blocks to the low side
// in allocation order) and retries once before reporting AllocExhausted.
func (c *CMap) Alloc(depth, w, h, tileW, tileH int) (*CMapBlock, error) {
	spt, err := slotsPerTile(depth, tileW, tileH)
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, newError(InvalidDepth, "block dimensions %dx%d tiles must be positive", w, h)
	}
	need := w * h * spt

	if idx := c.firstFit(need); idx >= 0 {
		return c.placeAt(idx, depth, w, h, tileW, tileH, spt), nil
	}

	c.defragment()

	if idx := c.firstFit(need); idx >= 0 {
		return c.placeAt(idx, depth, w, h, tileW, tileH, spt), nil
	}

	if c.logger != nil {
		c.logger.LogCMapf(debug.LogLevelWarning, "alloc exhausted: need %d slots, depth=%d size=%dx%d tile=%dx%d", need, depth, w, h, tileW, tileH)
	}
	return nil, newError(AllocExhausted, "no %d-slot run available after defragmentation", need)
}

// firstFit returns the flat start index of the first free interval with
// at least `need` slots, or -1.
func (c *CMap) firstFit(need int) int {
	for i, f := range c.free {
		if f.length >= need {
			start := f.start
			c.shrinkFree(i, need)
			return start
		}
	}
	return -1
}

// shrinkFree consumes `need` slots from the front of free interval i,
// removing it entirely if it's now empty.
func (c *CMap) shrinkFree(i, need int) {
	c.free[i].start += need
	c.free[i].length -= need
	if c.free[i].length == 0 {
		c.free = append(c.free[:i], c.free[i+1:]...)
	}
}

func (c *CMap) placeAt(flatStart, depth, w, h, tileW, tileH, spt int) *CMapBlock {
	b := &CMapBlock{
		cmap:         c,
		depth:        depth,
		width:        w,
		height:       h,
		tileW:        tileW,
		tileH:        tileH,
		slotsPerTile: spt,
		placement: []subRect{{
			baseFlatIndex: flatStart,
			srcTileOffset: 0,
			tileCount:     w * h,
		}},
	}
	c.blocks = append(c.blocks, b)
	if c.logger != nil {
		c.logger.LogCMapf(debug.LogLevelDebug, "allocated %dx%d tiles (depth=%d) at flat slot %d", w, h, depth, flatStart)
	}
	return b
}

// defragment repacks every live block to the low side of the region, in
// allocation order, collapsing all free space into a single trailing
// interval. A block's GetCharacter results may change across this call.
func (c *CMap) defragment() {
	cursor := 0
	for _, b := range c.blocks {
		total := b.width * b.height * b.slotsPerTile
		b.placement = []subRect{{baseFlatIndex: cursor, srcTileOffset: 0, tileCount: b.width * b.height}}
		cursor += total
	}
	total := c.rowCount * charsPerRow
	c.free = []freeInterval{{start: cursor, length: total - cursor}}
	if c.logger != nil {
		c.logger.LogCMapf(debug.LogLevelInfo, "defragmented: %d live blocks repacked, %d slots free", len(c.blocks), total-cursor)
	}
}

// Free releases block's reserved space back to the free list (coalescing
// with adjacent free intervals) without repacking other live blocks;
// compaction happens lazily on the next Alloc that needs it. Using block
// again after Free is a programming error.
func (c *CMap) Free(block *CMapBlock) error {
	if block == nil || block.cmap != c || block.freed {
		return newError(NoSuchBlock, "block not live in this cmap")
	}

	idx := -1
	for i, b := range c.blocks {
		if b == block {
			idx = i
			break
		}
	}
	if idx < 0 {
		return newError(NoSuchBlock, "block not found in live set")
	}

	for _, sr := range block.placement {
		c.releaseInterval(freeInterval{start: sr.baseFlatIndex, length: sr.tileCount * block.slotsPerTile})
	}
	c.blocks = append(c.blocks[:idx], c.blocks[idx+1:]...)
	block.freed = true
	if c.logger != nil {
		c.logger.LogCMapf(debug.LogLevelDebug, "freed block (%dx%d tiles)", block.width, block.height)
	}
	return nil
}

// releaseInterval inserts a newly-freed interval into the sorted free
// list, merging with neighbors it now touches.
func (c *CMap) releaseInterval(fi freeInterval) {
	insertAt := len(c.free)
	for i, f := range c.free {
		if fi.start < f.start {
			insertAt = i
			break
		}
	}
	merged := make([]freeInterval, 0, len(c.free)+1)
	merged = append(merged, c.free[:insertAt]...)
	merged = append(merged, fi)
	merged = append(merged, c.free[insertAt:]...)

	out := merged[:1]
	for _, f := range merged[1:] {
		last := &out[len(out)-1]
		if last.start+last.length == f.start {
			last.length += f.length
		} else {
			out = append(out, f)
		}
	}
	c.free = out
}

// Commit writes every live block's pixel data into VRAM, bit-planed
// according to each block's color depth, at its current physical
// placement.
func (c *CMap) Commit() {
	for _, b := range c.blocks {
		if b.data == nil {
			continue
		}
		b.writeInto(c.vram, c.baseAddr, c.rowOffset)
	}
	if c.logger != nil {
		c.logger.LogCMapf(debug.LogLevelDebug, "committed %d blocks", len(c.blocks))
	}
}

// SetCharacters stores a pointer to caller-owned pixel data: one palette
// index byte per pixel, row-major over the block's full width*tileW by
// height*tileH pixel area. Commit consumes this buffer.
func (b *CMapBlock) SetCharacters(data []byte) error {
	if b.freed {
		return newError(NoSuchBlock, "block is freed")
	}
	b.data = data
	return nil
}

// GetCharacter resolves logical tile (x,y) within [0,width)x[0,height) to
// its current physical slot index, iterating the block's sub-rectangles
// to find the one that covers it. The result is in 16-byte (4-color
// character) slot units: multiply by 16 to get a VRAM byte address, or by
// (depth/2) to get the block's own native bit-planed character index.
func (b *CMapBlock) GetCharacter(x, y int) (uint16, error) {
	if b.freed {
		return 0, newError(NoSuchBlock, "block is freed")
	}
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, newError(OutOfBounds, "tile (%d,%d) outside %dx%d block", x, y, b.width, b.height)
	}
	order := y*b.width + x
	for _, sr := range b.placement {
		if order >= sr.srcTileOffset && order < sr.srcTileOffset+sr.tileCount {
			flat := sr.baseFlatIndex + (order-sr.srcTileOffset)*b.slotsPerTile
			return uint16(b.cmap.rowOffset*charsPerRow + flat), nil
		}
	}
	return 0, newError(OutOfBounds, "tile (%d,%d) not covered by any placement", x, y)
}

// writeInto encodes b's source pixel buffer into VRAM at its current
// placement, one sub-char per 8x8 region of a possibly-larger tile, in
// row-major sub-tile order.
func (b *CMapBlock) writeInto(v *ppu.VRAM, baseAddr uint32, rowOffset int) {
	subTilesX := b.tileW / 8
	subTilesY := b.tileH / 8
	pixelsWide := b.width * b.tileW

	for ty := 0; ty < b.height; ty++ {
		for tx := 0; tx < b.width; tx++ {
			charIdx, err := b.GetCharacter(tx, ty)
			if err != nil {
				continue
			}
			flatBase := int(charIdx) - rowOffset*charsPerRow
			for sy := 0; sy < subTilesY; sy++ {
				for sx := 0; sx < subTilesX; sx++ {
					subSlot := (sy*subTilesX + sx) * (b.depth / 2)
					charAddr := baseAddr + uint32(rowOffset*charsPerRow+flatBase+subSlot)*16
					for row := 0; row < 8; row++ {
						for col := 0; col < 8; col++ {
							px := tx*b.tileW + sx*8 + col
							py := ty*b.tileH + sy*8 + row
							value := b.data[py*pixelsWide+px]
							v.WritePixel(charAddr, 0, b.depth, row, col, value)
						}
					}
				}
			}
		}
	}
}
