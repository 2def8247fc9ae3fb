package ppu

// OAM is Object Attribute Memory: 128 primary 4-byte sprite entries
// followed by 32 secondary bytes, each packing 2 bits (X9, size-select)
// for 4 sprites.
type OAM [768]byte

const (
	oamPrimaryBytes   = 128 * 4
	oamSecondaryBytes = 32
)

// Sprite is one decoded OAM primary-table entry, with its secondary-table
// bits already folded in.
type Sprite struct {
	X         int16 // 9-bit signed screen X
	Y         uint8
	Character uint8
	NameTable uint8 // 0 or 1: which OBJ character table
	Palette   uint8 // 0-7
	Priority  uint8 // 0-3
	FlipX     bool
	FlipY     bool
	Large     bool // true selects the "large" size from ObjSizeTable
}

// Primary decodes sprite i (0-127) from the primary table, without
// resolving its X9/size bits from the secondary table.
func (o *OAM) Primary(i int) Sprite {
	base := i * 4
	x := o[base]
	y := o[base+1]
	char := o[base+2]
	attr := o[base+3]
	return Sprite{
		X:         int16(x),
		Y:         y,
		Character: char,
		NameTable: attr & 1,
		Palette:   (attr >> 1) & 0x7,
		Priority:  (attr >> 4) & 0x3,
		FlipX:     (attr>>6)&1 != 0,
		FlipY:     (attr>>7)&1 != 0,
	}
}

// secondaryBits returns the (x9, sz) bits for sprite i. The secondary table
// packs 4 sprites per byte, 2 bits each (x9 then size), so sprite i's bits
// live in byte i/4 at bit position (i%4)*2.
func (o *OAM) secondaryBits(i int) (x9, sz bool) {
	group := i / 4
	slot := uint(i % 4)
	b := o[oamPrimaryBytes+group]
	x9 = (b>>(slot*2))&1 != 0
	sz = (b>>(slot*2+1))&1 != 0
	return
}

// Sprite decodes sprite i (0-127) fully, combining primary and secondary
// tables and resolving the 9-bit signed X coordinate.
func (o *OAM) Sprite(i int) Sprite {
	s := o.Primary(i)
	x9, sz := o.secondaryBits(i)
	x9i := int16(0)
	if x9 {
		x9i = 1
	}
	x := int16(s.X) | x9i<<8
	if x >= 256 {
		x -= 512
	}
	s.X = x
	s.Large = sz
	return s
}
