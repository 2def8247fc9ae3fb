package ppu

// priSlot is one entry in a mode's front-to-back compositing order: either
// an OBJ priority level, or one BG at a given tile-priority bit.
type priSlot struct {
	isOBJ        bool
	objPriority  uint8 // valid when isOBJ
	bg           int   // 0-3, valid when !isOBJ
	priorityHigh bool  // valid when !isOBJ
}

func objSlot(p uint8) priSlot        { return priSlot{isOBJ: true, objPriority: p} }
func bgSlot(bg int, hi bool) priSlot { return priSlot{bg: bg, priorityHigh: hi} }

// priorityOrder returns the front-to-back compositing order for the
// active BG mode, per the table in libsnes's snes.h bgMode comment:
//
//	Mode     BG depth  OPT  Priorities (front -> back)
//	0        2 2 2 2    n   3AB2ab1CD0cd
//	1        4 4 2      n   3AB2ab1C 0c   (3AB2ab1C0c w/ m1bg3pri unset)
//	1+pri                                 C3AB2ab1 0c (m1bg3pri set)
//	2        4 4        y   3A 2B 1a 0b
//	3        8 4        n   3A 2B 1a 0b
//	4        8 2        y   3A 2B 1a 0b
//	5        4 2        n   3A 2B 1a 0b
//	6        4          y   3A 2  1a 0
//	7        8          n   3 2 1a 0
//	7+EXTBG  8 7        n   3 2B 1a 0b
func priorityOrder(bgMode BGModeReg, mode7EXTBG bool) []priSlot {
	switch bgMode.Mode {
	case 0:
		return []priSlot{
			objSlot(3), bgSlot(0, true), bgSlot(1, true),
			objSlot(2), bgSlot(0, false), bgSlot(1, false),
			objSlot(1), bgSlot(2, true), bgSlot(3, true),
			objSlot(0), bgSlot(2, false), bgSlot(3, false),
		}
	case 1:
		if bgMode.M1BG3Pri {
			return []priSlot{
				bgSlot(2, true),
				objSlot(3), bgSlot(0, true), bgSlot(1, true),
				objSlot(2), bgSlot(0, false), bgSlot(1, false),
				objSlot(1),
				objSlot(0), bgSlot(2, false),
			}
		}
		return []priSlot{
			objSlot(3), bgSlot(0, true), bgSlot(1, true),
			objSlot(2), bgSlot(0, false), bgSlot(1, false),
			objSlot(1), bgSlot(2, true),
			objSlot(0), bgSlot(2, false),
		}
	case 2, 3, 4, 5:
		return []priSlot{
			objSlot(3), bgSlot(0, true),
			objSlot(2), bgSlot(1, true),
			objSlot(1), bgSlot(0, false),
			objSlot(0), bgSlot(1, false),
		}
	case 6:
		return []priSlot{
			objSlot(3), bgSlot(0, true),
			objSlot(2),
			objSlot(1), bgSlot(0, false),
			objSlot(0),
		}
	case 7:
		if mode7EXTBG {
			return []priSlot{
				objSlot(3),
				objSlot(2), bgSlot(1, true),
				objSlot(1), bgSlot(0, false),
				objSlot(0), bgSlot(1, false),
			}
		}
		return []priSlot{
			objSlot(3),
			objSlot(2),
			objSlot(1), bgSlot(0, false),
			objSlot(0),
		}
	default:
		return nil
	}
}
