package ppu

// loopy is the 15-bit scroll/VRAM-address register shape shared by v and t:
//
//	0 yyy NN YYYYY XXXXX
//	  |   || |     +---- coarse X (5 bits)
//	  |   || +---------- coarse Y (5 bits)
//	  |   ++------------ nametable select (2 bits)
//	  +------------------ fine Y (3 bits)
//
// Named after the NESdev wiki's "loopy" scroll-register writeup; kept as a
// plain uint16 with read-only accessors rather than a bit-array, since every
// write site already has the exact bitmask it needs to update in place.
type loopy uint16

func (l loopy) coarseX() uint8   { return uint8(l & 0x1F) }
func (l loopy) coarseY() uint8   { return uint8((l >> 5) & 0x1F) }
func (l loopy) nametable() uint8 { return uint8((l >> 10) & 0x3) }
func (l loopy) fineY() uint8     { return uint8((l >> 12) & 0x7) }
func (l loopy) low() uint8       { return uint8(l & 0xFF) }
func (l loopy) high() uint8      { return uint8((l >> 8) & 0x3F) }
func (l loopy) val() uint16      { return uint16(l) }
