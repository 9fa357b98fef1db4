// Package snapshot holds a flat, JSON-encodable copy of a PPU's internal
// state (memories, registers, background pipeline, active sprite line and
// NMI/timing counters), for save-states and test fixtures. It carries no
// secondary-OAM evaluation state and no framebuffer.
package snapshot

type Sprite struct {
	Y, Tile, Attr, X uint8
}

type State struct {
	Palette   [32]uint8
	OAM       [256]uint8
	Nametable [4][1024]byte

	Ctrl, Mask, Status uint8
	OAMAddr            uint8
	V, T               uint16
	FineX              uint8
	AddressLatch       bool
	DataBuffer         uint8

	BgNextTileID   uint8
	BgNextTileAttr uint8
	BgNextTileLSB  uint8
	BgNextTileMSB  uint8

	BgShifterPatternLo uint16
	BgShifterPatternHi uint16
	BgShifterAttrLo    uint16
	BgShifterAttrHi    uint16

	SpriteSlots           [8]Sprite
	SpriteShifterLo       [8]uint8
	SpriteShifterHi       [8]uint8
	SpriteCount           int
	SpriteZeroHitPossible bool

	Scanline      int
	Cycle         int
	OddFrame      bool
	OddSkipLatch  bool
	FrameComplete bool

	NMIOccurred bool
	NMIOutput   bool
	NMIPrevious bool
	NMIDelay    int
	NMIHold     int
	NMI         bool
	SuppressVbl bool
	SuppressNmi bool
}
