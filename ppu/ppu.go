// Package ppu implements a cycle-accurate model of the NES 2C02 picture
// processing unit: the register file, the dual scroll registers, the
// background fetch pipeline, sprite evaluation, the per-pixel compositor,
// and NMI timing including the odd-frame cycle skip.
package ppu

import "nespu/internal/log"

const (
	ctrlNametableMask  = 0x03
	ctrlIncrement32    = 0x04
	ctrlSpritePattern  = 0x08
	ctrlBgPattern      = 0x10
	ctrlSpriteSize8x16 = 0x20
	ctrlNMIEnable      = 0x80

	maskGreyscale      = 0x01
	maskShowBgLeft     = 0x02
	maskShowSpriteLeft = 0x04
	maskShowBg         = 0x08
	maskShowSprites    = 0x10

	statusOverflow = 0x20
	statusSprite0  = 0x40
	statusVblank   = 0x80
)

// spriteSlot is one entry of either the secondary-OAM evaluation buffer or
// the active per-scanline sprite state. In the active array the X field
// doubles as the horizontal delay counter once sprites start shifting.
type spriteSlot struct {
	Y, Tile, Attr, X uint8
}

// evalState is the dot-by-dot secondary OAM evaluation state machine,
// including the hardware overflow-bug diagonal scan.
type evalState struct {
	slots        [8]spriteSlot
	count        int
	zeroPossible bool
	n, m         uint8
	readLatch    uint8
	overflowMode bool
	done         bool
}

// spriteUnit is the active per-scanline sprite state: the 8 slots copied
// from evaluation at dot 257, their pattern shifters, and sprite-zero
// bookkeeping for the compositor.
type spriteUnit struct {
	slots             [8]spriteSlot
	shifterLo         [8]uint8
	shifterHi         [8]uint8
	count             int
	zeroHitPossible   bool
	zeroBeingRendered bool
}

// PPU is the full state of one 2C02 instance: persistent memory, the CPU-
// visible register file, the background/sprite pipeline state, and the
// frame-timing counters.
type PPU struct {
	cart Cartridge

	cachedMirroring  Mirroring
	dynamicMirroring bool

	nametable  [4][1024]byte
	paletteRAM [32]uint8
	oam        [256]uint8

	ctrl, mask, status uint8
	oamAddr            uint8

	v, t         loopy
	fineX        uint8
	addressLatch bool
	dataBuffer   uint8

	bgNextTileID   uint8
	bgNextTileAttr uint8
	bgNextTileLSB  uint8
	bgNextTileMSB  uint8

	bgShifterPatternLo uint16
	bgShifterPatternHi uint16
	bgShifterAttrLo    uint16
	bgShifterAttrHi    uint16

	eval   evalState
	sprite spriteUnit

	scanline      int
	cycle         int
	oddFrame      bool
	oddSkipLatch  bool
	frameComplete bool

	nmiOccurred bool
	nmiOutput   bool
	nmiPrevious bool
	nmiDelay    int
	nmiHold     int
	nmi         bool
	suppressVbl bool
	suppressNmi bool

	frame [256 * 240 * 3]uint8
}

// NewPPU constructs a PPU wired to cart and immediately resets it.
func NewPPU(cart Cartridge) *PPU {
	p := &PPU{cart: cart}
	p.Reset()
	return p
}

// Reset restores power-up state: palette RAM is seeded from PowerUpPalette,
// OAM and nametables are cleared, timing counters start at the pre-render
// line, and the cartridge's mirroring mode is queried once.
func (p *PPU) Reset() {
	p.paletteRAM = PowerUpPalette
	p.oam = [256]uint8{}
	for i := range p.nametable {
		p.nametable[i] = [1024]byte{}
	}

	p.ctrl, p.mask, p.status = 0, 0, 0
	p.oamAddr = 0
	p.v, p.t = 0, 0
	p.fineX = 0
	p.addressLatch = false
	p.dataBuffer = 0

	p.bgNextTileID, p.bgNextTileAttr, p.bgNextTileLSB, p.bgNextTileMSB = 0, 0, 0, 0
	p.bgShifterPatternLo, p.bgShifterPatternHi = 0, 0
	p.bgShifterAttrLo, p.bgShifterAttrHi = 0, 0

	p.eval = evalState{}
	p.sprite = spriteUnit{}

	p.scanline, p.cycle = -1, 0
	p.oddFrame, p.oddSkipLatch, p.frameComplete = false, false, false

	p.nmiOccurred, p.nmiOutput, p.nmiPrevious = false, false, false
	p.nmiDelay, p.nmiHold = 0, 0
	p.nmi, p.suppressVbl, p.suppressNmi = false, false, false

	if p.cart != nil {
		mm := p.cart.MirrorMode()
		p.dynamicMirroring = mm.Dynamic
		p.cachedMirroring = mm.Mirroring
		log.ModPPU.WithField("mirroring", mm.Mirroring.String()).Debug("ppu reset")
	}
}

// ConsumeFrame reports whether a full frame has been produced since the
// last call to ConsumeFrame, and clears the flag.
func (p *PPU) ConsumeFrame() bool {
	if p.frameComplete {
		p.frameComplete = false
		return true
	}
	return false
}

// Frame returns the current RGB888 framebuffer, row-major, 256x240.
func (p *PPU) Frame() []uint8 { return p.frame[:] }

func (p *PPU) renderingEnabled() bool {
	return p.mask&(maskShowBg|maskShowSprites) != 0
}

func (p *PPU) currentMirroring() Mirroring {
	if p.dynamicMirroring && p.cart != nil {
		p.cachedMirroring = p.cart.MirrorMode().Mirroring
	}
	return p.cachedMirroring
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func reverseBits(b uint8) uint8 {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}
