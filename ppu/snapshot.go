package ppu

import "nespu/internal/snapshot"

// Export copies the PPU's memories, register file, background pipeline,
// active sprite line and NMI/timing state into a snapshot.State, suitable
// for JSON serialization via internal/snapshot.Encode. The secondary-OAM
// evaluation state, the per-dot sprite-zero-rendered flag, the framebuffer
// and the cached mirroring mode are not included.
func (p *PPU) Export() snapshot.State {
	var s snapshot.State
	s.Palette = p.paletteRAM
	s.OAM = p.oam
	s.Nametable = p.nametable

	s.Ctrl, s.Mask, s.Status = p.ctrl, p.mask, p.status
	s.OAMAddr = p.oamAddr
	s.V, s.T = p.v.val(), p.t.val()
	s.FineX = p.fineX
	s.AddressLatch = p.addressLatch
	s.DataBuffer = p.dataBuffer

	s.BgNextTileID = p.bgNextTileID
	s.BgNextTileAttr = p.bgNextTileAttr
	s.BgNextTileLSB = p.bgNextTileLSB
	s.BgNextTileMSB = p.bgNextTileMSB
	s.BgShifterPatternLo = p.bgShifterPatternLo
	s.BgShifterPatternHi = p.bgShifterPatternHi
	s.BgShifterAttrLo = p.bgShifterAttrLo
	s.BgShifterAttrHi = p.bgShifterAttrHi

	for i, slot := range p.sprite.slots {
		s.SpriteSlots[i] = snapshot.Sprite{Y: slot.Y, Tile: slot.Tile, Attr: slot.Attr, X: slot.X}
	}
	s.SpriteShifterLo = p.sprite.shifterLo
	s.SpriteShifterHi = p.sprite.shifterHi
	s.SpriteCount = p.sprite.count
	s.SpriteZeroHitPossible = p.sprite.zeroHitPossible

	s.Scanline, s.Cycle = p.scanline, p.cycle
	s.OddFrame, s.OddSkipLatch = p.oddFrame, p.oddSkipLatch
	s.FrameComplete = p.frameComplete

	s.NMIOccurred, s.NMIOutput, s.NMIPrevious = p.nmiOccurred, p.nmiOutput, p.nmiPrevious
	s.NMIDelay, s.NMIHold, s.NMI = p.nmiDelay, p.nmiHold, p.nmi
	s.SuppressVbl, s.SuppressNmi = p.suppressVbl, p.suppressNmi

	return s
}

// Import restores state previously produced by Export. The cartridge
// reference and its mirroring mode are left untouched: a snapshot does not
// carry cartridge state, which is the host's responsibility.
func (p *PPU) Import(s snapshot.State) {
	p.paletteRAM = s.Palette
	p.oam = s.OAM
	p.nametable = s.Nametable

	p.ctrl, p.mask, p.status = s.Ctrl, s.Mask, s.Status
	p.oamAddr = s.OAMAddr
	p.v, p.t = loopy(s.V), loopy(s.T)
	p.fineX = s.FineX
	p.addressLatch = s.AddressLatch
	p.dataBuffer = s.DataBuffer

	p.bgNextTileID = s.BgNextTileID
	p.bgNextTileAttr = s.BgNextTileAttr
	p.bgNextTileLSB = s.BgNextTileLSB
	p.bgNextTileMSB = s.BgNextTileMSB
	p.bgShifterPatternLo = s.BgShifterPatternLo
	p.bgShifterPatternHi = s.BgShifterPatternHi
	p.bgShifterAttrLo = s.BgShifterAttrLo
	p.bgShifterAttrHi = s.BgShifterAttrHi

	for i, slot := range s.SpriteSlots {
		p.sprite.slots[i] = spriteSlot{Y: slot.Y, Tile: slot.Tile, Attr: slot.Attr, X: slot.X}
	}
	p.sprite.shifterLo = s.SpriteShifterLo
	p.sprite.shifterHi = s.SpriteShifterHi
	p.sprite.count = s.SpriteCount
	p.sprite.zeroHitPossible = s.SpriteZeroHitPossible

	p.scanline, p.cycle = s.Scanline, s.Cycle
	p.oddFrame, p.oddSkipLatch = s.OddFrame, s.OddSkipLatch
	p.frameComplete = s.FrameComplete

	p.nmiOccurred, p.nmiOutput, p.nmiPrevious = s.NMIOccurred, s.NMIOutput, s.NMIPrevious
	p.nmiDelay, p.nmiHold, p.nmi = s.NMIDelay, s.NMIHold, s.NMI
	p.suppressVbl, p.suppressNmi = s.SuppressVbl, s.SuppressNmi
}
