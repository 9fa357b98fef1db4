package ppu

// Clock advances the PPU by one dot. NMI counters update first, then the
// pre-render clears, the background and sprite pipelines run across
// scanlines [-1, 239], vblank/NMI arm at
// (241, 1), the compositor writes a pixel, the cartridge's scanline tap
// fires, and finally the odd-frame skip collapses (-1, 339) straight into
// (0, 0) on odd frames when rendering was enabled at (-1, 338).
func (p *PPU) Clock() {
	p.tickNMI()

	if p.scanline == -1 && p.cycle == 1 {
		p.status &^= (statusVblank | statusSprite0 | statusOverflow)
		p.nmiOccurred = false
		p.suppressNmi = false
		p.nmiChange()
		p.sprite.shifterLo = [8]uint8{}
		p.sprite.shifterHi = [8]uint8{}
	}

	if p.scanline >= -1 && p.scanline <= 239 {
		p.stepBackground()
		p.evalSprite()
		if p.scanline >= 0 && p.cycle == 257 && p.renderingEnabled() {
			p.copyEvalToActive()
		}
		if p.scanline >= 0 && p.cycle == 340 && p.renderingEnabled() {
			p.fetchSpritePatterns()
		}
		p.advanceSpriteShifters()
	}

	if p.scanline == 241 && p.cycle == 1 {
		if !p.suppressVbl {
			p.setVblank(true)
		}
		p.suppressVbl = false
		if p.suppressNmi {
			p.nmi, p.nmiDelay, p.nmiHold = false, 0, 0
		}
		p.suppressNmi = false
	}

	if p.scanline >= 0 && p.scanline <= 239 && p.cycle >= 1 && p.cycle <= 256 {
		p.compositePixel()
	}

	if p.renderingEnabled() && p.cart != nil && p.cycle == 260 && p.scanline >= 0 && p.scanline <= 239 {
		p.cart.ClockScanline()
	}

	if p.scanline == -1 && p.cycle == 338 {
		p.oddSkipLatch = p.renderingEnabled()
	}
	if p.scanline == -1 && p.cycle == 339 && p.oddFrame && p.oddSkipLatch {
		p.scanline, p.cycle = 0, 0
		return
	}

	p.cycle++
	if p.cycle > 340 {
		p.cycle = 0
		p.scanline++
		if p.scanline > 260 {
			p.scanline = -1
			p.frameComplete = true
			p.oddFrame = !p.oddFrame
		}
	}
}
