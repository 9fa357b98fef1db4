package ppu

// stepBackground drives the 8-cycle background fetch pipeline and shifter
// advance for scanlines [-1, 239], dots [2, 257] and [321, 337], plus the
// dummy nametable fetches at dots 338 and 340, and the X/Y scroll
// increments and transfers at their fixed dots.
func (p *PPU) stepBackground() {
	inFetchWindow := (p.cycle >= 2 && p.cycle <= 257) || (p.cycle >= 321 && p.cycle <= 337)
	if inFetchWindow {
		if p.renderingEnabled() {
			p.shiftBgShifters()
		}
		switch (p.cycle - 1) % 8 {
		case 0:
			p.loadBgShifters()
			p.bgNextTileID = p.busRead(0x2000 | (p.v.val() & 0x0FFF))
		case 2:
			addr := uint16(0x23C0) |
				uint16(p.v.val()&0x0C00) |
				((p.v.val() >> 4) & 0x38) |
				((p.v.val() >> 2) & 0x07)
			attr := p.busRead(addr)
			if p.v.val()&0x0040 != 0 {
				attr >>= 4
			}
			if p.v.val()&0x0002 != 0 {
				attr >>= 2
			}
			p.bgNextTileAttr = attr & 0x03
		case 4:
			base := uint16(0)
			if p.ctrl&ctrlBgPattern != 0 {
				base = 0x1000
			}
			addr := base + uint16(p.bgNextTileID)*16 + uint16(p.v.fineY())
			p.bgNextTileLSB = p.busRead(addr)
		case 6:
			base := uint16(0)
			if p.ctrl&ctrlBgPattern != 0 {
				base = 0x1000
			}
			addr := base + uint16(p.bgNextTileID)*16 + uint16(p.v.fineY()) + 8
			p.bgNextTileMSB = p.busRead(addr)
		case 7:
			p.incrementScrollX()
		}
	}

	if p.cycle == 256 {
		p.incrementScrollY()
	}
	if p.cycle == 257 {
		p.loadBgShifters()
		p.transferAddressX()
	}
	if p.scanline == -1 && p.cycle >= 280 && p.cycle <= 304 {
		p.transferAddressY()
	}
	if p.cycle == 338 || p.cycle == 340 {
		p.bgNextTileID = p.busRead(0x2000 | (p.v.val() & 0x0FFF))
	}
}

func (p *PPU) shiftBgShifters() {
	p.bgShifterPatternLo <<= 1
	p.bgShifterPatternHi <<= 1
	p.bgShifterAttrLo <<= 1
	p.bgShifterAttrHi <<= 1
}

func (p *PPU) loadBgShifters() {
	p.bgShifterPatternLo = p.bgShifterPatternLo&0xFF00 | uint16(p.bgNextTileLSB)
	p.bgShifterPatternHi = p.bgShifterPatternHi&0xFF00 | uint16(p.bgNextTileMSB)

	var lo, hi uint16
	if p.bgNextTileAttr&0x1 != 0 {
		lo = 0xFF
	}
	if p.bgNextTileAttr&0x2 != 0 {
		hi = 0xFF
	}
	p.bgShifterAttrLo = p.bgShifterAttrLo&0xFF00 | lo
	p.bgShifterAttrHi = p.bgShifterAttrHi&0xFF00 | hi
}

func (p *PPU) incrementScrollX() {
	if !p.renderingEnabled() {
		return
	}
	v := uint16(p.v)
	if v&0x001F == 31 {
		v &^= 0x001F
		v ^= 0x0400
	} else {
		v++
	}
	p.v = loopy(v)
}

func (p *PPU) incrementScrollY() {
	if !p.renderingEnabled() {
		return
	}
	v := uint16(p.v)
	if v&0x7000 != 0x7000 {
		v += 0x1000
	} else {
		v &^= 0x7000
		y := (v & 0x03E0) >> 5
		switch y {
		case 29:
			y = 0
			v ^= 0x0800
		case 31:
			y = 0
		default:
			y++
		}
		v = v&^0x03E0 | y<<5
	}
	p.v = loopy(v)
}

func (p *PPU) transferAddressX() {
	if !p.renderingEnabled() {
		return
	}
	p.v = loopy(uint16(p.v)&^0x041F | uint16(p.t)&0x041F)
}

func (p *PPU) transferAddressY() {
	if !p.renderingEnabled() {
		return
	}
	p.v = loopy(uint16(p.v)&^0x7BE0 | uint16(p.t)&0x7BE0)
}
