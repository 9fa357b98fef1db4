package ppu

import "nespu/internal/log"

func (p *PPU) spriteHeight() int {
	if p.ctrl&ctrlSpriteSize8x16 != 0 {
		return 16
	}
	return 8
}

// evalSprite runs one dot of the secondary-OAM evaluation state machine:
// an odd dot reads one primary-OAM byte, the following even dot
// decides what to do with it. overflowMode reproduces the hardware's
// diagonal-scan overflow bug rather than a plain 9th-sprite check.
func (p *PPU) evalSprite() {
	if p.scanline < 0 || p.scanline > 239 {
		return
	}
	if p.cycle < 65 || p.cycle > 256 {
		return
	}
	if !p.renderingEnabled() {
		return
	}
	if p.cycle == 65 {
		p.eval = evalState{}
	}
	if p.eval.done {
		return
	}

	addr := (uint16(p.eval.n)*4 + uint16(p.eval.m)) & 0xFF
	if p.cycle%2 == 1 {
		p.eval.readLatch = p.oam[addr]
		return
	}

	height := p.spriteHeight()

	if !p.eval.overflowMode {
		switch p.eval.m {
		case 0:
			y := p.eval.readLatch
			diff := int(p.scanline) - int(y)
			if diff >= 0 && diff < height {
				if p.eval.count < 8 {
					p.eval.slots[p.eval.count].Y = y
					if p.eval.n == 0 {
						p.eval.zeroPossible = true
					}
					p.eval.m = 1
				} else {
					p.eval.overflowMode = true
				}
			} else {
				p.eval.n++
				if p.eval.n == 64 {
					p.eval.done = true
				}
			}
		default:
			switch p.eval.m {
			case 1:
				p.eval.slots[p.eval.count].Tile = p.eval.readLatch
			case 2:
				p.eval.slots[p.eval.count].Attr = p.eval.readLatch
			case 3:
				p.eval.slots[p.eval.count].X = p.eval.readLatch
			}
			p.eval.m++
			if p.eval.m == 4 {
				p.eval.m = 0
				p.eval.n++
				p.eval.count++
				if p.eval.count == 8 {
					p.eval.overflowMode = true
				}
				if p.eval.n == 64 {
					p.eval.done = true
				}
			}
		}
	} else {
		y := p.eval.readLatch
		diff := int(p.scanline) - int(y)
		if diff >= 0 && diff < height {
			p.status |= statusOverflow
			p.eval.done = true
		} else {
			// Reproduces the hardware bug: m wraps modulo 4 but n does not
			// reset alongside it, so the scan walks diagonally through OAM.
			p.eval.n++
			p.eval.m = (p.eval.m + 1) & 0x3
			if p.eval.n == 64 {
				p.eval.done = true
			}
		}
	}
}

// copyEvalToActive latches secondary OAM into the active sprite unit at
// dot 257, for rendering on the upcoming scanline.
func (p *PPU) copyEvalToActive() {
	p.sprite.slots = p.eval.slots
	p.sprite.count = p.eval.count
	p.sprite.zeroHitPossible = p.eval.zeroPossible
}

// fetchSpritePatterns fetches the pattern bytes for every active slot at
// dot 340, addressing 8x8 or 8x16 sprites per ctrl, and reversing the bit
// order of both bytes when the horizontal-flip attribute bit is set.
func (p *PPU) fetchSpritePatterns() {
	height := p.spriteHeight()

	for i := 0; i < p.sprite.count; i++ {
		slot := p.sprite.slots[i]
		row := p.scanline - int(slot.Y)
		if row < 0 {
			row = 0
		}
		flipV := slot.Attr&0x80 != 0
		if flipV {
			row = height - 1 - row
		}

		var addr uint16
		if height == 8 {
			base := uint16(0)
			if p.ctrl&ctrlSpritePattern != 0 {
				base = 0x1000
			}
			addr = base + uint16(slot.Tile)*16 + uint16(row)
		} else {
			base := uint16(slot.Tile&0x1) * 0x1000
			tile := slot.Tile &^ 0x1
			if row > 7 {
				tile++
				row -= 8
			}
			addr = base + uint16(tile)*16 + uint16(row)
		}

		lo := p.busRead(addr)
		hi := p.busRead(addr + 8)
		if slot.Attr&0x40 != 0 {
			lo = reverseBits(lo)
			hi = reverseBits(hi)
		}
		p.sprite.shifterLo[i] = lo
		p.sprite.shifterHi[i] = hi
	}

	log.ModPPU.WithField("count", p.sprite.count).Debug("sprite patterns fetched")
}

// advanceSpriteShifters decrements each active slot's X-countdown during
// dots [2, 256], or shifts its pattern once the countdown has reached zero.
func (p *PPU) advanceSpriteShifters() {
	if p.scanline < 0 || p.scanline > 239 {
		return
	}
	if p.cycle < 2 || p.cycle > 256 {
		return
	}
	if p.mask&maskShowSprites == 0 {
		return
	}
	for i := 0; i < p.sprite.count; i++ {
		if p.sprite.slots[i].X > 0 {
			p.sprite.slots[i].X--
		} else {
			p.sprite.shifterLo[i] <<= 1
			p.sprite.shifterHi[i] <<= 1
		}
	}
}
