package ppu

// busRead and busWrite implement the PPU's own 14-bit address space:
// pattern tables below $2000 go to the cartridge, $2000-$3EFF goes
// through the nametable mirroring resolver, and $3F00-$3FFF is palette RAM.
func (p *PPU) busRead(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return p.cart.PPURead(addr)
	case addr < 0x3F00:
		table, idx := resolveNametable(addr, p.currentMirroring())
		return p.nametable[table][idx]
	default:
		return p.paletteRAM[paletteIndex(addr)] & 0x3F
	}
}

func (p *PPU) busWrite(addr uint16, val uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		p.cart.PPUWrite(addr, val)
	case addr < 0x3F00:
		table, idx := resolveNametable(addr, p.currentMirroring())
		p.nametable[table][idx] = val
	default:
		p.paletteRAM[paletteIndex(addr)] = val & 0x3F
	}
}

// paletteIndex folds the $3F00-$3FFF mirror range down to a 0-31 palette
// RAM index, aliasing sprite-palette background entries $3F10/$14/$18/$1C
// onto their background counterparts $3F00/$04/$08/$0C.
func paletteIndex(addr uint16) uint16 {
	idx := addr & 0x1F
	if idx&0x13 == 0x10 {
		idx &^= 0x10
	}
	return idx
}
