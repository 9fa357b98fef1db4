package main

import (
	"nespu/ines"
	"nespu/internal/log"
	"nespu/ppu"
)

// nromCartridge is a minimal mapper-0 (NROM) ppu.Cartridge: CHR ROM if the
// cartridge shipped any, otherwise 8KiB of CHR RAM, with static mirroring
// taken from the iNES header.
type nromCartridge struct {
	chr       []byte
	chrIsRAM  bool
	mirroring ppu.Mirroring
}

func newNROMCartridge(rom *ines.Rom) *nromCartridge {
	c := &nromCartridge{mirroring: rom.Mirroring()}
	if len(rom.CHR) > 0 {
		c.chr = rom.CHR
	} else {
		c.chr = make([]byte, 0x2000)
		c.chrIsRAM = true
	}
	log.ModCart.WithFields(log.Fields{
		"chrIsRAM":  c.chrIsRAM,
		"chrSize":   len(c.chr),
		"mirroring": c.mirroring.String(),
	}).Debug("nrom cartridge loaded")
	return c
}

func (c *nromCartridge) PPURead(addr uint16) uint8 {
	if int(addr) >= len(c.chr) {
		return 0
	}
	return c.chr[addr]
}

func (c *nromCartridge) PPUWrite(addr uint16, val uint8) {
	if !c.chrIsRAM || int(addr) >= len(c.chr) {
		return
	}
	c.chr[addr] = val
}

func (c *nromCartridge) MirrorMode() ppu.MirrorMode { return ppu.StaticMirror(c.mirroring) }

func (c *nromCartridge) ClockScanline() {}
