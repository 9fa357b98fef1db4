package ppu

// fakeCartridge is a minimal CHR-RAM cartridge used across this package's
// tests: 8KiB of pattern RAM, mirroring that is static unless dynamic is
// set, and a scanline counter but no IRQ.
type fakeCartridge struct {
	chr       [0x2000]uint8
	mirroring Mirroring
	dynamic   bool
	scanlines int
}

func newFakeCartridge(m Mirroring) *fakeCartridge {
	return &fakeCartridge{mirroring: m}
}

func (c *fakeCartridge) PPURead(addr uint16) uint8 { return c.chr[addr&0x1FFF] }
func (c *fakeCartridge) PPUWrite(addr uint16, val uint8) { c.chr[addr&0x1FFF] = val }
func (c *fakeCartridge) MirrorMode() MirrorMode {
	return MirrorMode{Dynamic: c.dynamic, Mirroring: c.mirroring}
}
func (c *fakeCartridge) ClockScanline() { c.scanlines++ }
