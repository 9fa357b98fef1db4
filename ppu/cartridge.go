package ppu

// Cartridge is the mapper-facing contract the PPU talks to for pattern-table
// reads/writes and for nametable mirroring. It is the capability set a
// mapper must expose: PPU-bus access below $2000, a mirroring mode (static
// or re-queried per access), and a per-scanline clock tap for mappers that
// count PPU scanlines to generate IRQs (e.g. MMC3-style mappers).
type Cartridge interface {
	PPURead(addr uint16) uint8
	PPUWrite(addr uint16, val uint8)
	MirrorMode() MirrorMode
	ClockScanline()
}

// MirrorMode reports a cartridge's current nametable mirroring. Dynamic
// mappers (those whose mirroring can change at runtime, e.g. via a bank
// register) set Dynamic true; the PPU then re-queries MirrorMode() on every
// nametable access instead of caching the value from reset. This replaces
// the "mirroring() returns a sentinel for static mappers" convention with
// an explicit variant, which is the idiomatic Go shape for "this may change
// later, ask again."
type MirrorMode struct {
	Dynamic   bool
	Mirroring Mirroring
}

// StaticMirror is a convenience constructor for mappers whose mirroring is
// fixed for the cartridge's lifetime (the common case: NROM, UxROM, CNROM).
func StaticMirror(m Mirroring) MirrorMode {
	return MirrorMode{Mirroring: m}
}
