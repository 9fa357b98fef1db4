package ppu

// Mirroring selects how the four logical 1KiB nametables are mapped onto
// the PPU's two physical 1KiB nametable RAMs.
type Mirroring uint8

const (
	Horizontal Mirroring = iota
	Vertical
	Single0
	Single1
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Single0:
		return "single0"
	case Single1:
		return "single1"
	case FourScreen:
		return "four-screen"
	default:
		return "unknown"
	}
}

// resolveNametable maps a $2000-$3EFF bus address to a physical nametable
// index (0-3, or up to 0-1 for the two-table mirrorings) and an offset
// within that table. addr is reduced modulo $1000 first, since the
// $2000-$3EFF window repeats every 4KiB.
func resolveNametable(addr uint16, mode Mirroring) (table int, index int) {
	m := addr & 0x0FFF
	t := int((m >> 10) & 0x3)
	index = int(m & 0x3FF)

	switch mode {
	case Horizontal:
		table = t >> 1
	case Vertical:
		table = t & 1
	case Single0:
		table = 0
	case Single1:
		table = 1
	case FourScreen:
		table = t
	default:
		table = t & 1
	}
	return table, index
}
