package ppu

// nmiChange recomputes the NMI line (nmi_output && nmi_occurred) whenever
// either input changes, and arms the delay/hold counters on a rising edge.
func (p *PPU) nmiChange() {
	line := p.nmiOutput && p.nmiOccurred
	if line && !p.nmiPrevious {
		p.nmiDelay = 14
		p.nmiHold = 2
	}
	p.nmiPrevious = line
}

// tickNMI advances the delay/hold counters by one PPU cycle. Called at the
// top of every Clock(), before any other state changes for that dot.
func (p *PPU) tickNMI() {
	if p.nmiDelay <= 0 {
		return
	}
	line := p.nmiOutput && p.nmiOccurred
	if p.nmiHold > 0 {
		if line {
			p.nmiHold--
		} else {
			p.nmiDelay, p.nmiHold = 0, 0
		}
	}
	if p.nmiDelay == 0 {
		p.nmi = false
		return
	}
	p.nmiDelay--
	if p.nmiDelay == 0 {
		p.nmi = true
	}
}

func (p *PPU) setVblank(v bool) {
	if v {
		p.status |= statusVblank
	} else {
		p.status &^= statusVblank
	}
	p.nmiOccurred = v
	p.nmiChange()
}
