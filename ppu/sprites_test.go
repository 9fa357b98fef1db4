package ppu

import "testing"

// primeOAM fills primary OAM with n sprites all visible on scanline, each
// 8 pixels tall, at increasing X so later evaluation order is obvious.
func primeOAM(p *PPU, scanline int, n int) {
	for i := 0; i < n; i++ {
		base := i * 4
		p.oam[base+0] = uint8(scanline) // Y
		p.oam[base+1] = uint8(i)        // tile
		p.oam[base+2] = 0               // attr
		p.oam[base+3] = uint8(i * 8)    // X
	}
}

func TestSpriteEvaluationFindsUpToEight(t *testing.T) {
	p := newTestPPU()
	p.mask = maskShowSprites
	primeOAM(p, 10, 8)
	p.scanline = 10

	for p.cycle = 65; p.cycle <= 256; p.cycle++ {
		p.evalSprite()
	}

	if p.eval.count != 8 {
		t.Fatalf("eval.count = %d, want 8", p.eval.count)
	}
	if p.status&statusOverflow != 0 {
		t.Errorf("should not set overflow with exactly 8 sprites in range")
	}
}

func TestSpriteEvaluationSetsOverflowWithNine(t *testing.T) {
	p := newTestPPU()
	p.mask = maskShowSprites
	primeOAM(p, 10, 9)
	p.scanline = 10

	for p.cycle = 65; p.cycle <= 256; p.cycle++ {
		p.evalSprite()
	}

	if p.eval.count != 8 {
		t.Fatalf("eval.count = %d, want 8 (ninth sprite only sets overflow)", p.eval.count)
	}
	if p.status&statusOverflow == 0 {
		t.Errorf("expected sprite overflow to be set with a ninth in-range sprite")
	}
}

func TestSpriteZeroPossibleOnlyWhenSpriteZeroInRange(t *testing.T) {
	p := newTestPPU()
	p.mask = maskShowSprites
	primeOAM(p, 10, 1)
	p.scanline = 10

	for p.cycle = 65; p.cycle <= 256; p.cycle++ {
		p.evalSprite()
	}
	if !p.eval.zeroPossible {
		t.Fatalf("sprite 0 is in range, zeroPossible should be true")
	}

	p2 := newTestPPU()
	p2.mask = maskShowSprites
	p2.oam[0] = 200 // sprite 0 far off this scanline
	p2.oam[4] = 10  // sprite 1 in range
	p2.scanline = 10
	for p2.cycle = 65; p2.cycle <= 256; p2.cycle++ {
		p2.evalSprite()
	}
	if p2.eval.zeroPossible {
		t.Fatalf("sprite 0 is out of range, zeroPossible should be false")
	}
}

func TestReverseBits(t *testing.T) {
	cases := []struct{ in, want uint8 }{
		{0x00, 0x00},
		{0xFF, 0xFF},
		{0x01, 0x80},
		{0x80, 0x01},
		{0b10110000, 0b00001101},
	}
	for _, c := range cases {
		if got := reverseBits(c.in); got != c.want {
			t.Errorf("reverseBits(%#08b) = %#08b, want %#08b", c.in, got, c.want)
		}
	}
}
