package ppu

import "testing"

// opaqueScene fills pattern-table tile 1 with a solid low bitplane and
// covers nametable 0 with it, so every background pixel is non-zero.
func opaqueScene(p *PPU) {
	cart := p.cart.(*fakeCartridge)
	for row := 0; row < 8; row++ {
		cart.chr[16+row] = 0xFF
	}
	for i := 0; i < 960; i++ {
		p.nametable[0][i] = 1
	}
}

func TestSpriteZeroHit(t *testing.T) {
	p := newTestPPU()
	opaqueScene(p)
	p.oam[0] = 0 // y: evaluated on scanline 0, rendered on scanline 1
	p.oam[1] = 1 // tile
	p.oam[2] = 0 // attr
	p.oam[3] = 8 // x
	p.mask = maskShowBg | maskShowSprites | maskShowBgLeft | maskShowSpriteLeft

	runUntil(t, p, 1, 9)
	if p.status&statusSprite0 != 0 {
		t.Fatalf("sprite-zero hit set before the first overlapped dot")
	}
	p.Clock() // (1, 9): sprite pixel x=8 over an opaque background
	if p.status&statusSprite0 == 0 {
		t.Fatalf("sprite-zero hit not set at (1, 9)")
	}

	runUntil(t, p, -1, 2)
	if p.status&statusSprite0 != 0 {
		t.Errorf("sprite-zero hit should clear at the pre-render line")
	}
}

func TestSpriteZeroHitClippedInLeftColumn(t *testing.T) {
	p := newTestPPU()
	opaqueScene(p)
	p.oam[0] = 0
	p.oam[1] = 1
	p.oam[2] = 0
	p.oam[3] = 0 // entirely within the left 8 pixels
	p.mask = maskShowBg | maskShowSprites | maskShowBgLeft // sprite-left clipping on

	runUntil(t, p, 1, 9)
	if p.status&statusSprite0 != 0 {
		t.Errorf("sprite-zero hit must not fire while left-column clipping applies")
	}
}

func TestSpritePriorityBehindBackground(t *testing.T) {
	p := newTestPPU()
	opaqueScene(p)
	p.paletteRAM[0x01] = 0x15 // background palette 0, pixel 1
	p.paletteRAM[0x11] = 0x2A // sprite palette 4, pixel 1
	p.oam[0] = 0
	p.oam[1] = 1
	p.oam[2] = 0x20 // behind-background priority
	p.oam[3] = 0
	p.mask = maskShowBg | maskShowSprites | maskShowBgLeft | maskShowSpriteLeft

	for !p.ConsumeFrame() {
		p.Clock()
	}

	off := (1*256 + 0) * 3
	want := NESRGBPalette[0x15]
	if p.frame[off] != want[0] || p.frame[off+1] != want[1] || p.frame[off+2] != want[2] {
		t.Errorf("pixel (0,1) = %v, want background colour %v", p.frame[off:off+3], want)
	}
}

func TestSpritePriorityInFrontOfBackground(t *testing.T) {
	p := newTestPPU()
	opaqueScene(p)
	p.paletteRAM[0x01] = 0x15
	p.paletteRAM[0x11] = 0x2A
	p.oam[0] = 0
	p.oam[1] = 1
	p.oam[2] = 0 // in front
	p.oam[3] = 0
	p.mask = maskShowBg | maskShowSprites | maskShowBgLeft | maskShowSpriteLeft

	for !p.ConsumeFrame() {
		p.Clock()
	}

	off := (1*256 + 0) * 3
	want := NESRGBPalette[0x2A]
	if p.frame[off] != want[0] || p.frame[off+1] != want[1] || p.frame[off+2] != want[2] {
		t.Errorf("pixel (0,1) = %v, want sprite colour %v", p.frame[off:off+3], want)
	}
}
