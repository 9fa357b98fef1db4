// Command ppudump clocks a cycle-accurate PPU against a ROM's CHR data and
// a synthetic nametable, with no CPU instruction stream driving it, and
// dumps the resulting frames as PPM images plus a JSON state snapshot.
//
// This is demonstration tooling for the ppu package, not a NES emulator:
// it exists to exercise ppu.PPU end to end the way a real host would.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"nespu/ines"
	"nespu/internal/log"
	"nespu/internal/snapshot"
	"nespu/ppu"
)

var cliVars = kong.Vars{
	"version": "0.1.0",
}

type CLI struct {
	Rom    string `arg:"" help:"Path to an iNES (.nes) ROM."`
	Config string `help:"Path to a ppudump config.toml." default:""`
	Frames int    `help:"Number of frames to render." default:"0"`
	Out    string `help:"Output directory for frames and the snapshot." default:""`

	Version kong.VersionFlag `help:"Print version and exit." vars:"version"`
}

func parseArgs(args []string) CLI {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("ppudump"),
		kong.Description("Clock a cycle-accurate NES PPU against a ROM and dump frames."),
		kong.UsageOnError(),
		cliVars,
	)
	if err != nil {
		log.ModEmu.Fatalf("building CLI parser: %v", err)
	}
	if _, err := parser.Parse(args); err != nil {
		parser.FatalIfErrorf(err)
	}
	return cli
}

func main() {
	cli := parseArgs(os.Args[1:])
	cfg := LoadConfigOrDefault(cli.Config)
	if cli.Out != "" {
		cfg.OutDir = cli.Out
	}
	if cli.Frames > 0 {
		cfg.Frames = cli.Frames
	}

	rom, err := ines.Open(cli.Rom)
	if err != nil {
		log.ModEmu.Fatalf("opening rom: %v", err)
	}

	cart := newNROMCartridge(rom)
	p := ppu.NewPPU(cart)
	seedCheckerboardPattern(cart)
	seedCheckerboardNametable(p)
	p.CPUWrite(1, 0x1E) // enable background + sprites, show both in the left column

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		log.ModEmu.Fatalf("creating output directory: %v", err)
	}

	for frame := 0; frame < cfg.Frames; frame++ {
		for !p.ConsumeFrame() {
			p.Clock()
		}
		if err := writePPM(filepath.Join(cfg.OutDir, fmt.Sprintf("frame%03d.ppm", frame)), p.Frame()); err != nil {
			log.ModEmu.Fatalf("writing frame %d: %v", frame, err)
		}
	}

	snapPath := filepath.Join(cfg.OutDir, "snapshot.json")
	f, err := os.Create(snapPath)
	if err != nil {
		log.ModEmu.Fatalf("creating snapshot file: %v", err)
	}
	defer f.Close()
	if err := snapshot.Encode(f, p.Export()); err != nil {
		log.ModEmu.Fatalf("encoding snapshot: %v", err)
	}

	log.ModEmu.WithField("frames", cfg.Frames).Info("done")
}

// seedCheckerboardPattern writes two pattern-table tiles (solid on, solid
// off) directly into the cartridge's CHR, bypassing the PPU bus: going
// through $2007 would silently no-op on CHR-ROM cartridges, since PPUWRITE
// below $2000 is the mapper's call, not the PPU's.
func seedCheckerboardPattern(cart *nromCartridge) {
	cart.chrIsRAM = true
	if len(cart.chr) < 32 {
		cart.chr = make([]byte, 0x2000)
	}
	for row := 0; row < 8; row++ {
		cart.chr[row] = 0xFF // tile 0: solid lit low bitplane
		cart.chr[row+8] = 0  // tile 0: empty high bitplane
		cart.chr[16+row] = 0 // tile 1: both bitplanes empty
		cart.chr[24+row] = 0
	}
}

// seedCheckerboardNametable gives the demo harness something visible to
// render: a checkerboard of the two pattern-table tiles, since there is no
// CPU here to have a real game write one.
func seedCheckerboardNametable(p *ppu.PPU) {
	p.CPUWrite(0, 0) // nametable 0, background pattern table 0

	for row := 0; row < 30; row++ {
		for col := 0; col < 32; col++ {
			addr := uint16(0x2000 + row*32 + col)
			tile := uint8(0)
			if (row+col)%2 == 0 {
				tile = 1
			}
			p.CPUWrite(6, uint8(addr>>8))
			p.CPUWrite(6, uint8(addr))
			p.CPUWrite(7, tile)
		}
	}
}

func writePPM(path string, rgb []uint8) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "P6\n256 240\n255\n")
	buf.Write(rgb)
	return os.WriteFile(path, buf.Bytes(), 0644)
}
