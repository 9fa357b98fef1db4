package snapshot

import (
	"io"

	"github.com/go-faster/jx"
)

// Encode writes s to w as JSON using jx's low-level streaming encoder
// rather than encoding/json's reflection-based marshaling.
func Encode(w io.Writer, s State) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	encodeByteArr(e, "palette", s.Palette[:])
	encodeByteArr(e, "oam", s.OAM[:])

	e.FieldStart("nametable")
	e.ArrStart()
	for i := range s.Nametable {
		encodeByteArrInline(e, s.Nametable[i][:])
	}
	e.ArrEnd()

	e.FieldStart("ctrl")
	e.UInt8(s.Ctrl)
	e.FieldStart("mask")
	e.UInt8(s.Mask)
	e.FieldStart("status")
	e.UInt8(s.Status)
	e.FieldStart("oam_addr")
	e.UInt8(s.OAMAddr)
	e.FieldStart("v")
	e.UInt16(s.V)
	e.FieldStart("t")
	e.UInt16(s.T)
	e.FieldStart("fine_x")
	e.UInt8(s.FineX)
	e.FieldStart("address_latch")
	e.Bool(s.AddressLatch)
	e.FieldStart("data_buffer")
	e.UInt8(s.DataBuffer)

	e.FieldStart("bg_next_tile_id")
	e.UInt8(s.BgNextTileID)
	e.FieldStart("bg_next_tile_attr")
	e.UInt8(s.BgNextTileAttr)
	e.FieldStart("bg_next_tile_lsb")
	e.UInt8(s.BgNextTileLSB)
	e.FieldStart("bg_next_tile_msb")
	e.UInt8(s.BgNextTileMSB)
	e.FieldStart("bg_shifter_pattern_lo")
	e.UInt16(s.BgShifterPatternLo)
	e.FieldStart("bg_shifter_pattern_hi")
	e.UInt16(s.BgShifterPatternHi)
	e.FieldStart("bg_shifter_attr_lo")
	e.UInt16(s.BgShifterAttrLo)
	e.FieldStart("bg_shifter_attr_hi")
	e.UInt16(s.BgShifterAttrHi)

	e.FieldStart("sprite_slots")
	e.ArrStart()
	for _, sp := range s.SpriteSlots {
		e.ObjStart()
		e.FieldStart("y")
		e.UInt8(sp.Y)
		e.FieldStart("tile")
		e.UInt8(sp.Tile)
		e.FieldStart("attr")
		e.UInt8(sp.Attr)
		e.FieldStart("x")
		e.UInt8(sp.X)
		e.ObjEnd()
	}
	e.ArrEnd()
	encodeByteArr(e, "sprite_shifter_lo", s.SpriteShifterLo[:])
	encodeByteArr(e, "sprite_shifter_hi", s.SpriteShifterHi[:])
	e.FieldStart("sprite_count")
	e.Int(s.SpriteCount)
	e.FieldStart("sprite_zero_hit_possible")
	e.Bool(s.SpriteZeroHitPossible)

	e.FieldStart("scanline")
	e.Int(s.Scanline)
	e.FieldStart("cycle")
	e.Int(s.Cycle)
	e.FieldStart("odd_frame")
	e.Bool(s.OddFrame)
	e.FieldStart("odd_skip_latch")
	e.Bool(s.OddSkipLatch)
	e.FieldStart("frame_complete")
	e.Bool(s.FrameComplete)

	e.FieldStart("nmi_occurred")
	e.Bool(s.NMIOccurred)
	e.FieldStart("nmi_output")
	e.Bool(s.NMIOutput)
	e.FieldStart("nmi_previous")
	e.Bool(s.NMIPrevious)
	e.FieldStart("nmi_delay")
	e.Int(s.NMIDelay)
	e.FieldStart("nmi_hold")
	e.Int(s.NMIHold)
	e.FieldStart("nmi")
	e.Bool(s.NMI)
	e.FieldStart("suppress_vbl")
	e.Bool(s.SuppressVbl)
	e.FieldStart("suppress_nmi")
	e.Bool(s.SuppressNmi)
	e.ObjEnd()

	_, err := w.Write(e.Bytes())
	return err
}

func encodeByteArr(e *jx.Encoder, field string, b []uint8) {
	e.FieldStart(field)
	encodeByteArrInline(e, b)
}

func encodeByteArrInline(e *jx.Encoder, b []uint8) {
	e.ArrStart()
	for _, v := range b {
		e.UInt8(v)
	}
	e.ArrEnd()
}

// Decode reads a State back from the JSON produced by Encode.
func Decode(r io.Reader) (State, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return State{}, err
	}

	var s State
	d := jx.DecodeBytes(buf)

	nametableIdx := 0
	err = d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "palette":
			return decodeByteSlice(d, s.Palette[:])
		case "oam":
			return decodeByteSlice(d, s.OAM[:])
		case "nametable":
			return d.Arr(func(d *jx.Decoder) error {
				if nametableIdx >= len(s.Nametable) {
					return d.Skip()
				}
				err := decodeByteSlice(d, s.Nametable[nametableIdx][:])
				nametableIdx++
				return err
			})
		case "ctrl":
			s.Ctrl, err = decodeU8(d)
		case "mask":
			s.Mask, err = decodeU8(d)
		case "status":
			s.Status, err = decodeU8(d)
		case "oam_addr":
			s.OAMAddr, err = decodeU8(d)
		case "v":
			s.V, err = decodeU16(d)
		case "t":
			s.T, err = decodeU16(d)
		case "fine_x":
			s.FineX, err = decodeU8(d)
		case "address_latch":
			s.AddressLatch, err = d.Bool()
		case "data_buffer":
			s.DataBuffer, err = decodeU8(d)
		case "bg_next_tile_id":
			s.BgNextTileID, err = decodeU8(d)
		case "bg_next_tile_attr":
			s.BgNextTileAttr, err = decodeU8(d)
		case "bg_next_tile_lsb":
			s.BgNextTileLSB, err = decodeU8(d)
		case "bg_next_tile_msb":
			s.BgNextTileMSB, err = decodeU8(d)
		case "bg_shifter_pattern_lo":
			s.BgShifterPatternLo, err = decodeU16(d)
		case "bg_shifter_pattern_hi":
			s.BgShifterPatternHi, err = decodeU16(d)
		case "bg_shifter_attr_lo":
			s.BgShifterAttrLo, err = decodeU16(d)
		case "bg_shifter_attr_hi":
			s.BgShifterAttrHi, err = decodeU16(d)
		case "sprite_slots":
			idx := 0
			return d.Arr(func(d *jx.Decoder) error {
				if idx >= len(s.SpriteSlots) {
					return d.Skip()
				}
				sp := &s.SpriteSlots[idx]
				idx++
				return d.Obj(func(d *jx.Decoder, key string) error {
					var e error
					switch key {
					case "y":
						sp.Y, e = decodeU8(d)
					case "tile":
						sp.Tile, e = decodeU8(d)
					case "attr":
						sp.Attr, e = decodeU8(d)
					case "x":
						sp.X, e = decodeU8(d)
					default:
						e = d.Skip()
					}
					return e
				})
			})
		case "sprite_shifter_lo":
			return decodeByteSlice(d, s.SpriteShifterLo[:])
		case "sprite_shifter_hi":
			return decodeByteSlice(d, s.SpriteShifterHi[:])
		case "sprite_count":
			s.SpriteCount, err = d.Int()
		case "sprite_zero_hit_possible":
			s.SpriteZeroHitPossible, err = d.Bool()
		case "scanline":
			s.Scanline, err = d.Int()
		case "cycle":
			s.Cycle, err = d.Int()
		case "odd_frame":
			s.OddFrame, err = d.Bool()
		case "odd_skip_latch":
			s.OddSkipLatch, err = d.Bool()
		case "frame_complete":
			s.FrameComplete, err = d.Bool()
		case "nmi_occurred":
			s.NMIOccurred, err = d.Bool()
		case "nmi_output":
			s.NMIOutput, err = d.Bool()
		case "nmi_previous":
			s.NMIPrevious, err = d.Bool()
		case "nmi_delay":
			s.NMIDelay, err = d.Int()
		case "nmi_hold":
			s.NMIHold, err = d.Int()
		case "nmi":
			s.NMI, err = d.Bool()
		case "suppress_vbl":
			s.SuppressVbl, err = d.Bool()
		case "suppress_nmi":
			s.SuppressNmi, err = d.Bool()
		default:
			err = d.Skip()
		}
		return err
	})
	return s, err
}

func decodeByteSlice(d *jx.Decoder, dst []uint8) error {
	i := 0
	return d.Arr(func(d *jx.Decoder) error {
		v, err := decodeU8(d)
		if err != nil {
			return err
		}
		if i < len(dst) {
			dst[i] = v
		}
		i++
		return nil
	})
}

func decodeU8(d *jx.Decoder) (uint8, error) {
	v, err := d.UInt8()
	return v, err
}

func decodeU16(d *jx.Decoder) (uint16, error) {
	v, err := d.UInt16()
	return v, err
}
