package types

import "github.com/iesdk/infinity/internal/ieio"

// Color is an RGBA color in the struct's own canonical field order. The
// wire encoding varies by context: TIS palettes are BGRA, plain ARE/WED
// color fields are sequential RGBA bytes, and the host API's native u32
// form is RGBA-packed.
type Color struct {
	R, G, B, A uint8
}

// DecodeColor reads four sequential bytes r, g, b, a — the plain byte-order
// reader used for non-palette Color fields.
func DecodeColor(c *ieio.Cursor) (Color, error) {
	var col Color
	var err error
	if col.R, err = c.U8(); err != nil {
		return col, err
	}
	if col.G, err = c.U8(); err != nil {
		return col, err
	}
	if col.B, err = c.U8(); err != nil {
		return col, err
	}
	if col.A, err = c.U8(); err != nil {
		return col, err
	}
	return col, nil
}

// FromBGRA unpacks a TIS palette entry: blue@24, green@16, red@8, alpha@0.
func FromBGRA(v uint32) Color {
	return Color{
		B: uint8(v >> 24),
		G: uint8(v >> 16),
		R: uint8(v >> 8),
		A: uint8(v),
	}
}

// ToBGRA packs back to the TIS palette wire form blue@24, green@16, red@8,
// alpha@0. Color.FromBGRA(x).ToBGRA() == x for all x.
func (c Color) ToBGRA() uint32 {
	return uint32(c.B)<<24 | uint32(c.G)<<16 | uint32(c.R)<<8 | uint32(c.A)
}

// FromU32 interprets v as native RGBA: red@24, green@16, blue@8, alpha@0.
func FromU32(v uint32) Color {
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// ToU32 packs back to the native RGBA wire form.
func (c Color) ToU32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// RGBA implements image/color.Color so a Color can be composed directly
// into a standard image.Image.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}
