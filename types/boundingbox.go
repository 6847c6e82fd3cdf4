package types

import (
	"github.com/iesdk/infinity/internal/bits"
	"github.com/iesdk/infinity/internal/ieio"
)

// BoundingBox is four u16 edges, always in logical order left, top, right,
// bottom regardless of which wire encoding produced them.
type BoundingBox struct {
	Left, Top, Right, Bottom uint16
}

// DecodeBoundingBox reads the four edges in wire order left, top, right,
// bottom — the order used by ARE Container and Door records.
func DecodeBoundingBox(c *ieio.Cursor) (BoundingBox, error) {
	var bb BoundingBox
	var err error
	if bb.Left, err = c.U16(); err != nil {
		return bb, err
	}
	if bb.Top, err = c.U16(); err != nil {
		return bb, err
	}
	if bb.Right, err = c.U16(); err != nil {
		return bb, err
	}
	if bb.Bottom, err = c.U16(); err != nil {
		return bb, err
	}
	return bb, nil
}

// DecodeBoundingBoxLRTB reads the four edges in wire order left, right,
// top, bottom — the order the WED polygon record uses, distinct from the
// generic packed/sequential order above.
func DecodeBoundingBoxLRTB(c *ieio.Cursor) (BoundingBox, error) {
	var bb BoundingBox
	var err error
	if bb.Left, err = c.U16(); err != nil {
		return bb, err
	}
	if bb.Right, err = c.U16(); err != nil {
		return bb, err
	}
	if bb.Top, err = c.U16(); err != nil {
		return bb, err
	}
	if bb.Bottom, err = c.U16(); err != nil {
		return bb, err
	}
	return bb, nil
}

// BoundingBoxFromPacked unpacks a 64-bit cell as used by AreRegion, with
// edges at successive 16-bit fields: left@0, top@16, right@32, bottom@48.
func BoundingBoxFromPacked(v uint64) BoundingBox {
	return BoundingBox{
		Left:   uint16(bits.ReadValue(v, 16, 0)),
		Top:    uint16(bits.ReadValue(v, 16, 16)),
		Right:  uint16(bits.ReadValue(v, 16, 32)),
		Bottom: uint16(bits.ReadValue(v, 16, 48)),
	}
}
