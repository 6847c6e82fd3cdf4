package types

import "github.com/iesdk/infinity/internal/ieio"

// Point2 is a 2D point over one of the four integer widths IE formats use.
// Go has no per-instantiation trait impls the way the format's original
// Rust source does, so each width gets its own named decode function below
// rather than a single generic DecodeFrom.
type Point2[T any] struct {
	X, Y T
}

// Point3 is a 3D point, used by ARE projectile traps (x, y, z).
type Point3[T any] struct {
	X, Y, Z T
}

// DecodePoint2U16 reads consecutive little-endian uint16 fields x, y.
func DecodePoint2U16(c *ieio.Cursor) (Point2[uint16], error) {
	x, err := c.U16()
	if err != nil {
		return Point2[uint16]{}, err
	}
	y, err := c.U16()
	if err != nil {
		return Point2[uint16]{}, err
	}
	return Point2[uint16]{X: x, Y: y}, nil
}

// DecodePoint2I16 reads consecutive little-endian int16 fields x, y.
func DecodePoint2I16(c *ieio.Cursor) (Point2[int16], error) {
	x, err := c.I16()
	if err != nil {
		return Point2[int16]{}, err
	}
	y, err := c.I16()
	if err != nil {
		return Point2[int16]{}, err
	}
	return Point2[int16]{X: x, Y: y}, nil
}

// DecodePoint2U32 reads consecutive little-endian uint32 fields x, y.
func DecodePoint2U32(c *ieio.Cursor) (Point2[uint32], error) {
	x, err := c.U32()
	if err != nil {
		return Point2[uint32]{}, err
	}
	y, err := c.U32()
	if err != nil {
		return Point2[uint32]{}, err
	}
	return Point2[uint32]{X: x, Y: y}, nil
}

// DecodePoint2I32 reads consecutive little-endian int32 fields x, y.
func DecodePoint2I32(c *ieio.Cursor) (Point2[int32], error) {
	x, err := c.I32()
	if err != nil {
		return Point2[int32]{}, err
	}
	y, err := c.I32()
	if err != nil {
		return Point2[int32]{}, err
	}
	return Point2[int32]{X: x, Y: y}, nil
}

// WidenPoint2 upconverts a uint16 point to uint32, used for non-PST automap
// coordinates, which are stored narrow while PST stores them wide.
func WidenPoint2(p Point2[uint16]) Point2[uint32] {
	return Point2[uint32]{X: uint32(p.X), Y: uint32(p.Y)}
}

// DecodePoint3U16 reads consecutive little-endian uint16 fields x, y, z.
func DecodePoint3U16(c *ieio.Cursor) (Point3[uint16], error) {
	x, err := c.U16()
	if err != nil {
		return Point3[uint16]{}, err
	}
	y, err := c.U16()
	if err != nil {
		return Point3[uint16]{}, err
	}
	z, err := c.U16()
	if err != nil {
		return Point3[uint16]{}, err
	}
	return Point3[uint16]{X: x, Y: y, Z: z}, nil
}
