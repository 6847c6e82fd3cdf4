package types

import "github.com/iesdk/infinity/internal/ieio"

// SectionAddress is an (offset, count) pair pointing at a counted section
// elsewhere in the file. Both fields are stored widened to uint32; the wire
// width of each (u16 or u32) is a property of which decode function the
// caller uses, mirroring the per-width decoders the original format
// definition provides instead of a single generic reader.
type SectionAddress struct {
	Offset uint32
	Count  uint32
}

// DecodeSection32_16 reads offset(u32) then count(u16) — ARE actors,
// containers, vertices.
func DecodeSection32_16(c *ieio.Cursor) (SectionAddress, error) {
	offset, err := c.U32()
	if err != nil {
		return SectionAddress{}, err
	}
	count, err := c.U16()
	if err != nil {
		return SectionAddress{}, err
	}
	return SectionAddress{Offset: offset, Count: uint32(count)}, nil
}

// DecodeSection32_16Inverted reads count(u16) then offset(u32) — ARE
// regions, items, ambients.
func DecodeSection32_16Inverted(c *ieio.Cursor) (SectionAddress, error) {
	count, err := c.U16()
	if err != nil {
		return SectionAddress{}, err
	}
	offset, err := c.U32()
	if err != nil {
		return SectionAddress{}, err
	}
	return SectionAddress{Offset: offset, Count: uint32(count)}, nil
}

// DecodeSection32_32 reads offset(u32) then count(u32) — ARE spawn points,
// entrances, variables, automap notes, projectile traps.
func DecodeSection32_32(c *ieio.Cursor) (SectionAddress, error) {
	offset, err := c.U32()
	if err != nil {
		return SectionAddress{}, err
	}
	count, err := c.U32()
	if err != nil {
		return SectionAddress{}, err
	}
	return SectionAddress{Offset: offset, Count: count}, nil
}

// DecodeSection32_32Inverted reads count(u32) then offset(u32) — ARE
// doors, animations, tiled objects.
func DecodeSection32_32Inverted(c *ieio.Cursor) (SectionAddress, error) {
	count, err := c.U32()
	if err != nil {
		return SectionAddress{}, err
	}
	offset, err := c.U32()
	if err != nil {
		return SectionAddress{}, err
	}
	return SectionAddress{Offset: offset, Count: count}, nil
}

// DecodeSection16_16 reads offset(u16) then count(u16) — ARE
// tiledObjectFlags.
func DecodeSection16_16(c *ieio.Cursor) (SectionAddress, error) {
	offset, err := c.U16()
	if err != nil {
		return SectionAddress{}, err
	}
	count, err := c.U16()
	if err != nil {
		return SectionAddress{}, err
	}
	return SectionAddress{Offset: uint32(offset), Count: uint32(count)}, nil
}

// BitmaskAddress is an (offset, size) pair used only by the ARE explored
// bitmask, stored widened to uint32 for the same reason as SectionAddress.
type BitmaskAddress struct {
	Offset uint32
	Size   uint32
}

// DecodeBitmask32_32Inverted reads size(u32) then offset(u32) — ARE
// explored bitmask.
func DecodeBitmask32_32Inverted(c *ieio.Cursor) (BitmaskAddress, error) {
	size, err := c.U32()
	if err != nil {
		return BitmaskAddress{}, err
	}
	offset, err := c.U32()
	if err != nil {
		return BitmaskAddress{}, err
	}
	return BitmaskAddress{Offset: offset, Size: size}, nil
}
