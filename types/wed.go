package types

import (
	"fmt"

	"github.com/iesdk/infinity/internal/ieio"
)

const (
	WedSignature = "WED "
	WedVersion   = "V1.3"

	// WallGroupSize is the tilemap count spanned by a single wall group:
	// a 10x7.5-tile strip of the overlay grid.
	WallGroupSize = 75
)

// Wed is a decoded wall/overlay map: the terrain-to-tileset mapping for an
// area, plus its doors and wall-occlusion polygons.
type Wed struct {
	Header              WedHeader
	Overlays            []Overlay
	Secondary           SecondaryHeader
	Doors               []Door
	DoorTileCellIndices []uint32
	WallGroups          []WallGroup
	Polygons            []Polygon
	PolygonIndexLookup  []uint16
}

// WedHeader is the WED primary header.
type WedHeader struct {
	Identity       Identity
	OverlayCount   uint32
	DoorCount      uint32
	OverlayOffset  uint32
	HeaderOffset   uint32
	DoorOffset     uint32
	DoorTileOffset uint32
}

// SecondaryHeader holds the offsets the primary header defers to it: the
// wall-occlusion polygon table, the shared vertex pool, wall groups, and
// the polygon index lookup.
type SecondaryHeader struct {
	PolygonCount        uint32
	PolygonOffset       uint32
	VerticesOffset      uint32
	WallGroupsOffset    uint32
	PolygonLookupOffset uint32
}

// Overlay maps one tileset onto the area's terrain grid. TilesetName names
// the TIS resource to resolve externally; TileIndexLookup and Tilemaps are
// populated by ResolveTiles once that TIS's tile count is known — a decode
// cannot determine how many Tilemap records to read without it.
type Overlay struct {
	Width                 uint16
	Height                uint16
	TilesetName           string
	UniqueTileCount       uint16
	MovementType          uint16
	TilemapOffset         uint32
	TileIndexLookupOffset uint32
	TileIndexLookup       []uint16
	Tilemaps              []Tilemap
}

// Tilemap tells which tileset tile(s) are used for one cell of an overlay's
// terrain grid.
type Tilemap struct {
	Start     uint16
	Count     uint16
	Secondary uint16
	Mask      uint8
	Unknown   [3]byte
}

// Door describes one door (or door-like) object and the polygons
// representing its open and closed wall occlusion.
type Door struct {
	Name           string
	OpenClosed     uint16
	FirstDoorIndex uint16
	TileCellCount  uint16
	OpenCount      uint16
	ClosedCount    uint16
	OpenOffset     uint32
	ClosedOffset   uint32
}

// IsOpen reports whether this door's resting state is open.
func (d Door) IsOpen() bool { return d.OpenClosed == 0 }

// WallGroup is a contiguous run of polygon indices used to cull occlusion
// polygons to the screen region currently being drawn.
type WallGroup struct {
	Start uint16
	Count uint16
}

// Polygon is one wall-occlusion outline: a run of vertices in the WED's
// shared vertex pool, plus its bounding box.
type Polygon struct {
	Start       uint32
	Count       uint32
	Mask        uint8
	Height      uint8
	BoundingBox BoundingBox
}

// DecodeWed reads a complete WED: header, overlay headers, secondary
// header, doors, door tile cell indices, polygons, and the polygon index
// lookup. Overlay tilemaps are left unresolved — see
// (*Overlay).ResolveTiles — since reading them requires knowing the
// associated tileset's tile count, which decode alone cannot determine;
// wall groups are read afterwards by (*Wed).ResolveWallGroups.
func DecodeWed(c *ieio.Cursor) (*Wed, error) {
	header, err := decodeWedHeader(c)
	if err != nil {
		return nil, fmt.Errorf("infinity: read WED header: %w", err)
	}

	overlays := make([]Overlay, 0, header.OverlayCount)
	for i := uint32(0); i < header.OverlayCount; i++ {
		o, err := decodeOverlay(c)
		if err != nil {
			return nil, fmt.Errorf("infinity: read WED overlay #%d: %w", i, err)
		}
		overlays = append(overlays, o)
	}

	secondary, err := decodeSecondaryHeader(c)
	if err != nil {
		return nil, fmt.Errorf("infinity: read WED secondary header: %w", err)
	}

	doors := make([]Door, 0, header.DoorCount)
	for i := uint32(0); i < header.DoorCount; i++ {
		d, err := decodeDoor(c)
		if err != nil {
			return nil, fmt.Errorf("infinity: read WED door #%d: %w", i, err)
		}
		doors = append(doors, d)
	}

	doorTileCellIndices, err := ieio.ReadList(c, int(header.DoorTileOffset), int(header.DoorCount), (*ieio.Cursor).U32)
	if err != nil {
		return nil, fmt.Errorf("infinity: read WED door tile cell indices: %w", err)
	}

	polygons, err := ieio.ReadList(c, int(secondary.PolygonOffset), int(secondary.PolygonCount), decodePolygon)
	if err != nil {
		return nil, fmt.Errorf("infinity: read WED polygons: %w", err)
	}

	polygonIndexLookup, err := ieio.ReadList(c, int(secondary.PolygonLookupOffset), int(secondary.PolygonCount), (*ieio.Cursor).U16)
	if err != nil {
		return nil, fmt.Errorf("infinity: read WED polygon index lookup: %w", err)
	}

	return &Wed{
		Header:              header,
		Overlays:            overlays,
		Secondary:           secondary,
		Doors:               doors,
		DoorTileCellIndices: doorTileCellIndices,
		Polygons:            polygons,
		PolygonIndexLookup:  polygonIndexLookup,
	}, nil
}

// ResolveWallGroups reads the wall group table, whose length is the sum
// over every overlay's tilemap count divided by WallGroupSize — a value
// only known once every overlay's tilemaps have been resolved via
// ResolveTiles.
func (w *Wed) ResolveWallGroups(c *ieio.Cursor) error {
	var total uint32
	for _, o := range w.Overlays {
		total += uint32(len(o.Tilemaps)) / WallGroupSize
	}
	groups, err := ieio.ReadList(c, int(w.Secondary.WallGroupsOffset), int(total), decodeWallGroup)
	if err != nil {
		return fmt.Errorf("infinity: read WED wall groups: %w", err)
	}
	w.WallGroups = groups
	return nil
}

func decodeWedHeader(c *ieio.Cursor) (WedHeader, error) {
	var h WedHeader
	identity, err := DecodeIdentity(c)
	if err != nil {
		return h, err
	}
	if identity.Signature != WedSignature || identity.Version != WedVersion {
		return h, fmt.Errorf("infinity: bad WED signature %q/%q", identity.Signature, identity.Version)
	}
	h.Identity = identity
	if h.OverlayCount, err = c.U32(); err != nil {
		return h, err
	}
	if h.DoorCount, err = c.U32(); err != nil {
		return h, err
	}
	if h.OverlayOffset, err = c.U32(); err != nil {
		return h, err
	}
	if h.HeaderOffset, err = c.U32(); err != nil {
		return h, err
	}
	if h.DoorOffset, err = c.U32(); err != nil {
		return h, err
	}
	if h.DoorTileOffset, err = c.U32(); err != nil {
		return h, err
	}
	return h, nil
}

func decodeSecondaryHeader(c *ieio.Cursor) (SecondaryHeader, error) {
	var h SecondaryHeader
	var err error
	if h.PolygonCount, err = c.U32(); err != nil {
		return h, err
	}
	if h.PolygonOffset, err = c.U32(); err != nil {
		return h, err
	}
	if h.VerticesOffset, err = c.U32(); err != nil {
		return h, err
	}
	if h.WallGroupsOffset, err = c.U32(); err != nil {
		return h, err
	}
	if h.PolygonLookupOffset, err = c.U32(); err != nil {
		return h, err
	}
	return h, nil
}

func decodeOverlay(c *ieio.Cursor) (Overlay, error) {
	var o Overlay
	var err error
	if o.Width, err = c.U16(); err != nil {
		return o, err
	}
	if o.Height, err = c.U16(); err != nil {
		return o, err
	}
	if o.TilesetName, err = c.ResRef(); err != nil {
		return o, err
	}
	if o.UniqueTileCount, err = c.U16(); err != nil {
		return o, err
	}
	if o.MovementType, err = c.U16(); err != nil {
		return o, err
	}
	if o.TilemapOffset, err = c.U32(); err != nil {
		return o, err
	}
	if o.TileIndexLookupOffset, err = c.U32(); err != nil {
		return o, err
	}
	return o, nil
}

// ResolveTiles reads this overlay's tilemap and tile-index-lookup tables,
// given the tile count of its associated tileset (resolved externally by
// the resource layer, which knows how to load a TIS by name).
func (o *Overlay) ResolveTiles(c *ieio.Cursor, tileCount uint32) error {
	if tileCount == 0 {
		return nil
	}

	saved := c.Pos()

	if err := c.SeekTo(int(o.TilemapOffset)); err != nil {
		return err
	}
	var tilemaps []Tilemap
	var read uint32
	for read < tileCount {
		tm, err := decodeTilemap(c)
		if err != nil {
			return fmt.Errorf("infinity: read WED tilemap after %d tiles: %w", read, err)
		}
		read += uint32(tm.Count)
		tilemaps = append(tilemaps, tm)
	}
	o.Tilemaps = tilemaps

	if err := c.SeekTo(int(o.TileIndexLookupOffset)); err != nil {
		return err
	}
	lookup := make([]uint16, 0, len(tilemaps))
	for i := range tilemaps {
		idx, err := c.U16()
		if err != nil {
			return fmt.Errorf("infinity: read WED tile index lookup #%d: %w", i, err)
		}
		lookup = append(lookup, idx)
	}
	o.TileIndexLookup = lookup

	return c.SeekTo(saved)
}

func decodeTilemap(c *ieio.Cursor) (Tilemap, error) {
	var t Tilemap
	var err error
	if t.Start, err = c.U16(); err != nil {
		return t, err
	}
	if t.Count, err = c.U16(); err != nil {
		return t, err
	}
	if t.Secondary, err = c.U16(); err != nil {
		return t, err
	}
	if t.Mask, err = c.U8(); err != nil {
		return t, err
	}
	unknown, err := c.ReadBytes(3)
	if err != nil {
		return t, err
	}
	copy(t.Unknown[:], unknown)
	return t, nil
}

func decodeDoor(c *ieio.Cursor) (Door, error) {
	var d Door
	var err error
	if d.Name, err = c.ResRef(); err != nil {
		return d, err
	}
	if d.OpenClosed, err = c.U16(); err != nil {
		return d, err
	}
	if d.FirstDoorIndex, err = c.U16(); err != nil {
		return d, err
	}
	if d.TileCellCount, err = c.U16(); err != nil {
		return d, err
	}
	if d.OpenCount, err = c.U16(); err != nil {
		return d, err
	}
	if d.ClosedCount, err = c.U16(); err != nil {
		return d, err
	}
	if d.OpenOffset, err = c.U32(); err != nil {
		return d, err
	}
	if d.ClosedOffset, err = c.U32(); err != nil {
		return d, err
	}
	return d, nil
}

func decodeWallGroup(c *ieio.Cursor) (WallGroup, error) {
	var g WallGroup
	var err error
	if g.Start, err = c.U16(); err != nil {
		return g, err
	}
	if g.Count, err = c.U16(); err != nil {
		return g, err
	}
	return g, nil
}

// decodePolygon reads the polygon record's bounding box in its wire order
// of left, right, top, bottom — different from the generic
// DecodeBoundingBox's left, top, right, bottom order used elsewhere.
func decodePolygon(c *ieio.Cursor) (Polygon, error) {
	var p Polygon
	var err error
	if p.Start, err = c.U32(); err != nil {
		return p, err
	}
	if p.Count, err = c.U32(); err != nil {
		return p, err
	}
	if p.Mask, err = c.U8(); err != nil {
		return p, err
	}
	if p.Height, err = c.U8(); err != nil {
		return p, err
	}
	bb, err := DecodeBoundingBoxLRTB(c)
	if err != nil {
		return p, err
	}
	p.BoundingBox = bb
	return p, nil
}
