package types

import (
	"fmt"
	"image"
	"image/color"

	"github.com/iesdk/infinity/internal/ieio"
)

const (
	TisSignature = "TIS "
	TisVersion   = "V1  "

	tisPaletteSize = 256
	tisTileLength  = 4096 // 64x64 8-bit indexed pixels
	tisTileSide    = 64
	tisHeaderSize  = 24
)

// Tis is a decoded palette-indexed tileset: a flat header (when read as a
// standalone file) followed by TileCount tiles, each an embedded 256-color
// BGRA palette plus a 64x64 grid of palette indices.
type Tis struct {
	Identity  Identity
	TileCount uint32
	TileSize  uint32 // bytes per stored tile, constant 5120 (1024 palette + 4096 pixels)
	HeaderLen uint32
	TileDim   uint32 // pixels per tile side, constant 64
	Tiles     []TisTileData
}

// TisTileData is one palette-indexed tile: the raw BGRA palette words, the
// same palette pre-expanded to Color, and the 4096 raw pixel indices.
type TisTileData struct {
	Palette [tisPaletteSize]uint32
	Colors  [tisPaletteSize]Color
	Pixels  [tisTileLength]byte
}

// DecodeTis reads a standalone TIS file: its 24-byte header followed by its
// tiles.
func DecodeTis(c *ieio.Cursor) (*Tis, error) {
	identity, err := DecodeIdentity(c)
	if err != nil {
		return nil, fmt.Errorf("infinity: read TIS identity: %w", err)
	}
	if identity.Signature != TisSignature || identity.Version != TisVersion {
		return nil, fmt.Errorf("infinity: bad TIS signature %q/%q", identity.Signature, identity.Version)
	}

	tileCount, err := c.U32()
	if err != nil {
		return nil, err
	}
	tileSize, err := c.U32()
	if err != nil {
		return nil, err
	}
	headerLen, err := c.U32()
	if err != nil {
		return nil, err
	}
	tileDim, err := c.U32()
	if err != nil {
		return nil, err
	}

	tis, err := DecodeTisTiles(c, tileCount)
	if err != nil {
		return nil, err
	}
	tis.Identity = identity
	tis.TileSize = tileSize
	tis.HeaderLen = headerLen
	tis.TileDim = tileDim
	return tis, nil
}

// DecodeTisTiles reads count tiles with no preceding header, the form a TIS
// tileset takes when it's embedded as a BIF tileset entry (the entry's
// TileCount is supplied externally rather than read from the stream).
func DecodeTisTiles(c *ieio.Cursor, count uint32) (*Tis, error) {
	tiles := make([]TisTileData, 0, count)
	for i := uint32(0); i < count; i++ {
		t, err := decodeTisTile(c)
		if err != nil {
			return nil, fmt.Errorf("infinity: read TIS tile #%d: %w", i, err)
		}
		tiles = append(tiles, t)
	}
	return &Tis{
		TileCount: count,
		TileSize:  1024 + tisTileLength,
		HeaderLen: tisHeaderSize,
		TileDim:   tisTileSide,
		Tiles:     tiles,
	}, nil
}

func decodeTisTile(c *ieio.Cursor) (TisTileData, error) {
	var t TisTileData
	for i := 0; i < tisPaletteSize; i++ {
		v, err := c.U32()
		if err != nil {
			return t, err
		}
		t.Palette[i] = v
		t.Colors[i] = FromBGRA(v)
	}
	pixels, err := c.ReadBytes(tisTileLength)
	if err != nil {
		return t, err
	}
	copy(t.Pixels[:], pixels)
	return t, nil
}

// Image returns an image.Image view over tile i, substituting Colors[0]
// (the tileset's chroma key slot) for any pixel index that falls outside
// the 256-entry palette.
func (t *Tis) Image(i int) image.Image {
	return &tisTileImage{tile: &t.Tiles[i]}
}

type tisTileImage struct {
	tile *TisTileData
}

func (im *tisTileImage) ColorModel() color.Model { return color.RGBAModel }

func (im *tisTileImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, tisTileSide, tisTileSide)
}

func (im *tisTileImage) At(x, y int) color.Color {
	idx := im.tile.Pixels[y*tisTileSide+x]
	c := im.tile.Colors[0]
	if int(idx) < len(im.tile.Colors) {
		c = im.tile.Colors[idx]
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
