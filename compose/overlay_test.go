package compose

import (
	"image/color"
	"testing"

	"github.com/iesdk/infinity/types"
	"github.com/stretchr/testify/assert"
)

func solidTile(c color.RGBA) types.TisTileData {
	var t types.TisTileData
	t.Colors[0] = types.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	return t
}

func TestOverlayComposesKnownCells(t *testing.T) {
	red := color.RGBA{R: 200, G: 0, B: 0, A: 255}
	blue := color.RGBA{R: 0, G: 0, B: 200, A: 255}

	tis := &types.Tis{Tiles: []types.TisTileData{solidTile(red), solidTile(blue)}}
	overlay := &types.Overlay{
		Width:           2,
		Height:          1,
		TileIndexLookup: []uint16{0, 1},
	}

	img := Overlay(overlay, tis)

	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, blue, img.RGBAAt(64, 0))
}

func TestOverlayOutOfRangeLookupLeftBlank(t *testing.T) {
	tis := &types.Tis{Tiles: []types.TisTileData{solidTile(color.RGBA{R: 1, G: 2, B: 3, A: 255})}}
	overlay := &types.Overlay{
		Width:           2,
		Height:          1,
		TileIndexLookup: []uint16{0, 9}, // second cell's tile index is out of tis.Tiles range
	}

	img := Overlay(overlay, tis)

	assert.Equal(t, color.RGBA{}, img.RGBAAt(64, 0))
}

func TestOverlayMissingLookupEntryLeftBlank(t *testing.T) {
	tis := &types.Tis{Tiles: []types.TisTileData{solidTile(color.RGBA{R: 9, G: 9, B: 9, A: 255})}}
	overlay := &types.Overlay{
		Width:           2,
		Height:          1,
		TileIndexLookup: []uint16{0}, // second cell has no lookup entry at all
	}

	img := Overlay(overlay, tis)

	assert.Equal(t, color.RGBA{R: 9, G: 9, B: 9, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(64, 0))
}
