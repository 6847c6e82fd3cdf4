// Package compose renders a WED overlay's terrain grid into a single flat
// RGBA image, pasting each 64x64 tile from its associated TIS tileset.
package compose

import (
	"image"
	"image/draw"

	"github.com/iesdk/infinity/types"
)

const tileSide = 64

// Overlay renders overlay against tis into a (overlay.Width*64) by
// (overlay.Height*64) RGBA image: cell (x, y) looks up a tile index via
// overlay.TileIndexLookup[y*width+x], and that tile's pixels are pasted at
// (x*64, y*64). A cell whose lookup index or resolved tile index falls
// outside range is left untouched (transparent black), and tilemap run
// fields beyond the first frame are not consulted — an overlay renders only
// the resting frame of any animated tile.
func Overlay(overlay *types.Overlay, tis *types.Tis) *image.RGBA {
	width, height := int(overlay.Width), int(overlay.Height)
	img := image.NewRGBA(image.Rect(0, 0, width*tileSide, height*tileSide))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cellID := y*width + x
			if cellID >= len(overlay.TileIndexLookup) {
				continue
			}
			lookup := int(overlay.TileIndexLookup[cellID])
			if lookup >= len(tis.Tiles) {
				continue
			}

			origin := image.Pt(x*tileSide, y*tileSide)
			dst := image.Rect(origin.X, origin.Y, origin.X+tileSide, origin.Y+tileSide)
			draw.Draw(img, dst, tis.Image(lookup), image.Point{}, draw.Src)
		}
	}

	return img
}
