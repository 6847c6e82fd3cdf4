package types

import (
	"bytes"
	"testing"

	"github.com/iesdk/infinity/internal/ieio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTisStandaloneSingleTile(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(TisSignature)
	buf.WriteString(TisVersion)
	writeU32(&buf, 1)    // tileCount
	writeU32(&buf, 5120) // tileSize
	writeU32(&buf, 24)   // headerSize
	writeU32(&buf, 64)   // tileDim

	for i := 0; i < tisPaletteSize; i++ {
		// each palette word is its own index: slot 0 is all zero, rest distinct
		writeU32(&buf, uint32(i))
	}
	pixels := make([]byte, tisTileLength)
	for i := range pixels {
		pixels[i] = byte(i % tisPaletteSize)
	}
	buf.Write(pixels)

	tis, err := DecodeTis(ieio.NewCursor(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), tis.TileCount)
	assert.Len(t, tis.Tiles, 1)
	assert.Equal(t, pixels, tis.Tiles[0].Pixels[:])

	img := tis.Image(0)
	b := img.Bounds()
	assert.Equal(t, 64, b.Dx())
	assert.Equal(t, 64, b.Dy())
}

func TestDecodeTisTilesNoHeader(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < tisPaletteSize; i++ {
		writeU32(&buf, FromBGRA(uint32(i)).ToBGRA())
	}
	buf.Write(make([]byte, tisTileLength))

	tis, err := DecodeTisTiles(ieio.NewCursor(buf.Bytes()), 1)
	require.NoError(t, err)
	assert.Len(t, tis.Tiles, 1)
	assert.Equal(t, uint32(tisTileSide), tis.TileDim)
}
