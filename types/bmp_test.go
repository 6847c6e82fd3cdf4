package types

import (
	"bytes"
	"testing"

	"github.com/iesdk/infinity/internal/ieio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBmp8Bit(raster []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("BM")
	writeU32(&buf, 0) // size, not validated
	writeU32(&buf, 0) // reserved
	writeU32(&buf, bmpFileHeaderSize+bmpInfoHeaderSize+256*4)

	writeU32(&buf, bmpInfoHeaderSize)
	writeU32(&buf, 2) // width
	writeU32(&buf, 2) // height
	writeU16(&buf, 1) // planes
	writeU16(&buf, 8) // bitsPerPixel
	writeU32(&buf, 0) // compression
	writeU32(&buf, uint32(len(raster)))
	writeU32(&buf, 0)
	writeU32(&buf, 0)
	writeU32(&buf, 0) // colorsUsed -> defaults to 256
	writeU32(&buf, 0)

	for i := 0; i < 256; i++ {
		writeU32(&buf, uint32(i))
	}
	buf.Write(raster)
	return buf.Bytes()
}

func TestDecodeBmp8BitIndexed(t *testing.T) {
	raster := []byte{0, 1, 2, 3}
	raw := buildBmp8Bit(raster)

	bmp, err := DecodeBmp(ieio.NewCursor(raw))
	require.NoError(t, err)
	assert.Equal(t, "BM", bmp.File.Type)
	assert.Equal(t, uint16(8), bmp.Info.BitsPerPixel)
	assert.Len(t, bmp.Colors, 256)
	assert.Equal(t, raster, bmp.Encoded)

	back := bmp.ToBytes()
	assert.Equal(t, raw, back)
}

func TestDecodeBmpNegativeHeight(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("BM")
	writeU32(&buf, 0)
	writeU32(&buf, 0)
	writeU32(&buf, bmpFileHeaderSize+bmpInfoHeaderSize)
	writeU32(&buf, bmpInfoHeaderSize)
	writeU32(&buf, 4)
	writeU32(&buf, uint32(int32(-4))) // top-down raster
	writeU16(&buf, 1)
	writeU16(&buf, 24) // no palette at 24bpp
	writeU32(&buf, 0)
	writeU32(&buf, 0)
	writeU32(&buf, 0)
	writeU32(&buf, 0)
	writeU32(&buf, 0)
	writeU32(&buf, 0)
	raster := bytes.Repeat([]byte{1, 2, 3}, 16)
	buf.Write(raster)

	bmp, err := DecodeBmp(ieio.NewCursor(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, int32(-4), bmp.Info.Height)
	assert.Empty(t, bmp.Colors)
	assert.Equal(t, raster, bmp.Encoded)
}
