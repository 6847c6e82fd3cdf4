package types

import (
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/iesdk/infinity/internal/ieio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBif(t *testing.T, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString(BifSignature)
	buf.WriteString(BifVersion)
	writeU32(&buf, 1) // fileCount
	writeU32(&buf, 0) // tilesetCount
	writeU32(&buf, 20)
	writeU32(&buf, 0x00000001) // locator
	dataOffset := uint32(20 + 16)
	writeU32(&buf, dataOffset)
	writeU32(&buf, uint32(len(payload)))
	writeU16(&buf, 0x03f7) // type
	writeU16(&buf, 0)
	buf.Write(payload)
	return buf.Bytes()
}

func TestDecodeBifRoundTrip(t *testing.T) {
	payload := []byte("hello, IE")
	raw := buildBif(t, payload)

	bif, err := DecodeBif(ieio.NewCursor(raw))
	require.NoError(t, err)

	assert.Equal(t, BifSignature, bif.Identity.Signature)
	assert.Equal(t, BifVersion, bif.Identity.Version)
	assert.Len(t, bif.FileEntries, 1)
	assert.Equal(t, payload, bif.FileEntries[0].Data)
	assert.Equal(t, uint32(1), bif.FileEntries[0].Index())
}

func TestBifcToBif(t *testing.T) {
	payload := []byte("compressed IE payload")
	inner := buildBif(t, payload)

	var compressed bytes.Buffer
	w := zlib.NewWriter(&compressed)
	_, err := w.Write(inner)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	buf.WriteString(BifcSignature)
	buf.WriteString(BifcVersion)
	name := "test.bif"
	writeU32(&buf, uint32(len(name))+1)
	buf.WriteString(name)
	buf.WriteByte(0)
	writeU32(&buf, uint32(len(inner)))
	writeU32(&buf, uint32(compressed.Len()))
	buf.Write(compressed.Bytes())

	bifc, err := DecodeBifc(ieio.NewCursor(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, name, bifc.FileName)

	bif, err := bifc.ToBif()
	require.NoError(t, err)
	assert.Equal(t, payload, bif.FileEntries[0].Data)
}

func TestBifccToBif(t *testing.T) {
	payload := []byte("block-chained IE payload")
	inner := buildBif(t, payload)

	var block bytes.Buffer
	w := zlib.NewWriter(&block)
	_, err := w.Write(inner)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	buf.WriteString(BifccSignature)
	buf.WriteString(BifccVersion)
	writeU32(&buf, uint32(len(inner)))
	writeU32(&buf, uint32(len(inner)))
	writeU32(&buf, uint32(block.Len()))
	buf.Write(block.Bytes())

	bifcc, err := DecodeBifcc(ieio.NewCursor(buf.Bytes()))
	require.NoError(t, err)
	assert.Len(t, bifcc.Blocks, 1)

	bif, err := bifcc.ToBif()
	require.NoError(t, err)
	assert.Equal(t, payload, bif.FileEntries[0].Data)
}

func writeU16(buf *bytes.Buffer, v uint16) {
	buf.WriteByte(byte(v))
	buf.WriteByte(byte(v >> 8))
}

func writeU32(buf *bytes.Buffer, v uint32) {
	buf.WriteByte(byte(v))
	buf.WriteByte(byte(v >> 8))
	buf.WriteByte(byte(v >> 16))
	buf.WriteByte(byte(v >> 24))
}
