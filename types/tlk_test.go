package types

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/iesdk/infinity/internal/ietest"
	"github.com/iesdk/infinity/internal/ieio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTlkSingleEntry(t *testing.T) {
	text := "Hello, Sword Coast"

	var buf bytes.Buffer
	buf.WriteString(TlkSignature)
	buf.WriteString(TlkVersion)
	writeU16(&buf, 0) // language
	writeU32(&buf, 1) // count
	headerSize := uint32(18 + tlkEntrySize)
	writeU32(&buf, headerSize)

	writeU16(&buf, 0x0001) // info flags: has text
	buf.WriteString("        ")
	writeU32(&buf, 0) // volume
	writeU32(&buf, 0) // pitch
	writeU32(&buf, 0) // offset
	writeU32(&buf, uint32(len(text)))

	buf.WriteString(text)

	tlk, err := DecodeTlk(ieio.NewCursor(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), tlk.Count)
	require.Len(t, tlk.Entries, 1)
	assert.Equal(t, uint32(0), tlk.Entries[0].Strref)
	assert.Equal(t, text, tlk.String(0))
	assert.Equal(t, "", tlk.String(1))
}

func TestDecodeTlkBG1Fixture(t *testing.T) {
	dir := ietest.Path()
	if dir == "" {
		t.Skip("IE_TESTDATA_DIR not set")
	}

	data, err := os.ReadFile(filepath.Join(dir, "dialog.tlk"))
	require.NoError(t, err)

	tlk, err := DecodeTlk(ieio.NewCursor(data))
	require.NoError(t, err)
	assert.Equal(t, TlkSignature, tlk.Identity.Signature)
	assert.True(t, tlk.Count > 0)
	assert.Len(t, tlk.Strings, int(tlk.Count))
}
