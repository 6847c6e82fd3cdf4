package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iesdk/infinity/internal/ietest"
	"github.com/iesdk/infinity/internal/ieio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocatorDecomposition(t *testing.T) {
	e := ResourceEntry{Locator: 0x00F00028}
	assert.Equal(t, uint32(40), e.FileIndex())
	assert.Equal(t, uint32(0), e.TilesetIndex())
	assert.Equal(t, uint32(15), e.BifIndex())
}

func TestDecodeKeyBG1Fixture(t *testing.T) {
	dir := ietest.Path()
	if dir == "" {
		t.Skip("IE_TESTDATA_DIR not set")
	}

	data, err := os.ReadFile(filepath.Join(dir, "chitin.key"))
	require.NoError(t, err)

	key, err := DecodeKey(ieio.NewCursor(data))
	require.NoError(t, err)

	assert.Equal(t, KeySignature, key.Identity.Signature)
	assert.Equal(t, KeyVersion, key.Identity.Version)
	assert.Equal(t, uint32(159), key.BifCount)
	assert.Equal(t, uint32(16694), key.ResourceCount)
	assert.Equal(t, uint32(24), key.BifOffset)
	assert.Equal(t, uint32(4780), key.ResourceOffset)
	assert.Len(t, key.BifEntries, 159)
	assert.Len(t, key.ResourceEntries, 16694)
	assert.Equal(t, `data\Default.bif`, key.BifEntries[0].FileName)
}
