package resource

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/iesdk/infinity/internal/ietest"
	"github.com/iesdk/infinity/internal/ieio"
	"github.com/iesdk/infinity/platform"
	"github.com/iesdk/infinity/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedPathLocator is a test-local platform.InstallLocator pointing every
// game at the same directory.
type fixedPathLocator struct{ dir string }

func (l fixedPathLocator) FindInstallPath(platform.Games) (string, bool) {
	return l.dir, true
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

// buildKeyAndBif writes a minimal KEY catalog plus a single BIF archive
// containing one resource, testResName/testResType, to dir. The BIF is
// referenced by bifFileName, letting callers exercise exact-case and
// flipped-case lookups.
const (
	testResName = "TESTRES"
	testResType = uint16(0x0001)
)

func buildKeyAndBif(t *testing.T, dir, bifFileName string, payload []byte) {
	t.Helper()

	var bif bytes.Buffer
	bif.WriteString(types.BifSignature)
	bif.WriteString(types.BifVersion)
	writeU32(&bif, 1) // fileCount
	writeU32(&bif, 0) // tilesetCount
	writeU32(&bif, 20)
	writeU32(&bif, 0x00000000) // locator: fileIndex=0, tilesetIndex=0, bifIndex=0
	dataOffset := uint32(20 + 16)
	writeU32(&bif, dataOffset)
	writeU32(&bif, uint32(len(payload)))
	writeU16(&bif, testResType)
	writeU16(&bif, 0)
	bif.Write(payload)
	require.NoError(t, os.WriteFile(filepath.Join(dir, bifFileName), bif.Bytes(), 0o644))

	const headerSize = 24
	bifEntrySize := 4 + 4 + 2 + 2
	resourceEntrySize := 8 + 2 + 4
	bifOffset := uint32(headerSize)
	resourceOffset := bifOffset + uint32(bifEntrySize)
	nameOffset := resourceOffset + uint32(resourceEntrySize)

	var key bytes.Buffer
	key.WriteString(types.KeySignature)
	key.WriteString(types.KeyVersion)
	writeU32(&key, 1) // bifCount
	writeU32(&key, 1) // resourceCount
	writeU32(&key, bifOffset)
	writeU32(&key, resourceOffset)

	// bif entry
	writeU32(&key, uint32(len(payload))) // fileLength (unused by decode path)
	writeU32(&key, nameOffset)
	writeU16(&key, uint16(len(bifFileName)+1))
	writeU16(&key, 0) // locator bits

	// resource entry: 8-byte resref, type, locator
	resref := testResName
	key.WriteString(resref)
	for i := len(resref); i < 8; i++ {
		key.WriteByte(0)
	}
	writeU16(&key, testResType)
	writeU32(&key, 0) // locator: fileIndex=0, tilesetIndex=0, bifIndex=0

	key.WriteString(bifFileName)
	key.WriteByte(0)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Chitin.key"), key.Bytes(), 0o644))
}

func TestManagerLoadKeyAndResource(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("hermetic resource payload")
	buildKeyAndBif(t, dir, "test.bif", payload)

	m, err := NewManager(WithLocator(fixedPathLocator{dir}))
	require.NoError(t, err)

	key, err := m.LoadKey(platform.BaldursGate1)
	require.NoError(t, err)
	assert.Len(t, key.BifEntries, 1)
	assert.Equal(t, "test.bif", key.BifEntries[0].FileName)

	data, err := m.resourceBytes(platform.BaldursGate1, testResType, testResName)
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	got, err := LoadResource(m, platform.BaldursGate1, testResType, testResName, func(c *ieio.Cursor) ([]byte, error) {
		return c.ReadBytes(c.Len())
	})
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestManagerLoadBifFlippedExtensionCase(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("case flip payload")
	buildKeyAndBif(t, dir, "test.BIF", payload)

	m, err := NewManager(WithLocator(fixedPathLocator{dir}))
	require.NoError(t, err)

	bif, err := m.LoadBif(platform.BaldursGate1, "test.bif")
	require.NoError(t, err)
	assert.Len(t, bif.FileEntries, 1)
	assert.Equal(t, payload, bif.FileEntries[0].Data)
}

func TestFlipExtensionCase(t *testing.T) {
	cases := []struct{ in, want string }{
		{"data.bif", "data.BIF"},
		{"DATA.BIF", "DATA.bif"},
		{"Data.Bif", "Data.bif"},
		{"noext", "noext"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, flipExtensionCase(c.in))
	}
}

func TestRemoveBifRemovesEmptyOuterEntry(t *testing.T) {
	dir := t.TempDir()
	buildKeyAndBif(t, dir, "test.bif", []byte("x"))

	m, err := NewManager(WithLocator(fixedPathLocator{dir}))
	require.NoError(t, err)

	_, err = m.LoadBif(platform.BaldursGate1, "test.bif")
	require.NoError(t, err)

	v, ok := m.bifs.Load(platform.BaldursGate1)
	require.True(t, ok)
	assert.False(t, mapIsEmpty(v.(*sync.Map)))

	m.RemoveBif(platform.BaldursGate1, "test.bif")
	_, ok = m.bifs.Load(platform.BaldursGate1)
	assert.False(t, ok, "removing the last cached BIF should also remove the game's outer entry")
}

func TestFindCaseInsensitiveOneLevelDeep(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "lang", "en_US")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "DIALOG.TLK"), []byte("x"), 0o644))

	path, ok := findCaseInsensitive(dir, "dialog.tlk")
	assert.False(t, ok, "TLK lives two levels down; only one level of recursion is searched")

	path, ok = findCaseInsensitive(filepath.Join(dir, "lang"), "dialog.tlk")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(sub, "DIALOG.TLK"), path)
}

func TestLoadConfigAndWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ultima.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
games:
  baldurs-gate-1: /games/bg1
  baldurs-gate-2-ee: /games/bg2ee
`), 0o644))

	paths, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/games/bg1", paths[platform.BaldursGate1])
	assert.Equal(t, "/games/bg2ee", paths[platform.BaldursGate2EnhancedEdition])

	m, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	got, err := m.installPath(platform.BaldursGate1)
	require.NoError(t, err)
	assert.Equal(t, "/games/bg1", got)
}

func TestWithConfigFileUnrecognizedGameSlug(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("games:\n  not-a-real-game: /x\n"), 0o644))

	_, err := NewManager(WithConfigFile(path))
	assert.Error(t, err)
}

func TestManagerFixtureIntegration(t *testing.T) {
	dir := ietest.Path()
	if dir == "" {
		t.Skip("IE_TESTDATA_DIR not set")
	}

	m, err := NewManager(WithLocator(fixedPathLocator{dir}))
	require.NoError(t, err)

	key, err := m.LoadKey(platform.BaldursGate1)
	require.NoError(t, err)
	assert.NotZero(t, key.BifCount)

	tlk, err := m.LoadTlk(platform.BaldursGate1, "dialog.tlk")
	require.NoError(t, err)
	assert.NotEmpty(t, tlk.Strings)

	are, err := m.LoadAre(platform.BaldursGate1, "AR2600")
	require.NoError(t, err)
	if are.Wed != nil {
		resolved := false
		for _, ov := range are.Wed.Overlays {
			if len(ov.Tilemaps) > 0 {
				resolved = true
				break
			}
		}
		assert.True(t, resolved, "expected at least one overlay to resolve tilemaps")
	}
}
