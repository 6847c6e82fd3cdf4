package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAllRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.bin")
	want := []byte("infinity engine fixture bytes")
	require.NoError(t, os.WriteFile(path, want, 0o644))

	got, err := ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadAllMissingFile(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}
