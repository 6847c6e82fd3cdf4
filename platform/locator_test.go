package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasKeyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CHITIN.KEY"), []byte("x"), 0o644))

	assert.True(t, hasKeyFile(dir, "CHITIN.KEY"))
	assert.False(t, hasKeyFile(dir, "missing.key"))
	assert.False(t, hasKeyFile("", "CHITIN.KEY"))
}

func TestDefaultLocatorUnknownGame(t *testing.T) {
	_, ok := DefaultLocator{}.FindInstallPath(None)
	assert.False(t, ok)
}
