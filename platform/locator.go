package platform

import (
	"os"
	"path/filepath"
)

// InstallLocator finds the installation directory of an Infinity Engine
// title on the local machine.
type InstallLocator interface {
	// FindInstallPath returns the directory containing game's KEY file, and
	// false if no installation could be found.
	FindInstallPath(game Games) (string, bool)
}

// DefaultLocator is the best-effort, platform-native InstallLocator: it
// checks common install roots first, then falls back to the
// platform-specific probe in locator_windows.go / locator_other.go.
type DefaultLocator struct{}

var _ InstallLocator = DefaultLocator{}

// FindInstallPath implements InstallLocator.
func (DefaultLocator) FindInstallPath(game Games) (string, bool) {
	keyName, ok := KeyFileName(game)
	if !ok {
		return "", false
	}

	for _, root := range candidateRoots(game) {
		if hasKeyFile(root, keyName) {
			return root, true
		}
	}

	return platformFindInstallPath(game, keyName)
}

// FindInstallPath is the package-level convenience form of
// DefaultLocator{}.FindInstallPath, for callers that don't need to supply
// their own InstallLocator.
func FindInstallPath(game Games) (string, bool) {
	return DefaultLocator{}.FindInstallPath(game)
}

// hasKeyFile reports whether dir contains a file with exactly the given
// name; no other case of the name is tried.
func hasKeyFile(dir, name string) bool {
	if dir == "" {
		return false
	}
	if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
		return true
	}
	return false
}
