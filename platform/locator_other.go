//go:build !windows

package platform

import (
	"os"
	"path/filepath"
	"strconv"
)

// candidateRoots lists install directories worth checking on Linux/macOS:
// native Steam library folders plus the Wine prefixes Steam Play (Proton)
// and GOG's Linux installers commonly use.
func candidateRoots(game Games) []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	var roots []string
	for _, steamRoot := range []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
	} {
		roots = append(roots, filepath.Join(steamRoot, "steamapps", "common", game.String()))

		if appID, ok := SteamAppID(game); ok {
			roots = append(roots, filepath.Join(
				steamRoot, "steamapps", "compatdata", strconv.FormatUint(uint64(appID), 10), "pfx",
				"drive_c", "Program Files (x86)", "Steam", "steamapps", "common", game.String(),
			))
		}
	}

	roots = append(roots,
		filepath.Join(home, "GOG Games", game.String()),
		filepath.Join("/usr/local/games", game.String()),
	)

	return roots
}

// platformFindInstallPath has no further probing to offer on this platform
// beyond the common install roots candidateRoots already checked — there
// is no Linux registry-equivalent install database to query.
func platformFindInstallPath(game Games, keyName string) (string, bool) {
	return "", false
}
