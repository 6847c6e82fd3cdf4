//go:build windows

package platform

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// candidateRoots lists install directories worth checking before falling
// back to a registry lookup: Steam and GOG both default to predictable
// library paths on Windows.
func candidateRoots(game Games) []string {
	var roots []string
	for _, programFiles := range []string{`C:\Program Files (x86)`, `C:\Program Files`} {
		roots = append(roots,
			filepath.Join(programFiles, "GOG Galaxy", "Games", game.String()),
			filepath.Join(programFiles, "Steam", "steamapps", "common", game.String()),
		)
	}
	return roots
}

// platformFindInstallPath probes the Windows registry for the title's
// Steam or GOG uninstall entry, reading the InstallLocation value each
// registers at install time.
func platformFindInstallPath(game Games, keyName string) (string, bool) {
	if appID, ok := SteamAppID(game); ok {
		if path, ok := readUninstallInstallLocation(fmt.Sprintf(`Steam App %d`, appID)); ok && hasKeyFile(path, keyName) {
			return path, true
		}
	}
	if gogID, ok := GogGameID(game); ok {
		if path, ok := readUninstallInstallLocation(fmt.Sprintf(`GOGPACKGAME%d_is1`, gogID)); ok && hasKeyFile(path, keyName) {
			return path, true
		}
	}
	return "", false
}

func readUninstallInstallLocation(subkeyName string) (string, bool) {
	const uninstallRoot = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall\`

	for _, root := range []registry.Key{registry.CURRENT_USER, registry.LOCAL_MACHINE} {
		key, err := registry.OpenKey(root, uninstallRoot+subkeyName, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		value, _, err := key.GetStringValue("InstallLocation")
		key.Close()
		if err == nil && value != "" {
			return value, true
		}
	}
	return "", false
}
