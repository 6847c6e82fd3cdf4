package resource

import (
	"fmt"
	"os"

	"github.com/iesdk/infinity/platform"
	"gopkg.in/yaml.v3"
)

// configFile is the on-disk shape of a resource-manager config file: a
// single "games" map from a short game slug to its install directory.
type configFile struct {
	Games map[string]string `yaml:"games"`
}

// gameSlugs maps the YAML config's short game names to platform.Games,
// matching the slugs shown in SPEC_FULL.md's example config.
var gameSlugs = map[string]platform.Games{
	"baldurs-gate-1":        platform.BaldursGate1,
	"baldurs-gate-1-ee":     platform.BaldursGate1EnhancedEdition,
	"baldurs-gate-2":        platform.BaldursGate2,
	"baldurs-gate-2-ee":     platform.BaldursGate2EnhancedEdition,
	"icewind-dale-1":        platform.IcewindDale1,
	"icewind-dale-1-ee":     platform.IcewindDale1EnhancedEdition,
	"icewind-dale-2":        platform.IcewindDale2,
	"planescape-torment":    platform.PlanescapeTorment,
	"planescape-torment-ee": platform.PlanescapeTormentEnhancedEdition,
}

// LoadConfig reads a YAML file mapping game slugs to install directories
// and returns it as a platform.Games-keyed map, ready to feed into
// SetInstallPath calls (see WithConfigFile).
func LoadConfig(path string) (map[platform.Games]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("infinity: read config %s: %w", path, err)
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("infinity: parse config %s: %w", path, err)
	}

	paths := make(map[platform.Games]string, len(cfg.Games))
	for slug, dir := range cfg.Games {
		game, ok := gameSlugs[slug]
		if !ok {
			return nil, fmt.Errorf("infinity: config %s: unrecognized game %q", path, slug)
		}
		paths[game] = dir
	}
	return paths, nil
}
