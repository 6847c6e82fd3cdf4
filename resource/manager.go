// Package resource resolves Infinity Engine resource names to decoded
// values, lazily reading and caching each game's KEY catalog, BIF
// archives, and TLK string tables from its installation directory.
package resource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/iesdk/infinity/internal/fileio"
	"github.com/iesdk/infinity/internal/ieio"
	"github.com/iesdk/infinity/platform"
	"github.com/iesdk/infinity/types"
)

// ErrNotFound is returned when a requested resource, BIF entry, or install
// path cannot be located.
var ErrNotFound = errors.New("infinity: resource not found")

// Manager is a per-process cache of decoded KEY catalogs, BIF archives, and
// TLK string tables, keyed by game. mu guards only the install-path table;
// the caches are sync.Maps read without a lock. Two concurrent loads of the
// same uncached entry may each decode it, and the first value stored is the
// one both callers get back.
type Manager struct {
	locator platform.InstallLocator

	mu           sync.RWMutex
	installPaths map[platform.Games]string

	keys sync.Map // platform.Games -> *types.Key
	bifs sync.Map // platform.Games -> *sync.Map (filename -> *types.Bif)
	tlks sync.Map // platform.Games -> *sync.Map (filename -> *types.Tlk)

	configErr error
}

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithLocator overrides the default platform.DefaultLocator.
func WithLocator(locator platform.InstallLocator) Option {
	return func(m *Manager) { m.locator = locator }
}

// WithConfigFile loads a YAML config (see LoadConfig) and applies every
// entry via SetInstallPath. A malformed file surfaces as NewManager's
// returned error.
func WithConfigFile(path string) Option {
	return func(m *Manager) {
		paths, err := LoadConfig(path)
		if err != nil {
			m.configErr = err
			return
		}
		for game, p := range paths {
			m.SetInstallPath(game, p)
		}
	}
}

// NewManager constructs a Manager with the given options applied in order.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{
		locator:      platform.DefaultLocator{},
		installPaths: make(map[platform.Games]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.configErr != nil {
		return nil, m.configErr
	}
	return m, nil
}

// SetInstallPath overrides the installation directory for game, bypassing
// the InstallLocator.
func (m *Manager) SetInstallPath(game platform.Games, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.installPaths[game] = path
}

func (m *Manager) installPath(game platform.Games) (string, error) {
	m.mu.RLock()
	path, ok := m.installPaths[game]
	m.mu.RUnlock()
	if ok {
		return path, nil
	}

	path, ok = m.locator.FindInstallPath(game)
	if !ok {
		return "", fmt.Errorf("%w: no installation path for %s", ErrNotFound, game)
	}
	return path, nil
}

// LoadKey reads and caches the game's KEY catalog.
func (m *Manager) LoadKey(game platform.Games) (*types.Key, error) {
	if v, ok := m.keys.Load(game); ok {
		return v.(*types.Key), nil
	}

	dir, err := m.installPath(game)
	if err != nil {
		return nil, err
	}
	keyName, ok := platform.KeyFileName(game)
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized game", ErrNotFound)
	}

	data, err := fileio.ReadAll(filepath.Join(dir, keyName))
	if err != nil {
		return nil, err
	}
	key, err := types.DecodeKey(ieio.NewCursor(data))
	if err != nil {
		return nil, fmt.Errorf("infinity: decode KEY for %s: %w", game, err)
	}

	actual, _ := m.keys.LoadOrStore(game, key)
	return actual.(*types.Key), nil
}

func (m *Manager) bifCache(game platform.Games) *sync.Map {
	v, _ := m.bifs.LoadOrStore(game, &sync.Map{})
	return v.(*sync.Map)
}

func (m *Manager) tlkCache(game platform.Games) *sync.Map {
	v, _ := m.tlks.LoadOrStore(game, &sync.Map{})
	return v.(*sync.Map)
}

// LoadBif reads and caches one of the game's BIF archives, decompressing
// BIFC/BIFCC variants transparently. If filename isn't found as given, the
// extension's case is flipped once (".bif" <-> ".BIF") to accommodate
// case-sensitive filesystems hosting a Windows-cased install.
func (m *Manager) LoadBif(game platform.Games, filename string) (*types.Bif, error) {
	cache := m.bifCache(game)
	if v, ok := cache.Load(filename); ok {
		return v.(*types.Bif), nil
	}

	dir, err := m.installPath(game)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, filepathFromKeyPath(filename))
	data, err := fileio.ReadAll(path)
	if err != nil {
		flipped := flipExtensionCase(filename)
		data, err = fileio.ReadAll(filepath.Join(dir, filepathFromKeyPath(flipped)))
		if err != nil {
			return nil, fmt.Errorf("%w: BIF %s", ErrNotFound, filename)
		}
	}

	bif, err := decodeBifBytes(data)
	if err != nil {
		return nil, fmt.Errorf("infinity: decode BIF %s: %w", filename, err)
	}

	actual, _ := cache.LoadOrStore(filename, bif)
	return actual.(*types.Bif), nil
}

// filepathFromKeyPath rebuilds a KEY-stored path for the host filesystem.
// BIF filenames are stored as Windows paths (e.g. "data\Default.bif");
// filepath.Join/Clean leaves '\' untouched on non-Windows platforms, so the
// stored separator is split out and rejoined with filepath.Join, mirroring
// original_source's formatFilePath.
func filepathFromKeyPath(keyPath string) string {
	parts := strings.Split(keyPath, `\`)
	return filepath.Join(parts...)
}

// flipExtensionCase swaps a file extension between its as-given case and
// the opposite, e.g. "data.bif" -> "data.BIF", "DATA.BIF" -> "DATA.bif".
func flipExtensionCase(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return filename
	}
	base := filename[:len(filename)-len(ext)]
	if ext == strings.ToLower(ext) {
		return base + strings.ToUpper(ext)
	}
	return base + strings.ToLower(ext)
}

// decodeBifBytes sniffs the identity signature to select the plain/BIFC/
// BIFCC decode path, inflating compressed variants into a plain Bif.
func decodeBifBytes(data []byte) (*types.Bif, error) {
	identity, err := types.DecodeIdentity(ieio.NewCursor(data))
	if err != nil {
		return nil, err
	}

	switch identity.Signature {
	case types.BifSignature:
		return types.DecodeBif(ieio.NewCursor(data))
	case types.BifcSignature:
		bifc, err := types.DecodeBifc(ieio.NewCursor(data))
		if err != nil {
			return nil, err
		}
		return bifc.ToBif()
	case types.BifccSignature:
		bifcc, err := types.DecodeBifcc(ieio.NewCursor(data))
		if err != nil {
			return nil, err
		}
		return bifcc.ToBif()
	default:
		return nil, fmt.Errorf("infinity: unrecognized BIF signature %q", identity.Signature)
	}
}

// resourceBytes finds the unique (resType, name) entry in game's KEY
// catalog, loads the BIF it points into, and returns the matching file
// entry's raw payload bytes.
func (m *Manager) resourceBytes(game platform.Games, resType uint16, name string) ([]byte, error) {
	key, err := m.LoadKey(game)
	if err != nil {
		return nil, err
	}
	entry, ok := key.FindResource(resType, name)
	if !ok {
		return nil, fmt.Errorf("%w: resource %s (type %d)", ErrNotFound, name, resType)
	}
	if int(entry.BifIndex()) >= len(key.BifEntries) {
		return nil, fmt.Errorf("%w: BIF index out of range for %s", ErrNotFound, name)
	}

	bif, err := m.LoadBif(game, key.BifEntries[entry.BifIndex()].FileName)
	if err != nil {
		return nil, err
	}

	for _, fe := range bif.FileEntries {
		if fe.Index() == entry.FileIndex() {
			return fe.Data, nil
		}
	}
	return nil, fmt.Errorf("%w: file entry for %s not found in BIF", ErrNotFound, name)
}

// LoadResource finds the unique (resType, name) entry in game's KEY
// catalog, loads the BIF it points into, and decodes its payload with
// decode. T is the decoder's result type — callers supply the
// type-specific decode function, e.g. LoadResource(m, game, typeWed,
// "AR2600", types.DecodeWed).
func LoadResource[T any](m *Manager, game platform.Games, resType uint16, name string, decode func(*ieio.Cursor) (T, error)) (T, error) {
	var zero T
	data, err := m.resourceBytes(game, resType, name)
	if err != nil {
		return zero, err
	}
	return decode(ieio.NewCursor(data))
}

// LoadTileset is LoadResource's TIS-specific counterpart: TIS payloads are
// pre-decoded BIF tileset entries (matched by TilesetIndex, not
// FileIndex), not raw bytes a generic decode function can run over.
func (m *Manager) LoadTileset(game platform.Games, name string) (*types.Tis, error) {
	key, err := m.LoadKey(game)
	if err != nil {
		return nil, err
	}
	entry, ok := key.FindResource(typeTis, name)
	if !ok {
		return nil, fmt.Errorf("%w: tileset %s", ErrNotFound, name)
	}
	if int(entry.BifIndex()) >= len(key.BifEntries) {
		return nil, fmt.Errorf("%w: BIF index out of range for %s", ErrNotFound, name)
	}

	bif, err := m.LoadBif(game, key.BifEntries[entry.BifIndex()].FileName)
	if err != nil {
		return nil, err
	}

	for _, te := range bif.TilesetEntries {
		if te.Index() == entry.TilesetIndex() {
			return te.Data, nil
		}
	}
	return nil, fmt.Errorf("%w: tileset entry for %s not found in BIF", ErrNotFound, name)
}

// LoadAre loads and decodes an ARE resource, then resolves and attaches its
// WED (named by the ARE header's WedName) to the returned value's Wed
// field, with the tilemaps of every overlay whose tileset loads, and the
// WED's wall groups, resolved. Overlays whose tileset cannot be loaded keep
// empty tilemaps, and resolution errors are not reported: a missing or
// undecodable WED leaves Wed nil. Resolving the WED — and the overlay/
// wall-group tables DecodeWed leaves unread — is a resource-manager
// concern, not a decode concern, since each step requires its own KEY/BIF
// lookup to learn a tile count decode alone can't determine.
func (m *Manager) LoadAre(game platform.Games, name string) (*types.Are, error) {
	are, err := LoadResource(m, game, typeAre, name, func(c *ieio.Cursor) (*types.Are, error) {
		return types.DecodeAre(c, game.IsPlanescape())
	})
	if err != nil {
		return nil, err
	}

	wedData, err := m.resourceBytes(game, typeWed, are.Header.WedName)
	if err != nil {
		return are, nil // ARE without a resolvable WED is still a valid result
	}
	wed, err := types.DecodeWed(ieio.NewCursor(wedData))
	if err != nil {
		return are, nil
	}
	are.Wed = wed

	for i := range wed.Overlays {
		tis, err := m.LoadTileset(game, wed.Overlays[i].TilesetName)
		if err != nil {
			continue
		}
		_ = wed.Overlays[i].ResolveTiles(ieio.NewCursor(wedData), uint32(len(tis.Tiles)))
	}
	_ = wed.ResolveWallGroups(ieio.NewCursor(wedData))

	return are, nil
}

// LoadTlk finds filename under game's install directory, searching one
// level of subdirectories, matching case-insensitively, decodes, and
// caches the result.
func (m *Manager) LoadTlk(game platform.Games, filename string) (*types.Tlk, error) {
	cache := m.tlkCache(game)
	if v, ok := cache.Load(filename); ok {
		return v.(*types.Tlk), nil
	}

	dir, err := m.installPath(game)
	if err != nil {
		return nil, err
	}

	path, ok := findCaseInsensitive(dir, filename)
	if !ok {
		return nil, fmt.Errorf("%w: TLK %s", ErrNotFound, filename)
	}

	data, err := fileio.ReadAll(path)
	if err != nil {
		return nil, err
	}
	tlk, err := types.DecodeTlk(ieio.NewCursor(data))
	if err != nil {
		return nil, fmt.Errorf("infinity: decode TLK %s: %w", filename, err)
	}

	actual, _ := cache.LoadOrStore(filename, tlk)
	return actual.(*types.Tlk), nil
}

// findCaseInsensitive looks for name directly under root and in each of
// root's immediate subdirectories, comparing case-insensitively.
func findCaseInsensitive(root, name string) (string, bool) {
	if path, ok := matchInDir(root, name); ok {
		return path, true
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if path, ok := matchInDir(filepath.Join(root, e.Name()), name); ok {
			return path, true
		}
	}
	return "", false
}

func matchInDir(dir, name string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(e.Name(), name) {
			return filepath.Join(dir, e.Name()), true
		}
	}
	return "", false
}

// RemoveKey evicts game's cached KEY catalog.
func (m *Manager) RemoveKey(game platform.Games) {
	m.keys.Delete(game)
}

// RemoveBif evicts one cached BIF entry for game. Removing the last cached
// BIF for a game also removes the game's now-empty inner cache.
func (m *Manager) RemoveBif(game platform.Games, filename string) {
	v, ok := m.bifs.Load(game)
	if !ok {
		return
	}
	cache := v.(*sync.Map)
	cache.Delete(filename)
	if mapIsEmpty(cache) {
		m.bifs.Delete(game)
	}
}

// RemoveTlk evicts one cached TLK for game, removing the game's inner
// cache if it becomes empty.
func (m *Manager) RemoveTlk(game platform.Games, filename string) {
	v, ok := m.tlks.Load(game)
	if !ok {
		return
	}
	cache := v.(*sync.Map)
	cache.Delete(filename)
	if mapIsEmpty(cache) {
		m.tlks.Delete(game)
	}
}

func mapIsEmpty(m *sync.Map) bool {
	empty := true
	m.Range(func(_, _ any) bool {
		empty = false
		return false
	})
	return empty
}

// Resource type codes used by LoadTileset/LoadAre to look up KEY entries.
// These mirror the IE resource type constants (.TIS = 0x3eb, .WED = 0x3e9,
// .ARE = 0x3f2) rather than being re-derived per call site.
const (
	typeTis uint16 = 0x03eb
	typeWed uint16 = 0x03e9
	typeAre uint16 = 0x03f2
)
