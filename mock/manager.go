// Package mock is an in-memory stand-in for resource.Manager, for tests of
// host applications that shouldn't need a real game installation on disk.
package mock

import (
	"errors"

	"github.com/iesdk/infinity/platform"
	"github.com/iesdk/infinity/types"
)

// ErrNotFound is returned by every accessor when the requested entry was
// never registered via Add.
var ErrNotFound = errors.New("mock: not found")

// KeyEntry registers a game's KEY catalog via Add.
type KeyEntry struct {
	Game platform.Games
	Key  *types.Key
}

// BifEntry registers one of a game's BIF archives via Add.
type BifEntry struct {
	Game     platform.Games
	Filename string
	Bif      *types.Bif
}

// TlkEntry registers one of a game's TLK string tables via Add.
type TlkEntry struct {
	Game     platform.Games
	Filename string
	Tlk      *types.Tlk
}

// AreEntry registers one of a game's decoded ARE areas via Add.
type AreEntry struct {
	Game platform.Games
	Name string
	Are  *types.Are
}

// TisEntry registers one of a game's decoded TIS tilesets via Add.
type TisEntry struct {
	Game platform.Games
	Name string
	Tis  *types.Tis
}

// BmpEntry registers one of a game's decoded BMP resources via Add.
type BmpEntry struct {
	Game platform.Games
	Name string
	Bmp  *types.Bmp
}

// Manager is a lightweight in-memory implementation of the same lookups
// resource.Manager provides, populated entirely via Add.
type Manager struct {
	keys map[platform.Games]*types.Key
	bifs map[platform.Games]map[string]*types.Bif
	tlks map[platform.Games]map[string]*types.Tlk
	ares map[platform.Games]map[string]*types.Are
	tis  map[platform.Games]map[string]*types.Tis
	bmps map[platform.Games]map[string]*types.Bmp
}

// New creates an empty mock Manager.
func New() *Manager {
	return &Manager{
		keys: make(map[platform.Games]*types.Key),
		bifs: make(map[platform.Games]map[string]*types.Bif),
		tlks: make(map[platform.Games]map[string]*types.Tlk),
		ares: make(map[platform.Games]map[string]*types.Are),
		tis:  make(map[platform.Games]map[string]*types.Tis),
		bmps: make(map[platform.Games]map[string]*types.Bmp),
	}
}

// Add registers the given entry into the mock Manager. Unlike the game
// types from a single-title SDK, a decoded KEY/BIF/TLK/ARE/TIS/BMP carries
// no (game, name) of its own, so Add's type switch matches on small wrapper
// types rather than the decoded values directly.
func (m *Manager) Add(v any) {
	switch x := v.(type) {
	case KeyEntry:
		m.keys[x.Game] = x.Key
	case BifEntry:
		m.bifCache(x.Game)[x.Filename] = x.Bif
	case TlkEntry:
		m.tlkCache(x.Game)[x.Filename] = x.Tlk
	case AreEntry:
		m.areCache(x.Game)[x.Name] = x.Are
	case TisEntry:
		m.tisCache(x.Game)[x.Name] = x.Tis
	case BmpEntry:
		m.bmpCache(x.Game)[x.Name] = x.Bmp
	}
}

func (m *Manager) bifCache(game platform.Games) map[string]*types.Bif {
	c, ok := m.bifs[game]
	if !ok {
		c = make(map[string]*types.Bif)
		m.bifs[game] = c
	}
	return c
}

func (m *Manager) tlkCache(game platform.Games) map[string]*types.Tlk {
	c, ok := m.tlks[game]
	if !ok {
		c = make(map[string]*types.Tlk)
		m.tlks[game] = c
	}
	return c
}

func (m *Manager) areCache(game platform.Games) map[string]*types.Are {
	c, ok := m.ares[game]
	if !ok {
		c = make(map[string]*types.Are)
		m.ares[game] = c
	}
	return c
}

func (m *Manager) tisCache(game platform.Games) map[string]*types.Tis {
	c, ok := m.tis[game]
	if !ok {
		c = make(map[string]*types.Tis)
		m.tis[game] = c
	}
	return c
}

func (m *Manager) bmpCache(game platform.Games) map[string]*types.Bmp {
	c, ok := m.bmps[game]
	if !ok {
		c = make(map[string]*types.Bmp)
		m.bmps[game] = c
	}
	return c
}

// LoadKey returns game's registered KEY catalog.
func (m *Manager) LoadKey(game platform.Games) (*types.Key, error) {
	if v, ok := m.keys[game]; ok {
		return v, nil
	}
	return nil, ErrNotFound
}

// LoadBif returns one of game's registered BIF archives.
func (m *Manager) LoadBif(game platform.Games, filename string) (*types.Bif, error) {
	if v, ok := m.bifCache(game)[filename]; ok {
		return v, nil
	}
	return nil, ErrNotFound
}

// LoadTlk returns one of game's registered TLK string tables.
func (m *Manager) LoadTlk(game platform.Games, filename string) (*types.Tlk, error) {
	if v, ok := m.tlkCache(game)[filename]; ok {
		return v, nil
	}
	return nil, ErrNotFound
}

// LoadAre returns one of game's registered decoded ARE areas.
func (m *Manager) LoadAre(game platform.Games, name string) (*types.Are, error) {
	if v, ok := m.areCache(game)[name]; ok {
		return v, nil
	}
	return nil, ErrNotFound
}

// LoadTileset returns one of game's registered decoded TIS tilesets.
func (m *Manager) LoadTileset(game platform.Games, name string) (*types.Tis, error) {
	if v, ok := m.tisCache(game)[name]; ok {
		return v, nil
	}
	return nil, ErrNotFound
}

// LoadBmp returns one of game's registered decoded BMP resources.
func (m *Manager) LoadBmp(game platform.Games, name string) (*types.Bmp, error) {
	if v, ok := m.bmpCache(game)[name]; ok {
		return v, nil
	}
	return nil, ErrNotFound
}

// RemoveBif evicts one registered BIF entry, mirroring resource.Manager's
// eviction semantics for host-app tests that exercise cache invalidation.
func (m *Manager) RemoveBif(game platform.Games, filename string) {
	delete(m.bifCache(game), filename)
}
