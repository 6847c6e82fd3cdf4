package types

import (
	"fmt"

	"github.com/iesdk/infinity/internal/bits"
	"github.com/iesdk/infinity/internal/ieio"
	"github.com/kelindar/intmap"
)

// KeySignature and KeyVersion are the fixed identity fields of a KEY file.
const (
	KeySignature = "KEY "
	KeyVersion   = "V1  "
)

// Key is the per-game master catalog mapping (resource name, type) to
// (BIF, locator).
type Key struct {
	Identity        Identity
	BifCount        uint32
	ResourceCount   uint32
	BifOffset       uint32
	ResourceOffset  uint32
	BifEntries      []BifEntry
	ResourceEntries []ResourceEntry

	lookup *intmap.Map // (type,name) hash -> index into ResourceEntries
}

// BifEntry describes one BIF archive referenced by a KEY file.
type BifEntry struct {
	FileName       string
	FileLength     uint32
	FileNameOffset uint32
	FileNameLength uint16
	LocatorBits    uint16
}

// ResourceEntry maps a resref+type pair to a packed locator identifying a
// BIF entry and a position within it.
type ResourceEntry struct {
	Name    string
	Type    uint16
	Locator uint32
}

const (
	locatorFileWidth    = 14
	locatorTilesetWidth = 6
	locatorBifWidth     = 12
)

// FileIndex returns the non-tileset file index, bits [0:14).
func (e ResourceEntry) FileIndex() uint32 {
	return uint32(bits.ReadValue(uint64(e.Locator), locatorFileWidth, 0))
}

// TilesetIndex returns the tileset index, bits [14:20).
func (e ResourceEntry) TilesetIndex() uint32 {
	return uint32(bits.ReadValue(uint64(e.Locator), locatorTilesetWidth, locatorFileWidth))
}

// BifIndex returns the source BIF entry index, bits [20:32).
func (e ResourceEntry) BifIndex() uint32 {
	return uint32(bits.ReadValue(uint64(e.Locator), locatorBifWidth, locatorFileWidth+locatorTilesetWidth))
}

// DecodeKey reads a complete KEY catalog: header, then BIF entries at
// bifOffset, then resource entries at resourceOffset, then each BIF
// entry's filename at its own fileNameOffset.
func DecodeKey(c *ieio.Cursor) (*Key, error) {
	identity, err := DecodeIdentity(c)
	if err != nil {
		return nil, err
	}
	if identity.Signature != KeySignature || identity.Version != KeyVersion {
		return nil, fmt.Errorf("infinity: bad KEY signature %q/%q", identity.Signature, identity.Version)
	}

	bifCount, err := c.U32()
	if err != nil {
		return nil, err
	}
	resourceCount, err := c.U32()
	if err != nil {
		return nil, err
	}
	bifOffset, err := c.U32()
	if err != nil {
		return nil, err
	}
	resourceOffset, err := c.U32()
	if err != nil {
		return nil, err
	}

	if err := c.SeekTo(int(bifOffset)); err != nil {
		return nil, err
	}
	bifEntries := make([]BifEntry, 0, bifCount)
	for i := uint32(0); i < bifCount; i++ {
		e, err := decodeBifEntry(c)
		if err != nil {
			return nil, err
		}
		bifEntries = append(bifEntries, e)
	}

	if err := c.SeekTo(int(resourceOffset)); err != nil {
		return nil, err
	}
	resourceEntries := make([]ResourceEntry, 0, resourceCount)
	lookup := intmap.New(int(resourceCount)+1, 0.9)
	for i := uint32(0); i < resourceCount; i++ {
		e, err := decodeResourceEntry(c)
		if err != nil {
			return nil, err
		}
		resourceEntries = append(resourceEntries, e)
		key := resourceLookupKey(e.Type, e.Name)
		if _, ok := lookup.Load(key); !ok {
			lookup.Store(key, i) // first match in on-disk order wins
		}
	}

	for i := range bifEntries {
		entry := &bifEntries[i]
		if err := c.SeekTo(int(entry.FileNameOffset)); err != nil {
			return nil, err
		}
		n := int(entry.FileNameLength)
		if n > 0 {
			n-- // drop the terminating NUL per the filename-length convention
		}
		name, err := c.String(n)
		if err != nil {
			return nil, err
		}
		entry.FileName = name
	}

	return &Key{
		Identity:        identity,
		BifCount:        bifCount,
		ResourceCount:   resourceCount,
		BifOffset:       bifOffset,
		ResourceOffset:  resourceOffset,
		BifEntries:      bifEntries,
		ResourceEntries: resourceEntries,
		lookup:          lookup,
	}, nil
}

func decodeBifEntry(c *ieio.Cursor) (BifEntry, error) {
	var e BifEntry
	var err error
	if e.FileLength, err = c.U32(); err != nil {
		return e, err
	}
	if e.FileNameOffset, err = c.U32(); err != nil {
		return e, err
	}
	if e.FileNameLength, err = c.U16(); err != nil {
		return e, err
	}
	if e.LocatorBits, err = c.U16(); err != nil {
		return e, err
	}
	return e, nil
}

func decodeResourceEntry(c *ieio.Cursor) (ResourceEntry, error) {
	var e ResourceEntry
	var err error
	if e.Name, err = c.ResRef(); err != nil {
		return e, err
	}
	if e.Type, err = c.U16(); err != nil {
		return e, err
	}
	if e.Locator, err = c.U32(); err != nil {
		return e, err
	}
	return e, nil
}

func resourceLookupKey(resType uint16, name string) uint32 {
	var h uint32 = 2166136261 // FNV-1a offset basis
	for i := 0; i < len(name); i++ {
		h ^= uint32(name[i])
		h *= 16777619
	}
	return h ^ uint32(resType)<<16
}

// FindResource returns the first resource entry in on-disk order matching
// (resType, name), matching the spec's tie-break rule for duplicate
// localization-patch entries.
func (k *Key) FindResource(resType uint16, name string) (ResourceEntry, bool) {
	if k.lookup != nil {
		if idx, ok := k.lookup.Load(resourceLookupKey(resType, name)); ok {
			if e := k.ResourceEntries[idx]; e.Type == resType && e.Name == name {
				return e, true
			}
		}
	}
	for _, e := range k.ResourceEntries {
		if e.Type == resType && e.Name == name {
			return e, true
		}
	}
	return ResourceEntry{}, false
}
