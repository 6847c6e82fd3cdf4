package types

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/iesdk/infinity/internal/bits"
	"github.com/iesdk/infinity/internal/ieio"
)

const (
	BifSignature = "BIFF"
	BifVersion   = "V1  "
)

// Bif is a decoded plain BIFF archive, eagerly materializing every file and
// tileset payload. The same archive is usually opened once and consulted
// for many resources, and archives are bounded (a few hundred MB at most),
// so eager decode avoids re-seeking the backing file per resource.
type Bif struct {
	Identity       Identity
	FileCount      uint32
	TilesetCount   uint32
	Offset         uint32
	FileEntries    []FileEntry
	TilesetEntries []TilesetEntry
}

// FileEntry describes one opaque resource payload inside a BIF archive.
type FileEntry struct {
	Locator uint32
	Offset  uint32
	Size    uint32
	Type    uint16
	Unknown uint16
	Data    []byte
}

// Index returns the non-tileset file index matched against a KEY resource
// locator's FileIndex, bits [0:14).
func (e FileEntry) Index() uint32 {
	return uint32(bits.ReadValue(uint64(e.Locator), 14, 0))
}

// TilesetEntry describes one pre-decoded TIS payload inside a BIF archive.
type TilesetEntry struct {
	Locator   uint32
	Offset    uint32
	TileCount uint32
	TileSize  uint32
	Type      uint16
	Unknown   uint16
	Data      *Tis
}

// Index returns the tileset index matched against a KEY resource locator's
// TilesetIndex, bits [14:20).
func (e TilesetEntry) Index() uint32 {
	return uint32(bits.ReadValue(uint64(e.Locator), 6, 14))
}

// DecodeBif reads a complete plain BIFF archive: header, file entries,
// tileset entries, then each entry's payload bytes at its own offset.
func DecodeBif(c *ieio.Cursor) (*Bif, error) {
	identity, err := DecodeIdentity(c)
	if err != nil {
		return nil, fmt.Errorf("infinity: read BIFF identity: %w", err)
	}
	if identity.Signature != BifSignature || identity.Version != BifVersion {
		return nil, fmt.Errorf("infinity: bad BIFF signature %q/%q", identity.Signature, identity.Version)
	}

	fileCount, err := c.U32()
	if err != nil {
		return nil, fmt.Errorf("infinity: read BIFF file count: %w", err)
	}
	tilesetCount, err := c.U32()
	if err != nil {
		return nil, fmt.Errorf("infinity: read BIFF tileset count: %w", err)
	}
	offset, err := c.U32()
	if err != nil {
		return nil, fmt.Errorf("infinity: read BIFF offset: %w", err)
	}

	fileEntries := make([]FileEntry, 0, fileCount)
	for i := uint32(0); i < fileCount; i++ {
		e, err := decodeFileEntry(c)
		if err != nil {
			return nil, fmt.Errorf("infinity: parse BIFF file entry #%d: %w", i, err)
		}
		fileEntries = append(fileEntries, e)
	}

	tilesetEntries := make([]TilesetEntry, 0, tilesetCount)
	for i := uint32(0); i < tilesetCount; i++ {
		e, err := decodeTilesetEntry(c)
		if err != nil {
			return nil, fmt.Errorf("infinity: parse BIFF tileset entry #%d: %w", i, err)
		}
		tilesetEntries = append(tilesetEntries, e)
	}

	for i := range fileEntries {
		entry := &fileEntries[i]
		if err := c.SeekTo(int(entry.Offset)); err != nil {
			return nil, err
		}
		data, err := c.ReadBytes(int(entry.Size))
		if err != nil {
			return nil, fmt.Errorf("infinity: read BIFF file entry #%d payload: %w", i, err)
		}
		entry.Data = data
	}

	for i := range tilesetEntries {
		entry := &tilesetEntries[i]
		if err := c.SeekTo(int(entry.Offset)); err != nil {
			return nil, err
		}
		tis, err := DecodeTisTiles(c, entry.TileCount)
		if err != nil {
			return nil, fmt.Errorf("infinity: read BIFF tileset entry #%d payload: %w", i, err)
		}
		entry.Data = tis
	}

	return &Bif{
		Identity:       identity,
		FileCount:      fileCount,
		TilesetCount:   tilesetCount,
		Offset:         offset,
		FileEntries:    fileEntries,
		TilesetEntries: tilesetEntries,
	}, nil
}

func decodeFileEntry(c *ieio.Cursor) (FileEntry, error) {
	var e FileEntry
	var err error
	if e.Locator, err = c.U32(); err != nil {
		return e, err
	}
	if e.Offset, err = c.U32(); err != nil {
		return e, err
	}
	if e.Size, err = c.U32(); err != nil {
		return e, err
	}
	if e.Type, err = c.U16(); err != nil {
		return e, err
	}
	if e.Unknown, err = c.U16(); err != nil {
		return e, err
	}
	return e, nil
}

func decodeTilesetEntry(c *ieio.Cursor) (TilesetEntry, error) {
	var e TilesetEntry
	var err error
	if e.Locator, err = c.U32(); err != nil {
		return e, err
	}
	if e.Offset, err = c.U32(); err != nil {
		return e, err
	}
	if e.TileCount, err = c.U32(); err != nil {
		return e, err
	}
	if e.TileSize, err = c.U32(); err != nil {
		return e, err
	}
	if e.Type, err = c.U16(); err != nil {
		return e, err
	}
	if e.Unknown, err = c.U16(); err != nil {
		return e, err
	}
	return e, nil
}

const (
	BifcSignature = "BIF "
	BifcVersion   = "V1.0"
)

// Bifc is a single-stream zlib-compressed BIF archive (BIFC V1.0).
type Bifc struct {
	Identity           Identity
	FileNameLength     uint32
	FileName           string
	UncompressedLength uint32
	CompressedLength   uint32
	CompressedData     []byte
}

// DecodeBifc reads a BIFC header and its one compressed block.
func DecodeBifc(c *ieio.Cursor) (*Bifc, error) {
	identity, err := DecodeIdentity(c)
	if err != nil {
		return nil, err
	}
	if identity.Signature != BifcSignature || identity.Version != BifcVersion {
		return nil, fmt.Errorf("infinity: bad BIFC signature %q/%q", identity.Signature, identity.Version)
	}

	nameLen, err := c.U32()
	if err != nil {
		return nil, err
	}
	name := ""
	if nameLen > 0 {
		name, err = c.String(int(nameLen) - 1) // NUL dropped
		if err != nil {
			return nil, err
		}
		if err := c.Skip(1); err != nil { // account for the dropped NUL
			return nil, err
		}
	}

	uncompressedLength, err := c.U32()
	if err != nil {
		return nil, err
	}
	compressedLength, err := c.U32()
	if err != nil {
		return nil, err
	}
	compressedData, err := c.ReadBytes(int(compressedLength))
	if err != nil {
		return nil, err
	}

	return &Bifc{
		Identity:           identity,
		FileNameLength:     nameLen,
		FileName:           name,
		UncompressedLength: uncompressedLength,
		CompressedLength:   compressedLength,
		CompressedData:     compressedData,
	}, nil
}

// ToBif inflates the single zlib stream and decodes the result as a plain
// BIFF archive.
func (b *Bifc) ToBif() (*Bif, error) {
	r, err := zlib.NewReader(bytes.NewReader(b.CompressedData))
	if err != nil {
		return nil, fmt.Errorf("infinity: BIFC zlib init: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("infinity: BIFC zlib inflate: %w", err)
	}
	if uint32(len(data)) != b.UncompressedLength {
		return nil, fmt.Errorf("infinity: BIFC inflated length %d != declared %d", len(data), b.UncompressedLength)
	}

	return DecodeBif(ieio.NewCursor(data))
}

const (
	BifccSignature = "BIFC"
	BifccVersion   = "V1.0"
)

// Bifcc is a block-chained zlib-compressed BIF archive (BIFCC V1.0).
type Bifcc struct {
	Identity         Identity
	UncompressedSize uint32
	Blocks           []BifccBlock
}

// BifccBlock is one {decompressedSize, compressedSize, compressedBytes}
// chunk of a BIFCC archive.
type BifccBlock struct {
	DecompressedSize uint32
	CompressedSize   uint32
	CompressedData   []byte
}

// DecodeBifcc reads a BIFCC header and all of its trailing compressed
// blocks, which run to the end of the cursor.
func DecodeBifcc(c *ieio.Cursor) (*Bifcc, error) {
	identity, err := DecodeIdentity(c)
	if err != nil {
		return nil, err
	}
	if identity.Signature != BifccSignature || identity.Version != BifccVersion {
		return nil, fmt.Errorf("infinity: bad BIFCC signature %q/%q", identity.Signature, identity.Version)
	}

	uncompressedSize, err := c.U32()
	if err != nil {
		return nil, err
	}

	var blocks []BifccBlock
	for c.Pos() < c.Len() {
		block, err := decodeBifccBlock(c)
		if err != nil {
			return nil, fmt.Errorf("infinity: read BIFCC block: %w", err)
		}
		blocks = append(blocks, block)
	}

	return &Bifcc{
		Identity:         identity,
		UncompressedSize: uncompressedSize,
		Blocks:           blocks,
	}, nil
}

func decodeBifccBlock(c *ieio.Cursor) (BifccBlock, error) {
	var b BifccBlock
	var err error
	if b.DecompressedSize, err = c.U32(); err != nil {
		return b, err
	}
	if b.CompressedSize, err = c.U32(); err != nil {
		return b, err
	}
	if b.CompressedData, err = c.ReadBytes(int(b.CompressedSize)); err != nil {
		return b, err
	}
	return b, nil
}

// ToBif inflates every block, concatenates the decompressions, and decodes
// the result as a plain BIFF archive.
func (b *Bifcc) ToBif() (*Bif, error) {
	var out bytes.Buffer
	for i, block := range b.Blocks {
		r, err := zlib.NewReader(bytes.NewReader(block.CompressedData))
		if err != nil {
			return nil, fmt.Errorf("infinity: BIFCC block #%d zlib init: %w", i, err)
		}
		if _, err := io.Copy(&out, r); err != nil {
			r.Close()
			return nil, fmt.Errorf("infinity: BIFCC block #%d zlib inflate: %w", i, err)
		}
		r.Close()
	}

	if uint32(out.Len()) != b.UncompressedSize {
		return nil, fmt.Errorf("infinity: BIFCC inflated length %d != declared %d", out.Len(), b.UncompressedSize)
	}

	return DecodeBif(ieio.NewCursor(out.Bytes()))
}
