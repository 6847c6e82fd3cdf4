package types

import (
	"fmt"

	"github.com/iesdk/infinity/internal/ieio"
	"golang.org/x/text/encoding/charmap"
)

const (
	TlkSignature = "TLK "
	TlkVersion   = "V1  "

	tlkEntrySize = 26
)

// Tlk is a decoded string table: a header, a flat array of fixed-size
// entries (read in strref order, strref 0..count-1 assigned positionally
// rather than stored on disk), and the variable-length text each entry
// points at.
type Tlk struct {
	Identity Identity
	Language uint16
	Count    uint32
	Offset   uint32
	Entries  []TlkEntry
	Strings  []string // Strings[i] corresponds to Entries[i], i.e. strref i
}

// TlkEntry is one 26-byte string-table record.
type TlkEntry struct {
	Strref uint32 // assigned by read order, not stored on disk
	Info   uint16
	Sound  string // resref of an associated sound, may be empty
	Volume uint32
	Pitch  uint32
	Offset uint32 // byte offset of this entry's text, relative to header.Offset
	Length uint32
}

// DecodeTlk reads a complete TLK string table: header, then Count entries,
// then each entry's text at header.Offset + entry.Offset, decoded from
// Windows-1252 (the codepage every localized IE string table actually
// ships in) rather than raw UTF-8.
func DecodeTlk(c *ieio.Cursor) (*Tlk, error) {
	identity, err := DecodeIdentity(c)
	if err != nil {
		return nil, fmt.Errorf("infinity: read TLK identity: %w", err)
	}
	if identity.Signature != TlkSignature || identity.Version != TlkVersion {
		return nil, fmt.Errorf("infinity: bad TLK signature %q/%q", identity.Signature, identity.Version)
	}

	language, err := c.U16()
	if err != nil {
		return nil, err
	}
	count, err := c.U32()
	if err != nil {
		return nil, err
	}
	offset, err := c.U32()
	if err != nil {
		return nil, err
	}

	entries := make([]TlkEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		e, err := decodeTlkEntry(c)
		if err != nil {
			return nil, fmt.Errorf("infinity: parse TLK entry #%d: %w", i, err)
		}
		e.Strref = i
		entries = append(entries, e)
	}

	strings := make([]string, len(entries))
	for i, e := range entries {
		if err := c.SeekTo(int(offset) + int(e.Offset)); err != nil {
			return nil, err
		}
		raw, err := c.ReadBytes(int(e.Length))
		if err != nil {
			return nil, fmt.Errorf("infinity: read TLK string #%d: %w", i, err)
		}
		s, err := charmap.Windows1252.NewDecoder().String(string(raw))
		if err != nil {
			return nil, fmt.Errorf("infinity: decode TLK string #%d as windows-1252: %w", i, err)
		}
		strings[i] = ieio.TrimNUL(s)
	}

	return &Tlk{
		Identity: identity,
		Language: language,
		Count:    count,
		Offset:   offset,
		Entries:  entries,
		Strings:  strings,
	}, nil
}

func decodeTlkEntry(c *ieio.Cursor) (TlkEntry, error) {
	var e TlkEntry
	var err error
	if e.Info, err = c.U16(); err != nil {
		return e, err
	}
	if e.Sound, err = c.ResRef(); err != nil {
		return e, err
	}
	if e.Volume, err = c.U32(); err != nil {
		return e, err
	}
	if e.Pitch, err = c.U32(); err != nil {
		return e, err
	}
	if e.Offset, err = c.U32(); err != nil {
		return e, err
	}
	if e.Length, err = c.U32(); err != nil {
		return e, err
	}
	return e, nil
}

// String returns the text for strref, or "" if out of range.
func (t *Tlk) String(strref uint32) string {
	if int(strref) >= len(t.Strings) {
		return ""
	}
	return t.Strings[strref]
}
