// Package fileio memory-maps catalog and archive files for one-shot
// decode, using codeberg.org/go-mmap/mmap.
package fileio

import (
	"fmt"
	"io"

	"codeberg.org/go-mmap/mmap"
)

// ReadAll memory-maps filename and copies its full contents into memory,
// closing the mapping before returning. KEY/BIF/TLK files are parsed in a
// single pass over an internal/ieio.Cursor, so there is no benefit to
// keeping the mapping open past that pass.
func ReadAll(filename string) ([]byte, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("infinity: open %s: %w", filename, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("infinity: stat %s: %w", filename, err)
	}

	buf := make([]byte, info.Size())
	if _, err := io.ReadFull(io.NewSectionReader(f, 0, info.Size()), buf); err != nil {
		return nil, fmt.Errorf("infinity: read %s: %w", filename, err)
	}
	return buf, nil
}
