package types

import (
	"fmt"

	"github.com/iesdk/infinity/internal/ieio"
)

const (
	bmpFileHeaderSize = 14
	bmpInfoHeaderSize = 40
)

// Bmp is a decoded Windows BMP resource as stored by the engine: a 14-byte
// file header, a 40-byte BITMAPINFOHEADER, an optional palette, and an
// opaque encoded raster. Re-encoding the raster into a general-purpose
// image format is an external-collaborator concern (see BmpDecoder); this
// type only owns the on-disk BMP container.
type Bmp struct {
	File    BmpFile
	Info    BmpInfo
	Colors  []uint32 // BGRA palette entries, present only for indexed depths
	Encoded []byte   // raw raster bytes, trailing the palette (if any)
}

// BmpFile is the 14-byte BITMAPFILEHEADER.
type BmpFile struct {
	Type     string // always "BM"
	Size     uint32
	Reserved uint32
	Offset   uint32 // byte offset of the raster from the start of the file
}

// BmpInfo is the 40-byte BITMAPINFOHEADER. Width and Height are signed:
// a negative Height means the raster is stored top-down rather than the
// conventional bottom-up order.
type BmpInfo struct {
	Size                 int32
	Width                int32
	Height               int32
	Planes               uint16
	BitsPerPixel         uint16
	Compression          uint32
	CompressedSize       uint32
	ResolutionHorizontal int32
	ResolutionVertical   int32
	ColorsUsed           uint32
	ColorsImportant      uint32
}

// BmpDecoder re-encodes a decoded Bmp's raster into a general-purpose image
// format (e.g. PNG). No implementation ships with this package; callers
// needing pixel access supply their own, since the engine's indexed BMP
// variants aren't something Go's standard image codecs understand natively.
type BmpDecoder interface {
	ToImageBytes(b *Bmp) ([]byte, error)
}

// DecodeBmp reads a complete BMP resource: file header, info header, the
// color table when BitsPerPixel calls for one, then the remaining bytes as
// the opaque raster.
func DecodeBmp(c *ieio.Cursor) (*Bmp, error) {
	file, err := decodeBmpFile(c)
	if err != nil {
		return nil, fmt.Errorf("infinity: read BMP file header: %w", err)
	}
	if file.Type != "BM" {
		return nil, fmt.Errorf("infinity: bad BMP magic %q", file.Type)
	}

	info, err := decodeBmpInfo(c)
	if err != nil {
		return nil, fmt.Errorf("infinity: read BMP info header: %w", err)
	}

	var colors []uint32
	switch info.BitsPerPixel {
	case 1, 4, 8:
		count := info.ColorsUsed
		if count == 0 {
			count = 1 << uint(info.BitsPerPixel)
		}
		colors = make([]uint32, count)
		for i := range colors {
			v, err := c.U32()
			if err != nil {
				return nil, fmt.Errorf("infinity: read BMP palette entry #%d: %w", i, err)
			}
			colors[i] = v
		}
	}

	encoded, err := c.ReadBytes(c.Len() - c.Pos())
	if err != nil {
		return nil, fmt.Errorf("infinity: read BMP raster: %w", err)
	}

	return &Bmp{File: file, Info: info, Colors: colors, Encoded: encoded}, nil
}

func decodeBmpFile(c *ieio.Cursor) (BmpFile, error) {
	var f BmpFile
	typ, err := c.String(2)
	if err != nil {
		return f, err
	}
	f.Type = typ
	if f.Size, err = c.U32(); err != nil {
		return f, err
	}
	if f.Reserved, err = c.U32(); err != nil {
		return f, err
	}
	if f.Offset, err = c.U32(); err != nil {
		return f, err
	}
	return f, nil
}

func decodeBmpInfo(c *ieio.Cursor) (BmpInfo, error) {
	var i BmpInfo
	var err error
	if i.Size, err = c.I32(); err != nil {
		return i, err
	}
	if i.Width, err = c.I32(); err != nil {
		return i, err
	}
	if i.Height, err = c.I32(); err != nil {
		return i, err
	}
	if i.Planes, err = c.U16(); err != nil {
		return i, err
	}
	if i.BitsPerPixel, err = c.U16(); err != nil {
		return i, err
	}
	if i.Compression, err = c.U32(); err != nil {
		return i, err
	}
	if i.CompressedSize, err = c.U32(); err != nil {
		return i, err
	}
	if i.ResolutionHorizontal, err = c.I32(); err != nil {
		return i, err
	}
	if i.ResolutionVertical, err = c.I32(); err != nil {
		return i, err
	}
	if i.ColorsUsed, err = c.U32(); err != nil {
		return i, err
	}
	if i.ColorsImportant, err = c.U32(); err != nil {
		return i, err
	}
	return i, nil
}

// ToBytes reconstructs the original on-disk BMP byte layout: file header,
// info header, palette (if any), then the raster.
func (b *Bmp) ToBytes() []byte {
	out := make([]byte, 0, bmpFileHeaderSize+bmpInfoHeaderSize+len(b.Colors)*4+len(b.Encoded))
	out = appendU16LE(out, 'B'|'M'<<8)
	out = appendU32LE(out, b.File.Size)
	out = appendU32LE(out, b.File.Reserved)
	out = appendU32LE(out, b.File.Offset)

	out = appendU32LE(out, uint32(b.Info.Size))
	out = appendU32LE(out, uint32(b.Info.Width))
	out = appendU32LE(out, uint32(b.Info.Height))
	out = appendU16LE(out, b.Info.Planes)
	out = appendU16LE(out, b.Info.BitsPerPixel)
	out = appendU32LE(out, b.Info.Compression)
	out = appendU32LE(out, b.Info.CompressedSize)
	out = appendU32LE(out, uint32(b.Info.ResolutionHorizontal))
	out = appendU32LE(out, uint32(b.Info.ResolutionVertical))
	out = appendU32LE(out, b.Info.ColorsUsed)
	out = appendU32LE(out, b.Info.ColorsImportant)

	for _, v := range b.Colors {
		out = appendU32LE(out, v)
	}
	out = append(out, b.Encoded...)
	return out
}

func appendU16LE(b []byte, v uint16) []byte {
	return append(b, byte(v), byte(v>>8))
}

func appendU32LE(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}
