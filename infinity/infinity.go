// Package infinity is the pure-Go facade over the resource manager that
// backs the host API (see the ffi package): a single process-wide
// resource.Manager, initialized lazily on first use and serialized behind
// one mutex so every entry point's cache effects are ordered the same way
// regardless of which goroutine calls in.
package infinity

import (
	"bytes"
	"image/png"
	"sync"

	"github.com/iesdk/infinity/platform"
	"github.com/iesdk/infinity/resource"
	"github.com/iesdk/infinity/types"
	xbmp "golang.org/x/image/bmp"
)

// resourceTypeBmp is the IESDP resource type code for BMP resources, the
// only type LoadResource/ResourceDimensions/ResourceSize currently handle.
const resourceTypeBmp uint16 = 0x0001

var (
	mgrOnce sync.Once
	mgr     *resource.Manager
	mgrMu   sync.Mutex
)

// Manager returns the process-wide resource manager, constructing it with
// default options on first call. Callers outside this package's own
// locked entry points should still go through SetInstallPath rather than
// Manager().SetInstallPath directly, to preserve the single-mutex
// serialization guarantee.
func Manager() *resource.Manager {
	mgrOnce.Do(func() {
		mgr, _ = resource.NewManager() // NewManager with no options never errors
	})
	return mgr
}

// Dimensions is the host API's POD (height, width) pair.
type Dimensions struct {
	Height int32
	Width  int32
}

// SetInstallPath overrides game's installation directory on the
// process-wide manager.
func SetInstallPath(game platform.Games, path string) {
	mgrMu.Lock()
	defer mgrMu.Unlock()
	Manager().SetInstallPath(game, path)
}

// LoadResource returns a PNG-encoded byte buffer for a BMP resource, or nil
// for any other resource type or on failure.
func LoadResource(game platform.Games, resourceType uint16, name string) []byte {
	mgrMu.Lock()
	defer mgrMu.Unlock()
	return loadResourceLocked(game, resourceType, name)
}

func loadResourceLocked(game platform.Games, resourceType uint16, name string) []byte {
	switch resourceType {
	case resourceTypeBmp:
		return loadBmpPNGLocked(game, name)
	default:
		return nil
	}
}

// ResourceDimensions returns the native (height, width) of a BMP resource,
// or the zero value for any other resource type or on failure.
func ResourceDimensions(game platform.Games, resourceType uint16, name string) Dimensions {
	mgrMu.Lock()
	defer mgrMu.Unlock()
	if resourceType != resourceTypeBmp {
		return Dimensions{}
	}
	bmp, err := loadBmpLocked(game, name)
	if err != nil {
		return Dimensions{}
	}
	return Dimensions{Height: bmp.Info.Height, Width: bmp.Info.Width}
}

// ResourceSize returns the byte length of what LoadResource would return
// for the same arguments, or zero on failure.
func ResourceSize(game platform.Games, resourceType uint16, name string) int {
	mgrMu.Lock()
	defer mgrMu.Unlock()
	return len(loadResourceLocked(game, resourceType, name))
}

func loadBmpLocked(game platform.Games, name string) (*types.Bmp, error) {
	return resource.LoadResource(Manager(), game, resourceTypeBmp, name, types.DecodeBmp)
}

func loadBmpPNGLocked(game platform.Games, name string) []byte {
	bmp, err := loadBmpLocked(game, name)
	if err != nil {
		return nil
	}
	data, err := pngBmpDecoder{}.ToImageBytes(bmp)
	if err != nil {
		return nil
	}
	return data
}

// pngBmpDecoder satisfies types.BmpDecoder by round-tripping the decoded
// Bmp's on-disk bytes through golang.org/x/image/bmp (the container is a
// standard Windows BMP once reassembled via Bmp.ToBytes, so no IE-specific
// decoding is needed here) and re-encoding as PNG, matching the original
// core's use of ImageFormat::Png for this same entry point.
type pngBmpDecoder struct{}

func (pngBmpDecoder) ToImageBytes(b *types.Bmp) ([]byte, error) {
	img, err := xbmp.Decode(bytes.NewReader(b.ToBytes()))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var _ types.BmpDecoder = pngBmpDecoder{}
