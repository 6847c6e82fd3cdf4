// Command ffi is the C-ABI boundary described by the host API: seven
// //export entry points built with -buildmode=c-shared (or c-archive),
// thin wrappers over the pure-Go infinity package so the actual resource
// logic stays unit-testable without cgo.
package main

/*
#include <stdint.h>
#include <stdlib.h>

typedef struct Dimensions {
	int32_t height;
	int32_t width;
} Dimensions;
*/
import "C"

import (
	"unsafe"

	"github.com/iesdk/infinity/infinity"
	"github.com/iesdk/infinity/platform"
)

func main() {}

//export LoadResource
func LoadResource(gameID C.int32_t, resourceType C.int16_t, name *C.char) (*C.uint8_t, C.size_t) {
	data := infinity.LoadResource(platform.Games(gameID), uint16(resourceType), C.GoString(name))
	if len(data) == 0 {
		return nil, 0
	}
	ptr := C.CBytes(data)
	return (*C.uint8_t)(ptr), C.size_t(len(data))
}

//export ResourceDimensions
func ResourceDimensions(gameID C.int32_t, resourceType C.int16_t, name *C.char) C.Dimensions {
	d := infinity.ResourceDimensions(platform.Games(gameID), uint16(resourceType), C.GoString(name))
	return C.Dimensions{height: C.int32_t(d.Height), width: C.int32_t(d.Width)}
}

//export ResourceSize
func ResourceSize(gameID C.int32_t, resourceType C.int16_t, name *C.char) C.size_t {
	return C.size_t(infinity.ResourceSize(platform.Games(gameID), uint16(resourceType), C.GoString(name)))
}

//export SetInstallPath
func SetInstallPath(gameID C.int32_t, path *C.char) {
	infinity.SetInstallPath(platform.Games(gameID), C.GoString(path))
}

//export FreeBytes
func FreeBytes(data *C.uint8_t, _ C.size_t) {
	C.free(unsafe.Pointer(data))
}

//export FreeString
func FreeString(s *C.char) {
	C.free(unsafe.Pointer(s))
}

//export FreeDimensions
func FreeDimensions(_ C.Dimensions) {
	// Dimensions is a plain-old-data struct passed by value across the ABI;
	// there is nothing to release.
}
