// Package ietest locates the licensed Baldur's Gate 1 fixture tree used by
// fixture-gated tests across the module.
package ietest

import "os"

// Path returns the root of a BG1 installation used by fixture-dependent
// tests, taken from IE_TESTDATA_DIR. Callers should t.Skip when it's empty.
func Path() string {
	return os.Getenv("IE_TESTDATA_DIR")
}
