package types

import "github.com/iesdk/infinity/internal/ieio"

// Identity is the 4-byte signature + 4-byte version pair present at the
// start of every top-level IE file (KEY, BIFF, TIS, TLK, WED, ARE).
type Identity struct {
	Signature string
	Version   string
}

// DecodeIdentity reads the two 4-byte ASCII fields in order.
func DecodeIdentity(c *ieio.Cursor) (Identity, error) {
	sig, err := c.String(4)
	if err != nil {
		return Identity{}, err
	}
	ver, err := c.String(4)
	if err != nil {
		return Identity{}, err
	}
	return Identity{Signature: sig, Version: ver}, nil
}
