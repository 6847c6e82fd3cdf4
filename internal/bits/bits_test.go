package bits

import "testing"

import "github.com/stretchr/testify/assert"

func TestReadBit(t *testing.T) {
	assert.True(t, ReadBit(0b1010, 1))
	assert.False(t, ReadBit(0b1010, 0))
	assert.True(t, ReadBit(0b1010, 3))
}

func TestReadValueRoundTrip(t *testing.T) {
	for w := uint(1); w <= 32; w++ {
		for s := uint(0); s <= 32-w; s++ {
			v := uint64(0xDEADBEEF) & (uint64(1)<<w - 1)
			got := ReadValue(v<<s, w, s)
			assert.Equal(t, v, got, "w=%d s=%d", w, s)
		}
	}
}

func TestReadValueZeroWidth(t *testing.T) {
	assert.Equal(t, uint64(0), ReadValue(0xFFFFFFFF, 0, 4))
}

func TestLocatorRoundTrip(t *testing.T) {
	b, ts, f := uint64(15), uint64(0), uint64(40)
	locator := (b << 20) | (ts << 14) | f
	assert.Equal(t, f, ReadValue(locator, 14, 0))
	assert.Equal(t, ts, ReadValue(locator, 6, 14))
	assert.Equal(t, b, ReadValue(locator, 12, 20))
}
