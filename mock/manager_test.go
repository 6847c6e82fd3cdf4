package mock

import (
	"testing"

	"github.com/iesdk/infinity/platform"
	"github.com/iesdk/infinity/types"
	"github.com/stretchr/testify/assert"
)

func TestMockManagerAddAndRetrieve(t *testing.T) {
	m := New()

	key := &types.Key{BifCount: 1}
	m.Add(KeyEntry{Game: platform.BaldursGate1, Key: key})
	got, err := m.LoadKey(platform.BaldursGate1)
	assert.NoError(t, err)
	assert.Equal(t, key, got)

	bif := &types.Bif{FileCount: 1}
	m.Add(BifEntry{Game: platform.BaldursGate1, Filename: "test.bif", Bif: bif})
	gotBif, err := m.LoadBif(platform.BaldursGate1, "test.bif")
	assert.NoError(t, err)
	assert.Equal(t, bif, gotBif)

	tlk := &types.Tlk{Count: 1}
	m.Add(TlkEntry{Game: platform.BaldursGate1, Filename: "dialog.tlk", Tlk: tlk})
	gotTlk, err := m.LoadTlk(platform.BaldursGate1, "dialog.tlk")
	assert.NoError(t, err)
	assert.Equal(t, tlk, gotTlk)

	are := &types.Are{}
	m.Add(AreEntry{Game: platform.BaldursGate1, Name: "AR2600", Are: are})
	gotAre, err := m.LoadAre(platform.BaldursGate1, "AR2600")
	assert.NoError(t, err)
	assert.Equal(t, are, gotAre)

	tis := &types.Tis{TileCount: 1}
	m.Add(TisEntry{Game: platform.BaldursGate1, Name: "AR2600", Tis: tis})
	gotTis, err := m.LoadTileset(platform.BaldursGate1, "AR2600")
	assert.NoError(t, err)
	assert.Equal(t, tis, gotTis)

	bmp := &types.Bmp{}
	m.Add(BmpEntry{Game: platform.BaldursGate1, Name: "MYBMP", Bmp: bmp})
	gotBmp, err := m.LoadBmp(platform.BaldursGate1, "MYBMP")
	assert.NoError(t, err)
	assert.Equal(t, bmp, gotBmp)
}

func TestMockManagerMissingEntryReturnsErrNotFound(t *testing.T) {
	m := New()

	_, err := m.LoadKey(platform.BaldursGate1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.LoadBif(platform.BaldursGate1, "missing.bif")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMockManagerRemoveBif(t *testing.T) {
	m := New()
	m.Add(BifEntry{Game: platform.BaldursGate1, Filename: "test.bif", Bif: &types.Bif{}})

	_, err := m.LoadBif(platform.BaldursGate1, "test.bif")
	assert.NoError(t, err)

	m.RemoveBif(platform.BaldursGate1, "test.bif")
	_, err = m.LoadBif(platform.BaldursGate1, "test.bif")
	assert.ErrorIs(t, err, ErrNotFound)
}
