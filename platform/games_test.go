package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFileNameKnownGames(t *testing.T) {
	name, ok := KeyFileName(BaldursGate2)
	assert.True(t, ok)
	assert.Equal(t, "CHITIN.KEY", name)

	name, ok = KeyFileName(BaldursGate1EnhancedEdition)
	assert.True(t, ok)
	assert.Equal(t, "chitin.key", name)
}

func TestKeyFileNameUnknownGame(t *testing.T) {
	_, ok := KeyFileName(None)
	assert.False(t, ok)
}

func TestIsPlanescape(t *testing.T) {
	assert.True(t, PlanescapeTorment.IsPlanescape())
	assert.True(t, PlanescapeTormentEnhancedEdition.IsPlanescape())
	assert.False(t, BaldursGate2.IsPlanescape())
}

func TestSteamAndGogIDs(t *testing.T) {
	appID, ok := SteamAppID(IcewindDale2)
	assert.True(t, ok)
	assert.Equal(t, uint32(206950), appID)

	gogID, ok := GogGameID(IcewindDale2)
	assert.True(t, ok)
	assert.Equal(t, uint32(1207658891), gogID)
}
