package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iesdk/infinity/internal/ieio"
	"github.com/iesdk/infinity/internal/ietest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAreAR2600Fixture(t *testing.T) {
	dir := ietest.Path()
	if dir == "" {
		t.Skip("IE_TESTDATA_DIR not set")
	}

	data, err := os.ReadFile(filepath.Join(dir, "AR2600.ARE"))
	require.NoError(t, err)

	are, err := DecodeAre(ieio.NewCursor(data), false)
	require.NoError(t, err)

	assert.Equal(t, AreSignature, are.Header.Identity.Signature)
	assert.Equal(t, AreVersion, are.Header.Identity.Version)

	assert.Len(t, are.Actors, int(are.Header.Actors.Count))
	assert.Len(t, are.Regions, int(are.Header.Regions.Count))
	assert.Len(t, are.SpawnPoints, int(are.Header.SpawnPoints.Count))
	assert.Len(t, are.Entrances, int(are.Header.Entrances.Count))
	assert.Len(t, are.Containers, int(are.Header.Containers.Count))
	assert.Len(t, are.Items, int(are.Header.Items.Count))
	assert.Len(t, are.Vertices, int(are.Header.Vertices.Count))
	assert.Len(t, are.Ambients, int(are.Header.Ambients.Count))
	assert.Len(t, are.Variables, int(are.Header.Variables.Count))
	assert.Len(t, are.Explored, int(are.Header.Explored.Size))
	assert.Len(t, are.Doors, int(are.Header.Doors.Count))
	assert.Len(t, are.Animations, int(are.Header.Animations.Count))
	assert.Len(t, are.TiledObjects, int(are.Header.TiledObjects.Count))
	assert.Len(t, are.AutomapNotes, int(are.Header.AutomapNotes.Count))
	assert.Len(t, are.ProjectileTraps, int(are.Header.ProjectileTraps.Count))

	assert.NotEmpty(t, are.SongEntries.AmbientDay1)

	nonEmpty := 0
	for _, c := range are.RestInterruptions.Creatures {
		if c != "" {
			nonEmpty++
		}
	}
	assert.Equal(t, int(are.RestInterruptions.CreatureCount), nonEmpty)
}

func TestDecodeAreSpawnPointConditionalPadding(t *testing.T) {
	buf := make([]byte, 0, 256)

	buf = append(buf, make([]byte, 32)...) // name
	buf = append(buf, 1, 0, 2, 0)          // x, y
	for i := 0; i < 10; i++ {
		buf = append(buf, make([]byte, 8)...) // creatures
	}
	buf = append(buf, 0, 0) // spawnCount
	buf = append(buf, 0, 0) // spawnBaseCount
	buf = append(buf, 0, 0) // frequency
	buf = append(buf, 0, 0) // spawnMethod
	buf = append(buf, 0, 0, 0, 0) // removalTimer
	buf = append(buf, 0, 0) // restrictionDistance
	buf = append(buf, 0, 0) // restrictionDistanceObject
	buf = append(buf, 0, 0) // spawnMaxCount
	buf = append(buf, 1, 0) // enabled
	buf = append(buf, 0, 0, 0, 0) // schedule
	buf = append(buf, 0, 0) // probabilityDay
	buf = append(buf, 0, 0) // probabilityNight
	buf = append(buf, 5, 0, 0, 0) // spawnFrequency (nonzero -> BGEE padding)
	buf = append(buf, 0, 0, 0, 0) // countdown
	buf = append(buf, make([]byte, 10)...) // spawn weights
	buf = append(buf, make([]byte, areSpawnPointUnusedPaddingBGEE)...)

	c := ieio.NewCursor(buf)
	sp, err := decodeAreSpawnPoint(c)
	require.NoError(t, err)
	assert.True(t, sp.IsEnabled())
	assert.Equal(t, uint32(5), sp.SpawnFrequency)
	assert.Equal(t, c.Len(), c.Pos())
}
