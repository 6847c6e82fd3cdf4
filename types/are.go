package types

import (
	"fmt"

	"github.com/iesdk/infinity/internal/ieio"
)

const (
	AreSignature = "AREA"
	AreVersion   = "V1.0"

	areHeaderUnusedPadding = 56
)

// AreRef names a neighboring area and its transition flags.
type AreRef struct {
	Name  string
	Flags uint32
}

func decodeAreRef(c *ieio.Cursor) (AreRef, error) {
	var r AreRef
	var err error
	if r.Name, err = c.ResRef(); err != nil {
		return r, err
	}
	if r.Flags, err = c.U32(); err != nil {
		return r, err
	}
	return r, nil
}

// AreHeader is the ARE file's primary header: area metadata, neighbor
// links, weather probabilities, and the offset/count of every section
// that follows.
type AreHeader struct {
	Identity                Identity
	WedName                 string
	LastSaved               uint32
	AreaFlags               uint32
	North                   AreRef
	East                    AreRef
	South                   AreRef
	West                    AreRef
	AreaTypeFlags           uint16
	Rain                    uint16
	Snow                    uint16
	Fog                     uint16
	Lightning               uint16
	Wind                    uint16
	Actors                  SectionAddress
	Regions                 SectionAddress
	SpawnPoints             SectionAddress
	Entrances               SectionAddress
	Containers              SectionAddress
	Items                   SectionAddress
	Vertices                SectionAddress
	Ambients                SectionAddress
	Variables               SectionAddress
	TiledObjectFlags        SectionAddress
	ScriptName              string
	Explored                BitmaskAddress
	Doors                   SectionAddress
	Animations              SectionAddress
	TiledObjects            SectionAddress
	SongEntriesOffset       uint32
	RestInterruptionsOffset uint32
	AutomapNotes            SectionAddress
	ProjectileTraps         SectionAddress
	RestMovieDay            string
	RestMovieNight          string
}

func decodeAreHeader(c *ieio.Cursor) (AreHeader, error) {
	var h AreHeader
	identity, err := DecodeIdentity(c)
	if err != nil {
		return h, err
	}
	if identity.Signature != AreSignature || identity.Version != AreVersion {
		return h, fmt.Errorf("infinity: bad ARE signature %q/%q", identity.Signature, identity.Version)
	}
	h.Identity = identity

	if h.WedName, err = c.ResRef(); err != nil {
		return h, err
	}
	if h.LastSaved, err = c.U32(); err != nil {
		return h, err
	}
	if h.AreaFlags, err = c.U32(); err != nil {
		return h, err
	}
	if h.North, err = decodeAreRef(c); err != nil {
		return h, err
	}
	if h.East, err = decodeAreRef(c); err != nil {
		return h, err
	}
	if h.South, err = decodeAreRef(c); err != nil {
		return h, err
	}
	if h.West, err = decodeAreRef(c); err != nil {
		return h, err
	}
	if h.AreaTypeFlags, err = c.U16(); err != nil {
		return h, err
	}
	if h.Rain, err = c.U16(); err != nil {
		return h, err
	}
	if h.Snow, err = c.U16(); err != nil {
		return h, err
	}
	if h.Fog, err = c.U16(); err != nil {
		return h, err
	}
	if h.Lightning, err = c.U16(); err != nil {
		return h, err
	}
	if h.Wind, err = c.U16(); err != nil {
		return h, err
	}
	if h.Actors, err = DecodeSection32_16(c); err != nil {
		return h, err
	}
	if h.Regions, err = DecodeSection32_16Inverted(c); err != nil {
		return h, err
	}
	if h.SpawnPoints, err = DecodeSection32_32(c); err != nil {
		return h, err
	}
	if h.Entrances, err = DecodeSection32_32(c); err != nil {
		return h, err
	}
	if h.Containers, err = DecodeSection32_16(c); err != nil {
		return h, err
	}
	if h.Items, err = DecodeSection32_16Inverted(c); err != nil {
		return h, err
	}
	if h.Vertices, err = DecodeSection32_16(c); err != nil {
		return h, err
	}
	if h.Ambients, err = DecodeSection32_16Inverted(c); err != nil {
		return h, err
	}
	if h.Variables, err = DecodeSection32_32(c); err != nil {
		return h, err
	}
	if h.TiledObjectFlags, err = DecodeSection16_16(c); err != nil {
		return h, err
	}
	if h.ScriptName, err = c.ResRef(); err != nil {
		return h, err
	}
	if h.Explored, err = DecodeBitmask32_32Inverted(c); err != nil {
		return h, err
	}
	if h.Doors, err = DecodeSection32_32Inverted(c); err != nil {
		return h, err
	}
	if h.Animations, err = DecodeSection32_32Inverted(c); err != nil {
		return h, err
	}
	if h.TiledObjects, err = DecodeSection32_32Inverted(c); err != nil {
		return h, err
	}
	if h.SongEntriesOffset, err = c.U32(); err != nil {
		return h, err
	}
	if h.RestInterruptionsOffset, err = c.U32(); err != nil {
		return h, err
	}
	if h.AutomapNotes, err = DecodeSection32_32(c); err != nil {
		return h, err
	}
	if h.ProjectileTraps, err = DecodeSection32_32(c); err != nil {
		return h, err
	}
	if h.RestMovieDay, err = c.ResRef(); err != nil {
		return h, err
	}
	if h.RestMovieNight, err = c.ResRef(); err != nil {
		return h, err
	}

	if err := c.Skip(areHeaderUnusedPadding); err != nil {
		return h, err
	}

	return h, nil
}

// AreActor is one creature instance placed in the area.
type AreActor struct {
	Name                         string
	Current                      Point2[uint16]
	Destination                  Point2[uint16]
	Flags                        uint32
	RandomMonster                uint16
	CreFirstLetter               uint8
	Animation                    uint32
	Orientation                  uint16
	RemovalTimer                 uint32
	MovementRestrictionDistance  uint16
	MovementRestrictionDistance2 uint16
	AppearanceSchedule           uint32
	ConversedCount               uint32
	Dialog                       string
	ScriptOverride               string
	ScriptGeneral                string
	ScriptClass                  string
	ScriptRace                   string
	ScriptDefault                string
	ScriptSpecific               string
	Cre                          string
	CreAddress                   SectionAddress
}

const areActorUnusedPadding = 128

func decodeAreActor(c *ieio.Cursor) (AreActor, error) {
	var a AreActor
	var err error
	if a.Name, err = c.Name(); err != nil {
		return a, err
	}
	if a.Current, err = DecodePoint2U16(c); err != nil {
		return a, err
	}
	if a.Destination, err = DecodePoint2U16(c); err != nil {
		return a, err
	}
	if a.Flags, err = c.U32(); err != nil {
		return a, err
	}
	if a.RandomMonster, err = c.U16(); err != nil {
		return a, err
	}
	if a.CreFirstLetter, err = c.U8(); err != nil {
		return a, err
	}
	if _, err = c.U8(); err != nil { // unused
		return a, err
	}
	if a.Animation, err = c.U32(); err != nil {
		return a, err
	}
	if a.Orientation, err = c.U16(); err != nil {
		return a, err
	}
	if _, err = c.U16(); err != nil { // unused
		return a, err
	}
	if a.RemovalTimer, err = c.U32(); err != nil {
		return a, err
	}
	if a.MovementRestrictionDistance, err = c.U16(); err != nil {
		return a, err
	}
	if a.MovementRestrictionDistance2, err = c.U16(); err != nil {
		return a, err
	}
	if a.AppearanceSchedule, err = c.U32(); err != nil {
		return a, err
	}
	if a.ConversedCount, err = c.U32(); err != nil {
		return a, err
	}
	if a.Dialog, err = c.ResRef(); err != nil {
		return a, err
	}
	if a.ScriptOverride, err = c.ResRef(); err != nil {
		return a, err
	}
	if a.ScriptGeneral, err = c.ResRef(); err != nil {
		return a, err
	}
	if a.ScriptClass, err = c.ResRef(); err != nil {
		return a, err
	}
	if a.ScriptRace, err = c.ResRef(); err != nil {
		return a, err
	}
	if a.ScriptDefault, err = c.ResRef(); err != nil {
		return a, err
	}
	if a.ScriptSpecific, err = c.ResRef(); err != nil {
		return a, err
	}
	if a.Cre, err = c.ResRef(); err != nil {
		return a, err
	}
	if a.CreAddress, err = DecodeSection32_32(c); err != nil {
		return a, err
	}
	if err := c.Skip(areActorUnusedPadding); err != nil {
		return a, err
	}
	return a, nil
}

// AreRegion is a trigger/travel/info polygon region.
type AreRegion struct {
	Name                    string
	RegionType              uint16
	BoundingBox             BoundingBox
	VertexCount             uint16
	VertexFirst             uint32
	Trigger                 uint32
	CursorIndex             uint32
	Destination             string
	EntranceName            string
	Flags                   uint32
	TextIndex               uint32
	TrapDetectionDifficulty uint16
	TrapRemovalDifficulty   uint16
	Trapped                 uint16
	TrapDetected            uint16
	TrapLaunchLocation      uint32
	KeyItem                 string
	Script                  string
	AlternativeUse          Point2[uint16]
	Sound                   string
	TalkLocation            Point2[uint16]
	Speaker                 uint32
	Dialog                  string
}

const areRegionUnknownSize = 36

func decodeAreRegion(c *ieio.Cursor) (AreRegion, error) {
	var r AreRegion
	var err error
	if r.Name, err = c.Name(); err != nil {
		return r, err
	}
	if r.RegionType, err = c.U16(); err != nil {
		return r, err
	}
	bbValue, err := c.U64()
	if err != nil {
		return r, err
	}
	r.BoundingBox = BoundingBoxFromPacked(bbValue)
	if r.VertexCount, err = c.U16(); err != nil {
		return r, err
	}
	if r.VertexFirst, err = c.U32(); err != nil {
		return r, err
	}
	if r.Trigger, err = c.U32(); err != nil {
		return r, err
	}
	if r.CursorIndex, err = c.U32(); err != nil {
		return r, err
	}
	if r.Destination, err = c.ResRef(); err != nil {
		return r, err
	}
	if r.EntranceName, err = c.Name(); err != nil {
		return r, err
	}
	if r.Flags, err = c.U32(); err != nil {
		return r, err
	}
	if r.TextIndex, err = c.U32(); err != nil {
		return r, err
	}
	if r.TrapDetectionDifficulty, err = c.U16(); err != nil {
		return r, err
	}
	if r.TrapRemovalDifficulty, err = c.U16(); err != nil {
		return r, err
	}
	if r.Trapped, err = c.U16(); err != nil {
		return r, err
	}
	if r.TrapDetected, err = c.U16(); err != nil {
		return r, err
	}
	if r.TrapLaunchLocation, err = c.U32(); err != nil {
		return r, err
	}
	if r.KeyItem, err = c.ResRef(); err != nil {
		return r, err
	}
	if r.Script, err = c.ResRef(); err != nil {
		return r, err
	}
	if r.AlternativeUse, err = DecodePoint2U16(c); err != nil {
		return r, err
	}
	if err := c.Skip(areRegionUnknownSize); err != nil {
		return r, err
	}
	if r.Sound, err = c.ResRef(); err != nil {
		return r, err
	}
	if r.TalkLocation, err = DecodePoint2U16(c); err != nil {
		return r, err
	}
	if r.Speaker, err = c.U32(); err != nil {
		return r, err
	}
	if r.Dialog, err = c.ResRef(); err != nil {
		return r, err
	}
	return r, nil
}

// AreSpawnPoint is a location that periodically spawns creatures.
type AreSpawnPoint struct {
	Name                      string
	X, Y                      uint16
	Creatures                 [10]string
	CreatureWeights           [10]uint8
	SpawnCount                uint16
	SpawnBaseCount            uint16
	Frequency                 uint16
	SpawnMethod               uint16
	RemovalTimer              uint32
	RestrictionDistance       uint16
	RestrictionDistanceObject uint16
	SpawnMaxCount             uint16
	Enabled                   uint16
	Schedule                  uint32
	ProbabilityDay            uint16
	ProbabilityNight          uint16
	SpawnFrequency            uint32
	Countdown                 uint32
}

// IsEnabled reports whether this spawn point is active.
func (s AreSpawnPoint) IsEnabled() bool { return s.Enabled == 1 }

const (
	areSpawnPointUnusedPadding     = 56
	areSpawnPointUnusedPaddingBGEE = 38
)

func decodeAreSpawnPoint(c *ieio.Cursor) (AreSpawnPoint, error) {
	var s AreSpawnPoint
	var err error
	if s.Name, err = c.Name(); err != nil {
		return s, err
	}
	if s.X, err = c.U16(); err != nil {
		return s, err
	}
	if s.Y, err = c.U16(); err != nil {
		return s, err
	}
	for i := range s.Creatures {
		if s.Creatures[i], err = c.ResRef(); err != nil {
			return s, err
		}
	}
	if s.SpawnCount, err = c.U16(); err != nil {
		return s, err
	}
	if s.SpawnBaseCount, err = c.U16(); err != nil {
		return s, err
	}
	if s.Frequency, err = c.U16(); err != nil {
		return s, err
	}
	if s.SpawnMethod, err = c.U16(); err != nil {
		return s, err
	}
	if s.RemovalTimer, err = c.U32(); err != nil {
		return s, err
	}
	if s.RestrictionDistance, err = c.U16(); err != nil {
		return s, err
	}
	if s.RestrictionDistanceObject, err = c.U16(); err != nil {
		return s, err
	}
	if s.SpawnMaxCount, err = c.U16(); err != nil {
		return s, err
	}
	if s.Enabled, err = c.U16(); err != nil {
		return s, err
	}
	if s.Schedule, err = c.U32(); err != nil {
		return s, err
	}
	if s.ProbabilityDay, err = c.U16(); err != nil {
		return s, err
	}
	if s.ProbabilityNight, err = c.U16(); err != nil {
		return s, err
	}
	if s.SpawnFrequency, err = c.U32(); err != nil {
		return s, err
	}
	// SpawnFrequency's 4 bytes are part of the default padding.
	padding := areSpawnPointUnusedPadding - 4
	if s.SpawnFrequency > 0 {
		if s.Countdown, err = c.U32(); err != nil {
			return s, err
		}
		for i := range s.CreatureWeights {
			if s.CreatureWeights[i], err = c.U8(); err != nil {
				return s, err
			}
		}
		padding = areSpawnPointUnusedPaddingBGEE
	}
	if err := c.Skip(padding); err != nil {
		return s, err
	}
	return s, nil
}

// AreEntrance is a named player-party arrival point.
type AreEntrance struct {
	Name        string
	Coordinates Point2[uint16]
	Orientation uint16
}

const areEntranceUnusedPadding = 66

func decodeAreEntrance(c *ieio.Cursor) (AreEntrance, error) {
	var e AreEntrance
	var err error
	if e.Name, err = c.Name(); err != nil {
		return e, err
	}
	if e.Coordinates, err = DecodePoint2U16(c); err != nil {
		return e, err
	}
	if e.Orientation, err = c.U16(); err != nil {
		return e, err
	}
	if err := c.Skip(areEntranceUnusedPadding); err != nil {
		return e, err
	}
	return e, nil
}

// AreContainer is a lootable container placed in the area.
type AreContainer struct {
	Name                     string
	Coordinates              Point2[uint16]
	ContainerType            uint16
	LockDifficulty           uint16
	Flags                    uint32
	TrapDetectionDifficulty  uint16
	TrapRemovalDifficulty    uint16
	Trapped                  uint16
	TrapDetected             uint16
	TrapLaunchCoordinates    Point2[uint16]
	BoundingBox              BoundingBox
	FirstItemIndex           uint32
	ItemCount                uint32
	TrapScript               string
	FirstVertexIndex         uint32
	VertexCount              uint16
	TriggerRange             uint16
	Owner                    string
	KeyItem                  string
	BreakDifficulty          uint32
	LockpickStringIndex      uint32
}

const areContainerUnusedPadding = 56

func decodeAreContainer(c *ieio.Cursor) (AreContainer, error) {
	var ct AreContainer
	var err error
	if ct.Name, err = c.Name(); err != nil {
		return ct, err
	}
	if ct.Coordinates, err = DecodePoint2U16(c); err != nil {
		return ct, err
	}
	if ct.ContainerType, err = c.U16(); err != nil {
		return ct, err
	}
	if ct.LockDifficulty, err = c.U16(); err != nil {
		return ct, err
	}
	if ct.Flags, err = c.U32(); err != nil {
		return ct, err
	}
	if ct.TrapDetectionDifficulty, err = c.U16(); err != nil {
		return ct, err
	}
	if ct.TrapRemovalDifficulty, err = c.U16(); err != nil {
		return ct, err
	}
	if ct.Trapped, err = c.U16(); err != nil {
		return ct, err
	}
	if ct.TrapDetected, err = c.U16(); err != nil {
		return ct, err
	}
	if ct.TrapLaunchCoordinates, err = DecodePoint2U16(c); err != nil {
		return ct, err
	}
	if ct.BoundingBox, err = DecodeBoundingBox(c); err != nil {
		return ct, err
	}
	if ct.FirstItemIndex, err = c.U32(); err != nil {
		return ct, err
	}
	if ct.ItemCount, err = c.U32(); err != nil {
		return ct, err
	}
	if ct.TrapScript, err = c.ResRef(); err != nil {
		return ct, err
	}
	if ct.FirstVertexIndex, err = c.U32(); err != nil {
		return ct, err
	}
	if ct.VertexCount, err = c.U16(); err != nil {
		return ct, err
	}
	if ct.TriggerRange, err = c.U16(); err != nil {
		return ct, err
	}
	if ct.Owner, err = c.Name(); err != nil {
		return ct, err
	}
	if ct.KeyItem, err = c.ResRef(); err != nil {
		return ct, err
	}
	if ct.BreakDifficulty, err = c.U32(); err != nil {
		return ct, err
	}
	if ct.LockpickStringIndex, err = c.U32(); err != nil {
		return ct, err
	}
	if err := c.Skip(areContainerUnusedPadding); err != nil {
		return ct, err
	}
	return ct, nil
}

// AreItem is one item instance inside a container's inventory.
type AreItem struct {
	Resref         string
	ExpirationTime uint16
	Quantities     [3]uint16
	Flags          uint32
}

func decodeAreItem(c *ieio.Cursor) (AreItem, error) {
	var i AreItem
	var err error
	if i.Resref, err = c.ResRef(); err != nil {
		return i, err
	}
	if i.ExpirationTime, err = c.U16(); err != nil {
		return i, err
	}
	for n := range i.Quantities {
		if i.Quantities[n], err = c.U16(); err != nil {
			return i, err
		}
	}
	if i.Flags, err = c.U32(); err != nil {
		return i, err
	}
	return i, nil
}

// AreAmbient is a positioned ambient sound emitter.
type AreAmbient struct {
	Name               string
	Coordinate         Point2[uint16]
	Radius             uint16
	Height             uint16
	PitchVariance      uint32
	VolumeVariance     uint16
	Volume             uint16
	Sounds             [10]string
	SoundCount         uint16
	SoundInterval      uint32
	SoundDeviation     uint32
	AppearanceSchedule uint32
	Flags              uint32
}

const areAmbientUnusedPadding = 64

func decodeAreAmbient(c *ieio.Cursor) (AreAmbient, error) {
	var a AreAmbient
	var err error
	if a.Name, err = c.Name(); err != nil {
		return a, err
	}
	if a.Coordinate, err = DecodePoint2U16(c); err != nil {
		return a, err
	}
	if a.Radius, err = c.U16(); err != nil {
		return a, err
	}
	if a.Height, err = c.U16(); err != nil {
		return a, err
	}
	if a.PitchVariance, err = c.U32(); err != nil {
		return a, err
	}
	if a.VolumeVariance, err = c.U16(); err != nil {
		return a, err
	}
	if a.Volume, err = c.U16(); err != nil {
		return a, err
	}
	for i := range a.Sounds {
		if a.Sounds[i], err = c.ResRef(); err != nil {
			return a, err
		}
	}
	if a.SoundCount, err = c.U16(); err != nil {
		return a, err
	}
	if _, err = c.U16(); err != nil { // unused
		return a, err
	}
	if a.SoundInterval, err = c.U32(); err != nil {
		return a, err
	}
	if a.SoundDeviation, err = c.U32(); err != nil {
		return a, err
	}
	if a.AppearanceSchedule, err = c.U32(); err != nil {
		return a, err
	}
	if a.Flags, err = c.U32(); err != nil {
		return a, err
	}
	if err := c.Skip(areAmbientUnusedPadding); err != nil {
		return a, err
	}
	return a, nil
}

// AreVariable is one persisted area-scoped script variable.
type AreVariable struct {
	Name         string
	VariableType uint16
	ResourceType uint16
	Dword        uint32
	Int          uint32
	Double       uint64
	ScriptName   string
}

func decodeAreVariable(c *ieio.Cursor) (AreVariable, error) {
	var v AreVariable
	var err error
	if v.Name, err = c.Name(); err != nil {
		return v, err
	}
	if v.VariableType, err = c.U16(); err != nil {
		return v, err
	}
	if v.ResourceType, err = c.U16(); err != nil {
		return v, err
	}
	if v.Dword, err = c.U32(); err != nil {
		return v, err
	}
	if v.Int, err = c.U32(); err != nil {
		return v, err
	}
	if v.Double, err = c.U64(); err != nil {
		return v, err
	}
	if v.ScriptName, err = c.Name(); err != nil {
		return v, err
	}
	return v, nil
}

// AreDoor describes one door's state, geometry, and behavior, linking to
// the matching Door record by name in the area's WED.
type AreDoor struct {
	Name                    string
	ID                      string
	Flags                   uint32
	OutlineOpenFirst        uint32
	OutlineOpenCount        uint16
	OutlineClosedCount      uint16
	OutlineClosedFirst      uint32
	BoundingBoxOpen         BoundingBox
	BoundingBoxClosed       BoundingBox
	ImpededOpenFirst        uint32
	ImpededOpenCount        uint16
	ImpededClosedCount      uint16
	ImpededClosedFirst      uint32
	HitPoints               uint16
	ArmorClass              uint16
	OpenSound               string
	CloseSound              string
	CursorIndex             uint32
	TrapDetectionDifficulty uint16
	TrapRemovalDifficulty   uint16
	Trapped                 uint16
	TrapDetected            uint16
	TrapLaunchTarget        Point2[uint16]
	KeyItem                 string
	Script                  string
	DetectionDifficulty     uint32
	LockDifficulty          uint32
	TogglePoint1            Point2[uint16]
	TogglePoint2            Point2[uint16]
	LockpickStringIndex     uint32
	TravelTriggerName       string
	DialogSpeakerName       string
	Dialog                  string
}

const areDoorUnusedPadding = 8

func decodeAreDoor(c *ieio.Cursor) (AreDoor, error) {
	var d AreDoor
	var err error
	if d.Name, err = c.Name(); err != nil {
		return d, err
	}
	if d.ID, err = c.ResRef(); err != nil {
		return d, err
	}
	if d.Flags, err = c.U32(); err != nil {
		return d, err
	}
	if d.OutlineOpenFirst, err = c.U32(); err != nil {
		return d, err
	}
	if d.OutlineOpenCount, err = c.U16(); err != nil {
		return d, err
	}
	if d.OutlineClosedCount, err = c.U16(); err != nil {
		return d, err
	}
	if d.OutlineClosedFirst, err = c.U32(); err != nil {
		return d, err
	}
	if d.BoundingBoxOpen, err = DecodeBoundingBox(c); err != nil {
		return d, err
	}
	if d.BoundingBoxClosed, err = DecodeBoundingBox(c); err != nil {
		return d, err
	}
	if d.ImpededOpenFirst, err = c.U32(); err != nil {
		return d, err
	}
	if d.ImpededOpenCount, err = c.U16(); err != nil {
		return d, err
	}
	if d.ImpededClosedCount, err = c.U16(); err != nil {
		return d, err
	}
	if d.ImpededClosedFirst, err = c.U32(); err != nil {
		return d, err
	}
	if d.HitPoints, err = c.U16(); err != nil {
		return d, err
	}
	if d.ArmorClass, err = c.U16(); err != nil {
		return d, err
	}
	if d.OpenSound, err = c.ResRef(); err != nil {
		return d, err
	}
	if d.CloseSound, err = c.ResRef(); err != nil {
		return d, err
	}
	if d.CursorIndex, err = c.U32(); err != nil {
		return d, err
	}
	if d.TrapDetectionDifficulty, err = c.U16(); err != nil {
		return d, err
	}
	if d.TrapRemovalDifficulty, err = c.U16(); err != nil {
		return d, err
	}
	if d.Trapped, err = c.U16(); err != nil {
		return d, err
	}
	if d.TrapDetected, err = c.U16(); err != nil {
		return d, err
	}
	if d.TrapLaunchTarget, err = DecodePoint2U16(c); err != nil {
		return d, err
	}
	if d.KeyItem, err = c.ResRef(); err != nil {
		return d, err
	}
	if d.Script, err = c.ResRef(); err != nil {
		return d, err
	}
	if d.DetectionDifficulty, err = c.U32(); err != nil {
		return d, err
	}
	if d.LockDifficulty, err = c.U32(); err != nil {
		return d, err
	}
	if d.TogglePoint1, err = DecodePoint2U16(c); err != nil {
		return d, err
	}
	if d.TogglePoint2, err = DecodePoint2U16(c); err != nil {
		return d, err
	}
	if d.LockpickStringIndex, err = c.U32(); err != nil {
		return d, err
	}
	if d.TravelTriggerName, err = c.String(24); err != nil {
		return d, err
	}
	if d.DialogSpeakerName, err = c.String(4); err != nil {
		return d, err
	}
	if d.Dialog, err = c.ResRef(); err != nil {
		return d, err
	}
	if err := c.Skip(areDoorUnusedPadding); err != nil {
		return d, err
	}
	return d, nil
}

// AreAnimation is a looping or one-shot background BAM animation placed in
// the area.
type AreAnimation struct {
	Name               string
	Coordinate         Point2[uint16]
	AppearanceSchedule uint32
	Resref             string
	BamSequence        uint16
	BamFrame           uint16
	Flags              uint32
	Height             uint16
	Transparency       uint16
	StartFrame         uint16
	LoopChance         uint8
	SkipCycles         uint8
	Palette            string
	AnimationWidth     uint16
	AnimationHeight    uint16
}

func decodeAreAnimation(c *ieio.Cursor) (AreAnimation, error) {
	var a AreAnimation
	var err error
	if a.Name, err = c.Name(); err != nil {
		return a, err
	}
	if a.Coordinate, err = DecodePoint2U16(c); err != nil {
		return a, err
	}
	if a.AppearanceSchedule, err = c.U32(); err != nil {
		return a, err
	}
	if a.Resref, err = c.ResRef(); err != nil {
		return a, err
	}
	if a.BamSequence, err = c.U16(); err != nil {
		return a, err
	}
	if a.BamFrame, err = c.U16(); err != nil {
		return a, err
	}
	if a.Flags, err = c.U32(); err != nil {
		return a, err
	}
	if a.Height, err = c.U16(); err != nil {
		return a, err
	}
	if a.Transparency, err = c.U16(); err != nil {
		return a, err
	}
	if a.StartFrame, err = c.U16(); err != nil {
		return a, err
	}
	if a.LoopChance, err = c.U8(); err != nil {
		return a, err
	}
	if a.SkipCycles, err = c.U8(); err != nil {
		return a, err
	}
	if a.Palette, err = c.ResRef(); err != nil {
		return a, err
	}
	if a.AnimationWidth, err = c.U16(); err != nil {
		return a, err
	}
	if a.AnimationHeight, err = c.U16(); err != nil {
		return a, err
	}
	return a, nil
}

// AreTiledObject links a WED tile cell to search-map behavior.
type AreTiledObject struct {
	Name         string
	TileID       string
	Flags        uint32
	OpenOffset   uint32
	OpenCount    uint32
	ClosedCount  uint32
	ClosedOffset uint32
}

const areTiledObjectUnusedPadding = 48

func decodeAreTiledObject(c *ieio.Cursor) (AreTiledObject, error) {
	var t AreTiledObject
	var err error
	if t.Name, err = c.Name(); err != nil {
		return t, err
	}
	if t.TileID, err = c.ResRef(); err != nil {
		return t, err
	}
	if t.Flags, err = c.U32(); err != nil {
		return t, err
	}
	if t.OpenOffset, err = c.U32(); err != nil {
		return t, err
	}
	if t.OpenCount, err = c.U32(); err != nil {
		return t, err
	}
	if t.ClosedCount, err = c.U32(); err != nil {
		return t, err
	}
	if t.ClosedOffset, err = c.U32(); err != nil {
		return t, err
	}
	if err := c.Skip(areTiledObjectUnusedPadding); err != nil {
		return t, err
	}
	return t, nil
}

// AreSongEntries names the time-of-day and combat music tracks for the
// area.
type AreSongEntries struct {
	RefDay             uint32
	RefNight           uint32
	RefWin             uint32
	RefBattle          uint32
	RefLose            uint32
	Alt1               uint32
	Alt2               uint32
	Alt3               uint32
	Alt4               uint32
	Alt5               uint32
	AmbientDay1        string
	AmbientDay2        string
	AmbientDayVolume   uint32
	AmbientNight1      string
	AmbientNight2      string
	AmbientNightVolume uint32
	Reverb             uint32
}

const areSongEntriesUnusedPadding = 60

func decodeAreSongEntries(c *ieio.Cursor) (AreSongEntries, error) {
	var s AreSongEntries
	var err error
	if s.RefDay, err = c.U32(); err != nil {
		return s, err
	}
	if s.RefNight, err = c.U32(); err != nil {
		return s, err
	}
	if s.RefWin, err = c.U32(); err != nil {
		return s, err
	}
	if s.RefBattle, err = c.U32(); err != nil {
		return s, err
	}
	if s.RefLose, err = c.U32(); err != nil {
		return s, err
	}
	if s.Alt1, err = c.U32(); err != nil {
		return s, err
	}
	if s.Alt2, err = c.U32(); err != nil {
		return s, err
	}
	if s.Alt3, err = c.U32(); err != nil {
		return s, err
	}
	if s.Alt4, err = c.U32(); err != nil {
		return s, err
	}
	if s.Alt5, err = c.U32(); err != nil {
		return s, err
	}
	if s.AmbientDay1, err = c.ResRef(); err != nil {
		return s, err
	}
	if s.AmbientDay2, err = c.ResRef(); err != nil {
		return s, err
	}
	if s.AmbientDayVolume, err = c.U32(); err != nil {
		return s, err
	}
	if s.AmbientNight1, err = c.ResRef(); err != nil {
		return s, err
	}
	if s.AmbientNight2, err = c.ResRef(); err != nil {
		return s, err
	}
	if s.AmbientNightVolume, err = c.U32(); err != nil {
		return s, err
	}
	if s.Reverb, err = c.U32(); err != nil {
		return s, err
	}
	if err := c.Skip(areSongEntriesUnusedPadding); err != nil {
		return s, err
	}
	return s, nil
}

// AreRestInterruptions lists the creatures and explanatory text used when
// resting in the area is interrupted.
type AreRestInterruptions struct {
	Name                      string
	Text                      [4]string
	Creatures                 [10]string
	CreatureCount             uint16
	Difficulty                uint16
	RemovalTime               uint32
	MovementRestriction       uint16
	MovementRestrictionObject uint16
	CreatureMax               uint16
	Enabled                   uint16
	ProbabilityDay            uint16
	ProbabilityNight          uint16
}

const (
	areRestInterruptionsLineLength    = 10
	areRestInterruptionsUnusedPadding = 56
)

func decodeAreRestInterruptions(c *ieio.Cursor) (AreRestInterruptions, error) {
	var r AreRestInterruptions
	var err error
	if r.Name, err = c.Name(); err != nil {
		return r, err
	}
	for i := range r.Text {
		if r.Text[i], err = c.String(areRestInterruptionsLineLength); err != nil {
			return r, err
		}
	}
	for i := range r.Creatures {
		if r.Creatures[i], err = c.ResRef(); err != nil {
			return r, err
		}
	}
	if r.CreatureCount, err = c.U16(); err != nil {
		return r, err
	}
	if r.Difficulty, err = c.U16(); err != nil {
		return r, err
	}
	if r.RemovalTime, err = c.U32(); err != nil {
		return r, err
	}
	if r.MovementRestriction, err = c.U16(); err != nil {
		return r, err
	}
	if r.MovementRestrictionObject, err = c.U16(); err != nil {
		return r, err
	}
	if r.CreatureMax, err = c.U16(); err != nil {
		return r, err
	}
	if r.Enabled, err = c.U16(); err != nil {
		return r, err
	}
	if r.ProbabilityDay, err = c.U16(); err != nil {
		return r, err
	}
	if r.ProbabilityNight, err = c.U16(); err != nil {
		return r, err
	}
	if err := c.Skip(areRestInterruptionsUnusedPadding); err != nil {
		return r, err
	}
	return r, nil
}

// AreAutomapNote is a player-placed automap annotation. Its wire layout
// differs between Planescape: Torment and every other title — callers
// select the variant via DecodeAre's planescape argument, per
// the original format's own PST-specific encoding.
type AreAutomapNote struct {
	Planescape bool
	Coordinate Point2[uint32]
	TextIndex  uint32 // not used in PST
	Text       string // only used in PST
	Location   uint16 // not used in PST
	Color      uint32
	Count      uint32 // not used in PST
}

const (
	areAutomapNotePstTextLength    = 500
	areAutomapNotePstUnusedPadding = 20
	areAutomapNoteUnusedPadding    = 36
)

func decodeAreAutomapNote(c *ieio.Cursor) (AreAutomapNote, error) {
	var n AreAutomapNote
	coord, err := DecodePoint2U16(c)
	if err != nil {
		return n, err
	}
	n.Coordinate = WidenPoint2(coord)
	if n.TextIndex, err = c.U32(); err != nil {
		return n, err
	}
	location, err := c.U16()
	if err != nil {
		return n, err
	}
	n.Location = location
	color, err := c.U16()
	if err != nil {
		return n, err
	}
	n.Color = uint32(color)
	if n.Count, err = c.U32(); err != nil {
		return n, err
	}
	if err := c.Skip(areAutomapNoteUnusedPadding); err != nil {
		return n, err
	}
	return n, nil
}

func decodeAreAutomapNotePst(c *ieio.Cursor) (AreAutomapNote, error) {
	var n AreAutomapNote
	n.Planescape = true
	coord, err := DecodePoint2U32(c)
	if err != nil {
		return n, err
	}
	n.Coordinate = coord
	text, err := c.String(areAutomapNotePstTextLength)
	if err != nil {
		return n, err
	}
	n.Text = text
	if n.Color, err = c.U32(); err != nil {
		return n, err
	}
	if err := c.Skip(areAutomapNotePstUnusedPadding); err != nil {
		return n, err
	}
	return n, nil
}

// AreProjectileTrap is a persistent trap that fires a projectile effect.
type AreProjectileTrap struct {
	Projectile        string
	EffectBlock       SectionAddress
	MissileRef        uint16
	Ticks             uint16
	TriggersRemaining uint16
	Coordinate        Point3[uint16]
	FriendlyFire      uint8
	Creator           uint8
}

func decodeAreProjectileTrap(c *ieio.Cursor) (AreProjectileTrap, error) {
	var t AreProjectileTrap
	var err error
	if t.Projectile, err = c.ResRef(); err != nil {
		return t, err
	}
	offset, err := c.U32()
	if err != nil {
		return t, err
	}
	size, err := c.U16()
	if err != nil {
		return t, err
	}
	t.EffectBlock = SectionAddress{Offset: offset, Count: uint32(size)}
	if t.MissileRef, err = c.U16(); err != nil {
		return t, err
	}
	if t.Ticks, err = c.U16(); err != nil {
		return t, err
	}
	if t.TriggersRemaining, err = c.U16(); err != nil {
		return t, err
	}
	if t.Coordinate, err = DecodePoint3U16(c); err != nil {
		return t, err
	}
	if t.FriendlyFire, err = c.U8(); err != nil {
		return t, err
	}
	if t.Creator, err = c.U8(); err != nil {
		return t, err
	}
	return t, nil
}

// Are is a fully decoded area description: its header plus every section
// the header points at. AutomapNotes and ProjectileTraps are populated
// here even though the reference decoder's top-level aggregate omits them
// — the header always carries valid addresses for both, so there is no
// reason for a complete decode to leave them out.
type Are struct {
	Header            AreHeader
	Actors            []AreActor
	Regions           []AreRegion
	SpawnPoints       []AreSpawnPoint
	Entrances         []AreEntrance
	Containers        []AreContainer
	Items             []AreItem
	Vertices          []Point2[uint16]
	Ambients          []AreAmbient
	Variables         []AreVariable
	Explored          []byte
	Doors             []AreDoor
	Animations        []AreAnimation
	TiledObjects      []AreTiledObject
	SongEntries       AreSongEntries
	RestInterruptions AreRestInterruptions
	AutomapNotes      []AreAutomapNote
	ProjectileTraps   []AreProjectileTrap

	// Wed is left nil by DecodeAre: resolving Header.WedName to a WED
	// resource requires a resource manager, not just the byte cursor. The
	// resource layer's LoadAre populates this slot after decoding.
	Wed *Wed
}

// DecodeAre reads a complete ARE file. planescape selects the PST-specific
// automap note wire layout; every other title uses the default layout.
func DecodeAre(c *ieio.Cursor, planescape bool) (*Are, error) {
	header, err := decodeAreHeader(c)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE header: %w", err)
	}

	actors, err := ieio.ReadList(c, int(header.Actors.Offset), int(header.Actors.Count), decodeAreActor)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE actors: %w", err)
	}
	regions, err := ieio.ReadList(c, int(header.Regions.Offset), int(header.Regions.Count), decodeAreRegion)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE regions: %w", err)
	}
	spawnPoints, err := ieio.ReadList(c, int(header.SpawnPoints.Offset), int(header.SpawnPoints.Count), decodeAreSpawnPoint)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE spawn points: %w", err)
	}
	entrances, err := ieio.ReadList(c, int(header.Entrances.Offset), int(header.Entrances.Count), decodeAreEntrance)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE entrances: %w", err)
	}
	containers, err := ieio.ReadList(c, int(header.Containers.Offset), int(header.Containers.Count), decodeAreContainer)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE containers: %w", err)
	}
	items, err := ieio.ReadList(c, int(header.Items.Offset), int(header.Items.Count), decodeAreItem)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE items: %w", err)
	}
	vertices, err := ieio.ReadList(c, int(header.Vertices.Offset), int(header.Vertices.Count), DecodePoint2U16)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE vertices: %w", err)
	}
	ambients, err := ieio.ReadList(c, int(header.Ambients.Offset), int(header.Ambients.Count), decodeAreAmbient)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE ambients: %w", err)
	}
	variables, err := ieio.ReadList(c, int(header.Variables.Offset), int(header.Variables.Count), decodeAreVariable)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE variables: %w", err)
	}

	if err := c.SeekIfNeeded(int(header.Explored.Offset)); err != nil {
		return nil, err
	}
	explored, err := c.ReadBytes(int(header.Explored.Size))
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE explored bitmask: %w", err)
	}

	doors, err := ieio.ReadList(c, int(header.Doors.Offset), int(header.Doors.Count), decodeAreDoor)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE doors: %w", err)
	}
	animations, err := ieio.ReadList(c, int(header.Animations.Offset), int(header.Animations.Count), decodeAreAnimation)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE animations: %w", err)
	}
	tiledObjects, err := ieio.ReadList(c, int(header.TiledObjects.Offset), int(header.TiledObjects.Count), decodeAreTiledObject)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE tiled objects: %w", err)
	}

	if err := c.SeekIfNeeded(int(header.SongEntriesOffset)); err != nil {
		return nil, err
	}
	songEntries, err := decodeAreSongEntries(c)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE song entries: %w", err)
	}

	if err := c.SeekIfNeeded(int(header.RestInterruptionsOffset)); err != nil {
		return nil, err
	}
	restInterruptions, err := decodeAreRestInterruptions(c)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE rest interruptions: %w", err)
	}

	automapDecode := decodeAreAutomapNote
	if planescape {
		automapDecode = decodeAreAutomapNotePst
	}
	automapNotes, err := ieio.ReadList(c, int(header.AutomapNotes.Offset), int(header.AutomapNotes.Count), automapDecode)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE automap notes: %w", err)
	}

	projectileTraps, err := ieio.ReadList(c, int(header.ProjectileTraps.Offset), int(header.ProjectileTraps.Count), decodeAreProjectileTrap)
	if err != nil {
		return nil, fmt.Errorf("infinity: read ARE projectile traps: %w", err)
	}

	return &Are{
		Header:            header,
		Actors:            actors,
		Regions:           regions,
		SpawnPoints:       spawnPoints,
		Entrances:         entrances,
		Containers:        containers,
		Items:             items,
		Vertices:          vertices,
		Ambients:          ambients,
		Variables:         variables,
		Explored:          explored,
		Doors:             doors,
		Animations:        animations,
		TiledObjects:      tiledObjects,
		SongEntries:       songEntries,
		RestInterruptions: restInterruptions,
		AutomapNotes:      automapNotes,
		ProjectileTraps:   projectileTraps,
	}, nil
}
