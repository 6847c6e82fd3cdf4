// Package platform identifies supported Infinity Engine titles and locates
// their installation directories on the local machine.
package platform

// Games enumerates every Infinity Engine title this module understands,
// original and Enhanced Edition releases alike.
type Games int32

const (
	None Games = iota
	BaldursGate1
	BaldursGate1EnhancedEdition
	BaldursGate2
	BaldursGate2EnhancedEdition
	IcewindDale1
	IcewindDale1EnhancedEdition
	IcewindDale2
	PlanescapeTorment
	PlanescapeTormentEnhancedEdition
)

// String renders the title's display name.
func (g Games) String() string {
	switch g {
	case BaldursGate1:
		return "Baldur's Gate"
	case BaldursGate1EnhancedEdition:
		return "Baldur's Gate: Enhanced Edition"
	case BaldursGate2:
		return "Baldur's Gate II: Shadows of Amn"
	case BaldursGate2EnhancedEdition:
		return "Baldur's Gate II: Enhanced Edition"
	case IcewindDale1:
		return "Icewind Dale"
	case IcewindDale1EnhancedEdition:
		return "Icewind Dale: Enhanced Edition"
	case IcewindDale2:
		return "Icewind Dale II"
	case PlanescapeTorment:
		return "Planescape: Torment"
	case PlanescapeTormentEnhancedEdition:
		return "Planescape: Torment: Enhanced Edition"
	default:
		return "None"
	}
}

// IsPlanescape reports whether g is either Planescape: Torment release —
// the titles that use the PST-specific automap note wire layout.
func (g Games) IsPlanescape() bool {
	return g == PlanescapeTorment || g == PlanescapeTormentEnhancedEdition
}

// keyFileNames maps a title to the exact on-disk name (case matters on
// case-sensitive filesystems) of its KEY index file.
var keyFileNames = map[Games]string{
	BaldursGate1:                     "Chitin.key",
	BaldursGate1EnhancedEdition:      "chitin.key",
	BaldursGate2:                     "CHITIN.KEY",
	BaldursGate2EnhancedEdition:      "chitin.key",
	IcewindDale1:                     "CHITIN.KEY",
	IcewindDale1EnhancedEdition:      "chitin.key",
	IcewindDale2:                     "CHITIN.KEY",
	PlanescapeTorment:                "CHITIN.KEY",
	PlanescapeTormentEnhancedEdition: "chitin.key",
}

// KeyFileName returns the on-disk KEY file name for game, and false if the
// title is unrecognized.
func KeyFileName(game Games) (string, bool) {
	name, ok := keyFileNames[game]
	return name, ok
}

// gogGameIDs maps a title to its GOG.com product ID.
var gogGameIDs = map[Games]uint32{
	BaldursGate1:                     1207658886,
	BaldursGate1EnhancedEdition:      1207666353,
	BaldursGate2:                     1207658893,
	BaldursGate2EnhancedEdition:      1207666373,
	IcewindDale1:                     1207658888,
	IcewindDale1EnhancedEdition:      1207666683,
	IcewindDale2:                     1207658891,
	PlanescapeTorment:                1207658887,
	PlanescapeTormentEnhancedEdition: 1203613131,
}

// GogGameID returns the title's GOG.com product ID, and false if unknown.
func GogGameID(game Games) (uint32, bool) {
	id, ok := gogGameIDs[game]
	return id, ok
}

// steamAppIDs maps a title to its Steam application ID.
var steamAppIDs = map[Games]uint32{
	BaldursGate1:                     24431,
	BaldursGate1EnhancedEdition:      228280,
	BaldursGate2:                     99140,
	BaldursGate2EnhancedEdition:      257350,
	IcewindDale1:                     206940,
	IcewindDale1EnhancedEdition:      321800,
	IcewindDale2:                     206950,
	PlanescapeTorment:                205180,
	PlanescapeTormentEnhancedEdition: 466300,
}

// SteamAppID returns the title's Steam application ID, and false if unknown.
func SteamAppID(game Games) (uint32, bool) {
	id, ok := steamAppIDs[game]
	return id, ok
}
