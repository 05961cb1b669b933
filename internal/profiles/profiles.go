// Package profiles holds the static preset table and matches live
// state against it.
package profiles

import "github.com/AvengeMedia/dankdim/internal/levels"

// Distinguished match results that are not table entries.
const (
	// Pause is dim off plus neutral colors.
	Pause = "pause"
	// Custom is any state that matches nothing in the table.
	Custom = "custom"
)

// KelvinTolerance is how far the live temperature may drift from a
// profile's temperature and still count as that profile.
const KelvinTolerance = 200

// Profile is a named preset pairing a dim level and a warm level.
type Profile struct {
	ID          string
	Dim         levels.DimLevel
	Warm        levels.WarmLevel
	Label       string
	Description string
}

// Table is the static preset list. Order matters: Match scans it in
// insertion order so ties resolve the same way on every run.
var Table = []Profile{
	{ID: "health", Dim: 2, Warm: 2, Label: "Health", Description: "4500K, 90% Brightness"},
	{ID: "game", Dim: 2, Warm: 0, Label: "Game", Description: "6500K, 90% Brightness"},
	{ID: "movie", Dim: 2, Warm: 1, Label: "Movie", Description: "5500K, 90% Brightness"},
	{ID: "office", Dim: 3, Warm: 1, Label: "Office", Description: "5500K, 85% Brightness"},
	{ID: "editing", Dim: 1, Warm: 0, Label: "Editing", Description: "6500K, 95% Brightness"},
	{ID: "reading", Dim: 2, Warm: 3, Label: "Reading", Description: "3500K, 90% Brightness"},
}

// ByID looks up a table entry.
func ByID(id string) (Profile, bool) {
	for _, p := range Table {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// Match determines which preset the given state corresponds to.
// kelvin is the live color temperature. The pause state (no dimming,
// neutral colors) wins over any table entry; otherwise the first entry
// with the exact dim level and a temperature within KelvinTolerance
// wins; everything else is Custom.
func Match(dim levels.DimLevel, kelvin int) string {
	if dim == 0 && kelvin >= levels.NeutralKelvin {
		return Pause
	}

	for _, p := range Table {
		if p.Dim != dim {
			continue
		}
		diff := kelvin - p.Warm.Kelvin()
		if diff < 0 {
			diff = -diff
		}
		if diff < KelvinTolerance {
			return p.ID
		}
	}

	return Custom
}
