// Package levels defines the bounded dim and warm level encodings and
// their mapping to display names and color temperatures.
package levels

import "fmt"

// DimLevel is the overlay dimness, 0 (off) to MaxDim (fully dark).
// Each step is 5% overlay opacity.
type DimLevel int

// WarmLevel is the color filter strength, 0 (neutral) to MaxWarm.
type WarmLevel int

const (
	MaxDim  DimLevel  = 20
	MaxWarm WarmLevel = 5

	// NeutralKelvin is standard daylight; at or above it the filter is off.
	NeutralKelvin = 6500
	MinKelvin     = 2000
)

// kelvinByWarm maps each warm level to its color temperature.
// Monotonic decreasing; index 0 is the neutral/off temperature.
var kelvinByWarm = [MaxWarm + 1]int{6500, 5500, 4500, 3500, 2700, 2000}

// dimNames labels the key menu levels; intermediate levels render as a percentage.
var dimNames = map[DimLevel]string{
	0:  "Off (0%)",
	4:  "Light (20%)",
	8:  "Medium (40%)",
	12: "Dark (60%)",
	16: "Very Dark (80%)",
	20: "Ultra (100%)",
}

var warmNames = [MaxWarm + 1]string{
	"Off (6500K)",
	"Warm 1 (5500K)",
	"Warm 2 (4500K)",
	"Warm 3 (3500K)",
	"Warm 4 (2700K)",
	"Candle (2000K)",
}

// ClampDim clamps a raw level into [0, MaxDim].
func ClampDim(level int) DimLevel {
	if level < 0 {
		return 0
	}
	if level > int(MaxDim) {
		return MaxDim
	}
	return DimLevel(level)
}

// ClampWarm clamps a raw level into [0, MaxWarm].
func ClampWarm(level int) WarmLevel {
	if level < 0 {
		return 0
	}
	if level > int(MaxWarm) {
		return MaxWarm
	}
	return WarmLevel(level)
}

// Percent returns the overlay opacity percentage for the level.
func (d DimLevel) Percent() int { return int(d) * 5 }

// DisplayName returns the human readable name used in menus and notifications.
func (d DimLevel) DisplayName() string {
	if name, ok := dimNames[d]; ok {
		return name
	}
	return fmt.Sprintf("%d%% Dimmed", d.Percent())
}

// Kelvin returns the color temperature for the warm level, always in
// [MinKelvin, NeutralKelvin].
func (w WarmLevel) Kelvin() int {
	return kelvinByWarm[ClampWarm(int(w))]
}

// DisplayName returns the human readable name used in menus and notifications.
func (w WarmLevel) DisplayName() string {
	return warmNames[ClampWarm(int(w))]
}

// Neutral reports whether the warm level applies no filter.
func (w WarmLevel) Neutral() bool { return w.Kelvin() >= NeutralKelvin }
