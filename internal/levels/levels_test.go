package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampDim(t *testing.T) {
	assert.Equal(t, DimLevel(0), ClampDim(-3))
	assert.Equal(t, DimLevel(0), ClampDim(0))
	assert.Equal(t, DimLevel(7), ClampDim(7))
	assert.Equal(t, MaxDim, ClampDim(20))
	assert.Equal(t, MaxDim, ClampDim(99))
}

func TestClampWarm(t *testing.T) {
	assert.Equal(t, WarmLevel(0), ClampWarm(-1))
	assert.Equal(t, WarmLevel(3), ClampWarm(3))
	assert.Equal(t, MaxWarm, ClampWarm(12))
}

func TestKelvinMapping(t *testing.T) {
	// Monotonic decreasing across the whole range
	prev := NeutralKelvin + 1
	for w := WarmLevel(0); w <= MaxWarm; w++ {
		k := w.Kelvin()
		assert.Less(t, k, prev, "level %d", w)
		assert.GreaterOrEqual(t, k, MinKelvin)
		assert.LessOrEqual(t, k, NeutralKelvin)
		prev = k
	}

	assert.Equal(t, 6500, WarmLevel(0).Kelvin())
	assert.Equal(t, 3500, WarmLevel(3).Kelvin())
	assert.Equal(t, 2000, MaxWarm.Kelvin())
}

func TestNeutral(t *testing.T) {
	assert.True(t, WarmLevel(0).Neutral())
	for w := WarmLevel(1); w <= MaxWarm; w++ {
		assert.False(t, w.Neutral(), "level %d", w)
	}
}

func TestDimDisplayName(t *testing.T) {
	assert.Equal(t, "Off (0%)", DimLevel(0).DisplayName())
	assert.Equal(t, "Medium (40%)", DimLevel(8).DisplayName())
	assert.Equal(t, "Ultra (100%)", DimLevel(20).DisplayName())
	assert.Equal(t, "35% Dimmed", DimLevel(7).DisplayName())
}

func TestWarmDisplayName(t *testing.T) {
	assert.Equal(t, "Off (6500K)", WarmLevel(0).DisplayName())
	assert.Equal(t, "Candle (2000K)", WarmLevel(5).DisplayName())
}
