package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankdim/internal/levels"
)

func TestMatchEveryTableEntry(t *testing.T) {
	for _, p := range Table {
		t.Run(p.ID, func(t *testing.T) {
			assert.Equal(t, p.ID, Match(p.Dim, p.Warm.Kelvin()))
		})
	}
}

func TestMatchPause(t *testing.T) {
	assert.Equal(t, Pause, Match(0, 6500))
	assert.Equal(t, Pause, Match(0, 7000))

	// Dim off with a warm filter active is not pause
	assert.NotEqual(t, Pause, Match(0, 3500))
}

func TestMatchCustom(t *testing.T) {
	// No table entry at dim 3 anywhere near this temperature
	assert.Equal(t, Custom, Match(3, 6500-KelvinTolerance-1))

	assert.Equal(t, Custom, Match(20, 2000))
	assert.Equal(t, Custom, Match(0, 5500))
}

func TestMatchTolerance(t *testing.T) {
	reading, ok := ByID("reading")
	require.True(t, ok)

	k := reading.Warm.Kelvin()
	assert.Equal(t, "reading", Match(reading.Dim, k+KelvinTolerance-1))
	assert.Equal(t, "reading", Match(reading.Dim, k-KelvinTolerance+1))
	assert.Equal(t, Custom, Match(reading.Dim, k-KelvinTolerance-500))
}

func TestMatchDeterministicOrder(t *testing.T) {
	// Repeated calls with the same input always name the same winner.
	first := Match(2, 5500)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Match(2, 5500))
	}
	assert.Equal(t, "movie", first)
}

func TestByID(t *testing.T) {
	p, ok := ByID("office")
	require.True(t, ok)
	assert.Equal(t, levels.DimLevel(3), p.Dim)
	assert.Equal(t, levels.WarmLevel(1), p.Warm)

	_, ok = ByID("nope")
	assert.False(t, ok)
}
