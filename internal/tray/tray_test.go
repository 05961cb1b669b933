package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AvengeMedia/dankdim/internal/levels"
)

func TestTitleTiers(t *testing.T) {
	assert.Equal(t, "Dim", titleFor(0))
	assert.Equal(t, "Dim ◔", titleFor(1))
	assert.Equal(t, "Dim ◔", titleFor(7))
	assert.Equal(t, "Dim ◑", titleFor(8))
	assert.Equal(t, "Dim ◑", titleFor(14))
	assert.Equal(t, "Dim ●", titleFor(15))
	assert.Equal(t, "Dim ●", titleFor(levels.MaxDim))
}

func TestTooltipTiers(t *testing.T) {
	assert.Equal(t, "Dimmer Off", tooltipFor(0))
	assert.Equal(t, "Dimmer 35% (light)", tooltipFor(7))
	assert.Equal(t, "Dimmer 40% (medium)", tooltipFor(8))
	assert.Equal(t, "Dimmer 75% (dark)", tooltipFor(15))
}
