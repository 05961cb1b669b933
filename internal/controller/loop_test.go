package controller

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankdim/internal/config"
	"github.com/AvengeMedia/dankdim/internal/levels"
)

func newLoopFixture(t *testing.T) (*Loop, *fakeOverlay) {
	t.Helper()
	store := config.NewStoreAt(filepath.Join(t.TempDir(), "config.yaml"))
	overlay := &fakeOverlay{}
	c := New(store, overlay, &fakeBridge{}, &fakeScheduler{}, nil)
	l := NewLoop(c)
	t.Cleanup(l.Close)
	return l, overlay
}

func TestLoopDispatch(t *testing.T) {
	l, overlay := newLoopFixture(t)

	require.NoError(t, l.Dispatch(Command{Op: OpSetDim, Level: 4}))

	s := l.Snapshot()
	assert.Equal(t, levels.DimLevel(4), s.Dim)
	assert.Equal(t, []levels.DimLevel{4}, overlay.applied)
}

func TestLoopFlipBreak(t *testing.T) {
	l, _ := newLoopFixture(t)

	on, err := l.FlipBreak()
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, l.Snapshot().BreakEnabled)

	off, err := l.FlipBreak()
	require.NoError(t, err)
	assert.False(t, off)
}

func TestLoopSerializesConcurrentCallers(t *testing.T) {
	l, overlay := newLoopFixture(t)

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(level int) {
			defer wg.Done()
			assert.NoError(t, l.Dispatch(Command{Op: OpSetDim, Level: level}))
		}(i)
	}
	wg.Wait()

	// Every dispatch ran to completion; one overlay apply per call
	assert.Len(t, overlay.applied, 8)
	assert.True(t, l.Snapshot().Dim >= 1)
}

func TestLoopSnapshotMatch(t *testing.T) {
	l, _ := newLoopFixture(t)

	require.NoError(t, l.Dispatch(Command{Op: OpApplyProfile, ProfileID: "movie"}))
	assert.Equal(t, "movie", l.Snapshot().Match)
}
