package overlay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankdim/internal/errdefs"
	"github.com/AvengeMedia/dankdim/internal/levels"
)

type fakeProcess struct {
	level      levels.DimLevel
	terminated bool
}

func (f *fakeProcess) Terminate() { f.terminated = true }

type fakeLauncher struct {
	launched []*fakeProcess
	fail     bool
}

func (f *fakeLauncher) launch(level levels.DimLevel) (Process, error) {
	if f.fail {
		return nil, errors.New("exec format error")
	}
	p := &fakeProcess{level: level}
	f.launched = append(f.launched, p)
	return p, nil
}

func TestApplyLaunchesAtLevel(t *testing.T) {
	fl := &fakeLauncher{}
	s := NewSupervisorWithLaunch(fl.launch)

	require.NoError(t, s.Apply(4))
	require.Len(t, fl.launched, 1)
	assert.Equal(t, levels.DimLevel(4), fl.launched[0].level)
	assert.True(t, s.Running())
}

func TestApplyReplacesPreviousProcess(t *testing.T) {
	fl := &fakeLauncher{}
	s := NewSupervisorWithLaunch(fl.launch)

	require.NoError(t, s.Apply(4))
	require.NoError(t, s.Apply(8))

	require.Len(t, fl.launched, 2)
	assert.True(t, fl.launched[0].terminated)
	assert.False(t, fl.launched[1].terminated)
	assert.True(t, s.Running())
}

func TestApplyZeroLeavesNothingRunning(t *testing.T) {
	fl := &fakeLauncher{}
	s := NewSupervisorWithLaunch(fl.launch)

	require.NoError(t, s.Apply(4))
	require.NoError(t, s.Apply(0))

	assert.True(t, fl.launched[0].terminated)
	assert.False(t, s.Running())
}

func TestApplyZeroTwiceIsIdempotent(t *testing.T) {
	fl := &fakeLauncher{}
	s := NewSupervisorWithLaunch(fl.launch)

	require.NoError(t, s.Apply(0))
	require.NoError(t, s.Apply(0))

	assert.Empty(t, fl.launched)
	assert.False(t, s.Running())
}

func TestApplyClampsLevel(t *testing.T) {
	fl := &fakeLauncher{}
	s := NewSupervisorWithLaunch(fl.launch)

	require.NoError(t, s.Apply(-5))
	assert.Empty(t, fl.launched)

	require.NoError(t, s.Apply(99))
	require.Len(t, fl.launched, 1)
	assert.Equal(t, levels.MaxDim, fl.launched[0].level)
}

func TestApplyLaunchFailure(t *testing.T) {
	fl := &fakeLauncher{}
	s := NewSupervisorWithLaunch(fl.launch)
	require.NoError(t, s.Apply(4))

	fl.fail = true
	err := s.Apply(8)
	require.Error(t, err)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeLaunch))

	// Previous handle invalidated even though launch failed: no duplicates,
	// and no stale handle either.
	assert.True(t, fl.launched[0].terminated)
	assert.False(t, s.Running())
}

func TestShutdownTerminatesProcess(t *testing.T) {
	fl := &fakeLauncher{}
	s := NewSupervisorWithLaunch(fl.launch)

	require.NoError(t, s.Apply(12))
	s.Shutdown()

	assert.True(t, fl.launched[0].terminated)
	assert.False(t, s.Running())

	// Safe when nothing is running
	s.Shutdown()
}
