package main

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankdim/internal/ipc"
)

type fixedState struct {
	state ipc.State
	err   error
}

func (f fixedState) GetState() (ipc.State, error) { return f.state, f.err }

func dimOf(s ipc.State) int { return int(s.Dim) }

func TestResolveLevelAbsolute(t *testing.T) {
	level, err := resolveLevel(fixedState{}, "12", dimOf)
	require.NoError(t, err)
	assert.Equal(t, 12, level)
}

func TestResolveLevelRelative(t *testing.T) {
	current := fixedState{state: ipc.State{Dim: 8}}

	level, err := resolveLevel(current, "+2", dimOf)
	require.NoError(t, err)
	assert.Equal(t, 10, level)

	level, err = resolveLevel(current, "-1", dimOf)
	require.NoError(t, err)
	assert.Equal(t, 7, level)
}

func TestResolveLevelRejectsGarbage(t *testing.T) {
	_, err := resolveLevel(fixedState{}, "bright", dimOf)
	assert.Error(t, err)
}

func TestResolveLevelPropagatesStateError(t *testing.T) {
	broken := fixedState{err: errors.New("not running")}
	_, err := resolveLevel(broken, "+1", dimOf)
	assert.Error(t, err)
}

// A bare -N must arrive as a positional argument, not be eaten by the
// flag parser before the handler runs.
func TestSetCommandsAcceptRelativeDecrease(t *testing.T) {
	for _, tc := range []struct {
		name string
		cmd  *cobra.Command
	}{
		{"dim", setDimCmd},
		{"warm", setWarmCmd},
	} {
		t.Run(tc.name, func(t *testing.T) {
			orig := tc.cmd.Run
			defer func() { tc.cmd.Run = orig }()

			var got []string
			tc.cmd.Run = func(cmd *cobra.Command, args []string) { got = args }

			rootCmd.SetArgs([]string{"set", tc.name, "-1"})
			defer rootCmd.SetArgs(nil)

			require.NoError(t, rootCmd.Execute())
			assert.Equal(t, []string{"-1"}, got)
		})
	}
}
