package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankdim/internal/ipc"
	"github.com/AvengeMedia/dankdim/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "dankdim",
	Short: "DankDim screen dimmer",
	Long:  "DankDim screen dimmer\n\nDims the screen with a translucent overlay and warms colors through\nKWin NightLight. Running without a subcommand starts the tray.",
	Run: func(cmd *cobra.Command, args []string) {
		runTray()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("DankDim v%s\n", Version)
	},
}

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Open the interactive control panel",
	Long:  "Open the keyboard-driven control panel. Requires a running tray instance.",
	Run: func(cmd *cobra.Command, args []string) {
		runPanel()
	},
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a level on the running instance",
}

var setDimCmd = &cobra.Command{
	Use:   "dim <level|+N|-N>",
	Short: "Set the dim level (0-20), or adjust it relatively",
	Args:  cobra.ExactArgs(1),
	// Flag parsing would swallow a bare -N before it reaches the
	// handler, killing the decrease hotkey.
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		withClient(func(c *ipc.Client) error {
			level, err := resolveLevel(c, args[0], func(s ipc.State) int { return int(s.Dim) })
			if err != nil {
				return err
			}
			return c.SetDim(level, true)
		})
	},
}

var setWarmCmd = &cobra.Command{
	Use:                "warm <level|+N|-N>",
	Short:              "Set the warm level (0-5), or adjust it relatively",
	Args:               cobra.ExactArgs(1),
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		withClient(func(c *ipc.Client) error {
			level, err := resolveLevel(c, args[0], func(s ipc.State) int { return int(s.Warm) })
			if err != nil {
				return err
			}
			return c.SetWarm(level, true)
		})
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile <id>",
	Short: "Apply a preset profile (health, game, movie, office, editing, reading)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withClient(func(c *ipc.Client) error {
			return c.ApplyProfile(args[0])
		})
	},
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Turn off dimming and warm colors",
	Run: func(cmd *cobra.Command, args []string) {
		withClient(func(c *ipc.Client) error {
			return c.ApplyProfile("pause")
		})
	},
}

var breakCmd = &cobra.Command{
	Use:   "break <on|off>",
	Short: "Enable or disable the break reminder",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withClient(func(c *ipc.Client) error {
			switch args[0] {
			case "on":
				return c.ToggleBreak(true)
			case "off":
				return c.ToggleBreak(false)
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}
		})
	},
}

var quitCmd = &cobra.Command{
	Use:   "quit",
	Short: "Stop the running instance",
	Run: func(cmd *cobra.Command, args []string) {
		withClient(func(c *ipc.Client) error {
			return c.Shutdown()
		})
	},
}

// withClient runs a one-shot command against the running instance.
func withClient(fn func(*ipc.Client) error) {
	client, err := ipc.NewClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	if err := fn(client); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type stateReader interface {
	GetState() (ipc.State, error)
}

// resolveLevel parses an absolute level or a +N/-N adjustment against
// the instance's current state. Out-of-range results are clamped by
// the receiving side.
func resolveLevel(c stateReader, arg string, current func(ipc.State) int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid level %q", arg)
	}
	if strings.HasPrefix(arg, "+") || strings.HasPrefix(arg, "-") {
		state, err := c.GetState()
		if err != nil {
			return 0, err
		}
		return current(state) + n, nil
	}
	return n, nil
}

func runPanel() {
	client, err := ipc.NewClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	p := tea.NewProgram(tui.NewModel(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running panel: %v\n", err)
		os.Exit(1)
	}
}
