// Package tray is the systray glue. It only ever issues the
// controller's five operations; all state decisions live behind them.
package tray

import (
	"fmt"

	"github.com/getlantern/systray"

	"github.com/AvengeMedia/dankdim/internal/controller"
	"github.com/AvengeMedia/dankdim/internal/levels"
	"github.com/AvengeMedia/dankdim/internal/log"
	"github.com/AvengeMedia/dankdim/internal/profiles"
)

// menuDimLevels are the quick preset entries; intermediate levels are
// reachable through the panel or the hotkey commands.
var menuDimLevels = []levels.DimLevel{0, 4, 8, 12, 16, 20}

type event struct {
	cmd         controller.Command
	toggleBreak bool
	quit        bool
}

var (
	ctrl *controller.Loop

	dimItems     []*systray.MenuItem
	warmItems    []*systray.MenuItem
	profileItems []*systray.MenuItem
	pauseItem    *systray.MenuItem
	breakItem    *systray.MenuItem
	statusItem   *systray.MenuItem
	warmStatus   *systray.MenuItem
	quitItem     *systray.MenuItem

	events chan event
)

// Run starts the tray. Blocks the calling goroutine (must be main).
// All controller access goes through the shared dispatch loop, so tray
// clicks and IPC calls can never race.
func Run(l *controller.Loop) {
	ctrl = l
	events = make(chan event, 16)
	systray.Run(onReady, onExit)
}

// Quit asks the tray to exit; safe to call from any goroutine.
func Quit() {
	systray.Quit()
}

func onReady() {
	systray.SetTitle("Dim")
	systray.SetTooltip("Dimmer - Screen Brightness Control")

	header := systray.AddMenuItem("Dimmer Control", "")
	header.Disable()
	systray.AddSeparator()

	for _, lvl := range menuDimLevels {
		item := systray.AddMenuItem(lvl.DisplayName(), "")
		dimItems = append(dimItems, item)
		forward(item, event{cmd: controller.Command{Op: controller.OpSetDim, Level: int(lvl)}})
	}
	systray.AddSeparator()

	warmMenu := systray.AddMenuItem("Warm Filter", "")
	for w := levels.WarmLevel(0); w <= levels.MaxWarm; w++ {
		item := warmMenu.AddSubMenuItem(w.DisplayName(), "")
		warmItems = append(warmItems, item)
		forward(item, event{cmd: controller.Command{Op: controller.OpSetWarm, Level: int(w)}})
	}

	profileMenu := systray.AddMenuItem("Profiles", "")
	pauseItem = profileMenu.AddSubMenuItem("Pause", "Dimming off, neutral colors")
	forward(pauseItem, event{cmd: controller.Command{Op: controller.OpApplyProfile, ProfileID: profiles.Pause}})
	for _, p := range profiles.Table {
		item := profileMenu.AddSubMenuItem(p.Label, p.Description)
		profileItems = append(profileItems, item)
		forward(item, event{cmd: controller.Command{Op: controller.OpApplyProfile, ProfileID: p.ID}})
	}
	systray.AddSeparator()

	breakItem = systray.AddMenuItemCheckbox("Break Reminder (20 min)", "", ctrl.Snapshot().BreakEnabled)
	forward(breakItem, event{toggleBreak: true})
	systray.AddSeparator()

	statusItem = systray.AddMenuItem("Status: Off", "")
	statusItem.Disable()
	warmStatus = systray.AddMenuItem("Warm: Off", "")
	warmStatus.Disable()
	systray.AddSeparator()

	quitItem = systray.AddMenuItem("Quit", "Stop dimming and exit")
	forward(quitItem, event{quit: true})

	ctrl.SetListener(&status{})
	ctrl.Restore()

	go loop()
}

func onExit() {
	if err := ctrl.Dispatch(controller.Command{Op: controller.OpShutdown}); err != nil {
		log.Errorf("Shutdown failed: %v", err)
	}
}

// forward turns menu clicks into events on the tray's own queue; the
// loop then funnels them through the shared dispatch goroutine.
func forward(item *systray.MenuItem, ev event) {
	go func() {
		for range item.ClickedCh {
			events <- ev
		}
	}()
}

func loop() {
	for ev := range events {
		switch {
		case ev.quit:
			systray.Quit()
			return
		case ev.toggleBreak:
			if _, err := ctrl.FlipBreak(); err != nil {
				log.Errorf("Break toggle failed: %v", err)
			}
		default:
			if err := ctrl.Dispatch(ev.cmd); err != nil {
				log.Errorf("Command failed: %v", err)
			}
		}
	}
}

// status mirrors controller state into the disabled status entries.
type status struct{}

func (s *status) DimChanged(level levels.DimLevel, origin controller.Origin) {
	if level == 0 {
		statusItem.SetTitle("Status: Off")
	} else {
		statusItem.SetTitle("Status: " + level.DisplayName())
	}
	systray.SetTitle(titleFor(level))
	systray.SetTooltip(tooltipFor(level))
}

func (s *status) WarmChanged(level levels.WarmLevel, origin controller.Origin) {
	if level.Neutral() {
		warmStatus.SetTitle("Warm: Off")
	} else {
		warmStatus.SetTitle(fmt.Sprintf("Warm: %dK", level.Kelvin()))
	}
}

func (s *status) MatchChanged(profileID string) {
	// Status entries carry the raw levels; the active preset is shown
	// in the panel. Nothing to do here.
}

func (s *status) BreakChanged(enabled bool) {
	if enabled {
		breakItem.Check()
	} else {
		breakItem.Uncheck()
	}
}

// titleFor tiers the tray title by dim level: high / medium / low
// brightness, same thresholds as the tooltip.
func titleFor(level levels.DimLevel) string {
	switch {
	case level == 0:
		return "Dim"
	case level <= 7:
		return "Dim ◔"
	case level <= 14:
		return "Dim ◑"
	default:
		return "Dim ●"
	}
}

// tooltipFor tiers the tooltip text by the same brightness thresholds.
func tooltipFor(level levels.DimLevel) string {
	switch {
	case level == 0:
		return "Dimmer Off"
	case level <= 7:
		return fmt.Sprintf("Dimmer %d%% (light)", level.Percent())
	case level <= 14:
		return fmt.Sprintf("Dimmer %d%% (medium)", level.Percent())
	default:
		return fmt.Sprintf("Dimmer %d%% (dark)", level.Percent())
	}
}
