// Package controller is the single integration point between the UI
// and hotkey layers and the dimmer subsystems. Every mutation of the
// dimmer/warm state goes through the five operations here.
//
// The controller is single-goroutine by contract: callers dispatch
// through one event loop (the tray click loop, the TUI program, or a
// one-shot CLI command), so no internal locking is needed. The break
// scheduler runs its own timer but never reaches back into the
// controller.
package controller

import (
	"fmt"

	"github.com/AvengeMedia/dankdim/internal/config"
	"github.com/AvengeMedia/dankdim/internal/errdefs"
	"github.com/AvengeMedia/dankdim/internal/levels"
	"github.com/AvengeMedia/dankdim/internal/log"
	"github.com/AvengeMedia/dankdim/internal/notify"
	"github.com/AvengeMedia/dankdim/internal/profiles"
)

// Origin tags where a state change came from, so display layers can
// decide whether to echo the value back into their input widgets. This
// replaces suppress-while-applying flags inside the widgets.
type Origin int

const (
	// OriginUser: the change came from direct user input (slider, menu,
	// hotkey). The originating widget already shows the value.
	OriginUser Origin = iota
	// OriginProfile: the change came from applying a preset; widgets
	// should move to the new value.
	OriginProfile
	// OriginRestore: the change came from startup restore.
	OriginRestore
)

// StatusListener receives state echoes after successful mutations.
// All methods are invoked synchronously from controller operations.
type StatusListener interface {
	DimChanged(level levels.DimLevel, origin Origin)
	WarmChanged(level levels.WarmLevel, origin Origin)
	MatchChanged(profileID string)
	BreakChanged(enabled bool)
}

// OverlaySupervisor is the dimming collaborator.
type OverlaySupervisor interface {
	Apply(level levels.DimLevel) error
	Shutdown()
}

// ColorBridge is the color temperature collaborator.
type ColorBridge interface {
	Apply(level levels.WarmLevel) error
}

// BreakScheduler is the reminder collaborator.
type BreakScheduler interface {
	Start()
	Stop()
	Running() bool
}

// Controller owns the live dimmer/warm state and keeps the persisted
// config synchronized with it.
type Controller struct {
	store     *config.Store
	overlay   OverlaySupervisor
	bridge    ColorBridge
	scheduler BreakScheduler
	notifier  notify.Notifier
	listener  StatusListener

	dim          levels.DimLevel
	warm         levels.WarmLevel
	breakEnabled bool
}

// New seeds a controller from the persisted config without applying
// anything. Call Restore to bring the screen to the saved state.
func New(store *config.Store, overlay OverlaySupervisor, bridge ColorBridge, scheduler BreakScheduler, notifier notify.Notifier) *Controller {
	cfg := store.Load()
	return &Controller{
		store:        store,
		overlay:      overlay,
		bridge:       bridge,
		scheduler:    scheduler,
		notifier:     notifier,
		dim:          levels.ClampDim(cfg.DimLevel),
		warm:         levels.ClampWarm(cfg.WarmLevel),
		breakEnabled: cfg.BreakEnabled,
	}
}

// SetListener registers the status listener. Pass nil to detach.
func (c *Controller) SetListener(l StatusListener) { c.listener = l }

// Dim returns the current dim level.
func (c *Controller) Dim() levels.DimLevel { return c.dim }

// Warm returns the current warm level.
func (c *Controller) Warm() levels.WarmLevel { return c.warm }

// BreakEnabled reports whether the break reminder is on.
func (c *Controller) BreakEnabled() bool { return c.breakEnabled }

// Match returns the preset the current state corresponds to.
func (c *Controller) Match() string {
	return profiles.Match(c.dim, c.warm.Kelvin())
}

// Restore applies the seeded state to the screen: saved levels with no
// notifications, and the break reminder if it was enabled. Apply
// failures are logged, not fatal; the desktop may not be ready yet.
func (c *Controller) Restore() {
	if c.dim > 0 {
		log.Infof("Restoring saved dimmer level %d", c.dim)
		if err := c.overlay.Apply(c.dim); err != nil {
			log.Warnf("Failed to restore dimmer: %v", err)
			c.dim = 0
		}
	}
	if c.warm > 0 {
		log.Infof("Restoring saved warm level %d", c.warm)
		if err := c.bridge.Apply(c.warm); err != nil {
			log.Warnf("Failed to restore warm filter: %v", err)
			c.warm = 0
		}
	}
	if c.breakEnabled {
		c.scheduler.Start()
	}
	c.echoDim(OriginRestore)
	c.echoWarm(OriginRestore)
	c.echoMatch()
}

// SetDim sets the overlay dimness. On supervisor failure the state and
// the persisted config are left unchanged.
func (c *Controller) SetDim(level int, notifyUser bool) error {
	return c.setDim(level, notifyUser, OriginUser)
}

func (c *Controller) setDim(level int, notifyUser bool, origin Origin) error {
	lvl := levels.ClampDim(level)

	if err := c.overlay.Apply(lvl); err != nil {
		log.Errorf("Failed to set dimmer level %d: %v", lvl, err)
		return err
	}

	c.dim = lvl
	c.persist()

	if notifyUser {
		if lvl == 0 {
			c.send(notify.Notification{Title: "Dimmer", Body: "Off - Full brightness"})
		} else {
			c.send(notify.Notification{Title: "Dimmer", Body: lvl.DisplayName()})
		}
	}

	c.echoDim(origin)
	c.echoMatch()
	return nil
}

// SetWarm sets the color filter strength. On bridge failure the state
// and the persisted config are left unchanged.
func (c *Controller) SetWarm(level int, notifyUser bool) error {
	return c.setWarm(level, notifyUser, OriginUser)
}

func (c *Controller) setWarm(level int, notifyUser bool, origin Origin) error {
	lvl := levels.ClampWarm(level)

	if err := c.bridge.Apply(lvl); err != nil {
		log.Errorf("Failed to set warm level %d: %v", lvl, err)
		return err
	}

	c.warm = lvl
	c.persist()

	if notifyUser {
		if lvl.Neutral() {
			c.send(notify.Notification{Title: "Warm Filter", Body: "Off - Neutral colors"})
		} else {
			c.send(notify.Notification{Title: "Warm Filter", Body: fmt.Sprintf("Temperature: %dK", lvl.Kelvin())})
		}
	}

	c.echoWarm(origin)
	c.echoMatch()
	return nil
}

// ApplyProfile applies a preset by id: both levels without individual
// notifications, then one combined notification naming the profile.
// The id "pause" turns both parameters off.
func (c *Controller) ApplyProfile(id string) error {
	if id == profiles.Pause {
		if err := c.setDim(0, false, OriginProfile); err != nil {
			return err
		}
		if err := c.setWarm(0, false, OriginProfile); err != nil {
			return err
		}
		c.send(notify.Notification{Title: "Pause", Body: "Dimming off, neutral colors"})
		return nil
	}

	p, ok := profiles.ByID(id)
	if !ok {
		return fmt.Errorf("%w: %q", errdefs.ErrUnknownProfile, id)
	}

	if err := c.setDim(int(p.Dim), false, OriginProfile); err != nil {
		return err
	}
	if err := c.setWarm(int(p.Warm), false, OriginProfile); err != nil {
		return err
	}

	c.send(notify.Notification{Title: p.Label + " Profile", Body: p.Description})
	return nil
}

// ToggleBreak turns the break reminder on or off.
func (c *Controller) ToggleBreak(enabled bool) error {
	if enabled {
		c.scheduler.Start()
		c.send(notify.Notification{Title: "Break Reminder", Body: "Enabled - every 20 min"})
	} else {
		c.scheduler.Stop()
		c.send(notify.Notification{Title: "Break Reminder", Body: "Disabled"})
	}

	c.breakEnabled = enabled
	c.persist()

	if c.listener != nil {
		c.listener.BreakChanged(enabled)
	}
	return nil
}

// Shutdown tears down the overlay process and the reminder timer. The
// persisted config keeps the last user-set levels for the next launch.
func (c *Controller) Shutdown() {
	log.Info("Shutting down")
	c.overlay.Shutdown()
	c.scheduler.Stop()
}

// persist writes the in-memory state. A failed save is logged and
// swallowed: losing a preference is acceptable, diverging status is not,
// and the in-memory state is already applied to the screen.
func (c *Controller) persist() {
	cfg := &config.Config{
		DimLevel:     int(c.dim),
		WarmLevel:    int(c.warm),
		BreakEnabled: c.breakEnabled,
	}
	if err := c.store.Save(cfg); err != nil {
		log.Warnf("Failed to save config: %v", err)
	}
}

func (c *Controller) send(n notify.Notification) {
	if c.notifier != nil {
		c.notifier.Send(n)
	}
}

func (c *Controller) echoDim(origin Origin) {
	if c.listener != nil {
		c.listener.DimChanged(c.dim, origin)
	}
}

func (c *Controller) echoWarm(origin Origin) {
	if c.listener != nil {
		c.listener.WarmChanged(c.warm, origin)
	}
}

func (c *Controller) echoMatch() {
	if c.listener != nil {
		c.listener.MatchChanged(c.Match())
	}
}
