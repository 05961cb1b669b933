// Package ipc exposes the running instance's controller on the session
// bus so hotkey bindings and the panel can drive it. Handle-based
// overlay supervision only works inside one process, so every external
// caller goes through this service instead of spawning its own
// controller.
package ipc

import (
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/AvengeMedia/dankdim/internal/controller"
	"github.com/AvengeMedia/dankdim/internal/errdefs"
	"github.com/AvengeMedia/dankdim/internal/log"
)

const (
	// BusName is claimed by the running instance.
	BusName = "org.dankdim"

	// ObjectPath hosts the control object.
	ObjectPath = "/org/dankdim"

	// Interface carries the five controller operations plus GetState.
	Interface = "org.dankdim.Control"
)

// Server owns the bus name and the exported control object.
type Server struct {
	conn *dbus.Conn
}

// NewServer claims the bus name and exports the control interface.
// onQuit is invoked (on its own goroutine) when a remote Shutdown
// arrives, so the host can unwind its main loop.
func NewServer(loop *controller.Loop, onQuit func()) (*Server, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}

	reply, err := conn.RequestName(BusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to request bus name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		return nil, errdefs.ErrAlreadyRunning
	}

	h := &handler{loop: loop, onQuit: onQuit}
	if err := conn.Export(h, ObjectPath, Interface); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to export control object: %w", err)
	}

	log.Infof("Control service listening on %s", BusName)
	return &Server{conn: conn}, nil
}

// Close drops the bus name.
func (s *Server) Close() {
	if s.conn != nil {
		_, _ = s.conn.ReleaseName(BusName)
		s.conn.Close()
	}
}

// handler is the exported DBus object. Method calls arrive on godbus
// goroutines; the loop serializes them onto the controller.
type handler struct {
	loop   *controller.Loop
	onQuit func()
}

func (h *handler) SetDim(level int32, notifyUser bool) *dbus.Error {
	err := h.loop.Dispatch(controller.Command{Op: controller.OpSetDim, Level: int(level), Notify: notifyUser})
	return asDBusError(err)
}

func (h *handler) SetWarm(level int32, notifyUser bool) *dbus.Error {
	err := h.loop.Dispatch(controller.Command{Op: controller.OpSetWarm, Level: int(level), Notify: notifyUser})
	return asDBusError(err)
}

func (h *handler) ApplyProfile(id string) *dbus.Error {
	err := h.loop.Dispatch(controller.Command{Op: controller.OpApplyProfile, ProfileID: id})
	return asDBusError(err)
}

func (h *handler) ToggleBreak(enabled bool) *dbus.Error {
	err := h.loop.Dispatch(controller.Command{Op: controller.OpToggleBreak, Enabled: enabled})
	return asDBusError(err)
}

func (h *handler) GetState() (int32, int32, bool, string, *dbus.Error) {
	s := h.loop.Snapshot()
	return int32(s.Dim), int32(s.Warm), s.BreakEnabled, s.Match, nil
}

func (h *handler) Shutdown() *dbus.Error {
	// Reply before the host starts tearing down the bus connection.
	go h.onQuit()
	return nil
}

func asDBusError(err error) *dbus.Error {
	if err == nil {
		return nil
	}
	return dbus.MakeFailedError(err)
}
