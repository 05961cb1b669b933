// Package nightlight drives the compositor's night-light preview over
// the session bus.
//
// Preview only shifts the display temperature temporarily; the
// compositor's own schedule and settings are untouched, and
// stopPreview hands control back to it.
package nightlight

import (
	"context"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/AvengeMedia/dankdim/internal/errdefs"
	"github.com/AvengeMedia/dankdim/internal/levels"
	"github.com/AvengeMedia/dankdim/internal/log"
)

const (
	busName    = "org.kde.KWin"
	objectPath = "/org/kde/KWin/NightLight"
	iface      = "org.kde.KWin.NightLight"

	methodPreview     = iface + ".preview"
	methodStopPreview = iface + ".stopPreview"

	callTimeout = 5 * time.Second
)

// caller is the slice of dbus.BusObject the bridge needs.
type caller interface {
	CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// Bridge issues preview / stop-preview calls to the compositor.
type Bridge struct {
	conn *dbus.Conn
	obj  caller
}

// NewBridge connects to the session bus.
func NewBridge() (*Bridge, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &Bridge{
		conn: conn,
		obj:  conn.Object(busName, objectPath),
	}, nil
}

// NewBridgeWithObject creates a bridge over an existing bus object.
func NewBridgeWithObject(obj caller) *Bridge {
	return &Bridge{obj: obj}
}

// Apply maps the warm level to Kelvin and previews it, or stops the
// preview when the level is neutral. Failures and timeouts are
// recoverable: the visual state simply did not change, and no retry is
// attempted here.
func (b *Bridge) Apply(level levels.WarmLevel) error {
	level = levels.ClampWarm(int(level))
	kelvin := level.Kelvin()

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	var call *dbus.Call
	if level == 0 || kelvin >= levels.NeutralKelvin {
		call = b.obj.CallWithContext(ctx, methodStopPreview, 0)
	} else {
		call = b.obj.CallWithContext(ctx, methodPreview, 0, uint32(kelvin))
	}

	if call.Err != nil {
		return fmt.Errorf("%w: %v", errdefs.ErrNightLightCall, call.Err)
	}

	if level == 0 {
		log.Debug("Night light preview stopped")
	} else {
		log.Debugf("Night light preview at %dK", kelvin)
	}
	return nil
}

// Stop ends any active preview. Idempotent.
func (b *Bridge) Stop() error {
	return b.Apply(0)
}

// Close releases the bus connection.
func (b *Bridge) Close() {
	if b.conn != nil {
		b.conn.Close()
	}
}
