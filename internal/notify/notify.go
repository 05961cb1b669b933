// Package notify sends fire-and-forget desktop notifications over the
// org.freedesktop.Notifications interface.
package notify

import (
	"context"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/AvengeMedia/dankdim/internal/log"
)

const (
	busName    = "org.freedesktop.Notifications"
	objectPath = "/org/freedesktop/Notifications"
	method     = "org.freedesktop.Notifications.Notify"

	appName     = "dankdim"
	callTimeout = 2 * time.Second

	// DefaultIcon is the tray brightness icon, reused for most notifications.
	DefaultIcon = "display-brightness-symbolic"

	// DefaultTimeout keeps status popups short-lived.
	DefaultTimeout = 1500 * time.Millisecond
)

type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification is one desktop popup.
type Notification struct {
	Title   string
	Body    string
	Icon    string
	Timeout time.Duration
	Urgency Urgency
}

// Notifier dispatches notifications. Dispatch failures are logged and
// swallowed; they never propagate to callers.
type Notifier interface {
	Send(n Notification)
}

type caller interface {
	CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// DBusNotifier talks to the session notification daemon.
type DBusNotifier struct {
	conn *dbus.Conn
	obj  caller
}

// NewNotifier connects to the session bus.
func NewNotifier() (*DBusNotifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &DBusNotifier{
		conn: conn,
		obj:  conn.Object(busName, objectPath),
	}, nil
}

// NewNotifierWithObject creates a notifier over an existing bus object.
func NewNotifierWithObject(obj caller) *DBusNotifier {
	return &DBusNotifier{obj: obj}
}

// Send dispatches the notification and logs any failure.
func (d *DBusNotifier) Send(n Notification) {
	icon := n.Icon
	if icon == "" {
		icon = DefaultIcon
	}
	timeout := n.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(n.Urgency)),
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	call := d.obj.CallWithContext(ctx, method, 0,
		appName,
		uint32(0), // never replace
		icon,
		n.Title,
		n.Body,
		[]string{}, // no actions
		hints,
		int32(timeout.Milliseconds()),
	)
	if call.Err != nil {
		log.Warnf("Notification failed: %v", call.Err)
	}
}

// Close releases the bus connection.
func (d *DBusNotifier) Close() {
	if d.conn != nil {
		d.conn.Close()
	}
}
