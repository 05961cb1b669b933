package ipc

import (
	"context"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/AvengeMedia/dankdim/internal/levels"
)

const callTimeout = 5 * time.Second

// State mirrors the running instance's controller snapshot.
type State struct {
	Dim          levels.DimLevel
	Warm         levels.WarmLevel
	BreakEnabled bool
	Match        string
}

// Client drives a running instance over the session bus.
type Client struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// NewClient connects and verifies a running instance owns the bus name.
func NewClient() (*Client, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}

	var owned bool
	err = conn.BusObject().Call("org.freedesktop.DBus.NameHasOwner", 0, BusName).Store(&owned)
	if err != nil || !owned {
		conn.Close()
		return nil, fmt.Errorf("dankdim is not running (no owner for %s)", BusName)
	}

	return &Client{
		conn: conn,
		obj:  conn.Object(BusName, ObjectPath),
	}, nil
}

func (c *Client) call(method string, args ...interface{}) *dbus.Call {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	return c.obj.CallWithContext(ctx, Interface+"."+method, 0, args...)
}

// SetDim sets the dim level on the running instance.
func (c *Client) SetDim(level int, notifyUser bool) error {
	return c.call("SetDim", int32(level), notifyUser).Err
}

// SetWarm sets the warm level on the running instance.
func (c *Client) SetWarm(level int, notifyUser bool) error {
	return c.call("SetWarm", int32(level), notifyUser).Err
}

// ApplyProfile applies a preset on the running instance.
func (c *Client) ApplyProfile(id string) error {
	return c.call("ApplyProfile", id).Err
}

// ToggleBreak sets the break reminder state on the running instance.
func (c *Client) ToggleBreak(enabled bool) error {
	return c.call("ToggleBreak", enabled).Err
}

// Shutdown asks the running instance to exit.
func (c *Client) Shutdown() error {
	return c.call("Shutdown").Err
}

// GetState fetches the current state.
func (c *Client) GetState() (State, error) {
	var (
		dim, warm    int32
		breakEnabled bool
		match        string
	)
	call := c.call("GetState")
	if call.Err != nil {
		return State{}, call.Err
	}
	if err := call.Store(&dim, &warm, &breakEnabled, &match); err != nil {
		return State{}, err
	}
	return State{
		Dim:          levels.ClampDim(int(dim)),
		Warm:         levels.ClampWarm(int(warm)),
		BreakEnabled: breakEnabled,
		Match:        match,
	}, nil
}

// Close releases the bus connection.
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
