package controller

import "github.com/AvengeMedia/dankdim/internal/levels"

// Snapshot is a read-only copy of the controller state.
type Snapshot struct {
	Dim          levels.DimLevel
	Warm         levels.WarmLevel
	BreakEnabled bool
	Match        string
}

// Loop serializes all controller access onto one goroutine, so the
// tray click handlers and the IPC service can share a controller
// without it ever seeing concurrent operations. Calls are synchronous:
// they return once the posted operation has run.
type Loop struct {
	c    *Controller
	cmdq chan func()
	done chan struct{}
}

// NewLoop starts the dispatch goroutine.
func NewLoop(c *Controller) *Loop {
	l := &Loop{
		c:    c,
		cmdq: make(chan func(), 16),
		done: make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	for fn := range l.cmdq {
		fn()
	}
	close(l.done)
}

func (l *Loop) post(fn func()) {
	ran := make(chan struct{})
	l.cmdq <- func() {
		fn()
		close(ran)
	}
	<-ran
}

// Dispatch runs a command on the loop goroutine.
func (l *Loop) Dispatch(cmd Command) error {
	var err error
	l.post(func() { err = l.c.Dispatch(cmd) })
	return err
}

// FlipBreak atomically toggles the break reminder and returns the new
// state.
func (l *Loop) FlipBreak() (bool, error) {
	var (
		enabled bool
		err     error
	)
	l.post(func() {
		enabled = !l.c.BreakEnabled()
		err = l.c.ToggleBreak(enabled)
	})
	return enabled, err
}

// Restore applies the persisted state on the loop goroutine.
func (l *Loop) Restore() {
	l.post(l.c.Restore)
}

// SetListener registers the status listener. Listener callbacks run on
// the loop goroutine.
func (l *Loop) SetListener(sl StatusListener) {
	l.post(func() { l.c.SetListener(sl) })
}

// Snapshot returns a consistent copy of the current state.
func (l *Loop) Snapshot() Snapshot {
	var s Snapshot
	l.post(func() {
		s = Snapshot{
			Dim:          l.c.Dim(),
			Warm:         l.c.Warm(),
			BreakEnabled: l.c.BreakEnabled(),
			Match:        l.c.Match(),
		}
	})
	return s
}

// Close stops the loop after all pending operations have run. No
// further calls may be made on a closed loop.
func (l *Loop) Close() {
	close(l.cmdq)
	<-l.done
}
