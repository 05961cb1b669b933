// Package overlay supervises the external dimming-overlay process.
//
// At most one overlay process exists at a time. The supervisor only
// ever terminates the process it launched itself, by its recorded
// handle; it never matches processes by name, so it cannot take down
// unrelated processes or overlays owned by another program.
package overlay

import (
	"fmt"
	"os/exec"
	"strconv"
	"syscall"
	"time"

	"github.com/AvengeMedia/dankdim/internal/errdefs"
	"github.com/AvengeMedia/dankdim/internal/levels"
	"github.com/AvengeMedia/dankdim/internal/log"
)

// termGrace is how long a terminated overlay gets to exit on SIGTERM
// before it is killed.
const termGrace = 2 * time.Second

// Process is a supervised overlay process handle.
type Process interface {
	// Terminate stops the process, escalating from SIGTERM to SIGKILL.
	Terminate()
}

// LaunchFunc starts an overlay process at the given level.
type LaunchFunc func(level levels.DimLevel) (Process, error)

// Supervisor owns the single overlay process handle.
type Supervisor struct {
	launch  LaunchFunc
	current Process
}

// NewSupervisor creates a supervisor that runs the overlay binary at
// the given path with the level as its sole argument.
func NewSupervisor(binary string) *Supervisor {
	return &Supervisor{launch: launcher(binary)}
}

// NewSupervisorWithLaunch creates a supervisor with a custom launcher.
func NewSupervisorWithLaunch(launch LaunchFunc) *Supervisor {
	return &Supervisor{launch: launch}
}

// Apply brings the overlay to the requested level. The previous handle
// is invalidated whether or not its termination succeeds; level 0
// leaves no process running. A launch failure is reported and leaves
// no process supervised, never a duplicate.
func (s *Supervisor) Apply(level levels.DimLevel) error {
	level = levels.ClampDim(int(level))

	if s.current != nil {
		s.current.Terminate()
		s.current = nil
	}

	if level == 0 {
		log.Debug("Overlay off")
		return nil
	}

	proc, err := s.launch(level)
	if err != nil {
		return fmt.Errorf("%w: %v", errdefs.ErrOverlayLaunch, err)
	}
	s.current = proc

	log.Debugf("Overlay running at level %d (%d%%)", level, level.Percent())
	return nil
}

// Running reports whether a process handle is currently held.
func (s *Supervisor) Running() bool {
	return s.current != nil
}

// Shutdown terminates any supervised process.
func (s *Supervisor) Shutdown() {
	if s.current != nil {
		s.current.Terminate()
		s.current = nil
	}
}

func launcher(binary string) LaunchFunc {
	return func(level levels.DimLevel) (Process, error) {
		cmd := exec.Command(binary, strconv.Itoa(int(level)))
		// Own session: controller exit must not race the overlay's teardown.
		cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

		if err := cmd.Start(); err != nil {
			return nil, err
		}

		p := &osProcess{cmd: cmd, done: make(chan struct{})}
		go p.reap()

		log.Debugf("Started overlay pid %d", cmd.Process.Pid)
		return p, nil
	}
}

type osProcess struct {
	cmd  *exec.Cmd
	done chan struct{}
}

func (p *osProcess) reap() {
	_ = p.cmd.Wait()
	close(p.done)
}

func (p *osProcess) Terminate() {
	select {
	case <-p.done:
		return
	default:
	}

	_ = p.cmd.Process.Signal(syscall.SIGTERM)

	select {
	case <-p.done:
		return
	case <-time.After(termGrace):
	}

	_ = p.cmd.Process.Kill()
	<-p.done
}
