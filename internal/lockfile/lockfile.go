// Package lockfile enforces a single running instance. Two controllers
// supervising overlays at once would fight over the screen state, so
// the tray entrypoint takes an exclusive flock before doing anything.
package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/AvengeMedia/dankdim/internal/errdefs"
)

const lockName = "dankdim.lock"

// Lock is a held instance lock.
type Lock struct {
	f    *os.File
	path string
}

// DefaultPath returns the lock path under the user runtime dir.
func DefaultPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, lockName)
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("%s.%d", lockName, os.Getuid()))
}

// Acquire takes the default instance lock.
func Acquire() (*Lock, error) {
	return AcquireAt(DefaultPath())
}

// AcquireAt takes an exclusive non-blocking flock on the given path.
// Returns ErrAlreadyRunning if another instance holds it.
func AcquireAt(path string) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file %s: %w", path, err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		if err == unix.EWOULDBLOCK {
			return nil, errdefs.ErrAlreadyRunning
		}
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}

	// Record the holder pid for debugging; the flock is the actual guard.
	_ = f.Truncate(0)
	_, _ = f.WriteAt([]byte(strconv.Itoa(os.Getpid())), 0)

	return &Lock{f: f, path: path}, nil
}

// Release drops the lock and removes the file.
func (l *Lock) Release() {
	if l.f == nil {
		return
	}
	_ = unix.Flock(int(l.f.Fd()), unix.LOCK_UN)
	l.f.Close()
	l.f = nil
	_ = os.Remove(l.path)
}
