// Package breaks runs the repeating eye-break reminder.
package breaks

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/AvengeMedia/dankdim/internal/log"
	"github.com/AvengeMedia/dankdim/internal/notify"
)

// DefaultInterval follows the 20-20-20 rule.
const DefaultInterval = 20 * time.Minute

const reminderTimeout = 10 * time.Second

// Scheduler fires a reminder notification at a fixed interval. It is
// either Stopped or Running; Start on a running scheduler restarts it,
// so there is never more than one armed timer. A generation counter
// guards against a stale fire sneaking in after a fast stop/start
// cycle: the timer primitive's own cancellation is not trusted to be
// immediate.
type Scheduler struct {
	clock    clockwork.Clock
	interval time.Duration
	notifier notify.Notifier

	mu         sync.Mutex
	generation uint64
	timer      clockwork.Timer
	running    bool
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(notifier notify.Notifier, interval time.Duration) *Scheduler {
	return newScheduler(notifier, interval, clockwork.NewRealClock())
}

func newScheduler(notifier notify.Notifier, interval time.Duration, clock clockwork.Clock) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		clock:    clock,
		interval: interval,
		notifier: notifier,
	}
}

// Start arms the repeating timer. If already running the previous
// timer is invalidated first.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	gen := s.generation

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = s.clock.AfterFunc(s.interval, func() { s.fire(gen) })
	s.running = true

	log.Infof("Break reminder started (%v interval)", s.interval)
}

// Stop disarms the timer. After Stop returns no fire callback will
// dispatch a notification, even one already scheduled. Safe to call
// when already stopped.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.running {
		s.running = false
		log.Info("Break reminder stopped")
	}
}

// Running reports whether the scheduler is armed.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) fire(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || !s.running {
		s.mu.Unlock()
		return
	}
	// Re-arm before dispatching: the reminder repeats regardless of
	// whether the notification makes it out.
	s.timer = s.clock.AfterFunc(s.interval, func() { s.fire(gen) })
	s.mu.Unlock()

	if s.notifier == nil {
		return
	}
	s.notifier.Send(notify.Notification{
		Title:   "Eye Break Reminder",
		Body:    "Time to rest your eyes!\nLook at something 20 feet (6m) away for 20 seconds.",
		Icon:    "dialog-information",
		Timeout: reminderTimeout,
		Urgency: notify.UrgencyCritical,
	})
	log.Debug("Break reminder fired")
}
