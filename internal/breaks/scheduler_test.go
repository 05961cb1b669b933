package breaks

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankdim/internal/notify"
)

type countingNotifier struct {
	count atomic.Int64
}

func (c *countingNotifier) Send(n notify.Notification) {
	c.count.Add(1)
}

func (c *countingNotifier) waitFor(t *testing.T, want int64) {
	t.Helper()
	require.Eventually(t, func() bool {
		return c.count.Load() == want
	}, time.Second, time.Millisecond)
}

func TestFiresEveryInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	n := &countingNotifier{}
	s := newScheduler(n, DefaultInterval, clock)

	s.Start()
	assert.True(t, s.Running())

	clock.Advance(DefaultInterval)
	n.waitFor(t, 1)

	// Re-armed: wait for the next timer to register, then advance again
	clock.BlockUntil(1)
	clock.Advance(DefaultInterval)
	n.waitFor(t, 2)
}

func TestNoFireBeforeInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	n := &countingNotifier{}
	s := newScheduler(n, DefaultInterval, clock)

	s.Start()
	clock.Advance(DefaultInterval - time.Second)

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int64(0), n.count.Load())
}

func TestDoubleStartFiresExactlyOnce(t *testing.T) {
	clock := clockwork.NewFakeClock()
	n := &countingNotifier{}
	s := newScheduler(n, DefaultInterval, clock)

	s.Start()
	s.Start()

	clock.Advance(DefaultInterval)
	n.waitFor(t, 1)

	// Nothing else pending from the first Start
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int64(1), n.count.Load())
}

func TestStopPreventsFire(t *testing.T) {
	clock := clockwork.NewFakeClock()
	n := &countingNotifier{}
	s := newScheduler(n, DefaultInterval, clock)

	s.Start()
	s.Stop()
	assert.False(t, s.Running())

	clock.Advance(2 * DefaultInterval)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int64(0), n.count.Load())
}

func TestStopIsIdempotent(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newScheduler(&countingNotifier{}, DefaultInterval, clock)

	s.Stop()
	s.Stop()
	assert.False(t, s.Running())
}

func TestFastStopStartCycle(t *testing.T) {
	clock := clockwork.NewFakeClock()
	n := &countingNotifier{}
	s := newScheduler(n, DefaultInterval, clock)

	s.Start()
	s.Stop()
	s.Start()

	clock.Advance(DefaultInterval)
	n.waitFor(t, 1)

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int64(1), n.count.Load())
}

func TestDefaultIntervalFallback(t *testing.T) {
	s := newScheduler(&countingNotifier{}, 0, clockwork.NewFakeClock())
	assert.Equal(t, DefaultInterval, s.interval)
}
