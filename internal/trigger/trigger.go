// Package trigger provides a repeating time trigger with an owned handle.
//
// A Trigger is armed once and released once. Release is idempotent so that
// both an explicit stop and owner teardown may call it on every exit path.
package trigger

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultPeriod is the auto-rotate interval
const DefaultPeriod = 100 * time.Millisecond

// Trigger is a live periodic trigger
type Trigger struct {
	ticker     *clock.Ticker
	done       chan struct{}
	once       sync.Once
	generation uint64
	period     time.Duration
}

// Arm starts a repeating trigger on clk. The generation tags every tick
// consumer so that ticks from a released trigger can be told apart from
// ticks of its successor.
func Arm(clk clock.Clock, period time.Duration, generation uint64) *Trigger {
	if clk == nil {
		clk = clock.New()
	}
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Trigger{
		ticker:     clk.Ticker(period),
		done:       make(chan struct{}),
		generation: generation,
		period:     period,
	}
}

// C delivers one value per period while armed
func (t *Trigger) C() <-chan time.Time {
	return t.ticker.C
}

// Done is closed once the trigger has been released
func (t *Trigger) Done() <-chan struct{} {
	return t.done
}

// Generation returns the tag given at Arm
func (t *Trigger) Generation() uint64 {
	return t.generation
}

// Period returns the tick interval
func (t *Trigger) Period() time.Duration {
	return t.period
}

// Release disarms the trigger. Calling it more than once is a no-op.
func (t *Trigger) Release() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}

// Released reports whether Release has been called
func (t *Trigger) Released() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the next tick or until the trigger is released.
// It returns false when released.
func (t *Trigger) Wait() bool {
	select {
	case <-t.done:
		return false
	default:
	}

	select {
	case <-t.ticker.C:
		return true
	case <-t.done:
		return false
	}
}
