// Package compass holds the simulated gyro compass: the current heading and
// the auto-rotate state machine that advances it on a periodic trigger.
//
// A Compass has exactly one owner. All mutations, including ticks, are made
// by that owner (the TUI event loop or Drive) and a Compass is not safe for
// concurrent use.
package compass

import (
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/ranwar/GyroCompassSimulator/internal/heading"
	"github.com/ranwar/GyroCompassSimulator/internal/trigger"
)

// State is a read-only snapshot of the compass
type State struct {
	Heading      heading.Heading `json:"heading" yaml:"heading"`
	InputText    string          `json:"input_text" yaml:"input_text"`
	AutoRotating bool            `json:"auto_rotating" yaml:"auto_rotating"`
}

// Option configures a Compass
type Option func(*Compass)

// WithClock sets the clock used to arm the auto-rotate trigger
func WithClock(clk clock.Clock) Option {
	return func(c *Compass) {
		c.clock = clk
	}
}

// WithPeriod sets the auto-rotate tick interval
func WithPeriod(period time.Duration) Option {
	return func(c *Compass) {
		if period > 0 {
			c.period = period
		}
	}
}

// WithLogger attaches a logger for state transitions
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Compass) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Compass is the heading store plus the auto-rotate controller
type Compass struct {
	store      heading.Store
	clock      clock.Clock
	period     time.Duration
	trigger    *trigger.Trigger
	generation uint64
	logger     *zap.SugaredLogger
}

// New creates a compass pointing North with auto-rotate stopped
func New(opts ...Option) *Compass {
	c := &Compass{
		store:  heading.NewStore(),
		clock:  clock.New(),
		period: trigger.DefaultPeriod,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Heading returns the current heading
func (c *Compass) Heading() heading.Heading {
	return c.store.Heading()
}

// InputText returns the text mirror of the heading field
func (c *Compass) InputText() string {
	return c.store.Text()
}

// AutoRotating reports whether a trigger is armed
func (c *Compass) AutoRotating() bool {
	return c.trigger != nil
}

// Trigger returns the armed trigger, or nil when stopped
func (c *Compass) Trigger() *trigger.Trigger {
	return c.trigger
}

// Period returns the auto-rotate tick interval
func (c *Compass) Period() time.Duration {
	return c.period
}

// State returns a snapshot for rendering
func (c *Compass) State() State {
	return State{
		Heading:      c.store.Heading(),
		InputText:    c.store.Text(),
		AutoRotating: c.AutoRotating(),
	}
}

// SetHeading normalizes raw into [0, 360) and makes it current
func (c *Compass) SetHeading(raw int) heading.Heading {
	return c.store.Set(raw)
}

// SetInputText applies text typed into the heading field. Unparseable text
// is kept in the field but leaves the heading unchanged.
func (c *Compass) SetInputText(text string) bool {
	return c.store.SetText(text)
}

// SetPreset jumps to one of the cardinal presets
func (c *Compass) SetPreset(p heading.Cardinal) heading.Heading {
	h := c.SetHeading(p.Heading().Degrees())
	c.logger.Debugw("preset selected", "preset", p.String(), "heading", h.Degrees())
	return h
}

// Nudge moves the heading by delta degrees, wrapping around North
func (c *Compass) Nudge(delta int) heading.Heading {
	return c.SetHeading(c.store.Heading().Degrees() + delta)
}

// Start arms the auto-rotate trigger. When already running the existing
// trigger is returned and nothing else changes.
func (c *Compass) Start() *trigger.Trigger {
	if c.trigger != nil {
		return c.trigger
	}
	c.generation++
	c.trigger = trigger.Arm(c.clock, c.period, c.generation)
	c.logger.Debugw("auto-rotate started",
		"heading", c.store.Heading().Degrees(),
		"generation", c.generation,
		"period", c.period)
	return c.trigger
}

// Stop disarms the auto-rotate trigger. Returns false if it was not running.
func (c *Compass) Stop() bool {
	if c.trigger == nil {
		return false
	}
	c.trigger.Release()
	c.trigger = nil
	c.logger.Debugw("auto-rotate stopped",
		"heading", c.store.Heading().Degrees(),
		"generation", c.generation)
	return true
}

// Toggle starts auto-rotate when stopped and stops it when running.
// Returns the newly armed trigger, or nil after stopping.
func (c *Compass) Toggle() *trigger.Trigger {
	if c.AutoRotating() {
		c.Stop()
		return nil
	}
	return c.Start()
}

// Tick applies one trigger firing. Ticks tagged with a generation other
// than the armed trigger's are stale and ignored.
func (c *Compass) Tick(generation uint64) bool {
	if c.trigger == nil || c.trigger.Generation() != generation {
		return false
	}
	c.store.Advance(heading.TickStep)
	return true
}

// Reset stops auto-rotate if running and returns the heading to North
func (c *Compass) Reset() {
	c.Stop()
	c.store.Set(0)
	c.logger.Debugw("heading reset")
}

// Close releases the trigger on teardown. Safe to call in any state and
// more than once.
func (c *Compass) Close() {
	c.Stop()
}
