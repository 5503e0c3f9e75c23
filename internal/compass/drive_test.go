package compass

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

func TestDrive_NotRunningReturnsImmediately(t *testing.T) {
	c := New(WithClock(clock.NewMock()))

	if err := Drive(context.Background(), c, nil); err != nil {
		t.Errorf("Drive() = %v, want nil", err)
	}
}

func TestDrive_AdvancesOncePerPeriod(t *testing.T) {
	mock := clock.NewMock()
	c := New(WithClock(mock))
	c.SetHeading(358)
	c.Start()

	ticks := make(chan State, 16)
	done := make(chan error, 1)
	go func() {
		done <- Drive(context.Background(), c, func(s State) {
			ticks <- s
			if s.Heading == 1 {
				c.Stop()
			}
		})
	}()

	want := []int{359, 0, 1}
	for _, h := range want {
		mock.Add(100 * time.Millisecond)
		select {
		case s := <-ticks:
			if s.Heading.Degrees() != h {
				t.Fatalf("tick heading = %d, want %d", s.Heading, h)
			}
		case <-time.After(time.Second):
			t.Fatalf("no tick for heading %d", h)
		}
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Drive() = %v, want nil after Stop", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Drive() did not return after Stop")
	}

	if c.AutoRotating() {
		t.Error("still auto-rotating after Stop")
	}
}

func TestDrive_ContextCancelClosesCompass(t *testing.T) {
	c := New(WithClock(clock.NewMock()))
	tr := c.Start()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Drive(ctx, c, nil)
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Drive() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Drive() did not return after cancel")
	}

	if c.AutoRotating() || !tr.Released() {
		t.Error("compass not closed after context cancel")
	}
}
