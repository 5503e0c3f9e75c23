package compass

import "context"

// Drive runs the auto-rotate loop for a headless owner. It consumes ticks of
// the armed trigger on the calling goroutine, applying each with Tick and
// then calling onTick with the new state. Drive returns nil when the trigger
// is released (by Stop, Reset or Close from onTick) and ctx.Err() when ctx
// ends, in which case the compass is closed first.
//
// Drive returns immediately if auto-rotate is not running.
func Drive(ctx context.Context, c *Compass, onTick func(State)) error {
	for {
		tr := c.Trigger()
		if tr == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			c.Close()
			return ctx.Err()
		case <-tr.Done():
			return nil
		case <-tr.C():
			if c.Tick(tr.Generation()) && onTick != nil {
				onTick(c.State())
			}
		}
	}
}
