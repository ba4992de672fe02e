package engine

import (
	"context"
	"time"
)

// Run drives a fixed-interval frame loop on the calling goroutine
//
// Events received on the channel are handled as they arrive, so every event
// is applied before the next tick. handle returns false to end the loop.
// Run returns nil when handle asks to stop or the channel closes, and the
// context error when ctx is cancelled.
func Run[E any](ctx context.Context, interval time.Duration, events <-chan E, handle func(E) bool, tick func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !handle(ev) {
				return nil
			}

		case <-ticker.C:
			// Cancellation wins over a tick that became ready at the same time
			if ctx.Err() != nil {
				return ctx.Err()
			}
			tick()
		}
	}
}
