// Package clock provides context-aware waiting helpers.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for d or returns the context error once ctx is done.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	return SleepUntilSignal(ctx, d, nil)
}

// SleepUntilSignal waits for d, a value on signal, or ctx cancellation, whichever comes first.
// A nil signal never fires.
func SleepUntilSignal(ctx context.Context, d time.Duration, signal <-chan struct{}) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-signal:
		return nil
	case <-timer.C:
		return nil
	}
}
