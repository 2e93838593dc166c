// Package clock holds the waiting primitives of the long-running services.
package clock

import (
	"context"
	"time"
)

// Sleep waits for d or until ctx is done. A non-positive d only reports ctx state.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff computes exponentially growing retry delays.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration
}

// Delay returns the wait before retry number failures (1-based): Initial doubled per
// earlier failure, capped at Max.
func (b Backoff) Delay(failures int) time.Duration {
	if failures <= 1 || b.Initial <= 0 {
		return min(b.Initial, b.capped())
	}
	d := b.Initial
	for i := 1; i < failures; i++ {
		if d >= b.capped()/2 {
			return b.capped()
		}
		d *= 2
	}
	return min(d, b.capped())
}

func (b Backoff) capped() time.Duration {
	if b.Max <= 0 {
		return b.Initial
	}
	return b.Max
}
