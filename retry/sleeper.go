package retry

import (
	"context"
	"time"
)

// Sleeper suspends the retry loop between attempts. It is the loop's sole
// suspension point; implementations must honor the requested duration.
type Sleeper interface {
	// Sleep waits for d. A non-nil error means the wait was abandoned
	// early (typically the context's error) and the loop must exit.
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerSleeper waits cooperatively on a timer and aborts as soon as the
// context is cancelled. This is the default sleeper.
type TimerSleeper struct{}

// Sleep waits for d or until ctx is done, whichever comes first.
func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// BlockingSleeper blocks the calling goroutine for the full duration with
// time.Sleep and cannot be interrupted by context cancellation. Use it
// only where OS-level blocking is explicitly wanted.
type BlockingSleeper struct{}

// Sleep blocks for d. It never returns an error.
func (BlockingSleeper) Sleep(_ context.Context, d time.Duration) error {
	if d > 0 {
		time.Sleep(d)
	}
	return nil
}
