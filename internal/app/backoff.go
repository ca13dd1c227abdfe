package app

import (
	"context"
	"math/rand"
	"time"
)

// Default backoff configuration for deferring a save while a load runs.
const (
	DefaultDeferInitial = 50 * time.Millisecond
	DefaultDeferMax     = 2 * time.Second
)

// backoff implements exponential backoff with jitter. Unlike a bare sleep,
// Wait is context-aware so a cancelled save stops deferring immediately.
type backoff struct {
	initial time.Duration
	max     time.Duration
	current time.Duration
}

// newBackoff creates a new backoff with the given initial and max durations.
func newBackoff(initial, max time.Duration) *backoff {
	return &backoff{
		initial: initial,
		max:     max,
		current: initial,
	}
}

// Wait sleeps for the current backoff duration (with ±20% jitter) and
// increases it. Returns early with the context error on cancellation.
func (b *backoff) Wait(ctx context.Context) error {
	jitter := float64(b.current) * 0.2 * (rand.Float64()*2 - 1)
	wait := time.Duration(float64(b.current) + jitter)

	b.current *= 2
	if b.current > b.max {
		b.current = b.max
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Reset resets the backoff to the initial duration.
func (b *backoff) Reset() {
	b.current = b.initial
}

// Current returns the current backoff duration.
func (b *backoff) Current() time.Duration {
	return b.current
}
