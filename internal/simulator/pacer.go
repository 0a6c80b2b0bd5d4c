package simulator

import (
	"context"
	"time"
)

// Pacer spaces ticks in real time.
type Pacer interface {
	Wait(ctx context.Context) error
}

// SleepPacer waits a fixed delay between ticks, returning early when the
// context is cancelled.
type SleepPacer struct {
	delay time.Duration
}

// NewSleepPacer creates a pacer sleeping delay per tick.
func NewSleepPacer(delay time.Duration) *SleepPacer {
	return &SleepPacer{delay: delay}
}

// Wait blocks for the configured delay.
func (p *SleepPacer) Wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoopPacer runs ticks back to back.
type NoopPacer struct{}

// Wait returns immediately unless the context is already done.
func (NoopPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}
