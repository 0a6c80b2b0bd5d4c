package types

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWindowSize is returned when the window cannot hold a single chunk.
	ErrInvalidWindowSize = errors.New("window size must be at least 1")
	// ErrInvalidMinBuffer is returned when the threshold is negative or exceeds the window.
	ErrInvalidMinBuffer = errors.New("min buffer must be between 0 and the window size")
	// ErrUnreachableMinBuffer is returned when the threshold exceeds a lossless stream.
	ErrUnreachableMinBuffer = errors.New("min buffer exceeds total chunks with connection loss disabled")
	// ErrInvalidTotalChunks is returned when the stream length is negative.
	ErrInvalidTotalChunks = errors.New("total chunks must not be negative")
	// ErrInvalidTickDelay is returned when the tick delay is negative.
	ErrInvalidTickDelay = errors.New("tick delay must not be negative")
	// ErrInvalidDisconnectDuration is returned when the disconnect duration is negative.
	ErrInvalidDisconnectDuration = errors.New("disconnect duration must not be negative")
	// ErrInvalidDisconnectOdds is returned when the disconnect odds are negative.
	ErrInvalidDisconnectOdds = errors.New("disconnect odds must not be negative")
)

// Validate checks that c describes a simulation that can terminate.
func (c StreamConfig) Validate() error {
	if c.WindowSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWindowSize, c.WindowSize)
	}

	if c.MinBuffer < 0 || c.MinBuffer > c.WindowSize {
		return fmt.Errorf("%w: %d (window %d)", ErrInvalidMinBuffer, c.MinBuffer, c.WindowSize)
	}

	if c.TotalChunks < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTotalChunks, c.TotalChunks)
	}

	// Without losses nothing ever clears chunks that never reach the threshold
	if c.DisconnectOdds == 0 && c.TotalChunks > 0 && c.MinBuffer > c.TotalChunks {
		return fmt.Errorf("%w: %d (total %d)", ErrUnreachableMinBuffer, c.MinBuffer, c.TotalChunks)
	}

	if c.TickDelay < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTickDelay, c.TickDelay)
	}

	if c.DisconnectDuration < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDisconnectDuration, c.DisconnectDuration)
	}

	if c.DisconnectOdds < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDisconnectOdds, c.DisconnectOdds)
	}

	return nil
}
