// Package config provides configuration management for the streaming buffer simulator.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/Cami-nando2/StreamingVideoBuffer/pkg/types"
	"github.com/samber/lo"
)

var (
	// ErrInvalidFormat is returned when the output format is unknown.
	ErrInvalidFormat = errors.New("invalid output format")
	// ErrInvalidLogLevel is returned when log level is invalid.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

const (
	// FormatText narrates the run line by line.
	FormatText = "text"
	// FormatJSON emits one JSON object per event.
	FormatJSON = "json"
)

var (
	validFormats   = []string{FormatText, FormatJSON}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Config holds the application configuration. Its fields double as the
// command-line parameters of the simulator, and the default tags are the
// only source of default values.
type Config struct {
	WindowSize         int    `help:"Maximum number of chunks the buffer can hold." default:"5"`
	MinBuffer          int    `help:"Chunks needed to resume playback; playback pauses below this." default:"3"`
	TotalChunks        int    `help:"Number of chunks in the stream." default:"30"`
	TickDelayMillis    int64  `help:"Real-time delay between ticks (ms)." default:"200"`
	DisconnectDuration int    `help:"Ticks the connection stays down after a loss." default:"3"`
	DisconnectOdds     int    `help:"1-in-N chance of losing the connection each online tick (0 disables)." default:"20"`
	Seed               int64  `help:"Random seed (0 derives one from the current time)." default:"0"`
	Fast               bool   `help:"Run without pacing delays." default:"false"`
	Format             string `help:"Output format (text, json)." default:"text"`
	NoColor            bool   `help:"Disable colored output." default:"false"`
	LogLevel           string `help:"Log level (debug, info, warn, error)." default:"warn"`
}

// StreamConfig returns the simulation parameters of c.
func (c *Config) StreamConfig() types.StreamConfig {
	return types.StreamConfig{
		WindowSize:         c.WindowSize,
		MinBuffer:          c.MinBuffer,
		TotalChunks:        c.TotalChunks,
		TickDelay:          time.Duration(c.TickDelayMillis) * time.Millisecond,
		DisconnectDuration: c.DisconnectDuration,
		DisconnectOdds:     c.DisconnectOdds,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.StreamConfig().Validate(); err != nil {
		return err
	}

	if !lo.Contains(validFormats, c.Format) {
		return fmt.Errorf("%w: %s (must be text or json)", ErrInvalidFormat, c.Format)
	}

	if !lo.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("%w: %s (must be debug, info, warn, or error)", ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}

// Delay returns the pacing delay, zero when running fast.
func (c *Config) Delay() time.Duration {
	if c.Fast {
		return 0
	}
	return time.Duration(c.TickDelayMillis) * time.Millisecond
}
