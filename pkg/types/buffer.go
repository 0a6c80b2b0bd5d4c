// Package types contains shared type definitions for the streaming buffer simulator.
package types

import "time"

// StreamConfig defines the parameters of a simulated streaming session.
type StreamConfig struct {
	WindowSize         int           // Capacity of the chunk window.
	MinBuffer          int           // Chunks required to resume, and below which playback pauses.
	TotalChunks        int           // Length of the stream in chunks.
	TickDelay          time.Duration // Real-time delay between ticks.
	DisconnectDuration int           // Ticks spent offline after a connection loss.
	DisconnectOdds     int           // 1-in-N chance of connection loss per online tick. Zero disables loss.
}

// BufferStats tracks the current state of the chunk window.
type BufferStats struct {
	ChunksBuffered int     // Chunks currently in the window.
	ChunksDropped  int     // Chunks discarded by connection losses.
	BufferLevel    float64 // Current fill level (0.0-1.0).
}

// Result summarises a finished simulation run.
type Result struct {
	RunID           string `json:"run_id"`
	Ticks           int    `json:"ticks"`
	PlayedCount     int    `json:"played"`
	TotalChunks     int    `json:"total_chunks"`
	FinalBufferSize int    `json:"final_buffer"`
	WindowSize      int    `json:"window_size"`
	Dropped         int    `json:"dropped"`
	Disconnects     int    `json:"disconnects"`
	Pauses          int    `json:"pauses"`
	Interrupted     bool   `json:"interrupted,omitempty"`
}
