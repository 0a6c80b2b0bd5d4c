package types

import "fmt"

// EventKind identifies a state transition reported by the simulator.
type EventKind int

const (
	// EventConnectionLost is emitted on the Online to Offline transition.
	EventConnectionLost EventKind = iota
	// EventConnectionRestored is emitted on the Offline to Online transition.
	EventConnectionRestored
	// EventWaitingReconnect is emitted on every offline tick that does not restore the link.
	EventWaitingReconnect
	// EventChunkReceived is emitted when a chunk is admitted into the window.
	EventChunkReceived
	// EventPlaybackResumed is emitted on the Paused to Playing transition.
	EventPlaybackResumed
	// EventChunkPlayed is emitted for each chunk removed from the head of the window.
	EventChunkPlayed
	// EventPlaybackPaused is emitted when playback stops because the window ran low.
	EventPlaybackPaused
	// EventTickEnd closes every tick.
	EventTickEnd
)

var eventKindNames = [...]string{
	"connection_lost",
	"connection_restored",
	"waiting_reconnect",
	"chunk_received",
	"playback_resumed",
	"chunk_played",
	"playback_paused",
	"tick_end",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event is a structured record of one transition within a tick.
// Fields that do not apply to a kind are left at zero.
type Event struct {
	Tick           int       `json:"tick"`
	Kind           EventKind `json:"event"`
	Chunk          int       `json:"chunk,omitempty"`
	Buffered       int       `json:"buffered"`
	Capacity       int       `json:"capacity,omitempty"`
	Threshold      int       `json:"threshold,omitempty"`
	TicksRemaining int       `json:"ticks_remaining,omitempty"`
	Dropped        int       `json:"dropped,omitempty"`
}
