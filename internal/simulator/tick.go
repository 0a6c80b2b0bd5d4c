// Package simulator runs the sliding-window streaming simulation tick by tick.
package simulator

import (
	"github.com/Cami-nando2/StreamingVideoBuffer/internal/buffer"
	"github.com/Cami-nando2/StreamingVideoBuffer/internal/network"
	"github.com/Cami-nando2/StreamingVideoBuffer/pkg/types"
	"github.com/sirupsen/logrus"
)

// State is the whole mutable state of one simulated session.
type State struct {
	Tick     int
	Window   *buffer.ChunkWindow
	Link     *network.Link
	Playback *buffer.PlaybackManager
}

// NewState creates the initial state for cfg: empty window, link online,
// playback paused, next chunk 1.
func NewState(cfg types.StreamConfig, logger *logrus.Logger) *State {
	window := buffer.NewChunkWindow(cfg.WindowSize)
	return &State{
		Window:   window,
		Link:     network.NewLink(cfg.TotalChunks, cfg.DisconnectOdds, cfg.DisconnectDuration, logger),
		Playback: buffer.NewPlaybackManager(window, cfg.MinBuffer, logger),
	}
}

// Active reports whether the session still has work to do: chunks left to
// deliver, chunks left to play, or playback in progress.
func (s *State) Active() bool {
	return !s.Link.Exhausted() || !s.Window.Empty() || s.Playback.Playing()
}

// Finished reports whether the stream is exhausted and the window drained.
func (s *State) Finished() bool {
	return s.Link.Exhausted() && s.Window.Empty()
}

// Tick advances s by one simulation step and returns the events it produced,
// always terminated by an EventTickEnd. The order of the steps is fixed:
// connection loss, reconnection countdown, admission, resume, playback, pause.
func Tick(s *State, cfg types.StreamConfig, rng network.RandomSource) []types.Event {
	s.Tick++
	events := make([]types.Event, 0, 4)
	emit := func(e types.Event) {
		e.Tick = s.Tick
		events = append(events, e)
	}

	if s.Link.RollDisconnect(rng) {
		dropped := s.Window.Clear()
		s.Playback.Stop()
		emit(types.Event{Kind: types.EventConnectionLost, Dropped: dropped})
	}

	if !s.Link.Online() {
		if restored, remaining := s.Link.CountDown(); restored {
			emit(types.Event{Kind: types.EventConnectionRestored})
		} else {
			emit(types.Event{Kind: types.EventWaitingReconnect, TicksRemaining: remaining})
		}
	}

	if s.Window.Free() > 0 {
		if chunk, ok := s.Link.Deliver(); ok {
			// Free() was checked, Push cannot fail.
			_ = s.Window.Push(chunk)
			emit(types.Event{
				Kind:     types.EventChunkReceived,
				Chunk:    chunk,
				Buffered: s.Window.Len(),
				Capacity: cfg.WindowSize,
			})
		}
	}

	if s.Playback.TryResume() {
		emit(types.Event{Kind: types.EventPlaybackResumed, Buffered: s.Window.Len()})
	}

	if chunk, ok := s.Playback.PlayNext(); ok {
		emit(types.Event{Kind: types.EventChunkPlayed, Chunk: chunk, Buffered: s.Window.Len()})
	}

	if s.Playback.PauseIfLow(s.Link.Exhausted()) {
		emit(types.Event{
			Kind:      types.EventPlaybackPaused,
			Buffered:  s.Window.Len(),
			Threshold: cfg.MinBuffer,
		})
	}

	emit(types.Event{Kind: types.EventTickEnd, Buffered: s.Window.Len()})
	return events
}
