package buffer

import (
	"github.com/sirupsen/logrus"
)

// PlaybackManager drives playback from a ChunkWindow with start/stop hysteresis.
// Playback resumes once the window holds at least MinThreshold chunks and
// pauses again when it falls below that while more chunks are still expected.
type PlaybackManager struct {
	window       *ChunkWindow
	minThreshold int
	logger       *logrus.Logger

	playing bool
	played  int
	pauses  int
}

// NewPlaybackManager creates a paused playback manager reading from window.
func NewPlaybackManager(window *ChunkWindow, minThreshold int, logger *logrus.Logger) *PlaybackManager {
	return &PlaybackManager{
		window:       window,
		minThreshold: minThreshold,
		logger:       logger,
	}
}

// TryResume starts playback if paused and the window reached the threshold.
// It returns true on the Paused to Playing transition.
func (m *PlaybackManager) TryResume() bool {
	if m.playing || m.window.Len() < m.minThreshold {
		return false
	}

	m.playing = true
	m.logger.WithField("buffered", m.window.Len()).Debug("Playback resumed")
	return true
}

// PlayNext pops and plays the head chunk while playing.
// It returns false if playback is paused or the window is empty.
func (m *PlaybackManager) PlayNext() (int, bool) {
	if !m.playing {
		return 0, false
	}

	chunk, err := m.window.Pop()
	if err != nil {
		return 0, false
	}

	m.played++
	return chunk, true
}

// PauseIfLow pauses playback when the window is below the threshold.
// Once the stream is exhausted playback keeps draining instead of pausing.
// It returns true on the Playing to Paused transition.
func (m *PlaybackManager) PauseIfLow(streamExhausted bool) bool {
	if !m.playing || streamExhausted || m.window.Len() >= m.minThreshold {
		return false
	}

	m.playing = false
	m.pauses++
	m.logger.WithFields(logrus.Fields{
		"buffered":  m.window.Len(),
		"threshold": m.minThreshold,
	}).Debug("Buffer underrun, pausing playback")
	return true
}

// Stop forces playback into the paused state without counting an underrun.
func (m *PlaybackManager) Stop() {
	m.playing = false
}

// Playing reports whether playback is active.
func (m *PlaybackManager) Playing() bool {
	return m.playing
}

// Played returns the number of chunks played so far.
func (m *PlaybackManager) Played() int {
	return m.played
}

// Pauses returns the number of low-buffer pauses.
func (m *PlaybackManager) Pauses() int {
	return m.pauses
}

// Threshold returns the resume/pause threshold.
func (m *PlaybackManager) Threshold() int {
	return m.minThreshold
}
