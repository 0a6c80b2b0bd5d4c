// Package network simulates an intermittently failing link delivering stream chunks.
package network

import (
	"github.com/sirupsen/logrus"
)

// RandomSource draws uniformly distributed integers in [0, n).
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Link tracks the connection state and the next chunk the network will deliver.
type Link struct {
	disconnectOdds     int
	disconnectDuration int
	totalChunks        int
	logger             *logrus.Logger

	online         bool
	ticksRemaining int
	nextChunk      int
	disconnects    int
}

// NewLink creates an online link that will deliver chunks 1..totalChunks.
func NewLink(totalChunks, disconnectOdds, disconnectDuration int, logger *logrus.Logger) *Link {
	return &Link{
		disconnectOdds:     disconnectOdds,
		disconnectDuration: disconnectDuration,
		totalChunks:        totalChunks,
		logger:             logger,
		online:             true,
		nextChunk:          1,
	}
}

// RollDisconnect draws once from rng while online and drops the link when the
// draw is zero. It returns true on the Online to Offline transition.
// No draw is made while offline or when loss is disabled.
func (l *Link) RollDisconnect(rng RandomSource) bool {
	if !l.online || l.disconnectOdds <= 0 {
		return false
	}
	if rng.Intn(l.disconnectOdds) != 0 {
		return false
	}

	l.online = false
	l.ticksRemaining = l.disconnectDuration
	l.disconnects++
	l.logger.WithField("ticks", l.disconnectDuration).Info("Connection lost")
	return true
}

// CountDown advances the reconnection countdown by one tick while offline.
// It returns whether the link came back and the ticks still remaining.
func (l *Link) CountDown() (restored bool, remaining int) {
	if l.online {
		return false, 0
	}

	l.ticksRemaining--
	if l.ticksRemaining <= 0 {
		l.ticksRemaining = 0
		l.online = true
		l.logger.Info("Connection restored")
		return true, 0
	}

	return false, l.ticksRemaining
}

// Deliver hands out the next chunk id if the link is online and chunks remain.
func (l *Link) Deliver() (int, bool) {
	if !l.online || l.Exhausted() {
		return 0, false
	}

	chunk := l.nextChunk
	l.nextChunk++
	return chunk, true
}

// Exhausted reports whether every chunk of the stream has been delivered.
func (l *Link) Exhausted() bool {
	return l.nextChunk > l.totalChunks
}

// Online reports whether the link is up.
func (l *Link) Online() bool {
	return l.online
}

// TicksRemaining returns the reconnection countdown, zero while online.
func (l *Link) TicksRemaining() int {
	return l.ticksRemaining
}

// Disconnects returns the number of connection losses so far.
func (l *Link) Disconnects() int {
	return l.disconnects
}
