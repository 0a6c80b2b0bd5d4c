package simulator

import (
	"io"

	"github.com/Cami-nando2/StreamingVideoBuffer/pkg/types"
	"github.com/sirupsen/logrus"
)

// scriptedRand returns the scripted draws in order, then fallback forever.
type scriptedRand struct {
	draws    []int
	fallback int
}

func (r *scriptedRand) Intn(_ int) int {
	if len(r.draws) > 0 {
		v := r.draws[0]
		r.draws = r.draws[1:]
		return v
	}
	return r.fallback
}

// neverDisconnect never draws zero.
func neverDisconnect() *scriptedRand {
	return &scriptedRand{fallback: 1}
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testConfig(window, minBuffer, total int) types.StreamConfig {
	return types.StreamConfig{
		WindowSize:         window,
		MinBuffer:          minBuffer,
		TotalChunks:        total,
		DisconnectDuration: 3,
		DisconnectOdds:     20,
	}
}

func kinds(events []types.Event) []types.EventKind {
	out := make([]types.EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}
