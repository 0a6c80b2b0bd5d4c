package simulator

import (
	"github.com/Cami-nando2/StreamingVideoBuffer/pkg/types"
	"github.com/samber/lo"
)

// Trace is an Observer that records every event and the final result.
type Trace struct {
	Events []types.Event
	Result *types.Result
}

// OnEvent appends e to the trace.
func (t *Trace) OnEvent(e types.Event) {
	t.Events = append(t.Events, e)
}

// OnFinish stores the final result.
func (t *Trace) OnFinish(r types.Result) {
	t.Result = &r
}

// Played returns the ids of played chunks in playback order.
func (t *Trace) Played() []int {
	return lo.FilterMap(t.Events, func(e types.Event, _ int) (int, bool) {
		return e.Chunk, e.Kind == types.EventChunkPlayed
	})
}

// Received returns the ids of admitted chunks in arrival order.
func (t *Trace) Received() []int {
	return lo.FilterMap(t.Events, func(e types.Event, _ int) (int, bool) {
		return e.Chunk, e.Kind == types.EventChunkReceived
	})
}

// Count returns how many events of kind were recorded.
func (t *Trace) Count(kind types.EventKind) int {
	return lo.CountBy(t.Events, func(e types.Event) bool {
		return e.Kind == kind
	})
}

// Tick returns the events of tick n.
func (t *Trace) Tick(n int) []types.Event {
	return lo.Filter(t.Events, func(e types.Event, _ int) bool {
		return e.Tick == n
	})
}
