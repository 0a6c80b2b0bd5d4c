package simulator

import (
	"reflect"
	"testing"

	"github.com/Cami-nando2/StreamingVideoBuffer/pkg/types"
)

func TestTickOrdering(t *testing.T) {
	cfg := testConfig(5, 3, 10)
	s := NewState(cfg, newTestLogger())
	rng := neverDisconnect()

	Tick(s, cfg, rng)
	Tick(s, cfg, rng)
	events := Tick(s, cfg, rng)

	// The third chunk crosses the threshold and the head plays in the same tick
	want := []types.EventKind{
		types.EventChunkReceived,
		types.EventPlaybackResumed,
		types.EventChunkPlayed,
		types.EventPlaybackPaused,
		types.EventTickEnd,
	}
	if got := kinds(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("tick 3 events = %v, want %v", got, want)
	}

	if events[0].Chunk != 3 || events[0].Buffered != 3 || events[0].Capacity != 5 {
		t.Errorf("unexpected received event %+v", events[0])
	}
	if events[1].Buffered != 3 {
		t.Errorf("resumed with %d buffered, want 3", events[1].Buffered)
	}
	if events[2].Chunk != 1 || events[2].Buffered != 2 {
		t.Errorf("unexpected played event %+v", events[2])
	}
	if events[3].Buffered != 2 || events[3].Threshold != 3 {
		t.Errorf("unexpected paused event %+v", events[3])
	}
	for _, e := range events {
		if e.Tick != 3 {
			t.Errorf("event %s stamped with tick %d, want 3", e.Kind, e.Tick)
		}
	}
}

func TestTickConnectionLoss(t *testing.T) {
	// Scenario B: loss at tick 2, three ticks of disconnection
	cfg := testConfig(5, 3, 10)
	s := NewState(cfg, newTestLogger())
	rng := &scriptedRand{draws: []int{1, 0}, fallback: 1}

	Tick(s, cfg, rng)
	if s.Window.Len() != 1 {
		t.Fatalf("buffered %d after tick 1, want 1", s.Window.Len())
	}

	events := Tick(s, cfg, rng)
	want := []types.EventKind{types.EventConnectionLost, types.EventWaitingReconnect, types.EventTickEnd}
	if got := kinds(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("tick 2 events = %v, want %v", got, want)
	}
	if events[0].Dropped != 1 {
		t.Errorf("dropped %d chunks, want 1", events[0].Dropped)
	}
	if events[1].TicksRemaining != 2 {
		t.Errorf("ticks remaining %d, want 2", events[1].TicksRemaining)
	}
	if s.Window.Len() != 0 || s.Playback.Playing() || s.Link.Online() {
		t.Fatal("loss must clear the window, stop playback and take the link down")
	}

	events = Tick(s, cfg, rng)
	want = []types.EventKind{types.EventWaitingReconnect, types.EventTickEnd}
	if got := kinds(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("tick 3 events = %v, want %v", got, want)
	}
	if s.Window.Len() != 0 {
		t.Error("window must stay empty while offline")
	}

	events = Tick(s, cfg, rng)
	want = []types.EventKind{types.EventConnectionRestored, types.EventChunkReceived, types.EventTickEnd}
	if got := kinds(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("tick 4 events = %v, want %v", got, want)
	}

	// The chunk lost in flight is skipped, not retransmitted
	if events[1].Chunk != 2 {
		t.Errorf("first chunk after reconnect = %d, want 2", events[1].Chunk)
	}
}

func TestTickLossWhileDraining(t *testing.T) {
	cfg := testConfig(5, 3, 5)
	s := NewState(cfg, newTestLogger())
	rng := &scriptedRand{draws: []int{1, 1, 1, 1, 1, 0}, fallback: 1}

	for i := 0; i < 5; i++ {
		Tick(s, cfg, rng)
	}
	if !s.Playback.Playing() || !s.Link.Exhausted() || s.Window.Len() != 2 {
		t.Fatalf("want playback draining 2 chunks after tick 5, playing=%v buffered=%d",
			s.Playback.Playing(), s.Window.Len())
	}

	events := Tick(s, cfg, rng)
	if events[0].Kind != types.EventConnectionLost || events[0].Dropped != 2 {
		t.Fatalf("first event of tick 6 = %+v, want connection_lost dropping 2", events[0])
	}
	if s.Playback.Playing() || s.Window.Len() != 0 {
		t.Error("loss must stop playback and clear the window")
	}
	if s.Playback.Played() != 3 {
		t.Errorf("played %d, want 3", s.Playback.Played())
	}
	if !s.Finished() {
		t.Error("exhausted stream with an empty window should be finished")
	}
}

func TestTickWindowNeverOverflows(t *testing.T) {
	// With a threshold of zero playback never pauses; admission must still
	// respect capacity.
	cfg := testConfig(2, 0, 20)
	s := NewState(cfg, newTestLogger())
	rng := neverDisconnect()

	for s.Active() {
		Tick(s, cfg, rng)
		if s.Window.Len() > cfg.WindowSize {
			t.Fatalf("window holds %d chunks, capacity %d", s.Window.Len(), cfg.WindowSize)
		}
		if s.Finished() {
			break
		}
	}

	if s.Playback.Played() != 20 {
		t.Errorf("played %d, want 20", s.Playback.Played())
	}
}
