package simulator

import (
	"context"
	"fmt"

	"github.com/Cami-nando2/StreamingVideoBuffer/internal/network"
	"github.com/Cami-nando2/StreamingVideoBuffer/pkg/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Observer receives the events of a run as they happen.
type Observer interface {
	OnEvent(e types.Event)
	OnFinish(r types.Result)
}

// Simulator runs one streaming session to completion.
type Simulator struct {
	config   types.StreamConfig
	rng      network.RandomSource
	pacer    Pacer
	observer Observer
	logger   *logrus.Logger

	state *State
	runID string
}

// New creates a simulator for cfg. A nil pacer runs unpaced and a nil
// observer discards events.
func New(cfg types.StreamConfig, rng network.RandomSource, pacer Pacer, observer Observer, logger *logrus.Logger) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stream config: %w", err)
	}

	if pacer == nil {
		pacer = NoopPacer{}
	}
	if observer == nil {
		observer = &Trace{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Simulator{
		config:   cfg,
		rng:      rng,
		pacer:    pacer,
		observer: observer,
		logger:   logger,
		state:    NewState(cfg, logger),
		runID:    uuid.NewString(),
	}, nil
}

// Run executes ticks until the stream is exhausted and the window drained.
// It only fails if ctx is cancelled, returning the partial result. The
// observer sees OnFinish in both cases.
func (s *Simulator) Run(ctx context.Context) (types.Result, error) {
	log := s.logger.WithField("run_id", s.runID)
	log.WithFields(logrus.Fields{
		"window_size":  s.config.WindowSize,
		"min_buffer":   s.config.MinBuffer,
		"total_chunks": s.config.TotalChunks,
	}).Info("Starting stream simulation")

	for s.state.Active() {
		events := Tick(s.state, s.config, s.rng)
		level := s.state.Window.Stats().BufferLevel
		for _, e := range events {
			log.WithFields(logrus.Fields{
				"tick":     e.Tick,
				"event":    e.Kind.String(),
				"chunk":    e.Chunk,
				"buffered": e.Buffered,
				"level":    level,
			}).Debug("Simulation event")
			s.observer.OnEvent(e)
		}

		if err := s.pacer.Wait(ctx); err != nil {
			log.WithError(err).Warn("Simulation interrupted")
			result := s.result()
			result.Interrupted = true
			s.observer.OnFinish(result)
			return result, fmt.Errorf("simulation interrupted at tick %d: %w", s.state.Tick, err)
		}

		if s.state.Finished() {
			break
		}
	}

	result := s.result()
	log.WithFields(logrus.Fields{
		"ticks":       result.Ticks,
		"played":      result.PlayedCount,
		"dropped":     result.Dropped,
		"disconnects": result.Disconnects,
	}).Info("Stream simulation finished")

	s.observer.OnFinish(result)
	return result, nil
}

func (s *Simulator) result() types.Result {
	stats := s.state.Window.Stats()
	return types.Result{
		RunID:           s.runID,
		Ticks:           s.state.Tick,
		PlayedCount:     s.state.Playback.Played(),
		TotalChunks:     s.config.TotalChunks,
		FinalBufferSize: stats.ChunksBuffered,
		WindowSize:      s.config.WindowSize,
		Dropped:         stats.ChunksDropped,
		Disconnects:     s.state.Link.Disconnects(),
		Pauses:          s.state.Playback.Pauses(),
	}
}
