// Package main implements the streaming buffer simulator command.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/Cami-nando2/StreamingVideoBuffer/config"
	"github.com/Cami-nando2/StreamingVideoBuffer/internal/render"
	"github.com/Cami-nando2/StreamingVideoBuffer/internal/simulator"
	"github.com/GiGurra/boa/pkg/boa"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[config.Config]{
		Use:     "svbuffer",
		Short:   "Simulate sliding-window video stream buffering",
		Long:    "Simulate a streaming client receiving chunks over an unreliable connection, buffering them in a bounded window and playing them back with start/stop thresholds.",
		Version: appVersion(),
		ParamEnrich: boa.ParamEnricherCombine(
			boa.ParamEnricherBool,
			boa.ParamEnricherName,
			boa.ParamEnricherShort,
		),
		RunFunc: func(cfg *config.Config, cmd *cobra.Command, args []string) {
			if err := run(cfg); err != nil {
				logrus.WithError(err).Fatal("Simulation failed")
			}
		},
	}.Run()
}

func run(cfg *config.Config) error {
	// Configure logrus
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logrus.SetOutput(os.Stderr)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Set log level based on config
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	logrus.SetLevel(level)

	logger := logrus.StandardLogger()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.WithField("seed", seed).Info("Seeded disconnect roll")
	rng := rand.New(rand.NewSource(seed))

	var observer simulator.Observer
	switch cfg.Format {
	case config.FormatJSON:
		observer = render.NewJSONRenderer(os.Stdout, logger)
	default:
		narrator := render.NewTextRenderer(os.Stdout, render.ColorEnabled(os.Stdout, cfg.NoColor))
		narrator.Banner()
		observer = narrator
	}

	sim, err := simulator.New(cfg.StreamConfig(), rng, simulator.NewSleepPacer(cfg.Delay()), observer, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			logger.Info("Stopping simulation...")
			cancel()
		case <-ctx.Done():
		}
	}()

	result, err := sim.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.WithFields(logrus.Fields{
			"ticks":  result.Ticks,
			"played": result.PlayedCount,
		}).Warn("Simulation stopped before the stream finished")
		return nil
	}

	return err
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-(no build info)"
	}

	if bi.Main.Version == "" {
		return "unknown-(no version)"
	}

	return bi.Main.Version
}
