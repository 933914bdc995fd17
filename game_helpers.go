package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/lifeview/game"
	"github.com/sheikhrachel/lifeview/model"
	"github.com/sheikhrachel/lifeview/utils"
)

// resolveConfig loads the config file, falling back to defaults when it does
// not exist, then applies every flag that was set explicitly
func resolveConfig(cmd *cobra.Command, flags *flagValues) (utils.Config, error) {
	config, err := utils.LoadConfig(flags.configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return config, err
		}
		if cmd.Flags().Changed("config") {
			fmt.Fprintf(cmd.ErrOrStderr(), "Using default configuration (%s not found)\n", flags.configFile)
		}
		config = utils.DefaultConfig()
	}

	set := cmd.Flags().Changed
	if set("frame-rate") {
		config.FrameRate = flags.frameRate
	}
	if set("max-age") {
		config.HistogramMaxAge = flags.maxAge
	}
	if set("play") {
		config.StartPlaying = flags.play
	}
	if set("histogram") {
		config.ShowHistogram = flags.histogram
	}
	if set("log-file") {
		config.LogFile = flags.logFile
	}
	if set("log-level") {
		config.LogLevel = flags.logLevel
	}
	if set("generations") {
		config.MaxGenerations = flags.generations
	}
	if set("workers") {
		config.Workers = flags.workers
	}
	if set("stop-when-stable") {
		config.StopWhenStable = flags.stopWhenStable
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrap(err, "[resolveConfig] invalid flags")
	}
	return config, nil
}

func newLogger(config utils.Config) (*slog.Logger, io.Closer, error) {
	logger, closer, err := utils.NewLogger(config.LogFile, config.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("starting",
		"seed_file", config.SeedFile,
		"frame_rate", config.FrameRate,
		"histogram_max_age", config.HistogramMaxAge,
		"start_playing", config.StartPlaying,
	)
	return logger, closer, nil
}

// initializeGame sets up the initial session. A missing or unreadable seed
// file starts the viewer with no live cells.
func initializeGame(config utils.Config, logger *slog.Logger) game.Session {
	gen, err := model.LoadSeed(config.SeedFile)
	if err != nil {
		logger.Warn("seed not loaded, starting empty", "error", err)
	} else {
		logger.Info("seed loaded", "file", config.SeedFile, "cells", gen.Len())
	}

	session := game.NewSession(gen)
	session.Playing = config.StartPlaying
	session.ShowHistogram = config.ShowHistogram
	return session
}

// simulationResult summarizes one headless run
type simulationResult struct {
	file     string
	gen      model.Generation
	stats    *utils.Stats
	stableAt uint64
	stable   bool
}

func (r simulationResult) String() string {
	line := fmt.Sprintf("%s gen:%d cells:%d births:%d deaths:%d peak:%d avg_pop:%.1f",
		r.file, r.gen.Tick, r.gen.Len(), r.gen.Births, r.gen.Deaths,
		r.stats.PeakPopulation, r.stats.AveragePopulation)
	if r.stable {
		line += fmt.Sprintf(" stable_at:%d", r.stableAt)
	}
	if elapsed := r.stats.Elapsed().Seconds(); elapsed > 0 {
		line += fmt.Sprintf(" rate:%.1f gen/sec", float64(r.stats.TotalGenerations)/elapsed)
	}
	return line
}

func runSimulate(cmd *cobra.Command, files []string, flags *flagValues) error {
	config, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(config)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results := make([]simulationResult, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(config.Workers)
	for i, file := range files {
		eg.Go(func() error {
			gen, err := model.LoadSeed(file)
			if err != nil {
				return err
			}
			results[i], err = simulate(ctx, file, gen, config.MaxGenerations, config.StopWhenStable)
			if err != nil {
				return err
			}
			logger.Info("simulation finished", "file", file, "tick", results[i].gen.Tick, "cells", results[i].gen.Len())
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		logger.Error("simulation failed", "error", err)
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintln(out, r)
	}
	return nil
}

// simulate advances gen until it reaches generations ticks or, when
// stopWhenStable is set, until a generation has the same live positions as
// the one before it
func simulate(ctx context.Context, file string, gen model.Generation, generations int, stopWhenStable bool) (simulationResult, error) {
	result := simulationResult{file: file, stats: utils.NewStats()}

	var prevHash string
	if stopWhenStable {
		prevHash = gen.Hash()
	}
	lastStep := time.Now()
	for gen.Tick < uint64(generations) {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrapf(err, "[simulate] %s interrupted at generation %d", file, gen.Tick)
		}

		gen = model.Advance(gen)
		now := time.Now()
		result.stats.Update(int(gen.Tick), gen.Len(), now.Sub(lastStep))
		lastStep = now

		if stopWhenStable {
			hash := gen.Hash()
			if hash == prevHash {
				result.stable, result.stableAt = true, gen.Tick
				break
			}
			prevHash = hash
		}
	}

	result.gen = gen
	return result, nil
}
