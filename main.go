package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sheikhrachel/lifeview/game"
	"github.com/sheikhrachel/lifeview/terminal"
)

const defaultConfigFile = "lifeview.yaml"

// flagValues holds command-line overrides; they only apply when the flag was set
type flagValues struct {
	configFile     string
	frameRate      time.Duration
	maxAge         int
	play           bool
	histogram      bool
	logFile        string
	logLevel       string
	generations    int
	workers        int
	stopWhenStable bool
}

func newRootCmd() *cobra.Command {
	flags := &flagValues{}

	root := &cobra.Command{
		Use:   "lifeview [seed-file]",
		Short: "Interactive terminal viewer for Conway's Game of Life",
		Long: `Loads a seed pattern (every non-space character is a live cell) and shows it
in the terminal. Cells are drawn as their age, '+' once they are 10 or older.

Controls:
  s      advance one generation
  space  start/stop auto-play
  h      show/hide the age histogram
  q      quit
  drag   pan the view with the left mouse button`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewer(cmd, args, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configFile, "config", "c", defaultConfigFile, "YAML or JSON config file")
	pf.StringVar(&flags.logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.IntVar(&flags.maxAge, "max-age", 10, "histogram age cap")

	f := root.Flags()
	f.DurationVar(&flags.frameRate, "frame-rate", 50*time.Millisecond, "delay between auto-play frames")
	f.BoolVar(&flags.play, "play", false, "start in auto-play")
	f.BoolVar(&flags.histogram, "histogram", false, "start with the histogram visible")

	root.AddCommand(newSimulateCmd(flags))
	return root
}

func newSimulateCmd(flags *flagValues) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate seed-file...",
		Short: "Run seed files headlessly and print a summary per file",
		Long: `Advances every seed file for a fixed number of generations without a
terminal UI. Files are processed concurrently; each summary line reports the
final generation, live cells, cumulative births and deaths, peak and average
population and throughput.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, args, flags)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&flags.generations, "generations", "n", 1000, "generations to run per file")
	f.IntVarP(&flags.workers, "workers", "w", 1, "files simulated at once")
	f.BoolVar(&flags.stopWhenStable, "stop-when-stable", false, "stop a file early once it stops changing")
	return cmd
}

func runViewer(cmd *cobra.Command, args []string, flags *flagValues) error {
	config, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		config.SeedFile = args[0]
	}

	logger, closer, err := newLogger(config)
	if err != nil {
		return err
	}
	defer closer.Close()

	session := initializeGame(config, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term, err := terminal.Open(ctx)
	if err != nil {
		logger.Error("terminal setup failed", "error", err)
		return err
	}
	defer term.Close()

	g := game.New(term, term, game.Options{
		MaxAge:    config.HistogramMaxAge,
		FrameRate: config.FrameRate,
		Logger:    logger,
	})
	if _, err = g.Run(session); err != nil {
		logger.Error("viewer stopped", "error", err)
		return err
	}
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
