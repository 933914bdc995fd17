package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/lifeview/model"
	"github.com/sheikhrachel/lifeview/utils"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestSimulateCommand(t *testing.T) {
	dir := t.TempDir()
	blinker := writeFile(t, dir, "blinker.txt", "###\n")
	block := writeFile(t, dir, "block.txt", "##\n##\n")
	missingConfig := filepath.Join(dir, "none.yaml")

	stdout, _, err := execute(t, "simulate", "-n", "4", "-w", "2", "--config", missingConfig, blinker, block)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], blinker+" gen:4 cells:3 births:8 deaths:8 peak:3 avg_pop:3.0"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], block+" gen:4 cells:4 births:0 deaths:0 peak:4 avg_pop:4.0"), lines[1])
	assert.NotContains(t, stdout, "stable_at")
}

func TestSimulateStopsWhenStable(t *testing.T) {
	dir := t.TempDir()
	block := writeFile(t, dir, "block.txt", "##\n##\n")

	stdout, _, err := execute(t, "simulate", "--stop-when-stable", "--config", filepath.Join(dir, "none.yaml"), block)
	require.NoError(t, err)

	assert.Contains(t, stdout, block+" gen:1 cells:4")
	assert.Contains(t, stdout, "stable_at:1")
}

func TestSimulateUsesConfigFileAndFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	blinker := writeFile(t, dir, "blinker.txt", "###\n")
	config := writeFile(t, dir, "lifeview.yaml", "max_generations: 2\nworkers: 1\n")

	stdout, _, err := execute(t, "simulate", "--config", config, blinker)
	require.NoError(t, err)
	assert.Contains(t, stdout, " gen:2 ")

	stdout, _, err = execute(t, "simulate", "--config", config, "-n", "3", blinker)
	require.NoError(t, err)
	assert.Contains(t, stdout, " gen:3 ")
}

func TestSimulateErrors(t *testing.T) {
	dir := t.TempDir()
	missingConfig := filepath.Join(dir, "none.yaml")

	_, stderr, err := execute(t, "simulate", "--config", missingConfig, filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open seed file")
	assert.Contains(t, stderr, "Using default configuration")

	seed := writeFile(t, dir, "seed.txt", "#\n")
	_, _, err = execute(t, "simulate", "--config", missingConfig, "-w", "0", seed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")

	bad := writeFile(t, dir, "bad.yaml", "frame_rate: [")
	_, _, err = execute(t, "simulate", "--config", bad, seed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")

	_, _, err = execute(t, "simulate")
	assert.Error(t, err)
}

func TestSimulateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := simulate(ctx, "seed", model.NewGeneration(model.Point{}), 10, false)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestInitializeGame(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	dir := t.TempDir()

	config := utils.DefaultConfig()
	config.SeedFile = filepath.Join(dir, "missing.txt")
	config.StartPlaying = true

	session := initializeGame(config, logger)
	assert.Zero(t, session.Gen.Len())
	assert.True(t, session.Playing)
	assert.False(t, session.Advance)
	assert.False(t, session.ShowHistogram)

	config.SeedFile = writeFile(t, dir, "gen0.txt", " #\n# #\n")
	config.StartPlaying = false
	config.ShowHistogram = true

	session = initializeGame(config, logger)
	assert.Equal(t, 3, session.Gen.Len())
	assert.True(t, session.Gen.Alive(model.Point{X: 1, Y: 0}))
	assert.False(t, session.Playing)
	assert.True(t, session.ShowHistogram)
}

func TestSimulationResultString(t *testing.T) {
	stats := utils.NewStats()
	stats.StartTime = time.Now().Add(-2 * time.Second)
	stats.Update(10, 5, time.Millisecond)

	r := simulationResult{
		file:     "glider.txt",
		gen:      model.FromCells(10, 12, 12, model.Cell{Point: model.Point{}}),
		stats:    stats,
		stable:   true,
		stableAt: 10,
	}

	line := r.String()
	assert.True(t, strings.HasPrefix(line, "glider.txt gen:10 cells:1 births:12 deaths:12 peak:5 avg_pop:5.0 stable_at:10 rate:"), line)
	assert.True(t, strings.HasSuffix(line, " gen/sec"), line)
}
