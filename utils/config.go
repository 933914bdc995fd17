package utils

import (
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for the viewer and the headless simulator
type Config struct {
	SeedFile        string        `yaml:"seed_file"`
	FrameRate       time.Duration `yaml:"frame_rate"`
	HistogramMaxAge int           `yaml:"histogram_max_age"`
	StartPlaying    bool          `yaml:"start_playing"`
	ShowHistogram   bool          `yaml:"show_histogram"`
	LogFile         string        `yaml:"log_file"`
	LogLevel        string        `yaml:"log_level"`
	MaxGenerations  int           `yaml:"max_generations"`
	Workers         int           `yaml:"workers"`
	StopWhenStable  bool          `yaml:"stop_when_stable"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		SeedFile:        "./gen0.txt",
		FrameRate:       50 * time.Millisecond,
		HistogramMaxAge: 10,
		StartPlaying:    false,
		ShowHistogram:   false,
		LogFile:         "", // logs are discarded while the terminal is in use
		LogLevel:        "info",
		MaxGenerations:  1000,
		Workers:         runtime.NumCPU(),
		StopWhenStable:  false,
	}
}

// LoadConfig loads configuration from a YAML (or JSON) file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects values the viewer cannot run with
func (c Config) Validate() error {
	switch {
	case c.HistogramMaxAge < 1:
		return errors.Errorf("histogram_max_age must be at least 1, got %d", c.HistogramMaxAge)
	case c.FrameRate < 0:
		return errors.Errorf("frame_rate must not be negative, got %s", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	case c.Workers < 1:
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
