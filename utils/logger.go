package utils

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds the application logger. The terminal is taken over while
// the viewer runs, so records go to logFile, or nowhere when it is empty.
// The returned closer releases the file.
func NewLogger(logFile, level string) (*slog.Logger, io.Closer, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, nil, errors.Wrapf(err, "[NewLogger] invalid log level: %+v", level)
	}

	if logFile == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[NewLogger] failed to open log file: %+v", logFile)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})), f, nil
}
