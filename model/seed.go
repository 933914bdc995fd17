package model

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ParseSeed reads a seed pattern: every non-space character at column x of
// line y (both zero-based, columns counted in runes) is a live cell at (x, y).
func ParseSeed(r io.Reader) (Generation, error) {
	var points []Point

	scanner := bufio.NewScanner(r)
	for y := 0; scanner.Scan(); y++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		x := 0
		for _, ch := range line {
			if ch != ' ' {
				points = append(points, Point{X: x, Y: y})
			}
			x++
		}
	}
	if err := scanner.Err(); err != nil {
		return NewGeneration(points...), errors.Wrap(err, "[ParseSeed] failed to scan seed")
	}

	return NewGeneration(points...), nil
}

// LoadSeed loads the initial generation from a seed file.
//
// A missing or unreadable file yields an empty generation together with the
// error, so callers can report it and carry on.
func LoadSeed(filename string) (Generation, error) {
	f, err := os.Open(filename)
	if err != nil {
		return NewGeneration(), errors.Wrapf(err, "[LoadSeed] failed to open seed file: %+v", filename)
	}
	defer f.Close()

	gen, err := ParseSeed(f)
	if err != nil {
		return NewGeneration(), errors.Wrapf(err, "[LoadSeed] failed to read seed file: %+v", filename)
	}
	return gen, nil
}
