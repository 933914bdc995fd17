package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/sheikhrachel/lifeview/model"
)

const (
	// BarWidth is the histogram bar length that the fullest bucket is scaled down to
	BarWidth = 25

	// overflowGlyph marks cells aged 10 or more
	overflowGlyph = '+'
	barGlyph      = ">"

	legend = "space:freeze s:step h:histo q:quit"
)

// Options controls the optional overlays of a frame
type Options struct {
	ShowHistogram bool
	Histogram     model.Histogram
}

// Render composes a frame of the given size.
//
// The cell at simulation point p is drawn at screen position p + offset.
// Row 0 carries the status line, drawn over cells; histogram rows are drawn
// last, near the bottom, over everything else.
func Render(gen model.Generation, offset model.Point, width, height int, opts Options) *Frame {
	frame := NewFrame(width, height)

	for _, c := range gen.Cells() {
		s := c.Point.Add(offset)
		frame.Set(s.X, s.Y, Glyph(c.Age))
	}

	frame.Text(0, 0, StatusLine(gen))

	if opts.ShowHistogram {
		top := HistogramTop(height, len(opts.Histogram))
		for i, row := range HistogramRows(opts.Histogram) {
			// rows that would start above the screen pile up on row 0
			frame.Text(0, max(top+i, 0), row)
		}
	}

	return frame
}

// Glyph returns the character for a cell of the given age
func Glyph(age uint64) rune {
	if age < 10 {
		return rune('0' + age)
	}
	return overflowGlyph
}

// StatusLine summarizes the generation and lists the controls
func StatusLine(gen model.Generation) string {
	return fmt.Sprintf("gen:%d cells:%d births:%d deaths:%d %s",
		gen.Tick, gen.Len(), gen.Births, gen.Deaths, legend)
}

// HistogramTop returns the screen row of the first histogram bucket, leaving
// two rows below the last bucket
func HistogramTop(height, buckets int) int {
	return height - buckets - 2
}

// HistogramRows formats one row per bucket as "age-count:bars"
func HistogramRows(h model.Histogram) []string {
	scale := math.Min(1, BarWidth/float64(h.MaxCount()))

	rows := make([]string, len(h))
	for age, count := range h {
		bars := int(math.Round(float64(count) * scale))
		rows[age] = fmt.Sprintf("%02d-%04d:%s", age, count, strings.Repeat(barGlyph, bars))
	}
	return rows
}
