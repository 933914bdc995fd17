package model

import (
	"cmp"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/sheikhrachel/lifeview/rules"
)

// Generation is the full simulation state at one tick.
//
// Live cells are keyed by position with the age stored as the value, so a
// position can never appear twice and lookups never depend on age.
// A Generation is never modified after construction: Advance builds a new one.
type Generation struct {
	cells  map[Point]uint64
	Tick   uint64
	Births uint64
	Deaths uint64
}

// NewGeneration creates a tick 0 generation with every given point alive at age 0.
// Duplicate points collapse into one cell.
func NewGeneration(points ...Point) Generation {
	cells := make(map[Point]uint64, len(points))
	for _, p := range points {
		cells[p] = 0
	}
	return Generation{cells: cells}
}

// FromCells creates a generation from explicit cells and counters.
// When the same point is given twice the later cell wins.
func FromCells(tick, births, deaths uint64, cells ...Cell) Generation {
	m := make(map[Point]uint64, len(cells))
	for _, c := range cells {
		m[c.Point] = c.Age
	}
	return Generation{cells: m, Tick: tick, Births: births, Deaths: deaths}
}

// Len returns the number of live cells
func (g Generation) Len() int {
	return len(g.cells)
}

// Alive reports whether a live cell occupies p
func (g Generation) Alive(p Point) bool {
	_, ok := g.cells[p]
	return ok
}

// Age returns the age of the cell at p and whether one exists
func (g Generation) Age(p Point) (uint64, bool) {
	age, ok := g.cells[p]
	return age, ok
}

// Cells returns the live cells ordered by row, then column
func (g Generation) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for p, age := range g.cells {
		out = append(out, Cell{Point: p, Age: age})
	}
	slices.SortFunc(out, func(a, b Cell) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

// CountNeighbors counts the live cells in the Moore neighborhood of p
func (g Generation) CountNeighbors(p Point) int {
	count := 0
	for _, n := range p.Neighbors() {
		if _, ok := g.cells[n]; ok {
			count++
		}
	}
	return count
}

// Advance computes the next generation.
//
// Every live cell and every empty position adjacent to one is evaluated exactly
// once against g, never against the generation being built. Births and deaths
// are cumulative.
func Advance(g Generation) Generation {
	next := make(map[Point]uint64, len(g.cells))
	candidates := make(map[Point]struct{})

	var born, died uint64
	for p, age := range g.cells {
		count := 0
		for _, n := range p.Neighbors() {
			if _, ok := g.cells[n]; ok {
				count++
			} else {
				candidates[n] = struct{}{}
			}
		}
		if rules.ApplyConwayRules(count, true) {
			next[p] = age + 1
		} else {
			died++
		}
	}

	for p := range candidates {
		if rules.ApplyConwayRules(g.CountNeighbors(p), false) {
			next[p] = 0
			born++
		}
	}

	return Generation{
		cells:  next,
		Tick:   g.Tick + 1,
		Births: g.Births + born,
		Deaths: g.Deaths + died,
	}
}

// Hash returns an MD5 digest of the live positions, independent of ages and counters
func (g Generation) Hash() string {
	h := md5.New()
	buf := make([]byte, 16)
	for _, c := range g.Cells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
