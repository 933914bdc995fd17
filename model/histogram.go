package model

// Histogram counts live cells per age bucket. Index i holds the cells aged i;
// the last bucket also holds every cell older than the cap.
type Histogram []int

// BuildHistogram buckets the cells of g by age, folding ages above maxAge into
// the maxAge bucket. All maxAge+1 buckets are present. A negative maxAge is treated as 0.
func BuildHistogram(g Generation, maxAge int) Histogram {
	maxAge = max(maxAge, 0)
	histo := make(Histogram, maxAge+1)
	for _, age := range g.cells {
		histo[min(age, uint64(maxAge))]++
	}
	return histo
}

// Total returns the sum of all bucket counts
func (h Histogram) Total() (total int) {
	for _, count := range h {
		total += count
	}
	return
}

// MaxCount returns the largest bucket count, never less than 1
func (h Histogram) MaxCount() int {
	largest := 1
	for _, count := range h {
		largest = max(largest, count)
	}
	return largest
}
