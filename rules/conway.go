package rules

const (
	// BirthNeighbors is the exact neighbor count that brings an empty position to life.
	BirthNeighbors = 3
	// SurviveMin and SurviveMax bound the neighbor counts a live cell survives with.
	SurviveMin = 2
	SurviveMax = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine whether
a position is alive in the next generation.

A live cell survives with 2 or 3 live neighbors, an empty position is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= SurviveMin && neighbors <= SurviveMax
	}
	return neighbors == BirthNeighbors
}
