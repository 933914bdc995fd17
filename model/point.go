package model

// Point is a position on the unbounded simulation plane
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of two points
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cell is a live position together with the number of consecutive generations it has survived
type Cell struct {
	Point
	Age uint64
}

// moore holds the offsets of the 8 horizontally, vertically and diagonally adjacent positions
var moore = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the Moore neighborhood of p
func (p Point) Neighbors() [8]Point {
	var out [8]Point
	for i, d := range moore {
		out[i] = p.Add(d)
	}
	return out
}
