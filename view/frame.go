package view

// blank fills every position nothing was drawn to
const blank = ' '

// Frame is a fully composed character grid for one screen refresh.
// Writes outside the grid are dropped.
type Frame struct {
	width  int
	height int
	cells  []rune
}

// NewFrame allocates a blank frame; non-positive dimensions produce an empty frame
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = blank
	}
	return &Frame{width: width, height: height, cells: cells}
}

// Size returns the frame dimensions
func (f *Frame) Size() (width, height int) {
	return f.width, f.height
}

func (f *Frame) inside(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Set draws r at (x, y)
func (f *Frame) Set(x, y int, r rune) {
	if f.inside(x, y) {
		f.cells[y*f.width+x] = r
	}
}

// At returns the rune at (x, y), blank when outside the frame
func (f *Frame) At(x, y int) rune {
	if !f.inside(x, y) {
		return blank
	}
	return f.cells[y*f.width+x]
}

// Text draws s left to right starting at (x, y), clipped to the frame
func (f *Frame) Text(x, y int, s string) {
	for _, r := range s {
		f.Set(x, y, r)
		x++
	}
}

// Row returns row y as a string
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.height {
		return ""
	}
	return string(f.cells[y*f.width : (y+1)*f.width])
}

// Blank reports whether r is the fill rune
func Blank(r rune) bool {
	return r == blank
}
