package selection

// MinSize is the smallest accepted selection span on each axis, in pixels.
const MinSize = 32

// Point is a position in window-client coordinates.
type Point struct {
	X int
	Y int
}

// Region holds the corner where the drag began and the corner where it is now.
// Start may lie below or right of End; use Normalized for a canonical rectangle.
type Region struct {
	Start Point
	End   Point
}

// Normalized returns the top-left and bottom-right corners of the region.
func (r Region) Normalized() (Point, Point) {
	return Point{X: min(r.Start.X, r.End.X), Y: min(r.Start.Y, r.End.Y)},
		Point{X: max(r.Start.X, r.End.X), Y: max(r.Start.Y, r.End.Y)}
}

// Width and Height are the absolute spans of the region.
func (r Region) Width() int  { return abs(r.End.X - r.Start.X) }
func (r Region) Height() int { return abs(r.End.Y - r.Start.Y) }

// Valid reports whether both spans reach MinSize.
func (r Region) Valid() bool {
	return r.Width() >= MinSize && r.Height() >= MinSize
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
