// Package physics provides axis-aligned bounding box collision utilities.
package physics

// Rect is an axis-aligned bounding box. X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the x coordinate of the rect center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the y coordinate of the rect center.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Overlaps reports whether r and other overlap.
// Touching edges do not count as an overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Contains reports whether the point (x,y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectsOverlap reports whether two axis-aligned boxes overlap.
func RectsOverlap(a, b Rect) bool {
	return a.Overlaps(b)
}
