package zoom

import "math"

// Coordinate is a 2D point in input-device space (typically screen pixels).
type Coordinate struct {
	X, Y float64
}

// Pt is a convenience function to create a Coordinate.
func Pt(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns the sum of two coordinates (vector addition).
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the difference of two coordinates (vector subtraction).
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

// Mid returns the midpoint between c and o.
func (c Coordinate) Mid(o Coordinate) Coordinate {
	return Coordinate{X: (c.X + o.X) / 2, Y: (c.Y + o.Y) / 2}
}

// Distance returns the Euclidean distance between two coordinates.
func (c Coordinate) Distance(o Coordinate) float64 {
	return math.Hypot(c.X-o.X, c.Y-o.Y)
}

// Approx reports whether both components differ by at most eps.
func (c Coordinate) Approx(o Coordinate, eps float64) bool {
	return math.Abs(c.X-o.X) <= eps && math.Abs(c.Y-o.Y) <= eps
}

// normalizeX folds a negative x reading onto its absolute value.
// Some platforms report negative client coordinates near a screen edge.
func (c Coordinate) normalizeX() Coordinate {
	if c.X < 0 {
		c.X = -c.X
	}
	return c
}
