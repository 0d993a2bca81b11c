package geometry

import "math"

// epsilon keeps the denominator nonzero when a landmark collapses onto the
// vertex (occluded or jittery tracking).
const epsilon = 1e-6

// Point is a 2D pixel coordinate derived from a normalized landmark.
type Point struct {
	X float64
	Y float64
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Angle returns the angle ABC in degrees, with b as the vertex, in the
// range [0, 180]. Degenerate input (zero-length vector) yields a finite
// value instead of an error; callers tolerate garbage from noisy frames.
func Angle(a, b, c Point) float64 {
	bax := a.X - b.X
	bay := a.Y - b.Y
	bcx := c.X - b.X
	bcy := c.Y - b.Y

	dot := bax*bcx + bay*bcy
	normBA := math.Sqrt(bax*bax + bay*bay)
	normBC := math.Sqrt(bcx*bcx + bcy*bcy)

	cosine := dot / (normBA*normBC + epsilon)

	// Clip against floating-point overshoot before the inverse cosine.
	if cosine > 1 {
		cosine = 1
	} else if cosine < -1 {
		cosine = -1
	}

	return math.Acos(cosine) * 180 / math.Pi
}
