package geometry

import "math"

// Point is a 2D point with floating-point coordinates.
type Point struct {
	X, Y float64
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Dot returns the dot product of p and other.
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Norm returns the Euclidean distance from the origin.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Corners returns the four corners of a rectangle of size (w, h) centered
// at (cx, cy) and rotated by theta radians about its own center, in
// counter-clockwise order starting from the (-w/2, -h/2) local corner.
//
// corner_k = (cx, cy) + Rθ · localOffset_k, where Rθ is the standard 2D
// rotation matrix [cosθ -sinθ; sinθ cosθ].
func Corners(w, h, cx, cy, theta float64) [4]Point {
	var (
		hw  = w / 2
		hh  = h / 2
		cos = math.Cos(theta)
		sin = math.Sin(theta)
	)

	// Local offsets in CCW order: bottom-left, bottom-right, top-right, top-left.
	local := [4]Point{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}

	var out [4]Point
	var i int
	for i = 0; i < 4; i++ {
		out[i] = Point{
			X: cx + cos*local[i].X - sin*local[i].Y,
			Y: cy + sin*local[i].X + cos*local[i].Y,
		}
	}

	return out
}

// EdgeNormals returns the two distinct outward unit edge normals of a
// rectangle rotated by theta. A rectangle has four edges but only two
// distinct normal directions (opposite edges share an axis), so these are
// the only candidate separating axes contributed by this rectangle.
func EdgeNormals(theta float64) [2]Point {
	cos := math.Cos(theta)
	sin := math.Sin(theta)

	return [2]Point{
		{X: cos, Y: sin},   // the rectangle's local X axis, rotated
		{X: -sin, Y: cos},  // the rectangle's local Y axis, rotated
	}
}
