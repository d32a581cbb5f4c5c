package sketch

import "github.com/gogpu/sketch/internal/lut"

// BezierSamples is the number of points a BezierCurve is sampled into.
const BezierSamples = 10

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	return c.weighted(lut.Weights{mt * mt * mt, 3 * mt * mt * t, 3 * mt * t * t, t * t * t})
}

// Sample evaluates the curve at n evenly spaced parameters from 0 to 1
// using cached Bernstein tables. The first and last samples are exactly
// P0 and P3.
func (c CubicBez) Sample(n int) []Point {
	table := lut.Cubic(n)
	points := make([]Point, len(table))
	for i, w := range table {
		points[i] = c.weighted(w)
	}
	return points
}

func (c CubicBez) weighted(w lut.Weights) Point {
	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: w[0]*c.P0.X + w[1]*c.P1.X + w[2]*c.P2.X + w[3]*c.P3.X,
		Y: w[0]*c.P0.Y + w[1]*c.P1.Y + w[2]*c.P2.Y + w[3]*c.P3.Y,
	}
}

// CubicLUT samples the cubic Bézier with endpoints p0, p1 and control
// points cp1, cp2 into n points, endpoints included.
func CubicLUT(p0, p1, cp1, cp2 Point, n int) []Point {
	return NewCubicBez(p0, cp1, cp2, p1).Sample(n)
}
