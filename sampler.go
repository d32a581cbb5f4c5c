package sketch

import "math"

// Angular stepping shared by the arc, elliptical arc and circle samplers.
//
// Every sampler discards the caller's resolution and uses
// fixedResolution instead, giving a constant step of 1/(2π) radians
// (about 9.1°). Downstream geometry relies on this density.
const (
	fixedResolution = 1.0
	angularStep     = fixedResolution / (2 * math.Pi)
)

// sweepAngle returns the counter-clockwise angle from a to b, both relative
// to the same center, normalized the way the sketcher always has.
func sweepAngle(a, b Point) float64 {
	ab := b.Angle() - a.Angle()
	// atan2 differences never exceed 2π, so this branch is unreachable
	// for finite input; it is kept for parity with stored sketches.
	if ab > 2*math.Pi {
		ab = math.Pi/2 - ab
	}
	if ab < 0 {
		ab += 2 * math.Pi
	}
	return ab
}

// stepCount returns round(sweep/step). Non-finite sweeps, which come from
// non-finite input points, yield 0 so the loops stay bounded.
func stepCount(sweep float64) int {
	if !isFinite(sweep) {
		return 0
	}
	return int(math.Round(sweep / angularStep))
}

// ApproximateArc samples the counter-clockwise arc from ao to bo around c.
//
// The first point is ao and the last point is exactly bo; the k-1 interior
// points lie on the circle of radius |ao-c| at multiples of the fixed
// angular step, where k = round(sweep/step). The resolution argument is
// accepted for interface symmetry and ignored.
func ApproximateArc(ao, bo, c Point, resolution float64) []Point {
	_ = resolution
	a := ao.Sub(c)
	b := bo.Sub(c)
	sweep := sweepAngle(a, b)
	r := a.Length()

	k := stepCount(sweep)
	points := make([]Point, 0, k+1)
	points = append(points, ao)

	angle := a.Angle() + angularStep
	for i := 0; i < k-1; i++ {
		points = append(points, Point{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)})
		angle += angularStep
	}
	return append(points, bo)
}

// EllipseRadiusAt evaluates the polar equation of an axis-aligned ellipse
// with semi-axes radiusX and radiusY at angle theta:
//
//	r(θ) = 1 / sqrt((cos θ / radiusX)² + (sin θ / radiusY)²)
//
// Degenerate axes propagate as 0, Inf or NaN rather than failing.
func EllipseRadiusAt(radiusX, radiusY, theta float64) float64 {
	cx := math.Cos(theta) / radiusX
	sy := math.Sin(theta) / radiusY
	return math.Sqrt(1 / (cx*cx + sy*sy))
}

// ApproximateEllipticalArc samples the counter-clockwise arc from ao to bo
// on the ellipse whose major axis runs from ep1 to ep2 and whose semi-minor
// axis is radiusY.
//
// Stepping matches ApproximateArc; each interior sample takes its radius
// from EllipseRadiusAt in the ellipse's unrotated frame and is rotated
// back by the axis angle. The last point is exactly bo.
//
// Coincident ep1 and ep2 leave the axis without a direction: the center
// and sweep become NaN and only ao and bo are returned.
func ApproximateEllipticalArc(ep1, ep2, ao, bo Point, radiusY, resolution float64) []Point {
	_ = resolution
	axis := ep2.Sub(ep1)
	radiusX := axis.Length() * 0.5
	axis = axis.Normalize()
	c := ep1.Add(axis.Mul(radiusX))
	a := ao.Sub(c)
	b := bo.Sub(c)
	rotation := axis.Angle()
	sweep := sweepAngle(a, b)

	k := stepCount(sweep)
	points := make([]Point, 0, k+1)
	points = append(points, ao)

	angle := a.Angle() + angularStep - rotation
	for i := 0; i < k-1; i++ {
		r := EllipseRadiusAt(radiusX, radiusY, angle)
		points = append(points, Point{
			X: c.X + r*math.Cos(angle+rotation),
			Y: c.Y + r*math.Sin(angle+rotation),
		})
		angle += angularStep
	}
	return append(points, bo)
}

// ApproximateCircle samples a full circle starting at angle 0 and closes
// the polyline by repeating its first point.
func ApproximateCircle(c Point, r, resolution float64) []Point {
	_ = resolution
	k := stepCount(2 * math.Pi)
	points := make([]Point, 0, k+1)

	angle := 0.0
	for i := 0; i < k; i++ {
		points = append(points, Point{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)})
		angle += angularStep
	}
	return append(points, points[0])
}
