// Package shape provides editable analytic shapes used by interactive
// sketch tools for hit-testing and constraint feedback.
package shape

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/sketch"
)

// Ellipse is an ellipse whose major axis runs between two shared points
// and whose semi-minor axis is a shared Ref. Nothing is cached: every
// derived property is recomputed from the store and the Ref on access.
type Ellipse struct {
	store    PointStore
	EP1, EP2 PointHandle
	R        Ref
}

// NewEllipse creates an ellipse over two stored points with its own
// radius parameter, initialized to half the major radius.
func NewEllipse(store PointStore, ep1, ep2 PointHandle) *Ellipse {
	e := &Ellipse{store: store, EP1: ep1, EP2: ep2, R: NewParam(0)}
	e.R.Set(e.RadiusX() * 0.5)
	return e
}

// NewEllipseWithRef creates an ellipse whose minor radius is the external r.
func NewEllipseWithRef(store PointStore, ep1, ep2 PointHandle, r Ref) *Ellipse {
	return &Ellipse{store: store, EP1: ep1, EP2: ep2, R: r}
}

func (e *Ellipse) ep1() sketch.Point { return e.store.Point(e.EP1) }
func (e *Ellipse) ep2() sketch.Point { return e.store.Point(e.EP2) }

// Rotation returns the angle of the major axis.
func (e *Ellipse) Rotation() float64 {
	return e.ep2().Sub(e.ep1()).Angle()
}

// RadiusX returns the semi-major axis, half the distance between the endpoints.
func (e *Ellipse) RadiusX() float64 {
	return e.ep1().Distance(e.ep2()) * 0.5
}

// RadiusY returns the current value of the minor radius reference.
func (e *Ellipse) RadiusY() float64 {
	return e.R.Get()
}

// CenterX returns the x coordinate of the midpoint of the axis endpoints.
func (e *Ellipse) CenterX() float64 {
	return e.Center().X
}

// CenterY returns the y coordinate of the midpoint of the axis endpoints.
func (e *Ellipse) CenterY() float64 {
	return e.Center().Y
}

// Center returns the midpoint of the axis endpoints.
func (e *Ellipse) Center() sketch.Point {
	return e.ep1().Lerp(e.ep2(), 0.5)
}

// LocalPoint is a point expressed in an ellipse's unrotated frame.
type LocalPoint struct {
	X, Y   float64
	Angle  float64 // polar angle relative to the major axis
	Radius float64 // distance from the center
}

// ToEllipseCoordinateSystem expresses p relative to the ellipse center
// with the major axis along +X. The distance from the center is preserved.
func (e *Ellipse) ToEllipseCoordinateSystem(p sketch.Point) LocalPoint {
	d := p.Sub(e.Center())
	angle := d.Angle() - e.Rotation()
	radius := d.Length()
	return LocalPoint{
		X:      radius * math.Cos(angle),
		Y:      radius * math.Sin(angle),
		Angle:  angle,
		Radius: radius,
	}
}

// NormalDistance returns how far p is from the ellipse along the ray from
// the center through p: |dist(center, p) − r(θ)|, with r the polar radius
// at p's local angle. This is a radial deviation, not the Euclidean
// distance to the nearest curve point; the two agree only on the axes
// and for circles.
func (e *Ellipse) NormalDistance(p sketch.Point) float64 {
	local := e.ToEllipseCoordinateSystem(p)
	l := sketch.EllipseRadiusAt(e.RadiusX(), e.RadiusY(), local.Angle)
	return math.Abs(local.Radius - l)
}

// FitRadius sets the minor radius so that the ellipse passes through p,
// keeping the axis endpoints. The Ref is left unchanged when no finite
// radius exists.
func (e *Ellipse) FitRadius(p sketch.Point) error {
	local := e.ToEllipseCoordinateSystem(p)
	r, err := FindMinorRadius(e.RadiusX(), local.Radius, local.Angle)
	if err != nil {
		return err
	}
	e.R.Set(r)
	return nil
}

// Primitive snapshots the ellipse as a contour primitive.
func (e *Ellipse) Primitive(id string) *sketch.Ellipse {
	return sketch.NewEllipse(id, e.ep1(), e.ep2(), e.RadiusY())
}

// FindMinorRadius solves the polar ellipse equation for the semi-minor
// axis, given the semi-major axis and one point (in polar form, relative
// to the major axis) assumed to lie on the ellipse:
//
//	radiusY = |sin a / sqrt(1/r² − cos²a/majorRadius²)|
//
// A point outside the domain (1/r² ≤ cos²a/majorRadius²) or any
// non-finite result is rejected with a *sketch.DegenerateGeometryError
// wrapping sketch.ErrOutOfDomain or sketch.ErrNonFinite.
func FindMinorRadius(majorRadius, pointRadius, pointAngle float64) (float64, error) {
	c := math.Cos(pointAngle) / majorRadius
	radicand := 1/(pointRadius*pointRadius) - c*c
	if !(radicand > 0) {
		sketch.Logger().Debug("minor radius out of domain",
			slog.Float64("major", majorRadius),
			slog.Float64("radius", pointRadius),
			slog.Float64("angle", pointAngle))
		return math.NaN(), &sketch.DegenerateGeometryError{
			Reason: fmt.Sprintf("point radius %g at angle %g is outside an ellipse with major radius %g",
				pointRadius, pointAngle, majorRadius),
			Err: sketch.ErrOutOfDomain,
		}
	}
	r := math.Abs(math.Sin(pointAngle) / math.Sqrt(radicand))
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return math.NaN(), &sketch.DegenerateGeometryError{
			Reason: "minor radius is not finite",
			Err:    sketch.ErrNonFinite,
		}
	}
	return r, nil
}
