package sketch

import (
	"slices"

	"github.com/google/uuid"
)

// Kind identifies the variant of a Primitive.
type Kind int

const (
	// KindSegment is a straight line between two points.
	KindSegment Kind = iota

	// KindArc is a counter-clockwise circular arc around a center.
	KindArc

	// KindBezier is a cubic Bézier curve.
	KindBezier

	// KindEllipticalArc is an arc of a rotated ellipse.
	KindEllipticalArc

	// KindCircle is a full circle.
	KindCircle

	// KindEllipse is a full rotated ellipse.
	KindEllipse
)

// String returns the kind name used in logs and sketch documents.
func (k Kind) String() string {
	switch k {
	case KindSegment:
		return "segment"
	case KindArc:
		return "arc"
	case KindBezier:
		return "bezier"
	case KindEllipticalArc:
		return "elliptical-arc"
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// Primitive is one atomic curve element of a contour.
//
// The set of implementations is closed: Segment, Arc, BezierCurve,
// EllipticalArc, Circle and Ellipse. Approximate returns a freshly
// allocated polyline; when the primitive is inverted the polyline is the
// exact mirror of the forward sampling, so inverting twice is an identity.
type Primitive interface {
	// ID returns the identifier assigned at construction.
	ID() string

	// Kind reports the variant.
	Kind() Kind

	// Inverted reports whether the primitive is traversed backwards.
	Inverted() bool

	// Invert toggles the traversal direction.
	Invert()

	// Approximate returns an ordered polyline standing in for the curve.
	Approximate(resolution float64) []Point

	sample(resolution float64) []Point
}

// NewID returns a fresh random identifier for callers that have none.
func NewID() string {
	return uuid.NewString()
}

// primitive holds the state shared by every variant.
type primitive struct {
	id       string
	inverted bool
}

// ID returns the identifier given at construction.
func (p *primitive) ID() string { return p.id }

// Inverted reports whether the primitive is traversed backwards.
func (p *primitive) Inverted() bool { return p.inverted }

// Invert toggles the traversal direction.
func (p *primitive) Invert() { p.inverted = !p.inverted }

// orient reverses a forward sampling in place when inverted.
func (p *primitive) orient(points []Point) []Point {
	if p.inverted {
		slices.Reverse(points)
	}
	return points
}

// Segment is a straight line from A to B.
type Segment struct {
	primitive
	A, B Point
}

// NewSegment creates a segment primitive.
func NewSegment(id string, a, b Point) *Segment {
	return &Segment{primitive: primitive{id: id}, A: a, B: b}
}

// Kind returns KindSegment.
func (s *Segment) Kind() Kind { return KindSegment }

// Approximate returns exactly the two endpoints; a line needs no sampling.
func (s *Segment) Approximate(resolution float64) []Point {
	return s.orient(s.sample(resolution))
}

func (s *Segment) sample(float64) []Point {
	return []Point{s.A, s.B}
}

// Arc is a circular arc swept counter-clockwise from A to B around C.
type Arc struct {
	primitive
	A, B, C Point
}

// NewArc creates an arc primitive. A and B are expected to lie on the
// circle around c; no validation is performed.
func NewArc(id string, a, b, c Point) *Arc {
	return &Arc{primitive: primitive{id: id}, A: a, B: b, C: c}
}

// Kind returns KindArc.
func (a *Arc) Kind() Kind { return KindArc }

// Approximate samples the arc at the fixed angular step; see ApproximateArc.
func (a *Arc) Approximate(resolution float64) []Point {
	return a.orient(a.sample(resolution))
}

func (a *Arc) sample(resolution float64) []Point {
	return ApproximateArc(a.A, a.B, a.C, resolution)
}

// BezierCurve is a cubic Bézier from A to B with control points CP1, CP2.
type BezierCurve struct {
	primitive
	A, B, CP1, CP2 Point
}

// NewBezierCurve creates a cubic Bézier primitive.
func NewBezierCurve(id string, a, b, cp1, cp2 Point) *BezierCurve {
	return &BezierCurve{primitive: primitive{id: id}, A: a, B: b, CP1: cp1, CP2: cp2}
}

// Kind returns KindBezier.
func (b *BezierCurve) Kind() Kind { return KindBezier }

// Approximate returns BezierSamples points; resolution is unused.
func (b *BezierCurve) Approximate(resolution float64) []Point {
	return b.orient(b.sample(resolution))
}

func (b *BezierCurve) sample(float64) []Point {
	return CubicLUT(b.A, b.B, b.CP1, b.CP2, BezierSamples)
}

// EllipticalArc is an arc of the ellipse whose major axis runs from EP1 to
// EP2 and whose semi-minor axis is R, swept counter-clockwise from A to B.
type EllipticalArc struct {
	primitive
	EP1, EP2 Point
	A, B     Point
	R        float64
}

// NewEllipticalArc creates an elliptical arc primitive.
func NewEllipticalArc(id string, ep1, ep2, a, b Point, r float64) *EllipticalArc {
	return &EllipticalArc{primitive: primitive{id: id}, EP1: ep1, EP2: ep2, A: a, B: b, R: r}
}

// Kind returns KindEllipticalArc.
func (e *EllipticalArc) Kind() Kind { return KindEllipticalArc }

// Approximate samples the arc; see ApproximateEllipticalArc.
func (e *EllipticalArc) Approximate(resolution float64) []Point {
	return e.orient(e.sample(resolution))
}

func (e *EllipticalArc) sample(resolution float64) []Point {
	return ApproximateEllipticalArc(e.EP1, e.EP2, e.A, e.B, e.R, resolution)
}

// Circle is a full circle of radius R around C.
type Circle struct {
	primitive
	C Point
	R float64
}

// NewCircle creates a circle primitive.
func NewCircle(id string, c Point, r float64) *Circle {
	return &Circle{primitive: primitive{id: id}, C: c, R: r}
}

// Kind returns KindCircle.
func (c *Circle) Kind() Kind { return KindCircle }

// Approximate samples the full circle; see ApproximateCircle.
func (c *Circle) Approximate(resolution float64) []Point {
	return c.orient(c.sample(resolution))
}

func (c *Circle) sample(resolution float64) []Point {
	return ApproximateCircle(c.C, c.R, resolution)
}

// Ellipse is a full ellipse with major axis EP1→EP2 and semi-minor axis R.
type Ellipse struct {
	primitive
	EP1, EP2 Point
	R        float64
}

// NewEllipse creates an ellipse primitive.
func NewEllipse(id string, ep1, ep2 Point, r float64) *Ellipse {
	return &Ellipse{primitive: primitive{id: id}, EP1: ep1, EP2: ep2, R: r}
}

// Kind returns KindEllipse.
func (e *Ellipse) Kind() Kind { return KindEllipse }

// Approximate runs the elliptical arc sampler from EP1 back to EP1.
//
// The sweep between coincident endpoints normalizes to zero rather than a
// full turn, so the result is [EP1, EP1]: closed, but with no interior.
func (e *Ellipse) Approximate(resolution float64) []Point {
	return e.orient(e.sample(resolution))
}

func (e *Ellipse) sample(resolution float64) []Point {
	return ApproximateEllipticalArc(e.EP1, e.EP2, e.EP1, e.EP1, e.R, resolution)
}
