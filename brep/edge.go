package brep

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Provenance identifies the sketch element an edge was derived from.
type Provenance interface {
	ID() string
}

// Curve is the geometry underlying an edge.
type Curve interface {
	// Start returns the first point of the curve.
	Start() r3.Vec

	// End returns the last point of the curve.
	End() r3.Vec

	// Points returns the curve as a polyline, endpoints included.
	Points() []r3.Vec

	// Length returns the arc length of the polyline.
	Length() float64
}

// Line is a straight 3D segment.
type Line struct {
	P0, P1 r3.Vec
}

// LineFromSegment creates the line through a and b.
func LineFromSegment(a, b r3.Vec) Line {
	return Line{P0: a, P1: b}
}

// Start returns the first endpoint.
func (l Line) Start() r3.Vec { return l.P0 }

// End returns the second endpoint.
func (l Line) End() r3.Vec { return l.P1 }

// Points returns both endpoints.
func (l Line) Points() []r3.Vec { return []r3.Vec{l.P0, l.P1} }

// Length returns the distance between the endpoints.
func (l Line) Length() float64 { return r3.Norm(r3.Sub(l.P1, l.P0)) }

// ApproxCurve is a curve known only through its samples, used for arcs
// whose analytic 3D form is not reconstructed.
type ApproxCurve struct {
	Samples []r3.Vec
	Source  Provenance
}

// NewApproxCurve wraps a sample run. The slice is retained, not copied.
func NewApproxCurve(samples []r3.Vec, source Provenance) *ApproxCurve {
	return &ApproxCurve{Samples: samples, Source: source}
}

// Start returns the first sample.
func (c *ApproxCurve) Start() r3.Vec { return c.Samples[0] }

// End returns the last sample.
func (c *ApproxCurve) End() r3.Vec { return c.Samples[len(c.Samples)-1] }

// Points returns the samples without copying them.
func (c *ApproxCurve) Points() []r3.Vec { return c.Samples }

// Length returns the length of the sample polyline.
func (c *ApproxCurve) Length() float64 {
	var l float64
	for i := 1; i < len(c.Samples); i++ {
		l += r3.Norm(r3.Sub(c.Samples[i], c.Samples[i-1]))
	}
	return l
}

// Edge is a trimmed curve bounded by Start and End.
// Source is nil when the edge has no recorded origin.
type Edge struct {
	Start, End r3.Vec
	Curve      Curve
	Source     Provenance
}

// NewEdge creates an edge.
func NewEdge(start, end r3.Vec, curve Curve, source Provenance) Edge {
	return Edge{Start: start, End: end, Curve: curve, Source: source}
}

// SourceID returns the provenance id, or "" when there is none.
func (e Edge) SourceID() string {
	if e.Source == nil {
		return ""
	}
	return e.Source.ID()
}

// Reversed returns the edge traversed from End to Start.
func (e Edge) Reversed() Edge {
	var curve Curve
	switch c := e.Curve.(type) {
	case Line:
		curve = Line{P0: c.P1, P1: c.P0}
	case *ApproxCurve:
		samples := make([]r3.Vec, len(c.Samples))
		for i, p := range c.Samples {
			samples[len(samples)-1-i] = p
		}
		curve = &ApproxCurve{Samples: samples, Source: c.Source}
	default:
		curve = e.Curve
	}
	return Edge{Start: e.End, End: e.Start, Curve: curve, Source: e.Source}
}

// IsFinite reports whether every coordinate of v is finite.
func IsFinite(v r3.Vec) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
