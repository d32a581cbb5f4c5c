// Package sketch turns parametric 2D sketch curves into geometry a solid
// modeler can consume.
//
// # Overview
//
// A sketch is made of primitives: Segment, Arc, BezierCurve,
// EllipticalArc, Circle and Ellipse. Each primitive approximates itself
// as an ordered polyline. A Contour chains primitives into one closed
// loop, flattens it, and projects it onto a Surface as BREP edges
// (see package brep).
//
//	c := sketch.NewContour(
//	    sketch.NewSegment("s1", sketch.Pt(0, 0), sketch.Pt(10, 0)),
//	    sketch.NewArc("a1", sketch.Pt(10, 0), sketch.Pt(0, 0), sketch.Pt(5, 0)),
//	)
//	edges, err := c.TransferOnSurface(sketch.XYPlane(0))
//
// Analytic, editable ellipses used for hit-testing and constraint feedback
// live in package shape.
//
// # Sampling
//
// Arcs, elliptical arcs and circles are sampled at a fixed angular step
// of 1/(2π) radians whatever resolution the caller passes. Arc endpoints
// are always reproduced exactly; circles are closed by repeating their
// first point. Sampling never fails: degenerate input yields degenerate
// (possibly non-finite) polylines. Non-finite geometry and primitives
// that collapse to a single vertex are rejected only when edges are built
// by Contour.TransferOnSurface.
//
// # Coordinate System
//
// Angles are in radians, 0 is +X and angles increase counter-clockwise.
// Surfaces lift a sketch point (x, y) to (x, y, depth) before applying
// their embedding transform.
//
// # Concurrency
//
// Primitives and contours are not safe for concurrent mutation. Logging
// (SetLogger) is safe for concurrent use.
package sketch
