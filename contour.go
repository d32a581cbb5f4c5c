package sketch

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gogpu/sketch/brep"
)

const (
	// TransferResolution is the sampling resolution used when a contour is
	// projected onto a surface.
	TransferResolution = 20

	// probeResolution is the sampling resolution of IsCCW.
	probeResolution = 10
)

// Contour is an ordered, closed chain of primitives. The contour owns its
// primitives; callers must not share a primitive between contours because
// Reverse toggles each primitive's direction in place.
type Contour struct {
	segments []Primitive
}

// NewContour creates a contour from primitives in traversal order.
func NewContour(prims ...Primitive) *Contour {
	c := &Contour{}
	for _, p := range prims {
		c.Add(p)
	}
	return c
}

// Add appends a primitive to the end of the chain.
func (c *Contour) Add(p Primitive) {
	c.segments = append(c.segments, p)
}

// Len returns the number of primitives.
func (c *Contour) Len() int {
	return len(c.segments)
}

// Primitives returns the primitives in traversal order.
// The slice is a copy; the primitives are not.
func (c *Contour) Primitives() []Primitive {
	return slices.Clone(c.segments)
}

// Approximate flattens the contour into one polyline. Each primitive's last
// point is dropped because it coincides with the next primitive's first
// point; for the final primitive it coincides with the contour start.
func (c *Contour) Approximate(resolution float64) []Point {
	var out []Point
	for _, s := range c.segments {
		pts := s.Approximate(resolution)
		if len(pts) > 0 {
			out = append(out, pts[:len(pts)-1]...)
		}
	}
	return out
}

// Reverse reverses the primitive order and inverts every primitive, so
// the same loop is traversed in the opposite rotational sense.
func (c *Contour) Reverse() {
	slices.Reverse(c.segments)
	for _, s := range c.segments {
		s.Invert()
	}
}

// IsCCW flattens the contour at a small fixed resolution and lifts it onto
// the surface. It does not decide orientation yet: the result is the
// projected probe polyline that a winding test would consume.
func (c *Contour) IsCCW(s Surface) []r3.Vec {
	tr := s.Embedding()
	depth := s.Depth()
	pts := c.Approximate(probeResolution)
	out := make([]r3.Vec, len(pts))
	for i, p := range pts {
		out[i] = tr.Apply(r3.Vec{X: p.X, Y: p.Y, Z: depth})
	}
	return out
}

// TransferOption configures TransferOnSurface.
type TransferOption func(*transferOptions)

type transferOptions struct {
	tr2d func(Point) Point
	tr3d Transform3D
}

// WithTransform2D applies m to sketch points before they are lifted.
func WithTransform2D(m Matrix) TransferOption {
	return func(o *transferOptions) {
		o.tr2d = m.TransformPoint
	}
}

// WithTransform2DFunc applies f to sketch points before they are lifted.
func WithTransform2DFunc(f func(Point) Point) TransferOption {
	return func(o *transferOptions) {
		o.tr2d = f
	}
}

// WithTransform3D applies t to model-space points after the surface embedding.
func WithTransform3D(t Transform3D) TransferOption {
	return func(o *transferOptions) {
		o.tr3d = t
	}
}

// TransferOnSurface projects the contour onto s and returns its BREP edges
// in traversal order.
//
// Every primitive is sampled at TransferResolution and each sample goes
// through the optional 2D transform, gets the surface depth as z, goes
// through the surface embedding and finally the optional 3D transform.
// An Arc becomes a single edge backed by a brep.ApproxCurve of all its
// samples; any other primitive becomes one brep.Line edge per consecutive
// sample pair, tagged with the primitive as provenance.
//
// The closing vertex of the last primitive is replaced by the start vertex
// of the first edge, so the loop closes exactly regardless of rounding in
// the transforms. Non-finite vertices, and primitives whose samples all
// coincide, are rejected with a *DegenerateGeometryError.
func (c *Contour) TransferOnSurface(s Surface, opts ...TransferOption) ([]brep.Edge, error) {
	if len(c.segments) == 0 {
		return nil, ErrEmptyContour
	}

	var o transferOptions
	for _, opt := range opts {
		opt(&o)
	}

	embed := s.Embedding()
	depth := s.Depth()
	tr := func(p Point) r3.Vec {
		if o.tr2d != nil {
			p = o.tr2d(p)
		}
		v := embed.Apply(r3.Vec{X: p.X, Y: p.Y, Z: depth})
		if o.tr3d != nil {
			v = o.tr3d.Apply(v)
		}
		return v
	}

	var (
		edges   []brep.Edge
		prev    r3.Vec
		hasPrev bool
		last    = len(c.segments) - 1
	)
	for segIdx, seg := range c.segments {
		approx := seg.Approximate(TransferResolution)
		n := len(approx)
		if n < 2 {
			return nil, &InvalidAngleRangeError{PrimitiveID: seg.ID(), Samples: n}
		}

		if err := checkFinite2D(seg, approx); err != nil {
			return nil, err
		}
		samples := make([]r3.Vec, n)
		for i, p := range approx {
			samples[i] = tr(p)
		}
		if err := checkSpan(seg, samples); err != nil {
			return nil, err
		}
		if !hasPrev {
			prev, hasPrev = samples[0], true
		}
		if segIdx == last && len(edges) > 0 {
			samples[n-1] = edges[0].Start
		}
		if err := checkFinite(seg, samples); err != nil {
			return nil, err
		}

		if seg.Kind() == KindArc {
			if segIdx == last && len(edges) == 0 {
				samples[n-1] = samples[0]
			}
			edges = append(edges, brep.NewEdge(samples[0], samples[n-1], brep.NewApproxCurve(samples, seg), seg))
			prev = samples[n-1]
			continue
		}

		for i := 1; i < n; i++ {
			curr := samples[i]
			if segIdx == last && i == n-1 {
				if len(edges) > 0 {
					curr = edges[0].Start
				} else {
					curr = prev
				}
			}
			edges = append(edges, brep.NewEdge(prev, curr, brep.LineFromSegment(prev, curr), seg))
			prev = curr
		}
	}

	Logger().Debug("contour transferred",
		slog.Int("primitives", len(c.segments)),
		slog.Int("edges", len(edges)))
	return edges, nil
}

// checkFinite2D rejects non-finite sketch samples before they are lifted.
func checkFinite2D(seg Primitive, pts []Point) error {
	for _, p := range pts {
		if !p.IsFinite() {
			return nonFinite(seg, "non-finite sketch point")
		}
	}
	return nil
}

// checkFinite rejects samples that would corrupt the BREP topology.
func checkFinite(seg Primitive, samples []r3.Vec) error {
	for _, v := range samples {
		if !IsFinite3(v) {
			return nonFinite(seg, "non-finite vertex after surface transfer")
		}
	}
	return nil
}

func nonFinite(seg Primitive, reason string) error {
	Logger().Warn("non-finite vertex rejected",
		slog.String("primitive", seg.ID()),
		slog.String("kind", seg.Kind().String()))
	return &DegenerateGeometryError{
		PrimitiveID: seg.ID(),
		Reason:      reason,
		Err:         ErrNonFinite,
	}
}

// checkSpan rejects a primitive whose samples all land on one vertex,
// which would only yield zero-length edges.
func checkSpan(seg Primitive, samples []r3.Vec) error {
	for _, v := range samples[1:] {
		if v != samples[0] {
			return nil
		}
	}
	Logger().Warn("zero-length primitive rejected",
		slog.String("primitive", seg.ID()),
		slog.String("kind", seg.Kind().String()))
	return &DegenerateGeometryError{
		PrimitiveID: seg.ID(),
		Reason:      "coincident points",
		Err:         ErrCoincident,
	}
}
