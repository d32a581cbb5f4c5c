package sketch

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gogpu/sketch/brep"
)

func square() *Contour {
	return NewContour(
		NewSegment("s1", Pt(0, 0), Pt(10, 0)),
		NewSegment("s2", Pt(10, 0), Pt(10, 10)),
		NewSegment("s3", Pt(10, 10), Pt(0, 10)),
		NewSegment("s4", Pt(0, 10), Pt(0, 0)),
	)
}

// slot is a segment closed by a half circle.
func slot() *Contour {
	return NewContour(
		NewSegment("base", Pt(-1, 0), Pt(1, 0)),
		NewArc("cap", Pt(1, 0), Pt(-1, 0), Pt(0, 0)),
	)
}

func ids(c *Contour) []string {
	var out []string
	for _, p := range c.Primitives() {
		out = append(out, p.ID())
	}
	return out
}

func TestContour_AddAndLen(t *testing.T) {
	c := NewContour()
	assert.Equal(t, 0, c.Len())
	c.Add(NewSegment("a", Pt(0, 0), Pt(1, 0)))
	c.Add(NewSegment("b", Pt(1, 0), Pt(0, 0)))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"a", "b"}, ids(c))
}

func TestContour_Approximate_DropsJoins(t *testing.T) {
	pts := square().Approximate(20)
	assert.Equal(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}, pts)
}

func TestContour_Approximate_WithArc(t *testing.T) {
	c := slot()
	arc := c.Primitives()[1].Approximate(20)
	pts := c.Approximate(20)

	require.Len(t, pts, 1+len(arc)-1)
	assert.Equal(t, Pt(-1, 0), pts[0])
	assert.Equal(t, Pt(1, 0), pts[1])
	assert.NotContains(t, pts[2:], Pt(-1, 0))
}

func TestContour_ReverseIsInvolution(t *testing.T) {
	c := slot()
	c.Primitives()[0].Invert()
	before := ids(c)
	flags := []bool{c.Primitives()[0].Inverted(), c.Primitives()[1].Inverted()}

	c.Reverse()
	assert.Equal(t, []string{"cap", "base"}, ids(c))
	assert.False(t, c.Primitives()[1].Inverted())
	assert.True(t, c.Primitives()[0].Inverted())

	c.Reverse()
	assert.Equal(t, before, ids(c))
	assert.Equal(t, flags, []bool{c.Primitives()[0].Inverted(), c.Primitives()[1].Inverted()})
}

func TestContour_ReverseTraversesBackwards(t *testing.T) {
	c := square()
	c.Reverse()
	pts := c.Approximate(20)
	assert.Equal(t, []Point{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}, pts)
}

func TestTransferOnSurface_Square(t *testing.T) {
	edges, err := square().TransferOnSurface(XYPlane(2))
	require.NoError(t, err)
	require.Len(t, edges, 4)

	want := []r3.Vec{{Z: 2}, {X: 10, Z: 2}, {X: 10, Y: 10, Z: 2}, {Y: 10, Z: 2}}
	assert.Equal(t, want, brep.Vertices(edges))
	assert.Equal(t, edges[0].Start, edges[3].End)
	for i, e := range edges {
		assert.IsType(t, brep.Line{}, e.Curve)
		assert.Equal(t, []string{"s1", "s2", "s3", "s4"}[i], e.SourceID())
	}
	assert.NoError(t, brep.CheckLoop(edges, 0))
}

func TestTransferOnSurface_ArcIsSingleApproxEdge(t *testing.T) {
	edges, err := slot().TransferOnSurface(XYPlane(0))
	require.NoError(t, err)
	require.Len(t, edges, 2)

	assert.IsType(t, brep.Line{}, edges[0].Curve)
	arc, ok := edges[1].Curve.(*brep.ApproxCurve)
	require.True(t, ok)
	assert.Len(t, arc.Samples, 21)
	assert.Equal(t, "cap", arc.Source.ID())
	assert.Equal(t, "cap", edges[1].SourceID())

	assert.Equal(t, edges[0].End, edges[1].Start)
	assert.Equal(t, edges[0].Start, edges[1].End)
	assert.Equal(t, edges[1].End, arc.End())
	for _, p := range arc.Samples {
		assert.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1e-12)
		assert.GreaterOrEqual(t, p.Y, -1e-12)
	}
	assert.NoError(t, brep.CheckLoop(edges, 0))
}

func TestTransferOnSurface_SegmentAfterArc(t *testing.T) {
	c := NewContour(
		NewArc("cap", Pt(1, 0), Pt(-1, 0), Pt(0, 0)),
		NewSegment("base", Pt(-1, 0), Pt(1, 0)),
	)
	edges, err := c.TransferOnSurface(XYPlane(0))
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, r3.Vec{X: -1}, edges[1].Start)
	assert.Equal(t, edges[0].Start, edges[1].End)
}

func TestTransferOnSurface_CircleCloses(t *testing.T) {
	c := NewContour(NewCircle("c", Pt(1, 1), 3))
	edges, err := c.TransferOnSurface(XYPlane(-1))
	require.NoError(t, err)
	require.Len(t, edges, 39)
	assert.Equal(t, edges[0].Start, edges[len(edges)-1].End)
	assert.Equal(t, r3.Vec{X: 4, Y: 1, Z: -1}, edges[0].Start)
	assert.NoError(t, brep.CheckLoop(edges, 0))
}

func TestTransferOnSurface_ClosureDespiteDrift(t *testing.T) {
	rot := Rotate3(0.3, r3.Vec{X: 1, Y: 1, Z: 1})
	surface := PlaneSurface{Origin: r3.Vec{X: 0.1, Y: 0.2, Z: 0.3}, U: rot.Apply(r3.Vec{X: 1}), V: rot.Apply(r3.Vec{Y: 1}), W: 0.7}

	c := NewContour(
		NewSegment("a", Pt(0.1, 0.1), Pt(3.3, 0.1)),
		NewBezierCurve("b", Pt(3.3, 0.1), Pt(3.3, 2.9), Pt(4.4, 1), Pt(4.4, 2)),
		NewArc("c", Pt(3.3, 2.9), Pt(0.1, 2.9), Pt(1.7, 2.9)),
		NewSegment("d", Pt(0.1, 2.9), Pt(0.1, 0.1)),
	)
	edges, err := c.TransferOnSurface(surface,
		WithTransform2D(Rotate(0.4)),
		WithTransform3D(Translate3(r3.Vec{X: 1e3, Y: -1e3, Z: 0.001})))
	require.NoError(t, err)
	assert.Equal(t, edges[0].Start, edges[len(edges)-1].End)
	assert.NoError(t, brep.CheckLoop(edges, 1e-9))
}

func TestTransferOnSurface_Transforms(t *testing.T) {
	c := NewContour(
		NewSegment("a", Pt(0, 0), Pt(1, 0)),
		NewSegment("b", Pt(1, 0), Pt(0, 0)),
	)
	edges, err := c.TransferOnSurface(XYPlane(0),
		WithTransform2DFunc(func(p Point) Point { return p.Add(Pt(5, 0)) }),
		WithTransform3D(Transform3DFunc(func(v r3.Vec) r3.Vec { return r3.Add(v, r3.Vec{Z: 2}) })))
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{X: 5, Z: 2}, edges[0].Start)
	assert.Equal(t, r3.Vec{X: 6, Z: 2}, edges[0].End)
}

func TestTransferOnSurface_PlaneEmbedding(t *testing.T) {
	s := PlaneSurface{U: r3.Vec{Y: 1}, V: r3.Vec{Z: 1}, W: 3}
	c := NewContour(
		NewSegment("a", Pt(1, 2), Pt(4, 2)),
		NewSegment("b", Pt(4, 2), Pt(1, 2)),
	)
	edges, err := c.TransferOnSurface(s)
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{X: 3, Y: 1, Z: 2}, edges[0].Start)
	assert.Equal(t, r3.Vec{X: 3, Y: 4, Z: 2}, edges[0].End)
}

func TestTransferOnSurface_Empty(t *testing.T) {
	_, err := NewContour().TransferOnSurface(XYPlane(0))
	assert.ErrorIs(t, err, ErrEmptyContour)
}

func TestTransferOnSurface_RejectsNonFinite(t *testing.T) {
	c := NewContour(
		NewSegment("ok", Pt(0, 0), Pt(1, 0)),
		NewSegment("bad", Pt(1, 0), Pt(math.Inf(1), 1)),
		NewSegment("back", Pt(math.Inf(1), 1), Pt(0, 0)),
	)
	_, err := c.TransferOnSurface(XYPlane(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonFinite)

	var dge *DegenerateGeometryError
	require.True(t, errors.As(err, &dge))
	assert.Equal(t, "bad", dge.PrimitiveID)
}

func TestTransferOnSurface_ReversedCloses(t *testing.T) {
	c := slot()
	c.Reverse()
	edges, err := c.TransferOnSurface(XYPlane(0))
	require.NoError(t, err)
	assert.Equal(t, edges[0].Start, edges[len(edges)-1].End)
	assert.Equal(t, r3.Vec{X: -1}, edges[0].Start)
}

func TestIsCCW_ReturnsProjectedProbe(t *testing.T) {
	pts := square().IsCCW(XYPlane(1))
	assert.Equal(t, []r3.Vec{{Z: 1}, {X: 10, Z: 1}, {X: 10, Y: 10, Z: 1}, {Y: 10, Z: 1}}, pts)
}

func TestTransferOnSurface_SingleArcCloses(t *testing.T) {
	c := NewContour(NewArc("q", Pt(1, 0), Pt(0, 1), Pt(0, 0)))
	edges, err := c.TransferOnSurface(XYPlane(0))
	require.NoError(t, err)
	require.Len(t, edges, 1)

	e := edges[0]
	assert.Equal(t, r3.Vec{X: 1}, e.Start)
	assert.Equal(t, e.Start, e.End)

	curve, ok := e.Curve.(*brep.ApproxCurve)
	require.True(t, ok)
	require.Len(t, curve.Samples, 11)
	assert.Equal(t, curve.Samples[0], curve.Samples[len(curve.Samples)-1])
	assert.Equal(t, "q", e.SourceID())
}

func TestTransferOnSurface_RejectsCoincidentPrimitive(t *testing.T) {
	tests := []struct {
		name string
		c    *Contour
		id   string
	}{
		{"ellipse alone", NewContour(NewEllipse("e", Pt(-4, 0), Pt(4, 0), 2)), "e"},
		{"ellipse in loop", NewContour(
			NewSegment("s1", Pt(-4, 0), Pt(4, 0)),
			NewEllipse("e", Pt(4, 0), Pt(-4, 0), 2),
			NewSegment("s2", Pt(4, 0), Pt(-4, 0)),
		), "e"},
		{"zero radius circle", NewContour(NewCircle("c", Pt(2, 2), 0)), "c"},
		{"collapsed elliptical arc", NewContour(
			NewEllipticalArc("ea", Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1), 1),
		), "ea"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edges, err := tt.c.TransferOnSurface(XYPlane(0))
			assert.Nil(t, edges)
			require.ErrorIs(t, err, ErrCoincident)

			var dge *DegenerateGeometryError
			require.ErrorAs(t, err, &dge)
			assert.Equal(t, tt.id, dge.PrimitiveID)
			assert.Equal(t, "coincident points", dge.Reason)
		})
	}
}

func TestTransferOnSurface_CoincidentAxisEllipticalArc(t *testing.T) {
	c := NewContour(
		NewEllipticalArc("ea", Pt(1, 1), Pt(1, 1), Pt(3, 1), Pt(1, 3), 1),
		NewSegment("s", Pt(1, 3), Pt(3, 1)),
	)
	edges, err := c.TransferOnSurface(XYPlane(0))
	require.NoError(t, err)
	require.Len(t, edges, 2)
	for _, e := range edges {
		assert.Greater(t, e.Curve.Length(), 0.0)
	}
	assert.Equal(t, r3.Vec{X: 3, Y: 1}, edges[0].Start)
	assert.Equal(t, r3.Vec{X: 1, Y: 3}, edges[0].End)
	assert.NoError(t, brep.CheckLoop(edges, 0))
}
