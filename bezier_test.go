package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubicLUT_Endpoints(t *testing.T) {
	a, b := Pt(0.1, 0.3), Pt(7.7, -2.9)
	pts := CubicLUT(a, b, Pt(2, 5), Pt(5, -6), BezierSamples)

	require.Len(t, pts, BezierSamples)
	assert.Equal(t, a, pts[0])
	assert.Equal(t, b, pts[len(pts)-1])
}

func TestCubicLUT_MatchesEval(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0))
	pts := CubicLUT(c.P0, c.P3, c.P1, c.P2, BezierSamples)
	for i, p := range pts {
		want := c.Eval(float64(i) / float64(BezierSamples-1))
		assert.True(t, pointsEqual(p, want, 1e-12), "sample %d: %v != %v", i, p, want)
	}
}

func TestCubicLUT_Straight(t *testing.T) {
	pts := CubicLUT(Pt(0, 0), Pt(9, 0), Pt(3, 0), Pt(6, 0), BezierSamples)
	for i, p := range pts {
		assert.InDelta(t, float64(i), p.X, 1e-12)
		assert.Equal(t, 0.0, p.Y)
	}
}

func TestBezierCurve_IgnoresResolution(t *testing.T) {
	b := NewBezierCurve("b", Pt(0, 0), Pt(3, 0), Pt(1, 2), Pt(2, 2))
	assert.Len(t, b.Approximate(1), BezierSamples)
	assert.Equal(t, b.Approximate(1), b.Approximate(100))
}

func TestCubicBez_Eval(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(0, 4), Pt(4, 4), Pt(4, 0))
	assert.True(t, pointsEqual(c.Eval(0.5), Pt(2, 3), epsilon))
	assert.Equal(t, Pt(0, 0), c.Eval(0))
	assert.Equal(t, Pt(4, 0), c.Eval(1))
}
