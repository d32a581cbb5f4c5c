package sketch

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func TestPoint_Arithmetic(t *testing.T) {
	tests := []struct {
		name   string
		got    Point
		expect Point
	}{
		{"add", Pt(1, 2).Add(Pt(3, 4)), Pt(4, 6)},
		{"sub", Pt(1, 2).Sub(Pt(3, 5)), Pt(-2, -3)},
		{"mul", Pt(1, -2).Mul(3), Pt(3, -6)},
		{"div", Pt(3, -6).Div(3), Pt(1, -2)},
		{"lerp half", Pt(0, 0).Lerp(Pt(10, 4), 0.5), Pt(5, 2)},
		{"normalize", Pt(3, 4).Normalize(), Pt(0.6, 0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !pointsEqual(tt.got, tt.expect, epsilon) {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestPoint_Scalars(t *testing.T) {
	tests := []struct {
		name   string
		got    float64
		expect float64
	}{
		{"length", Pt(3, 4).Length(), 5},
		{"distance", Pt(1, 1).Distance(Pt(4, 5)), 5},
		{"angle +y", Pt(0, 2).Angle(), math.Pi / 2},
		{"angle -x", Pt(-1, 0).Angle(), math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.expect) > epsilon {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestPoint_IsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("Pt(1, 2) should be finite")
	}
	if Pt(math.NaN(), 0).IsFinite() {
		t.Error("NaN point should not be finite")
	}
	if Pt(0, math.Inf(1)).IsFinite() {
		t.Error("Inf point should not be finite")
	}
}

func TestPoint_NormalizeZero(t *testing.T) {
	if n := Pt(0, 0).Normalize(); n.IsFinite() {
		t.Errorf("Normalize of zero vector = %v, want NaN components", n)
	}
}
