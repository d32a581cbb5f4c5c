package sketch

import (
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform3D maps a point in 3D space to another point.
type Transform3D interface {
	Apply(p r3.Vec) r3.Vec
}

// Transform3DFunc adapts a function to the Transform3D interface.
type Transform3DFunc func(r3.Vec) r3.Vec

// Apply calls f(p).
func (f Transform3DFunc) Apply(p r3.Vec) r3.Vec { return f(p) }

// Surface is the parametric surface a sketch lives on. Sketch points are
// lifted to (x, y, Depth()) and then mapped into model space by Embedding.
type Surface interface {
	Depth() float64
	Embedding() Transform3D
}

// Affine3 is a 3D affine transform stored as a row-major homogeneous
// 4x4 matrix. The last row is expected to be (0, 0, 0, 1).
type Affine3 f64.Mat4

// IdentityAffine3 returns the identity transform.
func IdentityAffine3() Affine3 {
	return Affine3{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate3 returns a translation by v.
func Translate3(v r3.Vec) Affine3 {
	return Affine3{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

// Rotate3 returns a right-handed rotation by angle radians about axis.
func Rotate3(angle float64, axis r3.Vec) Affine3 {
	rot := r3.NewRotation(angle, axis)
	return Basis3(
		rot.Rotate(r3.Vec{X: 1}),
		rot.Rotate(r3.Vec{Y: 1}),
		rot.Rotate(r3.Vec{Z: 1}),
		r3.Vec{},
	)
}

// Basis3 returns the transform whose columns are u, v, n and whose
// translation is origin: (x, y, z) maps to origin + x*u + y*v + z*n.
func Basis3(u, v, n, origin r3.Vec) Affine3 {
	return Affine3{
		u.X, v.X, n.X, origin.X,
		u.Y, v.Y, n.Y, origin.Y,
		u.Z, v.Z, n.Z, origin.Z,
		0, 0, 0, 1,
	}
}

// Apply transforms p.
func (m Affine3) Apply(p r3.Vec) r3.Vec {
	return r3.Vec{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		Z: m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

// Multiply returns m * other, i.e. other is applied first.
func (m Affine3) Multiply(other Affine3) Affine3 {
	var out Affine3
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[r*4+k] * other[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return out
}

// PlaneSurface is a flat surface spanned by U and V through Origin.
// The depth direction is U×V, so a right-handed (U, V) keeps sketch
// counter-clockwise loops counter-clockwise when seen from the normal.
type PlaneSurface struct {
	Origin r3.Vec
	U, V   r3.Vec
	W      float64
}

// XYPlane returns the world XY plane with the given depth.
func XYPlane(w float64) PlaneSurface {
	return PlaneSurface{U: r3.Vec{X: 1}, V: r3.Vec{Y: 1}, W: w}
}

// Depth returns W.
func (s PlaneSurface) Depth() float64 { return s.W }

// Normal returns U×V.
func (s PlaneSurface) Normal() r3.Vec { return r3.Cross(s.U, s.V) }

// Embedding returns the sketch-to-model transform of the plane.
func (s PlaneSurface) Embedding() Transform3D {
	return Basis3(s.U, s.V, s.Normal(), s.Origin)
}

// IsFinite3 reports whether every coordinate of v is finite.
func IsFinite3(v r3.Vec) bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}
