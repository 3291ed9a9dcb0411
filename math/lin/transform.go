package lin

import (
	"errors"
	"math"
)

// ErrSingularTransform is returned when a transform's linear part has no
// inverse (zero determinant) — e.g. a zero scale factor on some axis.
var ErrSingularTransform = errors.New("lin: transform has no inverse")

// mat3 is a 3x3 matrix stored row-major. It is the linear (rotation+scale)
// part of a Transform3; unexported because nothing outside this file needs
// to build one directly — use the Transform3 constructors instead.
type mat3 [3][3]float64

func mat3Identity() mat3 {
	return mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func (m mat3) apply(v Vector3) Vector3 {
	return Vector3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

func (m mat3) mult(o mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// cof returns the cofactor of m at (row, col): the determinant of the 2x2
// minor with the sign of (-1)^(row+col). Mirrors the teacher's M3.Cof/Det/
// Adj/Inv cofactor-expansion idiom, just value-returning.
func (m mat3) cof(row, col int) float64 {
	r0, r1 := (row+1)%3, (row+2)%3
	c0, c1 := (col+1)%3, (col+2)%3
	det := m[r0][c0]*m[r1][c1] - m[r0][c1]*m[r1][c0]
	if (row+col)%2 != 0 {
		det = -det
	}
	return det
}

func (m mat3) det() float64 {
	return m[0][0]*m.cof(0, 0) + m[0][1]*m.cof(0, 1) + m[0][2]*m.cof(0, 2)
}

// invert returns the inverse of m via the classical adjugate/determinant
// method. ok is false if m is singular.
func (m mat3) invert() (mat3, bool) {
	det := m.det()
	if AeqZ(det) {
		return mat3{}, false
	}
	invDet := 1 / det
	var adj mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			adj[j][i] = m.cof(i, j) // adjugate is the transpose of the cofactor matrix.
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			adj[i][j] *= invDet
		}
	}
	return adj, true
}

func (m mat3) transpose() mat3 {
	return mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Transform3 is an immutable 4x4 affine transform: a 3x3 linear part (the
// top-left block of the 4x4) plus a translation (the last column), with its
// inverse cached at construction per the data model ("inverse = matrix
// inverse, cached at construction").
type Transform3 struct {
	linear    mat3
	translate Vector3
	invLinear mat3
	invTrans  Vector3
}

// Identity3 is the identity transform.
func Identity3() Transform3 {
	return Transform3{linear: mat3Identity(), invLinear: mat3Identity()}
}

// NewTransform3 builds a transform from an explicit linear part and
// translation, computing and caching its inverse. It returns
// ErrSingularTransform if the linear part has no inverse.
func NewTransform3(linear [3][3]float64, translate Vector3) (Transform3, error) {
	lm := mat3(linear)
	inv, ok := lm.invert()
	if !ok {
		return Transform3{}, ErrSingularTransform
	}
	return Transform3{
		linear:    lm,
		translate: translate,
		invLinear: inv,
		invTrans:  inv.apply(translate.Neg()),
	}, nil
}

// Translate3 returns a pure translation transform.
func Translate3(v Vector3) Transform3 {
	return Transform3{linear: mat3Identity(), translate: v, invLinear: mat3Identity(), invTrans: v.Neg()}
}

// Scale3 returns a non-uniform scale transform about the origin. Panics if
// any axis scale is zero — a degenerate, non-invertible mesh transform is a
// construction-time error, not a silently-accepted one (see §7).
func Scale3(s Vector3) Transform3 {
	if s.X == 0 || s.Y == 0 || s.Z == 0 {
		panic("lin: Scale3 with a zero axis is not invertible")
	}
	lin := mat3{{s.X, 0, 0}, {0, s.Y, 0}, {0, 0, s.Z}}
	inv := mat3{{1 / s.X, 0, 0}, {0, 1 / s.Y, 0}, {0, 0, 1 / s.Z}}
	return Transform3{linear: lin, invLinear: inv}
}

// RotateAxisAngle3 returns a rotation transform about the given axis by the
// given angle (right-hand rule), via Rodrigues' rotation formula. The axis
// is normalised internally; a zero-length axis yields the identity.
func RotateAxisAngle3(axis Vector3, angle Angle) Transform3 {
	u, ok := axis.Unit()
	if !ok {
		return Identity3()
	}
	s, c := math.Sin(angle.Radians()), math.Cos(angle.Radians())
	t := 1 - c
	x, y, z := u.X, u.Y, u.Z
	lin := mat3{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c},
	}
	return Transform3{linear: lin, invLinear: lin.transpose()} // rotation matrices are orthonormal.
}

// Mult returns the composite transform t∘o: applying the result to a point
// is the same as applying o first, then t.
func (t Transform3) Mult(o Transform3) Transform3 {
	return Transform3{
		linear:    t.linear.mult(o.linear),
		translate: t.linear.apply(o.translate).Add(t.translate),
		invLinear: o.invLinear.mult(t.invLinear),
		invTrans:  o.invLinear.apply(t.invTrans).Add(o.invTrans),
	}
}

// CorrectedAround returns t adjusted so that rotation/scale happens around
// center instead of the origin: translate(center) ∘ t ∘ translate(-center).
// The mesh's own center is therefore a fixed point of the correction: first
// shift center to the origin, apply t, then shift back.
func (t Transform3) CorrectedAround(center Point3) Transform3 {
	return Translate3(center).Mult(t).Mult(Translate3(center.Neg()))
}

// MapPoint applies the forward transform to a point.
func (t Transform3) MapPoint(p Point3) Point3 { return t.linear.apply(p).Add(t.translate) }

// MapVector applies just the linear part of the transform (no translation),
// appropriate for directions.
func (t Transform3) MapVector(v Vector3) Vector3 { return t.linear.apply(v) }

// MapNormal applies the transform to a normal vector. Normals transform by
// the inverse-transpose of the linear part (not the linear part itself) so
// that they stay perpendicular to the surface under non-uniform scale.
func (t Transform3) MapNormal(n Vector3) Vector3 { return t.invLinear.transpose().apply(n) }

// Inverse returns the cached inverse transform.
func (t Transform3) Inverse() Transform3 {
	return Transform3{linear: t.invLinear, translate: t.invTrans, invLinear: t.linear, invTrans: t.translate}
}
