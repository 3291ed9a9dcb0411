package lin

import "math"

// Vector3 is a 3 element vector, also used to represent points (Point3 is
// an alias: both are 3 scalar coordinates and every operation that matters
// here — difference, dot/cross, affine transform — treats them the same
// way). All operations return a new value; none mutate the receiver.
type Vector3 struct {
	X, Y, Z float64
}

// Point3 is a location in space. It shares Vector3's representation and
// operations; the distinction is purely one of intent at call sites.
type Point3 = Vector3

// Zero is the zero vector / origin point.
var Zero = Vector3{}

// V3 is shorthand for constructing a Vector3 from 3 scalars.
func V3(x, y, z float64) Vector3 { return Vector3{x, y, z} }

// Eq (==) returns true if every element of v equals the corresponding
// element of a, exactly.
func (v Vector3) Eq(a Vector3) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z }

// Aeq (~=) returns true if every element of v is almost-equal to the
// corresponding element of a.
func (v Vector3) Aeq(a Vector3) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z) }

// Add (+) returns v+a.
func (v Vector3) Add(a Vector3) Vector3 { return Vector3{v.X + a.X, v.Y + a.Y, v.Z + a.Z} }

// Sub (-) returns v-a.
func (v Vector3) Sub(a Vector3) Vector3 { return Vector3{v.X - a.X, v.Y - a.Y, v.Z - a.Z} }

// Mul (*) returns the element-wise product of v and a.
func (v Vector3) Mul(a Vector3) Vector3 { return Vector3{v.X * a.X, v.Y * a.Y, v.Z * a.Z} }

// Neg (-v) returns the negation of v.
func (v Vector3) Neg() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Scale (*s) returns v with every element multiplied by s.
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Div (/s) returns v with every element divided by s. v is returned
// unchanged if s is zero.
func (v Vector3) Div(s float64) Vector3 {
	if s == 0 {
		return v
	}
	inv := 1 / s
	return Vector3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Dot returns the dot product of v and a.
func (v Vector3) Dot(a Vector3) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Cross returns the cross product v x a: a vector perpendicular to both.
func (v Vector3) Cross(a Vector3) Vector3 {
	return Vector3{
		v.Y*a.Z - v.Z*a.Y,
		v.Z*a.X - v.X*a.Z,
		v.X*a.Y - v.Y*a.X,
	}
}

// LenSqr returns the squared length of v.
func (v Vector3) LenSqr() float64 { return v.Dot(v) }

// Len returns the length of v.
func (v Vector3) Len() float64 { return math.Sqrt(v.LenSqr()) }

// DistSqr returns the squared distance between points v and a.
func (v Vector3) DistSqr(a Vector3) float64 { return v.Sub(a).LenSqr() }

// Dist returns the distance between points v and a.
func (v Vector3) Dist(a Vector3) float64 { return math.Sqrt(v.DistSqr(a)) }

// Unit returns v normalised to length 1, and whether the normalisation
// succeeded (false if v is the zero vector, in which case v is returned
// unchanged).
func (v Vector3) Unit() (Vector3, bool) {
	l := v.Len()
	if l == 0 {
		return v, false
	}
	return v.Div(l), true
}

// UnitOr returns v normalised to length 1, or fallback if v has zero length.
func (v Vector3) UnitOr(fallback Vector3) Vector3 {
	u, ok := v.Unit()
	if !ok {
		return fallback
	}
	return u
}

// Recip returns the element-wise reciprocal of v. Components of v that are
// zero produce ±Inf, matching IEEE 754 division by zero — this is relied
// on by Ray's inverse-direction slab test.
func (v Vector3) Recip() Vector3 { return Vector3{1 / v.X, 1 / v.Y, 1 / v.Z} }

// Abs returns the element-wise absolute value of v.
func (v Vector3) Abs() Vector3 { return Vector3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)} }

// Min returns the element-wise minimum of v and a.
func (v Vector3) Min(a Vector3) Vector3 {
	return Vector3{math.Min(v.X, a.X), math.Min(v.Y, a.Y), math.Min(v.Z, a.Z)}
}

// Max returns the element-wise maximum of v and a.
func (v Vector3) Max(a Vector3) Vector3 {
	return Vector3{math.Max(v.X, a.X), math.Max(v.Y, a.Y), math.Max(v.Z, a.Z)}
}

// MinComponent returns the smallest of v's 3 elements.
func (v Vector3) MinComponent() float64 { return math.Min(v.X, math.Min(v.Y, v.Z)) }

// MaxComponent returns the largest of v's 3 elements.
func (v Vector3) MaxComponent() float64 { return math.Max(v.X, math.Max(v.Y, v.Z)) }

// Lerp returns the linear interpolation between v and b at fraction t:
// v + (b-v)*t.
func (v Vector3) Lerp(b Vector3, t float64) Vector3 {
	return Vector3{Lerp(v.X, b.X, t), Lerp(v.Y, b.Y, t), Lerp(v.Z, b.Z, t)}
}

// Reflect returns d reflected about normal n: d - 2*(d.n)*n.
func Reflect(d, n Vector3) Vector3 { return d.Sub(n.Scale(2 * d.Dot(n))) }

// Refract bends incident unit direction d through a surface with outward
// unit normal n and relative refractive index eta (incident-over-exit), per
// Snell's law. ok is false when the angle exceeds the critical angle for
// total internal reflection, in which case the returned vector is the zero
// vector and the caller should reflect instead.
func Refract(d, n Vector3, eta float64) (t Vector3, ok bool) {
	cosTheta := math.Max(math.Min(-d.Dot(n), 1), -1)
	sin2Theta := 1 - cosTheta*cosTheta
	if eta*eta*sin2Theta > 1 {
		return Vector3{}, false
	}
	perp := d.Add(n.Scale(cosTheta)).Scale(eta)
	parallel := n.Scale(-math.Sqrt(math.Abs(1 - perp.LenSqr())))
	return perp.Add(parallel), true
}
