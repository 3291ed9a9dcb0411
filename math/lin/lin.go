// Package lin provides the linear math library the renderer is built on:
// vectors/points, angles, 4x4 affine transforms, and some utility functions.
// These are called from the inner sampling loop so they favour value
// semantics over hidden allocation surprises: every operation returns a new
// value rather than mutating a shared receiver, which keeps the per-row
// render workers (see package render) free to share geometry read-only
// without needing to clone scratch vectors per goroutine.
//
// Package lin is provided as part of the rayna path tracer.
package lin

// Design Notes:
//
// 1) Scalars are float64 throughout, per the data model: only colour
//    channels are float32.
//
// 2) Vector3 doubles as Point3 (see vector.go) since both are 3 floats and
//    the operations that matter (difference, affine transform) apply to
//    both in the same way. This mirrors how the rest of the retrieved
//    raytracer code in this space (df07/go-progressive-raytracer) treats
//    points and vectors identically.

import "math"

// Various linear math constants.
const (

	// PI and its commonly needed varients.
	PI     float64 = math.Pi
	PIx2   float64 = PI * 2
	HalfPi float64 = PIx2 * 0.25
	DegRad float64 = PIx2 / 360.0 // X degrees * DEG_RAD = Y radians
	RadDeg float64 = 360.0 / PIx2 // Y radians * RAD_DEG = X degrees

	// Convenience numbers.
	Large float64 = math.MaxFloat32
	Sqrt2 float64 = math.Sqrt2
	Sqrt3 float64 = 1.73205

	// Epsilon is used to distinguish when a float is close enough to a number.
	// Wikipedia: "In set theory epsilon is the limit ordinal of the sequence..."
	Epsilon float64 = 0.000001
)

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * DegRad }

// Deg converts radians to degrees.
func Deg(rad float64) float64 { return rad * RadDeg }

// AeqZ (~=) almost-equals returns true if the difference between x and zero
// is so small that it doesn't matter.
func AeqZ(x float64) bool { return math.Abs(x) < Epsilon }

// Aeq (~=) almost-equals returns true if the difference between a and b is
// so small that it doesn't matter.
func Aeq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// Lerp returns the linear interpolation of a to b by the given ratio.
func Lerp(a, b, ratio float64) float64 { return (b-a)*ratio + a }

// Max3 returns the largest of the 3 numbers.
func Max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

// Min3 returns the smallest of the 3 numbers.
func Min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }

// Clamp returns a scalar value (one of: s, lb, ub) guaranteed to be within
// the range given by lower bound lb and upper bound ub.
func Clamp(s, lb, ub float64) float64 {
	switch {
	case s < lb:
		return lb
	case s > ub:
		return ub
	}
	return s
}

// Nang (normalize angle) ensures a rotation angle in radians is within the
// range [-PI, PI] (2PI*radians is 360 degrees).
func Nang(radians float64) float64 {
	radians = math.Mod(radians, PIx2)
	switch {
	case radians < -PI:
		return radians + PIx2
	case radians > PI:
		return radians - PIx2
	}
	return radians
}

// MaxAxis returns the index (0=x, 1=y, 2=z) of the largest of the 3 values,
// ties broken towards the lower index (x over y over z). Used to pick the
// BVH split axis from an AABB's per-axis extent.
func MaxAxis(x, y, z float64) int {
	axis, best := 0, x
	if y > best {
		axis, best = 1, y
	}
	if z > best {
		axis = 2
	}
	return axis
}
