package lin

// Angle is a scalar angle stored in radians. Named so call sites never have
// to guess whether a bare float64 means degrees or radians.
type Angle float64

// Radians constructs an Angle from a radian value.
func Radians(r float64) Angle { return Angle(r) }

// Degrees constructs an Angle from a degree value.
func Degrees(d float64) Angle { return Angle(d * DegRad) }

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return float64(a) * RadDeg }
