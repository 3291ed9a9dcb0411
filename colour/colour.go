// Package colour provides the linear-RGB radiance colour used throughout
// the renderer and the 2D image buffer it is accumulated into.
//
// Channels are float32 per the data model (§3: "colour channels 32-bit
// floats"), so arithmetic goes through github.com/chewxy/math32 rather than
// the stdlib math package: math32's functions operate on float32 directly,
// avoiding a float64 round-trip on every sample in the hot path.
package colour

import "github.com/chewxy/math32"

// Colour is a 3-channel (RGB) linear radiance value. Unbounded HDR values
// are allowed; channels are only clamped to [0,1] on the way out to an LDR
// image format (see ToSRGB8).
type Colour struct {
	R, G, B float32
}

// Black, White and Grey are commonly used constants.
var (
	Black = Colour{}
	White = Colour{1, 1, 1}
	Grey  = Colour{0.5, 0.5, 0.5}
)

// New constructs a Colour from float64 components, the common case when
// values come from the float64 math/lin package.
func New(r, g, b float64) Colour { return Colour{float32(r), float32(g), float32(b)} }

// Add (+) returns c+o, channel-wise.
func (c Colour) Add(o Colour) Colour { return Colour{c.R + o.R, c.G + o.G, c.B + o.B} }

// Sub (-) returns c-o, channel-wise.
func (c Colour) Sub(o Colour) Colour { return Colour{c.R - o.R, c.G - o.G, c.B - o.B} }

// Mul (×) returns the channel-wise (Hadamard) product of c and o, the way
// attenuation/albedo is applied to incoming radiance.
func (c Colour) Mul(o Colour) Colour { return Colour{c.R * o.R, c.G * o.G, c.B * o.B} }

// Div (÷) returns the channel-wise quotient of c and o.
func (c Colour) Div(o Colour) Colour { return Colour{c.R / o.R, c.G / o.G, c.B / o.B} }

// Mod (%) returns the channel-wise remainder of c and o.
func (c Colour) Mod(o Colour) Colour {
	return Colour{math32.Mod(c.R, o.R), math32.Mod(c.G, o.G), math32.Mod(c.B, o.B)}
}

// Scale multiplies every channel by s.
func (c Colour) Scale(s float32) Colour { return Colour{c.R * s, c.G * s, c.B * s} }

// Abs returns the channel-wise absolute value.
func (c Colour) Abs() Colour { return Colour{math32.Abs(c.R), math32.Abs(c.G), math32.Abs(c.B)} }

// Sqrt returns the channel-wise square root.
func (c Colour) Sqrt() Colour { return Colour{math32.Sqrt(c.R), math32.Sqrt(c.G), math32.Sqrt(c.B)} }

// Recip returns the channel-wise reciprocal.
func (c Colour) Recip() Colour { return Colour{1 / c.R, 1 / c.G, 1 / c.B} }

// Min returns the channel-wise minimum of c and o.
func (c Colour) Min(o Colour) Colour {
	return Colour{math32.Min(c.R, o.R), math32.Min(c.G, o.G), math32.Min(c.B, o.B)}
}

// Max returns the channel-wise maximum of c and o.
func (c Colour) Max(o Colour) Colour {
	return Colour{math32.Max(c.R, o.R), math32.Max(c.G, o.G), math32.Max(c.B, o.B)}
}

// Clamp returns c with every channel clamped to [lo, hi].
func (c Colour) Clamp(lo, hi float32) Colour {
	clamp1 := func(v float32) float32 {
		switch {
		case v < lo:
			return lo
		case v > hi:
			return hi
		}
		return v
	}
	return Colour{clamp1(c.R), clamp1(c.G), clamp1(c.B)}
}

// Floor returns the channel-wise floor.
func (c Colour) Floor() Colour { return Colour{math32.Floor(c.R), math32.Floor(c.G), math32.Floor(c.B)} }

// Ceil returns the channel-wise ceiling.
func (c Colour) Ceil() Colour { return Colour{math32.Ceil(c.R), math32.Ceil(c.G), math32.Ceil(c.B)} }

// Exp returns the channel-wise e^c.
func (c Colour) Exp() Colour { return Colour{math32.Exp(c.R), math32.Exp(c.G), math32.Exp(c.B)} }

// Powf returns the channel-wise c^p for a float exponent.
func (c Colour) Powf(p float32) Colour {
	return Colour{math32.Pow(c.R, p), math32.Pow(c.G, p), math32.Pow(c.B, p)}
}

// Powi returns the channel-wise c^n for an integer exponent, computed by
// repeated squaring to avoid a float32<->float64 round trip through Pow.
func (c Colour) Powi(n int) Colour {
	if n < 0 {
		return c.Powi(-n).Recip()
	}
	result := Colour{1, 1, 1}
	base := c
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// Lerp returns the linear interpolation c + (o-c)*t.
func (c Colour) Lerp(o Colour, t float32) Colour { return c.Add(o.Sub(c).Scale(t)) }

// Eq (==) returns true if every channel matches exactly.
func (c Colour) Eq(o Colour) bool { return c.R == o.R && c.G == o.G && c.B == o.B }

// Luminance returns the perceptual (Rec. 709) luminance of c, used by the
// renderer only for diagnostics (e.g. convergence statistics), never in the
// radiance math itself.
func (c Colour) Luminance() float32 { return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B }

// ToSRGB8 applies the output transform specified in §6: c ← c^(1/2.2),
// clamped into [0,1], then scaled to [0,255]. This is the only place
// gamma enters the pipeline; every other Colour method stays in linear
// space.
func (c Colour) ToSRGB8() (r, g, b uint8) {
	conv := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		g := math32.Pow(v, 1/2.2)
		if g > 1 {
			g = 1
		}
		return uint8(g*255 + 0.5)
	}
	return conv(c.R), conv(c.G), conv(c.B)
}
