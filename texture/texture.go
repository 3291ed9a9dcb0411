// Package texture implements the closed set of colour-lookup variants a
// material's albedo/emission can be driven by: a flat Solid colour, an
// Image sampled by UV, UvChecker and WorldChecker procedural patterns, and
// a Dynamic shared-handle escape hatch for callers that need a texture
// built outside this package's variant set (spec.md §4.5, §9).
package texture

import (
	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/mesh"
)

// Texture is the capability every variant satisfies: a colour lookup at an
// intersection, given a per-worker RNG (only Dynamic implementations that
// wrap noise or other stochastic sources need it; the built-in variants
// ignore it).
type Texture interface {
	Value(hit mesh.Intersection, src *rng.Source) colour.Colour
}

// ErrorColour is returned by a texture when a lookup is out of range (e.g.
// an Image sample whose UV falls outside [0,1); no wrap or clamp is
// applied), a visible magenta rather
// than a silent black or a panic.
var ErrorColour = colour.Colour{R: 1, G: 0, B: 1}
