package texture

import (
	"math"

	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/mesh"
)

// WorldChecker alternates between Even and Odd based on a checkerboard
// pattern in world space: floor(pos_world/scale) summed, then taken modulo
// 2 (spec.md §4.5). Grounded on the original source's WorldCheckerTexture,
// adapted to hold its two sub-textures directly rather than behind a
// reference-counted pointer, since Go interface values already share
// whatever they wrap.
type WorldChecker struct {
	Even, Odd Texture
	Scale     float64
}

// NewWorldChecker builds a world-space checker with the given sub-textures
// and cell scale.
func NewWorldChecker(even, odd Texture, scale float64) WorldChecker {
	return WorldChecker{Even: even, Odd: odd, Scale: scale}
}

func (w WorldChecker) Value(hit mesh.Intersection, src *rng.Source) colour.Colour {
	if checkerParity(hit.PosWorld.X, hit.PosWorld.Y, hit.PosWorld.Z, w.Scale) {
		return w.Even.Value(hit, src)
	}
	return w.Odd.Value(hit, src)
}

// UvChecker is WorldChecker's UV-space counterpart: the same floor/sum/mod
// construction applied to the intersection's (u,v) pair instead of its
// world position. The original source has no direct analogue; this
// generalises WorldCheckerTexture's construction to the other coordinate
// space spec.md §4.5 calls out as a distinct variant.
type UvChecker struct {
	Even, Odd Texture
	Scale     float64
}

// NewUvChecker builds a UV-space checker with the given sub-textures and
// cell scale.
func NewUvChecker(even, odd Texture, scale float64) UvChecker {
	return UvChecker{Even: even, Odd: odd, Scale: scale}
}

func (u UvChecker) Value(hit mesh.Intersection, src *rng.Source) colour.Colour {
	if checkerParity(hit.UV[0], hit.UV[1], 0, u.Scale) {
		return u.Even.Value(hit, src)
	}
	return u.Odd.Value(hit, src)
}

func checkerParity(x, y, z, scale float64) bool {
	fx := int64(math.Floor(x / scale))
	fy := int64(math.Floor(y / scale))
	fz := int64(math.Floor(z / scale))
	sum := fx + fy + fz
	if sum < 0 {
		sum = -sum
	}
	return sum%2 == 0
}
