package object

import (
	"math"

	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/internal/validate"
	"github.com/gazed/rayna/math/lin"
	"github.com/gazed/rayna/mesh"
)

// volumetricNormalEps separates the exit search from the entry hit so the
// two don't collapse onto the same surface point.
const volumetricNormalEps = 1e-4

// Volumetric wraps an Object as a homogeneous participating medium with
// density Density: instead of stopping at the wrapped object's surface, a
// ray samples an exponentially-distributed free path inside it and may
// stop at an arbitrary interior point (spec.md §4.6). It is grounded on
// the original source's HomogeneousVolumeObject, generalised per spec to a
// full-interval entry search ("robust to rays already inside the medium"),
// which the original's bounds-reuse version did not guarantee.
type Volumetric struct {
	Inner   Object
	Density float64
}

// NewVolumetric wraps inner as a homogeneous medium of the given density,
// panicking if density is not positive.
func NewVolumetric(inner Object, density float64) Volumetric {
	validate.Positive("volumetric density", density)
	return Volumetric{Inner: inner, Density: density}
}

func (v Volumetric) Intersect(r geom.Ray, iv lin.Interval, src *rng.Source) (Hit, bool) {
	entry, ok := v.Inner.Intersect(r, lin.FullInterval(), src)
	if !ok {
		return Hit{}, false
	}

	exitIv := lin.Interval{Min: entry.Dist + volumetricNormalEps, Max: math.Inf(1)}
	exit, ok := v.Inner.Intersect(r, exitIv, src)
	if !ok {
		return Hit{}, false
	}

	// Clamp the medium span into the caller's interval, so a ray that starts
	// inside the medium samples its free path from its own origin.
	tIn := math.Max(entry.Dist, iv.Min)
	tOut := math.Min(exit.Dist, iv.Max)
	if tOut <= tIn {
		return Hit{}, false
	}

	distInside := tOut - tIn
	hitDist := -(1 / v.Density) * math.Log(src.Float64())
	if hitDist > distInside {
		return Hit{}, false // ray passes all the way through
	}

	dist := tIn + hitDist
	if !iv.Contains(dist) {
		return Hit{}, false
	}

	world := r.At(dist)
	u, vv := src.UV01()
	return Hit{
		Intersection: mesh.Intersection{
			Dist: dist, PosWorld: world, PosLocal: world,
			// Normal/ray-normal/UV are arbitrary inside a homogeneous
			// medium; subsequent shading uses an Isotropic material's
			// uniform scatter, which does not consult the surface normal.
			Normal: src.UnitVector(), RayNormal: src.UnitVector(),
			FrontFace: true, UV: [2]float64{u, vv},
		},
		Material: entry.Material,
	}, true
}

// AABB defers to the wrapped object: the medium occupies the same extent.
func (v Volumetric) AABB() (geom.Aabb, bool) { return v.Inner.AABB() }
