package material

import (
	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/math/lin"
	"github.com/gazed/rayna/mesh"
)

// Metal is a reflective material with a fuzz parameter that perturbs the
// mirror reflection by a point in a sphere of radius Fuzz, giving a rough
// rather than perfectly specular surface (spec.md §4.5).
type Metal struct {
	Albedo colour.Colour
	Fuzz   float64
}

// NewMetal builds a Metal material. Fuzz is typically in [0,1]; values
// outside that range are not rejected, a wider fuzz cloud is still a
// well-defined (if unusual) scatter.
func NewMetal(albedo colour.Colour, fuzz float64) Metal { return Metal{Albedo: albedo, Fuzz: fuzz} }

func (m Metal) Scatter(r geom.Ray, hit mesh.Intersection, src *rng.Source) (lin.Vector3, bool) {
	reflected := lin.Reflect(r.Dir, hit.RayNormal)
	fuzzed := reflected.Add(src.InUnitSphere().Scale(m.Fuzz))
	if fuzzed.Dot(hit.RayNormal) <= 0 {
		return lin.Vector3{}, false // scattered beneath the surface, absorb
	}
	return fuzzed.UnitOr(hit.RayNormal), true
}

func (m Metal) Shade(_ mesh.Intersection, _ *rng.Source, incoming colour.Colour) colour.Colour {
	return incoming.Mul(m.Albedo)
}
