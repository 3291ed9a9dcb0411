package material

import (
	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/math/lin"
	"github.com/gazed/rayna/mesh"
)

// Lambertian is a diffuse material: scatter direction is the surface
// normal biased by a random unit vector, giving a cos(theta) distribution
// (spec.md §4.5).
type Lambertian struct {
	Albedo colour.Colour
}

// NewLambertian builds a Lambertian material with the given albedo.
func NewLambertian(albedo colour.Colour) Lambertian { return Lambertian{Albedo: albedo} }

func (m Lambertian) Scatter(_ geom.Ray, hit mesh.Intersection, src *rng.Source) (lin.Vector3, bool) {
	dir := hit.Normal.Add(src.UnitVector()).UnitOr(hit.Normal)
	return dir, true
}

func (m Lambertian) Shade(_ mesh.Intersection, _ *rng.Source, incoming colour.Colour) colour.Colour {
	return incoming.Mul(m.Albedo)
}
