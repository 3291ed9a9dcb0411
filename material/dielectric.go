package material

import (
	"math"

	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/math/lin"
	"github.com/gazed/rayna/mesh"
)

// Dielectric is a refractive material (glass, water, ...) that either
// refracts or reflects each incoming ray, chosen between total internal
// reflection and Schlick's approximation to the Fresnel reflectance
// (spec.md §4.5).
type Dielectric struct {
	Albedo          colour.Colour
	RefractiveIndex float64
}

// NewDielectric builds a Dielectric material with the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(albedo colour.Colour, ior float64) Dielectric {
	return Dielectric{Albedo: albedo, RefractiveIndex: ior}
}

func (m Dielectric) Scatter(r geom.Ray, hit mesh.Intersection, src *rng.Source) (lin.Vector3, bool) {
	etaRatio := m.RefractiveIndex
	if hit.FrontFace {
		etaRatio = 1.0 / m.RefractiveIndex
	}

	cosTheta := math.Max(math.Min(-r.Dir.Dot(hit.RayNormal), 1), -1)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	totalInternalReflection := etaRatio*sinTheta > 1
	schlickReflect := reflectance(cosTheta, etaRatio) > src.Float64()

	if totalInternalReflection || schlickReflect {
		return lin.Reflect(r.Dir, hit.RayNormal), true
	}
	dir, ok := lin.Refract(r.Dir, hit.RayNormal, etaRatio)
	if !ok {
		return lin.Reflect(r.Dir, hit.RayNormal), true
	}
	return dir, true
}

func (m Dielectric) Shade(_ mesh.Intersection, _ *rng.Source, incoming colour.Colour) colour.Colour {
	return incoming.Mul(m.Albedo)
}

// reflectance is Schlick's approximation to the Fresnel reflectance at the
// interface between two media.
func reflectance(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
