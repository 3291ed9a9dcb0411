package mesh

import (
	"math"

	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/internal/validate"
	"github.com/gazed/rayna/math/lin"
)

// Sphere is a sphere centred at Centre with radius Radius.
type Sphere struct {
	Centre lin.Point3
	Radius float64
}

// NewSphere builds a sphere, panicking if radius is not positive.
func NewSphere(centre lin.Point3, radius float64) Sphere {
	validate.Positive("sphere radius", radius)
	return Sphere{Centre: centre, Radius: radius}
}

// Intersect solves |o + t*d - c|^2 = r^2 for the nearest root in iv.
func (s Sphere) Intersect(r geom.Ray, iv lin.Interval) (Intersection, bool) {
	oc := r.Origin.Sub(s.Centre)
	a := r.Dir.Dot(r.Dir)
	halfB := oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Intersection{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if !iv.Contains(root) {
		root = (-halfB + sqrtD) / a
		if !iv.Contains(root) {
			return Intersection{}, false
		}
	}

	world := r.At(root)
	local := world.Sub(s.Centre).Scale(1 / s.Radius)
	rayNormal, frontFace := faceNormal(r.Dir, local)
	u, v := sphereUV(local)
	return Intersection{
		Dist:      root,
		PosWorld:  world,
		PosLocal:  local,
		Normal:    local,
		RayNormal: rayNormal,
		FrontFace: frontFace,
		UV:        [2]float64{u, v},
	}, true
}

// AABB returns the sphere's axis-aligned bound, a cube of side 2r centred
// on the sphere.
func (s Sphere) AABB() geom.Aabb {
	r := lin.Vector3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return geom.Aabb{Min: s.Centre.Sub(r), Max: s.Centre.Add(r)}
}

// sphereUV converts a point on the unit sphere (centred at the origin) to
// spherical UV coordinates: u wraps around the equator, v runs pole to pole.
func sphereUV(p lin.Vector3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
