// Package mesh implements ray-primitive intersection for the closed set of
// mesh variants the renderer supports: Sphere, AxisBox, the planar family
// (Plane, Parallelogram, Triangle), Cylinder, Polygonised and Raymarched
// isosurfaces, and List. Every variant satisfies Mesh.
package mesh

import (
	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/math/lin"
)

// Intersection is the geometric record a mesh intersect returns on a hit.
// Pos/normal are in whatever space the mesh was intersected in; package
// object lifts these to world space when a transform is present.
type Intersection struct {
	Dist      float64
	PosWorld  lin.Point3
	PosLocal  lin.Point3
	Normal    lin.Vector3 // outward surface normal, unit length
	RayNormal lin.Vector3 // normal flipped to oppose ray.Dir: RayNormal.Dot(ray.Dir) <= 0
	FrontFace bool
	UV        [2]float64
	Face      int
}

// HitDist satisfies accel.Hit so a Polygonised isosurface's internal BVH
// (over Triangle) can reuse package accel's generic traversal.
func (i Intersection) HitDist() float64 { return i.Dist }

// Mesh is the shape interface every primitive and composite geometry
// satisfies: ray intersection plus a bounding box (possibly infinite, for
// planes and ray-marched surfaces, which object.List excludes from the
// BVH and tests via the "unbounded" list instead).
type Mesh interface {
	Intersect(r geom.Ray, iv lin.Interval) (Intersection, bool)
	AABB() geom.Aabb
}

// faceNormal returns n, or -n if it does not already oppose dir, along with
// whether the original n was front-facing (i.e. already opposing dir). This
// is the front_face/ray_normal computation every primitive needs.
func faceNormal(dir, n lin.Vector3) (rayNormal lin.Vector3, frontFace bool) {
	if dir.Dot(n) < 0 {
		return n, true
	}
	return n.Neg(), false
}
