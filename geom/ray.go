// Package geom holds the geometric primitives shared by every intersection
// routine: the Ray that is cast into the scene and the Aabb used to prune
// the search with the BVH in package accel.
package geom

import "github.com/gazed/rayna/math/lin"

// Ray is a parametric ray origin + t*dir. Dir is always a unit vector (see
// NewRay), so that the parameter t is a true distance along the ray, the
// convention every intersection routine in this tree assumes.
type Ray struct {
	Origin lin.Point3
	Dir    lin.Vector3

	// invDir is the component-wise reciprocal of Dir, precomputed once per
	// ray since the AABB slab test and the axis-aligned-box intersection
	// both divide by the direction for every axis they test.
	invDir lin.Vector3
}

// NewRay builds a ray from an origin and direction, normalising dir to unit
// length before precomputing invDir. This mirrors the original source's
// default-safe Ray::new (as opposed to its Ray::new_unchecked sibling, which
// this tree has no need for since every caller already has a raw,
// non-unit direction in hand). A zero-length dir degrades to the zero
// vector rather than producing NaNs.
func NewRay(origin lin.Point3, dir lin.Vector3) Ray {
	dir = dir.UnitOr(lin.Vector3{})
	return Ray{Origin: origin, Dir: dir, invDir: dir.Recip()}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) lin.Point3 { return r.Origin.Add(r.Dir.Scale(t)) }

// InvDir returns the precomputed reciprocal direction.
func (r Ray) InvDir() lin.Vector3 { return r.invDir }
