package geom

import (
	"math"

	"github.com/gazed/rayna/math/lin"
)

// Aabb is an axis-aligned bounding box, the unit the BVH in package accel
// culls against. An empty box (no points encompassed yet) uses +Inf/-Inf
// sentinels so that Encompass/EncompassPoints work as a fold starting from
// Empty() with no special-casing of the first point.
type Aabb struct {
	Min, Max lin.Point3
}

// Empty returns the additive identity for Encompass: a box that contains
// nothing and whose bounds shrink to any point/box merged into it.
func Empty() Aabb {
	inf := math.Inf(1)
	return Aabb{Min: lin.Point3{X: inf, Y: inf, Z: inf}, Max: lin.Point3{X: -inf, Y: -inf, Z: -inf}}
}

// Infinite returns the bound used by meshes with no finite extent (an
// infinite Plane, a Raymarched isosurface): it spans all of space, so
// object.List keeps such objects out of its BVH and tests them via the
// parallel unbounded list instead (see IsInfinite).
func Infinite() Aabb {
	inf := math.Inf(1)
	return Aabb{Min: lin.Point3{X: -inf, Y: -inf, Z: -inf}, Max: lin.Point3{X: inf, Y: inf, Z: inf}}
}

// IsInfinite reports whether a is unbounded: true if any axis has Min at
// -Inf or Max at +Inf. The Empty sentinel is not infinite.
func (a Aabb) IsInfinite() bool {
	return math.IsInf(a.Min.X, -1) || math.IsInf(a.Max.X, 1) ||
		math.IsInf(a.Min.Y, -1) || math.IsInf(a.Max.Y, 1) ||
		math.IsInf(a.Min.Z, -1) || math.IsInf(a.Max.Z, 1)
}

// Encompass returns the smallest box containing both a and o.
func (a Aabb) Encompass(o Aabb) Aabb {
	return Aabb{Min: a.Min.Min(o.Min), Max: a.Max.Max(o.Max)}
}

// EncompassPoint returns the smallest box containing a and p.
func (a Aabb) EncompassPoint(p lin.Point3) Aabb {
	return Aabb{Min: a.Min.Min(p), Max: a.Max.Max(p)}
}

// EncompassPoints folds EncompassPoint over every point in pts.
func (a Aabb) EncompassPoints(pts []lin.Point3) Aabb {
	for _, p := range pts {
		a = a.EncompassPoint(p)
	}
	return a
}

// MinPadded returns a copy of a with every degenerate (zero-thickness) axis
// padded to at least 2*eps thick. Flat primitives (an axis-aligned
// Parallelogram, a Plane clipped to a quad) would otherwise produce a
// zero-volume box that some slab-test implementations mishandle at exactly
// grazing rays; padding keeps the BVH's "is this axis degenerate" logic out
// of the hot intersection path.
func (a Aabb) MinPadded(eps float64) Aabb {
	pad := func(lo, hi float64) (float64, float64) {
		if hi-lo < 2*eps {
			mid := (lo + hi) / 2
			return mid - eps, mid + eps
		}
		return lo, hi
	}
	a.Min.X, a.Max.X = pad(a.Min.X, a.Max.X)
	a.Min.Y, a.Max.Y = pad(a.Min.Y, a.Max.Y)
	a.Min.Z, a.Max.Z = pad(a.Min.Z, a.Max.Z)
	return a
}

// Centroid returns the midpoint of the box, the pivot object.NewCorrected
// rotates and scales a mesh around.
func (a Aabb) Centroid() lin.Point3 { return a.Min.Add(a.Max).Scale(0.5) }

// Extent returns the box's size along each axis.
func (a Aabb) Extent() lin.Vector3 { return a.Max.Sub(a.Min) }

// SurfaceArea returns the box's surface area, the cost term the BVH's SAH
// split chooses between candidate partitions with.
func (a Aabb) SurfaceArea() float64 {
	e := a.Extent()
	if e.X < 0 || e.Y < 0 || e.Z < 0 {
		return 0
	}
	return 2 * (e.X*e.Y + e.Y*e.Z + e.Z*e.X)
}

// Volume returns the box's volume.
func (a Aabb) Volume() float64 {
	e := a.Extent()
	if e.X < 0 || e.Y < 0 || e.Z < 0 {
		return 0
	}
	return e.X * e.Y * e.Z
}

// Hit reports whether ray intersects a within the given parameter interval,
// using the slab method: shrink [tMin,tMax] by the entry/exit t of each
// axis's pair of planes, in precomputed-inverse-direction form so that no
// axis requires a division in the hot loop and a zero direction component
// degrades to ±Inf rather than a div-by-zero panic.
func (a Aabb) Hit(r Ray, iv lin.Interval) bool {
	for axis := 0; axis < 3; axis++ {
		amin, amax, origin, invDir := axisOf(a.Min, axis), axisOf(a.Max, axis), axisOf(r.Origin, axis), axisOf(r.invDir, axis)
		t0 := (amin - origin) * invDir
		t1 := (amax - origin) * invDir
		if invDir < 0 {
			t0, t1 = t1, t0
		}
		if t0 > iv.Min {
			iv.Min = t0
		}
		if t1 < iv.Max {
			iv.Max = t1
		}
		if iv.Max <= iv.Min {
			return false
		}
	}
	return true
}

func axisOf(v lin.Vector3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
