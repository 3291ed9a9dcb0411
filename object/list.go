package object

import (
	"github.com/gazed/rayna/accel"
	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/math/lin"
)

// List is the top-level scene object: a BVH of bounded objects plus a
// parallel slice of unbounded ones (infinite planes, ray-marched
// isosurfaces), combined per spec.md §4.4 "Combined scene intersection" —
// BVH first, then each unbounded object, keeping the nearest overall. It
// satisfies Object itself, so a scene's root is just another Object and
// package render never special-cases it.
type List struct {
	all        []Object
	bvh        *accel.BVH[Object]
	unbounded  []Object
	bounds     geom.Aabb
	allBounded bool
}

// NewList partitions objs into the BVH-eligible (finite AABB) set and the
// unbounded set, and builds the BVH once over the former.
func NewList(objs ...Object) List {
	var bounded, unbounded []Object
	bounds := geom.Empty()
	allBounded := true
	for _, o := range objs {
		if box, ok := o.AABB(); ok {
			bounded = append(bounded, o)
			bounds = bounds.Encompass(box)
		} else {
			unbounded = append(unbounded, o)
			allBounded = false
		}
	}
	bvh := accel.Build(bounded, func(o Object) geom.Aabb {
		box, _ := o.AABB()
		return box
	})
	return List{all: objs, bvh: bvh, unbounded: unbounded, bounds: bounds, allBounded: allBounded}
}

func (l List) Intersect(r geom.Ray, iv lin.Interval, src *rng.Source) (Hit, bool) {
	best, hit := accel.Intersect(l.bvh, r, iv, func(o Object, r geom.Ray, iv lin.Interval) (Hit, bool) {
		return o.Intersect(r, iv, src)
	})
	if hit {
		iv = iv.Shrink(best.Dist)
	}
	for _, o := range l.unbounded {
		if h, ok := o.Intersect(r, iv, src); ok {
			best, hit = h, true
			iv = iv.Shrink(h.Dist)
		}
	}
	return best, hit
}

// AABB returns the union of every bounded member, or ok=false if any member
// of the list is unbounded (matching spec.md §3's "infinite if the mesh
// AABB is infinite" carried up to a list containing such a member).
func (l List) AABB() (geom.Aabb, bool) {
	if !l.allBounded {
		return geom.Aabb{}, false
	}
	return l.bounds, true
}

// Objects returns every object the list was built from, in insertion
// order, regardless of BVH/unbounded partitioning — used by brute-force
// equivalence tests (spec.md §8 invariant 4) and scene introspection.
func (l List) Objects() []Object { return l.all }

// Len returns how many objects are in the BVH-eligible set (for tests and
// diagnostics, spec.md §8 invariant 9).
func (l List) Len() int { return l.bvh.Len() }
