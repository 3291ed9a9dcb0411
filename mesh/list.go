package mesh

import (
	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/math/lin"
)

// List delegates intersection to a fixed set of enclosed meshes, returning
// the closest hit; its AABB is the union of its members' (or Infinite if
// any member's is).
type List struct {
	Meshes []Mesh
	bounds geom.Aabb
}

// NewList builds a List and precomputes its AABB union.
func NewList(meshes ...Mesh) List {
	bounds := geom.Empty()
	for _, m := range meshes {
		bounds = bounds.Encompass(m.AABB())
	}
	return List{Meshes: meshes, bounds: bounds}
}

func (l List) Intersect(r geom.Ray, iv lin.Interval) (Intersection, bool) {
	best, hit := Intersection{}, false
	for _, m := range l.Meshes {
		if h, ok := m.Intersect(r, iv); ok {
			best, hit = h, true
			iv = iv.Shrink(h.Dist)
		}
	}
	return best, hit
}

func (l List) AABB() geom.Aabb { return l.bounds }
