// Package accel implements the bounding-volume hierarchy (BVH) that
// accelerates ray queries over a scene's bounded geometry. It is generic
// over the leaf item type so the same arena/SAH/traversal code serves both
// the top-level object BVH (package object) and the internal triangle BVH
// a Polygonised isosurface builds over its own marching-cubes output
// (package mesh): the BVH itself only ever needs an item's AABB and a
// caller-supplied intersection test, never the item's concrete type.
package accel

import (
	"sort"

	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/math/lin"
)

// Hit is the minimal shape a BVH traversal result must have: a distance
// along the ray, so nested-node traversal can shrink the search interval
// as it finds closer leaves.
type Hit interface {
	HitDist() float64
}

// node is either a leaf (Item >= 0, indexing into the arena's items) or
// internal (Left/Right index into nodes), never both: Item is -1 for an
// internal node. Arena storage with index children, leaves-first, per §4.4
// ("a tree is a root index plus an arena... indices, never
// back-references").
type node struct {
	bounds      geom.Aabb
	left, right int
	item        int
}

// BVH is a bounding-volume hierarchy over a fixed set of items of type T,
// built once (construction is not incremental) and traversed with a
// caller-supplied per-item test.
type BVH[T any] struct {
	items []T
	boxes []geom.Aabb
	nodes []node
	root  int
}

// Build constructs a BVH over items using the surface-area heuristic
// (§4.4): N=1 is a leaf; N=2 is a nested node ordering its two leaves by
// AABB-min along an axis for determinism; otherwise the enclosing AABB's
// largest-extent axis (tie-break x>y>z) is chosen, items are sorted by
// AABB-min along it, and the split index minimising
// k*SA(L_k) + (N-k)*SA(R_k) is recursed on.
func Build[T any](items []T, aabbOf func(T) geom.Aabb) *BVH[T] {
	boxes := make([]geom.Aabb, len(items))
	for i, it := range items {
		boxes[i] = aabbOf(it)
	}
	b := &BVH[T]{items: items, boxes: boxes}
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	if len(idx) > 0 {
		b.root = b.build(idx)
	} else {
		b.root = -1
	}
	return b
}

func (b *BVH[T]) build(idx []int) int {
	switch len(idx) {
	case 1:
		n := node{bounds: b.boxes[idx[0]], item: idx[0], left: -1, right: -1}
		b.nodes = append(b.nodes, n)
		return len(b.nodes) - 1

	case 2:
		a0, a1 := idx[0], idx[1]
		if b.boxes[a1].Min.X < b.boxes[a0].Min.X {
			a0, a1 = a1, a0
		}
		leftIdx := b.build([]int{a0})
		rightIdx := b.build([]int{a1})
		n := node{
			bounds: b.nodes[leftIdx].bounds.Encompass(b.nodes[rightIdx].bounds),
			left:   leftIdx, right: rightIdx, item: -1,
		}
		b.nodes = append(b.nodes, n)
		return len(b.nodes) - 1

	default:
		enclosing := geom.Empty()
		for _, i := range idx {
			enclosing = enclosing.Encompass(b.boxes[i])
		}
		axis := lin.MaxAxis(enclosing.Extent().X, enclosing.Extent().Y, enclosing.Extent().Z)

		sorted := append([]int(nil), idx...)
		sort.Slice(sorted, func(i, j int) bool {
			return axisMin(b.boxes[sorted[i]], axis) < axisMin(b.boxes[sorted[j]], axis)
		})

		k := sahSplit(sorted, b.boxes)
		leftIdx := b.build(sorted[:k])
		rightIdx := b.build(sorted[k:])
		n := node{
			bounds: b.nodes[leftIdx].bounds.Encompass(b.nodes[rightIdx].bounds),
			left:   leftIdx, right: rightIdx, item: -1,
		}
		b.nodes = append(b.nodes, n)
		return len(b.nodes) - 1
	}
}

// sahSplit chooses the split index k in [1,N-1] minimising
// k*SA(enclosing first k) + (N-k)*SA(enclosing remaining N-k), over items
// already sorted along the chosen axis.
func sahSplit(sorted []int, boxes []geom.Aabb) int {
	n := len(sorted)
	prefix := make([]geom.Aabb, n+1)
	suffix := make([]geom.Aabb, n+1)
	prefix[0] = geom.Empty()
	for i := 0; i < n; i++ {
		prefix[i+1] = prefix[i].Encompass(boxes[sorted[i]])
	}
	suffix[n] = geom.Empty()
	for i := n - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1].Encompass(boxes[sorted[i]])
	}

	bestK, bestCost := 1, float64(0)
	for k := 1; k < n; k++ {
		cost := float64(k)*prefix[k].SurfaceArea() + float64(n-k)*suffix[k].SurfaceArea()
		if k == 1 || cost < bestCost {
			bestK, bestCost = k, cost
		}
	}
	return bestK
}

func axisMin(a geom.Aabb, axis int) float64 {
	switch axis {
	case 0:
		return a.Min.X
	case 1:
		return a.Min.Y
	default:
		return a.Min.Z
	}
}

// Intersect performs depth-first traversal, slab-testing each nested
// node's AABB before recursing and shrinking iv.Max to the nearest hit
// found so far so later siblings are cut aggressively. test is applied
// only at leaves, guarded first by the leaf's own AABB.
func Intersect[T any, R Hit](b *BVH[T], r geom.Ray, iv lin.Interval, test func(T, geom.Ray, lin.Interval) (R, bool)) (R, bool) {
	var zero R
	if b.root < 0 {
		return zero, false
	}
	return intersectNode(b, b.root, r, iv, test)
}

func intersectNode[T any, R Hit](b *BVH[T], n int, r geom.Ray, iv lin.Interval, test func(T, geom.Ray, lin.Interval) (R, bool)) (R, bool) {
	var zero R
	nd := b.nodes[n]
	if !nd.bounds.Hit(r, iv) {
		return zero, false
	}
	if nd.item >= 0 {
		return test(b.items[nd.item], r, iv)
	}

	best, hit := zero, false
	if h, ok := intersectNode(b, nd.left, r, iv, test); ok {
		best, hit = h, true
		iv = iv.Shrink(h.HitDist())
	}
	if h, ok := intersectNode(b, nd.right, r, iv, test); ok {
		best, hit = h, true
	}
	return best, hit
}

// Bounds returns the union AABB of every item in the BVH, or geom.Empty()
// if the BVH has no items.
func (b *BVH[T]) Bounds() geom.Aabb {
	if b.root < 0 {
		return geom.Empty()
	}
	return b.nodes[b.root].bounds
}

// Len returns the number of items in the BVH.
func (b *BVH[T]) Len() int { return len(b.items) }

// Items returns the BVH's items in build order (not traversal order), for
// callers (e.g. brute-force equivalence tests) that need to iterate them
// directly.
func (b *BVH[T]) Items() []T { return b.items }
