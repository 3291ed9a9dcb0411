package accel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/math/lin"
)

// sphereItem is a minimal bounded primitive, just enough to exercise Build
// and Intersect without depending on package mesh.
type sphereItem struct {
	centre lin.Point3
	radius float64
}

type sphereHit struct {
	t float64
}

func (h sphereHit) HitDist() float64 { return h.t }

func sphereAabb(s sphereItem) geom.Aabb {
	r := lin.Vector3{X: s.radius, Y: s.radius, Z: s.radius}
	return geom.Aabb{Min: s.centre.Sub(r), Max: s.centre.Add(r)}
}

func intersectSphere(s sphereItem, r geom.Ray, iv lin.Interval) (sphereHit, bool) {
	oc := r.Origin.Sub(s.centre)
	a := r.Dir.Dot(r.Dir)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.radius*s.radius
	disc := b*b - a*c
	if disc < 0 {
		return sphereHit{}, false
	}
	sq := math.Sqrt(disc)
	t := (-b - sq) / a
	if !iv.Contains(t) {
		t = (-b + sq) / a
		if !iv.Contains(t) {
			return sphereHit{}, false
		}
	}
	return sphereHit{t: t}, true
}

func bruteForce(items []sphereItem, r geom.Ray, iv lin.Interval) (sphereHit, bool) {
	best, hit := sphereHit{}, false
	for _, it := range items {
		if h, ok := intersectSphere(it, r, iv); ok {
			best, hit = h, true
			iv = iv.Shrink(h.HitDist())
		}
	}
	return best, hit
}

func testIntersect(b *BVH[sphereItem], r geom.Ray, iv lin.Interval) (sphereHit, bool) {
	return Intersect(b, r, iv, intersectSphere)
}

// TestBVHMatchesBruteForce builds a BVH over a hundred random spheres and
// checks that a thousand random rays agree with a brute-force linear scan
// over the same spheres, the scale spec.md §8 names for BVH correctness.
func TestBVHMatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	items := make([]sphereItem, 100)
	for i := range items {
		items[i] = sphereItem{
			centre: lin.Point3{X: rnd.Float64()*20 - 10, Y: rnd.Float64()*20 - 10, Z: rnd.Float64()*20 - 10},
			radius: rnd.Float64()*0.5 + 0.1,
		}
	}
	bvh := Build(items, sphereAabb)

	for i := 0; i < 1000; i++ {
		origin := lin.Point3{X: rnd.Float64()*30 - 15, Y: rnd.Float64()*30 - 15, Z: rnd.Float64()*30 - 15}
		dir := lin.Vector3{X: rnd.Float64()*2 - 1, Y: rnd.Float64()*2 - 1, Z: rnd.Float64()*2 - 1}
		dir, ok := dir.Unit()
		if !ok {
			continue
		}
		r := geom.NewRay(origin, dir)
		iv := lin.PosInterval(1e-4)

		want, wantHit := bruteForce(items, r, iv)
		got, gotHit := testIntersect(bvh, r, iv)

		if gotHit != wantHit {
			t.Fatalf("ray %d: hit mismatch, bvh=%v brute=%v", i, gotHit, wantHit)
		}
		if gotHit && math.Abs(got.t-want.t) > 1e-6 {
			t.Fatalf("ray %d: distance mismatch, bvh=%v brute=%v", i, got.t, want.t)
		}
	}
}

func TestBVHBoundsEncompassesAllItems(t *testing.T) {
	items := []sphereItem{
		{centre: lin.Point3{X: -5}, radius: 1},
		{centre: lin.Point3{X: 5}, radius: 1},
		{centre: lin.Point3{Y: 3}, radius: 2},
	}
	bvh := Build(items, sphereAabb)
	bounds := bvh.Bounds()
	for _, it := range items {
		b := sphereAabb(it)
		if bounds.Min.X > b.Min.X || bounds.Min.Y > b.Min.Y || bounds.Min.Z > b.Min.Z ||
			bounds.Max.X < b.Max.X || bounds.Max.Y < b.Max.Y || bounds.Max.Z < b.Max.Z {
			t.Fatalf("bvh bounds %v do not encompass item bounds %v", bounds, b)
		}
	}
	if bvh.Len() != len(items) {
		t.Fatalf("Len() = %d, want %d", bvh.Len(), len(items))
	}
}

func TestBVHEmpty(t *testing.T) {
	bvh := Build([]sphereItem{}, sphereAabb)
	if bounds := bvh.Bounds(); !math.IsInf(bounds.Min.X, 1) || !math.IsInf(bounds.Max.X, -1) {
		t.Fatalf("empty bvh bounds should be geom.Empty(), got %v", bounds)
	}
	if _, ok := testIntersect(bvh, geom.NewRay(lin.Point3{}, lin.Vector3{X: 1}), lin.PosInterval(1e-4)); ok {
		t.Fatal("empty bvh should never report a hit")
	}
}
