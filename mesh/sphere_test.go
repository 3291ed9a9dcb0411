package mesh

import (
	"math"
	"testing"

	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/math/lin"
)

func TestSphereIntersectThroughCentre(t *testing.T) {
	s := NewSphere(lin.Point3{X: 0, Y: 0, Z: -5}, 1)
	r := geom.NewRay(lin.Point3{}, lin.Vector3{X: 0, Y: 0, Z: -1})

	hit, ok := s.Intersect(r, lin.PosInterval(1e-4))
	if !ok {
		t.Fatal("expected a hit along a ray through the sphere's centre")
	}
	if want := 4.0; math.Abs(hit.Dist-want) > 1e-9 {
		t.Fatalf("Dist = %v, want %v", hit.Dist, want)
	}
	if lenSq := hit.Normal.Dot(hit.Normal); math.Abs(lenSq-1) > 1e-9 {
		t.Fatalf("Normal is not unit length: %v", lenSq)
	}
	if !hit.FrontFace {
		t.Fatal("ray hitting the near side should be front-facing")
	}
}

func TestSphereIntersectMiss(t *testing.T) {
	s := NewSphere(lin.Point3{X: 0, Y: 0, Z: -5}, 1)
	r := geom.NewRay(lin.Point3{}, lin.Vector3{X: 1, Y: 0, Z: 0})
	if _, ok := s.Intersect(r, lin.PosInterval(1e-4)); ok {
		t.Fatal("ray parallel to and offset from the sphere should miss")
	}
}

func TestSphereIntersectBehindOrigin(t *testing.T) {
	s := NewSphere(lin.Point3{X: 0, Y: 0, Z: 5}, 1)
	r := geom.NewRay(lin.Point3{}, lin.Vector3{X: 0, Y: 0, Z: -1})
	if _, ok := s.Intersect(r, lin.PosInterval(1e-4)); ok {
		t.Fatal("sphere entirely behind the ray origin should not be hit")
	}
}

func TestSphereAABB(t *testing.T) {
	s := NewSphere(lin.Point3{X: 1, Y: 2, Z: 3}, 2)
	box := s.AABB()
	want := geom.Aabb{Min: lin.Point3{X: -1, Y: 0, Z: 1}, Max: lin.Point3{X: 3, Y: 4, Z: 5}}
	if box.Min != want.Min || box.Max != want.Max {
		t.Fatalf("AABB() = %v, want %v", box, want)
	}
}

func TestSphereUVWrapsWithinUnitSquare(t *testing.T) {
	s := NewSphere(lin.Point3{}, 1)
	dirs := []lin.Vector3{
		{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0}, {X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: -1},
	}
	for _, d := range dirs {
		r := geom.NewRay(d.Scale(5), d.Neg())
		hit, ok := s.Intersect(r, lin.PosInterval(1e-4))
		if !ok {
			t.Fatalf("ray along %v should hit the sphere", d)
		}
		u, v := hit.UV[0], hit.UV[1]
		if u < 0 || u > 1 || v < 0 || v > 1 {
			t.Fatalf("UV(%v) = (%v,%v), want within [0,1]^2", d, u, v)
		}
	}
}

func TestSphereNewPanicsOnNonPositiveRadius(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewSphere(radius<=0) should panic")
		}
	}()
	NewSphere(lin.Point3{}, 0)
}
