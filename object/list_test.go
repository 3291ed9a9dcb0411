package object

import (
	"testing"

	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/material"
	"github.com/gazed/rayna/math/lin"
	"github.com/gazed/rayna/mesh"
)

func lambertianSphere(centre lin.Point3, radius float64) Basic {
	return New(mesh.NewSphere(centre, radius), material.NewLambertian(colour.New(0.5, 0.5, 0.5)))
}

func TestListPicksNearestBoundedHit(t *testing.T) {
	near := lambertianSphere(lin.Point3{X: 0, Y: 0, Z: -2}, 1)
	far := lambertianSphere(lin.Point3{X: 0, Y: 0, Z: -10}, 1)
	list := NewList(near, far)

	r := geom.NewRay(lin.Point3{}, lin.Vector3{X: 0, Y: 0, Z: -1})
	src := rng.New(1)
	hit, ok := list.Intersect(r, lin.PosInterval(1e-4), src)
	if !ok {
		t.Fatal("expected a hit")
	}
	if want := 1.0; hit.Dist != want {
		t.Fatalf("Dist = %v, want %v (nearest sphere, not farthest)", hit.Dist, want)
	}
}

func TestListBoundedVsUnboundedNearestWins(t *testing.T) {
	sphere := lambertianSphere(lin.Point3{X: 0, Y: 0, Z: -2}, 1)
	plane := New(
		mesh.NewPlane(lin.Point3{X: 0, Y: 0, Z: -20}, lin.Vector3{X: 1}, lin.Vector3{Y: 1}, mesh.WrapRepeat, mesh.WrapRepeat),
		material.NewLambertian(colour.New(1, 1, 1)),
	)
	list := NewList(sphere, plane)

	r := geom.NewRay(lin.Point3{}, lin.Vector3{X: 0, Y: 0, Z: -1})
	src := rng.New(1)
	hit, ok := list.Intersect(r, lin.PosInterval(1e-4), src)
	if !ok {
		t.Fatal("expected a hit")
	}
	if want := 1.0; hit.Dist != want {
		t.Fatalf("Dist = %v, want %v (bounded sphere nearer than unbounded plane)", hit.Dist, want)
	}

	// Aim past the sphere: only the plane should be hit.
	r2 := geom.NewRay(lin.Point3{X: 10, Y: 0, Z: 0}, lin.Vector3{X: 0, Y: 0, Z: -1})
	hit2, ok2 := list.Intersect(r2, lin.PosInterval(1e-4), src)
	if !ok2 {
		t.Fatal("expected the unbounded plane to be hit")
	}
	if want := 20.0; hit2.Dist != want {
		t.Fatalf("Dist = %v, want %v", hit2.Dist, want)
	}
}

func TestListAABBUnboundedIfAnyMemberUnbounded(t *testing.T) {
	sphere := lambertianSphere(lin.Point3{}, 1)
	plane := New(
		mesh.NewPlane(lin.Point3{}, lin.Vector3{X: 1}, lin.Vector3{Y: 1}, mesh.WrapRepeat, mesh.WrapRepeat),
		material.NewLambertian(colour.New(1, 1, 1)),
	)

	boundedOnly := NewList(sphere)
	if _, ok := boundedOnly.AABB(); !ok {
		t.Fatal("list of only bounded objects should report a finite AABB")
	}

	mixed := NewList(sphere, plane)
	if _, ok := mixed.AABB(); ok {
		t.Fatal("list containing an unbounded object should report AABB ok=false")
	}
}

func TestListMiss(t *testing.T) {
	sphere := lambertianSphere(lin.Point3{X: 0, Y: 0, Z: -5}, 1)
	list := NewList(sphere)
	r := geom.NewRay(lin.Point3{}, lin.Vector3{X: 1, Y: 0, Z: 0})
	if _, ok := list.Intersect(r, lin.PosInterval(1e-4), rng.New(1)); ok {
		t.Fatal("ray missing every object should not hit")
	}
}
