// Package object binds a mesh to a material and an optional affine
// transform, the layer between package mesh's pure geometry and package
// render's integrator (spec.md §4.6). An Object is the thing a scene
// actually contains: package accel's BVH is built over Objects, never over
// bare Meshes, because only here does a hit carry the material the
// renderer needs to shade it.
package object

import (
	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/material"
	"github.com/gazed/rayna/math/lin"
	"github.com/gazed/rayna/mesh"
)

// Hit is the full intersection record an Object returns: the geometric
// record plus the material to shade it with. It satisfies accel.Hit via
// the embedded mesh.Intersection's HitDist, so package accel's generic BVH
// traversal works unmodified over Objects.
type Hit struct {
	mesh.Intersection
	Material material.Material
}

// Object is the capability every scene member satisfies: ray intersection
// (materials attached) plus a possibly-absent bound. src is threaded
// through even though most variants ignore it, because Volumetric needs a
// random sample to place its hit within the medium.
type Object interface {
	Intersect(r geom.Ray, iv lin.Interval, src *rng.Source) (Hit, bool)
	AABB() (geom.Aabb, bool) // ok is false for an object with unbounded extent
}

// Basic is the common case: a mesh, a material, and an optional transform.
// A nil Transform means identity, intersected directly against Mesh with
// no local-space round trip.
type Basic struct {
	Mesh      mesh.Mesh
	Material  material.Material
	Transform *lin.Transform3
}

// New builds an untransformed Basic object.
func New(m mesh.Mesh, mat material.Material) Basic {
	return Basic{Mesh: m, Material: mat}
}

// NewTransformed builds a Basic object with an explicit transform.
func NewTransformed(m mesh.Mesh, mat material.Material, t lin.Transform3) Basic {
	return Basic{Mesh: m, Material: mat, Transform: &t}
}

// NewCorrected builds a Basic object whose transform is adjusted (per
// spec.md §4.6 "Correction") so that t's rotation/scale happens around the
// mesh's own AABB centroid rather than the world origin.
func NewCorrected(m mesh.Mesh, mat material.Material, t lin.Transform3) Basic {
	centre := m.AABB().Centroid()
	corrected := t.CorrectedAround(centre)
	return Basic{Mesh: m, Material: mat, Transform: &corrected}
}

func (o Basic) Intersect(r geom.Ray, iv lin.Interval, _ *rng.Source) (Hit, bool) {
	if o.Transform == nil {
		m, ok := o.Mesh.Intersect(r, iv)
		if !ok {
			return Hit{}, false
		}
		return Hit{Intersection: m, Material: o.Material}, true
	}

	inv := o.Transform.Inverse()
	localDir, ok := inv.MapVector(r.Dir).Unit()
	if !ok {
		return Hit{}, false
	}
	localRay := geom.NewRay(inv.MapPoint(r.Origin), localDir)

	m, ok := o.Mesh.Intersect(localRay, iv)
	if !ok {
		return Hit{}, false
	}

	// m.PosWorld is the hit point in the mesh-local space we just cast
	// into, so it is what gets lifted forward, not m.PosLocal (which is
	// the mesh's own shape-intrinsic coordinate, e.g. a point on a unit
	// sphere, and is carried through unchanged).
	worldPos := o.Transform.MapPoint(m.PosWorld)
	dist := worldPos.Sub(r.Origin).Len()

	normal, ok := o.Transform.MapNormal(m.Normal).Unit()
	if !ok {
		return Hit{}, false
	}
	rayNormal, frontFace := faceNormal(r.Dir, normal)

	return Hit{
		Intersection: mesh.Intersection{
			Dist: dist, PosWorld: worldPos, PosLocal: m.PosLocal,
			Normal: normal, RayNormal: rayNormal, FrontFace: frontFace,
			UV: m.UV, Face: m.Face,
		},
		Material: o.Material,
	}, true
}

func (o Basic) AABB() (geom.Aabb, bool) {
	meshBox := o.Mesh.AABB()
	if meshBox.IsInfinite() {
		return geom.Aabb{}, false
	}
	if o.Transform == nil {
		return meshBox, true
	}
	corners := []lin.Point3{
		{X: meshBox.Min.X, Y: meshBox.Min.Y, Z: meshBox.Min.Z},
		{X: meshBox.Max.X, Y: meshBox.Min.Y, Z: meshBox.Min.Z},
		{X: meshBox.Min.X, Y: meshBox.Max.Y, Z: meshBox.Min.Z},
		{X: meshBox.Max.X, Y: meshBox.Max.Y, Z: meshBox.Min.Z},
		{X: meshBox.Min.X, Y: meshBox.Min.Y, Z: meshBox.Max.Z},
		{X: meshBox.Max.X, Y: meshBox.Min.Y, Z: meshBox.Max.Z},
		{X: meshBox.Min.X, Y: meshBox.Max.Y, Z: meshBox.Max.Z},
		{X: meshBox.Max.X, Y: meshBox.Max.Y, Z: meshBox.Max.Z},
	}
	box := geom.Empty()
	for _, c := range corners {
		box = box.EncompassPoint(o.Transform.MapPoint(c))
	}
	return box, true
}

// faceNormal mirrors mesh's unexported helper: n flipped to oppose dir, and
// whether it already did.
func faceNormal(dir, n lin.Vector3) (rayNormal lin.Vector3, frontFace bool) {
	if dir.Dot(n) < 0 {
		return n, true
	}
	return n.Neg(), false
}
