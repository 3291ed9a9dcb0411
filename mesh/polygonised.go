package mesh

import (
	"github.com/gazed/rayna/accel"
	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/math/lin"
)

// tetraDecomposition splits a unit cube (corners ordered as in
// cubeCornerOffset) into six tetrahedra sharing the main diagonal 0-6, the
// standard "6-tetrahedra" cube decomposition.
var tetraDecomposition = [6][4]int{
	{0, 1, 2, 6},
	{0, 2, 3, 6},
	{0, 3, 7, 6},
	{0, 7, 4, 6},
	{0, 4, 5, 6},
	{0, 5, 1, 6},
}

// Polygonised is an isosurface mesh built once, at construction, by sampling
// an SDF on a resolution^3 grid and extracting triangles via marching
// tetrahedra (a cube decomposed into six tetrahedra, each contributing 0-2
// triangles depending on how many corners are inside the surface) — the
// same family of algorithm as marching cubes, named in spec.md §4.3, just
// with a coarser (16-case instead of 256-case) per-cell table that is
// tractable to get right without an external polygoniser. The resulting
// triangles are stored in their own internal BVH.
type Polygonised struct {
	tris  *accel.BVH[Triangle]
	count int
}

// NewPolygonised samples sdf (evaluated in local space [0,1]^3) on a
// resolution^3 grid and extracts its zero level-set. Degenerate triangles
// (duplicate vertices, or a central-difference gradient too small to
// normalise) are discarded rather than kept as NaN geometry.
func NewPolygonised(resolution int, sdf SDF) Polygonised {
	step := 1.0 / float64(resolution)
	gradEps := step * 0.5

	var tris []Triangle
	for i := 0; i < resolution; i++ {
		for j := 0; j < resolution; j++ {
			for k := 0; k < resolution; k++ {
				origin := lin.Point3{X: float64(i) * step, Y: float64(j) * step, Z: float64(k) * step}
				var corners [8]lin.Point3
				var values [8]float64
				for c := 0; c < 8; c++ {
					off := cubeCornerOffset[c]
					p := lin.Point3{
						X: origin.X + float64(off[0])*step,
						Y: origin.Y + float64(off[1])*step,
						Z: origin.Z + float64(off[2])*step,
					}
					corners[c] = p
					values[c] = sdf(p)
				}
				for _, tet := range tetraDecomposition {
					tris = appendTetraTriangles(tris, corners, values, tet, sdf, gradEps)
				}
			}
		}
	}

	bvh := accel.Build(tris, func(t Triangle) geom.Aabb { return t.AABB() })
	return Polygonised{tris: bvh, count: len(tris)}
}

// appendTetraTriangles extracts the zero level-set crossing a single
// tetrahedron (vertex indices idx into corners/values) and appends any
// resulting triangle(s) to tris.
func appendTetraTriangles(tris []Triangle, corners [8]lin.Point3, values [8]float64, idx [4]int, sdf SDF, gradEps float64) []Triangle {
	var inside, outside []int
	for _, i := range idx {
		if values[i] < 0 {
			inside = append(inside, i)
		} else {
			outside = append(outside, i)
		}
	}

	lerp := func(a, b int) lin.Point3 {
		da, db := values[a], values[b]
		t := da / (da - db)
		return corners[a].Lerp(corners[b], t)
	}

	add := func(a, b, c lin.Point3) []Triangle {
		if a.Eq(b) || b.Eq(c) || c.Eq(a) {
			return tris
		}
		if _, ok := b.Sub(a).Cross(c.Sub(a)).Unit(); !ok {
			return tris // colinear vertices: zero-area triangle
		}
		if _, ok := gradientNormal(sdf, a, gradEps); !ok {
			return tris
		}
		return append(tris, NewTriangle(a, b, c))
	}

	switch {
	case len(inside) == 0 || len(inside) == 4:
		return tris
	case len(inside) == 1:
		a := inside[0]
		b, c, d := outside[0], outside[1], outside[2]
		tris = add(lerp(a, b), lerp(a, c), lerp(a, d))
	case len(inside) == 3:
		a := outside[0]
		b, c, d := inside[0], inside[1], inside[2]
		tris = add(lerp(a, b), lerp(a, c), lerp(a, d))
	default: // len(inside) == 2: a quad, split into two triangles
		i0, i1 := inside[0], inside[1]
		o0, o1 := outside[0], outside[1]
		p00, p01 := lerp(i0, o0), lerp(i0, o1)
		p10, p11 := lerp(i1, o0), lerp(i1, o1)
		tris = add(p00, p01, p11)
		tris = add(p00, p11, p10)
	}
	return tris
}

func gradientNormal(sdf SDF, p lin.Point3, eps float64) (lin.Vector3, bool) {
	high := lin.Vector3{
		X: sdf(lin.Point3{X: p.X + eps, Y: p.Y, Z: p.Z}),
		Y: sdf(lin.Point3{X: p.X, Y: p.Y + eps, Z: p.Z}),
		Z: sdf(lin.Point3{X: p.X, Y: p.Y, Z: p.Z + eps}),
	}
	low := lin.Vector3{
		X: sdf(lin.Point3{X: p.X - eps, Y: p.Y, Z: p.Z}),
		Y: sdf(lin.Point3{X: p.X, Y: p.Y - eps, Z: p.Z}),
		Z: sdf(lin.Point3{X: p.X, Y: p.Y, Z: p.Z - eps}),
	}
	return high.Sub(low).Unit()
}

func (p Polygonised) Intersect(r geom.Ray, iv lin.Interval) (Intersection, bool) {
	return accel.Intersect(p.tris, r, iv, func(t Triangle, r geom.Ray, iv lin.Interval) (Intersection, bool) {
		return t.Intersect(r, iv)
	})
}

// AABB returns the union bound of the extracted triangle mesh.
func (p Polygonised) AABB() geom.Aabb { return p.tris.Bounds() }

// TriangleCount returns how many triangles the marching-tetrahedra pass
// extracted, for tests and diagnostics.
func (p Polygonised) TriangleCount() int { return p.count }
