package mesh

import (
	"math"

	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/internal/validate"
	"github.com/gazed/rayna/math/lin"
)

// planar is the shared ray-plane intersection helper every flat primitive
// (Plane, Parallelogram, Triangle) is built on: compute the hit once, then
// let the caller validate the (alpha,beta) coordinates however its shape
// requires.
type planar struct {
	p    lin.Point3
	u, v lin.Vector3
	n    lin.Vector3 // normalised
	d    float64
	w    lin.Vector3 // cross(u,v) / |cross(u,v)|^2, using the un-normalised normal
}

func newPlanar(p lin.Point3, u, v lin.Vector3) planar {
	nRaw := u.Cross(v)
	n, ok := nRaw.Unit()
	if !ok {
		panic("rayna: planar primitive is degenerate: cross(u, v) == 0")
	}
	return planar{
		p: p, u: u, v: v, n: n,
		d: -n.Dot(p),
		w: nRaw.Scale(1 / nRaw.Dot(nRaw)),
	}
}

// planarHit is the outcome of the shared plane equation solve, before any
// shape-specific (alpha,beta) acceptance test.
type planarHit struct {
	dist      float64
	posWorld  lin.Point3
	posLocal  lin.Point3
	alpha     float64
	beta      float64
	rayNormal lin.Vector3
	frontFace bool
}

func (pl planar) intersect(r geom.Ray, iv lin.Interval) (planarHit, bool) {
	denom := pl.n.Dot(r.Dir)
	if denom == 0 {
		return planarHit{}, false
	}
	t := -(pl.n.Dot(r.Origin) + pl.d) / denom
	if !iv.Contains(t) {
		return planarHit{}, false
	}
	world := r.At(t)
	local := world.Sub(pl.p)
	alpha := pl.w.Dot(local.Cross(pl.v))
	beta := pl.w.Dot(pl.u.Cross(local))

	// denom < 0 means dir and normal point opposite ways, i.e. the ray hit
	// the front of the plane.
	frontFace := denom < 0
	rayNormal := pl.n
	if !frontFace {
		rayNormal = pl.n.Neg()
	}
	return planarHit{
		dist: t, posWorld: world, posLocal: local,
		alpha: alpha, beta: beta,
		rayNormal: rayNormal, frontFace: frontFace,
	}, true
}

// UvWrap selects how an infinite Plane maps its (alpha,beta) plane
// coordinates into a [0,1]^2 UV for texturing.
type UvWrap int

const (
	// WrapRepeat repeats the unit square: x mod 1.
	WrapRepeat UvWrap = iota
	// WrapMirror mirrors every other unit square: |((x mod 2) - 1)|.
	WrapMirror
	// WrapClamp clamps to the unit square.
	WrapClamp
	// WrapClampZero is zero outside the unit square and identity inside it.
	WrapClampZero
)

func (w UvWrap) apply(x float64) float64 {
	switch w {
	case WrapMirror:
		m := math.Mod(x, 2)
		if m < 0 {
			m += 2
		}
		return math.Abs(m - 1)
	case WrapClamp:
		return lin.Clamp(x, 0, 1)
	case WrapClampZero:
		if x < 0 || x > 1 {
			return 0
		}
		return x
	default: // WrapRepeat
		m := math.Mod(x, 1)
		if m < 0 {
			m += 1
		}
		return m
	}
}

// Plane is an infinite plane through p spanned by u,v, textured with a wrap
// mode applied to its (alpha,beta) plane coordinates.
type Plane struct {
	pl    planar
	wrapU UvWrap
	wrapV UvWrap
}

// NewPlane builds an infinite plane. wrapU/wrapV control how out-of-[0,1]
// plane coordinates map to UV.
func NewPlane(p lin.Point3, u, v lin.Vector3, wrapU, wrapV UvWrap) Plane {
	return Plane{pl: newPlanar(p, u, v), wrapU: wrapU, wrapV: wrapV}
}

func (pl Plane) Intersect(r geom.Ray, iv lin.Interval) (Intersection, bool) {
	h, ok := pl.pl.intersect(r, iv)
	if !ok {
		return Intersection{}, false
	}
	return Intersection{
		Dist: h.dist, PosWorld: h.posWorld, PosLocal: h.posLocal,
		Normal: pl.pl.n, RayNormal: h.rayNormal, FrontFace: h.frontFace,
		UV: [2]float64{pl.wrapU.apply(h.alpha), pl.wrapV.apply(h.beta)},
	}, true
}

// AABB is infinite in all three axes: an infinite plane never belongs in
// the BVH (see §4.4); object.List tests it via the unbounded list instead.
func (pl Plane) AABB() geom.Aabb { return geom.Infinite() }

// Parallelogram is a finite flat quad: the planar region where
// alpha,beta in [0,1].
type Parallelogram struct{ pl planar }

// NewParallelogram builds a parallelogram from an origin corner and two
// edge vectors.
func NewParallelogram(p lin.Point3, u, v lin.Vector3) Parallelogram {
	return Parallelogram{pl: newPlanar(p, u, v)}
}

// NewParallelogramCentred builds a parallelogram centred on centre with
// half-extents u,v (so the full side lengths are 2|u|, 2|v|).
func NewParallelogramCentred(centre lin.Point3, u, v lin.Vector3) Parallelogram {
	return NewParallelogram(centre.Sub(u).Sub(v), u.Scale(2), v.Scale(2))
}

func (q Parallelogram) Intersect(r geom.Ray, iv lin.Interval) (Intersection, bool) {
	h, ok := q.pl.intersect(r, iv)
	if !ok || h.alpha < 0 || h.alpha > 1 || h.beta < 0 || h.beta > 1 {
		return Intersection{}, false
	}
	return Intersection{
		Dist: h.dist, PosWorld: h.posWorld, PosLocal: h.posLocal,
		Normal: q.pl.n, RayNormal: h.rayNormal, FrontFace: h.frontFace,
		UV: [2]float64{h.alpha, h.beta},
	}, true
}

func (q Parallelogram) AABB() geom.Aabb {
	corners := []lin.Point3{q.pl.p, q.pl.p.Add(q.pl.u), q.pl.p.Add(q.pl.v), q.pl.p.Add(q.pl.u).Add(q.pl.v)}
	return geom.Empty().EncompassPoints(corners).MinPadded(1e-6)
}

// Triangle is the finite flat region where alpha,beta >= 0 and
// alpha+beta <= 1, spanned from vertex p by edges u,v (so p, p+u, p+v are
// the three corners). Per §9, this is the planar-based formulation; the
// alternative half-complete formulation in the source is not ported.
type Triangle struct{ pl planar }

// NewTriangle builds a triangle from three vertices.
func NewTriangle(a, b, c lin.Point3) Triangle {
	validate.Finite("triangle vertex", a.X)
	return Triangle{pl: newPlanar(a, b.Sub(a), c.Sub(a))}
}

func (t Triangle) Intersect(r geom.Ray, iv lin.Interval) (Intersection, bool) {
	h, ok := t.pl.intersect(r, iv)
	if !ok || h.alpha < 0 || h.beta < 0 || h.alpha+h.beta > 1 {
		return Intersection{}, false
	}
	return Intersection{
		Dist: h.dist, PosWorld: h.posWorld, PosLocal: h.posLocal,
		Normal: t.pl.n, RayNormal: h.rayNormal, FrontFace: h.frontFace,
		UV: [2]float64{h.alpha, h.beta},
	}, true
}

func (t Triangle) AABB() geom.Aabb {
	corners := []lin.Point3{t.pl.p, t.pl.p.Add(t.pl.u), t.pl.p.Add(t.pl.v)}
	return geom.Empty().EncompassPoints(corners).MinPadded(1e-6)
}
