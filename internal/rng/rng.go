// Package rng wraps math/rand with the sampling helpers the material and
// camera layers need (random unit vectors, disk samples), keeping each
// render-pool worker's generator state private per §5 ("RNGs are
// per-worker, no shared RNG state on the hot path").
package rng

import (
	"math/rand"

	"github.com/gazed/rayna/math/lin"
)

// Source is a per-worker random source. It is not safe for concurrent use;
// each thread-pool worker goroutine owns one and uses it for every row it
// renders.
type Source struct {
	r *rand.Rand
}

// New builds a Source seeded deterministically from seed, so a fixed seed
// and thread count reproduces the same frame (a goal, not a hard
// requirement, per §4.7 "Parallelism").
func New(seed int64) *Source { return &Source{r: rand.New(rand.NewSource(seed))} }

// Float64 returns a uniform sample in [0,1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// Range returns a uniform sample in [lo,hi).
func (s *Source) Range(lo, hi float64) float64 { return lo + (hi-lo)*s.r.Float64() }

// UnitVector returns a uniformly distributed unit vector (a point on the
// unit sphere), used for Lambertian/Isotropic scatter and volumetric
// intersection normals.
func (s *Source) UnitVector() lin.Vector3 {
	for {
		v := lin.Vector3{X: s.Range(-1, 1), Y: s.Range(-1, 1), Z: s.Range(-1, 1)}
		if lenSq := v.Dot(v); lenSq > 1e-12 && lenSq <= 1 {
			u, _ := v.Unit()
			return u
		}
	}
}

// InUnitSphere returns a uniformly distributed point inside the unit ball,
// used by Metal's fuzz term.
func (s *Source) InUnitSphere() lin.Vector3 {
	for {
		v := lin.Vector3{X: s.Range(-1, 1), Y: s.Range(-1, 1), Z: s.Range(-1, 1)}
		if v.Dot(v) <= 1 {
			return v
		}
	}
}

// InUnitDisk returns a uniformly distributed point inside the unit disk in
// the XY plane, used by the camera's defocus-disk sampling.
func (s *Source) InUnitDisk() (x, y float64) {
	for {
		x, y = s.Range(-1, 1), s.Range(-1, 1)
		if x*x+y*y <= 1 {
			return x, y
		}
	}
}

// UV01 returns a uniformly distributed point in [0,1)^2.
func (s *Source) UV01() (float64, float64) { return s.r.Float64(), s.r.Float64() }
