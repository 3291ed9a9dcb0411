// Package render implements the path-tracing integrator: per-pixel ray
// generation, the bounce loop, and progressive accumulation across frames
// (spec.md §4.7). Row dispatch is grounded on the teacher's eg/rt.go
// business-card raytracer: a channel of row indices, one goroutine per
// processor, a sync.WaitGroup, closing the channel to signal completion.
package render

import (
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/gazed/rayna/camera"
	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/math/lin"
	"github.com/gazed/rayna/object"
	"github.com/gazed/rayna/scene"
	"github.com/gazed/rayna/texture"
	"golang.org/x/sys/cpu"
)

// selfIntersectEps offsets a bounce ray's interval past its origin so it
// doesn't immediately re-hit the surface it just scattered from.
const selfIntersectEps = 1e-3

// workerSlot is the per-goroutine state a row task owns: its own RNG (§5
// "RNGs are per-worker"), padded to a full cache line so adjacent slots in
// the renderer's slot slice never false-share, the padding idiom
// golang.org/x/sys/cpu exists to support.
type workerSlot struct {
	src *rng.Source
	_   cpu.CacheLinePad
}

// Renderer is the integrator: it owns the thread pool sizing, the current
// render options/scene/camera, and the accumulation buffer (spec.md §4.7
// "State"). It is not safe for concurrent use from multiple goroutines;
// package worker is the only intended caller, serialising access from its
// single long-lived worker goroutine.
type Renderer struct {
	opts   Options
	sc     scene.Scene
	cam    camera.Camera
	accum  *Buffer
	seed   int64
	slots  []workerSlot
	logged bool
}

// New builds a renderer for the given initial options, panicking if they
// are invalid (constructor-time invariant, per internal/validate).
func New(opts Options, seed int64) *Renderer {
	opts.validate()
	return &Renderer{
		opts:  opts,
		accum: NewBuffer(opts.Width, opts.Height),
		seed:  seed,
	}
}

// SetScene installs sc as the current scene and invalidates accumulation
// (spec.md §6 "SetScene ... invalidates accumulation; triggers BVH
// rebuild"). The BVH rebuild itself already happened inside scene.New via
// object.NewList; this just resets the accumulation state.
func (r *Renderer) SetScene(sc scene.Scene) {
	r.sc = sc
	r.accum.Reset()
}

// SetCamera installs cam as the current camera and invalidates accumulation
// (§6 "SetCamera ... invalidates accumulation").
func (r *Renderer) SetCamera(cam camera.Camera) {
	r.cam = cam
	r.accum.Reset()
}

// SetOptions installs opts as the current render options. Accumulation is
// invalidated only if dimensions or mode changed (§6); samples/depth/
// branching changes are allowed to refine an in-progress accumulation.
func (r *Renderer) SetOptions(opts Options) {
	opts.validate()
	changed := !r.opts.sameDimsAndMode(opts)
	r.opts = opts
	if changed {
		r.accum.EnsureDims(opts.Width, opts.Height)
		r.accum.Reset()
	}
}

// Options returns the renderer's current options.
func (r *Renderer) Options() Options { return r.opts }

// ClearAccumulation resets the accumulation buffer without changing any
// configuration (§6 "explicit reset").
func (r *Renderer) ClearAccumulation() { r.accum.Reset() }

// threadCount picks the thread-pool size: one goroutine per logical core,
// per §5 "native OS threads, typically num_cores of them".
func (r *Renderer) threadCount() int {
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	return n
}

// ensureSlots (re)allocates the per-worker RNG slots, logging the thread
// count once (§4.7 "thread-pool sizing/logging").
func (r *Renderer) ensureSlots(n int) {
	if len(r.slots) == n {
		return
	}
	r.slots = make([]workerSlot, n)
	for i := range r.slots {
		r.slots[i].src = rng.New(r.seed + int64(i))
	}
	if !r.logged {
		log.Printf("render: %d worker threads, per-slot cache line padding enabled", n)
		r.logged = true
	}
}

// Render runs one accumulation frame over the renderer's current scene,
// camera and options, returning the accumulated mean image and this frame's
// statistics (spec.md §4.7 "Progressive accumulation"). If the camera's
// viewport is degenerate, a synthetic error image is returned instead (§7
// "Failure handling") and the accumulation buffer is left untouched.
func (r *Renderer) Render() (*colour.Image[colour.Colour], Stats) {
	start := time.Now()
	r.accum.EnsureDims(r.opts.Width, r.opts.Height)

	vp, err := r.cam.CalculateViewport(r.opts.Width, r.opts.Height)
	if err != nil {
		img := errorImage(r.opts.Width, r.opts.Height)
		return img, errorStats(r.opts, r.opts.Width*r.opts.Height)
	}

	n := r.threadCount()
	r.ensureSlots(n)

	type row int
	rows := make(chan row, r.opts.Height)
	var wg sync.WaitGroup
	wg.Add(n)
	for w := 0; w < n; w++ {
		go func(slot *workerSlot) {
			defer wg.Done()
			for row := range rows {
				r.renderRow(int(row), vp, slot.src)
			}
		}(&r.slots[w])
	}
	for y := 0; y < r.opts.Height; y++ {
		rows <- row(y)
	}
	close(rows)
	wg.Wait()

	frames := r.accum.BeginFrame()
	return r.accum.Image(), Stats{
		Options:     r.opts,
		Threads:     n,
		Duration:    time.Since(start),
		TotalPixels: r.opts.Width * r.opts.Height,
		AccumFrames: frames,
	}
}

// renderRow samples every pixel of row y, folding each sample into the
// accumulation buffer's running mean.
func (r *Renderer) renderRow(y int, vp camera.Viewport, src *rng.Source) {
	for x := 0; x < r.opts.Width; x++ {
		cell := r.accum.Cell(x, y)
		for s := 0; s < r.opts.Samples; s++ {
			jx := src.Range(-0.5, 0.5)
			jy := src.Range(-0.5, 0.5)
			ray := vp.PrimaryRay(x, y, jx, jy, src)
			sample := r.radiance(ray, r.opts.RayDepth, src)
			cell.InsertSampleWeighted(sample, 1.0)
		}
	}
}

// radiance computes the colour a ray contributes, implementing the bounce
// loop of spec.md §4.7. depth is the remaining bounce budget.
func (r *Renderer) radiance(ray geom.Ray, depth int, src *rng.Source) colour.Colour {
	if depth <= 0 {
		return colour.Black
	}

	hit, ok := r.sc.Root.Intersect(ray, lin.PosInterval(selfIntersectEps), src)
	if !ok {
		return r.sc.Skybox.Value(ray)
	}

	if r.opts.Mode != PBR {
		return r.visualise(ray, hit, src)
	}

	dir, scattered := hit.Material.Scatter(ray, hit.Intersection, src)
	if !scattered {
		return hit.Material.Shade(hit.Intersection, src, colour.Black)
	}

	branches := r.opts.Branching
	if branches < 1 {
		branches = 1
	}
	var sum colour.Colour
	nextRay := geom.NewRay(hit.PosWorld, dir)
	for b := 0; b < branches; b++ {
		sum = sum.Add(r.radiance(nextRay, depth-1, src))
	}
	mean := sum.Scale(1 / float32(branches))
	return hit.Material.Shade(hit.Intersection, src, mean)
}

// visualise implements the non-PBR debug modes, each a direct function of
// the first hit with no further bounces (§4.7 "RenderMode").
func (r *Renderer) visualise(ray geom.Ray, hit object.Hit, src *rng.Source) colour.Colour {
	switch r.opts.Mode {
	case Normals:
		n := hit.RayNormal
		return colour.New((n.X+1)/2, (n.Y+1)/2, (n.Z+1)/2)
	case UV:
		return colour.New(hit.UV[0], hit.UV[1], 0)
	case Face:
		f := float64(hit.Face % 8)
		return colour.New(f/8, f/8, f/8)
	case Scatter:
		dir, ok := hit.Material.Scatter(ray, hit.Intersection, src)
		if !ok {
			return colour.Black
		}
		return colour.New((dir.X+1)/2, (dir.Y+1)/2, (dir.Z+1)/2)
	case Albedo:
		return hit.Material.Shade(hit.Intersection, src, colour.White)
	default:
		return colour.Black
	}
}

// errorImage builds the synthetic checker pattern substituted for a frame
// that could not be rendered because the camera configuration is invalid
// (§7 "the renderer returns a synthetic checker error image").
func errorImage(width, height int) *colour.Image[colour.Colour] {
	img := colour.NewImage[colour.Colour](width, height)
	img.Each(func(x, y int, p *colour.Colour) {
		if (x/8+y/8)%2 == 0 {
			*p = texture.ErrorColour
		} else {
			*p = colour.Black
		}
	})
	return img
}
