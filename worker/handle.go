package worker

import (
	"log"

	"github.com/gazed/rayna/camera"
	"github.com/gazed/rayna/render"
	"github.com/gazed/rayna/scene"
	"github.com/jinzhu/copier"
)

// Handle is the UI-side reference to a running Worker: it sends commands
// and receives frames, and keeps the UI's own clone of the last-sent
// scene/camera/options per spec.md §3 "Ownership" ("The UI holds a clone
// (structural copy) of scene/camera/options; dirty values are shipped to
// the worker via message passing").
type Handle struct {
	w     *Worker
	seed  int64
	scene scene.Scene
	cam   camera.Camera
	opts  render.Options
	set   bool // whether SetScene has been called at least once
}

// Start spawns a worker goroutine with the given initial options and RNG
// seed and returns a handle to it.
func Start(opts render.Options, seed int64) *Handle {
	w := newWorker(opts, seed)
	go w.run()
	return &Handle{w: w, seed: seed, opts: opts}
}

// SetScene ships a new scene to the worker (§6 "SetScene(scene)").
func (h *Handle) SetScene(s scene.Scene) {
	h.scene = s
	h.set = true
	h.w.reqs <- setScene{scene: s}
}

// SetCamera ships a new camera to the worker (§6 "SetCamera(camera)").
func (h *Handle) SetCamera(c camera.Camera) {
	h.cam = c
	h.w.reqs <- setCamera{cam: c}
}

// SetRenderOpts ships new render options to the worker (§6
// "SetRenderOpts(options)").
func (h *Handle) SetRenderOpts(o render.Options) {
	h.opts = o
	h.w.reqs <- setOpts{opts: o}
}

// ClearAccumulation asks the worker to reset its accumulation buffer
// without otherwise changing its configuration.
func (h *Handle) ClearAccumulation() { h.w.reqs <- clearAccum{} }

// Frames returns the channel the worker publishes completed frames to.
func (h *Handle) Frames() <-chan *Frame { return h.w.frames }

// Crashed returns a channel that is closed if and only if the current
// worker goroutine terminated due to an unrecovered panic, the signal the
// UI polls to decide whether to call Restart (§7 "Worker crashed").
func (h *Handle) Crashed() <-chan struct{} { return h.w.crashed }

// Close asks the worker to stop and waits for it to exit.
func (h *Handle) Close() {
	h.w.reqs <- shutdown{}
	<-h.w.done
}

// Clone returns a structural copy of the handle's last-sent scene, camera
// and options, the UI-side value spec.md §3 calls out as a "clone
// (structural copy)". Camera and Options are plain exported-field structs,
// so they go through github.com/jinzhu/copier (already a dependency the
// retrieval pack carries for exactly this purpose, SPEC_FULL.md DOMAIN
// STACK); Scene carries object.List's unexported BVH/bounds bookkeeping,
// which a reflection-based copier cannot safely duplicate, so it is passed
// through Go's own struct assignment instead — a shallow copy that shares
// object.List's BVH pointer and object slices with the handle's scene,
// which nothing mutates after construction.
func (h *Handle) Clone() (scene.Scene, camera.Camera, render.Options) {
	s := h.scene
	var c camera.Camera
	var o render.Options
	if err := copier.Copy(&c, &h.cam); err != nil {
		log.Printf("worker: clone camera: %v", err)
	}
	if err := copier.Copy(&o, &h.opts); err != nil {
		log.Printf("worker: clone options: %v", err)
	}
	return s, c, o
}

// Restart spawns a fresh worker goroutine seeded with the handle's last
// known scene/camera/options, subject to throttle (spec.md §5 "restarts
// the worker with the last known scene/options/camera, subject to a
// token-bucket throttle to avoid crash loops"). Reports false without
// restarting if the throttle denies the attempt.
func (h *Handle) Restart(throttle *Throttle) bool {
	if !throttle.Allow() {
		return false
	}
	s, c, o := h.Clone()
	w := newWorker(o, h.seed)
	go w.run()
	h.w = w
	if h.set {
		w.reqs <- setScene{scene: s}
		w.reqs <- setCamera{cam: c}
	}
	return true
}
