// Package worker implements the single long-lived rendering worker and its
// UI-facing handle (spec.md §5 "Concurrency & Resource Model"). It is
// grounded on the teacher's vu.go/frame.go split: an unbuffered-in-spirit
// request channel carrying typed command structs through a type switch,
// and a capacity-one "latest frame wins" channel for completed frames.
package worker

import (
	"log"

	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/render"
)

// commandQueueCap approximates the "unbounded" command queue spec.md §5
// describes: UI commands are rare control-plane events (a handful per
// second at most), so a generous fixed buffer never fills in practice,
// without requiring an actually-unbounded channel.
const commandQueueCap = 256

// Frame is what the worker emits each render cycle (spec.md §6 "Worker ->
// UI emits Render{image, stats} frames only").
type Frame struct {
	Image *colour.Image[colour.Colour]
	Stats render.Stats
}

// Worker owns the render state exclusively (spec.md §3 "Ownership"): scene,
// camera, options and the accumulation buffer and thread pool inside
// render.Renderer. It runs on its own goroutine, started by Start.
type Worker struct {
	renderer *render.Renderer
	reqs     chan msg
	frames   chan *Frame
	done     chan struct{}
	crashed  chan struct{}
}

func newWorker(opts render.Options, seed int64) *Worker {
	return &Worker{
		renderer: render.New(opts, seed),
		reqs:     make(chan msg, commandQueueCap),
		frames:   make(chan *Frame, 1),
		done:     make(chan struct{}),
		crashed:  make(chan struct{}),
	}
}

// run is the worker's body: drain pending commands, then render one frame
// if a scene has been installed, repeating until told to stop. A panic
// inside a render cycle is recovered and reported via the crashed channel
// rather than taking the whole process down (§7 "Worker crashed ...
// detected by channel disconnect on UI side").
func (w *Worker) run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("worker: recovered from panic: %v", r)
			close(w.crashed)
		}
		close(w.done)
	}()

	haveScene := false
	for {
		if w.drain(&haveScene) {
			return
		}
		if !haveScene {
			req, ok := <-w.reqs
			if !ok {
				return
			}
			if w.apply(req, &haveScene) {
				return
			}
			continue
		}

		img, stats := w.renderer.Render()
		w.publish(&Frame{Image: img, Stats: stats})
	}
}

// drain applies every command currently queued without blocking, so a
// render cycle never starts with commands still pending (§5 "Ordering
// guarantees": "any pending commands are fully drained before sampling
// starts"). Returns true if a shutdown was requested or the channel closed.
func (w *Worker) drain(haveScene *bool) bool {
	for {
		select {
		case req, ok := <-w.reqs:
			if !ok {
				return true
			}
			if w.apply(req, haveScene) {
				return true
			}
		default:
			return false
		}
	}
}

func (w *Worker) apply(req msg, haveScene *bool) (stop bool) {
	switch t := req.(type) {
	case setScene:
		w.renderer.SetScene(t.scene)
		*haveScene = true
	case setCamera:
		w.renderer.SetCamera(t.cam)
	case setOpts:
		w.renderer.SetOptions(t.opts)
	case clearAccum:
		w.renderer.ClearAccumulation()
	case shutdown:
		return true
	default:
		log.Printf("worker: unknown msg %T", t)
	}
	return false
}

// publish delivers f as the latest frame, discarding any frame still
// sitting unread in the channel (§5 "capacity-one latest-wins").
func (w *Worker) publish(f *Frame) {
	select {
	case w.frames <- f:
		return
	default:
	}
	select {
	case <-w.frames:
	default:
	}
	select {
	case w.frames <- f:
	default:
	}
}
