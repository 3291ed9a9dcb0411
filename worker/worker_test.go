package worker

import (
	"testing"
	"time"

	"github.com/gazed/rayna/camera"
	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/math/lin"
	"github.com/gazed/rayna/render"
	"github.com/gazed/rayna/scene"
)

func smallOpts() render.Options {
	o := render.DefaultOptions(4, 4)
	o.Samples = 1
	o.RayDepth = 2
	return o
}

func TestHandleRendersFrames(t *testing.T) {
	h := Start(smallOpts(), 1)
	defer h.Close()

	h.SetScene(scene.New(scene.NewSolid(colour.White)))
	h.SetCamera(camera.New(lin.Point3{}, lin.Point3{X: 0, Y: 0, Z: -1}, lin.Degrees(90), 1))

	select {
	case f := <-h.Frames():
		if f.Image.Width() != 4 || f.Image.Height() != 4 {
			t.Fatalf("frame dims = (%d,%d), want (4,4)", f.Image.Width(), f.Image.Height())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a frame")
	}
}

func TestHandleCloseStopsWorker(t *testing.T) {
	h := Start(smallOpts(), 1)
	h.SetScene(scene.New(scene.NewSolid(colour.Black)))
	h.SetCamera(camera.New(lin.Point3{}, lin.Point3{X: 0, Y: 0, Z: -1}, lin.Degrees(90), 1))

	done := make(chan struct{})
	go func() {
		h.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Close() did not return in time")
	}
}

func TestHandleCloneReturnsLastSentState(t *testing.T) {
	h := Start(smallOpts(), 1)
	defer h.Close()

	sc := scene.New(scene.NewSolid(colour.White))
	cam := camera.New(lin.Point3{}, lin.Point3{X: 0, Y: 0, Z: -1}, lin.Degrees(60), 2)
	h.SetScene(sc)
	h.SetCamera(cam)

	_, clonedCam, clonedOpts := h.Clone()
	if clonedCam.VFov != cam.VFov {
		t.Fatalf("cloned camera VFov = %v, want %v", clonedCam.VFov, cam.VFov)
	}
	if clonedOpts.Width != smallOpts().Width {
		t.Fatalf("cloned options Width = %v, want %v", clonedOpts.Width, smallOpts().Width)
	}
}
