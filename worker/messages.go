package worker

import (
	"github.com/gazed/rayna/camera"
	"github.com/gazed/rayna/render"
	"github.com/gazed/rayna/scene"
)

// msg is the request type every command sent to a worker satisfies, the
// same "interface{} plus type switch" idiom the teacher's vu.go uses for
// machine.reqs (spec.md §6 "UI <-> Worker messages").
type msg interface{}

// setScene requests scene replacement (spec.md §6 "SetScene(scene)").
type setScene struct{ scene scene.Scene }

// setCamera requests camera replacement (§6 "SetCamera(camera)").
type setCamera struct{ cam camera.Camera }

// setOpts requests render-option replacement (§6 "SetRenderOpts(options)").
type setOpts struct{ opts render.Options }

// clearAccum requests an explicit accumulation reset with no other change
// (§6/§7 "Accumulation mismatch" / explicit reset).
type clearAccum struct{}

// shutdown asks the worker goroutine to exit (teacher's *shutdown in vu.go).
type shutdown struct{}
