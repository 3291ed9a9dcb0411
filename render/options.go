package render

import "github.com/gazed/rayna/internal/validate"

// RenderMode selects which quantity a frame visualises. Every mode besides
// PBR short-circuits the bounce loop after the first hit (spec.md §4.7).
type RenderMode int

const (
	PBR RenderMode = iota
	Normals
	UV
	Face
	Scatter
	Albedo
)

func (m RenderMode) String() string {
	switch m {
	case PBR:
		return "PBR"
	case Normals:
		return "Normals"
	case UV:
		return "UV"
	case Face:
		return "Face"
	case Scatter:
		return "Scatter"
	case Albedo:
		return "Albedo"
	default:
		return "Unknown"
	}
}

// Options is the per-frame render configuration (spec.md §3 "RenderOptions",
// §6). Width/Height/Samples/Branching must be positive; RayDepth is the
// maximum bounce count and may be zero (every ray returns black immediately).
type Options struct {
	Width, Height int
	Samples       int
	RayDepth      int
	Branching     int
	Mode          RenderMode
}

// DefaultOptions returns a reasonable starting configuration: a single
// sample, one bounce branch, full PBR shading.
func DefaultOptions(width, height int) Options {
	return Options{Width: width, Height: height, Samples: 1, RayDepth: 8, Branching: 1, Mode: PBR}
}

// validate panics if o's dimensions/sample counts are non-positive, the
// constructor-time invariant internal/validate centralises for every part of
// the renderer (SPEC_FULL.md supplemental feature 3).
func (o Options) validate() {
	validate.Dimensions(o.Width, o.Height)
	validate.Positive("render options samples", float64(o.Samples))
	validate.Positive("render options branching", float64(o.Branching))
}

// sameDimsAndMode reports whether o and other would produce a compatible
// accumulation buffer: same pixel dimensions and the same visualisation
// mode (a mode switch changes what is being accumulated, so it must reset
// too, per spec.md §6 "SetRenderOpts ... invalidates accumulation if
// dimensions or mode change").
func (o Options) sameDimsAndMode(other Options) bool {
	return o.Width == other.Width && o.Height == other.Height && o.Mode == other.Mode
}
