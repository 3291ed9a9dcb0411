package material

import (
	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/math/lin"
	"github.com/gazed/rayna/mesh"
	"github.com/gazed/rayna/texture"
)

// Light never scatters; it turns an object into an emitter by returning its
// Emissive texture's value, ignoring any incoming radiance (spec.md §4.5).
type Light struct {
	Emissive texture.Texture
}

// NewLight builds a Light material emitting tex.
func NewLight(tex texture.Texture) Light { return Light{Emissive: tex} }

func (m Light) Scatter(_ geom.Ray, _ mesh.Intersection, _ *rng.Source) (lin.Vector3, bool) {
	return lin.Vector3{}, false
}

func (m Light) Shade(hit mesh.Intersection, src *rng.Source, _ colour.Colour) colour.Colour {
	return m.Emissive.Value(hit, src)
}
