package texture

import (
	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/mesh"
)

// Dynamic wraps any Texture implementation behind a shared handle, the
// escape hatch spec.md §9 calls for so a scene can hold a texture variant
// this package doesn't enumerate without widening the closed sum type.
type Dynamic struct {
	Inner Texture
}

// NewDynamic wraps inner.
func NewDynamic(inner Texture) Dynamic { return Dynamic{Inner: inner} }

func (d Dynamic) Value(hit mesh.Intersection, src *rng.Source) colour.Colour {
	return d.Inner.Value(hit, src)
}
