package texture

import (
	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/mesh"
)

// Solid is a texture with a single, constant colour everywhere.
type Solid struct {
	Albedo colour.Colour
}

// NewSolid builds a Solid texture from c.
func NewSolid(c colour.Colour) Solid { return Solid{Albedo: c} }

func (s Solid) Value(_ mesh.Intersection, _ *rng.Source) colour.Colour { return s.Albedo }
