package material

import (
	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/math/lin"
	"github.com/gazed/rayna/mesh"
	"github.com/gazed/rayna/texture"
)

// Isotropic scatters uniformly in every direction, normally paired with a
// homogeneous volumetric object (spec.md §4.5, §4.6). Unlike Lambertian,
// Metal and Dielectric its albedo comes from a texture lookup rather than a
// flat colour, since the original source's IsotropicMaterial already takes
// a TextureInstance.
type Isotropic struct {
	Albedo texture.Texture
}

// NewIsotropic builds an Isotropic material sampling albedo from tex.
func NewIsotropic(tex texture.Texture) Isotropic { return Isotropic{Albedo: tex} }

func (m Isotropic) Scatter(_ geom.Ray, _ mesh.Intersection, src *rng.Source) (lin.Vector3, bool) {
	return src.UnitVector(), true
}

func (m Isotropic) Shade(hit mesh.Intersection, src *rng.Source, incoming colour.Colour) colour.Colour {
	return incoming.Mul(m.Albedo.Value(hit, src))
}
