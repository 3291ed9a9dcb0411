// Package material implements the closed set of material variants a
// Material in the object layer can be: Lambertian, Metal, Dielectric,
// Isotropic and Light (spec.md §4.5). Each variant decides how an
// incoming ray scatters off an intersection and how the colour returned
// by the bounce it spawns is combined with the material's own
// albedo/emission.
package material

import (
	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/math/lin"
	"github.com/gazed/rayna/mesh"
)

// Material is the capability every variant satisfies: Scatter proposes a
// next-ray direction (or reports absorption by returning ok=false), and
// Shade combines the colour that bounce returned with the material's own
// contribution.
type Material interface {
	Scatter(r geom.Ray, hit mesh.Intersection, src *rng.Source) (dir lin.Vector3, ok bool)
	Shade(hit mesh.Intersection, src *rng.Source, incoming colour.Colour) colour.Colour
}
