// Package scene holds the data a render cycle operates on: the object tree
// and the skybox shaded for primary rays that escape it (spec.md §3, §4.7
// "Skybox"). It owns no behaviour beyond construction and lookup — the
// renderer (package render) is the only thing that mutates render state,
// per §3 "Ownership".
package scene

import (
	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/object"
)

// Skybox is the capability a background shader satisfies: a colour for any
// ray that escapes the scene without hitting an object.
type Skybox interface {
	Value(r geom.Ray) colour.Colour
}

// Solid is a skybox with a single constant colour, used by §8's "white
// skybox only" scenario.
type Solid struct {
	Colour colour.Colour
}

// NewSolid builds a constant-colour skybox.
func NewSolid(c colour.Colour) Solid { return Solid{Colour: c} }

func (s Solid) Value(_ geom.Ray) colour.Colour { return s.Colour }

// Gradient is a skybox that linearly interpolates between Bottom and Top
// based on the ray direction's Y component, the classic "sky" background
// used by §8's reflection-parity scenario.
type Gradient struct {
	Bottom, Top colour.Colour
}

// NewGradient builds a vertical-gradient skybox.
func NewGradient(bottom, top colour.Colour) Gradient { return Gradient{Bottom: bottom, Top: top} }

func (g Gradient) Value(r geom.Ray) colour.Colour {
	t := float32(0.5 * (r.Dir.Y + 1))
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return g.Bottom.Lerp(g.Top, t)
}

// Scene is the immutable-per-frame content a render cycle samples: the
// object tree (package object's List, which is itself an Object) and the
// skybox. A Scene is cheap to structurally copy (see worker.Handle.Clone),
// since every field is a value or a read-only interface.
type Scene struct {
	Root   object.List
	Skybox Skybox
}

// New builds a scene from its top-level objects and skybox.
func New(sky Skybox, objs ...object.Object) Scene {
	return Scene{Root: object.NewList(objs...), Skybox: sky}
}

// Bounds reports the scene's overall AABB, or ok=false if any top-level
// object is unbounded (an infinite plane or ray-marched surface).
func (s Scene) Bounds() (geom.Aabb, bool) { return s.Root.AABB() }

// ObjectCount returns how many top-level objects the scene contains,
// mirroring the original source's scene introspection helpers used by the
// UI's debug overlay (out of scope here, but the count is a cheap,
// side-effect-free thing to expose).
func (s Scene) ObjectCount() int { return len(s.Root.Objects()) }
