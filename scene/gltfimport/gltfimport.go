// Package gltfimport loads externally authored triangle geometry from a
// glTF/GLB document into a mesh.List of mesh.Triangle, so a scene can mix
// imported models with the built-in mesh variants. This is a pack-enrichment
// feature (SPEC_FULL.md "SUPPLEMENTAL FEATURES"/"DOMAIN STACK"): the Rust
// source this repo is otherwise grounded on has no glTF loader, but
// github.com/qmuntal/gltf is already an indirect dependency the retrieval
// pack carries (mrigankad-gorenderengine's scene/gltf_loader.go), and a
// triangle-soup producer is a natural home for it per §4.3's List variant.
package gltfimport

import (
	"fmt"
	"math"

	"github.com/gazed/rayna/math/lin"
	"github.com/gazed/rayna/mesh"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Load opens a .gltf/.glb file at path and flattens the mesh primitives of
// every node in the document that has a mesh (whichever scene it belongs to)
// into a single mesh.List of mesh.Triangle.
// Node transforms are baked into the returned vertex positions: the result
// is ready to wrap directly in an object.Basic with no further transform
// needed (an object.NewTransformed on top still composes normally).
func Load(path string) (mesh.List, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return mesh.List{}, fmt.Errorf("gltfimport: open %q: %w", path, err)
	}

	var tris []mesh.Mesh
	for ni, node := range doc.Nodes {
		if node.Mesh == nil {
			continue
		}
		xform := nodeWorldTransform(doc, ni)
		gm := doc.Meshes[*node.Mesh]
		for pi, prim := range gm.Primitives {
			pts, idx, err := primitiveTriangles(doc, prim)
			if err != nil {
				return mesh.List{}, fmt.Errorf("gltfimport: mesh %q prim %d: %w", gm.Name, pi, err)
			}
			for i := 0; i+2 < len(idx); i += 3 {
				a := xform.MapPoint(pts[idx[i]])
				b := xform.MapPoint(pts[idx[i+1]])
				c := xform.MapPoint(pts[idx[i+2]])
				tris = append(tris, mesh.NewTriangle(a, b, c))
			}
		}
	}
	return mesh.NewList(tris...), nil
}

// primitiveTriangles reads a primitive's POSITION accessor and its index
// buffer (or a synthesised 0..n identity index if the primitive is
// unindexed).
func primitiveTriangles(doc *gltf.Document, prim *gltf.Primitive) ([]lin.Point3, []uint32, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, nil, fmt.Errorf("no POSITION attribute")
	}
	raw, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, nil, fmt.Errorf("positions: %w", err)
	}
	pts := make([]lin.Point3, len(raw))
	for i, p := range raw {
		pts[i] = lin.Point3{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
	}

	var idx []uint32
	if prim.Indices != nil {
		idx, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		idx = make([]uint32, len(pts))
		for i := range idx {
			idx[i] = uint32(i)
		}
	}
	return pts, idx, nil
}

// nodeWorldTransform composes a node's TRS (or explicit matrix) with its
// ancestors' transforms, since glTF bakes instance placement into the node
// hierarchy rather than the mesh data itself.
func nodeWorldTransform(doc *gltf.Document, nodeIdx int) lin.Transform3 {
	chain := []int{nodeIdx}
	parent := findParent(doc, nodeIdx)
	for parent >= 0 {
		chain = append(chain, parent)
		parent = findParent(doc, parent)
	}

	t := lin.Identity3()
	for i := len(chain) - 1; i >= 0; i-- {
		t = t.Mult(localTransform(doc.Nodes[chain[i]]))
	}
	return t
}

func findParent(doc *gltf.Document, child int) int {
	for i, n := range doc.Nodes {
		for _, c := range n.Children {
			if int(c) == child {
				return i
			}
		}
	}
	return -1
}

func localTransform(n *gltf.Node) lin.Transform3 {
	tr := n.TranslationOrDefault()
	sc := n.ScaleOrDefault()
	rot := n.RotationOrDefault() // [x,y,z,w]

	scale := lin.Scale3(lin.Vector3{X: sc[0], Y: sc[1], Z: sc[2]})
	rotate := quatToTransform(rot)
	translate := lin.Translate3(lin.Vector3{X: tr[0], Y: tr[1], Z: tr[2]})
	return translate.Mult(rotate).Mult(scale)
}

// quatToTransform converts a glTF [x,y,z,w] quaternion into a rotation
// transform via its equivalent axis-angle form.
func quatToTransform(q [4]float64) lin.Transform3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	sinHalfAngleSq := x*x + y*y + z*z
	if sinHalfAngleSq < 1e-12 {
		return lin.Identity3()
	}
	sinHalfAngle := math.Sqrt(sinHalfAngleSq)
	angle := 2 * math.Atan2(sinHalfAngle, w)
	axis := lin.Vector3{X: x / sinHalfAngle, Y: y / sinHalfAngle, Z: z / sinHalfAngle}
	return lin.RotateAxisAngle3(axis, lin.Radians(angle))
}
