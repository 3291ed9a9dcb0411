// Package config loads RenderOptions/Camera/scene preset documents from
// YAML using gopkg.in/yaml.v3, the teacher's own dependency for exactly
// this kind of small typed-struct document (grounded on load/shd.go's
// shaderConfig and eg/is.go's brightStar unmarshalling). This is a
// data-loading convenience: CLI flag parsing and scene-content catalogues
// remain out of scope per spec.md §1.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gazed/rayna/camera"
	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/material"
	"github.com/gazed/rayna/math/lin"
	"github.com/gazed/rayna/mesh"
	"github.com/gazed/rayna/object"
	"github.com/gazed/rayna/render"
	"github.com/gazed/rayna/scene"
	"github.com/gazed/rayna/texture"
)

// Document is the top-level shape of a preset file: render options, a
// camera, and a scene built from a flat list of spheres (the mesh variant
// simple enough to round-trip through YAML without a full sum-type
// encoding scheme).
type Document struct {
	Render renderDoc `yaml:"render"`
	Camera cameraDoc `yaml:"camera"`
	Scene  sceneDoc  `yaml:"scene"`
}

type renderDoc struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Samples   int    `yaml:"samples"`
	RayDepth  int    `yaml:"ray_depth"`
	Branching int    `yaml:"branching"`
	Mode      string `yaml:"mode"`
}

type cameraDoc struct {
	Pos             [3]float64 `yaml:"pos"`
	Target          [3]float64 `yaml:"target"`
	VFovDegrees     float64    `yaml:"vfov_degrees"`
	FocusDist       float64    `yaml:"focus_dist"`
	DefocusAngleDeg float64    `yaml:"defocus_angle_degrees"`
}

type sceneDoc struct {
	Skybox  skyboxDoc   `yaml:"skybox"`
	Spheres []sphereDoc `yaml:"spheres"`
}

type skyboxDoc struct {
	Kind   string     `yaml:"kind"` // "solid" or "gradient"
	Colour [3]float64 `yaml:"colour"`
	Bottom [3]float64 `yaml:"bottom"`
	Top    [3]float64 `yaml:"top"`
}

type sphereDoc struct {
	Centre   [3]float64  `yaml:"centre"`
	Radius   float64     `yaml:"radius"`
	Material materialDoc `yaml:"material"`
}

type materialDoc struct {
	Kind     string     `yaml:"kind"` // lambertian, metal, dielectric, light
	Albedo   [3]float64 `yaml:"albedo"`
	Fuzz     float64    `yaml:"fuzz"`
	IOR      float64    `yaml:"ior"`
	Emissive [3]float64 `yaml:"emissive"`
}

// Load parses a preset document and builds the render options, camera and
// scene it describes.
func Load(data []byte) (render.Options, camera.Camera, scene.Scene, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return render.Options{}, camera.Camera{}, scene.Scene{}, fmt.Errorf("config: yaml %w", err)
	}

	opts, err := doc.Render.build()
	if err != nil {
		return render.Options{}, camera.Camera{}, scene.Scene{}, fmt.Errorf("config: render: %w", err)
	}

	cam := doc.Camera.build()

	sc, err := doc.Scene.build()
	if err != nil {
		return render.Options{}, camera.Camera{}, scene.Scene{}, fmt.Errorf("config: scene: %w", err)
	}

	return opts, cam, sc, nil
}

func (d renderDoc) build() (render.Options, error) {
	mode, err := parseMode(d.Mode)
	if err != nil {
		return render.Options{}, err
	}
	return render.Options{
		Width: d.Width, Height: d.Height,
		Samples: d.Samples, RayDepth: d.RayDepth, Branching: d.Branching,
		Mode: mode,
	}, nil
}

func parseMode(s string) (render.RenderMode, error) {
	switch s {
	case "", "pbr":
		return render.PBR, nil
	case "normals":
		return render.Normals, nil
	case "uv":
		return render.UV, nil
	case "face":
		return render.Face, nil
	case "scatter":
		return render.Scatter, nil
	case "albedo":
		return render.Albedo, nil
	default:
		return 0, fmt.Errorf("unknown render mode %q", s)
	}
}

func (d cameraDoc) build() camera.Camera {
	cam := camera.New(vec3(d.Pos), vec3(d.Target), lin.Degrees(d.VFovDegrees), d.FocusDist)
	cam.DefocusAngle = lin.Degrees(d.DefocusAngleDeg)
	return cam
}

func (d sceneDoc) build() (scene.Scene, error) {
	sky, err := d.Skybox.build()
	if err != nil {
		return scene.Scene{}, err
	}

	objs := make([]object.Object, 0, len(d.Spheres))
	for i, sd := range d.Spheres {
		mat, err := sd.Material.build()
		if err != nil {
			return scene.Scene{}, fmt.Errorf("sphere %d: %w", i, err)
		}
		m := mesh.NewSphere(vec3(sd.Centre), sd.Radius)
		objs = append(objs, object.New(m, mat))
	}
	return scene.New(sky, objs...), nil
}

func (d skyboxDoc) build() (scene.Skybox, error) {
	switch d.Kind {
	case "", "solid":
		return scene.NewSolid(colour.New(d.Colour[0], d.Colour[1], d.Colour[2])), nil
	case "gradient":
		bottom := colour.New(d.Bottom[0], d.Bottom[1], d.Bottom[2])
		top := colour.New(d.Top[0], d.Top[1], d.Top[2])
		return scene.NewGradient(bottom, top), nil
	default:
		return nil, fmt.Errorf("unknown skybox kind %q", d.Kind)
	}
}

func (d materialDoc) build() (material.Material, error) {
	albedo := colour.New(d.Albedo[0], d.Albedo[1], d.Albedo[2])
	switch d.Kind {
	case "lambertian":
		return material.NewLambertian(albedo), nil
	case "metal":
		return material.NewMetal(albedo, d.Fuzz), nil
	case "dielectric":
		return material.NewDielectric(albedo, d.IOR), nil
	case "light":
		emissive := colour.New(d.Emissive[0], d.Emissive[1], d.Emissive[2])
		return material.NewLight(texture.NewSolid(emissive)), nil
	default:
		return nil, fmt.Errorf("unknown material kind %q", d.Kind)
	}
}

func vec3(v [3]float64) lin.Vector3 { return lin.Vector3{X: v[0], Y: v[1], Z: v[2]} }
