package config

import (
	"testing"

	"github.com/gazed/rayna/render"
)

const sampleDoc = `
render:
  width: 16
  height: 12
  samples: 2
  ray_depth: 4
  branching: 1
  mode: normals
camera:
  pos: [0, 0, 0]
  target: [0, 0, -1]
  vfov_degrees: 60
  focus_dist: 3
  defocus_angle_degrees: 0
scene:
  skybox:
    kind: gradient
    bottom: [1, 1, 1]
    top: [0.5, 0.7, 1]
  spheres:
    - centre: [0, 0, -2]
      radius: 1
      material:
        kind: lambertian
        albedo: [0.8, 0.3, 0.3]
    - centre: [0, -101, -2]
      radius: 100
      material:
        kind: metal
        albedo: [0.8, 0.8, 0.8]
        fuzz: 0.1
    - centre: [-2, 0, -2]
      radius: 1
      material:
        kind: dielectric
        ior: 1.5
    - centre: [2, 0, -2]
      radius: 1
      material:
        kind: light
        emissive: [4, 4, 4]
`

func TestLoadValidDocument(t *testing.T) {
	opts, cam, sc, err := Load([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if opts.Width != 16 || opts.Height != 12 {
		t.Fatalf("opts dims = (%d,%d), want (16,12)", opts.Width, opts.Height)
	}
	if opts.Mode != render.Normals {
		t.Fatalf("opts.Mode = %v, want Normals", opts.Mode)
	}
	if cam.FocusDist != 3 {
		t.Fatalf("cam.FocusDist = %v, want 3", cam.FocusDist)
	}
	if sc.Root.Len() != 4 {
		t.Fatalf("scene has %d bounded objects, want 4", sc.Root.Len())
	}
}

func TestLoadUnknownMaterialKind(t *testing.T) {
	doc := `
render: {width: 4, height: 4}
camera: {pos: [0,0,0], target: [0,0,-1], vfov_degrees: 60, focus_dist: 1}
scene:
  skybox: {kind: solid, colour: [1,1,1]}
  spheres:
    - centre: [0,0,-2]
      radius: 1
      material: {kind: bogus}
`
	if _, _, _, err := Load([]byte(doc)); err == nil {
		t.Fatal("Load() with an unknown material kind should error")
	}
}

func TestLoadUnknownRenderMode(t *testing.T) {
	doc := `
render: {width: 4, height: 4, mode: bogus}
camera: {pos: [0,0,0], target: [0,0,-1], vfov_degrees: 60, focus_dist: 1}
scene:
  skybox: {kind: solid, colour: [1,1,1]}
`
	if _, _, _, err := Load([]byte(doc)); err == nil {
		t.Fatal("Load() with an unknown render mode should error")
	}
}

func TestLoadDefaultsToSolidSkyboxAndPBRMode(t *testing.T) {
	doc := `
render: {width: 4, height: 4}
camera: {pos: [0,0,0], target: [0,0,-1], vfov_degrees: 60, focus_dist: 1}
scene:
  skybox: {colour: [0.1, 0.2, 0.3]}
`
	opts, _, sc, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if opts.Mode != render.PBR {
		t.Fatalf("default mode = %v, want PBR", opts.Mode)
	}
	if _, ok := sc.Bounds(); ok && sc.Root.Len() != 0 {
		t.Fatalf("expected an empty scene, got %d objects", sc.Root.Len())
	}
}
