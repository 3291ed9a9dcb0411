package material

import (
	"math"
	"testing"

	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/math/lin"
	"github.com/gazed/rayna/mesh"
)

// straightOnHit is a front-facing hit straight along -Z, the case a primary
// camera ray directly facing a Dielectric sphere produces.
func straightOnHit() mesh.Intersection {
	return mesh.Intersection{
		Normal:    lin.Vector3{Z: 1},
		RayNormal: lin.Vector3{Z: 1},
		FrontFace: true,
	}
}

func TestDielectricScatterNeverProducesNaN(t *testing.T) {
	m := NewDielectric(colour.White, 1.5)
	hit := straightOnHit()
	src := rng.New(1)

	for i := 0; i < 200; i++ {
		r := geom.NewRay(lin.Point3{}, lin.Vector3{X: 0, Y: 0, Z: -1})
		dir, scattered := m.Scatter(r, hit, src)
		if !scattered {
			t.Fatal("Dielectric.Scatter should always scatter")
		}
		if math.IsNaN(dir.X) || math.IsNaN(dir.Y) || math.IsNaN(dir.Z) {
			t.Fatalf("Scatter produced a NaN direction: %v", dir)
		}
	}
}

// TestDielectricScatterHandlesNonUnitIncident exercises the exact bug a
// non-normalised ray direction used to trigger: a direction whose magnitude
// tracks FocusDist rather than 1 drove cosTheta above 1, and
// math.Sqrt(1-cosTheta*cosTheta) returned NaN.
func TestDielectricScatterHandlesNonUnitIncident(t *testing.T) {
	m := NewDielectric(colour.White, 1.5)
	hit := straightOnHit()
	src := rng.New(1)

	r := geom.Ray{Origin: lin.Point3{}, Dir: lin.Vector3{X: 0, Y: 0, Z: -3}}
	dir, scattered := m.Scatter(r, hit, src)
	if !scattered {
		t.Fatal("Dielectric.Scatter should always scatter")
	}
	if math.IsNaN(dir.X) || math.IsNaN(dir.Y) || math.IsNaN(dir.Z) {
		t.Fatalf("Scatter produced a NaN direction for a non-unit incident ray: %v", dir)
	}
}

func TestDielectricScatterGrazingAngle(t *testing.T) {
	m := NewDielectric(colour.White, 1.5)
	hit := mesh.Intersection{
		Normal:    lin.Vector3{Z: 1},
		RayNormal: lin.Vector3{Z: 1},
		FrontFace: true,
	}
	src := rng.New(1)

	dir, ok := lin.Vector3{X: 1, Y: 0, Z: -0.001}.Unit()
	if !ok {
		t.Fatal("unexpected zero vector")
	}
	r := geom.NewRay(lin.Point3{}, dir)
	scatterDir, scattered := m.Scatter(r, hit, src)
	if !scattered {
		t.Fatal("Dielectric.Scatter should always scatter")
	}
	if math.IsNaN(scatterDir.X) || math.IsNaN(scatterDir.Y) || math.IsNaN(scatterDir.Z) {
		t.Fatalf("Scatter produced a NaN direction at a grazing angle: %v", scatterDir)
	}
}
