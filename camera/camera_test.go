package camera

import (
	"math"
	"testing"

	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/math/lin"
)

func TestCalculateViewportRejectsDegenerateForward(t *testing.T) {
	c := New(lin.Point3{}, lin.Point3{X: 0, Y: 1, Z: 0}, lin.Degrees(60), 1) // forward parallel to world up
	if _, err := c.CalculateViewport(100, 100); err != ErrForwardVectorInvalid {
		t.Fatalf("err = %v, want ErrForwardVectorInvalid", err)
	}
}

func TestCalculateViewportRejectsZeroDimensions(t *testing.T) {
	c := New(lin.Point3{}, lin.Point3{X: 0, Y: 0, Z: -1}, lin.Degrees(60), 1)
	if _, err := c.CalculateViewport(0, 10); err == nil {
		t.Fatal("expected an error for zero width")
	}
}

func TestCalculateViewportRejectsBadFocusDist(t *testing.T) {
	c := New(lin.Point3{}, lin.Point3{X: 0, Y: 0, Z: -1}, lin.Degrees(60), 0)
	if _, err := c.CalculateViewport(100, 100); err == nil {
		t.Fatal("expected an error for a non-positive focus distance")
	}
}

func TestPrimaryRayCentrePixelPointsForward(t *testing.T) {
	c := New(lin.Point3{}, lin.Point3{X: 0, Y: 0, Z: -1}, lin.Degrees(60), 1)
	c.DefocusAngle = 0
	vp, err := c.CalculateViewport(101, 101)
	if err != nil {
		t.Fatalf("CalculateViewport() error = %v", err)
	}
	src := rng.New(1)
	r := vp.PrimaryRay(50, 50, 0, 0, src)
	if r.Dir.Z >= 0 {
		t.Fatalf("centre pixel ray should point roughly forward (negative Z), got %v", r.Dir)
	}
}

// TestPrimaryRayDirIsUnit asserts the Ray invariant directly: PrimaryRay
// builds its direction from pixel00+deltas minus a defocus-jittered origin,
// a vector whose raw magnitude tracks FocusDist, not 1, so this only holds
// because NewRay itself normalises.
func TestPrimaryRayDirIsUnit(t *testing.T) {
	c := New(lin.Point3{}, lin.Point3{X: 0, Y: 0, Z: -1}, lin.Degrees(60), 3)
	vp, err := c.CalculateViewport(64, 64)
	if err != nil {
		t.Fatalf("CalculateViewport() error = %v", err)
	}
	src := rng.New(1)
	for _, px := range []int{0, 17, 32, 63} {
		for _, py := range []int{0, 17, 32, 63} {
			r := vp.PrimaryRay(px, py, 0.25, -0.25, src)
			if got := r.Dir.Len(); math.Abs(got-1) > 1e-9 {
				t.Fatalf("PrimaryRay(%d,%d).Dir length = %v, want 1", px, py, got)
			}
		}
	}
}

func TestApplyPosDeltaMovesAlongForward(t *testing.T) {
	c := New(lin.Point3{}, lin.Point3{X: 0, Y: 0, Z: -1}, lin.Degrees(60), 1)
	moved, err := c.ApplyPosDelta(2, 0, 0)
	if err != nil {
		t.Fatalf("ApplyPosDelta() error = %v", err)
	}
	if moved.Pos.Z >= c.Pos.Z {
		t.Fatalf("moving forward should decrease Z, got %v", moved.Pos)
	}
}
