package lin

import (
	"math"
	"testing"
)

func TestReflect(t *testing.T) {
	d := Vector3{1, -1, 0}
	n := Vector3{0, 1, 0}
	r := Reflect(d, n)
	if !Aeq(r.Len(), d.Len()) {
		t.Fatalf("reflect changed length: %v vs %v", r.Len(), d.Len())
	}
	if !Aeq(r.Dot(n), -d.Dot(n)) {
		t.Fatalf("reflect().n != -d.n: %v vs %v", r.Dot(n), -d.Dot(n))
	}
}

func TestUnitZero(t *testing.T) {
	if _, ok := (Vector3{}).Unit(); ok {
		t.Fatal("zero vector should fail to normalise")
	}
	if got := (Vector3{}).UnitOr(Vector3{0, 0, 1}); got != (Vector3{0, 0, 1}) {
		t.Fatalf("UnitOr fallback not used: %v", got)
	}
}

func TestRefractTotalInternalReflection(t *testing.T) {
	d := Vector3{1, -0.1, 0}.UnitOr(Vector3{})
	n := Vector3{0, 1, 0}
	// Going from dense (eta large) to sparse at a glancing angle: expect TIR.
	if _, ok := Refract(d, n, 2.5); ok {
		t.Fatal("expected total internal reflection")
	}
}

func TestCrossPerpendicular(t *testing.T) {
	a := Vector3{1, 0, 0}
	b := Vector3{0, 1, 0}
	c := a.Cross(b)
	if !Aeq(c.Dot(a), 0) || !Aeq(c.Dot(b), 0) {
		t.Fatalf("cross product not perpendicular to inputs: %v", c)
	}
	if !c.Aeq(Vector3{0, 0, 1}) {
		t.Fatalf("x cross y should be z, got %v", c)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a, b := Vector3{0, 0, 0}, Vector3{2, 4, 6}
	if got := a.Lerp(b, 0); !got.Eq(a) {
		t.Fatalf("lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); !got.Eq(b) {
		t.Fatalf("lerp(1) = %v, want %v", got, b)
	}
}

func TestMaxAxis(t *testing.T) {
	cases := []struct {
		x, y, z float64
		want    int
	}{
		{5, 1, 1, 0},
		{1, 5, 1, 1},
		{1, 1, 5, 2},
		{3, 3, 1, 0}, // tie broken towards lower index
	}
	for _, c := range cases {
		if got := MaxAxis(c.x, c.y, c.z); got != c.want {
			t.Errorf("MaxAxis(%v,%v,%v) = %d, want %d", c.x, c.y, c.z, got, c.want)
		}
	}
}

func TestRecipInfinities(t *testing.T) {
	v := Vector3{0, 1, -1}.Recip()
	if !math.IsInf(v.X, 1) {
		t.Fatalf("Recip(0) should be +Inf, got %v", v.X)
	}
}
