// Package validate centralizes the constructor-time invariant checks used
// across mesh, object, and render-option builders, mirroring the teacher's
// vu.machine.vet pattern of collecting argument sanitization in one place
// rather than scattering it through every constructor.
package validate

import (
	"fmt"
	"math"
)

// Positive panics if v is not strictly positive. Builders for a single
// primitive (a sphere radius, a cylinder radius) panic rather than reject,
// per §7: "Geometric degenerate ... panicked explicitly (single-primitive
// builders)".
func Positive(field string, v float64) {
	if !(v > 0) {
		panic(fmt.Sprintf("rayna: %s must be positive, got %v", field, v))
	}
}

// Finite panics if v is NaN or infinite.
func Finite(field string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("rayna: %s must be finite, got %v", field, v))
	}
}

// NonZero panics if v is exactly zero.
func NonZero(field string, v float64) {
	if v == 0 {
		panic(fmt.Sprintf("rayna: %s must be non-zero, got %v", field, v))
	}
}

// Dimensions panics if width or height is not strictly positive.
func Dimensions(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("rayna: dimensions must be positive, got %dx%d", width, height))
	}
}
