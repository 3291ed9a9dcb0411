// Package camera implements the pinhole-with-defocus-disk camera model
// spec.md §4.7/§6 describes: a position, a forward direction, a vertical
// field of view, and a focus distance/defocus angle pair that together
// produce depth of field. Grounded on the original source's
// shared/camera.rs (look_from/look_towards/up_vector/vertical_fov/
// lens_radius/focus_dist), adapted to the spec's forward-vector +
// defocus-angle parameterisation rather than look-at + lens-radius.
package camera

import (
	"errors"
	"math"

	"github.com/gazed/rayna/geom"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/math/lin"
)

// worldUp is the world-space up vector used to derive the camera's right
// vector and for yaw rotation; a forward vector parallel to it is the one
// configuration CalculateViewport/ApplyPosDelta cannot build a basis from.
var worldUp = lin.Vector3{X: 0, Y: 1, Z: 0}

// ErrForwardVectorInvalid is returned whenever the camera's basis
// degenerates: a zero forward vector, a forward vector parallel to world
// up, or (in Camera itself) a non-finite/out-of-range FOV or non-positive
// focus distance (spec.md §7 "Configuration invalid").
var ErrForwardVectorInvalid = errors.New("camera: forward vector invalid")

// Camera is the renderer's view into the scene (spec.md §3/§6).
type Camera struct {
	Pos          lin.Point3
	VFov         lin.Angle
	Forward      lin.Vector3
	FocusDist    float64
	DefocusAngle lin.Angle
}

// New builds a camera looking from pos towards target, with the given
// vertical FOV and focus distance, and no defocus blur.
func New(pos, target lin.Point3, vfov lin.Angle, focusDist float64) Camera {
	return Camera{Pos: pos, VFov: vfov, Forward: target.Sub(pos), FocusDist: focusDist}
}

// Viewport is the per-render-cycle cached basis a camera's configuration
// produces: everything PrimaryRay needs to turn a pixel coordinate and a
// pair of random samples into a world-space ray.
type Viewport struct {
	pos                        lin.Point3
	pixel00                    lin.Point3
	pixelDeltaU, pixelDeltaV   lin.Vector3
	defocusDiskU, defocusDiskV lin.Vector3
	width, height              int
}

// CalculateViewport builds the viewport for rendering at the given pixel
// dimensions, or ErrForwardVectorInvalid if the camera's configuration is
// degenerate (spec.md §7: substituted by the renderer with an error image,
// never propagated as a panic).
func (c Camera) CalculateViewport(width, height int) (Viewport, error) {
	if width <= 0 || height <= 0 {
		return Viewport{}, ErrForwardVectorInvalid
	}
	fov := c.VFov.Radians()
	if math.IsNaN(fov) || math.IsInf(fov, 0) || fov <= 0 || fov >= math.Pi {
		return Viewport{}, ErrForwardVectorInvalid
	}
	if c.FocusDist <= 0 || math.IsNaN(c.FocusDist) || math.IsInf(c.FocusDist, 0) {
		return Viewport{}, ErrForwardVectorInvalid
	}

	w, ok := c.Forward.Unit()
	if !ok {
		return Viewport{}, ErrForwardVectorInvalid
	}
	w = w.Neg() // spec: w = -forward

	u, ok := worldUp.Cross(w).Unit()
	if !ok {
		return Viewport{}, ErrForwardVectorInvalid
	}
	v := w.Cross(u)

	pixelCentre := c.Pos.Sub(w.Scale(c.FocusDist))

	aspect := float64(width) / float64(height)
	viewportHeight := 2 * math.Tan(fov/2) * c.FocusDist
	viewportWidth := viewportHeight * aspect

	viewportU := u.Scale(viewportWidth)
	viewportV := v.Neg().Scale(viewportHeight)

	pixelDeltaU := viewportU.Scale(1 / float64(width))
	pixelDeltaV := viewportV.Scale(1 / float64(height))

	upperLeft := pixelCentre.Sub(viewportU.Scale(0.5)).Sub(viewportV.Scale(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Scale(0.5)).Add(pixelDeltaV.Scale(0.5))

	defocusRadius := c.FocusDist * math.Tan(c.DefocusAngle.Radians()/2)

	return Viewport{
		pos: c.Pos, pixel00: pixel00,
		pixelDeltaU: pixelDeltaU, pixelDeltaV: pixelDeltaV,
		defocusDiskU: u.Scale(defocusRadius), defocusDiskV: v.Scale(defocusRadius),
		width: width, height: height,
	}, nil
}

// PrimaryRay casts the ray for pixel (px,py), jittered by (jx,jy) for MSAA
// (each typically in [-0.5,+0.5]) and with the defocus sample drawn from
// src, per spec.md §4.7.
func (vp Viewport) PrimaryRay(px, py int, jx, jy float64, src *rng.Source) geom.Ray {
	rx, ry := src.InUnitDisk()
	origin := vp.pos.Add(vp.defocusDiskU.Scale(rx)).Add(vp.defocusDiskV.Scale(ry))

	sample := vp.pixel00.
		Add(vp.pixelDeltaU.Scale(float64(px) + jx)).
		Add(vp.pixelDeltaV.Scale(float64(py) + jy))

	return geom.NewRay(origin, sample.Sub(origin))
}

// ApplyPosDelta moves the camera relative to its own forward/right/world-up
// axes by the given amounts (fwdBack along Forward, rightLeft along the
// derived right vector, upDown along world up), returning
// ErrForwardVectorInvalid if the basis is degenerate (spec.md §6).
func (c Camera) ApplyPosDelta(fwdBack, rightLeft, upDown float64) (Camera, error) {
	fwd, ok := c.Forward.Unit()
	if !ok {
		return c, ErrForwardVectorInvalid
	}
	right, ok := fwd.Cross(worldUp).Unit()
	if !ok {
		return c, ErrForwardVectorInvalid
	}
	delta := fwd.Scale(fwdBack).Add(right.Scale(rightLeft)).Add(worldUp.Scale(upDown))
	c.Pos = c.Pos.Add(delta)
	return c, nil
}

// ApplyRotDelta rotates the camera's forward vector: yaw about world up,
// pitch about the camera's local right vector. Roll is left as a no-op per
// spec.md §9 ("the specification leaves roll implementation-defined").
func (c Camera) ApplyRotDelta(yaw, pitch, roll lin.Angle) (Camera, error) {
	fwd, ok := c.Forward.Unit()
	if !ok {
		return c, ErrForwardVectorInvalid
	}
	right, ok := fwd.Cross(worldUp).Unit()
	if !ok {
		return c, ErrForwardVectorInvalid
	}
	fwd = lin.RotateAxisAngle3(worldUp, yaw).MapVector(fwd)
	fwd = lin.RotateAxisAngle3(right, pitch).MapVector(fwd)
	c.Forward = fwd
	return c, nil
}
