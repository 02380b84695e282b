// Package opal converts camera poses into the uniform values expected by
// fullscreen ray-marching shaders.
package opal

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vktec/opal/util"
)

// Euler angles in radians. Roll is always zero; the camera never banks.
type Euler struct {
	Pitch, Yaw, Roll float32
}

// Vec3 returns the angles in camera_rot layout: (pitch, yaw, roll).
func (e Euler) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{e.Pitch, e.Yaw, e.Roll}
}

// Orientation is the per-frame camera state in shader coordinates.
type Orientation struct {
	Position mgl32.Vec3
	Rotation Euler
}

// Decompose derives the shader-space position and Euler rotation of a camera
// at position looking at target. It returns false if target == position.
//
// Yaw is atan2(forward.x, forward.z) and wraps at ±π. It is an absolute angle,
// never accumulated, so the wrap is harmless.
func Decompose(position, target mgl32.Vec3, conv Convention) (Orientation, bool) {
	fwd, ok := direction(position, target)
	if !ok {
		return Orientation{}, false
	}

	return Orientation{
		Position: conv.Apply(position),
		Rotation: Euler{
			Pitch: pitchFromSine(fwd[1]),
			Yaw:   float32(math.Atan2(float64(fwd[0]), float64(fwd[2]))),
		},
	}, true
}

// pitchFromSine returns asin(y). Rounding can push a unit vector's component
// just past ±1, so y is clamped first.
func pitchFromSine(y float32) float32 {
	return float32(math.Asin(float64(mgl32.Clamp(y, -1, 1))))
}

// Decomposer runs Decompose once per frame and keeps the last good result.
// A degenerate pose is a programming error: debug builds panic, release
// builds repeat the previous frame.
type Decomposer struct {
	conv Convention
	last Orientation
}

func NewDecomposer(conv Convention) *Decomposer {
	return &Decomposer{conv: conv}
}

func (d *Decomposer) Update(p Pose) Orientation {
	o, ok := Decompose(p.Position, p.Target, d.conv)
	util.Assert(ok, "opal: camera target coincides with position")
	if ok {
		d.last = o
	}
	return d.last
}
