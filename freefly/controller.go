// Package freefly implements a first-person camera that moves along its own
// look direction and turns with cursor deltas.
package freefly

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vktec/opal"
	"github.com/vktec/opal/util"
)

const (
	MoveSpeed       = 5.4   // world units per second
	LookSensitivity = 0.003 // radians per pixel

	// Keeps forward away from WorldUp so the pose never degenerates
	maxPitch = math.Pi/2 - 0.01
)

// Input is one frame of user input.
type Input struct {
	Move mgl32.Vec3 // right, up, forward; each in [-1, 1]
	Look mgl32.Vec2 // cursor delta in pixels, +Y down
	Dt   float32    // seconds since the previous frame
}

type Controller struct {
	pose       opal.Pose
	yaw, pitch float64
}

func NewController(pose opal.Pose) *Controller {
	util.Assert(pose.Valid(), "freefly: initial pose has no valid look direction")
	c := &Controller{pose: pose}
	fwd, _ := pose.Forward()
	c.yaw = math.Atan2(float64(fwd[0]), float64(fwd[2]))
	c.pitch = clampPitch(math.Asin(float64(mgl32.Clamp(fwd[1], -1, 1))))
	c.pose.Up = opal.WorldUp
	c.pose.Target = c.pose.Position.Add(c.forward())
	return c
}

func (c *Controller) Pose() opal.Pose {
	return c.pose
}

// Update applies one frame of input. Target always ends up one unit along the
// look direction and Up stays WorldUp.
func (c *Controller) Update(in Input) {
	if in.Look[0] != 0 || in.Look[1] != 0 {
		c.yaw = wrap(c.yaw - float64(in.Look[0])*LookSensitivity)
		c.pitch = clampPitch(c.pitch - float64(in.Look[1])*LookSensitivity)
	}
	fwd := c.forward()

	dt := float64(in.Dt)
	if dt > 0 && !math.IsInf(dt, 0) && in.Move.Len() > 0 {
		right := fwd.Cross(opal.WorldUp).Normalize()
		dir := right.Mul(in.Move[0]).
			Add(opal.WorldUp.Mul(in.Move[1])).
			Add(fwd.Mul(in.Move[2]))
		// Diagonals move no faster than a single axis
		if l := dir.Len(); l > 1 {
			dir = dir.Mul(1 / l)
		}
		c.pose.Position = c.pose.Position.Add(dir.Mul(MoveSpeed * in.Dt))
	}

	c.pose.Target = c.pose.Position.Add(fwd)
	c.pose.Up = opal.WorldUp
}

func (c *Controller) forward() mgl32.Vec3 {
	sy, cy := math.Sincos(c.yaw)
	sp, cp := math.Sincos(c.pitch)
	return mgl32.Vec3{float32(sy * cp), float32(sp), float32(cy * cp)}
}

func clampPitch(p float64) float64 {
	return math.Max(-maxPitch, math.Min(maxPitch, p))
}

// wrap keeps yaw in [-π, π] so it doesn't lose precision over long sessions.
func wrap(yaw float64) float64 {
	return math.Remainder(yaw, 2*math.Pi)
}
