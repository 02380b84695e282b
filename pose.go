package opal

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

// Pose is the camera state driven by the controller each frame.
// Up and Target-Position must never be parallel.
type Pose struct {
	Position, Target, Up mgl32.Vec3
	FovY                 float32 // degrees
	Projection           Projection
}

var WorldUp = mgl32.Vec3{0, 1, 0}

// InitialPose is the pose the viewer starts in: slightly above the origin, looking down +Z.
var InitialPose = Pose{
	Position:   mgl32.Vec3{0, 0.1, -1.5},
	Target:     mgl32.Vec3{0, 0, 1},
	Up:         WorldUp,
	FovY:       45,
	Projection: Perspective,
}

// Forward returns the normalized look direction. ok is false when Target
// coincides with Position or the pose is not finite.
func (p Pose) Forward() (fwd mgl32.Vec3, ok bool) {
	return direction(p.Position, p.Target)
}

// Valid reports whether the pose has a defined look direction that is not
// parallel to Up.
func (p Pose) Valid() bool {
	fwd, ok := p.Forward()
	if !ok {
		return false
	}
	up, ok := direction(mgl32.Vec3{}, p.Up)
	if !ok {
		return false
	}
	return fwd.Cross(up).Len() > 1e-6
}

// direction normalizes to-from in float64 so offsets too large or too small
// to square in float32 still have a length.
func direction(from, to mgl32.Vec3) (mgl32.Vec3, bool) {
	dx := float64(to[0]) - float64(from[0])
	dy := float64(to[1]) - float64(from[1])
	dz := float64(to[2]) - float64(from[2])
	l := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return mgl32.Vec3{}, false
	}
	return mgl32.Vec3{float32(dx / l), float32(dy / l), float32(dz / l)}, true
}
