// +build !release

package opal

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDecomposerDegeneratePanics(t *testing.T) {
	d := NewDecomposer(ShaderConvention)
	d.Update(InitialPose)

	defer func() {
		if err := recover(); err == nil {
			t.Error("Expected degenerate pose to panic")
		} else if err != "opal: camera target coincides with position" {
			panic(err)
		}
	}()
	p := mgl32.Vec3{1, 1, 1}
	d.Update(Pose{Position: p, Target: p, Up: WorldUp})
}
