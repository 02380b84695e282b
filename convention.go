package opal

import "github.com/go-gl/mathgl/mgl32"

// Convention describes how the shader's coordinate axes differ from the
// camera's. Each flag negates one component of the camera position.
type Convention struct {
	FlipX, FlipY, FlipZ bool
}

// ShaderConvention matches base.glsl, whose X axis points the opposite way.
var ShaderConvention = Convention{FlipX: true}

// Apply relabels v into shader coordinates. It is not a rotation.
func (c Convention) Apply(v mgl32.Vec3) mgl32.Vec3 {
	if c.FlipX {
		v[0] = -v[0]
	}
	if c.FlipY {
		v[1] = -v[1]
	}
	if c.FlipZ {
		v[2] = -v[2]
	}
	return v
}
