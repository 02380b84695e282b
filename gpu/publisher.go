package gpu

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vktec/gll"
	"github.com/vktec/opal"
)

// Uniformer is the subset of a gll function table the Publisher writes through.
type Uniformer interface {
	GetUniformLocation(program uint32, name *uint8) int32
	Uniform2f(location int32, v0, v1 float32)
	Uniform3f(location int32, v0, v1, v2 float32)
}

// Bindings names the uniforms a shader declares for the camera bridge.
type Bindings struct {
	Resolution string // vec2, viewport size in pixels
	CameraPos  string // vec3, shader-space camera position
	CameraRot  string // vec3, (pitch, yaw, roll) in radians
}

var DefaultBindings = Bindings{
	Resolution: "u_resolution",
	CameraPos:  "camera_pos",
	CameraRot:  "camera_rot",
}

// Publisher writes camera state into a program's uniforms. Locations are
// looked up once, in NewPublisher.
type Publisher struct {
	gl   Uniformer
	prog uint32
	res  mgl32.Vec2

	uResolution, uCameraPos, uCameraRot int32

	missing []string
}

// NewPublisher resolves the uniform locations of prog. Uniforms the program
// doesn't declare (or the compiler optimized out) are logged once and never
// written.
func NewPublisher(gl Uniformer, prog uint32, names Bindings, res mgl32.Vec2) *Publisher {
	p := &Publisher{gl: gl, prog: prog, res: res}
	p.uResolution = p.resolve(names.Resolution)
	p.uCameraPos = p.resolve(names.CameraPos)
	p.uCameraRot = p.resolve(names.CameraRot)
	return p
}

func (p *Publisher) resolve(name string) int32 {
	loc := p.gl.GetUniformLocation(p.prog, gll.Str(name+"\000"))
	if loc < 0 {
		log.Printf("uniform %q not found in shader program %d; it will not be set", name, p.prog)
		p.missing = append(p.missing, name)
	}
	return loc
}

// Missing returns the names that did not resolve to a location.
func (p *Publisher) Missing() []string {
	return p.missing
}

func (p *Publisher) Resolution() mgl32.Vec2 {
	return p.res
}

// Publish writes one frame of camera state. The program must be in use.
func (p *Publisher) Publish(o opal.Orientation) {
	if p.uResolution >= 0 {
		p.gl.Uniform2f(p.uResolution, p.res[0], p.res[1])
	}
	if p.uCameraPos >= 0 {
		p.gl.Uniform3f(p.uCameraPos, o.Position[0], o.Position[1], o.Position[2])
	}
	if p.uCameraRot >= 0 {
		rot := o.Rotation.Vec3()
		p.gl.Uniform3f(p.uCameraRot, rot[0], rot[1], rot[2])
	}
}
