package gpu

import (
	"errors"
	"strings"
	"unsafe"

	"github.com/vktec/gll"
)

// ShaderBuilder is the subset of a gll function table needed to build programs.
type ShaderBuilder interface {
	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, count int32, string_ **uint8, length *int32)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32, params *int32)
	GetShaderInfoLog(shader uint32, bufSize int32, length *int32, infoLog *uint8)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	DetachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32, params *int32)
	GetProgramInfoLog(program uint32, bufSize int32, length *int32, infoLog *uint8)
	DeleteProgram(program uint32)
}

type ExtensionQuerier interface {
	GetIntegerv(pname uint32, data *int32)
	GetStringi(name uint32, index uint32) *uint8
}

// GetShaderError returns the info log of a shader or program as an error.
// Pass GetShaderiv/GetShaderInfoLog or GetProgramiv/GetProgramInfoLog.
func GetShaderError(obj uint32, iv func(obj, pname uint32, params *int32), infoLog func(obj uint32, bufSize int32, length *int32, infoLog *uint8)) error {
	var size int32
	iv(obj, gll.INFO_LOG_LENGTH, &size)
	if size <= 0 {
		return errors.New("no info log")
	}

	buf := make([]byte, size)
	var n int32
	infoLog(obj, size, &n, &buf[0])
	if msg := strings.TrimSpace(string(buf[:n])); msg != "" {
		return errors.New(msg)
	}
	return errors.New("empty info log")
}

func CompileShader(gl ShaderBuilder, shad uint32, source string) error {
	csrc := gll.Str(source + "\000")
	clen := int32(len(source))
	gl.ShaderSource(shad, 1, &csrc, &clen)
	gl.CompileShader(shad)

	var result int32
	gl.GetShaderiv(shad, gll.COMPILE_STATUS, &result)
	if result == 0 {
		defer gl.DeleteShader(shad)
		return GetShaderError(shad, gl.GetShaderiv, gl.GetShaderInfoLog)
	}
	return nil
}

// BuildShader compiles and links a vertex/fragment pair. The returned error
// carries the driver's info log.
func BuildShader(gl ShaderBuilder, vert, frag string) (prog uint32, err error) {
	vshad := gl.CreateShader(gll.VERTEX_SHADER)
	if err := CompileShader(gl, vshad, vert); err != nil {
		return 0, &ShaderError{"vertex", err}
	}
	defer gl.DeleteShader(vshad)

	fshad := gl.CreateShader(gll.FRAGMENT_SHADER)
	if err := CompileShader(gl, fshad, frag); err != nil {
		return 0, &ShaderError{"fragment", err}
	}
	defer gl.DeleteShader(fshad)

	prog = gl.CreateProgram()
	gl.AttachShader(prog, vshad)
	gl.AttachShader(prog, fshad)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vshad)
	gl.DetachShader(prog, fshad)

	var result int32
	gl.GetProgramiv(prog, gll.LINK_STATUS, &result)
	if result == 0 {
		defer gl.DeleteProgram(prog)
		return 0, &ShaderError{"link", GetShaderError(prog, gl.GetProgramiv, gl.GetProgramInfoLog)}
	}
	return prog, nil
}

// ShaderError reports which stage of BuildShader failed.
type ShaderError struct {
	Stage string
	Err   error
}

func (e *ShaderError) Error() string {
	return e.Stage + " shader: " + e.Err.Error()
}

func (e *ShaderError) Unwrap() error {
	return e.Err
}

func ExtensionSupported(gl ExtensionQuerier, name string) bool {
	var n int32
	gl.GetIntegerv(gll.NUM_EXTENSIONS, &n)
	for i := int32(0); i < n; i++ {
		if goStr(gl.GetStringi(gll.EXTENSIONS, uint32(i))) == name {
			return true
		}
	}
	return false
}

// goStr copies a NUL-terminated string returned by the driver.
func goStr(p *uint8) string {
	if p == nil {
		return ""
	}
	var buf []byte
	for ptr := unsafe.Pointer(p); *(*uint8)(ptr) != 0; ptr = unsafe.Pointer(uintptr(ptr) + 1) {
		buf = append(buf, *(*uint8)(ptr))
	}
	return string(buf)
}
