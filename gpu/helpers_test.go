package gpu

import (
	"testing"
	"unsafe"

	"github.com/vktec/gll"
)

func TestGoStr(t *testing.T) {
	if s := goStr(nil); s != "" {
		t.Errorf("Expected empty string for nil, got %q", s)
	}
	if s := goStr(gll.Str("GL_ARB_debug_output\000")); s != "GL_ARB_debug_output" {
		t.Errorf("Expected %q, got %q", "GL_ARB_debug_output", s)
	}
	buf := []uint8{'a', 'b', 0, 'c'}
	if s := goStr(&buf[0]); s != "ab" {
		t.Errorf("Expected copy to stop at NUL, got %q", s)
	}
}

// fakeLog reports lengths the way GL does: INFO_LOG_LENGTH counts the NUL,
// the returned length doesn't.
type fakeLog struct {
	text string
}

func (l *fakeLog) iv(obj, pname uint32, params *int32) {
	if pname == gll.INFO_LOG_LENGTH && l.text != "" {
		*params = int32(len(l.text) + 1)
	}
}

func (l *fakeLog) infoLog(obj uint32, bufSize int32, length *int32, infoLog *uint8) {
	dst := (*[1 << 16]byte)(unsafe.Pointer(infoLog))[:bufSize:bufSize]
	n := copy(dst[:bufSize-1], l.text)
	dst[n] = 0
	*length = int32(n)
}

func TestGetShaderError(t *testing.T) {
	cases := []struct {
		log, expected string
	}{
		{"0:4(21): error: `undeclared' undeclared\n", "0:4(21): error: `undeclared' undeclared"},
		{"", "no info log"},
		{"\r\n", "empty info log"},
	}
	for _, c := range cases {
		l := &fakeLog{c.log}
		err := GetShaderError(1, l.iv, l.infoLog)
		if err == nil || err.Error() != c.expected {
			t.Errorf("Log %q: expected error %q, got %v", c.log, c.expected, err)
		}
	}
}
