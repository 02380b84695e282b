package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vktec/opal/freefly"
)

// inputState accumulates GLFW events between frames.
type inputState struct {
	held     map[glfw.Key]bool
	captured bool

	// The first cursor sample after capture only sets the reference point
	haveCursor bool
	cx, cy     float64
	dx, dy     float64
}

func (s *inputState) Key(key glfw.Key, act glfw.Action) {
	if s.held == nil {
		s.held = make(map[glfw.Key]bool)
	}
	switch act {
	case glfw.Press:
		s.held[key] = true
	case glfw.Release:
		delete(s.held, key)
	}
}

func (s *inputState) CursorPos(x, y float64) {
	if !s.captured {
		return
	}
	if s.haveCursor {
		s.dx += x - s.cx
		s.dy += y - s.cy
	}
	s.cx, s.cy = x, y
	s.haveCursor = true
}

func (s *inputState) Captured() bool {
	return s.captured
}

func (s *inputState) SetCaptured(captured bool) {
	s.captured = captured
	s.haveCursor = false
	s.dx, s.dy = 0, 0
}

func (s *inputState) axis(pos, neg glfw.Key) float32 {
	var v float32
	if s.held[pos] {
		v++
	}
	if s.held[neg] {
		v--
	}
	return v
}

// Take returns the input for one frame and clears the accumulated look delta.
func (s *inputState) Take(dt float32) freefly.Input {
	in := freefly.Input{
		Move: mgl32.Vec3{
			s.axis(glfw.KeyD, glfw.KeyA),
			s.axis(glfw.KeySpace, glfw.KeyLeftControl),
			s.axis(glfw.KeyW, glfw.KeyS),
		},
		Look: mgl32.Vec2{float32(s.dx), float32(s.dy)},
		Dt:   dt,
	}
	s.dx, s.dy = 0, 0
	return in
}
