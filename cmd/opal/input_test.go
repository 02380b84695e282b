package main

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func TestInputMoveAxes(t *testing.T) {
	var s inputState
	s.Key(glfw.KeyW, glfw.Press)
	s.Key(glfw.KeyA, glfw.Press)
	s.Key(glfw.KeySpace, glfw.Press)

	in := s.Take(0.5)
	if want := (mgl32.Vec3{-1, 1, 1}); in.Move != want {
		t.Errorf("Expected move %v, got %v", want, in.Move)
	}
	if in.Dt != 0.5 {
		t.Errorf("Expected dt 0.5, got %f", in.Dt)
	}

	s.Key(glfw.KeyS, glfw.Press)
	s.Key(glfw.KeyA, glfw.Release)
	s.Key(glfw.KeySpace, glfw.Repeat)
	if in := s.Take(0); in.Move != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Expected opposing keys to cancel, got %v", in.Move)
	}
}

func TestInputLookDelta(t *testing.T) {
	var s inputState
	s.CursorPos(10, 10)
	if in := s.Take(0); in.Look != (mgl32.Vec2{}) {
		t.Fatalf("Expected no look while uncaptured, got %v", in.Look)
	}

	s.SetCaptured(true)
	s.CursorPos(100, 100)
	if in := s.Take(0); in.Look != (mgl32.Vec2{}) {
		t.Fatalf("Expected first sample to set the reference only, got %v", in.Look)
	}

	s.CursorPos(103, 98)
	s.CursorPos(110, 90)
	if in := s.Take(0); in.Look != (mgl32.Vec2{10, -10}) {
		t.Errorf("Expected accumulated delta (10, -10), got %v", in.Look)
	}
	if in := s.Take(0); in.Look != (mgl32.Vec2{}) {
		t.Errorf("Expected delta to reset after Take, got %v", in.Look)
	}

	s.SetCaptured(false)
	s.SetCaptured(true)
	s.CursorPos(500, 500)
	if in := s.Take(0); in.Look != (mgl32.Vec2{}) {
		t.Errorf("Expected recapture to reset the reference, got %v", in.Look)
	}
}
