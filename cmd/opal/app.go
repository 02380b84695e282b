package main

import (
	"fmt"
	"io/ioutil"
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vktec/gldebug"
	"github.com/vktec/gll"
	"github.com/vktec/opal"
	"github.com/vktec/opal/freefly"
	"github.com/vktec/opal/gpu"
)

type App struct {
	gll.GL420

	win  *glfw.Window
	vao  uint32
	prog uint32
	pub  *gpu.Publisher

	camera *freefly.Controller
	decomp *opal.Decomposer
	input  inputState
	pace   *pacer

	lastTime float64
}

func NewApp(shaderPath string, vsync bool, fps int) (*App, error) {
	frag, err := ioutil.ReadFile(shaderPath)
	if err != nil {
		return nil, fmt.Errorf("loading shader: %w", err)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initializing GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	app := &App{
		win:    win,
		camera: freefly.NewController(opal.InitialPose),
		decomp: opal.NewDecomposer(opal.ShaderConvention),
		pace:   newPacer(fps, glfw.GetTime),
	}
	if err := app.init(string(frag), vsync); err != nil {
		app.Destroy()
		return nil, fmt.Errorf("building %s: %w", shaderPath, err)
	}
	return app, nil
}

func (app *App) init(frag string, vsync bool) (err error) {
	app.win.MakeContextCurrent()
	app.GL420 = gll.New420(glfw.GetProcAddress)
	if gpu.ExtensionSupported(app, "GL_ARB_debug_output") {
		app.DebugMessageCallbackARB(gldebug.MessageCallback)
	}
	app.ClearColor(0, 0, 0, 1)
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	app.GenVertexArrays(1, &app.vao)
	app.BindVertexArray(app.vao)

	app.prog, err = gpu.BuildShader(app, gpu.FullscreenVert, frag)
	if err != nil {
		return err
	}

	// The resolution uniform is fixed for the life of the window, even if the
	// framebuffer later changes size with the monitor's content scale
	w, h := app.win.GetFramebufferSize()
	fitViewport(app, w, h)
	app.pub = gpu.NewPublisher(app, app.prog, gpu.DefaultBindings, mgl32.Vec2{float32(w), float32(h)})
	res := app.pub.Resolution()
	log.Printf("rendering at %gx%g", res[0], res[1])

	app.win.SetFramebufferSizeCallback(app.FramebufferSize)
	app.win.SetKeyCallback(app.Key)
	app.win.SetCursorPosCallback(app.CursorPos)
	app.setCaptured(true)
	return nil
}

func (app *App) Destroy() {
	if app.prog != 0 {
		app.DeleteProgram(app.prog)
	}
	if app.vao != 0 {
		app.DeleteVertexArrays(1, &app.vao)
	}
	app.win.Destroy()
	glfw.Terminate()
}

func (app *App) Main() {
	app.lastTime = glfw.GetTime()
	for !app.win.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		app.camera.Update(app.input.Take(float32(now - app.lastTime)))
		app.lastTime = now

		app.Draw(app.decomp.Update(app.camera.Pose()))
		app.pace.Wait()
	}
}

func (app *App) Draw(o opal.Orientation) {
	app.Clear(gll.COLOR_BUFFER_BIT)

	app.UseProgram(app.prog)
	app.pub.Publish(o)
	app.DrawArrays(gll.TRIANGLES, 0, 3)

	app.win.SwapBuffers()
}

func (app *App) setCaptured(captured bool) {
	app.input.SetCaptured(captured)
	if captured {
		app.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			app.win.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
	} else {
		app.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (app *App) Key(_ *glfw.Window, key glfw.Key, scancode int, act glfw.Action, mods glfw.ModifierKey) {
	if act == glfw.Press {
		switch key {
		case glfw.KeyEscape:
			app.win.SetShouldClose(true)
			return
		case glfw.KeyTab:
			app.setCaptured(!app.input.Captured())
			return
		}
	}
	app.input.Key(key, act)
}

func (app *App) FramebufferSize(_ *glfw.Window, w, h int) {
	fitViewport(app, w, h)
}

func (app *App) CursorPos(_ *glfw.Window, x, y float64) {
	app.input.CursorPos(x, y)
}

type viewporter interface {
	Viewport(x, y, width, height int32)
}

// fitViewport covers the framebuffer. Minimized windows report 0x0; the old
// viewport is kept for when they come back.
func fitViewport(gl viewporter, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(w), int32(h))
}
