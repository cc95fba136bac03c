package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/learn-gl/internal/engine/input"
	"github.com/Faultbox/learn-gl/internal/logger"
)

// glfwWindow wraps a GLFW window. Callbacks run inside PollEvents and push
// into the Input passed there.
type glfwWindow struct {
	config Config
	win    *glfw.Window
	log    *zap.Logger

	in       *input.Input
	mouse    input.MouseTracker
	captured bool
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	w := &glfwWindow{
		config: cfg,
		log:    logger.Named("window"),
	}

	w.log.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if cfg.Samples > 0 {
		glfw.WindowHint(glfw.Samples, cfg.Samples)
	}

	var monitor *glfw.Monitor
	width, height := cfg.Width, cfg.Height
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if mode := monitor.GetVideoMode(); mode != nil {
			width, height = mode.Width, mode.Height
		}
	}

	win, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	w.win = win
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	win.SetKeyCallback(w.onKey)
	win.SetCursorPosCallback(w.onCursor)
	win.SetMouseButtonCallback(w.onButton)
	win.SetScrollCallback(w.onScroll)
	win.SetFramebufferSizeCallback(w.onFramebufferSize)
	win.SetCloseCallback(w.onClose)
	win.SetFocusCallback(w.onFocus)

	w.log.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func (w *glfwWindow) push(e input.Event) {
	if w.in != nil {
		w.in.Push(e)
	}
}

func (w *glfwWindow) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	ev := input.Event{Key: glfwKey(key)}
	switch action {
	case glfw.Press:
		ev.Type = input.EventKeyDown
	case glfw.Repeat:
		ev.Type = input.EventKeyDown
		ev.Repeat = true
	case glfw.Release:
		ev.Type = input.EventKeyUp
	}
	w.push(ev)
}

func (w *glfwWindow) onCursor(_ *glfw.Window, x, y float64) {
	fx, fy := float32(x), float32(y)
	dx, dy := w.mouse.Offset(fx, fy)
	w.push(input.Event{Type: input.EventMouseMove, X: fx, Y: fy, DX: dx, DY: dy})
}

func (w *glfwWindow) onButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	x, y := w.win.GetCursorPos()
	ev := input.Event{Button: glfwButton(button), X: float32(x), Y: float32(y)}
	if action == glfw.Press {
		ev.Type = input.EventMouseDown
	} else {
		ev.Type = input.EventMouseUp
	}
	w.push(ev)
}

func (w *glfwWindow) onScroll(_ *glfw.Window, xoff, yoff float64) {
	w.push(input.Event{Type: input.EventScroll, ScrollX: float32(xoff), ScrollY: float32(yoff)})
}

func (w *glfwWindow) onFramebufferSize(_ *glfw.Window, width, height int) {
	w.push(input.Event{Type: input.EventWindowResize, Width: width, Height: height})
}

func (w *glfwWindow) onClose(_ *glfw.Window) {
	w.push(input.Event{Type: input.EventQuit})
}

func (w *glfwWindow) onFocus(_ *glfw.Window, focused bool) {
	if !focused && w.in != nil {
		w.in.ReleaseAll()
	}
}

func (w *glfwWindow) PollEvents(in *input.Input) {
	w.in = in
	glfw.PollEvents()
	w.in = nil
}

func (w *glfwWindow) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *glfwWindow) Size() (int, int) {
	return w.win.GetSize()
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *glfwWindow) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *glfwWindow) SetCursorCaptured(captured bool) {
	w.captured = captured
	if captured {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			w.win.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
	} else {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
	w.mouse.Reset()
}

func (w *glfwWindow) CursorCaptured() bool {
	return w.captured
}

func (w *glfwWindow) Time() float64 {
	return glfw.GetTime()
}

func (w *glfwWindow) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *glfwWindow) SetShouldClose(v bool) {
	w.win.SetShouldClose(v)
}

// Close destroys the window and terminates GLFW.
func (w *glfwWindow) Close() {
	w.log.Info("closing window")
	if w.win != nil {
		w.win.Destroy()
	}
	glfw.Terminate()
}

// glfwKey maps a GLFW key to input.Key.
func glfwKey(key glfw.Key) input.Key {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return input.KeyA + input.Key(key-glfw.KeyA)
	case key >= glfw.Key0 && key <= glfw.Key9:
		return input.Key0 + input.Key(key-glfw.Key0)
	}
	if k, ok := glfwKeys[key]; ok {
		return k
	}
	return input.KeyUnknown
}

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyEscape:       input.KeyEscape,
	glfw.KeyEnter:        input.KeyEnter,
	glfw.KeyTab:          input.KeyTab,
	glfw.KeySpace:        input.KeySpace,
	glfw.KeyBackspace:    input.KeyBackspace,
	glfw.KeyLeftShift:    input.KeyLeftShift,
	glfw.KeyRightShift:   input.KeyRightShift,
	glfw.KeyLeftControl:  input.KeyLeftControl,
	glfw.KeyRightControl: input.KeyRightControl,
	glfw.KeyUp:           input.KeyUp,
	glfw.KeyDown:         input.KeyDown,
	glfw.KeyLeft:         input.KeyLeft,
	glfw.KeyRight:        input.KeyRight,
	glfw.KeyPageUp:       input.KeyPageUp,
	glfw.KeyPageDown:     input.KeyPageDown,
	glfw.KeyF1:           input.KeyF1,
	glfw.KeyF2:           input.KeyF2,
	glfw.KeyF3:           input.KeyF3,
	glfw.KeyF4:           input.KeyF4,
	glfw.KeyF5:           input.KeyF5,
	glfw.KeyF12:          input.KeyF12,
}

// glfwButton maps GLFW's zero-based buttons to input's SDL-style numbering.
func glfwButton(b glfw.MouseButton) uint8 {
	switch b {
	case glfw.MouseButtonLeft:
		return input.ButtonLeft
	case glfw.MouseButtonMiddle:
		return input.ButtonMiddle
	case glfw.MouseButtonRight:
		return input.ButtonRight
	default:
		return uint8(b) + 1
	}
}
