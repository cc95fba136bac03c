// Package window creates an OpenGL window through SDL2 or GLFW.
package window

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Faultbox/learn-gl/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Backend    string
	GLMajor    int
	GLMinor    int
	Samples    int
}

// Window is a native window with a current OpenGL context.
type Window interface {
	// SwapBuffers presents the back buffer.
	SwapBuffers()
	// PollEvents drains native events into in.
	PollEvents(in *input.Input)
	// Size returns the window size in screen coordinates.
	Size() (width, height int)
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)
	SetTitle(title string)
	// SetCursorCaptured hides the cursor and reports unbounded relative motion.
	SetCursorCaptured(captured bool)
	CursorCaptured() bool
	// Time returns seconds since the window was created.
	Time() float64
	ShouldClose() bool
	SetShouldClose(bool)
	Close()
}

// New creates a window with the configured backend.
func New(cfg Config) (Window, error) {
	if cfg.GLMajor == 0 {
		cfg.GLMajor, cfg.GLMinor = 4, 1
	}

	switch strings.ToLower(cfg.Backend) {
	case "", BackendSDL:
		return newSDL(cfg)
	case BackendGLFW:
		return newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
