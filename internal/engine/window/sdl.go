package window

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/learn-gl/internal/engine/input"
	"github.com/Faultbox/learn-gl/internal/logger"
)

// sdlWindow wraps an SDL2 window and OpenGL context.
type sdlWindow struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	log       *zap.Logger

	start    time.Time
	mouse    input.MouseTracker
	captured bool
	closing  bool
}

func newSDL(cfg Config) (*sdlWindow, error) {
	w := &sdlWindow{
		config: cfg,
		log:    logger.Named("window"),
		start:  time.Now(),
	}

	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Attributes must be set before the window exists
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, cfg.GLMajor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, cfg.GLMinor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	if cfg.Samples > 0 {
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, cfg.Samples)
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		w.log.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	w.log.Info("window created",
		zap.String("backend", BackendSDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func (w *sdlWindow) PollEvents(in *input.Input) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.closing = true
			in.Push(input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				fw, fh := w.FramebufferSize()
				in.Push(input.Event{Type: input.EventWindowResize, Width: fw, Height: fh})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				in.ReleaseAll()
			}

		case *sdl.KeyboardEvent:
			ev := input.Event{Key: sdlKey(e.Keysym.Sym), Repeat: e.Repeat != 0}
			if e.State == sdl.PRESSED {
				ev.Type = input.EventKeyDown
			} else {
				ev.Type = input.EventKeyUp
			}
			in.Push(ev)

		case *sdl.MouseMotionEvent:
			x, y := float32(e.X), float32(e.Y)
			var dx, dy float32
			if w.captured {
				// Relative mode pins the cursor, so only XRel/YRel move
				dx, dy = float32(e.XRel), -float32(e.YRel)
			} else {
				dx, dy = w.mouse.Offset(x, y)
			}
			in.Push(input.Event{Type: input.EventMouseMove, X: x, Y: y, DX: dx, DY: dy})

		case *sdl.MouseButtonEvent:
			ev := input.Event{Button: e.Button, X: float32(e.X), Y: float32(e.Y)}
			if e.State == sdl.PRESSED {
				ev.Type = input.EventMouseDown
			} else {
				ev.Type = input.EventMouseUp
			}
			in.Push(ev)

		case *sdl.MouseWheelEvent:
			sx, sy := float32(e.X), float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				sx, sy = -sx, -sy
			}
			in.Push(input.Event{Type: input.EventScroll, ScrollX: sx, ScrollY: sy})
		}
	}
}

func (w *sdlWindow) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

func (w *sdlWindow) Size() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

func (w *sdlWindow) FramebufferSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

func (w *sdlWindow) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

func (w *sdlWindow) SetCursorCaptured(captured bool) {
	w.captured = captured
	sdl.SetRelativeMouseMode(captured)
	w.mouse.Reset()
}

func (w *sdlWindow) CursorCaptured() bool {
	return w.captured
}

func (w *sdlWindow) Time() float64 {
	return time.Since(w.start).Seconds()
}

func (w *sdlWindow) ShouldClose() bool {
	return w.closing
}

func (w *sdlWindow) SetShouldClose(v bool) {
	w.closing = v
}

// Close destroys the window and shuts SDL2 down.
func (w *sdlWindow) Close() {
	w.log.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdl.Quit()
}

// sdlKey maps an SDL keycode to input.Key.
func sdlKey(sym sdl.Keycode) input.Key {
	switch {
	case sym >= sdl.K_a && sym <= sdl.K_z:
		return input.KeyA + input.Key(sym-sdl.K_a)
	case sym >= sdl.K_0 && sym <= sdl.K_9:
		return input.Key0 + input.Key(sym-sdl.K_0)
	}
	if k, ok := sdlKeys[sym]; ok {
		return k
	}
	return input.KeyUnknown
}

var sdlKeys = map[sdl.Keycode]input.Key{
	sdl.K_ESCAPE:    input.KeyEscape,
	sdl.K_RETURN:    input.KeyEnter,
	sdl.K_TAB:       input.KeyTab,
	sdl.K_SPACE:     input.KeySpace,
	sdl.K_BACKSPACE: input.KeyBackspace,
	sdl.K_LSHIFT:    input.KeyLeftShift,
	sdl.K_RSHIFT:    input.KeyRightShift,
	sdl.K_LCTRL:     input.KeyLeftControl,
	sdl.K_RCTRL:     input.KeyRightControl,
	sdl.K_UP:        input.KeyUp,
	sdl.K_DOWN:      input.KeyDown,
	sdl.K_LEFT:      input.KeyLeft,
	sdl.K_RIGHT:     input.KeyRight,
	sdl.K_PAGEUP:    input.KeyPageUp,
	sdl.K_PAGEDOWN:  input.KeyPageDown,
	sdl.K_F1:        input.KeyF1,
	sdl.K_F2:        input.KeyF2,
	sdl.K_F3:        input.KeyF3,
	sdl.K_F4:        input.KeyF4,
	sdl.K_F5:        input.KeyF5,
	sdl.K_F12:       input.KeyF12,
}
