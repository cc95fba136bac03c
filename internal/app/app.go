// Package app implements the main loop that runs the examples.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/learn-gl/internal/app/states"
	"github.com/Faultbox/learn-gl/internal/assets"
	"github.com/Faultbox/learn-gl/internal/config"
	"github.com/Faultbox/learn-gl/internal/engine/debug"
	"github.com/Faultbox/learn-gl/internal/engine/input"
	"github.com/Faultbox/learn-gl/internal/engine/renderer"
	"github.com/Faultbox/learn-gl/internal/engine/shader"
	"github.com/Faultbox/learn-gl/internal/engine/texture"
	"github.com/Faultbox/learn-gl/internal/engine/window"
	"github.com/Faultbox/learn-gl/internal/examples"
	"github.com/Faultbox/learn-gl/internal/logger"
)

// App is the example runner.
type App struct {
	config   *config.Config
	log      *zap.Logger
	running  bool
	window   window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager
	textures *texture.Library

	registry *examples.Registry
	current  examples.Info
	context  *states.Context
	states   *states.Manager

	watcher *shader.Watcher
	changes <-chan string
	watched map[string]string // disk path -> asset path

	screenshots *debug.ScreenshotCapture
	stats       *debug.FrameStats
	capture     bool
}

// New opens the window and prepares the starting example. The asset
// manager is owned by the app from here on.
func New(cfg *config.Config, am *assets.Manager) (*App, error) {
	log := logger.Named("app")
	registry := examples.Default()

	start, ok := registry.Lookup(cfg.Examples.Start)
	if !ok {
		return nil, fmt.Errorf("unknown example %q (available: %s)",
			cfg.Examples.Start, strings.Join(registry.Names(), ", "))
	}

	log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("backend", cfg.Window.Backend),
		zap.String("example", start.Name),
	)

	a := &App{
		config:      cfg,
		log:         log,
		assets:      am,
		registry:    registry,
		watched:     make(map[string]string),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, start.Name),
		stats:       debug.NewFrameStats(time.Second),
	}

	// Create window (this also creates the OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Backend:    cfg.Window.Backend,
		GLMajor:    cfg.Window.GLMajor,
		GLMinor:    cfg.Window.GLMinor,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	fbw, fbh := a.window.FramebufferSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:     fbw,
		Height:    fbh,
		Wireframe: cfg.Debug.Wireframe,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.textures = texture.NewLibrary(am)

	if cfg.Debug.HotReload {
		a.watcher, err = shader.NewWatcher()
		if err != nil {
			log.Warn("shader hot reload disabled", zap.Error(err))
			a.watcher = nil
		}
	}

	a.context = &states.Context{
		Assets:   am,
		Textures: a.textures,
		Input:    a.input,
		Window:   a.window,
		Renderer: a.renderer,
		Camera:   cfg.Camera,
		Log:      logger.Named("example"),
		Watch:    a.watch,
	}
	a.states = states.NewManager(a.context)
	a.switchTo(start)

	log.Info("initialized", zap.Int("examples", registry.Len()))
	return a, nil
}

// Run runs the main loop until the window closes, ESC is pressed or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.running = true

	if a.watcher != nil {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		a.changes = a.watcher.Changes()
		go func() {
			if err := a.watcher.Run(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
				a.log.Warn("shader watcher stopped", zap.Error(err))
			}
		}()
	}

	lastTime := time.Now()
	a.log.Info("starting main loop")

	for a.running {
		if ctx.Err() != nil {
			a.log.Info("interrupted")
			break
		}

		// Calculate delta time
		now := time.Now()
		elapsed := now.Sub(lastTime)
		lastTime = now
		dt := elapsed.Seconds()

		// 1. Process input
		a.input.BeginFrame()
		a.window.PollEvents(a.input)
		if a.input.QuitRequested() || a.window.ShouldClose() {
			break
		}
		for _, event := range a.input.Events() {
			if err := a.handleEvent(event); err != nil {
				return fmt.Errorf("input error: %w", err)
			}
		}

		// 2. Recompile edited shaders
		a.reloadShaders()

		// 3. Update current example
		if err := a.update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 4. Render
		a.renderer.Begin()
		if err := a.states.Render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if a.capture {
			a.capture = false
			a.screenshot()
		}

		// 5. Present (swap buffers)
		a.window.SwapBuffers()

		if a.stats.Tick(elapsed) {
			a.log.Debug("frame stats",
				zap.Float64("fps", a.stats.FPS()),
				zap.Duration("avg", a.stats.AvgFrame()),
				zap.Duration("max", a.stats.MaxFrame()),
			)
		}
	}

	return nil
}

// Close releases everything in reverse creation order.
func (a *App) Close() {
	a.log.Info("closing")

	if a.states != nil {
		if err := a.states.Close(); err != nil {
			a.log.Warn("example exit failed", zap.Error(err))
		}
	}
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.textures != nil {
		a.textures.Delete()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
	if a.assets != nil {
		hits, misses := a.assets.Stats()
		a.log.Debug("asset cache", zap.Int("hits", hits), zap.Int("misses", misses))
		a.assets.Close()
	}
}

// update applies a pending example change and updates the current one.
// An example that fails to start is logged and skipped, so the user can
// move on with N or P.
func (a *App) update(dt float64) error {
	entering := a.states.Pending()
	err := a.states.Update(dt)
	if err == nil {
		return nil
	}
	if entering && a.states.Current() == nil {
		a.log.Error("example failed to start", zap.String("example", a.current.Name), zap.Error(err))
		a.window.SetTitle(windowTitle(a.config.Window.Title, a.current, a.registry) + " [failed]")
		return nil
	}
	return err
}

// handleEvent applies global shortcuts and forwards everything else.
func (a *App) handleEvent(event input.Event) error {
	switch event.Type {
	case input.EventWindowResize:
		a.renderer.Resize(a.window.FramebufferSize())
		return nil
	case input.EventKeyDown:
		if event.Repeat {
			break
		}
		if action := globalAction(event.Key); action != actionNone {
			a.apply(action)
			return nil
		}
	}
	return a.states.HandleInput(event)
}

func (a *App) apply(action action) {
	switch action {
	case actionQuit:
		a.running = false
	case actionNext:
		if next, ok := a.registry.Next(a.current.Name); ok {
			a.switchTo(next)
		}
	case actionPrev:
		if prev, ok := a.registry.Prev(a.current.Name); ok {
			a.switchTo(prev)
		}
	case actionWireframe:
		a.renderer.SetWireframe(!a.renderer.Wireframe())
	case actionScreenshot:
		a.capture = true
	case actionCapture:
		a.window.SetCursorCaptured(!a.window.CursorCaptured())
	}
}

// switchTo schedules an example. It starts at the next update.
func (a *App) switchTo(info examples.Info) {
	a.log.Info("switching example", zap.String("example", info.Name), zap.String("title", info.Title))

	a.current = info
	a.states.Change(info.New())
	a.renderer.Reset()
	a.screenshots.SetPrefix(info.Name)
	a.window.SetTitle(windowTitle(a.config.Window.Title, info, a.registry))
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// windowTitle formats "base - title (i/n)".
func windowTitle(base string, info examples.Info, registry *examples.Registry) string {
	for i, name := range registry.Names() {
		if name == info.Name {
			return fmt.Sprintf("%s - %s (%d/%d)", base, info.Title, i+1, registry.Len())
		}
	}
	return fmt.Sprintf("%s - %s", base, info.Title)
}
