// Package config handles runner configuration loading and management.
package config

import (
	"fmt"
	"strings"
)

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds all runner settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Assets   AssetsConfig   `yaml:"assets"`
	Examples ExamplesConfig `yaml:"examples"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display and context settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Backend    string `yaml:"backend"` // "sdl" or "glfw"
	GLMajor    int    `yaml:"gl_major"`
	GLMinor    int    `yaml:"gl_minor"`
	Samples    int    `yaml:"samples"` // MSAA samples, 0 disables
}

// CameraConfig holds first-person camera tuning.
type CameraConfig struct {
	Speed       float32 `yaml:"speed"`       // world units per second
	Sensitivity float32 `yaml:"sensitivity"` // degrees per pixel
	FOV         float32 `yaml:"fov"`         // initial zoom in degrees
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
}

// AssetsConfig holds asset lookup settings.
type AssetsConfig struct {
	Root string `yaml:"root"` // overlaid on top of the embedded shaders
}

// ExamplesConfig selects which example runs first.
type ExamplesConfig struct {
	Start string `yaml:"start"`
}

// DebugConfig holds developer conveniences.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	HotReload     bool   `yaml:"hot_reload"`
	Wireframe     bool   `yaml:"wireframe"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the classic tutorial settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:   "LearnGL",
			Width:   800,
			Height:  600,
			VSync:   true,
			Backend: BackendSDL,
			GLMajor: 4,
			GLMinor: 1,
		},
		Camera: CameraConfig{
			Speed:       2.5,
			Sensitivity: 0.1,
			FOV:         45,
			Near:        0.1,
			Far:         100,
		},
		Assets: AssetsConfig{
			Root: "assets",
		},
		Examples: ExamplesConfig{
			Start: "triangle",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration can be used to open a window.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	switch strings.ToLower(c.Window.Backend) {
	case BackendSDL, BackendGLFW:
	default:
		return fmt.Errorf("unknown window backend %q", c.Window.Backend)
	}
	// Bundled shaders are #version 410 core
	if c.Window.GLMajor < 4 || (c.Window.GLMajor == 4 && c.Window.GLMinor < 1) {
		return fmt.Errorf("OpenGL %d.%d is too old, need at least 4.1", c.Window.GLMajor, c.Window.GLMinor)
	}
	if c.Camera.FOV < 1 || c.Camera.FOV > 45 {
		return fmt.Errorf("camera fov must be within [1, 45], got %g", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 {
		return fmt.Errorf("camera near plane must be positive, got %g", c.Camera.Near)
	}
	if c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera far plane (%g) must be beyond near plane (%g)", c.Camera.Far, c.Camera.Near)
	}
	return nil
}
