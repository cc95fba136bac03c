package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Window.Backend != BackendSDL {
		t.Errorf("expected sdl backend, got %s", cfg.Window.Backend)
	}
	if cfg.Window.GLMajor != 4 || cfg.Window.GLMinor != 1 {
		t.Errorf("expected GL 4.1, got %d.%d", cfg.Window.GLMajor, cfg.Window.GLMinor)
	}

	if cfg.Camera.FOV != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Sensitivity != 0.1 {
		t.Errorf("expected sensitivity 0.1, got %f", cfg.Camera.Sensitivity)
	}

	if cfg.Examples.Start != "triangle" {
		t.Errorf("expected start example 'triangle', got %s", cfg.Examples.Start)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  backend: glfw
  samples: 4

camera:
  speed: 5
  sensitivity: 0.2
  fov: 30

assets:
  root: "/opt/learngl/assets"

examples:
  start: "model"

debug:
  hot_reload: true
  screenshot_dir: "shots"

logging:
  level: "debug"
  log_file: "learngl.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Window.Backend != BackendGLFW {
		t.Errorf("expected glfw backend, got %s", cfg.Window.Backend)
	}
	if cfg.Window.Samples != 4 {
		t.Errorf("expected 4 samples, got %d", cfg.Window.Samples)
	}

	if cfg.Camera.Speed != 5 {
		t.Errorf("expected speed 5, got %f", cfg.Camera.Speed)
	}
	if cfg.Camera.FOV != 30 {
		t.Errorf("expected fov 30, got %f", cfg.Camera.FOV)
	}
	// Untouched keys keep their defaults
	if cfg.Camera.Far != 100 {
		t.Errorf("expected far plane to stay 100, got %f", cfg.Camera.Far)
	}

	if cfg.Assets.Root != "/opt/learngl/assets" {
		t.Errorf("expected asset root from file, got %s", cfg.Assets.Root)
	}
	if cfg.Examples.Start != "model" {
		t.Errorf("expected start example 'model', got %s", cfg.Examples.Start)
	}
	if !cfg.Debug.HotReload {
		t.Error("expected hot reload to be enabled")
	}
	if cfg.Debug.ScreenshotDir != "shots" {
		t.Errorf("expected screenshot dir 'shots', got %s", cfg.Debug.ScreenshotDir)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "learngl.log" {
		t.Errorf("expected log file 'learngl.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "learngl.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find learngl.yaml in current directory")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"glfw backend", func(c *Config) { c.Window.Backend = "GLFW" }, false},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Window.Height = -1 }, true},
		{"unknown backend", func(c *Config) { c.Window.Backend = "vulkan" }, true},
		{"gl 3.2", func(c *Config) { c.Window.GLMajor, c.Window.GLMinor = 3, 2 }, true},
		{"gl 3.3", func(c *Config) { c.Window.GLMajor, c.Window.GLMinor = 3, 3 }, true},
		{"gl 4.0", func(c *Config) { c.Window.GLMajor, c.Window.GLMinor = 4, 0 }, true},
		{"gl 4.1", func(c *Config) { c.Window.GLMajor, c.Window.GLMinor = 4, 1 }, false},
		{"gl 4.6", func(c *Config) { c.Window.GLMajor, c.Window.GLMinor = 4, 6 }, false},
		{"fov too wide", func(c *Config) { c.Camera.FOV = 90 }, true},
		{"fov too narrow", func(c *Config) { c.Camera.FOV = 0.5 }, true},
		{"near zero", func(c *Config) { c.Camera.Near = 0 }, true},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "example flag",
			setup: func() { *flagExample = "light-casters" },
			verify: func(cfg *Config) {
				if cfg.Examples.Start != "light-casters" {
					t.Errorf("expected start example light-casters, got %s", cfg.Examples.Start)
				}
			},
			teardown: func() { *flagExample = "" },
		},
		{
			name:  "backend flag is lowercased",
			setup: func() { *flagBackend = "GLFW" },
			verify: func(cfg *Config) {
				if cfg.Window.Backend != BackendGLFW {
					t.Errorf("expected backend glfw, got %s", cfg.Window.Backend)
				}
			},
			teardown: func() { *flagBackend = "" },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "assets and hot reload flags",
			setup: func() {
				*flagAssets = "/tmp/assets"
				*flagHotReload = true
			},
			verify: func(cfg *Config) {
				if cfg.Assets.Root != "/tmp/assets" {
					t.Errorf("expected asset root /tmp/assets, got %s", cfg.Assets.Root)
				}
				if !cfg.Debug.HotReload {
					t.Error("expected hot reload to be enabled")
				}
			},
			teardown: func() {
				*flagAssets = ""
				*flagHotReload = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	cfg := Default()
	cfg.Window.Backend = BackendGLFW
	cfg.Examples.Start = "skybox"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Window.Backend != BackendGLFW {
		t.Errorf("expected backend glfw after reload, got %s", loaded.Window.Backend)
	}
	if loaded.Examples.Start != "skybox" {
		t.Errorf("expected start skybox after reload, got %s", loaded.Examples.Start)
	}
}
