// Package main is the entry point for the LearnGL example runner.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"go.uber.org/zap"

	bundled "github.com/Faultbox/learn-gl/assets"
	"github.com/Faultbox/learn-gl/internal/app"
	"github.com/Faultbox/learn-gl/internal/assets"
	"github.com/Faultbox/learn-gl/internal/config"
	"github.com/Faultbox/learn-gl/internal/examples"
	"github.com/Faultbox/learn-gl/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	if config.ListRequested() {
		printExamples(os.Stdout, examples.All())
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("runner error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("closed normally")
	logger.Sync()
}

func run(cfg *config.Config) error {
	logger.Info("=== LearnGL ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg, newAssets(cfg))
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}

// newAssets layers the asset root over the embedded shaders. A missing
// root is not an error: shaders still load and textures fall back to
// the placeholder.
func newAssets(cfg *config.Config) *assets.Manager {
	m := assets.NewManager()
	m.AddFS("embedded", bundled.FS)

	if cfg.Assets.Root != "" {
		if err := m.AddDir(cfg.Assets.Root); err != nil {
			logger.Warn("asset root not available, using embedded shaders only",
				zap.String("root", cfg.Assets.Root),
				zap.Error(err),
			)
		}
	}
	logger.Debug("asset layers", zap.Strings("layers", m.Layers()))
	return m
}

// printExamples writes the example table shown by -list.
func printExamples(w io.Writer, infos []examples.Info) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTITLE\tCHAPTER")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Name, info.Title, info.Chapter)
	}
	tw.Flush()
}
