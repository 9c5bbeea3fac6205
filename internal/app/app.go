package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/aoc2022/internal/config"
	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	registry  *registry.Registry
	manifest  *config.Model
	converter config.Converter
}

// NewApp is the constructor for the main application. Answers are written
// to outW and logs to logW. The manifest, if configured, is loaded here so
// that a broken manifest fails before any puzzle runs. With no modules the
// built-in puzzles are registered.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, converter config.Converter, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW, uuid.NewString())
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.New(modules...)
	logger.Debug("All puzzle modules registered.", "count", reg.Len())

	// A params struct that cannot be decoded is a programmer error, so we panic.
	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	manifest, err := loadManifest(ctx, loader, cfg.ManifestPath)
	if err != nil {
		return nil, err
	}

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		registry:  reg,
		manifest:  manifest,
		converter: converter,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// List writes the registered days and their titles.
func (a *App) List() error {
	for _, day := range a.registry.Days() {
		p, _ := a.registry.Lookup(day)
		if _, err := fmt.Fprintf(a.outW, "%2d  %s\n", p.Day, p.Title); err != nil {
			return err
		}
	}
	return nil
}
