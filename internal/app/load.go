package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/aoc2022/internal/config"
	"github.com/specialistvlad/aoc2022/internal/ctxlog"
)

// loadManifest loads the run manifest at path. An empty path yields a nil
// model.
func loadManifest(ctx context.Context, loader config.Loader, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	if path == "" {
		logger.Debug("No manifest configured.")
		return nil, nil
	}
	if loader == nil {
		return nil, fmt.Errorf("manifest %s given but no loader is configured", path)
	}

	logger.Debug("Loading manifest...", "path", path)
	model, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}
	logger.Debug("Manifest loaded and translated into unified model.", "runs", len(model.Runs))
	return model, nil
}
