package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/aoc2022/internal/config"
	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/fsutil"
	"github.com/specialistvlad/aoc2022/internal/schema"
)

// ManifestExtension is the file extension picked up when a directory is loaded.
const ManifestExtension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every manifest found under paths and merges them into a
// single model. Run names must be unique across all files, and inputs_dir may
// only be set to one value.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to access manifest path %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		found, err := fsutil.FindFilesByExtension(p, ManifestExtension)
		if err != nil {
			return nil, fmt.Errorf("failed to walk manifest directory %s: %w", p, err)
		}
		if len(found) == 0 {
			logger.Warn("No manifest files found in path.", "path", p)
		}
		files = append(files, found...)
	}
	logger.Debug("Found manifest files to load.", "files", files)

	parser := hclparse.NewParser()
	model := &config.Model{}
	for _, filePath := range files {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", filePath, diags)
		}
		if err := l.merge(ctx, model, hclFile, filePath); err != nil {
			return nil, err
		}
	}

	logger.Info("Manifests loaded successfully.", "files", len(files), "runs", len(model.Runs))
	return model, nil
}

// LoadSource parses a single manifest held in memory.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}
	model := &config.Model{}
	if err := l.merge(ctx, model, hclFile, filename); err != nil {
		return nil, err
	}
	return model, nil
}

// merge decodes one parsed file and appends its runs to model.
func (l *Loader) merge(ctx context.Context, model *config.Model, file *hcl.File, filePath string) error {
	logger := ctxlog.FromContext(ctx)

	var manifest schema.Manifest
	if diags := gohcl.DecodeBody(file.Body, nil, &manifest); diags.HasErrors() {
		return fmt.Errorf("failed to decode manifest %s: %w", filePath, diags)
	}

	if manifest.InputsDir != nil {
		if model.InputsDir != "" && model.InputsDir != *manifest.InputsDir {
			return fmt.Errorf("manifest %s: inputs_dir %q conflicts with previously loaded %q", filePath, *manifest.InputsDir, model.InputsDir)
		}
		model.InputsDir = *manifest.InputsDir
	}

	for _, s := range manifest.Runs {
		for _, existing := range model.Runs {
			if existing.Name == s.Name {
				return fmt.Errorf("manifest %s: run %q already declared in %s", filePath, s.Name, existing.Source)
			}
		}
		run, err := l.translateRun(s, filePath)
		if err != nil {
			return err
		}
		model.Runs = append(model.Runs, run)
		logger.Debug("Loaded run from manifest.", "run", run.Name, "day", run.Day, "file", filePath)
	}
	return nil
}
