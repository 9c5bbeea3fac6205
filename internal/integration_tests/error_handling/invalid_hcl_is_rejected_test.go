package integration_tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/aoc2022/internal/app"
	"github.com/specialistvlad/aoc2022/internal/hcl"
)

// Test for: invalid hcl is rejected
func TestErrorHandling_InvalidHCL_IsRejected(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	invalidHCL := `
		run "disk" {
			day = 7
			params {
		// Missing closing brace here
	`
	manifestPath := filepath.Join(t.TempDir(), "main.hcl")
	if err := os.WriteFile(manifestPath, []byte(invalidHCL), 0o600); err != nil {
		t.Fatalf("failed to write hcl file: %v", err)
	}
	cfg, err := app.NewConfig(app.Config{ManifestPath: manifestPath})
	if err != nil {
		t.Fatalf("invalid config: %v", err)
	}

	// --- Act ---
	_, err = app.NewApp(&app.SafeBuffer{}, &app.SafeBuffer{}, cfg, hcl.NewLoader(), hcl.NewConverter())

	// --- Assert ---
	if err == nil {
		t.Fatal("app.NewApp() should have returned an error for invalid HCL, but it returned nil")
	}
	if !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected error message to indicate an HCL parsing failure, but got: %s", err)
	}
}
