package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestLoader_LoadFile(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	path := writeManifest(t, dir, "main.hcl", `
inputs_dir = "puzzles"

run "disk" {
  day = 7
  params {
    threshold = 50000
  }
}

run "trees" {
  day     = 8
  example = true
}
`)

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "puzzles", model.InputsDir)
	require.Len(t, model.Runs, 2)

	disk := model.Runs[0]
	assert.Equal(t, "disk", disk.Name)
	assert.Equal(t, 7, disk.Day)
	assert.False(t, disk.Example)
	assert.Equal(t, path, disk.Source)
	require.Contains(t, disk.Params, "threshold")

	trees := model.Runs[1]
	assert.True(t, trees.Example)
	assert.Empty(t, trees.Params)
}

func TestLoader_LoadDirectoryMergesInOrder(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	writeManifest(t, dir, "b.hcl", `run "second" { day = 2 }`)
	writeManifest(t, dir, "a.hcl", `run "first" { day = 1 }`)

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), dir)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, model.Runs, 2)
	assert.Equal(t, "first", model.Runs[0].Name)
	assert.Equal(t, "second", model.Runs[1].Name)
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "syntax error", src: `run "a" {`, wantErr: "failed to parse manifest"},
		{name: "missing day", src: `run "a" {}`, wantErr: "failed to decode manifest"},
		{name: "day out of range", src: `run "a" { day = 26 }`, wantErr: "day 26 is out of range"},
		{name: "duplicate run", src: "run \"a\" { day = 1 }\nrun \"a\" { day = 2 }", wantErr: `run "a" already declared`},
		{name: "example with input", src: `run "a" {
  day     = 1
  example = true
  input   = "x.txt"
}`, wantErr: "mutually exclusive"},
		{name: "nested block in params", src: `run "a" {
  day = 1
  params {
    inner {}
  }
}`, wantErr: "invalid params block"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().LoadSource(context.Background(), "test.hcl", []byte(tc.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoader_ConflictingInputsDir(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "a.hcl", `inputs_dir = "one"`)
	writeManifest(t, dir, "b.hcl", `inputs_dir = "two"`)

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicts")
}

func TestLoader_MissingPath(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to access manifest path")
}
