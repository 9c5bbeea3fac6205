package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/aoc2022/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SolvesExample(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, errOut, []string{"8", "--example"})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "Day 8: Treetop Tree House (example)\n    Trees visible: 21\n    Scenic score: 8\n", out.String())
	assert.NotContains(t, out.String(), "level=", "logs must not reach the answer stream")
}

func TestRun_ManifestParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A manifest with a syntax error fails while the app is being built.
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte("run \"disk\" {\n  day = 7\n"), 0o600))

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-m", filePath})

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return ActionExit.
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, errOut, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when help is requested")
	assert.Contains(t, errOut.String(), "Usage:", "Expected help text to be printed to the usage stream")
	assert.Empty(t, out.String())
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_List(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	require.NoError(t, run(context.Background(), out, &bytes.Buffer{}, []string{"list"}))

	assert.Contains(t, out.String(), " 7  No Space Left On Device\n")
}

func TestRun_RuntimeFailure(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"1", "--inputs-dir", t.TempDir()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "puzzle input")
	var exitErr *cli.ExitError
	assert.False(t, errors.As(err, &exitErr), "runtime failures are not usage errors")
}
