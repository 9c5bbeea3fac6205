package day08

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
	"github.com/specialistvlad/aoc2022/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_SolvesExample(t *testing.T) {
	// --- Arrange ---
	r := registry.New(&Module{})
	p, ok := r.Lookup(8)
	require.True(t, ok)
	require.Nil(t, p.NewParams)

	// --- Act ---
	parts, err := p.Solve(context.Background(), p.Example, nil)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []puzzle.Part{
		{Label: "Trees visible", Value: 21},
		{Label: "Scenic score", Value: 8},
	}, parts)
}

func TestSolve_PropagatesErrors(t *testing.T) {
	_, err := Solve(context.Background(), "123\n45")
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Solve(context.Background(), "12\n34")
	require.ErrorIs(t, err, puzzle.ErrEmptyResult)
}

func TestSolve_LogsVisibleCountBeforeScoreFails(t *testing.T) {
	// --- Arrange ---
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	// --- Act ---
	parts, err := Solve(ctx, "12345\n")

	// --- Assert ---
	require.ErrorIs(t, err, puzzle.ErrEmptyResult)
	assert.Nil(t, parts)
	assert.Contains(t, logs.String(), `msg="Part one solved." visible=5`)
}
