package day08

import (
	"context"
	_ "embed"

	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
	"github.com/specialistvlad/aoc2022/internal/registry"
)

//go:embed example.txt
var example string

// Module implements the registry.Module interface for this package.
type Module struct{}

// Solve computes both answers for a grid.
func Solve(ctx context.Context, input string) ([]puzzle.Part, error) {
	g, err := Parse(input)
	if err != nil {
		return nil, err
	}
	visible := CountVisible(ctx, g)
	ctxlog.FromContext(ctx).Debug("Part one solved.", "visible", visible)

	score, err := MaxScenicScore(ctx, g)
	if err != nil {
		return nil, err
	}
	return []puzzle.Part{
		{Label: "Trees visible", Value: visible},
		{Label: "Scenic score", Value: score},
	}, nil
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Puzzle{
		Day:     8,
		Title:   "Treetop Tree House",
		Example: example,
		Solve: func(ctx context.Context, input string, _ any) ([]puzzle.Part, error) {
			return Solve(ctx, input)
		},
	})
}
