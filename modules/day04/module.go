package day04

import (
	"context"
	_ "embed"

	"github.com/specialistvlad/aoc2022/internal/puzzle"
	"github.com/specialistvlad/aoc2022/internal/registry"
)

//go:embed example.txt
var example string

// Module implements the registry.Module interface for this package.
type Module struct{}

// Solve counts fully and partially overlapping assignments.
func Solve(ctx context.Context, input string) ([]puzzle.Part, error) {
	pairs, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return []puzzle.Part{
		{Label: "Fully overlap", Value: CountContained(ctx, pairs)},
		{Label: "Partial overlap", Value: CountOverlapping(ctx, pairs)},
	}, nil
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Puzzle{
		Day:     4,
		Title:   "Camp Cleanup",
		Example: example,
		Solve: func(ctx context.Context, input string, _ any) ([]puzzle.Part, error) {
			return Solve(ctx, input)
		},
	})
}
