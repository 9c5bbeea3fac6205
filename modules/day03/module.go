package day03

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

// Solve computes the compartment and badge priority sums.
func Solve(ctx context.Context, input string) ([]puzzle.Part, error) {
	sacks, err := Rucksacks(input)
	if err != nil {
		return nil, err
	}
	shared, err := SharedPriority(ctx, sacks)
	if err != nil {
		return nil, err
	}
	badges, err := BadgePriority(ctx, sacks)
	if err != nil {
		return nil, err
	}
	return []puzzle.Part{
		{Label: "Summed priority", Value: shared},
		{Label: "Badges priority", Value: badges},
	}, nil
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Puzzle{
		Day:     3,
		Title:   "Rucksack Reorganization",
		Example: example,
		Solve: func(ctx context.Context, input string, _ any) ([]puzzle.Part, error) {
			return Solve(ctx, input)
		},
	})
}
