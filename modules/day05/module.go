package day05

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

// Solve replays the moves with both crane models.
func Solve(ctx context.Context, input string) ([]puzzle.Part, error) {
	plan, err := Parse(input)
	if err != nil {
		return nil, err
	}
	old, err := Arrange(ctx, plan, CrateMover9000)
	if err != nil {
		return nil, err
	}
	latest, err := Arrange(ctx, plan, CrateMover9001)
	if err != nil {
		return nil, err
	}
	return []puzzle.Part{
		{Label: "Crane 9000", Value: old},
		{Label: "Crane 9001", Value: latest},
	}, nil
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Puzzle{
		Day:     5,
		Title:   "Supply Stacks",
		Example: example,
		Solve: func(ctx context.Context, input string, _ any) ([]puzzle.Part, error) {
			return Solve(ctx, input)
		},
	})
}
