package day02

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

// Solve scores the strategy guide both ways.
func Solve(ctx context.Context, input string) ([]puzzle.Part, error) {
	rounds, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return []puzzle.Part{
		{Label: "Guessed score", Value: AsShapes(ctx, rounds)},
		{Label: "Actual score", Value: AsOutcomes(ctx, rounds)},
	}, nil
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Puzzle{
		Day:     2,
		Title:   "Rock Paper Scissors",
		Example: example,
		Solve: func(ctx context.Context, input string, _ any) ([]puzzle.Part, error) {
			return Solve(ctx, input)
		},
	})
}
