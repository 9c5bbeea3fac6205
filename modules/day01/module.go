package day01

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/specialistvlad/aoc2022/internal/puzzle"
	"github.com/specialistvlad/aoc2022/internal/registry"
)

//go:embed example.txt
var example string

// Module implements the registry.Module interface for this package.
type Module struct{}

// Params holds the tunable constants of the puzzle.
type Params struct {
	Top int `aoc:"top"`
}

// Solve computes both answers for a list of inventories.
func Solve(ctx context.Context, input string, p *Params) ([]puzzle.Part, error) {
	if p.Top < 1 {
		return nil, fmt.Errorf("invalid top parameter: %d", p.Top)
	}
	totals, err := Totals(ctx, input)
	if err != nil {
		return nil, err
	}
	best, err := TopSum(totals, 1)
	if err != nil {
		return nil, err
	}
	top, err := TopSum(totals, p.Top)
	if err != nil {
		return nil, err
	}
	return []puzzle.Part{
		{Label: "Max calories", Value: best},
		{Label: fmt.Sprintf("Top %d calories", p.Top), Value: top},
	}, nil
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Puzzle{
		Day:       1,
		Title:     "Calorie Counting",
		Example:   example,
		NewParams: func() any { return &Params{Top: 3} },
		Solve: func(ctx context.Context, input string, params any) ([]puzzle.Part, error) {
			return Solve(ctx, input, params.(*Params))
		},
	})
}
