package day09

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

// Params holds the knot counts of the two ropes.
type Params struct {
	Short int `aoc:"short"`
	Long  int `aoc:"long"`
}

// Solve counts tail positions for the short and the long rope.
func Solve(ctx context.Context, input string, p *Params) ([]puzzle.Part, error) {
	steps, err := Parse(input)
	if err != nil {
		return nil, err
	}
	short, err := TailVisits(ctx, steps, p.Short)
	if err != nil {
		return nil, err
	}
	long, err := TailVisits(ctx, steps, p.Long)
	if err != nil {
		return nil, err
	}
	return []puzzle.Part{
		{Label: fmt.Sprintf("Tail positions (%d knots)", p.Short), Value: short},
		{Label: fmt.Sprintf("Tail positions (%d knots)", p.Long), Value: long},
	}, nil
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Puzzle{
		Day:       9,
		Title:     "Rope Bridge",
		Example:   example,
		NewParams: func() any { return &Params{Short: 2, Long: 10} },
		Solve: func(ctx context.Context, input string, params any) ([]puzzle.Part, error) {
			return Solve(ctx, input, params.(*Params))
		},
	})
}
