package day07

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
	"github.com/specialistvlad/aoc2022/internal/registry"
)

//go:embed example.txt
var example string

// Module implements the registry.Module interface for this package.
type Module struct{}

// Params holds the tunable constants of the puzzle.
type Params struct {
	Threshold int64 `aoc:"threshold"`
	Disk      int64 `aoc:"disk"`
	Free      int64 `aoc:"free"`
}

// DefaultParams returns the constants given by the puzzle text.
func DefaultParams() *Params {
	return &Params{Threshold: 100_000, Disk: 70_000_000, Free: 30_000_000}
}

// Solve computes both answers for a transcript.
func Solve(ctx context.Context, input string, p *Params) ([]puzzle.Part, error) {
	if p.Disk <= 0 || p.Free < 0 || p.Free > p.Disk {
		return nil, fmt.Errorf("invalid disk parameters: disk=%d free=%d", p.Disk, p.Free)
	}
	sizes, err := Build(ctx, input)
	if err != nil {
		return nil, err
	}
	small := SumAtMost(sizes, p.Threshold)
	ctxlog.FromContext(ctx).Debug("Part one solved.", "threshold", p.Threshold, "sum", small)

	toDelete, err := SmallestToFree(sizes, p.Disk, p.Free)
	if err != nil {
		return nil, err
	}
	return []puzzle.Part{
		{Label: fmt.Sprintf("Sum of folder sizes at most %d", p.Threshold), Value: small},
		{Label: "Folder size to delete", Value: toDelete},
	}, nil
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Puzzle{
		Day:       7,
		Title:     "No Space Left On Device",
		Example:   example,
		NewParams: func() any { return DefaultParams() },
		Solve: func(ctx context.Context, input string, params any) ([]puzzle.Part, error) {
			return Solve(ctx, input, params.(*Params))
		},
	})
}
