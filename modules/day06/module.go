package day06

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

// Params holds the marker window sizes.
type Params struct {
	Packet  int `aoc:"packet"`
	Message int `aoc:"message"`
}

// Solve finds the start-of-packet and start-of-message markers.
func Solve(ctx context.Context, input string, p *Params) ([]puzzle.Part, error) {
	stream, err := Stream(input)
	if err != nil {
		return nil, err
	}
	packet, err := Marker(ctx, stream, p.Packet)
	if err != nil {
		return nil, err
	}
	message, err := Marker(ctx, stream, p.Message)
	if err != nil {
		return nil, err
	}
	return []puzzle.Part{
		{Label: fmt.Sprintf("Start of packet (%d)", p.Packet), Value: packet},
		{Label: fmt.Sprintf("Start of message (%d)", p.Message), Value: message},
	}, nil
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Puzzle{
		Day:       6,
		Title:     "Tuning Trouble",
		Example:   example,
		NewParams: func() any { return &Params{Packet: 4, Message: 14} },
		Solve: func(ctx context.Context, input string, params any) ([]puzzle.Part, error) {
			return Solve(ctx, input, params.(*Params))
		},
	})
}
