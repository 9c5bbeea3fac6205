package day06

import (
	"context"
	"testing"

	"github.com/specialistvlad/aoc2022/internal/puzzle"
	"github.com/specialistvlad/aoc2022/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_SolvesExample(t *testing.T) {
	r := registry.New(&Module{})
	p, ok := r.Lookup(6)
	require.True(t, ok)

	parts, err := p.Solve(context.Background(), p.Example, p.NewParams())

	require.NoError(t, err)
	assert.Equal(t, []puzzle.Part{
		{Label: "Start of packet (4)", Value: 7},
		{Label: "Start of message (14)", Value: 19},
	}, parts)
}
