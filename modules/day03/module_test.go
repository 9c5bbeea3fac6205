package day03

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
	p, ok := r.Lookup(3)
	require.True(t, ok)

	parts, err := p.Solve(context.Background(), p.Example, nil)

	require.NoError(t, err)
	assert.Equal(t, []puzzle.Part{
		{Label: "Summed priority", Value: 157},
		{Label: "Badges priority", Value: 70},
	}, parts)
}
