package day08

import (
	"context"
	"testing"

	"github.com/specialistvlad/aoc2022/internal/geom"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) *Grid {
	t.Helper()
	g, err := Parse(input)
	require.NoError(t, err)
	return g
}

func TestCountVisible_Example(t *testing.T) {
	g := mustParse(t, example)
	assert.Equal(t, 21, CountVisible(context.Background(), g))
}

func TestMaxScenicScore_Example(t *testing.T) {
	g := mustParse(t, example)

	score, err := MaxScenicScore(context.Background(), g)

	require.NoError(t, err)
	assert.Equal(t, 8, score)
}

func TestVisible_ExampleInterior(t *testing.T) {
	g := mustParse(t, example)

	testCases := []struct {
		pos  geom.Point
		want bool
	}{
		{geom.Point{X: 1, Y: 1}, true},  // top-left 5, visible from north and west
		{geom.Point{X: 2, Y: 1}, true},  // top-middle 5
		{geom.Point{X: 3, Y: 1}, false}, // top-right 1
		{geom.Point{X: 1, Y: 2}, true},  // left-middle 5, visible from east
		{geom.Point{X: 2, Y: 2}, false}, // center 3
		{geom.Point{X: 3, Y: 2}, true},  // right-middle 3
		{geom.Point{X: 2, Y: 3}, true},  // bottom-middle 5
		{geom.Point{X: 1, Y: 3}, false},
		{geom.Point{X: 3, Y: 3}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.pos.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, g.Visible(tc.pos))
		})
	}
}

func TestVisibleFrom_TieBlocks(t *testing.T) {
	g := mustParse(t, "555\n555\n555")
	for _, d := range geom.Compass {
		assert.False(t, g.VisibleFrom(geom.Point{X: 1, Y: 1}, d), d.String())
	}
	assert.Equal(t, 8, CountVisible(context.Background(), g))
}

func TestViewingDistance(t *testing.T) {
	g := mustParse(t, example)
	// The 5 in the middle of the fourth row.
	p := geom.Point{X: 2, Y: 3}

	assert.Equal(t, 2, g.ViewingDistance(p, geom.North))
	assert.Equal(t, 2, g.ViewingDistance(p, geom.West))
	assert.Equal(t, 1, g.ViewingDistance(p, geom.South))
	assert.Equal(t, 2, g.ViewingDistance(p, geom.East))
	assert.Equal(t, 8, g.ScenicScore(p))
}

func TestScenicScore_EdgesAreZero(t *testing.T) {
	g := mustParse(t, example)
	for _, p := range g.Positions() {
		if g.At(p).Kind == Edge {
			assert.Zero(t, g.ScenicScore(p), p.String())
		}
	}
}

func TestCountVisible_AtLeastPerimeter(t *testing.T) {
	for _, input := range []string{example, "9999\n9119\n9999", "1\n2\n3", "12345"} {
		g := mustParse(t, input)
		perimeter := 0
		for _, p := range g.Positions() {
			if g.At(p).Kind == Edge {
				perimeter++
			}
		}
		assert.GreaterOrEqual(t, CountVisible(context.Background(), g), perimeter)
	}
}

func TestThinGrids(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		cells int
	}{
		{name: "one row", input: "30373", cells: 5},
		{name: "one column", input: "3\n0\n3", cells: 3},
		{name: "two wide", input: "12\n34\n56", cells: 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			g := mustParse(t, tc.input)

			// --- Act ---
			visible := CountVisible(context.Background(), g)
			_, err := MaxScenicScore(context.Background(), g)

			// --- Assert ---
			assert.Equal(t, tc.cells, visible)
			require.ErrorIs(t, err, puzzle.ErrEmptyResult)
		})
	}
}
