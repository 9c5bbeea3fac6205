package day02

import (
	"context"
	"testing"

	"github.com/specialistvlad/aoc2022/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	rounds, err := Parse(example)

	require.NoError(t, err)
	assert.Equal(t, []Round{
		{Theirs: Rock, Column: 1},
		{Theirs: Paper, Column: 0},
		{Theirs: Scissors, Column: 2},
	}, rounds)
}

func TestParse_Malformed(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		token string
	}{
		{name: "one column", input: "A", token: "A"},
		{name: "bad opponent", input: "D X", token: "D"},
		{name: "bad column", input: "A W", token: "W"},
		{name: "long token", input: "AB X", token: "AB X"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)

			var inputErr *puzzle.InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tc.token, inputErr.Token)
			assert.Equal(t, 1, inputErr.Line)
		})
	}
}

func TestStrategies_Example(t *testing.T) {
	// --- Arrange ---
	rounds, err := Parse(example)
	require.NoError(t, err)
	ctx := context.Background()

	// --- Act ---
	guessed := AsShapes(ctx, rounds)
	actual := AsOutcomes(ctx, rounds)

	// --- Assert ---
	assert.Equal(t, 15, guessed)
	assert.Equal(t, 12, actual)
}
