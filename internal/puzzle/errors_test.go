package puzzle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputError_MatchesSentinel(t *testing.T) {
	err := Malformed(3, "abc", "invalid file size")

	require.True(t, errors.Is(err, ErrMalformedInput))
	assert.False(t, errors.Is(err, ErrEmptyResult))

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, 3, inputErr.Line)
	assert.Equal(t, "abc", inputErr.Token)
	assert.Equal(t, `malformed input: line 3: invalid file size "abc"`, err.Error())
}

func TestInputError_WithoutLine(t *testing.T) {
	err := Malformed(0, "x", "invalid digit")
	assert.Equal(t, `malformed input: invalid digit "x"`, err.Error())
}

func TestEmpty_WrapsSentinel(t *testing.T) {
	err := Empty("max scenic score")
	require.ErrorIs(t, err, ErrEmptyResult)
	assert.Equal(t, "max scenic score: empty result", err.Error())
}

func TestLines(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "trailing newline", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "interior blank kept", input: "a\n\nb\n\n\n", want: []string{"a", "", "b"}},
		{name: "empty", input: "", want: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Lines(tc.input))
		})
	}
}
