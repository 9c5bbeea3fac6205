package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput marks input that does not match a puzzle's grammar.
	ErrMalformedInput = errors.New("malformed input")
	// ErrEmptyResult marks a max/min query that had no candidates.
	ErrEmptyResult = errors.New("empty result")
)

// InputError describes the offending part of a puzzle input.
type InputError struct {
	Line   int // 1-based, 0 when the error is not tied to a line
	Token  string
	Reason string
}

// Error implements the error interface for InputError.
func (e *InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s %q", ErrMalformedInput, e.Line, e.Reason, e.Token)
	}
	return fmt.Sprintf("%s: %s %q", ErrMalformedInput, e.Reason, e.Token)
}

// Unwrap lets errors.Is match ErrMalformedInput.
func (e *InputError) Unwrap() error {
	return ErrMalformedInput
}

// Malformed is a shorthand for building an *InputError.
func Malformed(line int, token, reason string) error {
	return &InputError{Line: line, Token: token, Reason: reason}
}

// Empty wraps ErrEmptyResult with the name of the query that had no candidates.
func Empty(query string) error {
	return fmt.Errorf("%s: %w", query, ErrEmptyResult)
}
