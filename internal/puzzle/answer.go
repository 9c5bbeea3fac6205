package puzzle

import (
	"strings"
)

// Part is one labelled answer of a puzzle.
type Part struct {
	Label string `json:"label" yaml:"label"`
	Value any    `json:"value" yaml:"value"`
}

// Answer is the outcome of running one puzzle on one input.
type Answer struct {
	Run     string `json:"run,omitempty" yaml:"run,omitempty"`
	Day     int    `json:"day" yaml:"day"`
	Title   string `json:"title" yaml:"title"`
	Example bool   `json:"example" yaml:"example"`
	Parts   []Part `json:"parts" yaml:"parts"`
}

// Lines splits input into lines, normalizing CRLF and dropping trailing
// blank lines. Interior blank lines are preserved because some grammars use
// them as separators.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
