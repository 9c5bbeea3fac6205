// Package report renders puzzle answers for the terminal or for other
// programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/aoc2022/internal/puzzle"
	"gopkg.in/yaml.v3"
)

// Format selects how answers are rendered.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the supported formats in the order they are documented.
var Formats = []Format{Text, JSON, YAML}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q: must be one of text, json, yaml", s)
}

// Write renders answers to w in format f.
func Write(w io.Writer, f Format, answers []*puzzle.Answer) error {
	switch f {
	case Text, "":
		return writeText(w, answers)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(nonNil(answers))
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nonNil(answers)); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", f)
}

// nonNil makes an empty report encode as an empty list rather than null.
func nonNil(answers []*puzzle.Answer) []*puzzle.Answer {
	if answers == nil {
		return []*puzzle.Answer{}
	}
	return answers
}

func writeText(w io.Writer, answers []*puzzle.Answer) error {
	var b strings.Builder
	for _, a := range answers {
		fmt.Fprintf(&b, "Day %d: %s", a.Day, a.Title)
		if a.Example {
			b.WriteString(" (example)")
		}
		if a.Run != "" {
			fmt.Fprintf(&b, " [%s]", a.Run)
		}
		b.WriteByte('\n')
		for _, p := range a.Parts {
			fmt.Fprintf(&b, "    %s: %v\n", p.Label, p.Value)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
