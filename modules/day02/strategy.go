package day02

import (
	"context"
	"strings"

	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
)

// Round is one parsed strategy line. Column keeps the second letter
// uninterpreted (0 for X, 1 for Y, 2 for Z).
type Round struct {
	Theirs Shape
	Column int
}

// Parse reads the strategy guide. Blank lines are ignored.
func Parse(input string) ([]Round, error) {
	var rounds []Round
	for i, raw := range puzzle.Lines(input) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || len(fields[0]) != 1 || len(fields[1]) != 1 {
			return nil, puzzle.Malformed(i+1, line, "want two single-letter columns")
		}
		theirs := fields[0][0]
		if theirs < 'A' || theirs > 'C' {
			return nil, puzzle.Malformed(i+1, fields[0], "unknown opponent shape")
		}
		col := fields[1][0]
		if col < 'X' || col > 'Z' {
			return nil, puzzle.Malformed(i+1, fields[1], "unknown strategy column")
		}
		rounds = append(rounds, Round{Theirs: Shape(theirs-'A') + Rock, Column: int(col - 'X')})
	}
	return rounds, nil
}

// AsShapes scores the guide reading the second column as our shape.
func AsShapes(ctx context.Context, rounds []Round) int {
	total := 0
	for _, r := range rounds {
		total += Score(Shape(r.Column)+Rock, r.Theirs)
	}
	ctxlog.FromContext(ctx).Debug("Scored guide as shapes.", "rounds", len(rounds), "total", total)
	return total
}

// AsOutcomes scores the guide reading the second column as the outcome.
func AsOutcomes(ctx context.Context, rounds []Round) int {
	total := 0
	for _, r := range rounds {
		want := Outcome(r.Column * 3)
		total += Score(Respond(r.Theirs, want), r.Theirs)
	}
	ctxlog.FromContext(ctx).Debug("Scored guide as outcomes.", "rounds", len(rounds), "total", total)
	return total
}
