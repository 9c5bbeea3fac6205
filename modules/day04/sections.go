package day04

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
)

// Range is an inclusive range of section IDs.
type Range struct {
	Lo, Hi int
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return r.Lo <= o.Lo && o.Hi <= r.Hi
}

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool {
	return r.Lo <= o.Hi && o.Lo <= r.Hi
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
}

// Pair is the two assignments of one line.
type Pair [2]Range

func parseRange(n int, s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, puzzle.Malformed(n, s, "range without '-'")
	}
	a, errA := strconv.Atoi(lo)
	b, errB := strconv.Atoi(hi)
	if errA != nil || errB != nil {
		return Range{}, puzzle.Malformed(n, s, "invalid section id")
	}
	if a > b {
		return Range{}, puzzle.Malformed(n, s, "range start after end")
	}
	return Range{Lo: a, Hi: b}, nil
}

// Parse reads one `a-b,c-d` pair per line.
func Parse(input string) ([]Pair, error) {
	var pairs []Pair
	for i, raw := range puzzle.Lines(input) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		left, right, ok := strings.Cut(line, ",")
		if !ok {
			return nil, puzzle.Malformed(i+1, line, "pair without ','")
		}
		a, err := parseRange(i+1, left)
		if err != nil {
			return nil, err
		}
		b, err := parseRange(i+1, right)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{a, b})
	}
	return pairs, nil
}

// CountContained counts pairs where one range fully contains the other.
func CountContained(ctx context.Context, pairs []Pair) int {
	n := 0
	for _, p := range pairs {
		if p[0].Contains(p[1]) || p[1].Contains(p[0]) {
			n++
		}
	}
	ctxlog.FromContext(ctx).Debug("Counted contained pairs.", "pairs", len(pairs), "contained", n)
	return n
}

// CountOverlapping counts pairs whose ranges overlap at all.
func CountOverlapping(ctx context.Context, pairs []Pair) int {
	n := 0
	for _, p := range pairs {
		if p[0].Overlaps(p[1]) {
			n++
		}
	}
	ctxlog.FromContext(ctx).Debug("Counted overlapping pairs.", "pairs", len(pairs), "overlapping", n)
	return n
}
