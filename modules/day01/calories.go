package day01

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
)

// Totals returns the calorie total of every elf, in input order. The last
// group counts even when the input does not end with a blank line.
func Totals(ctx context.Context, input string) ([]int, error) {
	var (
		totals  []int
		current int
		open    bool
	)
	for i, raw := range puzzle.Lines(input) {
		line := strings.TrimSpace(raw)
		if line == "" {
			if open {
				totals = append(totals, current)
			}
			current, open = 0, false
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 {
			return nil, puzzle.Malformed(i+1, line, "invalid calorie count")
		}
		current += n
		open = true
	}
	if open {
		totals = append(totals, current)
	}
	ctxlog.FromContext(ctx).Debug("Summed inventories.", "elves", len(totals))
	return totals, nil
}

// TopSum returns the sum of the n largest totals. Fewer than n totals are
// summed as they are; no totals at all is an empty result.
func TopSum(totals []int, n int) (int, error) {
	if len(totals) == 0 {
		return 0, puzzle.Empty("top calories")
	}
	sorted := slices.Clone(totals)
	slices.SortFunc(sorted, func(a, b int) int { return b - a })
	sum := 0
	for _, v := range sorted[:min(n, len(sorted))] {
		sum += v
	}
	return sum, nil
}
