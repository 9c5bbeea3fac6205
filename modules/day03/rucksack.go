package day03

import (
	"context"
	"strings"

	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
)

// GroupSize is the number of rucksacks that share one badge.
const GroupSize = 3

// set is a bitset over the 52 item types, indexed by priority.
type set uint64

func setOf(items string) set {
	var s set
	for i := 0; i < len(items); i++ {
		s |= 1 << Priority(items[i])
	}
	return s
}

// first returns the lowest priority in s, or 0 when s is empty.
func (s set) first() int {
	for p := 1; p <= 52; p++ {
		if s&(1<<p) != 0 {
			return p
		}
	}
	return 0
}

// Priority maps a-z to 1-26 and A-Z to 27-52. Any other byte is 0.
func Priority(item byte) int {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27
	}
	return 0
}

// Rucksacks reads one rucksack per line and validates the item letters.
func Rucksacks(input string) ([]string, error) {
	lines := puzzle.Lines(input)
	out := make([]string, 0, len(lines))
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			return nil, puzzle.Malformed(i+1, raw, "empty rucksack")
		}
		for j := 0; j < len(line); j++ {
			if Priority(line[j]) == 0 {
				return nil, puzzle.Malformed(i+1, line[j:j+1], "invalid item")
			}
		}
		out = append(out, line)
	}
	return out, nil
}

// SharedPriority sums the priority of the item found in both compartments
// of every rucksack.
func SharedPriority(ctx context.Context, sacks []string) (int, error) {
	logger := ctxlog.FromContext(ctx)
	sum := 0
	for i, sack := range sacks {
		if len(sack)%2 != 0 {
			return 0, puzzle.Malformed(i+1, sack, "odd number of items")
		}
		half := len(sack) / 2
		p := (setOf(sack[:half]) & setOf(sack[half:])).first()
		if p == 0 {
			return 0, puzzle.Malformed(i+1, sack, "no item shared by both compartments")
		}
		logger.Debug("Found shared item.", "line", i+1, "priority", p)
		sum += p
	}
	return sum, nil
}

// BadgePriority sums the priority of the badge common to each group of
// GroupSize consecutive rucksacks.
func BadgePriority(ctx context.Context, sacks []string) (int, error) {
	if len(sacks)%GroupSize != 0 {
		return 0, puzzle.Malformed(0, "", "rucksack count is not a multiple of the group size")
	}
	logger := ctxlog.FromContext(ctx)
	sum := 0
	for g := 0; g < len(sacks); g += GroupSize {
		common := ^set(0)
		for _, sack := range sacks[g : g+GroupSize] {
			common &= setOf(sack)
		}
		p := common.first()
		if p == 0 {
			return 0, puzzle.Malformed(g+1, sacks[g], "group has no common badge")
		}
		logger.Debug("Found badge.", "group", g/GroupSize+1, "priority", p)
		sum += p
	}
	return sum, nil
}
