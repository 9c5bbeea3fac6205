package day06

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
)

// Marker returns the number of runes consumed when the last size runes read
// were all distinct.
func Marker(ctx context.Context, stream string, size int) (int, error) {
	if size < 1 {
		return 0, fmt.Errorf("invalid marker size: %d", size)
	}
	runes := []rune(stream)
	seen := make(map[rune]int, size)
	dups := 0
	for i, r := range runes {
		seen[r]++
		if seen[r] == 2 {
			dups++
		}
		if i >= size {
			old := runes[i-size]
			seen[old]--
			if seen[old] == 1 {
				dups--
			}
		}
		if i >= size-1 && dups == 0 {
			ctxlog.FromContext(ctx).Debug("Found marker.", "size", size, "position", i+1)
			return i + 1, nil
		}
	}
	return 0, puzzle.Empty(fmt.Sprintf("marker of %d distinct characters", size))
}

// Stream extracts the datastream from the puzzle input, which must be a
// single non-empty line.
func Stream(input string) (string, error) {
	lines := puzzle.Lines(input)
	if len(lines) != 1 {
		return "", puzzle.Malformed(0, "", fmt.Sprintf("want one line, got %d", len(lines)))
	}
	stream := strings.TrimSpace(lines[0])
	if stream == "" {
		return "", puzzle.Malformed(1, lines[0], "empty datastream")
	}
	return stream, nil
}
