package day05

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/specialistvlad/aoc2022/internal/puzzle"
)

// Stacks holds the crates of every stack, bottom first.
type Stacks [][]byte

// Clone returns a deep copy of s.
func (s Stacks) Clone() Stacks {
	out := make(Stacks, len(s))
	for i, stack := range s {
		out[i] = slices.Clone(stack)
	}
	return out
}

// Tops returns the top crate of every stack, left to right.
func (s Stacks) Tops() (string, error) {
	var b strings.Builder
	for i, stack := range s {
		if len(stack) == 0 {
			return "", puzzle.Empty(fmt.Sprintf("top of stack %d", i+1))
		}
		b.WriteByte(stack[len(stack)-1])
	}
	return b.String(), nil
}

// Move is one `move n from a to b` instruction. From and To are 0-based;
// Line is the 1-based input line.
type Move struct {
	Count, From, To int
	Line            int
}

// Plan is the parsed puzzle input.
type Plan struct {
	Stacks Stacks
	Moves  []Move
}

// Parse splits the input into the drawing and the move list.
func Parse(input string) (*Plan, error) {
	lines := puzzle.Lines(input)
	footer := slices.IndexFunc(lines, func(l string) bool {
		l = strings.TrimSpace(l)
		return l != "" && l[0] >= '0' && l[0] <= '9'
	})
	if footer < 0 {
		return nil, puzzle.Malformed(0, "", "no stack number footer")
	}
	count := len(strings.Fields(lines[footer]))

	stacks := make(Stacks, count)
	for i := footer - 1; i >= 0; i-- {
		if err := parseCrates(i+1, lines[i], stacks); err != nil {
			return nil, err
		}
	}

	plan := &Plan{Stacks: stacks}
	for i := footer + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		m, err := parseMove(i+1, line, count)
		if err != nil {
			return nil, err
		}
		plan.Moves = append(plan.Moves, m)
	}
	return plan, nil
}

// parseCrates reads one drawing row. Crate k sits at column 1+4k.
func parseCrates(n int, line string, stacks Stacks) error {
	for k := range stacks {
		col := 1 + 4*k
		if col >= len(line) || line[col] == ' ' {
			continue
		}
		if line[col-1] != '[' || col+1 >= len(line) || line[col+1] != ']' {
			return puzzle.Malformed(n, line, fmt.Sprintf("invalid crate in column %d", k+1))
		}
		stacks[k] = append(stacks[k], line[col])
	}
	if len(line) > 4*len(stacks) && strings.TrimSpace(line[4*len(stacks):]) != "" {
		return puzzle.Malformed(n, line, "crate beyond the last stack")
	}
	return nil
}

func parseMove(n int, line string, count int) (Move, error) {
	f := strings.Fields(line)
	if len(f) != 6 || f[0] != "move" || f[2] != "from" || f[4] != "to" {
		return Move{}, puzzle.Malformed(n, line, "want 'move N from A to B'")
	}
	var nums [3]int
	for i, tok := range []string{f[1], f[3], f[5]} {
		v, err := strconv.Atoi(tok)
		if err != nil || v < 0 {
			return Move{}, puzzle.Malformed(n, tok, "invalid number")
		}
		nums[i] = v
	}
	from, to := nums[1], nums[2]
	if from < 1 || from > count || to < 1 || to > count {
		return Move{}, puzzle.Malformed(n, line, fmt.Sprintf("stack out of range 1-%d", count))
	}
	return Move{Count: nums[0], From: from - 1, To: to - 1, Line: n}, nil
}
