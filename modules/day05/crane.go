package day05

import (
	"context"
	"fmt"

	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
)

// Crane applies one move to the stacks.
type Crane func(s Stacks, m Move)

// CrateMover9000 moves crates one at a time, reversing their order.
func CrateMover9000(s Stacks, m Move) {
	for range m.Count {
		top := len(s[m.From]) - 1
		s[m.To] = append(s[m.To], s[m.From][top])
		s[m.From] = s[m.From][:top]
	}
}

// CrateMover9001 moves all crates of a move at once, keeping their order.
func CrateMover9001(s Stacks, m Move) {
	cut := len(s[m.From]) - m.Count
	s[m.To] = append(s[m.To], s[m.From][cut:]...)
	s[m.From] = s[m.From][:cut]
}

// Arrange replays the plan with crane on a copy of the stacks and returns
// the top crates.
func Arrange(ctx context.Context, plan *Plan, crane Crane) (string, error) {
	logger := ctxlog.FromContext(ctx)
	stacks := plan.Stacks.Clone()
	for i, m := range plan.Moves {
		if len(stacks[m.From]) < m.Count {
			return "", puzzle.Malformed(m.Line, fmt.Sprintf("%d", m.Count),
				fmt.Sprintf("stack %d holds only %d crates", m.From+1, len(stacks[m.From])))
		}
		crane(stacks, m)
		logger.Debug("Moved crates.", "move", i+1, "count", m.Count, "from", m.From+1, "to", m.To+1)
	}
	return stacks.Tops()
}
