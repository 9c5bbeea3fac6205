package day09

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/geom"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
)

// Step moves the head Count times in Dir.
type Step struct {
	Dir   geom.Direction
	Count int
}

var directions = map[string]geom.Direction{
	"U": geom.North,
	"D": geom.South,
	"R": geom.East,
	"L": geom.West,
}

// Parse reads one `<U|D|L|R> <count>` step per line.
func Parse(input string) ([]Step, error) {
	var steps []Step
	for i, raw := range puzzle.Lines(input) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		dir, count, ok := strings.Cut(line, " ")
		if !ok {
			return nil, puzzle.Malformed(i+1, line, "want a direction and a count")
		}
		d, ok := directions[strings.ToUpper(dir)]
		if !ok {
			return nil, puzzle.Malformed(i+1, dir, "unknown direction")
		}
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || n < 0 {
			return nil, puzzle.Malformed(i+1, count, "invalid step count")
		}
		steps = append(steps, Step{Dir: d, Count: n})
	}
	return steps, nil
}

// Rope is a chain of knots; knot 0 is the head.
type Rope struct {
	knots []geom.Point
}

// NewRope returns a rope of n knots, all at the origin.
func NewRope(n int) (*Rope, error) {
	if n < 1 {
		return nil, fmt.Errorf("rope needs at least one knot, got %d", n)
	}
	return &Rope{knots: make([]geom.Point, n)}, nil
}

// Tail returns the position of the last knot.
func (r *Rope) Tail() geom.Point { return r.knots[len(r.knots)-1] }

// Move advances the head by one position in d and lets the rest follow.
// Propagation stops at the first knot that does not need to move.
func (r *Rope) Move(d geom.Direction) {
	r.knots[0] = r.knots[0].Add(d.Delta())
	for i := 1; i < len(r.knots); i++ {
		lead := r.knots[i-1]
		if r.knots[i].Touching(lead) {
			return
		}
		r.knots[i] = r.knots[i].Toward(lead)
	}
}

// TailVisits replays steps on a rope of n knots and counts the distinct
// positions of its tail, including the starting one.
func TailVisits(ctx context.Context, steps []Step, n int) (int, error) {
	rope, err := NewRope(n)
	if err != nil {
		return 0, err
	}
	logger := ctxlog.FromContext(ctx)
	visited := map[geom.Point]struct{}{rope.Tail(): {}}
	for i, s := range steps {
		for range s.Count {
			rope.Move(s.Dir)
			visited[rope.Tail()] = struct{}{}
		}
		logger.Debug("Applied step.", "step", i+1, "dir", s.Dir.String(), "count", s.Count, "tail", rope.Tail().String())
	}
	return len(visited), nil
}
