package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/aoc2022/internal/puzzle"
)

// SolveFunc solves one puzzle. params is the value returned by the puzzle's
// NewParams, after any manifest overrides have been applied.
type SolveFunc func(ctx context.Context, input string, params any) ([]puzzle.Part, error)

// Puzzle is the compiled definition of one day.
type Puzzle struct {
	Day     int
	Title   string
	Example string
	// NewParams returns a pointer to a struct holding the default parameters.
	// Fields are addressed from manifests through their `aoc` tag. Nil means
	// the puzzle takes no parameters.
	NewParams func() any
	Solve     SolveFunc
}

// Module is the interface that all puzzle modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered puzzles for a single application instance.
type Registry struct {
	puzzles map[int]*Puzzle
}

// New creates and initializes a new Registry instance.
func New(modules ...Module) *Registry {
	r := &Registry{puzzles: make(map[int]*Puzzle)}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// Register adds a puzzle. Registering the same day twice is a programmer
// error and panics.
func (r *Registry) Register(p *Puzzle) {
	if p == nil || p.Solve == nil {
		panic("registry: puzzle must have a solve function")
	}
	if p.Day < 1 || p.Day > 25 {
		panic(fmt.Sprintf("registry: day %d is out of range", p.Day))
	}
	if _, exists := r.puzzles[p.Day]; exists {
		panic(fmt.Sprintf("registry: day %d already registered", p.Day))
	}
	slog.Debug("Registering puzzle.", "day", p.Day, "title", p.Title)
	r.puzzles[p.Day] = p
}

// Lookup returns the puzzle registered for day.
func (r *Registry) Lookup(day int) (*Puzzle, bool) {
	p, ok := r.puzzles[day]
	return p, ok
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.puzzles))
	for d := range r.puzzles {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Latest returns the highest registered day.
func (r *Registry) Latest() (*Puzzle, bool) {
	days := r.Days()
	if len(days) == 0 {
		return nil, false
	}
	return r.puzzles[days[len(days)-1]], true
}

// Len returns the number of registered puzzles.
func (r *Registry) Len() int {
	return len(r.puzzles)
}
