package day08

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/aoc2022/internal/geom"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
)

// Kind tells boundary cells apart from interior ones.
type Kind int

const (
	Interior Kind = iota
	Edge
)

// Cell is one tree of the grid.
type Cell struct {
	Height uint8
	Kind   Kind
}

func (c Cell) String() string {
	if c.Kind == Edge {
		return fmt.Sprintf("E(%d)", c.Height)
	}
	return fmt.Sprintf("V(%d)", c.Height)
}

// Grid is an immutable, dense, row-major grid of cells.
type Grid struct {
	width, height int
	cells         []Cell
}

// Parse reads a grid of digits, one row per line. Rows must all have the
// same length.
func Parse(input string) (*Grid, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, puzzle.Malformed(0, "", "empty grid")
	}

	g := &Grid{height: len(lines)}
	for y, raw := range lines {
		row := strings.TrimSpace(raw)
		if y == 0 {
			if row == "" {
				return nil, puzzle.Malformed(1, raw, "empty row")
			}
			g.width = len(row)
			g.cells = make([]Cell, 0, g.width*g.height)
		}
		if len(row) != g.width {
			return nil, puzzle.Malformed(y+1, row, fmt.Sprintf("row has %d cells, want %d", len(row), g.width))
		}
		for x := 0; x < len(row); x++ {
			c := row[x]
			if c < '0' || c > '9' {
				return nil, puzzle.Malformed(y+1, string(c), fmt.Sprintf("invalid height at column %d", x+1))
			}
			kind := Interior
			if x == 0 || y == 0 || x == g.width-1 || y == g.height-1 {
				kind = Edge
			}
			g.cells = append(g.cells, Cell{Height: c - '0', Kind: kind})
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// In reports whether p lies inside the grid.
func (g *Grid) In(p geom.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// At returns the cell at p. p must be inside the grid.
func (g *Grid) At(p geom.Point) Cell {
	if !g.In(p) {
		panic(fmt.Sprintf("day08: position %s outside %dx%d grid", p, g.width, g.height))
	}
	return g.cells[p.Y*g.width+p.X]
}

// Positions returns every position ordered by row, then column.
func (g *Grid) Positions() []geom.Point {
	out := make([]geom.Point, 0, len(g.cells))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			out = append(out, geom.Point{X: x, Y: y})
		}
	}
	return out
}

// Ray returns the positions from the neighbour of start in direction d up
// to and including the last position inside the grid. start itself is not
// part of the ray; a ray from a boundary cell pointing outwards is empty.
func (g *Grid) Ray(start geom.Point, d geom.Direction) []geom.Point {
	var ray []geom.Point
	step := d.Delta()
	for p := start.Add(step); g.In(p); p = p.Add(step) {
		ray = append(ray, p)
	}
	return ray
}
