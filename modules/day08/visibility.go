package day08

import (
	"context"

	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/geom"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
)

// VisibleFrom reports whether every tree on the ray from p in direction d is
// strictly shorter than the tree at p.
func (g *Grid) VisibleFrom(p geom.Point, d geom.Direction) bool {
	h := g.At(p).Height
	for _, q := range g.Ray(p, d) {
		if g.At(q).Height >= h {
			return false
		}
	}
	return true
}

// Visible reports whether the tree at p can be seen from outside the grid.
// Edge trees are visible without casting any ray.
func (g *Grid) Visible(p geom.Point) bool {
	if g.At(p).Kind == Edge {
		return true
	}
	for _, d := range geom.Compass {
		if g.VisibleFrom(p, d) {
			return true
		}
	}
	return false
}

// ViewingDistance counts the trees seen from p looking in direction d. The
// first tree at least as tall as p blocks the view and is counted.
func (g *Grid) ViewingDistance(p geom.Point, d geom.Direction) int {
	h := g.At(p).Height
	count := 0
	for _, q := range g.Ray(p, d) {
		count++
		if g.At(q).Height >= h {
			break
		}
	}
	return count
}

// ScenicScore is the product of the four viewing distances from p. It is
// zero for every edge tree.
func (g *Grid) ScenicScore(p geom.Point) int {
	score := 1
	for _, d := range geom.Compass {
		score *= g.ViewingDistance(p, d)
	}
	return score
}

// CountVisible returns the number of trees visible from outside the grid.
func CountVisible(ctx context.Context, g *Grid) int {
	logger := ctxlog.FromContext(ctx)
	edges, interior := 0, 0
	for _, p := range g.Positions() {
		if g.At(p).Kind == Edge {
			edges++
			continue
		}
		if g.Visible(p) {
			interior++
			logger.Debug("Interior tree visible.", "pos", p.String(), "cell", g.At(p).String())
		}
	}
	logger.Debug("Counted visible trees.", "edges", edges, "interior", interior)
	return edges + interior
}

// MaxScenicScore returns the best scenic score over interior trees. A grid
// without interior trees has no answer.
func MaxScenicScore(ctx context.Context, g *Grid) (int, error) {
	logger := ctxlog.FromContext(ctx)
	best, found := 0, false
	for _, p := range g.Positions() {
		if g.At(p).Kind == Edge {
			continue
		}
		score := g.ScenicScore(p)
		if !found || score > best {
			best, found = score, true
			logger.Debug("New best scenic score.", "pos", p.String(), "score", score)
		}
	}
	if !found {
		return 0, puzzle.Empty("max scenic score")
	}
	return best, nil
}
