// Package geom provides small integer geometry helpers for grid puzzles.
package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pt is a point on an integer grid. Y grows downwards, X grows to the right.
type Pt[T constraints.Signed] struct {
	X, Y T
}

// Point is the grid point used by the puzzles.
type Point = Pt[int]

// Add returns p translated by d.
func (p Pt[T]) Add(d Pt[T]) Pt[T] {
	return Pt[T]{X: p.X + d.X, Y: p.Y + d.Y}
}

// Less orders points by row, then column.
func (p Pt[T]) Less(o Pt[T]) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// Touching reports whether o is p itself or one of its eight neighbours.
func (p Pt[T]) Touching(o Pt[T]) bool {
	return Abs(p.X-o.X) <= 1 && Abs(p.Y-o.Y) <= 1
}

// Toward steps p one position closer to b, moving at most one unit
// along each axis.
func (p Pt[T]) Toward(b Pt[T]) Pt[T] {
	return Pt[T]{X: p.X + Sign(b.X-p.X), Y: p.Y + Sign(b.Y-p.Y)}
}

// String implements fmt.Stringer.
func (p Pt[T]) String() string {
	return fmt.Sprintf("(y=%d, x=%d)", p.Y, p.X)
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
