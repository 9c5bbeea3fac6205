// Package day09 solves "Rope Bridge".
//
// The head of a rope follows a list of axis-aligned steps. Every other knot
// follows the knot in front of it: when the two stop touching, the knot
// moves at most one position along each axis toward it. The answer is the
// number of distinct positions visited by the last knot.
package day09
