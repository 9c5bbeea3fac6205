// Package day08 solves "Treetop Tree House".
//
// The input is a rectangular grid of single-digit tree heights. A tree on
// the outer boundary is an edge and always visible. An interior tree is
// visible when, along at least one of the four compass directions, every
// tree between it and the boundary is strictly shorter. Its scenic score is
// the product of its viewing distances in the four directions, where a view
// stops at (and includes) the first tree at least as tall.
package day08
