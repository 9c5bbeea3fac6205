// Package day05 solves "Supply Stacks".
//
// The input starts with a drawing of crate stacks, bottomed by a footer of
// stack numbers, followed by a blank line and a list of moves. Two crane
// models replay the moves: the CrateMover 9000 lifts one crate at a time,
// the 9001 lifts a whole run of crates and keeps their order.
package day05
