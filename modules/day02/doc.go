// Package day02 solves "Rock Paper Scissors".
//
// Each line holds the opponent's shape (A, B or C) and a second column
// (X, Y or Z). The first strategy reads the column as our shape, the second
// as the outcome we must reach.
package day02
