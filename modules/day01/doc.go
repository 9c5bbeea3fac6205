// Package day01 solves "Calorie Counting".
//
// Each elf's inventory is a run of integer lines; runs are separated by a
// blank line. The answers are the largest inventory total and the sum of
// the top few totals.
package day01
