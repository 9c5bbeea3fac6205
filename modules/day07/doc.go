// Package day07 solves "No Space Left On Device".
//
// A shell transcript of cd/ls commands is folded into a size table keyed by
// absolute path. Every file's size is rolled up into each of its ancestor
// directories, including ancestors that were never listed themselves. Two
// queries run over the table: the sum of all directory sizes at or below a
// threshold, and the smallest directory whose removal frees enough space
// for an update.
package day07
