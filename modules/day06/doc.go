// Package day06 solves "Tuning Trouble": locating the first run of
// distinct characters in a datastream.
package day06
