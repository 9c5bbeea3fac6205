// Package day04 solves "Camp Cleanup".
package day04
