// Package day03 solves "Rucksack Reorganization".
package day03
