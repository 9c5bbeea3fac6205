// Package registry provides the central "glue" for the puzzle modules.
//
// Every compiled-in day registers a Puzzle: its number, a title, the
// example input it ships with, a factory for its tunable parameters and the
// function that solves it. The application looks puzzles up by day when it
// builds runs from the command line or from a manifest.
//
// During application startup, the registry is validated to ensure that every
// parameter struct can be populated from a manifest, preventing a class of
// errors that would otherwise only surface when a manifest sets a parameter.
package registry
