package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Model is the unified, format-agnostic representation of a run manifest.
type Model struct {
	// InputsDir is where puzzle inputs named dayNN.txt are looked up when a
	// run does not name its input explicitly. Empty means "not set".
	InputsDir string
	Runs      []*Run
}

// Run is the format-agnostic representation of a `run` block.
type Run struct {
	Name    string
	Day     int
	Example bool
	Input   string
	Params  map[string]hcl.Expression
	// Source is the manifest file the run was declared in.
	Source string
}
