// Package schema holds the HCL decoding structs for run manifests.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Params represents the content of the 'params' block within a run.
type Params struct {
	Body hcl.Body `hcl:",remain"`
}

// Run represents a `run` block from a manifest. It selects one puzzle and
// the input it is solved against.
type Run struct {
	Name    string  `hcl:"name,label"`
	Day     int     `hcl:"day"`
	Example *bool   `hcl:"example,optional"`
	Input   *string `hcl:"input,optional"`
	Params  *Params `hcl:"params,block"`
}

// Manifest represents the top-level structure of a manifest file.
type Manifest struct {
	InputsDir *string `hcl:"inputs_dir,optional"`
	Runs      []*Run  `hcl:"run,block"`
}
