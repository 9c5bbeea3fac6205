package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads manifests from the given files or directories and
	// translates them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Converter is the interface for a format-specific data binding and type
// conversion implementation. It acts as the bridge between the raw manifest
// and the parameter structs used by puzzle modules.
type Converter interface {
	// DecodeParams evaluates args and stores them into the tagged fields of
	// target, a non-nil struct pointer. Fields without a matching argument
	// keep their current value. Arguments without a matching field are an
	// error.
	DecodeParams(ctx context.Context, target any, args map[string]hcl.Expression) error
}
