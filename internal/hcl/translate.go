// This file contains the logic for translating HCL schema structs into the
// format-agnostic manifest model defined in the config package.

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/aoc2022/internal/config"
	"github.com/specialistvlad/aoc2022/internal/schema"
)

// translateRun converts the HCL-specific run schema into the agnostic model.
func (l *Loader) translateRun(s *schema.Run, filePath string) (*config.Run, error) {
	if s.Day < 1 || s.Day > 25 {
		return nil, fmt.Errorf("manifest %s: run %q: day %d is out of range 1-25", filePath, s.Name, s.Day)
	}
	run := &config.Run{
		Name:   s.Name,
		Day:    s.Day,
		Source: filePath,
	}
	if s.Example != nil {
		run.Example = *s.Example
	}
	if s.Input != nil {
		run.Input = *s.Input
	}
	if run.Example && run.Input != "" {
		return nil, fmt.Errorf("manifest %s: run %q: example and input are mutually exclusive", filePath, s.Name)
	}

	params, err := extractBodyAttributes(s.Params)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: run %q: %w", filePath, s.Name, err)
	}
	run.Params = params
	return run, nil
}

func extractBodyAttributes(block *schema.Params) (map[string]hcl.Expression, error) {
	if block == nil || block.Body == nil {
		return nil, nil
	}
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid params block: %w", diags)
	}
	exprMap := make(map[string]hcl.Expression, len(attrs))
	for name, attr := range attrs {
		exprMap[name] = attr.Expr
	}
	return exprMap, nil
}
