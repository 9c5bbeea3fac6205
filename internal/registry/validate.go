package registry

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ParamTag is the struct tag that names a parameter in a manifest.
const ParamTag = "aoc"

// Validate checks that every puzzle's parameter struct can be addressed from
// a manifest: the factory must return a non-nil struct pointer, every tagged
// field must have a cty-compatible type, and tag names must be unique.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, day := range r.Days() {
		p := r.puzzles[day]
		if p.NewParams == nil {
			continue
		}

		params := p.NewParams()
		v := reflect.ValueOf(params)
		if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
			errs = append(errs, fmt.Sprintf("day %d: params factory must return a non-nil struct pointer, got %T", day, params))
			continue
		}

		seen := make(map[string]string)
		st := v.Elem().Type()
		for i := 0; i < st.NumField(); i++ {
			field := st.Field(i)
			if !field.IsExported() {
				continue
			}
			name := TagName(field)
			if name == "" {
				continue
			}
			if other, dup := seen[name]; dup {
				errs = append(errs, fmt.Sprintf("day %d: parameter %q is declared by both %s and %s", day, name, other, field.Name))
				continue
			}
			seen[name] = field.Name

			if _, err := gocty.ImpliedType(v.Elem().Field(i).Interface()); err != nil {
				errs = append(errs, fmt.Sprintf("day %d, parameter %q: could not imply cty type from Go field type %s: %v", day, name, field.Type, err))
			}
		}
		logger.Debug("Validated puzzle parameters.", "day", day, "params", len(seen))
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// TagName returns the manifest name of a parameter field, or "" when the
// field is not addressable from a manifest.
func TagName(field reflect.StructField) string {
	tag := field.Tag.Get(ParamTag)
	name := strings.Split(tag, ",")[0]
	if name == "-" {
		return ""
	}
	return name
}
