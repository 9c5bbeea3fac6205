package hcl

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Converter is the HCL-specific implementation of the config.Converter interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// DecodeParams evaluates HCL expressions and populates the tagged fields of
// the provided Go struct using reflection.
func (c *Converter) DecodeParams(ctx context.Context, target any, args map[string]hcl.Expression) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting params decoding.", "args", len(args))

	structVal := reflect.ValueOf(target)
	if structVal.Kind() != reflect.Ptr || structVal.IsNil() || structVal.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params target must be a non-nil struct pointer, got %T", target)
	}
	structVal = structVal.Elem()
	structType := structVal.Type()

	used := make(map[string]bool, len(args))
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldVal := structVal.Field(i)
		if !fieldVal.CanSet() {
			continue
		}

		lookupName := registry.TagName(field)
		if lookupName == "" {
			continue
		}
		argExpr, argProvided := args[lookupName]
		if !argProvided {
			continue
		}
		used[lookupName] = true

		val, diags := argExpr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("failed to evaluate param '%s': %w", lookupName, diags)
		}
		if err := c.decode(ctx, val, fieldVal.Addr().Interface()); err != nil {
			return fmt.Errorf("failed to decode param '%s': %w", lookupName, err)
		}
	}

	var unknown []string
	for name := range args {
		if !used[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown params: %s", strings.Join(unknown, ", "))
	}

	logger.Debug("Finished params decoding successfully.")
	return nil
}

// decode handles the conversion and decoding of a cty.Value into a Go pointer.
func (c *Converter) decode(ctx context.Context, val cty.Value, goVal any) error {
	logger := ctxlog.FromContext(ctx)
	valPtr := reflect.ValueOf(goVal)
	if valPtr.Kind() != reflect.Ptr {
		return fmt.Errorf("target for decoding must be a pointer, got %T", goVal)
	}
	if val.IsNull() {
		return fmt.Errorf("value must not be null")
	}

	impliedType, err := gocty.ImpliedType(valPtr.Elem().Interface())
	if err != nil {
		logger.Debug("Could not imply cty.Type from Go type, attempting direct decoding.", "go_type", valPtr.Elem().Type().String(), "error", err)
		return gocty.FromCtyValue(val, goVal)
	}

	convertedVal, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	if !val.Type().Equals(convertedVal.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", convertedVal.Type().FriendlyName(),
		)
	}

	return gocty.FromCtyValue(convertedVal, goVal)
}
