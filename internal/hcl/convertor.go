package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/cubecount/internal/game"
)

// capacityToCty converts a CubeSet into the object exposed as `default`.
func capacityToCty(c game.CubeSet) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"red":   cty.NumberUIntVal(c.Red),
		"green": cty.NumberUIntVal(c.Green),
		"blue":  cty.NumberUIntVal(c.Blue),
	})
}

// decodeCount evaluates a single color attribute. The second return value is
// false when the attribute was omitted.
func decodeCount(name string, expr hcl.Expression, evalCtx *hcl.EvalContext) (uint64, bool, hcl.Diagnostics) {
	if expr == nil {
		return 0, false, nil
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, false, diags
	}
	if val.IsNull() {
		return 0, false, nil
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, false, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid cube count",
			Detail:   fmt.Sprintf("The %q count must be a number: %s.", name, err),
			Subject:  expr.Range().Ptr(),
		}}
	}
	if num.IsNull() || !num.IsKnown() {
		return 0, false, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid cube count",
			Detail:   fmt.Sprintf("The %q count must be a known, non-null number.", name),
			Subject:  expr.Range().Ptr(),
		}}
	}

	var n uint64
	if err := gocty.FromCtyValue(num, &n); err != nil {
		return 0, false, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid cube count",
			Detail:   fmt.Sprintf("The %q count must be a whole number, zero or greater: %s.", name, err),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return n, true, nil
}
