package catalog

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Option readers for generators. Node configuration arrives as loosely
// structured editor data, so every reader degrades to the fallback instead
// of failing: a missing field, a null, an unknown, a wrong shape, or an
// inconvertible type all yield the default. This is what keeps generators
// total (misconfiguration becomes runtime behavior, never a compile error).

// OptionValue extracts a raw option value from a config object or map.
func OptionValue(config cty.Value, name string) (cty.Value, bool) {
	if config == cty.NilVal || config.IsNull() || !config.IsKnown() {
		return cty.NilVal, false
	}
	ty := config.Type()
	switch {
	case ty.IsObjectType():
		if !ty.HasAttribute(name) {
			return cty.NilVal, false
		}
		return config.GetAttr(name), true
	case ty.IsMapType():
		key := cty.StringVal(name)
		if !config.HasIndex(key).True() {
			return cty.NilVal, false
		}
		return config.Index(key), true
	default:
		return cty.NilVal, false
	}
}

// OptionString reads a string option, falling back on any shape mismatch.
func OptionString(config cty.Value, name, fallback string) string {
	v, ok := OptionValue(config, name)
	if !ok || v.IsNull() || !v.IsKnown() {
		return fallback
	}
	converted, err := convert.Convert(v, cty.String)
	if err != nil || converted.IsNull() {
		return fallback
	}
	return converted.AsString()
}

// OptionInt reads an integer option, truncating fractional values.
func OptionInt(config cty.Value, name string, fallback int64) int64 {
	v, ok := OptionValue(config, name)
	if !ok || v.IsNull() || !v.IsKnown() {
		return fallback
	}
	converted, err := convert.Convert(v, cty.Number)
	if err != nil || converted.IsNull() {
		return fallback
	}
	i, _ := converted.AsBigFloat().Int64()
	return i
}

// OptionFloat reads a floating point option.
func OptionFloat(config cty.Value, name string, fallback float64) float64 {
	v, ok := OptionValue(config, name)
	if !ok || v.IsNull() || !v.IsKnown() {
		return fallback
	}
	converted, err := convert.Convert(v, cty.Number)
	if err != nil || converted.IsNull() {
		return fallback
	}
	f, _ := converted.AsBigFloat().Float64()
	return f
}

// OptionBool reads a boolean option.
func OptionBool(config cty.Value, name string, fallback bool) bool {
	v, ok := OptionValue(config, name)
	if !ok || v.IsNull() || !v.IsKnown() {
		return fallback
	}
	converted, err := convert.Convert(v, cty.Bool)
	if err != nil || converted.IsNull() {
		return fallback
	}
	return converted.True()
}
