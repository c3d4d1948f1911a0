// Package mathops provides the arithmetic operators.
package mathops

import (
	_ "embed"
	"fmt"
	"strconv"

	"github.com/zclconf/go-cty/cty"

	"github.com/autograph-dev/autograph/catalog"
	"github.com/autograph-dev/autograph/internal/hlx"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module registers the math operators.
type Module struct{}

func (m *Module) Register(c *catalog.Catalog) error {
	if err := c.AddManifest("mathops/manifest.hcl", manifestSrc); err != nil {
		return err
	}
	return c.RegisterGenerators(map[string]catalog.GenerateFunc{
		"math_add":      binary("+", 0),
		"math_subtract": binary("-", 0),
		"math_multiply": binary("*", 1),
		"math_divide":   binary("/", 1),
		"math_floor":    unary("floor"),
		"math_ceil":     unary("ceil"),
		"math_round":    unary("round"),
		"math_sqrt":     unary("sqrt"),
		"math_random": func(nodeID string, config cty.Value, inputs []string) string {
			return hlx.Let(nodeID, "random()")
		},
	})
}

// binary applies the operator between the input and the configured value.
// The identity doubles as the fallback for an unwired input, so a dangling
// math node stays a no-op under its own operator.
func binary(op string, identity float64) catalog.GenerateFunc {
	return func(nodeID string, config cty.Value, inputs []string) string {
		in := hlx.Input(inputs, formatNumber(identity))
		value := catalog.OptionFloat(config, "value", identity)
		return hlx.Let(nodeID, fmt.Sprintf("%s %s %s", in, op, formatNumber(value)))
	}
}

func unary(builtin string) catalog.GenerateFunc {
	return func(nodeID string, config cty.Value, inputs []string) string {
		return hlx.Let(nodeID, fmt.Sprintf("%s(%s)", builtin, hlx.Input(inputs, "0")))
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
