// Package arrayops provides the array manipulation operators.
package arrayops

import (
	_ "embed"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/autograph-dev/autograph/catalog"
	"github.com/autograph-dev/autograph/internal/hlx"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module registers the array operators.
type Module struct{}

func (m *Module) Register(c *catalog.Catalog) error {
	if err := c.AddManifest("arrayops/manifest.hcl", manifestSrc); err != nil {
		return err
	}
	return c.RegisterGenerators(map[string]catalog.GenerateFunc{
		"array_map":    unsupported("array_map", "[]"),
		"array_filter": unsupported("array_filter", "[]"),
		"array_reduce": unsupported("array_reduce", "null"),
		"array_slice": func(nodeID string, config cty.Value, inputs []string) string {
			in := hlx.Input(inputs, "[]")
			start := catalog.OptionInt(config, "start", 0)
			end := catalog.OptionInt(config, "end", 10)
			return hlx.Let(nodeID, fmt.Sprintf("arr_slice(%s, %d, %d)", in, start, end))
		},
		"array_concat": func(nodeID string, config cty.Value, inputs []string) string {
			a := hlx.InputAt(inputs, 0, "[]")
			b := hlx.InputAt(inputs, 1, "[]")
			return hlx.Let(nodeID, fmt.Sprintf("arr_concat(%s, %s)", a, b))
		},
		"array_sort": func(nodeID string, config cty.Value, inputs []string) string {
			in := hlx.Input(inputs, "[]")
			return hlx.Comment("array_sort is not supported by the runtime yet") +
				hlx.Let(nodeID, in)
		},
		"array_length": func(nodeID string, config cty.Value, inputs []string) string {
			in := hlx.Input(inputs, "[]")
			return hlx.Let(nodeID, fmt.Sprintf("len(%s)", in))
		},
	})
}

// unsupported emits a placeholder binding for operators that need
// lambda support in the runtime before they can lower to real calls.
func unsupported(op, fallback string) catalog.GenerateFunc {
	return func(nodeID string, config cty.Value, inputs []string) string {
		return hlx.Comment("%s is not supported by the runtime yet", op) +
			hlx.Let(nodeID, fallback)
	}
}
