// Package objectops provides the object inspection and mutation operators.
package objectops

import (
	_ "embed"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/autograph-dev/autograph/catalog"
	"github.com/autograph-dev/autograph/internal/hlx"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module registers the object operators.
type Module struct{}

func (m *Module) Register(c *catalog.Catalog) error {
	if err := c.AddManifest("objectops/manifest.hcl", manifestSrc); err != nil {
		return err
	}
	return c.RegisterGenerators(map[string]catalog.GenerateFunc{
		"object_get": func(nodeID string, config cty.Value, inputs []string) string {
			in := hlx.Input(inputs, "{}")
			key := catalog.OptionString(config, "key", "field")
			return hlx.Let(nodeID, fmt.Sprintf("get(%s, %s)", in, hlx.Quote(key)))
		},
		"object_set": func(nodeID string, config cty.Value, inputs []string) string {
			in := hlx.Input(inputs, "{}")
			key := catalog.OptionString(config, "key", "field")
			value := `""`
			if raw, ok := catalog.OptionValue(config, "value"); ok {
				value = hlx.Literal(raw)
			}
			return hlx.Let(nodeID, fmt.Sprintf("set(%s, %s, %s)", in, hlx.Quote(key), value))
		},
		"object_keys": func(nodeID string, config cty.Value, inputs []string) string {
			return hlx.Let(nodeID, fmt.Sprintf("keys(%s)", hlx.Input(inputs, "{}")))
		},
		"object_values": func(nodeID string, config cty.Value, inputs []string) string {
			return hlx.Let(nodeID, fmt.Sprintf("values(%s)", hlx.Input(inputs, "{}")))
		},
		"object_has_key": func(nodeID string, config cty.Value, inputs []string) string {
			in := hlx.Input(inputs, "{}")
			key := catalog.OptionString(config, "key", "field")
			return hlx.Let(nodeID, fmt.Sprintf("has_key(%s, %s)", in, hlx.Quote(key)))
		},
	})
}
