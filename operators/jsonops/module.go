// Package jsonops provides the JSON parse/stringify and field access operators.
package jsonops

import (
	_ "embed"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/autograph-dev/autograph/catalog"
	"github.com/autograph-dev/autograph/internal/hlx"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module implements the catalog.Module interface for this package.
type Module struct{}

// Register adds the JSON operators to the catalog.
func (m *Module) Register(c *catalog.Catalog) error {
	if err := c.AddManifest("jsonops/manifest.hcl", manifestSrc); err != nil {
		return err
	}
	return c.RegisterGenerators(map[string]catalog.GenerateFunc{
		"json_parse":     generateParse,
		"json_stringify": generateStringify,
		"json_get":       generateGet,
		"json_set":       generateSet,
	})
}

func generateParse(nodeID string, _ cty.Value, inputs []string) string {
	return hlx.Let(nodeID, fmt.Sprintf("json_parse(%s)", hlx.Input(inputs, "null")))
}

func generateStringify(nodeID string, _ cty.Value, inputs []string) string {
	return hlx.Let(nodeID, fmt.Sprintf("json_stringify(%s)", hlx.Input(inputs, "null")))
}

func generateGet(nodeID string, config cty.Value, inputs []string) string {
	key := catalog.OptionString(config, "key", "field")
	return hlx.Let(nodeID, fmt.Sprintf("get(%s, %s)", hlx.Input(inputs, "null"), hlx.Quote(key)))
}

func generateSet(nodeID string, config cty.Value, inputs []string) string {
	key := catalog.OptionString(config, "key", "field")
	value := `""`
	if raw, ok := catalog.OptionValue(config, "value"); ok {
		value = hlx.Literal(raw)
	}
	return hlx.Let(nodeID, fmt.Sprintf("set(%s, %s, %s)", hlx.Input(inputs, "{}"), hlx.Quote(key), value))
}
