// Package convert provides the type conversion operators.
package convert

import (
	_ "embed"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/autograph-dev/autograph/catalog"
	"github.com/autograph-dev/autograph/internal/hlx"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module registers the conversion operators.
type Module struct{}

func (m *Module) Register(c *catalog.Catalog) error {
	if err := c.AddManifest("convert/manifest.hcl", manifestSrc); err != nil {
		return err
	}
	return c.RegisterGenerators(map[string]catalog.GenerateFunc{
		"to_string": cast("to_string", "null"),
		"to_int":    cast("to_int", "0"),
		"to_float":  cast("to_float", "0"),
	})
}

func cast(builtin, fallback string) catalog.GenerateFunc {
	return func(nodeID string, config cty.Value, inputs []string) string {
		return hlx.Let(nodeID, fmt.Sprintf("%s(%s)", builtin, hlx.Input(inputs, fallback)))
	}
}
