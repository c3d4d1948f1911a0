// Package system provides the host interaction operators.
package system

import (
	_ "embed"
	"github.com/zclconf/go-cty/cty"

	"github.com/autograph-dev/autograph/catalog"
	"github.com/autograph-dev/autograph/internal/hlx"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module registers the system operators.
type Module struct{}

func (m *Module) Register(c *catalog.Catalog) error {
	if err := c.AddManifest("system/manifest.hcl", manifestSrc); err != nil {
		return err
	}
	return c.RegisterGenerators(map[string]catalog.GenerateFunc{
		"sleep": func(nodeID string, config cty.Value, inputs []string) string {
			ms := catalog.OptionInt(config, "ms", 1000)
			return hlx.Stmt("sleep(%d);", ms) +
				hlx.Let(nodeID, hlx.Input(inputs, "null"))
		},
		"capture_screen": func(nodeID string, config cty.Value, inputs []string) string {
			return hlx.Let(nodeID, "capture_screen()")
		},
	})
}
