// Package control provides the workflow entry point and debug operators.
package control

import (
	_ "embed"

	"github.com/zclconf/go-cty/cty"

	"github.com/autograph-dev/autograph/catalog"
	"github.com/autograph-dev/autograph/internal/hlx"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module implements the catalog.Module interface for this package.
type Module struct{}

// Register adds the control operators to the catalog.
func (m *Module) Register(c *catalog.Catalog) error {
	if err := c.AddManifest("control/manifest.hcl", manifestSrc); err != nil {
		return err
	}
	return c.RegisterGenerators(map[string]catalog.GenerateFunc{
		"start": generateStart,
		"print": generatePrint,
	})
}

// generateStart binds the program's input parameter as the node result.
func generateStart(nodeID string, _ cty.Value, _ []string) string {
	return hlx.Let(nodeID, "input")
}

// generatePrint prints its input and passes it through unchanged.
func generatePrint(nodeID string, _ cty.Value, inputs []string) string {
	in := hlx.Input(inputs, "null")
	return hlx.Stmt("print(%s);", in) + hlx.Let(nodeID, in)
}
