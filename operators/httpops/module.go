// Package httpops provides the HTTP request operators. All of them lower to
// the runtime's http_request builtin; the method-specific variants exist so
// editors can offer the common verbs without a method dropdown.
package httpops

import (
	_ "embed"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/autograph-dev/autograph/catalog"
	"github.com/autograph-dev/autograph/internal/hlx"
)

//go:embed manifest.hcl
var manifestSrc []byte

const defaultURL = "https://example.com"

// Module implements the catalog.Module interface for this package.
type Module struct{}

// Register adds the HTTP operators to the catalog.
func (m *Module) Register(c *catalog.Catalog) error {
	if err := c.AddManifest("httpops/manifest.hcl", manifestSrc); err != nil {
		return err
	}
	return c.RegisterGenerators(map[string]catalog.GenerateFunc{
		"http_get":     verb("GET", false),
		"http_post":    verb("POST", true),
		"http_put":     verb("PUT", true),
		"http_delete":  verb("DELETE", false),
		"http_request": generateRequest,
	})
}

// verb builds a generator for a fixed-method request. Body-carrying verbs
// send the node's first input as the request body.
func verb(method string, withBody bool) catalog.GenerateFunc {
	return func(nodeID string, config cty.Value, inputs []string) string {
		url := catalog.OptionString(config, "url", defaultURL)
		body := "null"
		if withBody {
			body = hlx.Input(inputs, "null")
		}
		return hlx.Let(nodeID, fmt.Sprintf("http_request(%s, %s, %s, {})", hlx.Quote(method), hlx.Quote(url), body))
	}
}

// generateRequest reads the method from configuration instead of fixing it.
func generateRequest(nodeID string, config cty.Value, inputs []string) string {
	method := catalog.OptionString(config, "method", "GET")
	url := catalog.OptionString(config, "url", defaultURL)
	body := hlx.Input(inputs, "null")
	return hlx.Let(nodeID, fmt.Sprintf("http_request(%s, %s, %s, {})", hlx.Quote(method), hlx.Quote(url), body))
}
