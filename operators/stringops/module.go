// Package stringops provides the string manipulation operators.
//
// split and replace have no runtime builtin yet; their generators emit a
// diagnostic comment and a neutral binding so programs stay runnable.
package stringops

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

// Register adds the string operators to the catalog.
func (m *Module) Register(c *catalog.Catalog) error {
	if err := c.AddManifest("stringops/manifest.hcl", manifestSrc); err != nil {
		return err
	}
	return c.RegisterGenerators(map[string]catalog.GenerateFunc{
		"string_concat":  generateConcat,
		"string_upper":   unary("to_upper"),
		"string_lower":   unary("to_lower"),
		"string_trim":    unary("trim"),
		"string_split":   generateSplit,
		"string_replace": generateReplace,
		"string_length":  unary("strlen"),
	})
}

// unary builds a generator for a single-argument string builtin.
func unary(builtin string) catalog.GenerateFunc {
	return func(nodeID string, _ cty.Value, inputs []string) string {
		return hlx.Let(nodeID, fmt.Sprintf("%s(%s)", builtin, hlx.Input(inputs, `""`)))
	}
}

func generateConcat(nodeID string, config cty.Value, inputs []string) string {
	sep := catalog.OptionString(config, "separator", "")
	return hlx.Let(nodeID, fmt.Sprintf("concat(%s, %s)", hlx.Input(inputs, `""`), hlx.Quote(sep)))
}

func generateSplit(nodeID string, _ cty.Value, _ []string) string {
	return hlx.Comment("string_split is not supported by the runtime yet") +
		hlx.Let(nodeID, "[]")
}

func generateReplace(nodeID string, _ cty.Value, inputs []string) string {
	return hlx.Comment("string_replace is not supported by the runtime yet") +
		hlx.Let(nodeID, hlx.Input(inputs, `""`))
}
