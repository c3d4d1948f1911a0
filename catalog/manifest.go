package catalog

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Definition is the format-agnostic representation of an operator manifest:
// everything about an operator except its code generator.
type Definition struct {
	Name        string
	Category    string
	Description string
	// Options lists the operator's documented configuration options in
	// manifest order. An absent or mistyped option in a node's configuration
	// falls back to the declared default.
	Options []OptionDefinition
}

// OptionDefinition documents a single configuration option and its default.
type OptionDefinition struct {
	Name    string
	Default cty.Value
}

// manifestRootSchema expects one or more top-level 'operator' blocks.
type manifestRootSchema struct {
	Operators []*hclOperator `hcl:"operator,block"`
}

// hclOperator is a single 'operator' block, decoded in two stages so the
// body can be walked with explicit schemas.
type hclOperator struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

var operatorBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "category", Required: true},
		{Name: "description"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "option", LabelNames: []string{"name"}},
	},
}

var optionBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "default", Required: true},
	},
}

// ParseManifest decodes an HCL operator manifest. Manifests are static files
// embedded in operator packages, so defaults are evaluated with a nil
// context: they must be literals, not expressions over variables.
func ParseManifest(filename string, src []byte) ([]*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}

	root := &manifestRootSchema{}
	if diags := gohcl.DecodeBody(file.Body, nil, root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", filename, diags)
	}

	defs := make([]*Definition, 0, len(root.Operators))
	for _, op := range root.Operators {
		def, err := decodeOperatorBlock(op)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func decodeOperatorBlock(op *hclOperator) (*Definition, error) {
	content, diags := op.Body.Content(operatorBodySchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("operator '%s': %w", op.Name, diags)
	}

	def := &Definition{Name: op.Name}

	if attr, ok := content.Attributes["category"]; ok {
		if diags := gohcl.DecodeExpression(attr.Expr, nil, &def.Category); diags.HasErrors() {
			return nil, fmt.Errorf("operator '%s': invalid category: %w", op.Name, diags)
		}
	}
	if attr, ok := content.Attributes["description"]; ok {
		if diags := gohcl.DecodeExpression(attr.Expr, nil, &def.Description); diags.HasErrors() {
			return nil, fmt.Errorf("operator '%s': invalid description: %w", op.Name, diags)
		}
	}

	seen := make(map[string]struct{})
	for _, block := range content.Blocks.OfType("option") {
		optName := block.Labels[0]
		if _, dup := seen[optName]; dup {
			return nil, fmt.Errorf("operator '%s': duplicate option '%s'", op.Name, optName)
		}
		seen[optName] = struct{}{}

		optContent, diags := block.Body.Content(optionBodySchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("operator '%s', option '%s': %w", op.Name, optName, diags)
		}

		defaultVal, diags := optContent.Attributes["default"].Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("operator '%s', option '%s': invalid default: %w", op.Name, optName, diags)
		}

		def.Options = append(def.Options, OptionDefinition{
			Name:    optName,
			Default: defaultVal,
		})
	}
	return def, nil
}
