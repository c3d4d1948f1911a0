// Package tensor provides the 2D tensor operators.
package tensor

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/autograph-dev/autograph/catalog"
	"github.com/autograph-dev/autograph/internal/hlx"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module registers the tensor operators.
type Module struct{}

func (m *Module) Register(c *catalog.Catalog) error {
	if err := c.AddManifest("tensor/manifest.hcl", manifestSrc); err != nil {
		return err
	}
	return c.RegisterGenerators(map[string]catalog.GenerateFunc{
		"tensor_create": generateCreate,
		"tensor_matmul": pairwise("tensor_matmul"),
		"tensor_add":    pairwise("tensor_add"),
	})
}

// generateCreate builds the tensor in a scratch variable, fills it row by
// row from the configured values, then binds the node output.
func generateCreate(nodeID string, config cty.Value, inputs []string) string {
	rows := catalog.OptionInt(config, "rows", 2)
	cols := catalog.OptionInt(config, "cols", 2)
	tmp := hlx.TempVar(nodeID)

	var b strings.Builder
	b.WriteString(hlx.Stmt("let %s = tensor_new_2d(%d, %d);", tmp, rows, cols))
	for i, v := range elements(config) {
		if cols <= 0 || int64(i) >= rows*cols {
			break
		}
		r := int64(i) / cols
		c := int64(i) % cols
		b.WriteString(hlx.Stmt("%s[%d][%d] = %s;", tmp, r, c, strconv.FormatFloat(v, 'f', -1, 64)))
	}
	b.WriteString(hlx.Let(nodeID, tmp))
	return b.String()
}

func pairwise(builtin string) catalog.GenerateFunc {
	return func(nodeID string, config cty.Value, inputs []string) string {
		a := hlx.InputAt(inputs, 0, "null")
		b := hlx.InputAt(inputs, 1, "null")
		return hlx.Let(nodeID, fmt.Sprintf("%s(%s, %s)", builtin, a, b))
	}
}

// elements reads the configured values list, skipping anything that is not
// a number.
func elements(config cty.Value) []float64 {
	raw, ok := catalog.OptionValue(config, "values")
	if !ok || raw.IsNull() || !raw.IsKnown() || !raw.CanIterateElements() {
		return nil
	}
	var out []float64
	for it := raw.ElementIterator(); it.Next(); {
		_, v := it.Element()
		converted, err := convert.Convert(v, cty.Number)
		if err != nil || converted.IsNull() || !converted.IsKnown() {
			out = append(out, 0)
			continue
		}
		f, _ := converted.AsBigFloat().Float64()
		out = append(out, f)
	}
	return out
}
