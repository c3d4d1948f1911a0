package templates

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autograph-dev/autograph/lower"
	"github.com/autograph-dev/autograph/operators"
)

func TestAllTemplatesCompile(t *testing.T) {
	c, err := operators.NewCatalog()
	require.NoError(t, err)

	for _, tpl := range All() {
		t.Run(tpl.Name, func(t *testing.T) {
			g := tpl.Build()
			require.NoError(t, g.Validate())

			text, err := lower.Compile(context.Background(), g, c)
			require.NoError(t, err)
			assert.Contains(t, text, "program workflow {")
			assert.Contains(t, text, "fn main(input) {")
			assert.NotContains(t, text, "Unknown operator type")
		})
	}
}

func TestBuildReturnsFreshGraphs(t *testing.T) {
	tpl := All()[0]
	first := tpl.Build()
	second := tpl.Build()
	assert.NotSame(t, first, second)
	assert.Equal(t, first.Nodes(), second.Nodes())
}

func TestMathCalculatorProgram(t *testing.T) {
	c, err := operators.NewCatalog()
	require.NoError(t, err)

	var tpl Template
	for _, candidate := range All() {
		if candidate.Name == "Math Calculator" {
			tpl = candidate
		}
	}
	require.NotNil(t, tpl.Build)

	text, err := lower.Compile(context.Background(), tpl.Build(), c)
	require.NoError(t, err)

	want := "program workflow {\n" +
		"\n" +
		"fn main(input) {\n" +
		"    let add1_out = 0 + 10;\n" +
		"    let mult1_out = add1_out * 2;\n" +
		"    let sqrt1_out = sqrt(mult1_out);\n" +
		"    print(sqrt1_out);\n" +
		"    let print1_out = sqrt1_out;\n" +
		"    return print1_out;\n" +
		"}\n" +
		"\n" +
		"}\n"
	if diff := cmp.Diff(want, text); diff != "" {
		t.Fatalf("program text mismatch (-want +got):\n%s", diff)
	}
}
