package tensor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/autograph-dev/autograph/catalog"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New()
	require.NoError(t, (&Module{}).Register(c))
	require.NoError(t, c.Validate())
	return c
}

func TestTensorCreate(t *testing.T) {
	c := newCatalog(t)
	create, ok := c.Lookup("tensor_create")
	require.True(t, ok)

	t.Run("fills the identity default", func(t *testing.T) {
		got := create.Generate("m", create.Defaults(), nil)
		want := "    let m_t = tensor_new_2d(2, 2);\n" +
			"    m_t[0][0] = 1;\n" +
			"    m_t[0][1] = 0;\n" +
			"    m_t[1][0] = 0;\n" +
			"    m_t[1][1] = 1;\n" +
			"    let m_out = m_t;\n"
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("emitted block mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("excess values are dropped", func(t *testing.T) {
		config := cty.ObjectVal(map[string]cty.Value{
			"rows":   cty.NumberIntVal(1),
			"cols":   cty.NumberIntVal(1),
			"values": cty.TupleVal([]cty.Value{cty.NumberIntVal(7), cty.NumberIntVal(8)}),
		})
		got := create.Generate("m", config, nil)
		want := "    let m_t = tensor_new_2d(1, 1);\n" +
			"    m_t[0][0] = 7;\n" +
			"    let m_out = m_t;\n"
		assert.Equal(t, want, got)
	})

	t.Run("missing values emit only the allocation", func(t *testing.T) {
		config := cty.ObjectVal(map[string]cty.Value{
			"rows": cty.NumberIntVal(3),
			"cols": cty.NumberIntVal(3),
		})
		got := create.Generate("m", config, nil)
		want := "    let m_t = tensor_new_2d(3, 3);\n" +
			"    let m_out = m_t;\n"
		assert.Equal(t, want, got)
	})
}

func TestTensorPairwise(t *testing.T) {
	c := newCatalog(t)

	matmul, ok := c.Lookup("tensor_matmul")
	require.True(t, ok)
	assert.Equal(t,
		"    let p_out = tensor_matmul(a_out, b_out);\n",
		matmul.Generate("p", cty.NilVal, []string{"a_out", "b_out"}))

	add, ok := c.Lookup("tensor_add")
	require.True(t, ok)
	assert.Equal(t,
		"    let p_out = tensor_add(a_out, null);\n",
		add.Generate("p", cty.NilVal, []string{"a_out"}))
}
