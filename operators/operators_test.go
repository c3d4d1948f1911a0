package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	t.Run("contains the full built-in set", func(t *testing.T) {
		assert.Len(t, c.All(), 55)
	})

	t.Run("every operator has a config default", func(t *testing.T) {
		for _, op := range c.All() {
			defaults := op.Defaults()
			require.True(t, defaults.Type().IsObjectType(), "operator %s", op.Name)
		}
	})

	t.Run("known defaults survive registration", func(t *testing.T) {
		op, ok := c.Lookup("http_get")
		require.True(t, ok)
		defaults := op.Defaults()
		assert.Equal(t, cty.StringVal("https://example.com"), defaults.GetAttr("url"))

		op, ok = c.Lookup("sleep")
		require.True(t, ok)
		assert.True(t, op.Defaults().GetAttr("ms").Equals(cty.NumberIntVal(1000)).True())
	})

	t.Run("categories group the palette", func(t *testing.T) {
		cats := c.Categories()
		assert.Contains(t, cats, "HTTP")
		assert.Contains(t, cats, "Math")
		assert.Contains(t, cats, "ML/GPU")
		assert.Contains(t, cats["Control"], "start")
		assert.Contains(t, cats["System"], "sleep")
	})
}

func TestMustNewCatalog(t *testing.T) {
	assert.NotPanics(t, func() {
		c := MustNewCatalog()
		assert.NotNil(t, c)
	})
}

func TestCatalogListingIsStable(t *testing.T) {
	first, err := NewCatalog()
	require.NoError(t, err)
	second, err := NewCatalog()
	require.NoError(t, err)

	var a, b []string
	for _, op := range first.All() {
		a = append(a, op.Name)
	}
	for _, op := range second.All() {
		b = append(b, op.Name)
	}
	assert.Equal(t, a, b)
}
