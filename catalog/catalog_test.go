package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

const testManifest = `
operator "test_op" {
  category    = "Test"
  description = "An operator for tests"

  option "url" {
    default = "https://example.com"
  }

  option "retries" {
    default = 3
  }
}

operator "bare_op" {
  category = "Test"
}
`

func testGenerate(nodeID string, config cty.Value, inputs []string) string {
	return "    let " + nodeID + "_out = null;\n"
}

func TestAddManifest(t *testing.T) {
	c := New()
	require.NoError(t, c.AddManifest("test.hcl", []byte(testManifest)))
	require.NoError(t, c.RegisterGenerator("test_op", testGenerate))
	require.NoError(t, c.RegisterGenerator("bare_op", testGenerate))
	require.NoError(t, c.Validate())

	op, ok := c.Lookup("test_op")
	require.True(t, ok)
	assert.Equal(t, "Test", op.Category)
	assert.Equal(t, "An operator for tests", op.Description)

	opts := op.Options()
	require.Len(t, opts, 2)
	assert.Equal(t, "url", opts[0].Name)
	assert.Equal(t, cty.StringVal("https://example.com"), opts[0].Default)
	assert.Equal(t, "retries", opts[1].Name)
}

func TestDefaults(t *testing.T) {
	c := New()
	require.NoError(t, c.AddManifest("test.hcl", []byte(testManifest)))
	require.NoError(t, c.RegisterGenerator("test_op", testGenerate))
	require.NoError(t, c.RegisterGenerator("bare_op", testGenerate))

	t.Run("enumerates every documented option", func(t *testing.T) {
		op, _ := c.Lookup("test_op")
		defaults := op.Defaults()
		assert.Equal(t, cty.StringVal("https://example.com"), defaults.GetAttr("url"))
		assert.True(t, defaults.GetAttr("retries").Equals(cty.NumberIntVal(3)).True())
	})

	t.Run("no options yields empty object", func(t *testing.T) {
		op, _ := c.Lookup("bare_op")
		assert.Equal(t, cty.EmptyObjectVal, op.Defaults())
	})
}

func TestRegistrationConflicts(t *testing.T) {
	c := New()
	require.NoError(t, c.AddManifest("test.hcl", []byte(testManifest)))

	err := c.AddManifest("again.hcl", []byte(testManifest))
	assert.ErrorContains(t, err, "already defined")

	require.NoError(t, c.RegisterGenerator("test_op", testGenerate))
	err = c.RegisterGenerator("test_op", testGenerate)
	assert.ErrorContains(t, err, "already registered")

	err = c.RegisterGenerator("nil_op", nil)
	assert.ErrorContains(t, err, "cannot be nil")
}

func TestValidateParity(t *testing.T) {
	t.Run("manifest without generator", func(t *testing.T) {
		c := New()
		require.NoError(t, c.AddManifest("test.hcl", []byte(testManifest)))
		require.NoError(t, c.RegisterGenerator("test_op", testGenerate))
		err := c.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "'bare_op': manifest has no registered generator")
	})

	t.Run("generator without manifest", func(t *testing.T) {
		c := New()
		require.NoError(t, c.RegisterGenerator("orphan", testGenerate))
		err := c.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "'orphan': generator registered without a manifest definition")
	})
}

func TestLookupMiss(t *testing.T) {
	c := New()
	_, ok := c.Lookup("totally_unknown_op")
	assert.False(t, ok)
}

func TestAllIsStable(t *testing.T) {
	c := New()
	require.NoError(t, c.AddManifest("test.hcl", []byte(testManifest)))
	require.NoError(t, c.RegisterGenerator("test_op", testGenerate))
	require.NoError(t, c.RegisterGenerator("bare_op", testGenerate))

	names := func() []string {
		var out []string
		for _, op := range c.All() {
			out = append(out, op.Name)
		}
		return out
	}
	first := names()
	assert.Equal(t, []string{"test_op", "bare_op"}, first)
	assert.Equal(t, first, names())
}

func TestCategories(t *testing.T) {
	c := New()
	require.NoError(t, c.AddManifest("test.hcl", []byte(testManifest)))
	cats := c.Categories()
	assert.Equal(t, []string{"test_op", "bare_op"}, cats["Test"])
}

func TestParseManifestErrors(t *testing.T) {
	t.Run("syntax error", func(t *testing.T) {
		_, err := ParseManifest("bad.hcl", []byte(`operator "x" {`))
		assert.Error(t, err)
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := ParseManifest("bad.hcl", []byte(`operator "x" {}`))
		assert.Error(t, err)
	})

	t.Run("duplicate option", func(t *testing.T) {
		src := `
operator "x" {
  category = "Test"
  option "a" { default = 1 }
  option "a" { default = 2 }
}
`
		_, err := ParseManifest("bad.hcl", []byte(src))
		assert.ErrorContains(t, err, "duplicate option 'a'")
	})
}
