package fileops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/autograph-dev/autograph/catalog"
)

func TestFileOperators(t *testing.T) {
	c := catalog.New()
	require.NoError(t, (&Module{}).Register(c))
	require.NoError(t, c.Validate())

	t.Run("read uses configured path", func(t *testing.T) {
		op, ok := c.Lookup("file_read")
		require.True(t, ok)
		config := cty.ObjectVal(map[string]cty.Value{"path": cty.StringVal("notes/a.txt")})
		assert.Equal(t, `    let r_out = read_file("notes/a.txt");`+"\n", op.Generate("r", config, nil))
	})

	t.Run("write threads the input through", func(t *testing.T) {
		op, ok := c.Lookup("file_write")
		require.True(t, ok)
		assert.Equal(t,
			`    let w_out = write_file("file.txt", data_out);`+"\n",
			op.Generate("w", cty.NilVal, []string{"data_out"}))
	})

	t.Run("write defaults to the empty string", func(t *testing.T) {
		op, ok := c.Lookup("file_write")
		require.True(t, ok)
		assert.Equal(t,
			`    let w_out = write_file("file.txt", "");`+"\n",
			op.Generate("w", cty.NilVal, nil))
	})

	t.Run("paths with quotes are escaped", func(t *testing.T) {
		op, ok := c.Lookup("file_delete")
		require.True(t, ok)
		config := cty.ObjectVal(map[string]cty.Value{"path": cty.StringVal(`we"ird.txt`)})
		assert.Equal(t, `    let d_out = delete_file("we\"ird.txt");`+"\n", op.Generate("d", config, nil))
	})
}
