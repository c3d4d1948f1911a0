// Package fileops provides the filesystem operators.
package fileops

import (
	_ "embed"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/autograph-dev/autograph/catalog"
	"github.com/autograph-dev/autograph/internal/hlx"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module registers the file and directory operators.
type Module struct{}

func (m *Module) Register(c *catalog.Catalog) error {
	if err := c.AddManifest("fileops/manifest.hcl", manifestSrc); err != nil {
		return err
	}
	return c.RegisterGenerators(map[string]catalog.GenerateFunc{
		"file_read":   pathOnly("read_file", "file.txt"),
		"file_exists": pathOnly("file_exists", "file.txt"),
		"file_delete": pathOnly("delete_file", "file.txt"),
		"file_list":   pathOnly("list_files", "."),
		"dir_create":  pathOnly("create_dir", "new_dir"),
		"json_read":   pathOnly("read_json", "data.json"),
		"file_write": func(nodeID string, config cty.Value, inputs []string) string {
			path := catalog.OptionString(config, "path", "file.txt")
			in := hlx.Input(inputs, `""`)
			return hlx.Let(nodeID, fmt.Sprintf("write_file(%s, %s)", hlx.Quote(path), in))
		},
		"json_write": func(nodeID string, config cty.Value, inputs []string) string {
			path := catalog.OptionString(config, "path", "data.json")
			in := hlx.Input(inputs, "null")
			return hlx.Let(nodeID, fmt.Sprintf("write_json(%s, %s)", hlx.Quote(path), in))
		},
	})
}

// pathOnly covers the operators whose only argument is the configured path.
func pathOnly(builtin, defaultPath string) catalog.GenerateFunc {
	return func(nodeID string, config cty.Value, inputs []string) string {
		path := catalog.OptionString(config, "path", defaultPath)
		return hlx.Let(nodeID, fmt.Sprintf("%s(%s)", builtin, hlx.Quote(path)))
	}
}
