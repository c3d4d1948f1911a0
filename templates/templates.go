// Package templates ships prebuilt workflow graphs for common automation
// tasks. Editors surface them as one-click starting points.
package templates

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/autograph-dev/autograph/graph"
)

// Template describes one prebuilt workflow. Build returns a fresh graph on
// every call so callers can mutate the result freely.
type Template struct {
	Name        string
	Description string
	Category    string
	Build       func() *graph.Graph
}

// All returns every built-in template in stable listing order.
func All() []Template {
	return []Template{
		{
			Name:        "HTTP → JSON → Print",
			Description: "Fetch JSON from API and print result",
			Category:    "API",
			Build:       httpToJSONToPrint,
		},
		{
			Name:        "File Processing",
			Description: "Read file, transform, write back",
			Category:    "Files",
			Build:       fileProcessing,
		},
		{
			Name:        "JSON API Pipeline",
			Description: "Fetch, parse, extract, save to file",
			Category:    "API",
			Build:       jsonAPIPipeline,
		},
		{
			Name:        "Data Processing",
			Description: "Load JSON, transform, filter, save",
			Category:    "Data",
			Build:       dataProcessing,
		},
		{
			Name:        "Math Calculator",
			Description: "Chain math operations",
			Category:    "Math",
			Build:       mathCalculator,
		},
	}
}

func at(x, y float64) *graph.Position {
	return &graph.Position{X: x, Y: y}
}

func stringConfig(key, value string) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{key: cty.StringVal(value)})
}

func httpToJSONToPrint() *graph.Graph {
	return graph.New(
		[]graph.Node{
			{ID: "http1", Op: "http_get", Config: stringConfig("url", "https://api.github.com/users/octocat"), Position: at(100, 200)},
			{ID: "json1", Op: "json_parse", Position: at(300, 200)},
			{ID: "print1", Op: "print", Position: at(500, 200)},
		},
		[]graph.Edge{
			{Source: "http1", Target: "json1"},
			{Source: "json1", Target: "print1"},
		},
	)
}

func fileProcessing() *graph.Graph {
	return graph.New(
		[]graph.Node{
			{ID: "read1", Op: "file_read", Config: stringConfig("path", "input.txt"), Position: at(100, 200)},
			{ID: "upper1", Op: "string_upper", Position: at(300, 200)},
			{ID: "write1", Op: "file_write", Config: stringConfig("path", "output.txt"), Position: at(500, 200)},
		},
		[]graph.Edge{
			{Source: "read1", Target: "upper1"},
			{Source: "upper1", Target: "write1"},
		},
	)
}

func jsonAPIPipeline() *graph.Graph {
	return graph.New(
		[]graph.Node{
			{ID: "http1", Op: "http_get", Config: stringConfig("url", "https://api.example.com/data"), Position: at(100, 150)},
			{ID: "json1", Op: "json_parse", Position: at(300, 150)},
			{ID: "get1", Op: "json_get", Config: stringConfig("key", "results"), Position: at(500, 150)},
			{ID: "write1", Op: "json_write", Config: stringConfig("path", "results.json"), Position: at(700, 150)},
		},
		[]graph.Edge{
			{Source: "http1", Target: "json1"},
			{Source: "json1", Target: "get1"},
			{Source: "get1", Target: "write1"},
		},
	)
}

func dataProcessing() *graph.Graph {
	return graph.New(
		[]graph.Node{
			{ID: "read1", Op: "json_read", Config: stringConfig("path", "data.json"), Position: at(100, 200)},
			{ID: "get1", Op: "object_get", Config: stringConfig("key", "items"), Position: at(300, 200)},
			{ID: "len1", Op: "array_length", Position: at(500, 200)},
			{ID: "print1", Op: "print", Position: at(700, 200)},
		},
		[]graph.Edge{
			{Source: "read1", Target: "get1"},
			{Source: "get1", Target: "len1"},
			{Source: "len1", Target: "print1"},
		},
	)
}

func mathCalculator() *graph.Graph {
	numberConfig := func(v int64) cty.Value {
		return cty.ObjectVal(map[string]cty.Value{"value": cty.NumberIntVal(v)})
	}
	return graph.New(
		[]graph.Node{
			{ID: "add1", Op: "math_add", Config: numberConfig(10), Position: at(100, 200)},
			{ID: "mult1", Op: "math_multiply", Config: numberConfig(2), Position: at(300, 200)},
			{ID: "sqrt1", Op: "math_sqrt", Position: at(500, 200)},
			{ID: "print1", Op: "print", Position: at(700, 200)},
		},
		[]graph.Edge{
			{Source: "add1", Target: "mult1"},
			{Source: "mult1", Target: "sqrt1"},
			{Source: "sqrt1", Target: "print1"},
		},
	)
}
