package catalog

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// GenerateFunc emits the HLX statement block for one node. It receives the
// node id, the node's loosely structured configuration, and the ordered list
// of producer variables feeding the node's inputs.
//
// Generators are total and pure: no I/O, no global state, deterministic
// output for deterministic input. A generator must bind the node's result to
// `<node_id>_out`; misconfiguration is absorbed by defaulting, never by an
// error return, so a valid graph always lowers to a program.
type GenerateFunc func(nodeID string, config cty.Value, inputs []string) string

// Operator is the combined view of one catalog entry: the manifest-declared
// metadata plus the registered Go generator.
type Operator struct {
	Name        string
	Category    string
	Description string

	options  []OptionDefinition
	generate GenerateFunc
}

// Defaults returns a fresh object value enumerating every documented option
// with its default. Editors use this to prefill newly placed nodes.
func (o *Operator) Defaults() cty.Value {
	if len(o.options) == 0 {
		return cty.EmptyObjectVal
	}
	attrs := make(map[string]cty.Value, len(o.options))
	for _, opt := range o.options {
		attrs[opt.Name] = opt.Default
	}
	return cty.ObjectVal(attrs)
}

// Options returns the documented options in manifest order.
func (o *Operator) Options() []OptionDefinition {
	return o.options
}

// Generate invokes the operator's code generator.
func (o *Operator) Generate(nodeID string, config cty.Value, inputs []string) string {
	return o.generate(nodeID, config, inputs)
}

// Module is implemented by each operator package. Register is called once at
// startup to add the package's manifests and generators to a catalog.
type Module interface {
	Register(c *Catalog) error
}

// Catalog maps operator names to their definitions and generators. It is
// populated once at process start and read-only thereafter; registration is
// not safe for concurrent use, lookups after startup are.
type Catalog struct {
	defs     map[string]*Definition
	gens     map[string]GenerateFunc
	defOrder []string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		defs: make(map[string]*Definition),
		gens: make(map[string]GenerateFunc),
	}
}

// RegisterDefinition adds a manifest-decoded operator definition.
func (c *Catalog) RegisterDefinition(def *Definition) error {
	if def.Name == "" {
		return fmt.Errorf("operator name cannot be empty")
	}
	if _, exists := c.defs[def.Name]; exists {
		return fmt.Errorf("operator '%s' is already defined", def.Name)
	}
	c.defs[def.Name] = def
	c.defOrder = append(c.defOrder, def.Name)
	return nil
}

// RegisterGenerator binds a Go generator to an operator name.
func (c *Catalog) RegisterGenerator(name string, fn GenerateFunc) error {
	if fn == nil {
		return fmt.Errorf("operator '%s': generator cannot be nil", name)
	}
	if _, exists := c.gens[name]; exists {
		return fmt.Errorf("generator for operator '%s' already registered", name)
	}
	c.gens[name] = fn
	return nil
}

// RegisterGenerators binds several generators at once.
func (c *Catalog) RegisterGenerators(gens map[string]GenerateFunc) error {
	for name, fn := range gens {
		if err := c.RegisterGenerator(name, fn); err != nil {
			return err
		}
	}
	return nil
}

// AddManifest parses an embedded manifest and registers every operator
// definition it contains. filename is used for diagnostics only.
func (c *Catalog) AddManifest(filename string, src []byte) error {
	defs, err := ParseManifest(filename, src)
	if err != nil {
		return err
	}
	for _, def := range defs {
		if err := c.RegisterDefinition(def); err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
	}
	return nil
}

// Validate performs a strict parity check between manifests and Go code:
// every defined operator needs a generator and every generator needs a
// definition. Run once after all modules have registered.
func (c *Catalog) Validate() error {
	var errs []string
	for _, name := range c.defOrder {
		if _, ok := c.gens[name]; !ok {
			errs = append(errs, fmt.Sprintf("operator '%s': manifest has no registered generator", name))
		}
	}
	for name := range c.gens {
		if _, ok := c.defs[name]; !ok {
			errs = append(errs, fmt.Sprintf("operator '%s': generator registered without a manifest definition", name))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Lookup returns the operator registered under name.
func (c *Catalog) Lookup(name string) (*Operator, bool) {
	def, ok := c.defs[name]
	if !ok {
		return nil, false
	}
	gen, ok := c.gens[name]
	if !ok {
		return nil, false
	}
	return &Operator{
		Name:        def.Name,
		Category:    def.Category,
		Description: def.Description,
		options:     def.Options,
		generate:    gen,
	}, true
}

// All returns every operator in stable registration order, so listings are
// deterministic across processes.
func (c *Catalog) All() []*Operator {
	ops := make([]*Operator, 0, len(c.defOrder))
	for _, name := range c.defOrder {
		if op, ok := c.Lookup(name); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

// Categories groups operator names by category, preserving registration
// order within each group. Intended for editor palettes.
func (c *Catalog) Categories() map[string][]string {
	result := make(map[string][]string)
	for _, name := range c.defOrder {
		def := c.defs[name]
		result[def.Category] = append(result[def.Category], name)
	}
	return result
}
