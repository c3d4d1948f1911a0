// Package hlx contains small helpers for assembling HLX program text.
//
// The emitted language is consumed by an external parse/execute engine; this
// package only knows its surface syntax: `let` bindings, statements terminated
// by semicolons, `//` comments, and JSON-like literals. The one contract that
// matters to the rest of the compiler lives here: a node's result is always
// bound to `<node_id>_out`.
package hlx

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// bodyIndent is the indentation for statements inside `fn main(input)`.
const bodyIndent = "    "

// OutVar returns the variable a node publishes its result under.
// Downstream nodes rely on this name without consulting the catalog.
func OutVar(nodeID string) string {
	return nodeID + "_out"
}

// TempVar returns the scratch variable an operator may use before it
// publishes its result. Operators that use it must still bind OutVar.
func TempVar(nodeID string) string {
	return nodeID + "_t"
}

// Input returns the first resolved input variable, or fallback when the
// node has no incoming edges. The fallback is an HLX expression, typically
// `null`, `""`, `0`, `[]`, or `{}` depending on the operator's domain.
func Input(inputs []string, fallback string) string {
	return InputAt(inputs, 0, fallback)
}

// InputAt returns the i-th resolved input variable, or fallback when fewer
// inputs are wired.
func InputAt(inputs []string, i int, fallback string) string {
	if i < len(inputs) {
		return inputs[i]
	}
	return fallback
}

// Let renders a `let <id>_out = <expr>;` binding for a node.
func Let(nodeID, expr string) string {
	return fmt.Sprintf("%slet %s = %s;\n", bodyIndent, OutVar(nodeID), expr)
}

// Stmt renders a single indented statement line.
func Stmt(format string, args ...any) string {
	return bodyIndent + fmt.Sprintf(format, args...) + "\n"
}

// Comment renders an indented `//` comment line.
func Comment(format string, args ...any) string {
	return bodyIndent + "// " + fmt.Sprintf(format, args...) + "\n"
}

// Quote renders s as an HLX string literal.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Literal renders a cty value as an HLX literal. Unknown and null values
// render as `null`, so malformed editor data degrades to something the
// runtime can still evaluate.
func Literal(v cty.Value) string {
	if v == cty.NilVal || v.IsNull() || !v.IsKnown() {
		return "null"
	}
	ty := v.Type()
	switch {
	case ty == cty.Bool:
		if v.True() {
			return "true"
		}
		return "false"
	case ty == cty.Number:
		return v.AsBigFloat().Text('f', -1)
	case ty == cty.String:
		return Quote(v.AsString())
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		elems := make([]string, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			elems = append(elems, Literal(ev))
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case ty.IsObjectType() || ty.IsMapType():
		attrs := v.AsValueMap()
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s: %s", Quote(k), Literal(attrs[k])))
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	default:
		return "null"
	}
}

// Writer accumulates program text line by line. It is used by the lowering
// engine for the program frame and by operators that emit several statements.
type Writer struct {
	buf strings.Builder
}

// Linef appends one formatted line terminated by a newline.
func (w *Writer) Linef(format string, args ...any) {
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

// Raw appends text verbatim.
func (w *Writer) Raw(s string) {
	w.buf.WriteString(s)
}

// String returns everything written so far.
func (w *Writer) String() string {
	return w.buf.String()
}
