// Package catalog is the operator registry: it maps operator names to their
// metadata and code generators.
//
// An operator is described in two halves that are kept strictly in sync. The
// manifest half is an HCL file embedded in the operator's package, declaring
// the name, category, description, and the documented configuration options
// with their defaults. The generator half is a Go function that emits the
// operator's HLX statement block. Validate performs the parity check at
// startup so a manifest without code (or code without a manifest) fails fast
// instead of surfacing as a hole in compiled programs.
//
// The catalog is append-only and built once at process start; adding an
// operator never touches the resolver or the lowering engine.
package catalog
