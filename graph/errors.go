package graph

import "fmt"

// The structural error types below are always fatal: detection happens before
// any emission and never yields partial program text. Each carries the
// offending identifiers so front ends can point at the broken element.

// DuplicateNodeIDError reports two nodes declared with the same id.
type DuplicateNodeIDError struct {
	ID string
}

func (e *DuplicateNodeIDError) Error() string {
	return fmt.Sprintf("duplicate node id '%s'", e.ID)
}

// DanglingEdgeError reports an edge whose endpoint names a missing node.
// Silently dropping such an edge would silently change program semantics,
// so it is a hard stop.
type DanglingEdgeError struct {
	Source  string
	Target  string
	Missing string
}

func (e *DanglingEdgeError) Error() string {
	return fmt.Sprintf("edge %s -> %s references missing node '%s'", e.Source, e.Target, e.Missing)
}

// CyclicError reports a dependency cycle, naming one node on the cycle.
// Statement order would be unsound for a cyclic graph, so lowering must not
// proceed.
type CyclicError struct {
	NodeID string
}

func (e *CyclicError) Error() string {
	return fmt.Sprintf("cycle detected involving node '%s'", e.NodeID)
}
