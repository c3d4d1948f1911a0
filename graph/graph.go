package graph

import (
	"github.com/zclconf/go-cty/cty"
)

// Position is an editor canvas coordinate. It is carried through the model
// for the benefit of graphical front ends and is irrelevant to compilation.
type Position struct {
	X float64
	Y float64
}

// Node is a single operation instance in a workflow graph.
type Node struct {
	// ID uniquely identifies the node within its graph.
	ID string
	// Op is the operator name, used as the catalog lookup key.
	Op string
	// Config is the operator's loosely structured configuration as supplied
	// by the editor. Its schema is owned by the operator; the compiler treats
	// it as opaque. A cty.NilVal or null config is valid and means "all
	// defaults".
	Config cty.Value
	// Position is the node's canvas placement, if any. Irrelevant to compilation.
	Position *Position
	// Breakpoint is the editor's debug marker. Irrelevant to compilation.
	Breakpoint bool
}

// Edge is a directed dependency from Source's output to Target's input.
type Edge struct {
	Source string
	Target string
	// SourceHandle and TargetHandle are port labels reserved for future
	// multi-port operators. Current resolution treats all incoming edges to
	// a node as one ordered list and ignores the labels.
	SourceHandle string
	TargetHandle string
}

// Graph is a workflow graph built from externally supplied node and edge
// lists. It performs no normalization: the declaration order of nodes and the
// collection order of edges are semantically significant (tie-breaks and
// positional input binding) and are preserved exactly as given.
//
// A Graph is a read-only snapshot once constructed. The caller owns the
// source lists and must not mutate a graph concurrently with a compilation
// reading it.
type Graph struct {
	nodes []Node
	edges []Edge
	index map[string]int
}

// New builds a graph from node and edge lists. The lists are copied so later
// caller-side mutation cannot affect a compilation in flight. No structural
// validation happens here; see Validate.
func New(nodes []Node, edges []Edge) *Graph {
	g := &Graph{
		nodes: append([]Node(nil), nodes...),
		edges: append([]Edge(nil), edges...),
		index: make(map[string]int, len(nodes)),
	}
	for i, n := range g.nodes {
		if _, exists := g.index[n.ID]; exists {
			// Keep the first occurrence; Validate reports the duplicate.
			continue
		}
		g.index[n.ID] = i
	}
	return g
}

// Nodes returns the nodes in declaration order.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Edges returns the edges in collection order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Contains reports whether a node with the given id exists.
func (g *Graph) Contains(id string) bool {
	_, ok := g.index[id]
	return ok
}

// DeclarationIndex returns the position of the node in the declaration
// order, used by the resolver as a deterministic tie-break.
func (g *Graph) DeclarationIndex(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Incoming returns the edges targeting the node, preserving edge collection
// order. That order determines positional input binding for multi-input
// operators.
func (g *Graph) Incoming(id string) []Edge {
	var in []Edge
	for _, e := range g.edges {
		if e.Target == id {
			in = append(in, e)
		}
	}
	return in
}

// Outgoing returns the edges originating at the node in collection order.
func (g *Graph) Outgoing(id string) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.Source == id {
			out = append(out, e)
		}
	}
	return out
}

// HasOutgoing reports whether any edge originates at the node. Nodes without
// outgoing edges are sinks and candidates for the program result.
func (g *Graph) HasOutgoing(id string) bool {
	for _, e := range g.edges {
		if e.Source == id {
			return true
		}
	}
	return false
}

// Validate checks the graph's structural invariants: node ids must be unique
// and every edge endpoint must reference an existing node. The first
// violation found is returned; a structurally invalid graph must never be
// lowered.
func (g *Graph) Validate() error {
	seen := make(map[string]struct{}, len(g.nodes))
	for _, n := range g.nodes {
		if _, dup := seen[n.ID]; dup {
			return &DuplicateNodeIDError{ID: n.ID}
		}
		seen[n.ID] = struct{}{}
	}
	for _, e := range g.edges {
		if !g.Contains(e.Source) {
			return &DanglingEdgeError{Source: e.Source, Target: e.Target, Missing: e.Source}
		}
		if !g.Contains(e.Target) {
			return &DanglingEdgeError{Source: e.Source, Target: e.Target, Missing: e.Target}
		}
	}
	return nil
}
