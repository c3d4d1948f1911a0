package resolve

import (
	"context"

	"github.com/autograph-dev/autograph/graph"
	"github.com/autograph-dev/autograph/internal/ctxlog"
	"github.com/autograph-dev/autograph/internal/hlx"
)

// Plan is the resolver's output: a deterministic, dependency-respecting
// linear order over the graph's nodes plus everything the lowering engine
// needs to bind inputs and pick the program result.
type Plan struct {
	// Order lists node ids so that every edge source precedes its target.
	// Ties among simultaneously ready nodes break by declaration order.
	Order []string
	// Inputs maps each node id to its ordered producer variables, one per
	// incoming edge in edge collection order. The target language binds
	// inputs positionally, so this order is part of program semantics.
	Inputs map[string][]string
	// Output is the id of the node whose result the program returns: the
	// first sink (zero outdegree) in declaration order. Empty when the graph
	// has no sink, in which case the program returns null.
	Output string
}

// Resolve computes the evaluation plan for a graph. It fails only on
// structural problems: duplicate node ids, dangling edges, or cycles.
func Resolve(ctx context.Context, g *graph.Graph) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)

	if err := g.Validate(); err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	logger.Debug("Resolving evaluation order.", "node_count", len(nodes), "edge_count", len(g.Edges()))

	// Kahn's algorithm. The ready pool is drained lowest-declaration-index
	// first, which makes the order independent of map iteration.
	indegree := make(map[string]int, len(nodes))
	for _, n := range nodes {
		indegree[n.ID] = 0
	}
	for _, e := range g.Edges() {
		indegree[e.Target]++
	}

	var ready []string
	for _, n := range nodes {
		if indegree[n.ID] == 0 {
			ready = append(ready, n.ID)
		}
	}

	order := make([]string, 0, len(nodes))
	for len(ready) > 0 {
		next := 0
		for i := 1; i < len(ready); i++ {
			a, _ := g.DeclarationIndex(ready[i])
			b, _ := g.DeclarationIndex(ready[next])
			if a < b {
				next = i
			}
		}
		id := ready[next]
		ready = append(ready[:next], ready[next+1:]...)
		order = append(order, id)

		for _, e := range g.Outgoing(id) {
			indegree[e.Target]--
			if indegree[e.Target] == 0 {
				ready = append(ready, e.Target)
			}
		}
	}

	if len(order) < len(nodes) {
		err := &graph.CyclicError{NodeID: nameCycleNode(g, order)}
		logger.Debug("Resolution failed.", "error", err)
		return nil, err
	}

	plan := &Plan{
		Order:  order,
		Inputs: make(map[string][]string, len(nodes)),
		Output: selectOutput(g),
	}
	for _, n := range nodes {
		inputs := make([]string, 0, 1)
		for _, e := range g.Incoming(n.ID) {
			inputs = append(inputs, hlx.OutVar(e.Source))
		}
		plan.Inputs[n.ID] = inputs
	}

	logger.Debug("Resolution complete.", "output_node", plan.Output)
	return plan, nil
}

// selectOutput picks the first zero-outdegree node in declaration order.
// When several sinks exist this is a documented heuristic, not a guarantee;
// an explicit terminal marker would remove the ambiguity.
func selectOutput(g *graph.Graph) string {
	for _, n := range g.Nodes() {
		if !g.HasOutgoing(n.ID) {
			return n.ID
		}
	}
	return ""
}

// nameCycleNode finds a node on a cycle among the nodes Kahn could not
// order. Classic depth-first search with temporary/permanent marks; hitting
// a node already on the recursion stack identifies the cycle.
func nameCycleNode(g *graph.Graph, ordered []string) string {
	done := make(map[string]bool, len(ordered))
	for _, id := range ordered {
		done[id] = true
	}

	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(id string) string
	visit = func(id string) string {
		if permanent[id] || done[id] {
			return ""
		}
		if temporary[id] {
			return id
		}
		temporary[id] = true
		for _, e := range g.Outgoing(id) {
			if found := visit(e.Target); found != "" {
				return found
			}
		}
		delete(temporary, id)
		permanent[id] = true
		return ""
	}

	for _, n := range g.Nodes() {
		if done[n.ID] || permanent[n.ID] {
			continue
		}
		if found := visit(n.ID); found != "" {
			return found
		}
	}
	// Unreachable when called with an incomplete Kahn order.
	return ""
}
