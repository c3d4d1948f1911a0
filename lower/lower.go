package lower

import (
	"context"

	"github.com/felixgeelhaar/statekit"

	"github.com/autograph-dev/autograph/catalog"
	"github.com/autograph-dev/autograph/graph"
	"github.com/autograph-dev/autograph/internal/ctxlog"
	"github.com/autograph-dev/autograph/internal/hlx"
	"github.com/autograph-dev/autograph/resolve"
)

// Phase is a stage of the lowering state machine.
type Phase string

const (
	// PhaseInit validates the graph's structure.
	PhaseInit Phase = "init"
	// PhaseResolving runs the dependency resolver.
	PhaseResolving Phase = "resolving"
	// PhaseEmitting generates each node's statement block in resolved order.
	PhaseEmitting Phase = "emitting"
	// PhaseFinalizing wraps the blocks in the program frame and return statement.
	PhaseFinalizing Phase = "finalizing"
	// PhaseDone is the terminal success state.
	PhaseDone Phase = "done"
	// PhaseFailed is the terminal state for structural errors.
	PhaseFailed Phase = "failed"
)

// Events driving the lowering state machine.
const (
	eventValidated = "VALIDATED"
	eventResolved  = "RESOLVED"
	eventEmitted   = "EMITTED"
	eventFinalized = "FINALIZED"
	eventFail      = "FAIL"
)

// machineContext is the statekit context for one compilation. The machine
// only tracks the phase; compilation data lives on the stack in compile.
type machineContext struct {
	Graph string
}

// Engine lowers workflow graphs to HLX program text using a fixed operator
// catalog. It holds no per-compilation state: distinct graphs may be
// compiled in parallel on the same Engine.
type Engine struct {
	catalog *catalog.Catalog
}

// New returns an engine emitting via the given catalog.
func New(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Compile lowers one graph to HLX program text.
//
// The only failure channel is graph structure (duplicate ids, dangling
// edges, cycles); those errors surface verbatim and yield no program text.
// For any acyclic, dangling-free graph compilation always succeeds: unknown
// operators degrade to a diagnostic comment plus a null binding, and
// operator misconfiguration is absorbed by defaulting.
func (e *Engine) Compile(ctx context.Context, g *graph.Graph) (string, error) {
	text, _, err := e.compile(ctx, g)
	return text, err
}

// Compile is a convenience wrapper for one-off use.
func Compile(ctx context.Context, g *graph.Graph, c *catalog.Catalog) (string, error) {
	return New(c).Compile(ctx, g)
}

// compile drives the phase machine and reports the terminal phase, which
// tests assert on.
func (e *Engine) compile(ctx context.Context, g *graph.Graph) (string, Phase, error) {
	logger := ctxlog.FromContext(ctx)

	interp, err := buildLoweringMachine()
	if err != nil {
		// The machine definition is static; this cannot happen outside of a
		// programming error in this package.
		return "", PhaseFailed, err
	}
	interp.Start()
	defer interp.Stop()

	fail := func(cause error) (string, Phase, error) {
		interp.Send(statekit.Event{Type: eventFail})
		logger.Debug("Lowering failed.", "phase", interp.State().Value, "error", cause)
		return "", Phase(interp.State().Value), cause
	}

	// init: structural validation before anything is emitted.
	if err := g.Validate(); err != nil {
		return fail(err)
	}
	interp.Send(statekit.Event{Type: eventValidated})

	// resolving: evaluation order, input binding, output selection.
	plan, err := resolve.Resolve(ctx, g)
	if err != nil {
		return fail(err)
	}
	interp.Send(statekit.Event{Type: eventResolved})

	// emitting: one statement block per node. This phase cannot fail;
	// generators are total and the unknown-operator fallback localizes a
	// missing catalog entry to that node's value.
	var body hlx.Writer
	for _, id := range plan.Order {
		node, _ := g.Node(id)
		body.Raw(e.emitNode(ctx, node, plan.Inputs[id]))
	}
	interp.Send(statekit.Event{Type: eventEmitted})

	// finalizing: program frame and return statement.
	var w hlx.Writer
	w.Linef("program workflow {")
	w.Linef("")
	w.Linef("fn main(input) {")
	w.Raw(body.String())
	if plan.Output != "" {
		w.Raw(hlx.Stmt("return %s;", hlx.OutVar(plan.Output)))
	} else {
		w.Raw(hlx.Stmt("return null;"))
	}
	w.Linef("}")
	w.Linef("")
	w.Linef("}")
	interp.Send(statekit.Event{Type: eventFinalized})

	logger.Debug("Lowering complete.", "nodes", len(plan.Order), "output_node", plan.Output)
	return w.String(), Phase(interp.State().Value), nil
}

// emitNode produces one node's statement block.
func (e *Engine) emitNode(ctx context.Context, node graph.Node, inputs []string) string {
	op, ok := e.catalog.Lookup(node.Op)
	if !ok {
		ctxlog.FromContext(ctx).Warn("Unknown operator, emitting null binding.", "node_id", node.ID, "operator", node.Op)
		return hlx.Comment("Unknown operator type: %s", node.Op) + hlx.Let(node.ID, "null")
	}
	return op.Generate(node.ID, node.Config, inputs)
}

// buildLoweringMachine constructs the per-compilation phase machine. The
// machine is linear with a FAIL escape from every working phase; terminal
// states have no transitions.
func buildLoweringMachine() (*statekit.Interpreter[machineContext], error) {
	machine, err := statekit.NewMachine[machineContext]("lowering").
		WithInitial(statekit.StateID(PhaseInit)).
		WithContext(machineContext{}).
		State(statekit.StateID(PhaseInit)).
		On(eventValidated).Target(statekit.StateID(PhaseResolving)).
		On(eventFail).Target(statekit.StateID(PhaseFailed)).Done().
		State(statekit.StateID(PhaseResolving)).
		On(eventResolved).Target(statekit.StateID(PhaseEmitting)).
		On(eventFail).Target(statekit.StateID(PhaseFailed)).Done().
		State(statekit.StateID(PhaseEmitting)).
		On(eventEmitted).Target(statekit.StateID(PhaseFinalizing)).
		On(eventFail).Target(statekit.StateID(PhaseFailed)).Done().
		State(statekit.StateID(PhaseFinalizing)).
		On(eventFinalized).Target(statekit.StateID(PhaseDone)).
		On(eventFail).Target(statekit.StateID(PhaseFailed)).Done().
		State(statekit.StateID(PhaseDone)).Done().
		State(statekit.StateID(PhaseFailed)).Done().
		Build()
	if err != nil {
		return nil, err
	}
	return statekit.NewInterpreter(machine), nil
}
