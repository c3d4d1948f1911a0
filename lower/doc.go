// Package lower drives the graph-to-program compilation: it validates a
// workflow graph, resolves its evaluation order, asks the operator catalog to
// generate each node's statement block, and wraps the result in the HLX
// program frame the external execution engine consumes.
//
// Lowering is a single pass through a small state machine
// (init → resolving → emitting → finalizing → done, with failed as the only
// error exit). Everything is pure and synchronous: no I/O, no locking, no
// state retained between compilations.
package lower
