// Package resolve computes the evaluation order for a workflow graph: a
// topological sort with declaration-order tie-breaks, the ordered producer
// variables for each node's inputs, and the output node the compiled program
// returns. Cycles and dangling edges abort resolution; there is no partial
// plan.
package resolve
