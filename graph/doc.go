// Package graph defines the workflow graph model: typed operation nodes,
// directed edges between them, and the read-only adjacency queries the
// dependency resolver needs.
//
// The model is deliberately dumb. It is built from externally supplied node
// and edge lists (the editor or a deserializer owns those), performs no
// normalization or caching, and recomputes adjacency per query. Graphs are
// small, tens to low hundreds of nodes, so projection cost is irrelevant and
// there is no cache-coherence contract to get wrong.
package graph
