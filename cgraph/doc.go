// Package cgraph defines the colored simple undirected graph submitted to
// the automorphism oracle, together with random color partitions and the
// edge-subdivision construction that reduces edge coloring to vertex
// coloring.
//
// Vertices are dense integer indices 0..n-1, because the oracle protocol
// speaks index arrays; there are no string IDs here. Graphs are simple
// (no loops, no parallel edges) and undirected by construction.
//
// Errors:
//
//	ErrTooFewVertices   - requested order below 1.
//	ErrVertexOutOfRange - edge endpoint outside 0..n-1.
//	ErrLoopNotAllowed   - self-loop attempted.
//	ErrBadClassCount    - color partition with a non-positive class count.
package cgraph
