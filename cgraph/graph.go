// SPDX-License-Identifier: MIT
// Package: archgraph/cgraph
//
// graph.go — simple undirected graph over dense integer vertices.
//
// Contract:
//   - Order n ≥ 1; endpoints in 0..n-1; no loops; AddEdge is idempotent.
//   - Edges() emits a deterministic ascending (u,v) order with u < v, so
//     everything built on top of the edge list is reproducible.
//
// Complexity: AddEdge/HasEdge O(1) expected; Edges O(n + m log m) worst case
// is avoided by construction — adjacency sets are walked in index order.

package cgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrTooFewVertices indicates a requested order below the minimum of 1.
	ErrTooFewVertices = errors.New("cgraph: too few vertices")

	// ErrVertexOutOfRange indicates an endpoint outside 0..n-1.
	ErrVertexOutOfRange = errors.New("cgraph: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop; the oracle input is simple.
	ErrLoopNotAllowed = errors.New("cgraph: self-loop not allowed")
)

// minOrder is the smallest admissible vertex count.
const minOrder = 1

// Edge is an unordered vertex pair normalized to U < V.
type Edge struct {
	U int
	V int
}

// Graph is a simple undirected graph over vertices 0..n-1.
// Not safe for concurrent mutation; the synthesis pipeline is sequential.
type Graph struct {
	n   int
	adj []map[int]struct{}
}

// New returns an edgeless graph of the given order.
func New(n int) (*Graph, error) {
	if n < minOrder {
		return nil, fmt.Errorf("New: n=%d < min=%d: %w", n, minOrder, ErrTooFewVertices)
	}
	return &Graph{n: n, adj: make([]map[int]struct{}, n)}, nil
}

// Order returns the vertex count.
func (g *Graph) Order() int { return g.n }

// AddEdge inserts the undirected edge {u,v}. Re-adding an existing edge is a
// no-op (the graph stays simple).
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("AddEdge: u=%d outside 0..%d: %w", u, g.n-1, ErrVertexOutOfRange)
	}
	if v < 0 || v >= g.n {
		return fmt.Errorf("AddEdge: v=%d outside 0..%d: %w", v, g.n-1, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge: loop at %d: %w", u, ErrLoopNotAllowed)
	}
	if g.adj[u] == nil {
		g.adj[u] = make(map[int]struct{})
	}
	if g.adj[v] == nil {
		g.adj[v] = make(map[int]struct{})
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	return nil
}

// HasEdge reports whether {u,v} is present. Out-of-range queries are false.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || g.adj[u] == nil {
		return false
	}
	_, ok := g.adj[u][v]
	return ok
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nb := range g.adj {
		total += len(nb)
	}
	return total / 2
}

// Edges returns all edges normalized to U < V, in ascending (U,V) order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.EdgeCount())
	for u := 0; u < g.n; u++ {
		for v := u + 1; v < g.n; v++ {
			if g.HasEdge(u, v) {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}
	return edges
}

// Subdivide returns a derived graph where every edge {u,v} is replaced by
// u—x and x—v for a fresh auxiliary vertex x, plus the auxiliary count.
// Auxiliary vertices are appended after the originals: the edge at position
// k in Edges() order gets index n+k. The receiver is left untouched.
func (g *Graph) Subdivide() (*Graph, int) {
	edges := g.Edges()
	sub := &Graph{
		n:   g.n + len(edges),
		adj: make([]map[int]struct{}, g.n+len(edges)),
	}
	for k, e := range edges {
		aux := g.n + k
		// Internal invariant: endpoints and aux are in range, no loops possible.
		_ = sub.AddEdge(e.U, aux)
		_ = sub.AddEdge(aux, e.V)
	}
	return sub, len(edges)
}
