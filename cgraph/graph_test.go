// Package cgraph_test covers graph construction, edge invariants and the
// edge-subdivision construction.
package cgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/archgraph/cgraph"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := cgraph.New(0)
	assert.True(t, errors.Is(err, cgraph.ErrTooFewVertices))

	g, err := cgraph.New(1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Order())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_Invariants(t *testing.T) {
	t.Parallel()

	g, err := cgraph.New(4)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 2))
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(2, 0), "undirected symmetry")

	// Idempotent re-add keeps the graph simple.
	require.NoError(t, g.AddEdge(2, 0))
	assert.Equal(t, 1, g.EdgeCount())

	assert.True(t, errors.Is(g.AddEdge(1, 1), cgraph.ErrLoopNotAllowed))
	assert.True(t, errors.Is(g.AddEdge(-1, 2), cgraph.ErrVertexOutOfRange))
	assert.True(t, errors.Is(g.AddEdge(0, 4), cgraph.ErrVertexOutOfRange))
}

func TestEdges_DeterministicOrder(t *testing.T) {
	t.Parallel()

	g, err := cgraph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(3, 1))
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(1, 0))

	want := []cgraph.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3}}
	assert.Equal(t, want, g.Edges())
}

func TestSubdivide(t *testing.T) {
	t.Parallel()

	// Triangle over 3 vertices: 3 edges become 3 auxiliaries and 6 edges.
	g, err := cgraph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(0, 2))

	sub, aux := g.Subdivide()
	assert.Equal(t, 3, aux)
	assert.Equal(t, 6, sub.Order())
	assert.Equal(t, 6, sub.EdgeCount())

	// Edge {0,1} is first in Edges() order, so its auxiliary is vertex 3.
	assert.True(t, sub.HasEdge(0, 3))
	assert.True(t, sub.HasEdge(3, 1))
	// Original endpoints are no longer adjacent.
	assert.False(t, sub.HasEdge(0, 1))

	// The receiver is untouched.
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestSubdivide_Edgeless(t *testing.T) {
	t.Parallel()

	g, err := cgraph.New(5)
	require.NoError(t, err)
	sub, aux := g.Subdivide()
	assert.Equal(t, 0, aux)
	assert.Equal(t, 5, sub.Order())
	assert.Equal(t, 0, sub.EdgeCount())
}
