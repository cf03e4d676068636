// Package synth_test — tree assembly: combinator choice, cluster shape,
// supergraph chains and graph-wide uniqueness.
package synth_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/archgraph/oracle"
	"github.com/katalvlaran/archgraph/perm"
	"github.com/katalvlaran/archgraph/synth"
)

// distinctQueue yields n single-generator replies over degree 5, pairwise
// distinct for n ≤ 10 (one transposition per unordered pair).
func distinctQueue(n int) [][]perm.Image {
	base := []perm.Image{
		{1, 0, 2, 3, 4}, // (1,2)
		{2, 1, 0, 3, 4}, // (1,3)
		{3, 1, 2, 0, 4}, // (1,4)
		{4, 1, 2, 3, 0}, // (1,5)
		{0, 2, 1, 3, 4}, // (2,3)
		{0, 3, 2, 1, 4}, // (2,4)
		{0, 4, 2, 3, 1}, // (2,5)
		{0, 1, 3, 2, 4}, // (3,4)
		{0, 1, 4, 3, 2}, // (3,5)
		{0, 1, 2, 4, 3}, // (4,5)
	}
	out := make([][]perm.Image, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, []perm.Image{base[i%len(base)]})
	}
	return out
}

// newAssembler wires an assembler over a fake fed with enough distinct
// replies for the requested tree.
func newAssembler(t *testing.T, replies int) (*synth.Assembler, *oracle.Fake) {
	t.Helper()
	f := &oracle.Fake{GenQueue: distinctQueue(replies)}
	s := newSynth(t, f)
	a, err := synth.NewAssembler(s, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	return a, f
}

// treeConfig pins depth and cluster size and fixes the combinator choice.
func treeConfig(t *testing.T, depth, clusterSize int, supergraphProb float64) synth.TreeConfig {
	t.Helper()
	return synth.TreeConfig{
		Depth:       mustRange(t, depth, depth),
		ClusterSize: mustRange(t, clusterSize, clusterSize),
		Supergraph:  mustDecision(t, supergraphProb),
		Component:   fixedConfig(t, 5, 0),
	}
}

// countComponents walks the tree and counts every embedded component.
func countComponents(n synth.Node) int {
	switch v := n.(type) {
	case synth.Leaf:
		return 1
	case synth.Cluster:
		total := 0
		for _, m := range v.Members {
			total += countComponents(m)
		}
		return total
	case synth.Supergraph:
		return 1 + countComponents(v.Sub)
	default:
		return 0
	}
}

func TestAssembler_DepthOneIsALeaf(t *testing.T) {
	t.Parallel()

	a, f := newAssembler(t, 1)
	tree, err := a.Generate(treeConfig(t, 1, 2, 0), synth.NewSeen())
	require.NoError(t, err)

	assert.Equal(t, synth.KindLeaf, tree.Kind())
	assert.Equal(t, 1, f.GenCalls)
}

func TestAssembler_SupergraphChain(t *testing.T) {
	t.Parallel()

	// Depth 4 with certain nesting: exactly 3 supergraph levels around the
	// leaf, one fresh component each.
	a, _ := newAssembler(t, 4)
	tree, err := a.Generate(treeConfig(t, 4, 2, 1), synth.NewSeen())
	require.NoError(t, err)

	levels := 0
	node := tree
	for node.Kind() == synth.KindSupergraph {
		levels++
		node = node.(synth.Supergraph).Sub
	}
	assert.Equal(t, 3, levels)
	assert.Equal(t, synth.KindLeaf, node.Kind())
	assert.Equal(t, 4, countComponents(tree))
}

func TestAssembler_ClusterShape(t *testing.T) {
	t.Parallel()

	// Depth 2 with certain clustering at width 3: previous subtree at
	// position 0, two fresh components after it.
	a, _ := newAssembler(t, 3)
	seen := synth.NewSeen()
	tree, err := a.Generate(treeConfig(t, 2, 3, 0), seen)
	require.NoError(t, err)

	require.Equal(t, synth.KindCluster, tree.Kind())
	cluster := tree.(synth.Cluster)
	require.Len(t, cluster.Members, 3)

	// Element 0 is the previously built subtree — here the original leaf,
	// carrying the first component the fake emitted.
	first, ok := cluster.Members[0].(synth.Leaf)
	require.True(t, ok)
	assert.Equal(t, []string{"(1,2)"}, first.Component.Generators)
}

func TestAssembler_UniquenessIsGraphWide(t *testing.T) {
	t.Parallel()

	// Every component of one tree must carry a distinct generator tuple
	// when uniqueness is enforced; the shared seen set guarantees it across
	// levels.
	a, _ := newAssembler(t, 8)
	seen := synth.NewSeen()
	tree, err := a.Generate(treeConfig(t, 3, 3, 0), seen)
	require.NoError(t, err)

	keys := make(map[string]bool)
	var walk func(n synth.Node)
	walk = func(n synth.Node) {
		switch v := n.(type) {
		case synth.Leaf:
			assert.False(t, keys[v.Component.Key()], "duplicate component %q", v.Component.Key())
			keys[v.Component.Key()] = true
		case synth.Cluster:
			for _, m := range v.Members {
				walk(m)
			}
		case synth.Supergraph:
			assert.False(t, keys[v.Component.Key()])
			keys[v.Component.Key()] = true
			walk(v.Sub)
		}
	}
	walk(tree)
	assert.Equal(t, len(keys), seen.Len())
}

func TestNewAssembler_NilDependencies(t *testing.T) {
	t.Parallel()

	s := newSynth(t, &oracle.Fake{GenQueue: distinctQueue(1)})
	_, err := synth.NewAssembler(nil, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
	_, err = synth.NewAssembler(s, nil)
	assert.Error(t, err)
}
