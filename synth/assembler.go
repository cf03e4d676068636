// SPDX-License-Identifier: MIT
// Package: archgraph/synth
//
// assembler.go — recursive tree assembly over the component synthesizer.
//
// Algorithm:
//  1. depth := Depth range sample; tree := Leaf(new component).
//  2. Repeat depth-1 times: a Bernoulli draw picks the combinator.
//     Supergraph: wrap the tree under one fresh component.
//     Cluster: sample the width K and append K-1 fresh components after the
//     previous subtree (always element 0).
//  3. Return the tree.
//
// The Seen set threads through every component synthesis, so uniqueness is
// enforced across the whole graph, not per level.

package synth

import (
	"fmt"
	"math/rand"
)

// Assembler builds architecture-graph trees.
type Assembler struct {
	synth *Synthesizer
	rng   *rand.Rand
}

// NewAssembler wires the assembler; both dependencies are mandatory. Use
// the same RNG as the synthesizer for one reproducible stream per
// invocation.
func NewAssembler(s *Synthesizer, rng *rand.Rand) (*Assembler, error) {
	if s == nil {
		return nil, fmt.Errorf("NewAssembler: nil synthesizer: %w", ErrMissingDependency)
	}
	if rng == nil {
		return nil, fmt.Errorf("NewAssembler: nil rng: %w", ErrMissingDependency)
	}
	return &Assembler{synth: s, rng: rng}, nil
}

// Generate assembles one architecture graph under cfg. seen scopes the
// uniqueness constraint to this call; pass a fresh set per graph.
func (a *Assembler) Generate(cfg TreeConfig, seen *Seen) (Node, error) {
	depth, err := cfg.Depth.Value(a.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: depth: %w", MethodGenerateArchGraph, err)
	}

	root, err := a.synth.Generate(cfg.Component, seen)
	if err != nil {
		return nil, fmt.Errorf("%s: leaf: %w", MethodGenerateArchGraph, err)
	}
	var tree Node = Leaf{Component: root}

	for level := 1; level < depth; level++ {
		nest, err := cfg.Supergraph.Decide(a.rng)
		if err != nil {
			return nil, fmt.Errorf("%s: level %d: %w", MethodGenerateArchGraph, level, err)
		}
		if nest {
			comp, err := a.synth.Generate(cfg.Component, seen)
			if err != nil {
				return nil, fmt.Errorf("%s: level %d supergraph: %w", MethodGenerateArchGraph, level, err)
			}
			tree = Supergraph{Component: comp, Sub: tree}
			continue
		}

		width, err := cfg.ClusterSize.Value(a.rng)
		if err != nil {
			return nil, fmt.Errorf("%s: level %d cluster size: %w", MethodGenerateArchGraph, level, err)
		}
		members := make([]Node, 0, width)
		members = append(members, tree)
		for i := 1; i < width; i++ {
			comp, err := a.synth.Generate(cfg.Component, seen)
			if err != nil {
				return nil, fmt.Errorf("%s: level %d cluster member %d: %w",
					MethodGenerateArchGraph, level, i, err)
			}
			members = append(members, Leaf{Component: comp})
		}
		tree = Cluster{Members: members}
	}
	return tree, nil
}
