// SPDX-License-Identifier: MIT
// Package: archgraph/synth
//
// config.go — immutable synthesis configuration.
//
// Design: all pre-bound generation parameters travel in explicit config
// values rather than curried closures, so the assembler and the synthesizer
// share one requirements object and ownership stays visible at call sites.

package synth

import (
	"fmt"

	"github.com/katalvlaran/archgraph/randsrc"
)

// Config carries the per-component generation parameters. It is treated as
// immutable: construct it once per invocation from validated ranges.
type Config struct {
	// Vertices bounds the component degree (vertex count).
	Vertices randsrc.Range
	// PETypes bounds the number of processing-element color classes.
	PETypes randsrc.Range
	// ChTypes bounds the number of channel-type (edge) color classes.
	// Values above 1 trigger the edge-subdivision coloring.
	ChTypes randsrc.Range
	// Edge decides the presence of each potential edge independently.
	Edge randsrc.Decision

	// UsePrimitive selects primitive-group mode: the component is a random
	// primitive group of the sampled degree, with no graph built at all.
	UsePrimitive bool
	// BestOf is the tournament size; 1 accepts the first admissible
	// candidate without consulting the order oracle.
	BestOf int
	// AllowNonUnique disables the graph-wide uniqueness constraint.
	AllowNonUnique bool
	// AllowNonSymmetric admits components with a trivial automorphism group.
	AllowNonSymmetric bool
}

// validate gate-checks the config fields the type system cannot enforce.
func (c Config) validate() error {
	if c.BestOf < MinBestOf {
		return fmt.Errorf("Config: bestOf=%d < %d: %w", c.BestOf, MinBestOf, ErrBadCandidateCount)
	}
	return nil
}

// constraintContext renders the active constraints for exhaustion
// diagnostics, e.g. "degree [4,4], unique=true, symmetric=true, bestOf=2".
func (c Config) constraintContext() string {
	return fmt.Sprintf("degree %s, unique=%t, symmetric=%t, bestOf=%d",
		c.Vertices, !c.AllowNonUnique, !c.AllowNonSymmetric, c.BestOf)
}

// TreeConfig carries the per-tree assembly parameters on top of the
// component configuration.
type TreeConfig struct {
	// Depth bounds the number of composition levels (1 = a bare leaf).
	Depth randsrc.Range
	// ClusterSize bounds the width of a cluster level, previous subtree
	// included.
	ClusterSize randsrc.Range
	// Supergraph decides per level between nesting and clustering.
	Supergraph randsrc.Decision
	// Component parameterizes every component synthesized for the tree.
	Component Config
}
