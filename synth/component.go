// SPDX-License-Identifier: MIT
// Package: archgraph/synth
//
// component.go — the Component value object and the Seen uniqueness set.
//
// Equality for uniqueness is the literal ordered generator tuple, not a
// group-isomorphism check: two components whose oracles emitted the same
// generators in the same order collide, differently-ordered but isomorphic
// groups do not. That tuple identity is what Key() encodes.

package synth

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/archgraph/perm"
)

// Component is one synthesized building block: a degree and the cycle-form
// generating set of its automorphism group. Generators may be empty (trivial
// group). Components are immutable once accepted.
type Component struct {
	Degree     int
	Generators []string
}

// Key returns the order-sensitive uniqueness key over the generator tuple.
func (c Component) Key() string {
	return strings.Join(c.Generators, keySep)
}

// Trivial reports whether the automorphism group is trivial (no generators).
func (c Component) Trivial() bool { return len(c.Generators) == 0 }

// Validate checks the component invariants: degree ≥ 1 and every generator
// a non-identity permutation of 1..Degree.
func (c Component) Validate() error {
	if c.Degree < 1 {
		return fmt.Errorf("Component.Validate: degree=%d < 1: %w", c.Degree, ErrBadComponent)
	}
	for i, gen := range c.Generators {
		img, err := perm.ParseCycles(gen, c.Degree)
		if err != nil {
			return fmt.Errorf("Component.Validate: generator %d %q: %w: %v",
				i, gen, ErrBadComponent, err)
		}
		if perm.IsIdentity(img) {
			return fmt.Errorf("Component.Validate: generator %d is the identity: %w",
				i, ErrBadComponent)
		}
	}
	return nil
}

// Seen is the process-local set of generator tuples accepted so far, scoped
// to one top-level arch-graph generation. It is passed explicitly through
// every synthesis call; there is no enclosing-scope capture and no
// persistence.
type Seen struct {
	keys map[string]struct{}
}

// NewSeen returns an empty set.
func NewSeen() *Seen {
	return &Seen{keys: make(map[string]struct{})}
}

// Has reports whether the key was accepted before.
func (s *Seen) Has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

// Add records an accepted key. Re-adding is a no-op.
func (s *Seen) Add(key string) {
	s.keys[key] = struct{}{}
}

// Len returns the number of distinct accepted keys.
func (s *Seen) Len() int { return len(s.keys) }
