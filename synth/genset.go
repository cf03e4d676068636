// SPDX-License-Identifier: MIT
// Package: archgraph/synth
//
// genset.go — plain random generating sets, the oracle-free third mode.
//
// Instead of deriving generators from a graph's automorphisms or a
// primitive-group table, this mode samples them directly: a degree and a
// generator count are drawn from their ranges, then each generator is an
// independent uniformly random non-identity permutation of 1..degree.
// Degree 1 admits only the identity, so any positive generator count
// exhausts the retry budget there.

package synth

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/archgraph/perm"
	"github.com/katalvlaran/archgraph/randsrc"
)

// MethodRandomGenSet tags errors raised while sampling plain generators.
const MethodRandomGenSet = "RandomGenSet"

// RandomGenSet samples a component whose generators are count random
// non-identity permutations of the sampled degree. The identity is redrawn,
// bounded by the shared attempt budget.
func RandomGenSet(rng *rand.Rand, degree, count randsrc.Range) (Component, error) {
	if rng == nil {
		return Component{}, fmt.Errorf("%s: nil rng: %w", MethodRandomGenSet, ErrMissingDependency)
	}
	d, err := degree.Value(rng)
	if err != nil {
		return Component{}, fmt.Errorf("%s: degree: %w", MethodRandomGenSet, err)
	}
	n, err := count.Value(rng)
	if err != nil {
		return Component{}, fmt.Errorf("%s: count: %w", MethodRandomGenSet, err)
	}

	gens := make([]string, 0, n)
	attempts := 0
	for len(gens) < n {
		if attempts >= AttemptBudget {
			return Component{}, fmt.Errorf("%s: %d/%d generators after %d attempts (degree %d): %w",
				MethodRandomGenSet, len(gens), n, AttemptBudget, d, ErrSynthesisExhausted)
		}
		attempts++
		img := perm.Image(rng.Perm(d))
		if perm.IsIdentity(img) {
			continue
		}
		gens = append(gens, perm.Cycles(img))
	}
	return Component{Degree: d, Generators: gens}, nil
}
