// SPDX-License-Identifier: MIT
// Package: archgraph/synth
//
// synthesizer.go — single-component synthesis with retry budget, constraint
// enforcement and best-of-N selection.
//
// Algorithm per attempt:
//  1. Sample vertices, peTypes, chTypes from their ranges.
//  2. Primitive mode: ask the primitive oracle for a random group of that
//     degree; generators are taken as-is (no coloring).
//  3. Graph mode: Bernoulli adjacency over unordered pairs, uniform PE
//     partition, edge coloring by subdivision when chTypes > 1 (auxiliary
//     classes appended after the PE classes), automorphism oracle over the
//     extended graph, projection back to the original index space, 1-based
//     cycle-form conversion, identity generators dropped.
//  4. Reject (and retry) on a seen generator tuple unless allowed, and on a
//     trivial group unless allowed.
//  5. Collect bestOf admissible candidates within the shared budget, then
//     keep the maximum-order one (first seen wins ties).
//
// Oracle failures abort immediately; only constraint rejections consume
// retries. Exhaustion is fatal and names the constraint context.
//
// Complexity per attempt: O(v²) edge trials + oracle cost; the budget bounds
// the attempt count at AttemptBudget.

package synth

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/archgraph/cgraph"
	"github.com/katalvlaran/archgraph/oracle"
	"github.com/katalvlaran/archgraph/perm"
)

// Synthesizer produces Components. It is cheap to construct and carries the
// RNG plus the three oracle collaborators; it holds no per-call state.
type Synthesizer struct {
	rng  *rand.Rand
	aut  oracle.Automorphism
	ord  oracle.GroupOrder
	prim oracle.Primitive
}

// NewSynthesizer wires the synthesizer. All dependencies are mandatory.
func NewSynthesizer(rng *rand.Rand, aut oracle.Automorphism, ord oracle.GroupOrder, prim oracle.Primitive) (*Synthesizer, error) {
	if rng == nil {
		return nil, fmt.Errorf("NewSynthesizer: nil rng: %w", ErrMissingDependency)
	}
	if aut == nil {
		return nil, fmt.Errorf("NewSynthesizer: nil automorphism oracle: %w", ErrMissingDependency)
	}
	if ord == nil {
		return nil, fmt.Errorf("NewSynthesizer: nil order oracle: %w", ErrMissingDependency)
	}
	if prim == nil {
		return nil, fmt.Errorf("NewSynthesizer: nil primitive oracle: %w", ErrMissingDependency)
	}
	return &Synthesizer{rng: rng, aut: aut, ord: ord, prim: prim}, nil
}

// Generate synthesizes one component under cfg, enforcing uniqueness
// against (and finally recording into) seen.
func (s *Synthesizer) Generate(cfg Config, seen *Seen) (Component, error) {
	if err := cfg.validate(); err != nil {
		return Component{}, fmt.Errorf("%s: %w", MethodGenerateComponent, err)
	}
	if seen == nil {
		return Component{}, fmt.Errorf("%s: nil seen set: %w", MethodGenerateComponent, ErrMissingDependency)
	}

	candidates := make([]Component, 0, cfg.BestOf)
	candidateKeys := make(map[string]struct{}, cfg.BestOf)

	for attempt := 0; attempt < AttemptBudget && len(candidates) < cfg.BestOf; attempt++ {
		cand, err := s.attempt(cfg)
		if err != nil {
			// Oracle and sampling failures are fatal, never retried.
			return Component{}, fmt.Errorf("%s: attempt %d: %w", MethodGenerateComponent, attempt, err)
		}

		if !cfg.AllowNonSymmetric && cand.Trivial() {
			continue
		}
		if !cfg.AllowNonUnique {
			key := cand.Key()
			if seen.Has(key) {
				continue
			}
			if _, dup := candidateKeys[key]; dup {
				continue
			}
			candidateKeys[key] = struct{}{}
		}
		candidates = append(candidates, cand)
	}

	if len(candidates) < cfg.BestOf {
		return Component{}, fmt.Errorf("%s: %d/%d candidates after %d attempts (%s): %w",
			MethodGenerateComponent, len(candidates), cfg.BestOf, AttemptBudget,
			cfg.constraintContext(), ErrSynthesisExhausted)
	}

	best, err := s.selectBest(candidates)
	if err != nil {
		return Component{}, fmt.Errorf("%s: %w", MethodGenerateComponent, err)
	}
	seen.Add(best.Key())
	return best, nil
}

// attempt runs steps 1–3: one unconstrained candidate synthesis.
func (s *Synthesizer) attempt(cfg Config) (Component, error) {
	vertices, err := cfg.Vertices.Value(s.rng)
	if err != nil {
		return Component{}, err
	}
	peTypes, err := cfg.PETypes.Value(s.rng)
	if err != nil {
		return Component{}, err
	}
	chTypes, err := cfg.ChTypes.Value(s.rng)
	if err != nil {
		return Component{}, err
	}

	if cfg.UsePrimitive {
		gens, err := s.prim.RandomPrimitive(s.rng, vertices)
		if err != nil {
			return Component{}, err
		}
		return Component{Degree: vertices, Generators: gens}, nil
	}
	return s.graphComponent(cfg, vertices, peTypes, chTypes)
}

// graphComponent builds the colored graph, consults the automorphism oracle
// and converts its generators to 1-based cycle form over the original
// vertices.
func (s *Synthesizer) graphComponent(cfg Config, vertices, peTypes, chTypes int) (Component, error) {
	g, err := cgraph.New(vertices)
	if err != nil {
		return Component{}, err
	}
	// Independent Bernoulli trial per unordered pair {u,v}.
	for u := 0; u < vertices; u++ {
		for v := u + 1; v < vertices; v++ {
			include, err := cfg.Edge.Decide(s.rng)
			if err != nil {
				return Component{}, err
			}
			if !include {
				continue
			}
			if err := g.AddEdge(u, v); err != nil {
				return Component{}, err
			}
		}
	}

	colors, err := cgraph.RandomPartition(s.rng, 0, vertices, peTypes)
	if err != nil {
		return Component{}, err
	}

	work := g
	if chTypes > 1 {
		// Edge coloring via the incidence trick: subdivide every edge and
		// color the auxiliary vertices in their own classes, appended after
		// the PE classes so the two color spaces never mix.
		sub, aux := g.Subdivide()
		chColors, err := cgraph.RandomPartition(s.rng, vertices, aux, chTypes)
		if err != nil {
			return Component{}, err
		}
		colors = colors.Concat(chColors)
		work = sub
	}

	imgs, err := s.aut.Generators(work, colors)
	if err != nil {
		return Component{}, err
	}

	// Auxiliary vertices carry colors disjoint from the originals, so every
	// automorphism maps originals to originals: truncation is a projection.
	gens := make([]string, 0, len(imgs))
	for _, img := range imgs {
		if len(img) < vertices {
			return Component{}, fmt.Errorf("graphComponent: generator over %d points, need %d: %w",
				len(img), vertices, oracle.ErrBadReply)
		}
		proj := perm.Image(img[:vertices])
		if err := perm.Validate(proj); err != nil {
			return Component{}, err
		}
		if perm.IsIdentity(proj) {
			continue
		}
		gens = append(gens, perm.Cycles(proj))
	}
	return Component{Degree: vertices, Generators: gens}, nil
}

// selectBest runs the group-order tournament. A single candidate wins
// outright without consulting the order oracle.
func (s *Synthesizer) selectBest(candidates []Component) (Component, error) {
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	degrees := make([]int, len(candidates))
	gensets := make([][]string, len(candidates))
	for i, c := range candidates {
		degrees[i] = c.Degree
		gensets[i] = c.Generators
	}
	orders, err := s.ord.Orders(degrees, gensets)
	if err != nil {
		return Component{}, err
	}
	if len(orders) != len(candidates) {
		return Component{}, fmt.Errorf("selectBest: %d orders for %d candidates: %w",
			len(orders), len(candidates), oracle.ErrBadReply)
	}
	best := 0
	for i := 1; i < len(orders); i++ {
		// Strict comparison keeps the first-seen candidate on ties.
		if orders[i].Cmp(orders[best]) > 0 {
			best = i
		}
	}
	return candidates[best], nil
}
