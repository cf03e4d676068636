// SPDX-License-Identifier: MIT
// Package: archgraph/synth
//
// errors.go — sentinel errors for component synthesis and tree assembly.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach the failing configuration context via %w
//     (degree range, uniqueness/symmetry flags, attempt count).
//   - Constraint rejections inside the retry loop are NOT errors; only
//     budget exhaustion and oracle failures surface.

package synth

import "errors"

// ErrSynthesisExhausted indicates the retry budget ran out before the
// requested number of admissible candidates was found. The wrapped message
// names the degree range and the active constraints.
// Usage: if errors.Is(err, ErrSynthesisExhausted) { /* relax constraints */ }.
var ErrSynthesisExhausted = errors.New("synth: retry budget exhausted")

// ErrBadCandidateCount indicates a best-of count below 1.
var ErrBadCandidateCount = errors.New("synth: best-of count must be positive")

// ErrMissingDependency indicates a nil RNG or oracle handed to a
// constructor.
var ErrMissingDependency = errors.New("synth: missing dependency")

// ErrBadComponent indicates a Component violating its invariants
// (degree < 1, or a generator that is not a permutation of 1..degree).
var ErrBadComponent = errors.New("synth: invalid component")

// ErrBadTree indicates serialized tree data violating the tagged-union
// encoding (unknown tag, empty cluster, malformed supergraph pair).
var ErrBadTree = errors.New("synth: invalid tree encoding")
