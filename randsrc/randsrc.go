// SPDX-License-Identifier: MIT
// Package: archgraph/randsrc
//
// randsrc.go — Range and Decision value sources.
//
// Contract (strict):
//   - Constructors validate and return sentinel errors; they never panic.
//   - Draw methods require a non-nil *rand.Rand except where the outcome is
//     fully determined (degenerate range, p ∈ {0,1}).
//   - No global state; determinism is owned by the caller's RNG.

package randsrc

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for construction-time validation.
var (
	// ErrInvalidRange indicates inverted or non-positive integer bounds.
	// Usage: if errors.Is(err, ErrInvalidRange) { /* fix min/max flags */ }.
	ErrInvalidRange = errors.New("randsrc: invalid range bounds")

	// ErrInvalidProbability indicates a probability outside the closed
	// interval [0,1].
	ErrInvalidProbability = errors.New("randsrc: probability out of range")

	// ErrNeedRandSource indicates a stochastic draw was requested without an RNG.
	ErrNeedRandSource = errors.New("randsrc: rng is required")
)

// Probability domain bounds (no magic literals at call sites).
const (
	probMin = 0.0
	probMax = 1.0
)

// Range is an immutable closed integer interval [min,max] with min ≥ 1.
// The zero value is NOT valid; always construct through NewRange.
type Range struct {
	min int
	max int
}

// NewRange validates 0 < min ≤ max and returns the interval.
// Complexity: O(1).
func NewRange(min, max int) (Range, error) {
	if min <= 0 {
		return Range{}, fmt.Errorf("NewRange: min=%d must be positive: %w", min, ErrInvalidRange)
	}
	if min > max {
		return Range{}, fmt.Errorf("NewRange: min=%d > max=%d: %w", min, max, ErrInvalidRange)
	}
	return Range{min: min, max: max}, nil
}

// Min returns the inclusive lower bound.
func (r Range) Min() int { return r.min }

// Max returns the inclusive upper bound.
func (r Range) Max() int { return r.max }

// Value draws a uniform integer in [min,max]. The draw is independent per
// call; results are never cached. A nil RNG is accepted only for the
// degenerate interval min == max.
func (r Range) Value(rng *rand.Rand) (int, error) {
	if r.min == r.max {
		return r.min, nil
	}
	if rng == nil {
		return 0, fmt.Errorf("Range.Value: [%d,%d]: %w", r.min, r.max, ErrNeedRandSource)
	}
	return r.min + rng.Intn(r.max-r.min+1), nil
}

// String renders the interval for diagnostics, e.g. "[2,7]".
func (r Range) String() string { return fmt.Sprintf("[%d,%d]", r.min, r.max) }

// Decision is an immutable Bernoulli source with success probability p.
// Each Decide call is an independent trial; the type deliberately exposes an
// explicit boolean-returning method rather than value-like truthiness.
type Decision struct {
	p float64
}

// NewDecision validates p ∈ [0,1] and returns the source.
// Complexity: O(1).
func NewDecision(p float64) (Decision, error) {
	if p < probMin || p > probMax {
		return Decision{}, fmt.Errorf("NewDecision: p=%.6f not in [%.1f,%.1f]: %w",
			p, probMin, probMax, ErrInvalidProbability)
	}
	return Decision{p: p}, nil
}

// Probability returns the configured success probability.
func (d Decision) Probability() float64 { return d.p }

// Decide runs one Bernoulli trial. A nil RNG is accepted only for the
// deterministic probabilities 0 and 1.
func (d Decision) Decide(rng *rand.Rand) (bool, error) {
	if d.p == probMin {
		return false, nil
	}
	if d.p == probMax {
		return true, nil
	}
	if rng == nil {
		return false, fmt.Errorf("Decision.Decide: p=%.6f: %w", d.p, ErrNeedRandSource)
	}
	return rng.Float64() < d.p, nil
}
