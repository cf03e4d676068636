// Package randsrc provides the two bounded random value sources used by the
// component synthesizer and the graph assembler: Range (uniform integer in a
// closed interval) and Decision (independent Bernoulli trial).
//
// Both types are immutable value objects constructed through validating
// factories. They carry no RNG of their own; the caller supplies a *rand.Rand
// on every draw, so seeding policy stays with the top-level configuration and
// outcomes are reproducible for a fixed seed.
//
// Guarantees:
//
//   - Range bounds satisfy 0 < Min ≤ Max for every constructed value;
//     construction with inverted or non-positive bounds fails with
//     ErrInvalidRange.
//   - Decision probability lies in [0,1]; construction outside the interval
//     fails with ErrInvalidProbability.
//   - Value/Decide are resampled on every call — never memoized.
package randsrc
