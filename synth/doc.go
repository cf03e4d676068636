// Package synth generates random architecture graphs: labeled, recursively
// composed structures whose building blocks are symmetric colored graphs
// (or primitive permutation groups) together with the generating sets of
// their automorphism groups.
//
// The pipeline has two layers:
//
//   - Synthesizer builds one Component per call: sample a random colored
//     graph (or pick a primitive group), obtain automorphism generators from
//     an oracle, enforce uniqueness and non-triviality under a bounded
//     retry budget, and optionally run a best-of-N tournament on group
//     order.
//   - Assembler drives the synthesizer recursively into a tree of sampled
//     depth, composing per level either by sibling clustering or by nested
//     super-graphing, decided by a Bernoulli draw.
//
// Uniqueness is enforced graph-wide through an explicit Seen set that
// threads through every synthesis of one assembler call. Trees serialize to
// the JSON forms
//
//	{"component":[degree, gen, ...]}
//	{"cluster":[node, ...]}
//	{"supergraph":[componentNode, subgraphNode]}
//
// and decode back into the same tag structure.
//
// All randomness flows through one caller-supplied *rand.Rand; all external
// group theory flows through the oracle interfaces. The package itself never
// computes group-theoretic properties.
package synth
