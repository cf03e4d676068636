// Package archgraph synthesizes random architecture graphs — labeled,
// recursively composed structures used as test inputs for tools that
// exploit graph and group symmetry (compression or analysis of hardware
// and network topologies).
//
// 🚀 What is archgraph?
//
//	A small, deterministic-by-seed generator that brings together:
//		• Bounded random sources: uniform ranges & Bernoulli decisions
//		• Colored-graph construction with edge-subdivision coloring
//		• Automorphism, group-order and primitive-group oracles
//		• Component synthesis with retry budget & best-of-N tournaments
//		• Recursive tree assembly via clustering and super-graphing
//
// Under the hood, everything is organized into five subpackages:
//
//	randsrc/ — Range and Decision value sources
//	perm/    — one-line images, cycle form, partial-permutation rebuild
//	cgraph/  — simple colored graphs over integer vertices
//	oracle/  — collaborator interfaces, engine adapter, primitive table
//	synth/   — components, the synthesizer, the assembler, JSON trees
//
// plus two binaries under cmd/: archgraph (the generator CLI) and
// permrebuild (a companion tool merging partial permutations).
//
// The module never computes group-theoretic properties itself; order,
// primitivity and automorphism groups come from oracles, and the fake
// oracle keeps every synthesis path testable without the external engine.
package archgraph
