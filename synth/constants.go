// SPDX-License-Identifier: MIT
// Package: archgraph/synth
//
// constants.go — method tags for error context and the bounded retry budget.

package synth

const (
	// MethodGenerateComponent tags errors raised while synthesizing one
	// component.
	MethodGenerateComponent = "GenerateComponent"
	// MethodGenerateArchGraph tags errors raised while assembling a tree.
	MethodGenerateArchGraph = "GenerateArchGraph"
)

// AttemptBudget bounds the per-call retry loop of component synthesis. The
// loop exists to keep degenerate configurations (e.g. more unique components
// requested than exist at a degree) from blocking forever; retries are
// immediate and local, never a backoff.
const AttemptBudget = 10000

// MinBestOf is the smallest admissible tournament size; 1 disables the
// tournament entirely.
const MinBestOf = 1

// keySep joins generator strings into the order-sensitive uniqueness key.
// It cannot occur inside cycle-form text.
const keySep = "|"
