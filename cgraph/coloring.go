// SPDX-License-Identifier: MIT
// Package: archgraph/cgraph
//
// coloring.go — vertex color partitions for the automorphism oracle.
//
// A Coloring is an ordered list of color classes over the vertex index
// space. Classes may be empty: a partition into k classes where some class
// received no vertex is still a valid k-class partition, and the oracle
// treats the class index (not its population) as the color.

package cgraph

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// ErrBadClassCount indicates a non-positive class count for RandomPartition.
var ErrBadClassCount = errors.New("cgraph: class count must be positive")

// ErrNeedRandSource indicates a stochastic partition was requested without
// an RNG.
var ErrNeedRandSource = errors.New("cgraph: rng is required")

// Coloring is an ordered partition: Coloring[c] lists the vertex indices of
// color c in ascending order.
type Coloring [][]int

// Classes returns the number of color classes (including empty ones).
func (c Coloring) Classes() int { return len(c) }

// Size returns the total number of colored vertices.
func (c Coloring) Size() int {
	total := 0
	for _, class := range c {
		total += len(class)
	}
	return total
}

// ColorOf returns the class index of vertex v, or -1 if v is uncolored.
func (c Coloring) ColorOf(v int) int {
	for idx, class := range c {
		for _, m := range class {
			if m == v {
				return idx
			}
		}
	}
	return -1
}

// Concat appends other's classes after c's, keeping class order. Used to
// stack the channel-type classes (auxiliary vertices) after the
// processing-element classes (original vertices).
func (c Coloring) Concat(other Coloring) Coloring {
	out := make(Coloring, 0, len(c)+len(other))
	out = append(out, c...)
	out = append(out, other...)
	return out
}

// RandomPartition assigns the count vertices first..first+count-1 uniformly
// and independently to one of classes color classes. Classes may end up
// empty. Each class lists its members in ascending index order.
func RandomPartition(rng *rand.Rand, first, count, classes int) (Coloring, error) {
	if classes < 1 {
		return nil, fmt.Errorf("RandomPartition: classes=%d: %w", classes, ErrBadClassCount)
	}
	if count < 0 {
		return nil, fmt.Errorf("RandomPartition: count=%d: %w", count, ErrVertexOutOfRange)
	}
	out := make(Coloring, classes)
	for c := range out {
		out[c] = []int{}
	}
	if classes == 1 {
		// Single class: no randomness involved.
		for v := first; v < first+count; v++ {
			out[0] = append(out[0], v)
		}
		return out, nil
	}
	if rng == nil {
		return nil, fmt.Errorf("RandomPartition: rng is required for %d classes: %w",
			classes, ErrNeedRandSource)
	}
	for v := first; v < first+count; v++ {
		c := rng.Intn(classes)
		out[c] = append(out[c], v)
	}
	// Ascending insertion order already holds per class; keep the invariant
	// explicit for future mutations.
	for c := range out {
		sort.Ints(out[c])
	}
	return out, nil
}
