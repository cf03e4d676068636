// SPDX-License-Identifier: MIT
// Package: archgraph/oracle
//
// fake.go — scriptable in-process oracle for tests.
//
// The fake implements all three collaborator interfaces so synthesis logic
// can be exercised without the external engine. Behavior is queue/closure
// driven and fully deterministic.

package oracle

import (
	"fmt"
	"math/big"
	"math/rand"

	"github.com/katalvlaran/archgraph/cgraph"
	"github.com/katalvlaran/archgraph/perm"
)

// Fake is a deterministic oracle for tests. Configure the exported fields,
// then hand it to the synthesizer as any subset of the three interfaces.
type Fake struct {
	// GenQueue is consumed one entry per Generators call. When the queue
	// runs out the last entry repeats, so unbounded retry loops stay fed.
	GenQueue [][]perm.Image

	// OrderFn maps (degree, genset) to a group order. Nil defaults to
	// 1 + len(genset), which is enough to make tournaments decidable.
	OrderFn func(degree int, gens []string) *big.Int

	// Prim maps degree → available primitive gensets. A present-but-empty
	// entry models "zero primitive groups of this degree".
	Prim map[int][][]string

	// Call counters for assertions.
	GenCalls   int
	OrderCalls int
	PrimCalls  int
}

// Generators implements Automorphism from GenQueue.
func (f *Fake) Generators(g *cgraph.Graph, _ cgraph.Coloring) ([]perm.Image, error) {
	if len(f.GenQueue) == 0 {
		return nil, fmt.Errorf("Fake.Generators: empty queue for order %d: %w",
			g.Order(), ErrOracleUnavailable)
	}
	idx := f.GenCalls
	if idx >= len(f.GenQueue) {
		idx = len(f.GenQueue) - 1
	}
	f.GenCalls++
	return f.GenQueue[idx], nil
}

// Orders implements GroupOrder via OrderFn (or the arity default).
func (f *Fake) Orders(degrees []int, gensets [][]string) ([]*big.Int, error) {
	f.OrderCalls++
	if len(degrees) != len(gensets) {
		return nil, fmt.Errorf("Fake.Orders: %d degrees vs %d gensets: %w",
			len(degrees), len(gensets), ErrBadReply)
	}
	out := make([]*big.Int, len(degrees))
	for i := range degrees {
		if f.OrderFn != nil {
			out[i] = f.OrderFn(degrees[i], gensets[i])
			continue
		}
		out[i] = big.NewInt(int64(1 + len(gensets[i])))
	}
	return out, nil
}

// RandomPrimitive implements Primitive from the Prim map.
func (f *Fake) RandomPrimitive(rng *rand.Rand, degree int) ([]string, error) {
	f.PrimCalls++
	sets, ok := f.Prim[degree]
	if !ok || len(sets) == 0 {
		return nil, fmt.Errorf("Fake.RandomPrimitive: no primitive group of degree %d: %w",
			degree, ErrOracleUnavailable)
	}
	idx := 0
	if len(sets) > 1 && rng != nil {
		idx = rng.Intn(len(sets))
	}
	return sets[idx], nil
}
