// SPDX-License-Identifier: MIT
// Package: archgraph/oracle
//
// oracle.go — collaborator interfaces and sentinel errors.
//
// Error policy:
//   - ErrOracleUnavailable: the query is well-formed but the oracle has no
//     usable answer (e.g. zero primitive groups of the requested degree).
//   - ErrEngineFailed: the subprocess could not be run or exited non-zero.
//   - ErrBadReply: the engine ran but its output violates the line protocol.
//   - All are unrecoverable at the point of detection; callers abort.

package oracle

import (
	"errors"
	"math/big"
	"math/rand"

	"github.com/katalvlaran/archgraph/cgraph"
	"github.com/katalvlaran/archgraph/perm"
)

// Sentinel errors shared by all adapters.
var (
	// ErrOracleUnavailable indicates a query with no usable result.
	ErrOracleUnavailable = errors.New("oracle: no usable result")

	// ErrEngineFailed indicates the external engine subprocess failed.
	ErrEngineFailed = errors.New("oracle: engine invocation failed")

	// ErrBadReply indicates engine output violating the reply protocol.
	ErrBadReply = errors.New("oracle: malformed engine reply")
)

// Automorphism computes a generating set for the automorphism group of a
// colored graph. Each returned image is a permutation over the full vertex
// index space of g (including any subdivision auxiliaries); callers project
// to the original space themselves.
type Automorphism interface {
	Generators(g *cgraph.Graph, colors cgraph.Coloring) ([]perm.Image, error)
}

// GroupOrder resolves the orders of several permutation groups in one
// batched query. degrees[i] is the domain size of gensets[i]; an empty
// genset denotes the trivial group (order 1). Orders are big.Int because
// symmetric groups outgrow int64 at degree 21.
type GroupOrder interface {
	Orders(degrees []int, gensets [][]string) ([]*big.Int, error)
}

// Primitive returns the generating set of one uniformly chosen primitive
// group of the given degree. A degree admitting no primitive group is an
// ErrOracleUnavailable failure, never an empty result.
type Primitive interface {
	RandomPrimitive(rng *rand.Rand, degree int) ([]string, error)
}
