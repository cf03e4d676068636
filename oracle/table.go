// SPDX-License-Identifier: MIT
// Package: archgraph/oracle
//
// table.go — embedded primitive-group table with engine fallback.
//
// The table stores generating sets (cycle form, 1-based) of primitive
// groups for small degrees, so the common case never leaves the process.
// The sets are the textbook ones: C_p for prime degrees, and A_n / S_n
// everywhere (A_n generated by a 3-cycle and an n- or (n-1)-cycle depending
// on parity, S_n by a transposition and an n-cycle).

package oracle

import (
	"fmt"
	"math/rand"
)

// tableMinDegree and tableMaxDegree bound the embedded table.
const (
	tableMinDegree = 2
	tableMaxDegree = 12
)

// primitiveTable maps degree → known primitive generating sets.
var primitiveTable = map[int][][]string{
	2: {
		{"(1,2)"}, // S2
	},
	3: {
		{"(1,2,3)"},          // C3 = A3
		{"(1,2,3)", "(1,2)"}, // S3
	},
	4: {
		{"(1,2,3)", "(2,3,4)"}, // A4
		{"(1,2,3,4)", "(1,2)"}, // S4
	},
	5: {
		{"(1,2,3,4,5)"},               // C5
		{"(1,2,3,4,5)", "(2,5)(3,4)"}, // D5
		{"(1,2,3,4,5)", "(2,3,5,4)"},  // F20
		{"(1,2,3,4,5)", "(1,2,3)"},    // A5
		{"(1,2,3,4,5)", "(1,2)"},      // S5
	},
	6: {
		{"(2,3,4,5,6)", "(1,2,3)"}, // A6
		{"(1,2,3,4,5,6)", "(1,2)"}, // S6
	},
	7: {
		{"(1,2,3,4,5,6,7)"},            // C7
		{"(1,2,3,4,5,6,7)", "(1,2,3)"}, // A7
		{"(1,2,3,4,5,6,7)", "(1,2)"},   // S7
	},
	8: {
		{"(2,3,4,5,6,7,8)", "(1,2,3)"}, // A8
		{"(1,2,3,4,5,6,7,8)", "(1,2)"}, // S8
	},
	9: {
		{"(1,2,3,4,5,6,7,8,9)", "(1,2,3)"}, // A9
		{"(1,2,3,4,5,6,7,8,9)", "(1,2)"},   // S9
	},
	10: {
		{"(2,3,4,5,6,7,8,9,10)", "(1,2,3)"}, // A10
		{"(1,2,3,4,5,6,7,8,9,10)", "(1,2)"}, // S10
	},
	11: {
		{"(1,2,3,4,5,6,7,8,9,10,11)"},            // C11
		{"(1,2,3,4,5,6,7,8,9,10,11)", "(1,2,3)"}, // A11
		{"(1,2,3,4,5,6,7,8,9,10,11)", "(1,2)"},   // S11
	},
	12: {
		{"(2,3,4,5,6,7,8,9,10,11,12)", "(1,2,3)"}, // A12
		{"(1,2,3,4,5,6,7,8,9,10,11,12)", "(1,2)"}, // S12
	},
}

// PrimitiveSource serves primitive-group queries from the embedded table
// first and falls back to an engine-backed Primitive for degrees the table
// does not cover. A nil fallback confines lookups to the table.
type PrimitiveSource struct {
	fallback Primitive
}

// NewPrimitiveSource returns the table-first adapter.
func NewPrimitiveSource(fallback Primitive) *PrimitiveSource {
	return &PrimitiveSource{fallback: fallback}
}

// RandomPrimitive implements Primitive. Table hits pick uniformly with the
// caller's RNG; misses delegate to the fallback.
func (s *PrimitiveSource) RandomPrimitive(rng *rand.Rand, degree int) ([]string, error) {
	if degree < tableMinDegree {
		// Degree 1 has no primitive group in this pipeline's sense.
		return nil, fmt.Errorf("RandomPrimitive: no primitive group of degree %d: %w",
			degree, ErrOracleUnavailable)
	}
	if sets, ok := primitiveTable[degree]; ok {
		idx := 0
		if len(sets) > 1 {
			if rng == nil {
				return nil, fmt.Errorf("RandomPrimitive: degree %d: rng is required: %w",
					degree, ErrOracleUnavailable)
			}
			idx = rng.Intn(len(sets))
		}
		// Copy so callers can own the slice.
		out := make([]string, len(sets[idx]))
		copy(out, sets[idx])
		return out, nil
	}
	if s.fallback == nil {
		return nil, fmt.Errorf("RandomPrimitive: degree %d beyond table (max %d), no engine configured: %w",
			degree, tableMaxDegree, ErrOracleUnavailable)
	}
	return s.fallback.RandomPrimitive(rng, degree)
}
