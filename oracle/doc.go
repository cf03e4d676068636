// Package oracle abstracts the three group-theory collaborators of the
// synthesis pipeline behind small interfaces:
//
//   - Automorphism: colored graph → generating permutations of its
//     automorphism group.
//   - GroupOrder: batches of generating sets → group orders.
//   - Primitive: degree → one randomly chosen primitive generating set.
//
// One production adapter exists: Engine, which drives an external
// computer-algebra binary as a blocking subprocess using a templated script
// and a line protocol of "degree:<d>,order:<o>,gens:<g>" triples. Small
// degrees are served from an embedded primitive-group table before any
// engine round trip (PrimitiveSource).
//
// A scriptable Fake covers all three interfaces for tests, so retry and
// selection logic never depends on the textual protocol.
//
// Every call is synchronous with no timeout and no internal retry; a failed
// engine invocation or an unusable reply is fatal at the call site
// (ErrEngineFailed / ErrBadReply / ErrOracleUnavailable).
package oracle
